package transaction

import (
	"zenitmanager/dto"
	"zenitmanager/middleware"
	"zenitmanager/model"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func TransactionController(router *gin.Engine, db *gorm.DB) {
	routes := router.Group("/transactions", middleware.AccessTokenMiddleware())
	{
		routes.GET("", func(c *gin.Context) {
			GetTransactions(c, db)
		})
		routes.GET("/summary", func(c *gin.Context) {
			GetSummary(c, db)
		})
		routes.POST("", func(c *gin.Context) {
			CreateTransaction(c, db)
		})
		routes.PUT("/:id", func(c *gin.Context) {
			UpdateTransaction(c, db)
		})
		routes.PUT("/:id/toggle", func(c *gin.Context) {
			ToggleStatus(c, db)
		})
		routes.DELETE("/:id", func(c *gin.Context) {
			DeleteTransaction(c, db)
		})
	}
}

func GetTransactions(c *gin.Context, db *gorm.DB) {
	var transactions []model.Transaction
	if err := db.Order("due_date desc").Find(&transactions).Error; err != nil {
		c.JSON(500, gin.H{"error": "Failed to load transactions"})
		return
	}
	c.JSON(200, gin.H{"transactions": transactions})
}

// GetSummary totals income and expense separately. Amounts are stored
// positive; the sign lives in the type column.
func GetSummary(c *gin.Context, db *gorm.DB) {
	var income, expense float64
	if err := db.Model(&model.Transaction{}).Where("type = ?", "income").
		Select("COALESCE(SUM(amount), 0)").Scan(&income).Error; err != nil {
		c.JSON(500, gin.H{"error": "Failed to compute summary"})
		return
	}
	if err := db.Model(&model.Transaction{}).Where("type = ?", "expense").
		Select("COALESCE(SUM(amount), 0)").Scan(&expense).Error; err != nil {
		c.JSON(500, gin.H{"error": "Failed to compute summary"})
		return
	}
	c.JSON(200, gin.H{
		"income":  income,
		"expense": expense,
		"balance": income - expense,
	})
}

func CreateTransaction(c *gin.Context, db *gorm.DB) {
	var request dto.CreateTransactionRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}

	transaction := model.Transaction{
		Description: request.Description,
		Amount:      request.Amount,
		Type:        request.Type,
		Status:      request.Status,
		Category:    request.Category,
		ContactID:   request.ContactID,
		DueDate:     request.DueDate,
	}
	if transaction.Status == "" {
		transaction.Status = "pending"
	}

	if err := db.Create(&transaction).Error; err != nil {
		c.JSON(500, gin.H{"error": "Failed to create transaction"})
		return
	}
	c.JSON(201, gin.H{"message": "Transaction created successfully", "transaction": transaction})
}

func UpdateTransaction(c *gin.Context, db *gorm.DB) {
	var request dto.UpdateTransactionRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}

	var transaction model.Transaction
	if err := db.Where("id = ?", c.Param("id")).First(&transaction).Error; err != nil {
		c.JSON(404, gin.H{"error": "Transaction not found"})
		return
	}

	updates := map[string]interface{}{}
	if request.Description != nil {
		updates["description"] = *request.Description
	}
	if request.Amount != nil {
		updates["amount"] = *request.Amount
	}
	if request.Type != nil {
		updates["type"] = *request.Type
	}
	if request.Status != nil {
		updates["status"] = *request.Status
	}
	if request.Category != nil {
		updates["category"] = *request.Category
	}
	if request.ContactID != nil {
		updates["contact_id"] = *request.ContactID
	}
	if request.DueDate != nil {
		updates["due_date"] = *request.DueDate
	}
	if len(updates) == 0 {
		c.JSON(400, gin.H{"error": "Nothing to update"})
		return
	}

	if err := db.Model(&transaction).Updates(updates).Error; err != nil {
		c.JSON(500, gin.H{"error": "Failed to update transaction"})
		return
	}
	c.JSON(200, gin.H{"message": "Transaction updated successfully", "transaction": transaction})
}

// ToggleStatus flips paid and pending. There are no other states, so two
// toggles always land back where they started.
func ToggleStatus(c *gin.Context, db *gorm.DB) {
	var transaction model.Transaction
	if err := db.Where("id = ?", c.Param("id")).First(&transaction).Error; err != nil {
		c.JSON(404, gin.H{"error": "Transaction not found"})
		return
	}

	newStatus := "paid"
	if transaction.Status == "paid" {
		newStatus = "pending"
	}
	if err := db.Model(&transaction).Update("status", newStatus).Error; err != nil {
		c.JSON(500, gin.H{"error": "Failed to toggle status"})
		return
	}
	transaction.Status = newStatus

	c.JSON(200, gin.H{"message": "Status toggled successfully", "transaction": transaction})
}

func DeleteTransaction(c *gin.Context, db *gorm.DB) {
	if err := db.Where("id = ?", c.Param("id")).Delete(&model.Transaction{}).Error; err != nil {
		c.JSON(500, gin.H{"error": "Failed to delete transaction"})
		return
	}
	c.JSON(200, gin.H{"message": "Transaction deleted successfully"})
}
