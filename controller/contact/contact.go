package contact

import (
	"time"
	"zenitmanager/dto"
	"zenitmanager/middleware"
	"zenitmanager/model"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

func ContactController(router *gin.Engine, db *gorm.DB) {
	routes := router.Group("/contacts", middleware.AccessTokenMiddleware())
	{
		routes.GET("", func(c *gin.Context) {
			GetContacts(c, db)
		})
		routes.GET("/:id", func(c *gin.Context) {
			GetContact(c, db)
		})
		routes.POST("", func(c *gin.Context) {
			CreateContact(c, db)
		})
		routes.PUT("/:id", func(c *gin.Context) {
			UpdateContact(c, db)
		})
		routes.DELETE("/:id", func(c *gin.Context) {
			DeleteContact(c, db)
		})
		routes.GET("/:id/transactions", func(c *gin.Context) {
			GetContactTransactions(c, db)
		})
		routes.POST("/:id/transactions", func(c *gin.Context) {
			CreateContactInvoice(c, db)
		})
	}
}

func GetContacts(c *gin.Context, db *gorm.DB) {
	query := db.Order("created_at desc")
	if contactType := c.Query("type"); contactType != "" {
		query = query.Where("type = ?", contactType)
		if contactType == "student" {
			query = db.Where("type = ?", contactType).Order("full_name asc")
		}
	}
	if search := c.Query("search"); search != "" {
		query = query.Where("full_name ILIKE ?", "%"+search+"%")
	}

	var contacts []model.Contact
	if err := query.Find(&contacts).Error; err != nil {
		c.JSON(500, gin.H{"error": "Failed to load contacts"})
		return
	}
	c.JSON(200, gin.H{"contacts": contacts})
}

func GetContact(c *gin.Context, db *gorm.DB) {
	var contact model.Contact
	if err := db.Where("id = ?", c.Param("id")).First(&contact).Error; err != nil {
		c.JSON(404, gin.H{"error": "Contact not found"})
		return
	}
	c.JSON(200, gin.H{"contact": contact})
}

// CreateContact saves the contact and, when auto_finance is on with a
// value, writes one pending income invoice. An invoice failure after the
// contact save is reported but does not roll the contact back.
func CreateContact(c *gin.Context, db *gorm.DB) {
	var request dto.CreateContactRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(400, gin.H{"error": "Invalid input"})
		return
	}

	contact := model.Contact{
		FullName:            request.FullName,
		Email:               request.Email,
		Phone:               request.Phone,
		Document:            request.Document,
		City:                request.City,
		Age:                 request.Age,
		Instagram:           request.Instagram,
		Type:                request.Type,
		Status:              request.Status,
		ProductName:         request.ProductName,
		PurchaseDate:        request.PurchaseDate,
		Niche:               request.Niche,
		AcquisitionChannel:  request.AcquisitionChannel,
		Notes:               request.Notes,
		Address:             request.Address,
		FinancialRecurrence: request.FinancialRecurrence,
		Attachments:         datatypes.NewJSONSlice(request.Attachments),
	}
	if contact.Type == "" {
		contact.Type = "lead"
	}
	if contact.Status == "" {
		contact.Status = "active"
	}

	if err := db.Create(&contact).Error; err != nil {
		c.JSON(500, gin.H{"error": "Failed to create contact"})
		return
	}

	if request.AutoFinance && request.FinanceValue > 0 {
		if err := createAutoInvoice(db, &contact, request.FinanceValue); err != nil {
			c.JSON(201, gin.H{
				"message": "Contact saved but invoice generation failed",
				"contact": contact,
				"error":   err.Error(),
			})
			return
		}
	}

	c.JSON(201, gin.H{"message": "Contact created successfully", "contact": contact})
}

func UpdateContact(c *gin.Context, db *gorm.DB) {
	var request dto.UpdateContactRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(400, gin.H{"error": "Invalid input"})
		return
	}

	var contact model.Contact
	if err := db.Where("id = ?", c.Param("id")).First(&contact).Error; err != nil {
		c.JSON(404, gin.H{"error": "Contact not found"})
		return
	}

	updates := map[string]interface{}{}
	if request.FullName != nil {
		updates["full_name"] = *request.FullName
	}
	if request.Email != nil {
		updates["email"] = *request.Email
	}
	if request.Phone != nil {
		updates["phone"] = *request.Phone
	}
	if request.Document != nil {
		updates["document"] = *request.Document
	}
	if request.City != nil {
		updates["city"] = *request.City
	}
	if request.Age != nil {
		updates["age"] = *request.Age
	}
	if request.Instagram != nil {
		updates["instagram"] = *request.Instagram
	}
	if request.Type != nil {
		updates["type"] = *request.Type
	}
	if request.Status != nil {
		updates["status"] = *request.Status
	}
	if request.ProductName != nil {
		updates["product_name"] = *request.ProductName
	}
	if request.PurchaseDate != nil {
		updates["purchase_date"] = *request.PurchaseDate
	}
	if request.Niche != nil {
		updates["niche"] = *request.Niche
	}
	if request.AcquisitionChannel != nil {
		updates["acquisition_channel"] = *request.AcquisitionChannel
	}
	if request.Notes != nil {
		updates["notes"] = *request.Notes
	}
	if request.Address != nil {
		updates["address"] = *request.Address
	}
	if request.Attachments != nil {
		updates["attachments"] = datatypes.NewJSONSlice(*request.Attachments)
	}
	if request.FinancialRecurrence != nil {
		updates["financial_recurrence"] = *request.FinancialRecurrence
	}

	if len(updates) > 0 {
		if err := db.Model(&contact).Updates(updates).Error; err != nil {
			c.JSON(500, gin.H{"error": "Failed to update contact"})
			return
		}
	}

	if request.AutoFinance && request.FinanceValue > 0 {
		if err := createAutoInvoice(db, &contact, request.FinanceValue); err != nil {
			c.JSON(200, gin.H{
				"message": "Contact saved but invoice generation failed",
				"contact": contact,
				"error":   err.Error(),
			})
			return
		}
	}

	c.JSON(200, gin.H{"message": "Contact updated successfully", "contact": contact})
}

func DeleteContact(c *gin.Context, db *gorm.DB) {
	if err := db.Where("id = ?", c.Param("id")).Delete(&model.Contact{}).Error; err != nil {
		c.JSON(500, gin.H{"error": "Failed to delete contact"})
		return
	}
	c.JSON(200, gin.H{"message": "Contact deleted successfully"})
}

func GetContactTransactions(c *gin.Context, db *gorm.DB) {
	var transactions []model.Transaction
	if err := db.Where("contact_id = ?", c.Param("id")).Order("due_date desc").Find(&transactions).Error; err != nil {
		c.JSON(500, gin.H{"error": "Failed to load transactions"})
		return
	}
	c.JSON(200, gin.H{"transactions": transactions})
}

func CreateContactInvoice(c *gin.Context, db *gorm.DB) {
	var request dto.ContactInvoiceRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(400, gin.H{"error": "Invalid input"})
		return
	}

	var contact model.Contact
	if err := db.Where("id = ?", c.Param("id")).First(&contact).Error; err != nil {
		c.JSON(404, gin.H{"error": "Contact not found"})
		return
	}

	transaction := model.Transaction{
		Description: request.Description,
		Amount:      request.Amount,
		Type:        "income",
		Status:      "pending",
		Category:    "Vendas",
		ContactID:   &contact.ID,
		DueDate:     time.Now(),
	}
	if transaction.Description == "" {
		transaction.Description = "Venda - " + contact.FullName
	}
	if request.DueDate != nil {
		transaction.DueDate = *request.DueDate
	}

	if err := db.Create(&transaction).Error; err != nil {
		c.JSON(500, gin.H{"error": "Failed to create invoice"})
		return
	}
	c.JSON(201, gin.H{"message": "Invoice created successfully", "transaction": transaction})
}

func createAutoInvoice(db *gorm.DB, contact *model.Contact, value float64) error {
	dueDate := time.Now()
	if contact.PurchaseDate != nil {
		dueDate = *contact.PurchaseDate
	}
	transaction := model.Transaction{
		Description: "Venda - " + contact.FullName,
		Amount:      value,
		Type:        "income",
		Status:      "pending",
		Category:    "Vendas",
		ContactID:   &contact.ID,
		DueDate:     dueDate,
	}
	return db.Create(&transaction).Error
}
