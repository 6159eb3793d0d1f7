package content

import (
	"strconv"
	"time"
	"zenitmanager/dto"
	"zenitmanager/middleware"
	"zenitmanager/model"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func ContentController(router *gin.Engine, db *gorm.DB) {
	routes := router.Group("/content", middleware.AccessTokenMiddleware())
	{
		routes.GET("", func(c *gin.Context) {
			GetContentItems(c, db)
		})
		routes.GET("/calendar", func(c *gin.Context) {
			GetCalendar(c, db)
		})
		routes.POST("", func(c *gin.Context) {
			CreateContentItem(c, db)
		})
		routes.PUT("/:id", func(c *gin.Context) {
			UpdateContentItem(c, db)
		})
		routes.PUT("/:id/approval", func(c *gin.Context) {
			UpdateApproval(c, db)
		})
		routes.DELETE("/:id", func(c *gin.Context) {
			DeleteContentItem(c, db)
		})
		routes.GET("/:id/comments", func(c *gin.Context) {
			GetContentComments(c, db)
		})
		routes.POST("/:id/comments", func(c *gin.Context) {
			CreateContentComment(c, db)
		})
	}
}

func GetContentItems(c *gin.Context, db *gorm.DB) {
	query := db.Order("created_at desc")
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	var items []model.ContentItem
	if err := query.Find(&items).Error; err != nil {
		c.JSON(500, gin.H{"error": "Failed to load content"})
		return
	}
	c.JSON(200, gin.H{"items": items})
}

// GetCalendar returns the items whose publish_date falls inside the given
// month (year/month query params, defaults to the current month).
func GetCalendar(c *gin.Context, db *gorm.DB) {
	now := time.Now()
	year, month := now.Year(), int(now.Month())
	if y, err := strconv.Atoi(c.Query("year")); err == nil && y > 0 {
		year = y
	}
	if m, err := strconv.Atoi(c.Query("month")); err == nil && m >= 1 && m <= 12 {
		month = m
	}

	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0)

	var items []model.ContentItem
	if err := db.Where("publish_date >= ? AND publish_date < ?", start, end).
		Order("publish_date asc").Find(&items).Error; err != nil {
		c.JSON(500, gin.H{"error": "Failed to load calendar"})
		return
	}
	c.JSON(200, gin.H{"items": items, "year": year, "month": month})
}

func CreateContentItem(c *gin.Context, db *gorm.DB) {
	var request dto.CreateContentRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}

	item := model.ContentItem{
		Title:         request.Title,
		Description:   request.Description,
		Platform:      request.Platform,
		Status:        request.Status,
		PublishDate:   request.PublishDate,
		DriveLink:     request.DriveLink,
		Format:        request.Format,
		ReferenceLink: request.ReferenceLink,
	}
	if err := db.Create(&item).Error; err != nil {
		c.JSON(500, gin.H{"error": "Failed to create content"})
		return
	}
	c.JSON(201, gin.H{"message": "Content created successfully", "item": item})
}

func UpdateContentItem(c *gin.Context, db *gorm.DB) {
	var request dto.UpdateContentRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}

	var item model.ContentItem
	if err := db.Where("id = ?", c.Param("id")).First(&item).Error; err != nil {
		c.JSON(404, gin.H{"error": "Content not found"})
		return
	}

	updates := map[string]interface{}{}
	if request.Title != nil {
		updates["title"] = *request.Title
	}
	if request.Description != nil {
		updates["description"] = *request.Description
	}
	if request.Platform != nil {
		updates["platform"] = *request.Platform
	}
	if request.Status != nil {
		updates["status"] = *request.Status
	}
	if request.PublishDate != nil {
		updates["publish_date"] = *request.PublishDate
	}
	if request.DriveLink != nil {
		updates["drive_link"] = *request.DriveLink
	}
	if request.Format != nil {
		updates["format"] = *request.Format
	}
	if request.ReferenceLink != nil {
		updates["reference_link"] = *request.ReferenceLink
	}
	if request.AdminComments != nil {
		updates["admin_comments"] = *request.AdminComments
	}
	if len(updates) == 0 {
		c.JSON(400, gin.H{"error": "Nothing to update"})
		return
	}

	if err := db.Model(&item).Updates(updates).Error; err != nil {
		c.JSON(500, gin.H{"error": "Failed to update content"})
		return
	}
	c.JSON(200, gin.H{"message": "Content updated successfully", "item": item})
}

func UpdateApproval(c *gin.Context, db *gorm.DB) {
	var request dto.ContentApprovalRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}

	var item model.ContentItem
	if err := db.Where("id = ?", c.Param("id")).First(&item).Error; err != nil {
		c.JSON(404, gin.H{"error": "Content not found"})
		return
	}

	updates := map[string]interface{}{"approval_status": request.ApprovalStatus}
	if request.AdminComments != "" {
		updates["admin_comments"] = request.AdminComments
	}
	if err := db.Model(&item).Updates(updates).Error; err != nil {
		c.JSON(500, gin.H{"error": "Failed to update approval"})
		return
	}
	c.JSON(200, gin.H{"message": "Approval updated successfully", "item": item})
}

func DeleteContentItem(c *gin.Context, db *gorm.DB) {
	itemID := c.Param("id")
	if err := db.Where("content_item_id = ?", itemID).Delete(&model.ContentComment{}).Error; err != nil {
		c.JSON(500, gin.H{"error": "Failed to delete content comments"})
		return
	}
	if err := db.Where("id = ?", itemID).Delete(&model.ContentItem{}).Error; err != nil {
		c.JSON(500, gin.H{"error": "Failed to delete content"})
		return
	}
	c.JSON(200, gin.H{"message": "Content deleted successfully"})
}

func GetContentComments(c *gin.Context, db *gorm.DB) {
	var comments []model.ContentComment
	if err := db.Where("content_item_id = ?", c.Param("id")).Order("created_at asc").Find(&comments).Error; err != nil {
		c.JSON(500, gin.H{"error": "Failed to load comments"})
		return
	}
	c.JSON(200, gin.H{"comments": comments})
}

func CreateContentComment(c *gin.Context, db *gorm.DB) {
	userId := c.MustGet("userId").(string)
	var request dto.ContentCommentRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(400, gin.H{"error": "Invalid input"})
		return
	}

	var item model.ContentItem
	if err := db.Where("id = ?", c.Param("id")).First(&item).Error; err != nil {
		c.JSON(404, gin.H{"error": "Content not found"})
		return
	}

	comment := model.ContentComment{
		ContentItemID: item.ID,
		UserID:        userId,
		Content:       request.Content,
	}
	if err := db.Create(&comment).Error; err != nil {
		c.JSON(500, gin.H{"error": "Failed to create comment"})
		return
	}
	c.JSON(201, gin.H{"message": "Comment created successfully", "comment": comment})
}
