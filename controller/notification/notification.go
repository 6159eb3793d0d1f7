package notification

import (
	"zenitmanager/middleware"
	"zenitmanager/model"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func NotificationController(router *gin.Engine, db *gorm.DB) {
	routes := router.Group("/notifications", middleware.AccessTokenMiddleware())
	{
		routes.GET("", func(c *gin.Context) {
			GetNotifications(c, db)
		})
		routes.PUT("/:id/read", func(c *gin.Context) {
			MarkRead(c, db)
		})
		routes.PUT("/read-all", func(c *gin.Context) {
			MarkAllRead(c, db)
		})
		routes.DELETE("/:id", func(c *gin.Context) {
			DeleteNotification(c, db)
		})
	}
}

// GetNotifications returns the caller's latest ten, newest first.
func GetNotifications(c *gin.Context, db *gorm.DB) {
	userId := c.MustGet("userId").(string)
	var notifications []model.Notification
	if err := db.Where("user_id = ?", userId).Order("created_at desc").Limit(10).Find(&notifications).Error; err != nil {
		c.JSON(500, gin.H{"error": "Failed to load notifications"})
		return
	}
	c.JSON(200, gin.H{"notifications": notifications})
}

func MarkRead(c *gin.Context, db *gorm.DB) {
	userId := c.MustGet("userId").(string)
	result := db.Model(&model.Notification{}).
		Where("id = ? AND user_id = ?", c.Param("id"), userId).
		Update("read", true)
	if result.Error != nil {
		c.JSON(500, gin.H{"error": "Failed to mark notification as read"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(404, gin.H{"error": "Notification not found"})
		return
	}
	c.JSON(200, gin.H{"message": "Notification marked as read"})
}

func MarkAllRead(c *gin.Context, db *gorm.DB) {
	userId := c.MustGet("userId").(string)
	if err := db.Model(&model.Notification{}).
		Where("user_id = ? AND read = ?", userId, false).
		Update("read", true).Error; err != nil {
		c.JSON(500, gin.H{"error": "Failed to mark notifications as read"})
		return
	}
	c.JSON(200, gin.H{"message": "All notifications marked as read"})
}

func DeleteNotification(c *gin.Context, db *gorm.DB) {
	userId := c.MustGet("userId").(string)
	if err := db.Where("id = ? AND user_id = ?", c.Param("id"), userId).
		Delete(&model.Notification{}).Error; err != nil {
		c.JSON(500, gin.H{"error": "Failed to delete notification"})
		return
	}
	c.JSON(200, gin.H{"message": "Notification deleted successfully"})
}
