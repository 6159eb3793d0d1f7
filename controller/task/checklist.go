package task

import (
	"zenitmanager/dto"
	"zenitmanager/middleware"
	"zenitmanager/model"
	"zenitmanager/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func ChecklistController(router *gin.Engine, db *gorm.DB) {
	routes := router.Group("/tasks", middleware.AccessTokenMiddleware())
	{
		routes.POST("/:id/checklist/items", func(c *gin.Context) {
			AddChecklistItem(c, db)
		})
		routes.PUT("/:id/checklist/items/:itemID/toggle", func(c *gin.Context) {
			ToggleChecklistItem(c, db)
		})
		routes.DELETE("/:id/checklist/items/:itemID", func(c *gin.Context) {
			DeleteChecklistItem(c, db)
		})
	}
}

// The checklist structure is embedded on the task, so every item mutation
// persists by rewriting the whole checklists column.

func AddChecklistItem(c *gin.Context, db *gorm.DB) {
	var request dto.ChecklistItemRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(400, gin.H{"error": "Invalid input"})
		return
	}

	var task model.Task
	if err := db.Where("id = ?", c.Param("id")).First(&task).Error; err != nil {
		c.JSON(404, gin.H{"error": "Task not found"})
		return
	}

	item := services.AddChecklistItem(&task, request.Content)
	if err := db.Model(&task).Update("checklists", task.Checklists).Error; err != nil {
		c.JSON(500, gin.H{"error": "Failed to save checklist"})
		return
	}

	c.JSON(201, gin.H{
		"message":    "Checklist item added successfully",
		"item":       item,
		"checklists": task.Checklists,
	})
}

func ToggleChecklistItem(c *gin.Context, db *gorm.DB) {
	var task model.Task
	if err := db.Where("id = ?", c.Param("id")).First(&task).Error; err != nil {
		c.JSON(404, gin.H{"error": "Task not found"})
		return
	}

	if !services.ToggleChecklistItem(&task, c.Param("itemID")) {
		c.JSON(404, gin.H{"error": "Checklist item not found"})
		return
	}
	if err := db.Model(&task).Update("checklists", task.Checklists).Error; err != nil {
		c.JSON(500, gin.H{"error": "Failed to save checklist"})
		return
	}

	c.JSON(200, gin.H{
		"message":    "Checklist item toggled successfully",
		"checklists": task.Checklists,
	})
}

func DeleteChecklistItem(c *gin.Context, db *gorm.DB) {
	var task model.Task
	if err := db.Where("id = ?", c.Param("id")).First(&task).Error; err != nil {
		c.JSON(404, gin.H{"error": "Task not found"})
		return
	}

	if !services.DeleteChecklistItem(&task, c.Param("itemID")) {
		c.JSON(404, gin.H{"error": "Checklist item not found"})
		return
	}
	if err := db.Model(&task).Update("checklists", task.Checklists).Error; err != nil {
		c.JSON(500, gin.H{"error": "Failed to save checklist"})
		return
	}

	c.JSON(200, gin.H{
		"message":    "Checklist item deleted successfully",
		"checklists": task.Checklists,
	})
}
