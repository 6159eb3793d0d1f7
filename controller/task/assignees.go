package task

import (
	"log"
	"zenitmanager/dto"
	"zenitmanager/middleware"
	"zenitmanager/model"
	"zenitmanager/services"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

func AssigneeController(router *gin.Engine, db *gorm.DB) {
	routes := router.Group("/tasks", middleware.AccessTokenMiddleware())
	{
		routes.PUT("/:id/assignees/toggle", func(c *gin.Context) {
			ToggleAssignee(c, db)
		})
	}
}

// ToggleAssignee adds or removes one profile snapshot, rewriting the whole
// embedded list. A newly assigned user other than the caller gets exactly
// one notification; self-assignment notifies nobody.
func ToggleAssignee(c *gin.Context, db *gorm.DB) {
	userId := c.MustGet("userId").(string)
	var request dto.ToggleAssigneeRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(400, gin.H{"error": "Invalid input"})
		return
	}
	if request.Assignee.ID == "" {
		c.JSON(400, gin.H{"error": "Assignee id is required"})
		return
	}

	var task model.Task
	if err := db.Where("id = ?", c.Param("id")).First(&task).Error; err != nil {
		c.JSON(404, gin.H{"error": "Task not found"})
		return
	}

	assignees := []model.Assignee(task.Assignees)
	added := true
	for i, a := range assignees {
		if a.ID == request.Assignee.ID {
			assignees = append(assignees[:i], assignees[i+1:]...)
			added = false
			break
		}
	}
	if added {
		assignees = append(assignees, request.Assignee)
	}

	if err := db.Model(&task).Update("assignees", datatypes.NewJSONSlice(assignees)).Error; err != nil {
		c.JSON(500, gin.H{"error": "Failed to update assignees"})
		return
	}
	task.Assignees = datatypes.NewJSONSlice(assignees)

	if added {
		if err := services.NotifyAssignment(db, &task, request.Assignee, userId); err != nil {
			log.Printf("Assignment notification failed: %v", err)
		}
	}

	c.JSON(200, gin.H{
		"message":   "Assignees updated successfully",
		"added":     added,
		"assignees": assignees,
	})
}
