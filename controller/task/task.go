package task

import (
	"zenitmanager/dto"
	"zenitmanager/middleware"
	"zenitmanager/model"
	"zenitmanager/services"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

func TaskController(router *gin.Engine, db *gorm.DB) {
	routes := router.Group("/tasks", middleware.AccessTokenMiddleware())
	{
		routes.GET("", func(c *gin.Context) {
			GetTasks(c, db)
		})
		routes.GET("/:id", func(c *gin.Context) {
			GetTask(c, db)
		})
		routes.POST("", func(c *gin.Context) {
			CreateTask(c, db)
		})
		routes.PATCH("/:id", func(c *gin.Context) {
			UpdateTask(c, db)
		})
		routes.DELETE("/:id", func(c *gin.Context) {
			DeleteTask(c, db)
		})
	}
}

func GetTasks(c *gin.Context, db *gorm.DB) {
	var tasks []model.Task
	query := db.Order("created_at desc")
	if projectID := c.Query("project"); projectID != "" && projectID != services.ProjectAll {
		query = query.Where("project_id = ?", projectID)
	}
	if err := query.Find(&tasks).Error; err != nil {
		c.JSON(500, gin.H{"error": "Failed to load tasks"})
		return
	}
	c.JSON(200, gin.H{"tasks": tasks})
}

func GetTask(c *gin.Context, db *gorm.DB) {
	var task model.Task
	if err := db.Where("id = ?", c.Param("id")).First(&task).Error; err != nil {
		c.JSON(404, gin.H{"error": "Task not found"})
		return
	}
	c.JSON(200, gin.H{"task": task})
}

func CreateTask(c *gin.Context, db *gorm.DB) {
	userId := c.MustGet("userId").(string)
	var request dto.CreateTaskRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(400, gin.H{"error": "Invalid input"})
		return
	}

	newTask := model.Task{
		Title:       request.Title,
		CustomID:    request.CustomID,
		ProjectID:   request.ProjectID,
		StatusID:    request.StatusID,
		Description: request.Description,
		Priority:    request.Priority,
		DueDate:     request.DueDate,
		ContextType: request.ContextType,
		ContextID:   request.ContextID,
		ContactID:   request.ContactID,
		ContextName: request.ContextName,
		Assignees:   datatypes.NewJSONSlice(request.Assignees),
		Tags:        datatypes.NewJSONSlice(dedupeTags(request.Tags)),
		Attachments: datatypes.NewJSONSlice(request.Attachments),
		Checklists:  datatypes.NewJSONSlice([]model.Checklist{}),
		CreatedBy:   userId,
	}
	if newTask.Priority == "" {
		newTask.Priority = "medium"
	}

	// Without an explicit status the task lands on the project's first column.
	if newTask.StatusID == nil && newTask.ProjectID != nil {
		first, err := services.FirstProjectStatus(db, *newTask.ProjectID)
		if err != nil {
			c.JSON(500, gin.H{"error": "Failed to resolve project status"})
			return
		}
		if first != nil {
			newTask.StatusID = &first.ID
		}
	}

	if err := db.Create(&newTask).Error; err != nil {
		c.JSON(500, gin.H{"error": "Failed to create task"})
		return
	}

	c.JSON(201, gin.H{"message": "Task created successfully", "task": newTask})
}

// UpdateTask writes only the fields present in the body. Moving a task to
// another project also resets status_id to that project's first status,
// since a status is only valid inside its owning project.
func UpdateTask(c *gin.Context, db *gorm.DB) {
	var request dto.UpdateTaskRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(400, gin.H{"error": "Invalid input"})
		return
	}

	var task model.Task
	if err := db.Where("id = ?", c.Param("id")).First(&task).Error; err != nil {
		c.JSON(404, gin.H{"error": "Task not found"})
		return
	}

	updates := map[string]interface{}{}
	if request.Title != nil {
		if *request.Title == "" {
			c.JSON(400, gin.H{"error": "Title cannot be empty"})
			return
		}
		updates["title"] = *request.Title
	}
	if request.CustomID != nil {
		updates["custom_id"] = *request.CustomID
	}
	if request.Description != nil {
		updates["description"] = *request.Description
	}
	if request.StatusID != nil {
		updates["status_id"] = *request.StatusID
	}
	if request.Priority != nil {
		updates["priority"] = *request.Priority
	}
	if request.DueDate != nil {
		updates["due_date"] = *request.DueDate
		// A postponed task is eligible for a reminder again.
		updates["reminded_at"] = nil
	}
	if request.ContextType != nil {
		updates["context_type"] = *request.ContextType
	}
	if request.ContextID != nil {
		updates["context_id"] = *request.ContextID
	}
	if request.ContactID != nil {
		updates["contact_id"] = *request.ContactID
	}
	if request.ContextName != nil {
		updates["context_name"] = *request.ContextName
	}
	if request.Assignees != nil {
		updates["assignees"] = datatypes.NewJSONSlice(*request.Assignees)
	}
	if request.Tags != nil {
		updates["tags"] = datatypes.NewJSONSlice(dedupeTags(*request.Tags))
	}
	if request.Attachments != nil {
		updates["attachments"] = datatypes.NewJSONSlice(*request.Attachments)
	}
	if request.Checklists != nil {
		updates["checklists"] = datatypes.NewJSONSlice(*request.Checklists)
	}
	if request.ProjectID != nil {
		updates["project_id"] = *request.ProjectID
		first, err := services.FirstProjectStatus(db, *request.ProjectID)
		if err != nil {
			c.JSON(500, gin.H{"error": "Failed to resolve project status"})
			return
		}
		if first != nil {
			updates["status_id"] = first.ID
		} else {
			updates["status_id"] = nil
		}
	}
	if len(updates) == 0 {
		c.JSON(400, gin.H{"error": "Nothing to update"})
		return
	}

	if err := db.Model(&task).Updates(updates).Error; err != nil {
		c.JSON(500, gin.H{"error": "Failed to update task"})
		return
	}
	c.JSON(200, gin.H{"message": "Task updated successfully", "task": task})
}

func DeleteTask(c *gin.Context, db *gorm.DB) {
	taskID := c.Param("id")
	if err := db.Where("task_id = ?", taskID).Delete(&model.TaskComment{}).Error; err != nil {
		c.JSON(500, gin.H{"error": "Failed to delete task comments"})
		return
	}
	if err := db.Where("id = ?", taskID).Delete(&model.Task{}).Error; err != nil {
		c.JSON(500, gin.H{"error": "Failed to delete task"})
		return
	}
	c.JSON(200, gin.H{"message": "Task deleted successfully"})
}

// Tags behave as a set: duplicates are dropped on write, case untouched.
func dedupeTags(tags []string) []string {
	seen := make(map[string]bool, len(tags))
	out := make([]string, 0, len(tags))
	for _, tag := range tags {
		if tag == "" || seen[tag] {
			continue
		}
		seen[tag] = true
		out = append(out, tag)
	}
	return out
}
