package project

import (
	"zenitmanager/dto"
	"zenitmanager/middleware"
	"zenitmanager/model"
	"zenitmanager/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func ProjectController(router *gin.Engine, db *gorm.DB) {
	routes := router.Group("/projects", middleware.AccessTokenMiddleware())
	{
		routes.GET("", func(c *gin.Context) {
			GetProjects(c, db)
		})
		routes.POST("", func(c *gin.Context) {
			CreateProject(c, db)
		})
		routes.PUT("/:id", func(c *gin.Context) {
			UpdateProject(c, db)
		})
		routes.DELETE("/:id", func(c *gin.Context) {
			DeleteProject(c, db)
		})
	}
}

func GetProjects(c *gin.Context, db *gorm.DB) {
	var projects []model.Project
	if err := db.Order("created_at asc").Find(&projects).Error; err != nil {
		c.JSON(500, gin.H{"error": "Failed to load projects"})
		return
	}
	c.JSON(200, gin.H{"projects": projects})
}

// CreateProject inserts the project then provisions its four default
// statuses. When the status insert fails the project stays in place with
// no statuses and the error is reported.
func CreateProject(c *gin.Context, db *gorm.DB) {
	var request dto.CreateProjectRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(400, gin.H{"error": "Invalid input"})
		return
	}

	project := model.Project{
		Name:        request.Name,
		Description: request.Description,
		Color:       request.Color,
		Icon:        request.Icon,
	}
	if project.Color == "" {
		project.Color = "#3B82F6"
	}
	if project.Icon == "" {
		project.Icon = "briefcase"
	}

	statuses, err := services.CreateProjectWithDefaults(db, &project)
	if err != nil {
		c.JSON(500, gin.H{"error": "Failed to create project: " + err.Error()})
		return
	}

	c.JSON(201, gin.H{
		"message":  "Project created successfully",
		"project":  project,
		"statuses": statuses,
	})
}

func UpdateProject(c *gin.Context, db *gorm.DB) {
	projectID := c.Param("id")
	var request dto.UpdateProjectRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(400, gin.H{"error": "Invalid input"})
		return
	}

	var project model.Project
	if err := db.Where("id = ?", projectID).First(&project).Error; err != nil {
		c.JSON(404, gin.H{"error": "Project not found"})
		return
	}

	updates := map[string]interface{}{}
	if request.Name != nil {
		updates["name"] = *request.Name
	}
	if request.Description != nil {
		updates["description"] = *request.Description
	}
	if request.Color != nil {
		updates["color"] = *request.Color
	}
	if request.Icon != nil {
		updates["icon"] = *request.Icon
	}
	if len(updates) == 0 {
		c.JSON(400, gin.H{"error": "Nothing to update"})
		return
	}

	if err := db.Model(&project).Updates(updates).Error; err != nil {
		c.JSON(500, gin.H{"error": "Failed to update project"})
		return
	}
	c.JSON(200, gin.H{"message": "Project updated successfully", "project": project})
}

func DeleteProject(c *gin.Context, db *gorm.DB) {
	projectID := c.Param("id")

	var project model.Project
	if err := db.Where("id = ?", projectID).First(&project).Error; err != nil {
		c.JSON(404, gin.H{"error": "Project not found"})
		return
	}

	if err := services.DeleteProjectCascade(db, projectID); err != nil {
		c.JSON(500, gin.H{"error": "Failed to delete project: " + err.Error()})
		return
	}
	c.JSON(200, gin.H{"message": "Project deleted successfully"})
}
