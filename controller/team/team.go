package team

import (
	"zenitmanager/dto"
	"zenitmanager/middleware"
	"zenitmanager/model"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func TeamController(router *gin.Engine, db *gorm.DB) {
	routes := router.Group("/team", middleware.AccessTokenMiddleware())
	{
		routes.GET("", func(c *gin.Context) {
			GetMembers(c, db)
		})
		routes.POST("", func(c *gin.Context) {
			CreateMember(c, db)
		})
		routes.PUT("/:id", func(c *gin.Context) {
			UpdateMember(c, db)
		})
		routes.DELETE("/:id", func(c *gin.Context) {
			DeleteMember(c, db)
		})
	}
}

func GetMembers(c *gin.Context, db *gorm.DB) {
	var members []model.TeamMember
	if err := db.Order("name asc").Find(&members).Error; err != nil {
		c.JSON(500, gin.H{"error": "Failed to load team members"})
		return
	}
	c.JSON(200, gin.H{"members": members})
}

func CreateMember(c *gin.Context, db *gorm.DB) {
	var request dto.CreateTeamMemberRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}

	member := model.TeamMember{
		Name:   request.Name,
		Email:  request.Email,
		Role:   request.Role,
		Active: true,
	}
	if member.Role == "" {
		member.Role = "member"
	}

	if err := db.Create(&member).Error; err != nil {
		c.JSON(500, gin.H{"error": "Failed to create team member"})
		return
	}
	c.JSON(201, gin.H{"message": "Team member created successfully", "member": member})
}

func UpdateMember(c *gin.Context, db *gorm.DB) {
	var request dto.UpdateTeamMemberRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}

	var member model.TeamMember
	if err := db.Where("id = ?", c.Param("id")).First(&member).Error; err != nil {
		c.JSON(404, gin.H{"error": "Team member not found"})
		return
	}

	updates := map[string]interface{}{}
	if request.Name != nil {
		updates["name"] = *request.Name
	}
	if request.Email != nil {
		updates["email"] = *request.Email
	}
	if request.Role != nil {
		updates["role"] = *request.Role
	}
	if request.Active != nil {
		updates["active"] = *request.Active
	}
	if len(updates) == 0 {
		c.JSON(400, gin.H{"error": "Nothing to update"})
		return
	}

	if err := db.Model(&member).Updates(updates).Error; err != nil {
		c.JSON(500, gin.H{"error": "Failed to update team member"})
		return
	}
	c.JSON(200, gin.H{"message": "Team member updated successfully", "member": member})
}

func DeleteMember(c *gin.Context, db *gorm.DB) {
	if err := db.Where("id = ?", c.Param("id")).Delete(&model.TeamMember{}).Error; err != nil {
		c.JSON(500, gin.H{"error": "Failed to delete team member"})
		return
	}
	c.JSON(200, gin.H{"message": "Team member deleted successfully"})
}
