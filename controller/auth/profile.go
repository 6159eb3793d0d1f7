package auth

import (
	"zenitmanager/dto"
	"zenitmanager/middleware"
	"zenitmanager/model"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

func ProfileController(router *gin.Engine, db *gorm.DB) {
	routes := router.Group("/auth", middleware.AccessTokenMiddleware())
	{
		routes.GET("/profile", func(c *gin.Context) {
			GetProfile(c, db)
		})
		routes.PUT("/profile", func(c *gin.Context) {
			UpdateProfile(c, db)
		})
	}
}

func GetProfile(c *gin.Context, db *gorm.DB) {
	userId := c.MustGet("userId").(string)
	var user model.User
	if err := db.Where("user_id = ?", userId).First(&user).Error; err != nil {
		c.JSON(404, gin.H{"error": "User not found"})
		return
	}
	c.JSON(200, gin.H{"user": user})
}

// UpdateProfile rewrites the metadata bag wholesale when one is sent. The
// bag carries the display name and the ai_knowledge_base list; the client
// edits both as full-list rewrites.
func UpdateProfile(c *gin.Context, db *gorm.DB) {
	userId := c.MustGet("userId").(string)
	var request dto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(400, gin.H{"error": "Invalid input"})
		return
	}

	var user model.User
	if err := db.Where("user_id = ?", userId).First(&user).Error; err != nil {
		c.JSON(404, gin.H{"error": "User not found"})
		return
	}

	updates := map[string]interface{}{}
	if request.Name != nil {
		updates["name"] = *request.Name
	}
	if request.AvatarURL != nil {
		updates["avatar_url"] = *request.AvatarURL
	}
	if request.Metadata != nil {
		updates["metadata"] = datatypes.JSONMap(request.Metadata)
	}
	if len(updates) == 0 {
		c.JSON(400, gin.H{"error": "Nothing to update"})
		return
	}

	if err := db.Model(&user).Updates(updates).Error; err != nil {
		c.JSON(500, gin.H{"error": "Failed to update profile"})
		return
	}
	c.JSON(200, gin.H{"message": "Profile updated successfully", "user": user})
}
