package tag

import (
	"zenitmanager/dto"
	"zenitmanager/middleware"
	"zenitmanager/model"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func TagController(router *gin.Engine, db *gorm.DB) {
	routes := router.Group("/tags", middleware.AccessTokenMiddleware())
	{
		routes.GET("", func(c *gin.Context) {
			GetTags(c, db)
		})
		routes.POST("", func(c *gin.Context) {
			CreateTag(c, db)
		})
		routes.PUT("/:id", func(c *gin.Context) {
			UpdateTag(c, db)
		})
		routes.DELETE("/:id", func(c *gin.Context) {
			DeleteTag(c, db)
		})
	}
}

func GetTags(c *gin.Context, db *gorm.DB) {
	query := db.Order("label asc")
	if tagType := c.Query("type"); tagType != "" {
		query = query.Where("type = ?", tagType)
	}
	var tags []model.SystemTag
	if err := query.Find(&tags).Error; err != nil {
		c.JSON(500, gin.H{"error": "Failed to load tags"})
		return
	}
	c.JSON(200, gin.H{"tags": tags})
}

// CreateTag enforces label uniqueness per type at the handler; the schema
// carries no constraint.
func CreateTag(c *gin.Context, db *gorm.DB) {
	var request dto.TagRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}

	var existing model.SystemTag
	if err := db.Where("label = ? AND type = ?", request.Label, request.Type).First(&existing).Error; err == nil {
		c.JSON(400, gin.H{"error": "Label already exists for this type"})
		return
	}

	tag := model.SystemTag{
		Label: request.Label,
		Color: request.Color,
		Type:  request.Type,
	}
	if err := db.Create(&tag).Error; err != nil {
		c.JSON(500, gin.H{"error": "Failed to create tag"})
		return
	}
	c.JSON(201, gin.H{"message": "Tag created successfully", "tag": tag})
}

func UpdateTag(c *gin.Context, db *gorm.DB) {
	var request dto.TagRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}

	var tag model.SystemTag
	if err := db.Where("id = ?", c.Param("id")).First(&tag).Error; err != nil {
		c.JSON(404, gin.H{"error": "Tag not found"})
		return
	}

	updates := map[string]interface{}{
		"label": request.Label,
		"color": request.Color,
		"type":  request.Type,
	}
	if err := db.Model(&tag).Updates(updates).Error; err != nil {
		c.JSON(500, gin.H{"error": "Failed to update tag"})
		return
	}
	c.JSON(200, gin.H{"message": "Tag updated successfully", "tag": tag})
}

// DeleteTag removes only the tag. Records referencing its label by string
// keep the label and lose the color mapping.
func DeleteTag(c *gin.Context, db *gorm.DB) {
	if err := db.Where("id = ?", c.Param("id")).Delete(&model.SystemTag{}).Error; err != nil {
		c.JSON(500, gin.H{"error": "Failed to delete tag"})
		return
	}
	c.JSON(200, gin.H{"message": "Tag deleted successfully"})
}
