package content

import (
	"zenitmanager/dto"
	"zenitmanager/middleware"
	"zenitmanager/model"
	"zenitmanager/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func IdeasController(router *gin.Engine, db *gorm.DB) {
	routes := router.Group("/content", middleware.AccessTokenMiddleware())
	{
		routes.POST("/ideas", func(c *gin.Context) {
			GenerateIdeas(c, db)
		})
	}
}

// GenerateIdeas asks the model for five headline ideas on a topic, fed
// with the caller's knowledge base as company context.
func GenerateIdeas(c *gin.Context, db *gorm.DB) {
	userId := c.MustGet("userId").(string)
	var request dto.ContentIdeasRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(400, gin.H{"error": "Invalid input"})
		return
	}

	var user model.User
	if err := db.Where("user_id = ?", userId).First(&user).Error; err != nil {
		c.JSON(404, gin.H{"error": "User not found"})
		return
	}

	ideas, err := services.GenerateContentIdeas(c.Request.Context(), services.KnowledgeContext(user.Metadata), request.Topic)
	if err != nil {
		c.JSON(502, gin.H{"error": "Erro ao conectar com a IA."})
		return
	}
	c.JSON(200, gin.H{"ideas": ideas})
}
