package chat

import (
	"zenitmanager/dto"
	"zenitmanager/middleware"
	"zenitmanager/model"
	"zenitmanager/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func ChatController(router *gin.Engine, db *gorm.DB) {
	routes := router.Group("/chat", middleware.AccessTokenMiddleware())
	{
		routes.POST("", func(c *gin.Context) {
			SendMessage(c, db)
		})
	}
}

// SendMessage answers one chat turn. The caller's ai_knowledge_base
// metadata becomes the system instruction.
func SendMessage(c *gin.Context, db *gorm.DB) {
	userId := c.MustGet("userId").(string)
	var request dto.ChatRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(400, gin.H{"error": "Invalid input"})
		return
	}

	var user model.User
	if err := db.Where("user_id = ?", userId).First(&user).Error; err != nil {
		c.JSON(404, gin.H{"error": "User not found"})
		return
	}

	reply, err := services.GenerateChatReply(c.Request.Context(), services.KnowledgeContext(user.Metadata), request.Message)
	if err != nil {
		c.JSON(502, gin.H{"error": "Erro ao conectar com o cérebro da empresa."})
		return
	}
	c.JSON(200, gin.H{"reply": reply})
}
