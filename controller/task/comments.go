package task

import (
	"log"
	"zenitmanager/dto"
	"zenitmanager/middleware"
	"zenitmanager/model"
	"zenitmanager/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func CommentController(router *gin.Engine, db *gorm.DB) {
	routes := router.Group("/tasks", middleware.AccessTokenMiddleware())
	{
		routes.GET("/:id/comments", func(c *gin.Context) {
			GetComments(c, db)
		})
		routes.POST("/:id/comments", func(c *gin.Context) {
			CreateComment(c, db)
		})
		routes.DELETE("/:id/comments/:commentID", func(c *gin.Context) {
			DeleteComment(c, db)
		})
	}
}

func GetComments(c *gin.Context, db *gorm.DB) {
	var comments []model.TaskComment
	if err := db.Where("task_id = ?", c.Param("id")).Order("created_at asc").Find(&comments).Error; err != nil {
		c.JSON(500, gin.H{"error": "Failed to load comments"})
		return
	}
	c.JSON(200, gin.H{"comments": comments})
}

// CreateComment appends to the append-only comment list and fans a
// notification out to every current assignee except the commenter.
func CreateComment(c *gin.Context, db *gorm.DB) {
	userId := c.MustGet("userId").(string)
	var request dto.TaskCommentRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(400, gin.H{"error": "Invalid input"})
		return
	}

	var task model.Task
	if err := db.Where("id = ?", c.Param("id")).First(&task).Error; err != nil {
		c.JSON(404, gin.H{"error": "Task not found"})
		return
	}

	var user model.User
	if err := db.Where("user_id = ?", userId).First(&user).Error; err != nil {
		c.JSON(404, gin.H{"error": "User not found"})
		return
	}

	comment := model.TaskComment{
		TaskID:     task.ID,
		UserID:     user.UserID,
		UserName:   user.Name,
		UserAvatar: user.AvatarURL,
		Content:    request.Content,
	}
	if err := db.Create(&comment).Error; err != nil {
		c.JSON(500, gin.H{"error": "Failed to create comment"})
		return
	}

	if err := services.NotifyComment(db, &task, user.UserID, user.Name, comment.Content); err != nil {
		log.Printf("Comment notification failed: %v", err)
	}

	c.JSON(201, gin.H{"message": "Comment created successfully", "comment": comment})
}

func DeleteComment(c *gin.Context, db *gorm.DB) {
	if err := db.Where("id = ? AND task_id = ?", c.Param("commentID"), c.Param("id")).Delete(&model.TaskComment{}).Error; err != nil {
		c.JSON(500, gin.H{"error": "Failed to delete comment"})
		return
	}
	c.JSON(200, gin.H{"message": "Comment deleted successfully"})
}
