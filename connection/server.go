package connection

import (
	"log"
	"zenitmanager/controller/attachments"
	"zenitmanager/controller/auth"
	"zenitmanager/controller/board"
	"zenitmanager/controller/chat"
	"zenitmanager/controller/contact"
	"zenitmanager/controller/content"
	"zenitmanager/controller/dashboard"
	"zenitmanager/controller/notification"
	"zenitmanager/controller/project"
	"zenitmanager/controller/tag"
	"zenitmanager/controller/task"
	"zenitmanager/controller/team"
	"zenitmanager/controller/transaction"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func StartServer() {
	router := gin.Default()

	DB, err := DBConnection()
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	FB, err := FBConnection()
	if err != nil {
		log.Printf("Storage bucket unavailable, uploads disabled: %v", err)
	}

	router.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "Api is running!"})
	})

	router.Use(cors.Default())

	auth.AuthController(router, DB)
	auth.ProfileController(router, DB)

	board.BoardController(router, DB)

	project.ProjectController(router, DB)

	task.TaskController(router, DB)
	task.AssigneeController(router, DB)
	task.ChecklistController(router, DB)
	task.CommentController(router, DB)

	contact.ContactController(router, DB)
	contact.MetricsController(router, DB)
	contact.StudentTaskController(router, DB)

	transaction.TransactionController(router, DB)

	content.ContentController(router, DB)
	content.IdeasController(router, DB)

	chat.ChatController(router, DB)

	tag.TagController(router, DB)

	team.TeamController(router, DB)

	notification.NotificationController(router, DB)

	attachments.AttachmentsController(router, FB)

	dashboard.DashboardController(router, DB)

	router.Run()
}
