package contact

import (
	"time"
	"zenitmanager/dto"
	"zenitmanager/middleware"
	"zenitmanager/model"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func StudentTaskController(router *gin.Engine, db *gorm.DB) {
	routes := router.Group("/contacts", middleware.AccessTokenMiddleware())
	{
		routes.GET("/:id/tasks", func(c *gin.Context) {
			GetStudentTasks(c, db)
		})
		routes.POST("/:id/tasks", func(c *gin.Context) {
			CreateStudentTask(c, db)
		})
		routes.POST("/:id/tasks/onboarding", func(c *gin.Context) {
			AddOnboardingTemplate(c, db)
		})
	}
}

func GetStudentTasks(c *gin.Context, db *gorm.DB) {
	var tasks []model.Task
	if err := db.Where("contact_id = ?", c.Param("id")).Order("due_date asc").Find(&tasks).Error; err != nil {
		c.JSON(500, gin.H{"error": "Failed to load tasks"})
		return
	}
	c.JSON(200, gin.H{"tasks": tasks})
}

// CreateStudentTask is the quick-add used from the student panel: no
// project, contact-linked, context fields filled from the student record.
func CreateStudentTask(c *gin.Context, db *gorm.DB) {
	userId := c.MustGet("userId").(string)
	var request dto.StudentTaskRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(400, gin.H{"error": "Invalid input"})
		return
	}

	var contact model.Contact
	if err := db.Where("id = ?", c.Param("id")).First(&contact).Error; err != nil {
		c.JSON(404, gin.H{"error": "Contact not found"})
		return
	}

	task := model.Task{
		Title:       request.Title,
		Priority:    request.Priority,
		DueDate:     request.DueDate,
		ContactID:   &contact.ID,
		ContextType: "aluno_zenit",
		ContextName: contact.FullName,
		CreatedBy:   userId,
	}
	if task.Priority == "" {
		task.Priority = "medium"
	}

	if err := db.Create(&task).Error; err != nil {
		c.JSON(500, gin.H{"error": "Failed to create task"})
		return
	}
	c.JSON(201, gin.H{"message": "Task created successfully", "task": task})
}

// AddOnboardingTemplate inserts the fixed four-task onboarding checklist
// for a student.
func AddOnboardingTemplate(c *gin.Context, db *gorm.DB) {
	userId := c.MustGet("userId").(string)

	var contact model.Contact
	if err := db.Where("id = ?", c.Param("id")).First(&contact).Error; err != nil {
		c.JSON(404, gin.H{"error": "Contact not found"})
		return
	}

	now := time.Now()
	tomorrow := now.Add(24 * time.Hour)
	template := []model.Task{
		{Title: "Enviar acesso à plataforma", Priority: "high", DueDate: &now},
		{Title: "Agendar Call de Boas-vindas", Priority: "high", DueDate: &tomorrow},
		{Title: "Adicionar ao grupo de WhatsApp", Priority: "medium", DueDate: &now},
		{Title: "Criar pasta no Drive", Priority: "low", DueDate: &now},
	}
	for i := range template {
		template[i].ContactID = &contact.ID
		template[i].ContextType = "aluno_zenit"
		template[i].ContextName = contact.FullName
		template[i].CreatedBy = userId
	}

	if err := db.Create(&template).Error; err != nil {
		c.JSON(500, gin.H{"error": "Failed to create onboarding tasks"})
		return
	}
	c.JSON(201, gin.H{"message": "Onboarding tasks created successfully", "tasks": template})
}
