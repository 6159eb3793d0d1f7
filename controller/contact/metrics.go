package contact

import (
	"zenitmanager/dto"
	"zenitmanager/middleware"
	"zenitmanager/model"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func MetricsController(router *gin.Engine, db *gorm.DB) {
	routes := router.Group("/contacts", middleware.AccessTokenMiddleware())
	{
		routes.GET("/:id/metrics", func(c *gin.Context) {
			GetMetrics(c, db)
		})
		routes.POST("/:id/metrics", func(c *gin.Context) {
			CreateMetric(c, db)
		})
	}
}

func GetMetrics(c *gin.Context, db *gorm.DB) {
	var metrics []model.StudentMetric
	if err := db.Where("contact_id = ?", c.Param("id")).Order("created_at desc").Find(&metrics).Error; err != nil {
		c.JSON(500, gin.H{"error": "Failed to load metrics"})
		return
	}
	c.JSON(200, gin.H{"metrics": metrics})
}

// CreateMetric inserts a month row and raises the student's LTV by the
// recorded revenue. LTV only ever goes up.
func CreateMetric(c *gin.Context, db *gorm.DB) {
	var request dto.CreateMetricRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(400, gin.H{"error": "Invalid input"})
		return
	}

	var contact model.Contact
	if err := db.Where("id = ?", c.Param("id")).First(&contact).Error; err != nil {
		c.JSON(404, gin.H{"error": "Contact not found"})
		return
	}

	metric := model.StudentMetric{
		ContactID:        contact.ID,
		MonthYear:        request.MonthYear,
		SalesCount:       request.SalesCount,
		MeetingsBooked:   request.MeetingsBooked,
		MeetingsExecuted: request.MeetingsExecuted,
		RevenueGenerated: request.RevenueGenerated,
	}
	if err := db.Create(&metric).Error; err != nil {
		c.JSON(500, gin.H{"error": "Failed to create metric"})
		return
	}

	if request.RevenueGenerated > 0 {
		newLTV := contact.LTV + request.RevenueGenerated
		if err := db.Model(&contact).Update("ltv", newLTV).Error; err != nil {
			c.JSON(201, gin.H{
				"message": "Metric saved but LTV update failed",
				"metric":  metric,
				"error":   err.Error(),
			})
			return
		}
		contact.LTV = newLTV
	}

	c.JSON(201, gin.H{"message": "Metric created successfully", "metric": metric, "ltv": contact.LTV})
}
