package dashboard

import (
	"sort"
	"time"
	"zenitmanager/middleware"
	"zenitmanager/model"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func DashboardController(router *gin.Engine, db *gorm.DB) {
	routes := router.Group("/dashboard", middleware.AccessTokenMiddleware())
	{
		routes.GET("", func(c *gin.Context) {
			GetDashboard(c, db)
		})
	}
}

type activityEntry struct {
	Kind      string    `json:"kind"`
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"created_at"`
}

func GetDashboard(c *gin.Context, db *gorm.DB) {
	userId := c.MustGet("userId").(string)

	var tasks []model.Task
	if err := db.Order("due_date asc").Find(&tasks).Error; err != nil {
		c.JSON(500, gin.H{"error": "Failed to load tasks"})
		return
	}
	var statuses []model.TaskStatus
	if err := db.Find(&statuses).Error; err != nil {
		c.JSON(500, gin.H{"error": "Failed to load statuses"})
		return
	}

	statusType := make(map[string]string, len(statuses))
	for _, s := range statuses {
		statusType[s.ID] = s.Type
	}

	// Open tasks assigned to the caller, closed stages excluded.
	myTasks := []model.Task{}
	pendingCount := 0
	for _, t := range tasks {
		open := true
		if t.StatusID != nil {
			if st, ok := statusType[*t.StatusID]; ok && (st == "done" || st == "closed") {
				open = false
			}
		}
		if !open {
			continue
		}
		pendingCount++
		for _, a := range t.Assignees {
			if a.ID == userId {
				myTasks = append(myTasks, t)
				break
			}
		}
	}

	var activeStudents int64
	db.Model(&model.Contact{}).Where("type = ? AND status = ?", "student", "active").Count(&activeStudents)

	var revenue float64
	db.Model(&model.Transaction{}).Where("type = ? AND status = ?", "income", "paid").
		Select("COALESCE(SUM(amount), 0)").Scan(&revenue)

	c.JSON(200, gin.H{
		"my_tasks": myTasks,
		"activity": recentActivity(db, tasks),
		"stats": gin.H{
			"active_students": activeStudents,
			"revenue":         revenue,
			"pending_tasks":   pendingCount,
		},
	})
}

// recentActivity merges the latest five records of each kind and keeps the
// eight newest overall.
func recentActivity(db *gorm.DB, tasks []model.Task) []activityEntry {
	entries := []activityEntry{}

	var transactions []model.Transaction
	db.Order("created_at desc").Limit(5).Find(&transactions)
	for _, t := range transactions {
		entries = append(entries, activityEntry{Kind: "transaction", ID: t.ID, Title: t.Description, CreatedAt: t.CreatedAt})
	}

	var contacts []model.Contact
	db.Order("created_at desc").Limit(5).Find(&contacts)
	for _, ct := range contacts {
		entries = append(entries, activityEntry{Kind: "contact", ID: ct.ID, Title: ct.FullName, CreatedAt: ct.CreatedAt})
	}

	var items []model.ContentItem
	db.Order("created_at desc").Limit(5).Find(&items)
	for _, i := range items {
		entries = append(entries, activityEntry{Kind: "content", ID: i.ID, Title: i.Title, CreatedAt: i.CreatedAt})
	}

	sort.SliceStable(tasks, func(i, j int) bool {
		return tasks[i].CreatedAt.After(tasks[j].CreatedAt)
	})
	for i, t := range tasks {
		if i == 5 {
			break
		}
		entries = append(entries, activityEntry{Kind: "task", ID: t.ID, Title: t.Title, CreatedAt: t.CreatedAt})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].CreatedAt.After(entries[j].CreatedAt)
	})
	if len(entries) > 8 {
		entries = entries[:8]
	}
	return entries
}
