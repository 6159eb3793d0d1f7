package board

import (
	"log"
	"zenitmanager/middleware"
	"zenitmanager/model"
	"zenitmanager/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func BoardController(router *gin.Engine, db *gorm.DB) {
	routes := router.Group("/board", middleware.AccessTokenMiddleware())
	{
		routes.GET("", func(c *gin.Context) {
			GetBoard(c, db)
		})
		routes.GET("/view", func(c *gin.Context) {
			GetBoardView(c, db)
		})
	}
}

// GetBoard loads projects, statuses and tasks with three independent
// queries. If any of them fails, all three results are discarded and the
// built-in fixture dataset is served instead, so the board is never empty.
func GetBoard(c *gin.Context, db *gorm.DB) {
	projects, statuses, tasks, err := loadBoard(db)
	if err != nil {
		log.Printf("Board load failed, serving fixture dataset: %v", err)
		projects, statuses, tasks = services.FixtureDataset()
		c.JSON(200, gin.H{
			"projects": projects,
			"statuses": statuses,
			"tasks":    tasks,
			"fallback": true,
		})
		return
	}

	c.JSON(200, gin.H{
		"projects": projects,
		"statuses": statuses,
		"tasks":    tasks,
		"fallback": false,
	})
}

func GetBoardView(c *gin.Context, db *gorm.DB) {
	activeProject := c.DefaultQuery("project", services.ProjectAll)
	mode := c.DefaultQuery("mode", "kanban")

	projects, statuses, tasks, err := loadBoard(db)
	if err != nil {
		log.Printf("Board load failed, serving fixture dataset: %v", err)
		projects, statuses, tasks = services.FixtureDataset()
	}

	// A filter pointing at a project that no longer exists resets to "all".
	if activeProject != services.ProjectAll {
		found := false
		for _, p := range projects {
			if p.ID == activeProject {
				found = true
				break
			}
		}
		if !found {
			activeProject = services.ProjectAll
		}
	}

	switch mode {
	case "list":
		rows := services.ListRows(tasks, statuses, activeProject)
		c.JSON(200, gin.H{"mode": mode, "project": activeProject, "rows": rows})
	case "kanban":
		columns := services.KanbanColumns(tasks, statuses, activeProject)
		c.JSON(200, gin.H{"mode": mode, "project": activeProject, "columns": columns})
	default:
		c.JSON(400, gin.H{"error": "Invalid view mode"})
	}
}

func loadBoard(db *gorm.DB) ([]model.Project, []model.TaskStatus, []model.Task, error) {
	var projects []model.Project
	var statuses []model.TaskStatus
	var tasks []model.Task

	if err := db.Order("created_at asc").Find(&projects).Error; err != nil {
		return nil, nil, nil, err
	}
	if err := db.Order("order_index asc").Find(&statuses).Error; err != nil {
		return nil, nil, nil, err
	}
	if err := db.Order("created_at desc").Find(&tasks).Error; err != nil {
		return nil, nil, nil, err
	}
	return projects, statuses, tasks, nil
}
