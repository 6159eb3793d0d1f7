package services

import (
	"fmt"
	"zenitmanager/model"

	"gorm.io/gorm"
)

// TaskLink builds the deep link that opens a task's detail view.
func TaskLink(taskID string) string {
	return "/tasks?taskId=" + taskID
}

// NotifyAssignment records a notification for a newly assigned user.
// Self-assignment never notifies.
func NotifyAssignment(db *gorm.DB, task *model.Task, assignee model.Assignee, actorID string) error {
	if assignee.ID == actorID {
		return nil
	}
	notification := model.Notification{
		UserID:  assignee.ID,
		Title:   "Você foi atribuído a uma tarefa",
		Message: fmt.Sprintf("Você foi adicionado à tarefa %q.", task.Title),
		Link:    TaskLink(task.ID),
	}
	return db.Create(&notification).Error
}

// NotifyComment fans a comment out to every assignee except the commenter.
// The comment body is truncated at 50 characters.
func NotifyComment(db *gorm.DB, task *model.Task, commenterID, commenterName, content string) error {
	preview := content
	if len([]rune(preview)) > 50 {
		preview = string([]rune(preview)[:50]) + "..."
	}
	for _, assignee := range task.Assignees {
		if assignee.ID == commenterID {
			continue
		}
		notification := model.Notification{
			UserID:  assignee.ID,
			Title:   fmt.Sprintf("Novo comentário em %q", task.Title),
			Message: fmt.Sprintf("%s comentou: %q", commenterName, preview),
			Link:    TaskLink(task.ID),
		}
		if err := db.Create(&notification).Error; err != nil {
			return err
		}
	}
	return nil
}

// NotifyDueSoon records a due-date reminder for one assignee.
func NotifyDueSoon(db *gorm.DB, task *model.Task, assignee model.Assignee) error {
	notification := model.Notification{
		UserID:  assignee.ID,
		Title:   "Tarefa vence em breve",
		Message: fmt.Sprintf("A tarefa %q vence nas próximas 24 horas.", task.Title),
		Link:    TaskLink(task.ID),
	}
	return db.Create(&notification).Error
}
