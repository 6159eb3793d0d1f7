package services

import (
	"log"
	"time"
	"zenitmanager/model"

	"gorm.io/gorm"
)

// RemindDueTasks notifies the assignees of every task due within the next
// 24 hours whose status is not a done/closed stage. A reminded_at stamp on
// the task keeps it from being reminded twice for the same due date.
func RemindDueTasks(db *gorm.DB, now time.Time) (int, error) {
	var tasks []model.Task
	horizon := now.Add(24 * time.Hour)
	err := db.Where("due_date IS NOT NULL AND due_date > ? AND due_date <= ?", now, horizon).
		Where("reminded_at IS NULL").
		Find(&tasks).Error
	if err != nil {
		return 0, err
	}

	var statuses []model.TaskStatus
	if err := db.Find(&statuses).Error; err != nil {
		return 0, err
	}
	statusType := make(map[string]string, len(statuses))
	for _, s := range statuses {
		statusType[s.ID] = s.Type
	}

	reminded := 0
	for i := range tasks {
		task := &tasks[i]
		if task.StatusID != nil {
			if st, ok := statusType[*task.StatusID]; ok && (st == "done" || st == "closed") {
				continue
			}
		}
		if len(task.Assignees) == 0 {
			continue
		}
		for _, assignee := range task.Assignees {
			if err := NotifyDueSoon(db, task, assignee); err != nil {
				log.Printf("Reminder notification failed for task %s: %v", task.ID, err)
			}
		}
		if err := db.Model(task).Update("reminded_at", now).Error; err != nil {
			log.Printf("Failed to stamp reminder on task %s: %v", task.ID, err)
			continue
		}
		reminded++
	}
	return reminded, nil
}
