package services

import (
	"zenitmanager/model"

	"github.com/google/uuid"
)

const defaultChecklistName = "Checklist Geral"

// AddChecklistItem appends an item to the task's checklist, synthesizing
// the single default container on first use. The whole checklists slice is
// rewritten on every mutation.
func AddChecklistItem(task *model.Task, content string) model.ChecklistItem {
	checklists := []model.Checklist(task.Checklists)
	if len(checklists) == 0 {
		checklists = append(checklists, model.Checklist{
			ID:     uuid.NewString(),
			TaskID: task.ID,
			Name:   defaultChecklistName,
			Items:  []model.ChecklistItem{},
		})
	}
	item := model.ChecklistItem{
		ID:          uuid.NewString(),
		ChecklistID: checklists[0].ID,
		Content:     content,
		IsCompleted: false,
	}
	checklists[0].Items = append(checklists[0].Items, item)
	task.Checklists = checklists
	return item
}

// ToggleChecklistItem flips is_completed on the named item. Returns false
// when no item matches.
func ToggleChecklistItem(task *model.Task, itemID string) bool {
	checklists := []model.Checklist(task.Checklists)
	for ci := range checklists {
		for ii := range checklists[ci].Items {
			if checklists[ci].Items[ii].ID == itemID {
				checklists[ci].Items[ii].IsCompleted = !checklists[ci].Items[ii].IsCompleted
				task.Checklists = checklists
				return true
			}
		}
	}
	return false
}

// DeleteChecklistItem removes the named item. Returns false when no item
// matches.
func DeleteChecklistItem(task *model.Task, itemID string) bool {
	checklists := []model.Checklist(task.Checklists)
	for ci := range checklists {
		for ii := range checklists[ci].Items {
			if checklists[ci].Items[ii].ID == itemID {
				checklists[ci].Items = append(checklists[ci].Items[:ii], checklists[ci].Items[ii+1:]...)
				task.Checklists = checklists
				return true
			}
		}
	}
	return false
}
