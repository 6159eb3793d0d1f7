package services

import (
	"testing"
	"zenitmanager/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddChecklistItemSynthesizesContainer(t *testing.T) {
	task := model.Task{ID: "t1", Title: "x"}

	item := AddChecklistItem(&task, "first step")
	require.Len(t, task.Checklists, 1)
	assert.Equal(t, "Checklist Geral", task.Checklists[0].Name)
	assert.Equal(t, task.ID, task.Checklists[0].TaskID)
	assert.Equal(t, task.Checklists[0].ID, item.ChecklistID)
	assert.False(t, item.IsCompleted)

	AddChecklistItem(&task, "second step")
	require.Len(t, task.Checklists, 1)
	assert.Len(t, task.Checklists[0].Items, 2)
}

func TestToggleChecklistItemDoubleToggle(t *testing.T) {
	task := model.Task{ID: "t1", Title: "x"}
	item := AddChecklistItem(&task, "step")

	require.True(t, ToggleChecklistItem(&task, item.ID))
	assert.True(t, task.Checklists[0].Items[0].IsCompleted)

	require.True(t, ToggleChecklistItem(&task, item.ID))
	assert.False(t, task.Checklists[0].Items[0].IsCompleted)
}

func TestToggleChecklistItemMissing(t *testing.T) {
	task := model.Task{ID: "t1", Title: "x"}
	AddChecklistItem(&task, "step")
	assert.False(t, ToggleChecklistItem(&task, "nope"))
}

func TestDeleteChecklistItem(t *testing.T) {
	task := model.Task{ID: "t1", Title: "x"}
	first := AddChecklistItem(&task, "first")
	second := AddChecklistItem(&task, "second")

	require.True(t, DeleteChecklistItem(&task, first.ID))
	require.Len(t, task.Checklists[0].Items, 1)
	assert.Equal(t, second.ID, task.Checklists[0].Items[0].ID)

	assert.False(t, DeleteChecklistItem(&task, first.ID))
}
