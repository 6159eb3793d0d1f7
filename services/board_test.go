package services

import (
	"testing"
	"time"
	"zenitmanager/model"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

func buildBoard() ([]model.Task, []model.TaskStatus) {
	statuses := []model.TaskStatus{
		{ID: "st-todo", ProjectID: "p1", Name: "A Fazer", Color: "#9CA3AF", Type: "not_started", OrderIndex: 0},
		{ID: "st-doing", ProjectID: "p1", Name: "Em Andamento", Color: "#3B82F6", Type: "active", OrderIndex: 1},
		{ID: "st-done", ProjectID: "p1", Name: "Concluído", Color: "#10B981", Type: "done", OrderIndex: 3},
		{ID: "st-review", ProjectID: "p1", Name: "Revisão", Color: "#F59E0B", Type: "active", OrderIndex: 2},
		{ID: "st-other", ProjectID: "p2", Name: "Backlog", Color: "#6B7280", Type: "not_started", OrderIndex: 0},
	}
	now := time.Now()
	tasks := []model.Task{
		{ID: "t1", ProjectID: strPtr("p1"), Title: "one", StatusID: strPtr("st-todo"), CreatedAt: now.Add(-3 * time.Hour)},
		{ID: "t2", ProjectID: strPtr("p1"), Title: "two", StatusID: strPtr("st-doing"), CreatedAt: now.Add(-2 * time.Hour)},
		{ID: "t3", ProjectID: strPtr("p1"), Title: "three", StatusID: strPtr("st-done"), CreatedAt: now.Add(-1 * time.Hour)},
		{ID: "t4", ProjectID: strPtr("p2"), Title: "four", StatusID: strPtr("st-other"), CreatedAt: now},
		{ID: "t5", ProjectID: strPtr("p1"), Title: "orphan", StatusID: strPtr("st-gone"), CreatedAt: now},
		{ID: "t6", Title: "statusless", CreatedAt: now},
	}
	return tasks, statuses
}

func TestKanbanColumnsProjectOrder(t *testing.T) {
	tasks, statuses := buildBoard()
	columns := KanbanColumns(tasks, statuses, "p1")

	assert.Len(t, columns, 4)
	assert.Equal(t, []string{"A Fazer", "Em Andamento", "Revisão", "Concluído"}, []string{
		columns[0].Name, columns[1].Name, columns[2].Name, columns[3].Name,
	})
	assert.Len(t, columns[0].Tasks, 1)
	assert.Equal(t, "t1", columns[0].Tasks[0].ID)
	assert.Len(t, columns[2].Tasks, 0)
}

func TestKanbanColumnsAllProjects(t *testing.T) {
	tasks, statuses := buildBoard()
	columns := KanbanColumns(tasks, statuses, ProjectAll)

	assert.Len(t, columns, 3)
	assert.Equal(t, "not_started", columns[0].Type)
	assert.Equal(t, "active", columns[1].Type)
	assert.Equal(t, "done", columns[2].Type)

	// t1 and t4 are not_started, t2 active, t3 done; t5 has an
	// unresolvable status and t6 none, neither lands anywhere.
	assert.Len(t, columns[0].Tasks, 2)
	assert.Len(t, columns[1].Tasks, 1)
	assert.Len(t, columns[2].Tasks, 1)

	bucketed := len(columns[0].Tasks) + len(columns[1].Tasks) + len(columns[2].Tasks)
	unresolved := 2
	assert.Equal(t, len(tasks), bucketed+unresolved)
}

func TestKanbanColumnsStableTieBreak(t *testing.T) {
	statuses := []model.TaskStatus{
		{ID: "s-a", ProjectID: "p1", Name: "First", Type: "active", OrderIndex: 1},
		{ID: "s-b", ProjectID: "p1", Name: "Second", Type: "active", OrderIndex: 1},
	}
	columns := KanbanColumns(nil, statuses, "p1")
	assert.Equal(t, "First", columns[0].Name)
	assert.Equal(t, "Second", columns[1].Name)
}

func TestListRowsResolvesStatus(t *testing.T) {
	tasks, statuses := buildBoard()
	rows := ListRows(tasks, statuses, ProjectAll)

	assert.Len(t, rows, len(tasks))
	// Newest first.
	for i := 1; i < len(rows); i++ {
		assert.False(t, rows[i].Task.CreatedAt.After(rows[i-1].Task.CreatedAt))
	}

	byID := map[string]ListRow{}
	for _, r := range rows {
		byID[r.Task.ID] = r
	}
	assert.Equal(t, "A Fazer", byID["t1"].StatusName)
	assert.Equal(t, "#9CA3AF", byID["t1"].StatusColor)
	assert.Equal(t, "Indefinido", byID["t5"].StatusName)
	assert.Equal(t, "#e5e7eb", byID["t5"].StatusColor)
}

func TestListRowsProjectFilter(t *testing.T) {
	tasks, statuses := buildBoard()
	rows := ListRows(tasks, statuses, "p2")
	assert.Len(t, rows, 1)
	assert.Equal(t, "t4", rows[0].Task.ID)
}

func TestFirstStatus(t *testing.T) {
	_, statuses := buildBoard()
	first := FirstStatus(statuses, "p1")
	assert.NotNil(t, first)
	assert.Equal(t, "st-todo", first.ID)

	assert.Nil(t, FirstStatus(statuses, "p-missing"))
}
