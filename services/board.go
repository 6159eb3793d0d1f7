package services

import (
	"sort"
	"zenitmanager/model"
)

const unresolvedStatusColor = "#e5e7eb"

// ProjectAll is the active-project sentinel meaning "every project".
const ProjectAll = "all"

type BoardColumn struct {
	ID    string       `json:"id"`
	Name  string       `json:"name"`
	Color string       `json:"color"`
	Type  string       `json:"type"`
	Tasks []model.Task `json:"tasks"`
}

type ListRow struct {
	Task        model.Task `json:"task"`
	StatusName  string     `json:"status_name"`
	StatusColor string     `json:"status_color"`
}

// syntheticColumns is the fixed taxonomy used when no single project is
// active. Tasks are bucketed by their resolved status type, not by project.
func syntheticColumns() []BoardColumn {
	return []BoardColumn{
		{ID: "generic-not_started", Name: "A Fazer", Color: "#9CA3AF", Type: "not_started", Tasks: []model.Task{}},
		{ID: "generic-active", Name: "Em Andamento", Color: "#3B82F6", Type: "active", Tasks: []model.Task{}},
		{ID: "generic-done", Name: "Concluído", Color: "#10B981", Type: "done", Tasks: []model.Task{}},
	}
}

// KanbanColumns derives the ordered column set for the given active project.
// With a concrete project id the columns are that project's statuses sorted
// by order_index and tasks bucket by status_id. With ProjectAll the columns
// are the synthetic taxonomy and tasks bucket by resolved status type; a
// task whose status_id resolves to no known status lands in no bucket.
func KanbanColumns(tasks []model.Task, statuses []model.TaskStatus, activeProject string) []BoardColumn {
	if activeProject == ProjectAll || activeProject == "" {
		columns := syntheticColumns()
		byID := statusIndex(statuses)
		for _, t := range tasks {
			if t.StatusID == nil {
				continue
			}
			resolved, ok := byID[*t.StatusID]
			if !ok {
				continue
			}
			for i := range columns {
				if columns[i].Type == resolved.Type {
					columns[i].Tasks = append(columns[i].Tasks, t)
					break
				}
			}
		}
		return columns
	}

	var own []model.TaskStatus
	for _, s := range statuses {
		if s.ProjectID == activeProject {
			own = append(own, s)
		}
	}
	// Stable keeps fetch order for equal order_index.
	sort.SliceStable(own, func(i, j int) bool {
		return own[i].OrderIndex < own[j].OrderIndex
	})

	columns := make([]BoardColumn, 0, len(own))
	for _, s := range own {
		col := BoardColumn{ID: s.ID, Name: s.Name, Color: s.Color, Type: s.Type, Tasks: []model.Task{}}
		for _, t := range tasks {
			if t.StatusID != nil && *t.StatusID == s.ID {
				col.Tasks = append(col.Tasks, t)
			}
		}
		columns = append(columns, col)
	}
	return columns
}

// ListRows flattens tasks sorted by created_at descending, each row carrying
// its resolved status name and color.
func ListRows(tasks []model.Task, statuses []model.TaskStatus, activeProject string) []ListRow {
	byID := statusIndex(statuses)

	filtered := make([]model.Task, 0, len(tasks))
	for _, t := range tasks {
		if activeProject != ProjectAll && activeProject != "" {
			if t.ProjectID == nil || *t.ProjectID != activeProject {
				continue
			}
		}
		filtered = append(filtered, t)
	}
	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].CreatedAt.After(filtered[j].CreatedAt)
	})

	rows := make([]ListRow, 0, len(filtered))
	for _, t := range filtered {
		row := ListRow{Task: t, StatusName: "Indefinido", StatusColor: unresolvedStatusColor}
		if t.StatusID != nil {
			if s, ok := byID[*t.StatusID]; ok {
				row.StatusName = s.Name
				row.StatusColor = s.Color
			}
		}
		rows = append(rows, row)
	}
	return rows
}

// FirstStatus returns the lowest order_index status of a project, or nil
// when the project has none.
func FirstStatus(statuses []model.TaskStatus, projectID string) *model.TaskStatus {
	var first *model.TaskStatus
	for i := range statuses {
		s := &statuses[i]
		if s.ProjectID != projectID {
			continue
		}
		if first == nil || s.OrderIndex < first.OrderIndex {
			first = s
		}
	}
	return first
}

func statusIndex(statuses []model.TaskStatus) map[string]model.TaskStatus {
	byID := make(map[string]model.TaskStatus, len(statuses))
	for _, s := range statuses {
		byID[s.ID] = s
	}
	return byID
}
