package dto

import (
	"time"
	"zenitmanager/model"
)

type CreateTaskRequest struct {
	Title       string           `json:"title" binding:"required"`
	CustomID    string           `json:"custom_id"`
	ProjectID   *string          `json:"project_id"`
	StatusID    *string          `json:"status_id"`
	Description string           `json:"description"`
	Priority    string           `json:"priority"`
	DueDate     *time.Time       `json:"due_date"`
	ContextType string           `json:"context_type"`
	ContextID   *string          `json:"context_id"`
	ContactID   *string          `json:"contact_id"`
	ContextName string           `json:"context_name"`
	Assignees   []model.Assignee `json:"assignees"`
	Tags        []string         `json:"tags"`
	Attachments []string         `json:"attachments"`
}

// UpdateTaskRequest carries one or more named fields; only the fields
// present in the body are written.
type UpdateTaskRequest struct {
	Title       *string            `json:"title"`
	CustomID    *string            `json:"custom_id"`
	ProjectID   *string            `json:"project_id"`
	StatusID    *string            `json:"status_id"`
	Description *string            `json:"description"`
	Priority    *string            `json:"priority"`
	DueDate     *time.Time         `json:"due_date"`
	ContextType *string            `json:"context_type"`
	ContextID   *string            `json:"context_id"`
	ContactID   *string            `json:"contact_id"`
	ContextName *string            `json:"context_name"`
	Assignees   *[]model.Assignee  `json:"assignees"`
	Tags        *[]string          `json:"tags"`
	Attachments *[]string          `json:"attachments"`
	Checklists  *[]model.Checklist `json:"checklists"`
}

type ToggleAssigneeRequest struct {
	Assignee model.Assignee `json:"assignee" binding:"required"`
}

type ChecklistItemRequest struct {
	Content string `json:"content" binding:"required"`
}

type TaskCommentRequest struct {
	Content string `json:"content" binding:"required"`
}
