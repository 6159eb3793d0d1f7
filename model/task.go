package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Assignee is a profile snapshot embedded on the task. Adding or removing
// one rewrites the whole list.
type Assignee struct {
	ID        string `json:"id"`
	FullName  string `json:"full_name"`
	Email     string `json:"email,omitempty"`
	AvatarURL string `json:"avatar_url,omitempty"`
}

type ChecklistItem struct {
	ID          string `json:"id"`
	ChecklistID string `json:"checklist_id"`
	Content     string `json:"content"`
	IsCompleted bool   `json:"is_completed"`
}

type Checklist struct {
	ID     string          `json:"id"`
	TaskID string          `json:"task_id"`
	Name   string          `json:"name"`
	Items  []ChecklistItem `json:"items"`
}

type Task struct {
	ID          string                         `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	CustomID    string                         `gorm:"column:custom_id;type:text" json:"custom_id,omitempty"`
	ProjectID   *string                        `gorm:"column:project_id;type:uuid;index" json:"project_id,omitempty"`
	Title       string                         `gorm:"column:title;type:text;not null" json:"title"`
	Description string                         `gorm:"column:description;type:text" json:"description,omitempty"`
	StatusID    *string                        `gorm:"column:status_id;type:uuid;index" json:"status_id,omitempty"`
	Priority    string                         `gorm:"column:priority;type:text;default:'medium'" json:"priority"`
	DueDate     *time.Time                     `gorm:"column:due_date" json:"due_date,omitempty"`
	ContextType string                         `gorm:"column:context_type;type:text" json:"context_type,omitempty"`
	ContextID   *string                        `gorm:"column:context_id;type:uuid" json:"context_id,omitempty"`
	ContactID   *string                        `gorm:"column:contact_id;type:uuid;index" json:"contact_id,omitempty"`
	ContextName string                         `gorm:"column:context_name;type:text" json:"context_name,omitempty"`
	Assignees   datatypes.JSONSlice[Assignee]  `gorm:"column:assignees" json:"assignees"`
	Tags        datatypes.JSONSlice[string]    `gorm:"column:tags" json:"tags"`
	Attachments datatypes.JSONSlice[string]    `gorm:"column:attachments" json:"attachments"`
	Checklists  datatypes.JSONSlice[Checklist] `gorm:"column:checklists" json:"checklists"`
	RemindedAt  *time.Time                     `gorm:"column:reminded_at" json:"-"`
	CreatedBy   string                         `gorm:"column:created_by;type:uuid" json:"created_by,omitempty"`
	CreatedAt   time.Time                      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time                      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Task) TableName() string {
	return "tasks"
}

func (t *Task) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	return nil
}

type TaskComment struct {
	ID         string    `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	TaskID     string    `gorm:"column:task_id;type:uuid;index;not null" json:"task_id"`
	UserID     string    `gorm:"column:user_id;type:uuid" json:"user_id"`
	UserName   string    `gorm:"column:user_name;type:text" json:"user_name,omitempty"`
	UserAvatar string    `gorm:"column:user_avatar;type:text" json:"user_avatar,omitempty"`
	Content    string    `gorm:"column:content;type:text;not null" json:"content"`
	CreatedAt  time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (TaskComment) TableName() string {
	return "task_comments"
}

func (c *TaskComment) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}
