package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Project struct {
	ID          string    `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	Name        string    `gorm:"column:name;type:text;not null" json:"name"`
	Description string    `gorm:"column:description;type:text" json:"description,omitempty"`
	Color       string    `gorm:"column:color;type:text;default:'#3B82F6'" json:"color"`
	Icon        string    `gorm:"column:icon;type:text;default:'briefcase'" json:"icon"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (Project) TableName() string {
	return "projects"
}

func (p *Project) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}

type TaskStatus struct {
	ID         string    `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	ProjectID  string    `gorm:"column:project_id;type:uuid;index" json:"project_id"`
	Name       string    `gorm:"column:name;type:text;not null" json:"name"`
	Color      string    `gorm:"column:color;type:text;not null" json:"color"`
	Type       string    `gorm:"column:type;type:text;default:'not_started'" json:"type"`
	OrderIndex int       `gorm:"column:order_index;default:0" json:"order_index"`
	CreatedAt  time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (TaskStatus) TableName() string {
	return "task_statuses"
}

func (s *TaskStatus) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}
