package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SystemTag is a controlled-vocabulary color lookup. Records reference its
// label by string value, so deleting a tag never cascades.
type SystemTag struct {
	ID        string    `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	Label     string    `gorm:"column:label;type:text;not null" json:"label"`
	Color     string    `gorm:"column:color;type:text;not null" json:"color"`
	Type      string    `gorm:"column:type;type:text;not null" json:"type"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (SystemTag) TableName() string {
	return "system_tags"
}

func (t *SystemTag) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	return nil
}
