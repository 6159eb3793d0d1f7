package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ContentItem struct {
	ID             string     `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	Title          string     `gorm:"column:title;type:text;not null" json:"title"`
	Description    string     `gorm:"column:description;type:text" json:"description,omitempty"`
	Platform       string     `gorm:"column:platform;type:text;not null" json:"platform"`
	Status         string     `gorm:"column:status;type:text;not null" json:"status"`
	PublishDate    *time.Time `gorm:"column:publish_date" json:"publish_date,omitempty"`
	DriveLink      string     `gorm:"column:drive_link;type:text" json:"drive_link,omitempty"`
	Format         string     `gorm:"column:format;type:text" json:"format,omitempty"`
	ReferenceLink  string     `gorm:"column:reference_link;type:text" json:"reference_link,omitempty"`
	ApprovalStatus string     `gorm:"column:approval_status;type:text;default:'pending'" json:"approval_status"`
	AdminComments  string     `gorm:"column:admin_comments;type:text" json:"admin_comments,omitempty"`
	CreatedAt      time.Time  `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (ContentItem) TableName() string {
	return "content_items"
}

func (i *ContentItem) BeforeCreate(tx *gorm.DB) error {
	if i.ID == "" {
		i.ID = uuid.NewString()
	}
	return nil
}

type ContentComment struct {
	ID            string    `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	ContentItemID string    `gorm:"column:content_item_id;type:uuid;index;not null" json:"content_item_id"`
	UserID        string    `gorm:"column:user_id;type:uuid" json:"user_id"`
	Content       string    `gorm:"column:content;type:text;not null" json:"content"`
	CreatedAt     time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (ContentComment) TableName() string {
	return "content_comments"
}

func (c *ContentComment) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}
