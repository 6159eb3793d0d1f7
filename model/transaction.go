package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Amount is always stored positive. The sign is applied at read time from
// the type column.
type Transaction struct {
	ID          string    `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	Description string    `gorm:"column:description;type:text;not null" json:"description"`
	Amount      float64   `gorm:"column:amount;not null" json:"amount"`
	Type        string    `gorm:"column:type;type:text;not null" json:"type"`
	Status      string    `gorm:"column:status;type:text;default:'pending'" json:"status"`
	Category    string    `gorm:"column:category;type:text" json:"category,omitempty"`
	ContactID   *string   `gorm:"column:contact_id;type:uuid;index" json:"contact_id,omitempty"`
	DueDate     time.Time `gorm:"column:due_date;not null" json:"due_date"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (Transaction) TableName() string {
	return "transactions"
}

func (t *Transaction) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	return nil
}
