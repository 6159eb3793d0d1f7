package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Contact struct {
	ID                 string                      `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	FullName           string                      `gorm:"column:full_name;type:text;not null" json:"full_name"`
	Email              string                      `gorm:"column:email;type:text" json:"email,omitempty"`
	Phone              string                      `gorm:"column:phone;type:text" json:"phone,omitempty"`
	Document           string                      `gorm:"column:document;type:text" json:"document,omitempty"`
	City               string                      `gorm:"column:city;type:text" json:"city,omitempty"`
	Age                string                      `gorm:"column:age;type:text" json:"age,omitempty"`
	Instagram          string                      `gorm:"column:instagram;type:text" json:"instagram,omitempty"`
	Type               string                      `gorm:"column:type;type:text;default:'lead';not null" json:"type"`
	Status             string                      `gorm:"column:status;type:text;default:'active'" json:"status"`
	ProductName        string                      `gorm:"column:product_name;type:text" json:"product_name,omitempty"`
	PurchaseDate       *time.Time                  `gorm:"column:purchase_date" json:"purchase_date,omitempty"`
	LTV                float64                     `gorm:"column:ltv;default:0" json:"ltv"`
	Niche              string                      `gorm:"column:niche;type:text" json:"niche,omitempty"`
	AcquisitionChannel string                      `gorm:"column:acquisition_channel;type:text" json:"acquisition_channel,omitempty"`
	Notes              string                      `gorm:"column:notes;type:text" json:"notes,omitempty"`
	Address            string                      `gorm:"column:address;type:text" json:"address,omitempty"`
	FinancialRecurrence bool                       `gorm:"column:financial_recurrence;default:false" json:"financial_recurrence"`
	Attachments        datatypes.JSONSlice[string] `gorm:"column:attachments" json:"attachments"`
	CreatedAt          time.Time                   `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (Contact) TableName() string {
	return "contacts"
}

func (c *Contact) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}

type StudentMetric struct {
	ID               string    `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	ContactID        string    `gorm:"column:contact_id;type:uuid;index;not null" json:"contact_id"`
	MonthYear        string    `gorm:"column:month_year;type:text;not null" json:"month_year"`
	SalesCount       int       `gorm:"column:sales_count;default:0" json:"sales_count"`
	MeetingsBooked   int       `gorm:"column:meetings_booked;default:0" json:"meetings_booked"`
	MeetingsExecuted int       `gorm:"column:meetings_executed;default:0" json:"meetings_executed"`
	RevenueGenerated float64   `gorm:"column:revenue_generated;default:0" json:"revenue_generated"`
	CreatedAt        time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (StudentMetric) TableName() string {
	return "student_metrics"
}

func (m *StudentMetric) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}
