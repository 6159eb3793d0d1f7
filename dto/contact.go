package dto

import "time"

type CreateContactRequest struct {
	FullName            string     `json:"full_name" binding:"required"`
	Email               string     `json:"email"`
	Phone               string     `json:"phone"`
	Document            string     `json:"document"`
	City                string     `json:"city"`
	Age                 string     `json:"age"`
	Instagram           string     `json:"instagram"`
	Type                string     `json:"type"`
	Status              string     `json:"status"`
	ProductName         string     `json:"product_name"`
	PurchaseDate        *time.Time `json:"purchase_date"`
	Niche               string     `json:"niche"`
	AcquisitionChannel  string     `json:"acquisition_channel"`
	Notes               string     `json:"notes"`
	Address             string     `json:"address"`
	Attachments         []string   `json:"attachments"`
	FinancialRecurrence bool       `json:"financial_recurrence"`
	AutoFinance         bool       `json:"auto_finance"`
	FinanceValue        float64    `json:"finance_value"`
}

type UpdateContactRequest struct {
	FullName            *string    `json:"full_name"`
	Email               *string    `json:"email"`
	Phone               *string    `json:"phone"`
	Document            *string    `json:"document"`
	City                *string    `json:"city"`
	Age                 *string    `json:"age"`
	Instagram           *string    `json:"instagram"`
	Type                *string    `json:"type"`
	Status              *string    `json:"status"`
	ProductName         *string    `json:"product_name"`
	PurchaseDate        *time.Time `json:"purchase_date"`
	Niche               *string    `json:"niche"`
	AcquisitionChannel  *string    `json:"acquisition_channel"`
	Notes               *string    `json:"notes"`
	Address             *string    `json:"address"`
	Attachments         *[]string  `json:"attachments"`
	FinancialRecurrence *bool      `json:"financial_recurrence"`
	AutoFinance         bool       `json:"auto_finance"`
	FinanceValue        float64    `json:"finance_value"`
}

type CreateMetricRequest struct {
	MonthYear        string  `json:"month_year" binding:"required"`
	SalesCount       int     `json:"sales_count"`
	MeetingsBooked   int     `json:"meetings_booked"`
	MeetingsExecuted int     `json:"meetings_executed"`
	RevenueGenerated float64 `json:"revenue_generated"`
}

type StudentTaskRequest struct {
	Title    string     `json:"title" binding:"required"`
	Priority string     `json:"priority"`
	DueDate  *time.Time `json:"due_date"`
}
