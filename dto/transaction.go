package dto

import "time"

type CreateTransactionRequest struct {
	Description string    `json:"description" binding:"required"`
	Amount      float64   `json:"amount" binding:"required,gt=0"`
	Type        string    `json:"type" binding:"required,oneof=income expense"`
	Status      string    `json:"status" binding:"omitempty,oneof=paid pending"`
	Category    string    `json:"category"`
	ContactID   *string   `json:"contact_id"`
	DueDate     time.Time `json:"due_date" binding:"required"`
}

type UpdateTransactionRequest struct {
	Description *string    `json:"description"`
	Amount      *float64   `json:"amount"`
	Type        *string    `json:"type" binding:"omitempty,oneof=income expense"`
	Status      *string    `json:"status" binding:"omitempty,oneof=paid pending"`
	Category    *string    `json:"category"`
	ContactID   *string    `json:"contact_id"`
	DueDate     *time.Time `json:"due_date"`
}

type ContactInvoiceRequest struct {
	Description string     `json:"description"`
	Amount      float64    `json:"amount" binding:"required,gt=0"`
	DueDate     *time.Time `json:"due_date"`
}
