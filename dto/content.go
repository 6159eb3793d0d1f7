package dto

import "time"

type CreateContentRequest struct {
	Title         string     `json:"title" binding:"required"`
	Description   string     `json:"description"`
	Platform      string     `json:"platform" binding:"required"`
	Status        string     `json:"status" binding:"required,oneof=idea scripting production scheduled published"`
	PublishDate   *time.Time `json:"publish_date"`
	DriveLink     string     `json:"drive_link"`
	Format        string     `json:"format"`
	ReferenceLink string     `json:"reference_link"`
}

type UpdateContentRequest struct {
	Title         *string    `json:"title"`
	Description   *string    `json:"description"`
	Platform      *string    `json:"platform"`
	Status        *string    `json:"status" binding:"omitempty,oneof=idea scripting production scheduled published"`
	PublishDate   *time.Time `json:"publish_date"`
	DriveLink     *string    `json:"drive_link"`
	Format        *string    `json:"format"`
	ReferenceLink *string    `json:"reference_link"`
	AdminComments *string    `json:"admin_comments"`
}

type ContentApprovalRequest struct {
	ApprovalStatus string `json:"approval_status" binding:"required,oneof=pending approved rejected"`
	AdminComments  string `json:"admin_comments"`
}

type ContentCommentRequest struct {
	Content string `json:"content" binding:"required"`
}

type ContentIdeasRequest struct {
	Topic string `json:"topic" binding:"required"`
}
