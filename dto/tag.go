package dto

type TagRequest struct {
	Label string `json:"label" binding:"required"`
	Color string `json:"color" binding:"required"`
	Type  string `json:"type" binding:"required,oneof=product cost_center niche task"`
}
