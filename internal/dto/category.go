package dto

import "finance-tracker/internal/models"

// CreateCategoryRequest represents the request payload for creating a category
type CreateCategoryRequest struct {
	Name  string `json:"name" validate:"required,min=1,max=100"`
	Icon  string `json:"icon" validate:"omitempty,max=50"`
	Color string `json:"color" validate:"omitempty,hexcolor,len=7"`
	Type  string `json:"type" validate:"omitempty,oneof=expense income"`
}

// UpdateCategoryRequest represents a partial category update
type UpdateCategoryRequest struct {
	Name  *string `json:"name" validate:"omitempty,min=1,max=100"`
	Icon  *string `json:"icon" validate:"omitempty,max=50"`
	Color *string `json:"color" validate:"omitempty,hexcolor,len=7"`
}

// CategoryListQuery filters category listings
type CategoryListQuery struct {
	Type string `query:"type" validate:"omitempty,oneof=expense income"`
}

// CategoryListResponse lists a user's categories
type CategoryListResponse struct {
	Categories []models.Category `json:"categories"`
}
