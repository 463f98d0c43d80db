package dto

import "finance-tracker/internal/models"

// UpdateProfileRequest contains the editable fields of the current user
type UpdateProfileRequest struct {
	DisplayName *string `json:"display_name" validate:"omitempty,max=100"`
	Currency    *string `json:"currency" validate:"omitempty,currency_code"`
}

// ActivityQuery pages through the current user's audit trail
type ActivityQuery struct {
	PaginationParams
}

// ActivityResponse is a page of audit log entries, newest first
type ActivityResponse struct {
	Entries    []*models.AuditLog `json:"entries"`
	Pagination PaginationInfo     `json:"pagination"`
}
