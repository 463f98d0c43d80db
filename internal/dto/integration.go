package dto

import "finance-tracker/internal/models"

// CreateAPIKeyRequest names a new integration key
type CreateAPIKeyRequest struct {
	Name string `json:"name" validate:"required,min=1,max=100"`
}

// CreateAPIKeyResponse carries the secret, which is shown only once
type CreateAPIKeyResponse struct {
	Key    models.APIKey `json:"key"`
	Secret string        `json:"secret"`
}

// ShortcutExpenseRequest is sent by the iPhone shortcut
type ShortcutExpenseRequest struct {
	Amount      string `json:"amount" validate:"required"`
	Description string `json:"description" validate:"omitempty,max=500"`
	Merchant    string `json:"merchant" validate:"omitempty,max=255"`
	Category    string `json:"category" validate:"omitempty,max=100"`
	Date        string `json:"date" validate:"omitempty,datetime=2006-01-02"`
}

// EmailExpenseRequest is a forwarded receipt
type EmailExpenseRequest struct {
	From    string `json:"from" validate:"omitempty,max=320"`
	Subject string `json:"subject" validate:"omitempty,max=998"`
	Body    string `json:"body" validate:"required"`
	Date    string `json:"date" validate:"omitempty,datetime=2006-01-02"`
}

// IngestedExpenseResponse reports the expense created from an integration
type IngestedExpenseResponse struct {
	Expense    models.Expense `json:"expense"`
	Category   string         `json:"category,omitempty"`
	Confidence float64        `json:"confidence"`
}

// APIKeyListResponse lists a user's integration keys without secrets
type APIKeyListResponse struct {
	Keys []models.APIKey `json:"keys"`
}
