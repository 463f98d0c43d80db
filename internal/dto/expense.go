package dto

import "finance-tracker/internal/models"

// CreateExpenseRequest represents the request payload for recording an expense
type CreateExpenseRequest struct {
	Amount      string  `json:"amount" validate:"required,positive_decimal"`
	Description string  `json:"description" validate:"omitempty,max=500"`
	Merchant    string  `json:"merchant" validate:"omitempty,max=255"`
	Date        string  `json:"date" validate:"required,datetime=2006-01-02"`
	CategoryID  *string `json:"category_id" validate:"omitempty,uuid"`
}

// UpdateExpenseRequest replaces the editable fields of an expense
type UpdateExpenseRequest struct {
	Amount      string  `json:"amount" validate:"required,positive_decimal"`
	Description string  `json:"description" validate:"omitempty,max=500"`
	Merchant    string  `json:"merchant" validate:"omitempty,max=255"`
	Date        string  `json:"date" validate:"required,datetime=2006-01-02"`
	CategoryID  *string `json:"category_id" validate:"omitempty,uuid"`
}

// ExpenseListQuery contains filtering options for expense listings
type ExpenseListQuery struct {
	From       string `query:"from" validate:"omitempty,datetime=2006-01-02"`
	To         string `query:"to" validate:"omitempty,datetime=2006-01-02"`
	CategoryID string `query:"category_id" validate:"omitempty,uuid"`
	PaginationParams
}

// ExpenseListResponse represents a paginated list of expenses
type ExpenseListResponse struct {
	Expenses   []models.Expense `json:"expenses"`
	Pagination PaginationInfo   `json:"pagination"`
}
