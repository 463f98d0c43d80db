package dto

import "finance-tracker/internal/models"

// CreateIncomeRequest represents the request payload for recording an income
type CreateIncomeRequest struct {
	Amount      string  `json:"amount" validate:"required,positive_decimal"`
	Description string  `json:"description" validate:"omitempty,max=500"`
	Date        string  `json:"date" validate:"required,datetime=2006-01-02"`
	CategoryID  *string `json:"category_id" validate:"omitempty,uuid"`
}

type UpdateIncomeRequest = CreateIncomeRequest

// IncomeListQuery contains filtering options for income listings
type IncomeListQuery struct {
	From string `query:"from" validate:"omitempty,datetime=2006-01-02"`
	To   string `query:"to" validate:"omitempty,datetime=2006-01-02"`
	PaginationParams
}

// IncomeListResponse represents a paginated list of incomes
type IncomeListResponse struct {
	Incomes    []models.Income `json:"incomes"`
	Pagination PaginationInfo  `json:"pagination"`
}
