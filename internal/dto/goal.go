package dto

import "finance-tracker/internal/models"

// CreateGoalRequest represents the request payload for creating a savings goal
type CreateGoalRequest struct {
	Name         string  `json:"name" validate:"required,min=1,max=100"`
	TargetAmount string  `json:"target_amount" validate:"required,positive_decimal"`
	TargetDate   string  `json:"target_date" validate:"required,datetime=2006-01-02"`
	CategoryID   *string `json:"category_id" validate:"omitempty,uuid"`
	BudgetID     *string `json:"budget_id" validate:"omitempty,uuid"`
}

// UpdateGoalRequest represents a partial goal update
type UpdateGoalRequest struct {
	Name         *string `json:"name" validate:"omitempty,min=1,max=100"`
	TargetAmount *string `json:"target_amount" validate:"omitempty,positive_decimal"`
	TargetDate   *string `json:"target_date" validate:"omitempty,datetime=2006-01-02"`
	CategoryID   *string `json:"category_id" validate:"omitempty,uuid"`
	BudgetID     *string `json:"budget_id" validate:"omitempty,uuid"`
}

// CreateGoalEntryRequest records a contribution (positive) or withdrawal (negative)
type CreateGoalEntryRequest struct {
	Amount      string `json:"amount" validate:"required,nonzero_decimal"`
	Description string `json:"description" validate:"omitempty,max=500"`
	Date        string `json:"date" validate:"omitempty,datetime=2006-01-02"`
}

// GoalListResponse lists goals with their current progress
type GoalListResponse struct {
	Goals []models.GoalWithProgress `json:"goals"`
}
