package dto

import (
	"finance-tracker/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreateBudgetRequest represents the request payload for creating a budget
type CreateBudgetRequest struct {
	CategoryID  string `json:"category_id" validate:"required,uuid"`
	Amount      string `json:"amount" validate:"required,positive_decimal"`
	PeriodStart string `json:"period_start" validate:"required,datetime=2006-01-02"`
	PeriodEnd   string `json:"period_end" validate:"required,datetime=2006-01-02"`
}

// UpdateBudgetRequest represents a partial budget update
type UpdateBudgetRequest struct {
	Amount      *string `json:"amount" validate:"omitempty,positive_decimal"`
	PeriodStart *string `json:"period_start" validate:"omitempty,datetime=2006-01-02"`
	PeriodEnd   *string `json:"period_end" validate:"omitempty,datetime=2006-01-02"`
}

// BudgetListQuery filters budgets to those active on a day
type BudgetListQuery struct {
	ActiveOn string `query:"active_on" validate:"omitempty,datetime=2006-01-02"`
}

// Budget wizard

// WizardStateResponse is everything the wizard needs to render its first step
type WizardStateResponse struct {
	Eligibility          models.WizardEligibility  `json:"eligibility"`
	Period               models.DateRange          `json:"period"`
	AvailableFunds       decimal.Decimal           `json:"available_funds"`
	EligibleCategories   []models.EligibleCategory `json:"eligible_categories"`
	SuggestedAllocations []models.BudgetAllocation `json:"suggested_allocations"`
	Insights             models.SpendingInsights   `json:"insights"`
}

// AllocationRequest is the user's chosen share for one category
type AllocationRequest struct {
	CategoryID string `json:"category_id" validate:"required,uuid"`
	Percentage string `json:"percentage" validate:"required,percentage"`
}

// WizardConflictsRequest asks which existing budgets a set of allocations would overlap
type WizardConflictsRequest struct {
	PeriodStart string              `json:"period_start" validate:"required,datetime=2006-01-02"`
	PeriodEnd   string              `json:"period_end" validate:"required,datetime=2006-01-02"`
	Allocations []AllocationRequest `json:"allocations" validate:"required,min=1,dive"`
}

// ConflictDecision is the caller's choice for one existing budget
type ConflictDecision struct {
	ExistingBudgetID string `json:"existing_budget_id" validate:"required,uuid"`
	Action           string `json:"action" validate:"required,oneof=replace keep skip"`
}

// ApplyWizardRequest commits allocations with the caller's conflict decisions
type ApplyWizardRequest struct {
	PeriodStart string              `json:"period_start" validate:"required,datetime=2006-01-02"`
	PeriodEnd   string              `json:"period_end" validate:"required,datetime=2006-01-02"`
	Allocations []AllocationRequest `json:"allocations" validate:"required,min=1,dive"`
	Decisions   []ConflictDecision  `json:"decisions" validate:"omitempty,dive"`
}

// WizardConflictsResponse lists the conflicts for a proposal
type WizardConflictsResponse struct {
	Conflicts []models.BudgetConflict `json:"conflicts"`
}

// ApplyWizardResponse reports the budgets the wizard changed
type ApplyWizardResponse struct {
	Created           []models.Budget `json:"created"`
	Deleted           []uuid.UUID     `json:"deleted"`
	SkippedCategories []uuid.UUID     `json:"skipped_categories"`
}

// BudgetListResponse lists budgets with the spending in their period
type BudgetListResponse struct {
	Budgets []models.BudgetWithSpending `json:"budgets"`
}
