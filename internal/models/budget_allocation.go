package models

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ConflictAction is the caller's decision for an existing overlapping budget.
type ConflictAction string

const (
	// ConflictActionReplace deletes the existing budget and creates the proposed one.
	ConflictActionReplace ConflictAction = "replace"
	// ConflictActionKeep keeps the existing budget and creates the proposed one alongside it.
	ConflictActionKeep ConflictAction = "keep"
	// ConflictActionSkip keeps the existing budget and drops the proposed one.
	ConflictActionSkip ConflictAction = "skip"
)

// IsValid reports whether the action is one of the known decisions.
func (a ConflictAction) IsValid() bool {
	switch a {
	case ConflictActionReplace, ConflictActionKeep, ConflictActionSkip:
		return true
	}
	return false
}

// BudgetAllocation is a proposed share of available funds for one category.
type BudgetAllocation struct {
	CategoryID          uuid.UUID       `json:"category_id"`
	Name                string          `json:"name"`
	IsEssential         bool            `json:"is_essential"`
	SuggestedPercentage decimal.Decimal `json:"suggested_percentage"`
	Percentage          decimal.Decimal `json:"percentage"`
	Amount              decimal.Decimal `json:"amount"`
}

// BudgetConflict ties an existing budget to a proposed allocation whose
// period overlaps it.
type BudgetConflict struct {
	ExistingBudgetID uuid.UUID       `json:"existing_budget_id"`
	CategoryID       uuid.UUID       `json:"category_id"`
	ExistingAmount   decimal.Decimal `json:"existing_amount"`
	ExistingPeriod   DateRange       `json:"existing_period"`
	Action           ConflictAction  `json:"action"`
}

// EligibleCategory is a category the budget wizard may allocate funds to.
type EligibleCategory struct {
	Category     Category        `json:"category"`
	IsEssential  bool            `json:"is_essential"`
	QuarterTotal decimal.Decimal `json:"quarter_total"`
	MonthlyAvg   decimal.Decimal `json:"monthly_average"`
}

// WizardEligibility explains whether the budget wizard may be offered.
type WizardEligibility struct {
	Eligible           bool `json:"eligible"`
	WithinDateWindow   bool `json:"within_date_window"`
	HasIncomeThisMonth bool `json:"has_income_this_month"`
	HasEligibleCats    bool `json:"has_eligible_categories"`
}
