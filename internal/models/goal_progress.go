package models

import "github.com/shopspring/decimal"

// GoalStatus is the lifecycle state derived from a goal's progress.
type GoalStatus string

const (
	GoalStatusNotStarted GoalStatus = "not_started"
	GoalStatusInProgress GoalStatus = "in_progress"
	GoalStatusAchieved   GoalStatus = "achieved"
	GoalStatusOverdue    GoalStatus = "overdue"
)

// GoalProgress is derived from a goal and its entries on every read.
type GoalProgress struct {
	CurrentAmount   decimal.Decimal  `json:"current_amount"`
	Percentage      decimal.Decimal  `json:"percentage"`
	RemainingAmount decimal.Decimal  `json:"remaining_amount"`
	DaysRemaining   *int             `json:"days_remaining"`
	DailyTarget     *decimal.Decimal `json:"daily_target"`
	MonthlyTarget   *decimal.Decimal `json:"monthly_target"`
	OnTrack         bool             `json:"on_track"`
	Status          GoalStatus       `json:"status"`
}

// GoalWithProgress pairs a goal with its freshly computed progress.
type GoalWithProgress struct {
	Goal     Goal         `json:"goal"`
	Progress GoalProgress `json:"progress"`
	Entries  []GoalEntry  `json:"entries,omitempty"`
}
