package services

import (
	"math"
	"time"

	"finance-tracker/internal/models"

	"github.com/shopspring/decimal"
)

var (
	hundred       = decimal.NewFromInt(100)
	daysPerMonth  = decimal.NewFromInt(30)
	hoursPerDay   = 24.0
	moneyDecimals = int32(2)
)

// ComputeGoalProgress derives a goal's progress from its entries as of now.
// The result depends only on its arguments.
func ComputeGoalProgress(goal models.Goal, entries []models.GoalEntry, now time.Time) models.GoalProgress {
	current := decimal.Zero
	for _, entry := range entries {
		current = current.Add(entry.Amount)
	}

	// status reads the exact ratio; the reported percentage is truncated so
	// 100 only shows once the target is met
	percentage := decimal.Zero
	if goal.TargetAmount.IsPositive() {
		percentage = clampPercentage(current.Div(goal.TargetAmount).Mul(hundred))
	}

	// withdrawals below zero do not raise what is still owed
	remaining := decimal.Max(decimal.Zero, goal.TargetAmount.Sub(decimal.Max(decimal.Zero, current)))

	progress := models.GoalProgress{
		CurrentAmount:   current,
		Percentage:      percentage.Truncate(moneyDecimals),
		RemainingAmount: remaining,
		DaysRemaining:   daysUntil(goal.TargetDate, now),
	}

	if progress.DaysRemaining != nil && *progress.DaysRemaining > 0 && remaining.IsPositive() {
		daily := remaining.Div(decimal.NewFromInt(int64(*progress.DaysRemaining)))
		monthly := daily.Mul(daysPerMonth).Round(moneyDecimals)
		daily = daily.Round(moneyDecimals)
		progress.DailyTarget = &daily
		progress.MonthlyTarget = &monthly
	}

	progress.Status = goalStatus(goal.TargetAmount, current, percentage, progress.DaysRemaining)
	progress.OnTrack = isOnTrack(goal, progress, now)

	return progress
}

func clampPercentage(p decimal.Decimal) decimal.Decimal {
	if p.IsNegative() {
		return decimal.Zero
	}
	if p.GreaterThan(hundred) {
		return hundred
	}
	return p
}

// daysUntil returns the whole days, rounded up, until target, or nil when
// target is not after now.
func daysUntil(target, now time.Time) *int {
	if !target.After(now) {
		return nil
	}
	days := int(math.Ceil(target.Sub(now).Hours() / hoursPerDay))
	return &days
}

func goalStatus(target, current, percentage decimal.Decimal, daysRemaining *int) models.GoalStatus {
	switch {
	case target.IsPositive() && current.GreaterThanOrEqual(target):
		return models.GoalStatusAchieved
	case percentage.IsPositive() && daysRemaining == nil:
		return models.GoalStatusOverdue
	case percentage.IsPositive():
		return models.GoalStatusInProgress
	case daysRemaining == nil:
		return models.GoalStatusOverdue
	default:
		return models.GoalStatusNotStarted
	}
}

// isOnTrack compares the goal's average daily contribution since creation
// with the daily amount still needed to reach the target in time.
func isOnTrack(goal models.Goal, progress models.GoalProgress, now time.Time) bool {
	if progress.Status == models.GoalStatusAchieved {
		return true
	}
	if progress.DaysRemaining == nil || *progress.DaysRemaining <= 0 || progress.DailyTarget == nil {
		return false
	}

	elapsed := int64(now.Sub(goal.CreatedAt).Hours() / hoursPerDay)
	if elapsed < 1 {
		elapsed = 1
	}

	rate := progress.CurrentAmount.Div(decimal.NewFromInt(elapsed))
	return rate.GreaterThanOrEqual(*progress.DailyTarget)
}
