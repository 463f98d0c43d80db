package services

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"finance-tracker/internal/config"
	"finance-tracker/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrAllocationExceeded   = errors.New("allocated percentages exceed 100")
	ErrInvalidAllocation    = errors.New("allocation percentage must be between 0 and 100")
	ErrDuplicateAllocation  = errors.New("category allocated more than once")
	ErrWizardNotEligible    = errors.New("budget wizard is not available")
	ErrInvalidConflictState = errors.New("invalid conflict action")
)

var (
	quarterDivisor      = decimal.NewFromInt(quarterMonths)
	suggestionPrecision = int32(1)
)

// WizardRules are the heuristics the budget wizard applies.
type WizardRules struct {
	EssentialCategories  []string
	MinSpendingThreshold decimal.Decimal
	EligibilityDays      int

	essential map[string]struct{}
}

func NewWizardRules(cfg config.WizardConfig) WizardRules {
	rules := WizardRules{
		EssentialCategories:  cfg.EssentialCategories,
		MinSpendingThreshold: cfg.MinSpendingThreshold,
		EligibilityDays:      cfg.EligibilityDays,
		essential:            make(map[string]struct{}, len(cfg.EssentialCategories)),
	}
	for _, name := range cfg.EssentialCategories {
		rules.essential[models.NormalizeCategoryName(name)] = struct{}{}
	}
	return rules
}

// IsEssential matches name against the essential allow-list ignoring case.
func (r WizardRules) IsEssential(name string) bool {
	normalized := models.NormalizeCategoryName(name)
	if r.essential != nil {
		_, ok := r.essential[normalized]
		return ok
	}
	for _, essential := range r.EssentialCategories {
		if models.NormalizeCategoryName(essential) == normalized {
			return true
		}
	}
	return false
}

// ResolveBudgetConflicts returns one conflict per existing budget of a
// proposed category whose period overlaps period. Every conflict defaults
// to replace.
func ResolveBudgetConflicts(proposed []uuid.UUID, existing []models.Budget, period models.DateRange) []models.BudgetConflict {
	wanted := make(map[uuid.UUID]struct{}, len(proposed))
	for _, id := range proposed {
		wanted[id] = struct{}{}
	}

	conflicts := make([]models.BudgetConflict, 0)
	for _, budget := range existing {
		if _, ok := wanted[budget.CategoryID]; !ok {
			continue
		}
		if !budget.Period().Overlaps(period) {
			continue
		}
		conflicts = append(conflicts, models.BudgetConflict{
			ExistingBudgetID: budget.ID,
			CategoryID:       budget.CategoryID,
			ExistingAmount:   budget.Amount,
			ExistingPeriod:   budget.Period(),
			Action:           models.ConflictActionReplace,
		})
	}

	return conflicts
}

// SelectEligibleCategories keeps the expense categories that are essential
// or whose trailing-quarter total reaches the threshold.
func SelectEligibleCategories(categories []models.Category, totals map[uuid.UUID]decimal.Decimal, rules WizardRules) []models.EligibleCategory {
	eligible := make([]models.EligibleCategory, 0)

	for _, category := range categories {
		if category.Type != models.CategoryTypeExpense {
			continue
		}

		total, ok := totals[category.ID]
		if !ok {
			total = decimal.Zero
		}
		essential := rules.IsEssential(category.Name)

		if !essential && total.LessThan(rules.MinSpendingThreshold) {
			continue
		}

		eligible = append(eligible, models.EligibleCategory{
			Category:     category,
			IsEssential:  essential,
			QuarterTotal: total,
			MonthlyAvg:   total.Div(quarterDivisor).Round(moneyDecimals),
		})
	}

	sort.SliceStable(eligible, func(i, j int) bool {
		a, b := eligible[i], eligible[j]
		if a.IsEssential != b.IsEssential {
			return a.IsEssential
		}
		if !a.QuarterTotal.Equal(b.QuarterTotal) {
			return a.QuarterTotal.GreaterThan(b.QuarterTotal)
		}
		return a.Category.Name < b.Category.Name
	})

	return eligible
}

// CheckWizardEligibility reports each condition of the wizard gate.
func CheckWizardEligibility(now time.Time, incomeThisMonth decimal.Decimal, eligibleCount int, rules WizardRules) models.WizardEligibility {
	result := models.WizardEligibility{
		WithinDateWindow:   now.Day() <= rules.EligibilityDays,
		HasIncomeThisMonth: incomeThisMonth.IsPositive(),
		HasEligibleCats:    eligibleCount >= 1,
	}
	result.Eligible = result.WithinDateWindow && result.HasIncomeThisMonth && result.HasEligibleCats
	return result
}

func IsWizardEligible(now time.Time, incomeThisMonth decimal.Decimal, eligibleCount int, rules WizardRules) bool {
	return CheckWizardEligibility(now, incomeThisMonth, eligibleCount, rules).Eligible
}

// SuggestAllocations splits available across the eligible categories in
// proportion to their trailing-quarter spending. Percentages are truncated
// to one decimal so they never sum above 100.
func SuggestAllocations(eligible []models.EligibleCategory, available decimal.Decimal) []models.BudgetAllocation {
	allocations := make([]models.BudgetAllocation, 0, len(eligible))
	if len(eligible) == 0 {
		return allocations
	}

	total := decimal.Zero
	for _, cat := range eligible {
		total = total.Add(cat.QuarterTotal)
	}

	equalShare := hundred.Div(decimal.NewFromInt(int64(len(eligible))))

	for _, cat := range eligible {
		pct := equalShare
		if total.IsPositive() {
			pct = cat.QuarterTotal.Div(total).Mul(hundred)
		}
		pct = pct.Truncate(suggestionPrecision)

		allocations = append(allocations, models.BudgetAllocation{
			CategoryID:          cat.Category.ID,
			Name:                cat.Category.Name,
			IsEssential:         cat.IsEssential,
			SuggestedPercentage: pct,
			Percentage:          pct,
			Amount:              AllocationAmount(available, pct),
		})
	}

	return allocations
}

// AllocationAmount is available * percentage / 100 rounded to cents.
func AllocationAmount(available, percentage decimal.Decimal) decimal.Decimal {
	return available.Mul(percentage).Div(hundred).Round(moneyDecimals)
}

// ValidateAllocations checks each percentage is within 0..100, each category
// appears once and the percentages sum to at most 100.
func ValidateAllocations(allocations []models.BudgetAllocation) error {
	seen := make(map[uuid.UUID]struct{}, len(allocations))
	sum := decimal.Zero

	for _, allocation := range allocations {
		if allocation.Percentage.IsNegative() || allocation.Percentage.GreaterThan(hundred) {
			return fmt.Errorf("%w: %s has %s", ErrInvalidAllocation, allocation.CategoryID, allocation.Percentage)
		}
		if _, dup := seen[allocation.CategoryID]; dup {
			return fmt.Errorf("%w: %s", ErrDuplicateAllocation, allocation.CategoryID)
		}
		seen[allocation.CategoryID] = struct{}{}
		sum = sum.Add(allocation.Percentage)
	}

	if sum.GreaterThan(hundred) {
		return fmt.Errorf("%w: total %s", ErrAllocationExceeded, sum)
	}
	return nil
}

// WizardPlan is the set of budget mutations that applying the wizard makes.
type WizardPlan struct {
	DeleteIDs         []uuid.UUID
	Creates           []models.Budget
	SkippedCategories []uuid.UUID
}

// PlanWizardApply turns allocations and the caller's conflict decisions into
// budget mutations. decisions is keyed by existing budget ID; conflicts
// without a decision keep their own action. A skip on any conflict of a
// category drops that category's new budget; zero-amount allocations are
// dropped as well.
func PlanWizardApply(
	userID uuid.UUID,
	allocations []models.BudgetAllocation,
	conflicts []models.BudgetConflict,
	decisions map[uuid.UUID]models.ConflictAction,
	period models.DateRange,
) (WizardPlan, error) {
	plan := WizardPlan{
		DeleteIDs:         make([]uuid.UUID, 0),
		Creates:           make([]models.Budget, 0, len(allocations)),
		SkippedCategories: make([]uuid.UUID, 0),
	}

	skipped := make(map[uuid.UUID]bool)
	var replaceIDs []uuid.UUID
	replaceCategory := make(map[uuid.UUID]uuid.UUID)

	for _, conflict := range conflicts {
		action := conflict.Action
		if decision, ok := decisions[conflict.ExistingBudgetID]; ok {
			action = decision
		}
		if action == "" {
			action = models.ConflictActionReplace
		}
		if !action.IsValid() {
			return plan, fmt.Errorf("%w: %q", ErrInvalidConflictState, action)
		}

		switch action {
		case models.ConflictActionSkip:
			skipped[conflict.CategoryID] = true
		case models.ConflictActionReplace:
			replaceIDs = append(replaceIDs, conflict.ExistingBudgetID)
			replaceCategory[conflict.ExistingBudgetID] = conflict.CategoryID
		}
	}

	for _, id := range replaceIDs {
		if skipped[replaceCategory[id]] {
			continue
		}
		plan.DeleteIDs = append(plan.DeleteIDs, id)
	}

	for _, allocation := range allocations {
		if skipped[allocation.CategoryID] {
			plan.SkippedCategories = append(plan.SkippedCategories, allocation.CategoryID)
			continue
		}
		if !allocation.Amount.IsPositive() {
			continue
		}
		plan.Creates = append(plan.Creates, models.Budget{
			UserID:      userID,
			CategoryID:  allocation.CategoryID,
			Amount:      allocation.Amount,
			PeriodStart: period.Start,
			PeriodEnd:   period.End,
			Source:      models.BudgetSourceWizard,
		})
	}

	return plan, nil
}
