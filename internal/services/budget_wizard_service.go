package services

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"finance-tracker/internal/dto"
	"finance-tracker/internal/events"
	"finance-tracker/internal/models"
	"finance-tracker/internal/repositories"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type budgetWizardService struct {
	rules        WizardRules
	categories   repositories.CategoryRepositoryInterface
	budgets      repositories.BudgetRepositoryInterface
	incomes      IncomeServiceInterface
	insights     InsightServiceInterface
	auditService AuditServiceInterface
	auditLogger  AuditLoggerInterface
	notifier     eventNotifier
	metrics      MetricsRecorderInterface
}

func NewBudgetWizardService(
	rules WizardRules,
	categories repositories.CategoryRepositoryInterface,
	budgets repositories.BudgetRepositoryInterface,
	incomes IncomeServiceInterface,
	insights InsightServiceInterface,
	auditService AuditServiceInterface,
	auditLogger AuditLoggerInterface,
	publisher events.Publisher,
	metrics MetricsRecorderInterface,
) BudgetWizardServiceInterface {
	return &budgetWizardService{
		rules:        rules,
		categories:   categories,
		budgets:      budgets,
		incomes:      incomes,
		insights:     insights,
		auditService: auditService,
		auditLogger:  auditLogger,
		notifier:     newEventNotifier(publisher, auditLogger, metrics),
		metrics:      metrics,
	}
}

// State gathers what the wizard shows for the month containing now.
func (s *budgetWizardService) State(ctx context.Context, userID uuid.UUID, now time.Time) (*dto.WizardStateResponse, error) {
	categories, err := s.categories.ListByUser(ctx, userID, models.CategoryTypeExpense)
	if err != nil {
		return nil, err
	}

	totals, err := s.insights.QuarterTotalsByCategory(ctx, userID, now)
	if err != nil {
		return nil, err
	}

	available, err := s.incomes.MonthlyTotal(ctx, userID, now)
	if err != nil {
		return nil, err
	}

	insights, err := s.insights.SpendingInsights(ctx, userID, now)
	if err != nil {
		return nil, err
	}

	eligible := SelectEligibleCategories(categories, totals, s.rules)
	s.metrics.RecordGauge(MetricEligibleCategories, float64(len(eligible)), nil)

	return &dto.WizardStateResponse{
		Eligibility:          CheckWizardEligibility(now, available, len(eligible), s.rules),
		Period:               models.MonthRange(now),
		AvailableFunds:       available,
		EligibleCategories:   eligible,
		SuggestedAllocations: SuggestAllocations(eligible, available),
		Insights:             *insights,
	}, nil
}

func (s *budgetWizardService) Conflicts(ctx context.Context, userID uuid.UUID, req *dto.WizardConflictsRequest) ([]models.BudgetConflict, error) {
	period, err := parsePeriod(req.PeriodStart, req.PeriodEnd)
	if err != nil {
		return nil, err
	}

	allocations, err := s.parseAllocations(ctx, userID, req.Allocations, decimal.Zero)
	if err != nil {
		return nil, err
	}

	return s.conflictsFor(ctx, userID, allocations, period)
}

// Apply commits the allocations against this month's income in a single
// transaction. Conflicts are recomputed here; decisions refer to them by
// existing budget ID.
func (s *budgetWizardService) Apply(ctx context.Context, userID uuid.UUID, req *dto.ApplyWizardRequest, now time.Time, ipAddress, userAgent string) (*dto.ApplyWizardResponse, error) {
	start := time.Now()

	period, err := parsePeriod(req.PeriodStart, req.PeriodEnd)
	if err != nil {
		return nil, err
	}

	available, err := s.incomes.MonthlyTotal(ctx, userID, now)
	if err != nil {
		return nil, err
	}
	if !available.IsPositive() {
		s.metrics.IncrementCounter(MetricWizardApplied, map[string]string{"status": "rejected"})
		return nil, fmt.Errorf("%w: no income recorded this month", ErrWizardNotEligible)
	}

	allocations, err := s.parseAllocations(ctx, userID, req.Allocations, available)
	if err != nil {
		s.metrics.IncrementCounter(MetricWizardApplied, map[string]string{"status": "rejected"})
		return nil, err
	}

	conflicts, err := s.conflictsFor(ctx, userID, allocations, period)
	if err != nil {
		return nil, err
	}

	decisions, err := parseDecisions(req.Decisions, conflicts)
	if err != nil {
		return nil, err
	}

	plan, err := PlanWizardApply(userID, allocations, conflicts, decisions, period)
	if err != nil {
		return nil, invalidInput("decisions", err)
	}
	for i := range plan.Creates {
		plan.Creates[i].ID = uuid.New()
	}

	if err := s.budgets.ApplyWizard(ctx, userID, plan.DeleteIDs, plan.Creates); err != nil {
		s.metrics.IncrementCounter(MetricWizardApplied, map[string]string{"status": "failure"})
		return nil, err
	}

	created, deleted, skipped := len(plan.Creates), len(plan.DeleteIDs), len(plan.SkippedCategories)

	s.metrics.IncrementCounter(MetricWizardApplied, map[string]string{"status": "success"})
	s.auditLogger.LogWizardApplied(ctx, userID, created, deleted, skipped, time.Since(start).Milliseconds())
	if err := s.auditService.LogWizardApplied(ctx, userID, created, deleted, skipped, ipAddress, userAgent); err != nil {
		s.auditLogger.LogAuditWriteFailed(ctx, models.AuditActionWizardApplied, err.Error())
	}
	s.notifier.notify(ctx, events.NewMessage(events.BudgetWizardApplied, userID, uuid.Nil, map[string]string{
		"period_start": period.Start.Format(models.DateLayout),
		"period_end":   period.End.Format(models.DateLayout),
		"created":      strconv.Itoa(created),
		"deleted":      strconv.Itoa(deleted),
		"skipped":      strconv.Itoa(skipped),
	}))

	return &dto.ApplyWizardResponse{
		Created:           plan.Creates,
		Deleted:           plan.DeleteIDs,
		SkippedCategories: plan.SkippedCategories,
	}, nil
}

// parseAllocations checks each requested category is one of the user's
// expense categories and prices the allocation against available.
func (s *budgetWizardService) parseAllocations(ctx context.Context, userID uuid.UUID, requests []dto.AllocationRequest, available decimal.Decimal) ([]models.BudgetAllocation, error) {
	if len(requests) == 0 {
		return nil, invalidInput("allocations", fmt.Errorf("at least one allocation is required"))
	}

	categories, err := s.categories.ListByUser(ctx, userID, models.CategoryTypeExpense)
	if err != nil {
		return nil, err
	}
	owned := make(map[uuid.UUID]models.Category, len(categories))
	for _, category := range categories {
		owned[category.ID] = category
	}

	allocations := make([]models.BudgetAllocation, 0, len(requests))
	for _, req := range requests {
		categoryID, err := uuid.Parse(req.CategoryID)
		if err != nil {
			return nil, invalidInput("category_id", err)
		}
		category, ok := owned[categoryID]
		if !ok {
			return nil, fmt.Errorf("%w: %s", repositories.ErrCategoryNotFound, categoryID)
		}

		percentage, err := decimal.NewFromString(req.Percentage)
		if err != nil {
			return nil, invalidInput("percentage", err)
		}

		allocations = append(allocations, models.BudgetAllocation{
			CategoryID:  categoryID,
			Name:        category.Name,
			IsEssential: s.rules.IsEssential(category.Name),
			Percentage:  percentage,
			Amount:      AllocationAmount(available, percentage),
		})
	}

	if err := ValidateAllocations(allocations); err != nil {
		return nil, err
	}

	return allocations, nil
}

func (s *budgetWizardService) conflictsFor(ctx context.Context, userID uuid.UUID, allocations []models.BudgetAllocation, period models.DateRange) ([]models.BudgetConflict, error) {
	ids := make([]uuid.UUID, 0, len(allocations))
	for _, allocation := range allocations {
		ids = append(ids, allocation.CategoryID)
	}

	existing, err := s.budgets.ListOverlapping(ctx, userID, ids, period)
	if err != nil {
		return nil, err
	}

	return ResolveBudgetConflicts(ids, existing, period), nil
}

func parseDecisions(requests []dto.ConflictDecision, conflicts []models.BudgetConflict) (map[uuid.UUID]models.ConflictAction, error) {
	known := make(map[uuid.UUID]struct{}, len(conflicts))
	for _, conflict := range conflicts {
		known[conflict.ExistingBudgetID] = struct{}{}
	}

	decisions := make(map[uuid.UUID]models.ConflictAction, len(requests))
	for _, req := range requests {
		id, err := uuid.Parse(req.ExistingBudgetID)
		if err != nil {
			return nil, invalidInput("existing_budget_id", err)
		}
		if _, ok := known[id]; !ok {
			return nil, invalidInput("existing_budget_id", fmt.Errorf("budget %s does not conflict with the proposal", id))
		}
		action := models.ConflictAction(req.Action)
		if !action.IsValid() {
			return nil, invalidInput("action", fmt.Errorf("%w: %q", ErrInvalidConflictState, req.Action))
		}
		decisions[id] = action
	}

	return decisions, nil
}
