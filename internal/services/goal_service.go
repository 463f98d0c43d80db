package services

import (
	"context"
	"strings"
	"time"

	"finance-tracker/internal/dto"
	"finance-tracker/internal/events"
	"finance-tracker/internal/models"
	"finance-tracker/internal/repositories"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// maxConcurrentLedgerReads bounds the entry queries issued when listing goals.
const maxConcurrentLedgerReads = 8

const (
	entryKindContribution = "contribution"
	entryKindWithdrawal   = "withdrawal"
)

type goalService struct {
	goals        repositories.GoalRepositoryInterface
	categories   repositories.CategoryRepositoryInterface
	budgets      repositories.BudgetRepositoryInterface
	auditService AuditServiceInterface
	auditLogger  AuditLoggerInterface
	notifier     eventNotifier
	metrics      MetricsRecorderInterface
	now          func() time.Time
}

func NewGoalService(
	goals repositories.GoalRepositoryInterface,
	categories repositories.CategoryRepositoryInterface,
	budgets repositories.BudgetRepositoryInterface,
	auditService AuditServiceInterface,
	auditLogger AuditLoggerInterface,
	publisher events.Publisher,
	metrics MetricsRecorderInterface,
) GoalServiceInterface {
	return &goalService{
		goals:        goals,
		categories:   categories,
		budgets:      budgets,
		auditService: auditService,
		auditLogger:  auditLogger,
		notifier:     newEventNotifier(publisher, auditLogger, metrics),
		metrics:      metrics,
		now:          time.Now,
	}
}

func (s *goalService) Create(ctx context.Context, userID uuid.UUID, req *dto.CreateGoalRequest, ipAddress, userAgent string) (*models.GoalWithProgress, error) {
	goal := &models.Goal{
		UserID: userID,
		Name:   strings.TrimSpace(req.Name),
	}

	update := &dto.UpdateGoalRequest{
		TargetAmount: &req.TargetAmount,
		TargetDate:   &req.TargetDate,
		CategoryID:   req.CategoryID,
		BudgetID:     req.BudgetID,
	}
	if err := s.apply(ctx, userID, goal, update); err != nil {
		return nil, err
	}

	if err := goal.Validate(); err != nil {
		return nil, invalidInput("goal", err)
	}

	if err := s.goals.Create(ctx, goal); err != nil {
		return nil, err
	}

	if err := s.auditService.LogGoalCreated(ctx, userID, goal.ID, ipAddress, userAgent); err != nil {
		s.auditLogger.LogAuditWriteFailed(ctx, models.AuditActionCreate, err.Error())
	}

	return s.withProgress(*goal, nil, true), nil
}

func (s *goalService) Get(ctx context.Context, userID, id uuid.UUID) (*models.GoalWithProgress, error) {
	goal, err := s.goals.GetByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	entries, err := s.goals.ListEntries(ctx, goal.ID)
	if err != nil {
		return nil, err
	}

	return s.withProgress(*goal, entries, true), nil
}

// List reads every goal's ledger concurrently. The first failed read
// cancels the others.
func (s *goalService) List(ctx context.Context, userID uuid.UUID) ([]models.GoalWithProgress, error) {
	goals, err := s.goals.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	ledgers := make([][]models.GoalEntry, len(goals))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentLedgerReads)
	for i := range goals {
		g.Go(func() error {
			entries, err := s.goals.ListEntries(gctx, goals[i].ID)
			if err != nil {
				return err
			}
			ledgers[i] = entries
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	result := make([]models.GoalWithProgress, 0, len(goals))
	for i, goal := range goals {
		result = append(result, *s.withProgress(goal, ledgers[i], false))
	}

	return result, nil
}

func (s *goalService) Update(ctx context.Context, userID, id uuid.UUID, req *dto.UpdateGoalRequest) (*models.GoalWithProgress, error) {
	goal, err := s.goals.GetByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		goal.Name = strings.TrimSpace(*req.Name)
	}
	if err := s.apply(ctx, userID, goal, req); err != nil {
		return nil, err
	}

	if err := goal.Validate(); err != nil {
		return nil, invalidInput("goal", err)
	}

	if err := s.goals.Update(ctx, goal); err != nil {
		return nil, err
	}

	entries, err := s.goals.ListEntries(ctx, goal.ID)
	if err != nil {
		return nil, err
	}

	return s.withProgress(*goal, entries, true), nil
}

func (s *goalService) Delete(ctx context.Context, userID, id uuid.UUID, ipAddress, userAgent string) error {
	if err := s.goals.Delete(ctx, userID, id); err != nil {
		return err
	}

	if err := s.auditService.LogGoalDeleted(ctx, userID, id, ipAddress, userAgent); err != nil {
		s.auditLogger.LogAuditWriteFailed(ctx, models.AuditActionDelete, err.Error())
	}

	return nil
}

// AddEntry records a contribution or withdrawal. Crossing the target for the
// first time is counted and announced.
func (s *goalService) AddEntry(ctx context.Context, userID, goalID uuid.UUID, req *dto.CreateGoalEntryRequest) (*models.GoalWithProgress, error) {
	goal, err := s.goals.GetByID(ctx, userID, goalID)
	if err != nil {
		return nil, err
	}

	amount, err := dto.ParseAmount(req.Amount)
	if err != nil {
		return nil, invalidInput("amount", err)
	}
	if amount.IsZero() {
		return nil, invalidInput("amount", models.ErrZeroEntryAmount)
	}

	now := s.now()
	date, err := dto.ParseOptionalDate(req.Date, now)
	if err != nil {
		return nil, invalidInput("date", err)
	}

	before, err := s.goals.ListEntries(ctx, goal.ID)
	if err != nil {
		return nil, err
	}
	wasAchieved := ComputeGoalProgress(*goal, before, now).Status == models.GoalStatusAchieved

	entry := &models.GoalEntry{
		GoalID:      goal.ID,
		Amount:      amount,
		Description: strings.TrimSpace(req.Description),
		Date:        date,
	}
	if err := s.goals.CreateEntry(ctx, entry); err != nil {
		return nil, err
	}

	kind := entryKindContribution
	if entry.IsWithdrawal() {
		kind = entryKindWithdrawal
	}
	s.metrics.IncrementCounter(MetricGoalEntryRecorded, map[string]string{"kind": kind})
	s.auditLogger.LogGoalEntryRecorded(ctx, userID, goal.ID, entry.ID, amount.StringFixed(2))

	result := s.withProgress(*goal, append(before, *entry), true)

	if !wasAchieved && result.Progress.Status == models.GoalStatusAchieved {
		s.metrics.IncrementCounter(MetricGoalAchieved, nil)
		s.auditLogger.LogGoalAchieved(ctx, userID, goal.ID)
		s.notifier.notify(ctx, events.NewMessage(events.GoalAchieved, userID, goal.ID, map[string]string{
			"target_amount":  goal.TargetAmount.StringFixed(2),
			"current_amount": result.Progress.CurrentAmount.StringFixed(2),
		}))
	}

	return result, nil
}

func (s *goalService) DeleteEntry(ctx context.Context, userID, goalID, entryID uuid.UUID) (*models.GoalWithProgress, error) {
	goal, err := s.goals.GetByID(ctx, userID, goalID)
	if err != nil {
		return nil, err
	}

	if err := s.goals.DeleteEntry(ctx, goal.ID, entryID); err != nil {
		return nil, err
	}

	entries, err := s.goals.ListEntries(ctx, goal.ID)
	if err != nil {
		return nil, err
	}

	return s.withProgress(*goal, entries, true), nil
}

// apply copies the optional target and link fields of req onto goal.
func (s *goalService) apply(ctx context.Context, userID uuid.UUID, goal *models.Goal, req *dto.UpdateGoalRequest) error {
	if req.TargetAmount != nil {
		amount, err := dto.ParseAmount(*req.TargetAmount)
		if err != nil {
			return invalidInput("target_amount", err)
		}
		goal.TargetAmount = amount
	}

	if req.TargetDate != nil {
		date, err := models.ParseDate(*req.TargetDate)
		if err != nil {
			return invalidInput("target_date", err)
		}
		goal.TargetDate = date
	}

	if req.CategoryID != nil {
		categoryID, err := dto.ParseOptionalUUID(req.CategoryID)
		if err != nil {
			return invalidInput("category_id", err)
		}
		if err := resolveCategory(ctx, s.categories, userID, categoryID, ""); err != nil {
			return err
		}
		goal.CategoryID = categoryID
	}

	if req.BudgetID != nil {
		budgetID, err := dto.ParseOptionalUUID(req.BudgetID)
		if err != nil {
			return invalidInput("budget_id", err)
		}
		if budgetID != nil {
			if _, err := s.budgets.GetByID(ctx, userID, *budgetID); err != nil {
				return err
			}
		}
		goal.BudgetID = budgetID
	}

	return nil
}

func (s *goalService) withProgress(goal models.Goal, entries []models.GoalEntry, includeEntries bool) *models.GoalWithProgress {
	start := time.Now()
	progress := ComputeGoalProgress(goal, entries, s.now())
	s.metrics.RecordProcessingTime("goal_progress", time.Since(start))

	result := &models.GoalWithProgress{
		Goal:     goal,
		Progress: progress,
	}
	if includeEntries {
		result.Entries = entries
		if result.Entries == nil {
			result.Entries = []models.GoalEntry{}
		}
	}
	return result
}
