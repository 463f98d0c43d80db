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
)

type expenseService struct {
	expenses   repositories.ExpenseRepositoryInterface
	categories repositories.CategoryRepositoryInterface
	notifier   eventNotifier
	metrics    MetricsRecorderInterface
}

func NewExpenseService(
	expenses repositories.ExpenseRepositoryInterface,
	categories repositories.CategoryRepositoryInterface,
	publisher events.Publisher,
	auditLogger AuditLoggerInterface,
	metrics MetricsRecorderInterface,
) ExpenseServiceInterface {
	return &expenseService{
		expenses:   expenses,
		categories: categories,
		notifier:   newEventNotifier(publisher, auditLogger, metrics),
		metrics:    metrics,
	}
}

func (s *expenseService) Create(ctx context.Context, userID uuid.UUID, req *dto.CreateExpenseRequest, source string) (*models.Expense, error) {
	if source == "" {
		source = models.ExpenseSourceManual
	}
	if !models.IsValidExpenseSource(source) {
		return nil, invalidInput("source", models.ErrInvalidExpenseSource)
	}

	expense := &models.Expense{
		UserID: userID,
		Source: source,
	}
	if err := s.apply(ctx, userID, expense, (*dto.UpdateExpenseRequest)(req)); err != nil {
		return nil, err
	}

	if err := s.expenses.Create(ctx, expense); err != nil {
		return nil, err
	}

	s.metrics.IncrementCounter(MetricExpenseCreated, map[string]string{"source": source})
	s.notifier.notify(ctx, events.NewMessage(events.ExpenseCreated, userID, expense.ID, expenseAttributes(expense)))

	return expense, nil
}

func (s *expenseService) Get(ctx context.Context, userID, id uuid.UUID) (*models.Expense, error) {
	return s.expenses.GetByID(ctx, userID, id)
}

func (s *expenseService) List(ctx context.Context, userID uuid.UUID, filters models.ExpenseFilters) ([]models.Expense, int64, error) {
	if filters.From != nil && filters.To != nil && filters.From.After(*filters.To) {
		return nil, 0, ErrInvalidPeriod
	}
	return s.expenses.List(ctx, userID, filters)
}

func (s *expenseService) Update(ctx context.Context, userID, id uuid.UUID, req *dto.UpdateExpenseRequest) (*models.Expense, error) {
	expense, err := s.expenses.GetByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	if err := s.apply(ctx, userID, expense, req); err != nil {
		return nil, err
	}
	expense.Category = nil

	if err := s.expenses.Update(ctx, expense); err != nil {
		return nil, err
	}

	return expense, nil
}

func (s *expenseService) Delete(ctx context.Context, userID, id uuid.UUID) error {
	return s.expenses.Delete(ctx, userID, id)
}

// apply copies the request fields onto expense after parsing and checking them.
func (s *expenseService) apply(ctx context.Context, userID uuid.UUID, expense *models.Expense, req *dto.UpdateExpenseRequest) error {
	amount, err := dto.ParseAmount(req.Amount)
	if err != nil {
		return invalidInput("amount", err)
	}
	if !amount.IsPositive() {
		return invalidInput("amount", models.ErrInvalidAmount)
	}

	date, err := dto.ParseOptionalDate(req.Date, time.Now())
	if err != nil {
		return invalidInput("date", err)
	}

	categoryID, err := dto.ParseOptionalUUID(req.CategoryID)
	if err != nil {
		return invalidInput("category_id", err)
	}
	if err := resolveCategory(ctx, s.categories, userID, categoryID, models.CategoryTypeExpense); err != nil {
		return err
	}

	expense.Amount = amount
	expense.Date = date
	expense.CategoryID = categoryID
	expense.Description = strings.TrimSpace(req.Description)
	expense.Merchant = strings.TrimSpace(req.Merchant)

	return nil
}

func expenseAttributes(expense *models.Expense) map[string]string {
	attrs := map[string]string{
		"amount": expense.Amount.StringFixed(2),
		"date":   expense.Date.Format(models.DateLayout),
		"source": expense.Source,
	}
	if expense.CategoryID != nil {
		attrs["category_id"] = expense.CategoryID.String()
	}
	if expense.Merchant != "" {
		attrs["merchant"] = expense.Merchant
	}
	return attrs
}
