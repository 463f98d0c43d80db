package services

import (
	"context"
	"time"

	"finance-tracker/internal/dto"
	"finance-tracker/internal/models"
	"finance-tracker/internal/repositories"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type budgetService struct {
	budgets    repositories.BudgetRepositoryInterface
	categories repositories.CategoryRepositoryInterface
	expenses   repositories.ExpenseRepositoryInterface
}

func NewBudgetService(
	budgets repositories.BudgetRepositoryInterface,
	categories repositories.CategoryRepositoryInterface,
	expenses repositories.ExpenseRepositoryInterface,
) BudgetServiceInterface {
	return &budgetService{
		budgets:    budgets,
		categories: categories,
		expenses:   expenses,
	}
}

func (s *budgetService) Create(ctx context.Context, userID uuid.UUID, req *dto.CreateBudgetRequest) (*models.Budget, error) {
	categoryID, err := uuid.Parse(req.CategoryID)
	if err != nil {
		return nil, invalidInput("category_id", err)
	}
	if err := resolveCategory(ctx, s.categories, userID, &categoryID, models.CategoryTypeExpense); err != nil {
		return nil, err
	}

	amount, err := dto.ParseAmount(req.Amount)
	if err != nil {
		return nil, invalidInput("amount", err)
	}
	if !amount.IsPositive() {
		return nil, invalidInput("amount", models.ErrInvalidAmount)
	}

	period, err := parsePeriod(req.PeriodStart, req.PeriodEnd)
	if err != nil {
		return nil, err
	}

	budget := &models.Budget{
		UserID:      userID,
		CategoryID:  categoryID,
		Amount:      amount,
		PeriodStart: period.Start,
		PeriodEnd:   period.End,
		Source:      models.BudgetSourceManual,
	}

	if err := s.budgets.Create(ctx, budget); err != nil {
		return nil, err
	}

	return budget, nil
}

// List returns the user's budgets with what was spent in each budget's
// category over its own period.
func (s *budgetService) List(ctx context.Context, userID uuid.UUID, activeOn *time.Time) ([]models.BudgetWithSpending, error) {
	budgets, err := s.budgets.ListByUser(ctx, userID, activeOn)
	if err != nil {
		return nil, err
	}

	result := make([]models.BudgetWithSpending, 0, len(budgets))
	for _, budget := range budgets {
		spent, err := s.expenses.SumByCategoryInRange(ctx, userID, budget.CategoryID, budget.PeriodStart, budget.PeriodEnd)
		if err != nil {
			return nil, err
		}
		result = append(result, withSpending(budget, spent))
	}

	return result, nil
}

func (s *budgetService) Update(ctx context.Context, userID, id uuid.UUID, req *dto.UpdateBudgetRequest) (*models.Budget, error) {
	budget, err := s.budgets.GetByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	if req.Amount != nil {
		amount, err := dto.ParseAmount(*req.Amount)
		if err != nil {
			return nil, invalidInput("amount", err)
		}
		if !amount.IsPositive() {
			return nil, invalidInput("amount", models.ErrInvalidAmount)
		}
		budget.Amount = amount
	}

	start := budget.PeriodStart.Format(models.DateLayout)
	end := budget.PeriodEnd.Format(models.DateLayout)
	if req.PeriodStart != nil {
		start = *req.PeriodStart
	}
	if req.PeriodEnd != nil {
		end = *req.PeriodEnd
	}
	period, err := parsePeriod(start, end)
	if err != nil {
		return nil, err
	}
	budget.PeriodStart = period.Start
	budget.PeriodEnd = period.End
	budget.Category = nil

	if err := s.budgets.Update(ctx, budget); err != nil {
		return nil, err
	}

	return budget, nil
}

func (s *budgetService) Delete(ctx context.Context, userID, id uuid.UUID) error {
	return s.budgets.Delete(ctx, userID, id)
}

func withSpending(budget models.Budget, spent decimal.Decimal) models.BudgetWithSpending {
	used := decimal.Zero
	if budget.Amount.IsPositive() {
		used = spent.Div(budget.Amount).Mul(hundred).Round(moneyDecimals)
	}

	return models.BudgetWithSpending{
		Budget:         budget,
		Spent:          spent,
		Remaining:      decimal.Max(decimal.Zero, budget.Amount.Sub(spent)),
		PercentageUsed: used,
	}
}

// parsePeriod parses an inclusive YYYY-MM-DD period and rejects inverted ranges.
func parsePeriod(start, end string) (models.DateRange, error) {
	from, err := models.ParseDate(start)
	if err != nil {
		return models.DateRange{}, invalidInput("period_start", err)
	}
	to, err := models.ParseDate(end)
	if err != nil {
		return models.DateRange{}, invalidInput("period_end", err)
	}

	period := models.NewDateRange(from, to)
	if period.Start.After(period.End) {
		return models.DateRange{}, ErrInvalidPeriod
	}
	return period, nil
}
