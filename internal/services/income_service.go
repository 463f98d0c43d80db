package services

import (
	"context"
	"strings"
	"time"

	"finance-tracker/internal/dto"
	"finance-tracker/internal/models"
	"finance-tracker/internal/repositories"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type incomeService struct {
	incomes    repositories.IncomeRepositoryInterface
	categories repositories.CategoryRepositoryInterface
}

func NewIncomeService(incomes repositories.IncomeRepositoryInterface, categories repositories.CategoryRepositoryInterface) IncomeServiceInterface {
	return &incomeService{
		incomes:    incomes,
		categories: categories,
	}
}

func (s *incomeService) Create(ctx context.Context, userID uuid.UUID, req *dto.CreateIncomeRequest) (*models.Income, error) {
	income := &models.Income{UserID: userID}
	if err := s.apply(ctx, userID, income, req); err != nil {
		return nil, err
	}

	if err := s.incomes.Create(ctx, income); err != nil {
		return nil, err
	}

	return income, nil
}

func (s *incomeService) List(ctx context.Context, userID uuid.UUID, from, to *time.Time, offset, limit int) ([]models.Income, int64, error) {
	if from != nil && to != nil && from.After(*to) {
		return nil, 0, ErrInvalidPeriod
	}
	return s.incomes.List(ctx, userID, from, to, offset, limit)
}

func (s *incomeService) Update(ctx context.Context, userID, id uuid.UUID, req *dto.UpdateIncomeRequest) (*models.Income, error) {
	income, err := s.incomes.GetByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	if err := s.apply(ctx, userID, income, req); err != nil {
		return nil, err
	}
	income.Category = nil

	if err := s.incomes.Update(ctx, income); err != nil {
		return nil, err
	}

	return income, nil
}

func (s *incomeService) Delete(ctx context.Context, userID, id uuid.UUID) error {
	return s.incomes.Delete(ctx, userID, id)
}

// MonthlyTotal sums the incomes of the calendar month containing now.
func (s *incomeService) MonthlyTotal(ctx context.Context, userID uuid.UUID, now time.Time) (decimal.Decimal, error) {
	month := models.MonthRange(now)
	return s.incomes.SumInRange(ctx, userID, month.Start, month.End)
}

func (s *incomeService) apply(ctx context.Context, userID uuid.UUID, income *models.Income, req *dto.CreateIncomeRequest) error {
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
	if err := resolveCategory(ctx, s.categories, userID, categoryID, models.CategoryTypeIncome); err != nil {
		return err
	}

	income.Amount = amount
	income.Date = date
	income.CategoryID = categoryID
	income.Description = strings.TrimSpace(req.Description)

	return nil
}
