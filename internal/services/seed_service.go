package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"finance-tracker/internal/dto"
	"finance-tracker/internal/models"
	"finance-tracker/internal/repositories"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const maxSeedMonths = 24

var ErrInvalidSeedMonths = fmt.Errorf("months must be between 1 and %d", maxSeedMonths)

type seedService struct {
	users      UserServiceInterface
	categories repositories.CategoryRepositoryInterface
	expenses   repositories.ExpenseRepositoryInterface
	incomes    repositories.IncomeRepositoryInterface
	goals      repositories.GoalRepositoryInterface
	generator  ExpenseGeneratorInterface
}

func NewSeedService(
	users UserServiceInterface,
	categories repositories.CategoryRepositoryInterface,
	expenses repositories.ExpenseRepositoryInterface,
	incomes repositories.IncomeRepositoryInterface,
	goals repositories.GoalRepositoryInterface,
	generator ExpenseGeneratorInterface,
) SeedServiceInterface {
	return &seedService{
		users:      users,
		categories: categories,
		expenses:   expenses,
		incomes:    incomes,
		goals:      goals,
		generator:  generator,
	}
}

// Seed provisions the user if needed and fills the last months full months
// up to now with generated history.
func (s *seedService) Seed(ctx context.Context, userID uuid.UUID, email string, months int, now time.Time) (*dto.SeedSummary, error) {
	if months < 1 || months > maxSeedMonths {
		return nil, ErrInvalidSeedMonths
	}
	if userID == uuid.Nil {
		return nil, ErrInvalidUserID
	}

	claims := &models.CustomClaims{
		RegisteredClaims: jwt.RegisteredClaims{Subject: userID.String()},
		Email:            email,
	}
	if _, err := s.users.EnsureUser(ctx, claims); err != nil {
		return nil, fmt.Errorf("failed to provision user: %w", err)
	}

	categories, err := s.categories.ListByUser(ctx, userID, "")
	if err != nil {
		return nil, err
	}

	today := models.TruncateToDate(now)
	period := models.NewDateRange(time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, -months, 0), today)
	summary := &dto.SeedSummary{
		Categories: len(categories),
		Period:     period,
	}

	expenses := s.generator.GenerateExpenses(userID, categories, period.Start, period.End)
	if err := s.expenses.CreateBatch(ctx, expenses); err != nil {
		return nil, fmt.Errorf("failed to seed expenses: %w", err)
	}
	summary.Expenses = len(expenses)

	incomes := s.generator.GenerateIncomes(userID, salaryCategory(categories), period.Start, period.End)
	if err := s.incomes.CreateBatch(ctx, incomes); err != nil {
		return nil, fmt.Errorf("failed to seed incomes: %w", err)
	}
	summary.Incomes = len(incomes)

	for _, goal := range s.generator.GenerateGoals(userID, now) {
		if err := s.goals.Create(ctx, &goal); err != nil {
			return nil, fmt.Errorf("failed to seed goal: %w", err)
		}
		summary.Goals++

		for _, entry := range s.generator.GenerateGoalEntries(goal, now) {
			if err := s.goals.CreateEntry(ctx, &entry); err != nil {
				if errors.Is(err, models.ErrZeroEntryAmount) {
					continue
				}
				return nil, fmt.Errorf("failed to seed goal entry: %w", err)
			}
			summary.GoalEntries++
		}
	}

	return summary, nil
}

func salaryCategory(categories []models.Category) *models.Category {
	for i := range categories {
		if categories[i].Type == models.CategoryTypeIncome && categories[i].Name == CategorySalary {
			return &categories[i]
		}
	}
	for i := range categories {
		if categories[i].Type == models.CategoryTypeIncome {
			return &categories[i]
		}
	}
	return nil
}
