package services

import (
	"testing"
	"time"

	"finance-tracker/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type ExpenseGeneratorTestSuite struct {
	suite.Suite
	generator  *expenseGenerator
	userID     uuid.UUID
	categories []models.Category
}

func TestExpenseGeneratorSuite(t *testing.T) {
	suite.Run(t, new(ExpenseGeneratorTestSuite))
}

func (s *ExpenseGeneratorTestSuite) SetupTest() {
	s.generator = NewExpenseGenerator(42).(*expenseGenerator)
	s.userID = uuid.New()

	s.categories = nil
	for _, def := range models.DefaultCategories() {
		s.categories = append(s.categories, models.Category{
			ID:     uuid.New(),
			UserID: s.userID,
			Name:   def.Name,
			Type:   def.Type,
		})
	}
}

func (s *ExpenseGeneratorTestSuite) TestMerchantPool() {
	pool := s.generator.GetMerchantPool()
	s.GreaterOrEqual(len(pool), 50)

	seen := make(map[string]bool)
	for _, merchant := range pool {
		s.NotEmpty(merchant.Name)
		s.NotEmpty(merchant.Category)
		s.False(seen[merchant.Name], "duplicate merchant %s", merchant.Name)
		seen[merchant.Name] = true
	}
}

func (s *ExpenseGeneratorTestSuite) TestSelectRandomMerchant() {
	for i := 0; i < 20; i++ {
		s.Equal(CategoryGroceries, s.generator.SelectRandomMerchant(CategoryGroceries).Category)
	}

	s.NotEmpty(s.generator.SelectRandomMerchant("Pets").Name)
}

func (s *ExpenseGeneratorTestSuite) TestGenerateAmount_WithinCategoryRange() {
	for _, name := range []string{CategoryGroceries, CategoryHousing, CategorySubscriptions, "Pets"} {
		minValue, maxValue := amountRange(name)
		for i := 0; i < 50; i++ {
			amount := s.generator.GenerateAmount(name)
			s.True(amount.GreaterThanOrEqual(decimal.NewFromFloat(minValue)), name)
			s.True(amount.LessThanOrEqual(decimal.NewFromFloat(maxValue)), name)
			s.LessOrEqual(-amount.Exponent(), int32(2), name)
		}
	}
}

func (s *ExpenseGeneratorTestSuite) TestGenerateDate() {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 1, 31, 0, 0, 0, 0, time.UTC)

	for i := 0; i < 50; i++ {
		date := s.generator.GenerateDate(start, end)
		s.False(date.Before(start))
		s.False(date.After(end))
		s.Equal(models.TruncateToDate(date), date)
	}

	s.Equal(start, s.generator.GenerateDate(start, start))
}

func (s *ExpenseGeneratorTestSuite) TestGenerateExpenses() {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC)

	expenses := s.generator.GenerateExpenses(s.userID, s.categories, start, end)
	s.NotEmpty(expenses)

	byID := make(map[uuid.UUID]models.Category)
	for _, category := range s.categories {
		byID[category.ID] = category
	}

	bills := make(map[string]int)
	for _, expense := range expenses {
		s.Equal(s.userID, expense.UserID)
		s.Equal(models.ExpenseSourceSeed, expense.Source)
		s.True(expense.Amount.IsPositive())
		s.False(expense.Date.Before(start))
		s.False(expense.Date.After(end))
		s.Require().NotNil(expense.CategoryID)

		category := byID[*expense.CategoryID]
		s.Equal(models.CategoryTypeExpense, category.Type, "expenses never land in income categories")
		if recurringCategories[category.Name] {
			s.Equal(billDay, expense.Date.Day())
			bills[category.Name]++
		}
	}

	for name := range recurringCategories {
		s.Equal(3, bills[name], "one %s bill per month", name)
	}
}

func (s *ExpenseGeneratorTestSuite) TestGenerateExpenses_NoCategories() {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	s.Empty(s.generator.GenerateExpenses(s.userID, nil, start, start.AddDate(0, 1, 0)))
}

func (s *ExpenseGeneratorTestSuite) TestGenerateIncomes() {
	salary := &models.Category{ID: uuid.New(), Name: CategorySalary, Type: models.CategoryTypeIncome}
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 4, 15, 0, 0, 0, 0, time.UTC)

	incomes := s.generator.GenerateIncomes(s.userID, salary, start, end)
	s.Require().Len(incomes, 3)
	for i, income := range incomes {
		s.Equal(salaryDay, income.Date.Day())
		s.Equal(time.Month(i+1), income.Date.Month())
		s.Equal(salary.ID, *income.CategoryID)
		s.True(incomes[0].Amount.Equal(income.Amount))
		s.Contains(income.Description, "Salary - ")
	}
}

func (s *ExpenseGeneratorTestSuite) TestGenerateIncomes_WithoutCategory() {
	start := time.Date(2025, 1, 28, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 2, 27, 0, 0, 0, 0, time.UTC)

	incomes := s.generator.GenerateIncomes(s.userID, nil, start, end)
	s.Require().Len(incomes, 1)
	s.Nil(incomes[0].CategoryID)
	s.Equal(time.February, incomes[0].Date.Month())
}

func (s *ExpenseGeneratorTestSuite) TestGenerateGoalsAndEntries() {
	now := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)

	goals := s.generator.GenerateGoals(s.userID, now)
	s.GreaterOrEqual(len(goals), 2)
	s.LessOrEqual(len(goals), 3)

	for _, goal := range goals {
		s.NoError(goal.Validate())
		s.True(goal.CreatedAt.Before(now))
		s.True(goal.TargetDate.After(now))
		goal.ID = uuid.New()

		entries := s.generator.GenerateGoalEntries(goal, now)
		s.NotEmpty(entries)
		for _, entry := range entries {
			s.Equal(goal.ID, entry.GoalID)
			s.False(entry.Amount.IsZero())
			s.False(entry.Date.After(now))
			s.True(entry.Date.After(goal.CreatedAt))
		}
	}
}
