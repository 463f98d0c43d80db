package repositories

import (
	"context"
	"testing"
	"time"

	"finance-tracker/internal/database"
	"finance-tracker/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

func TestExpenseRepository(t *testing.T) {
	suite.Run(t, new(ExpenseRepositorySuite))
}

type ExpenseRepositorySuite struct {
	suite.Suite
	db        *database.DB
	repo      ExpenseRepositoryInterface
	ctx       context.Context
	user      *models.User
	groceries *models.Category
}

func (s *ExpenseRepositorySuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.repo = NewExpenseRepository(s.db.DB)
	s.ctx = context.Background()
	s.user = database.CreateTestUser(s.T(), s.db, "expenses@example.com")
	s.groceries = database.CreateTestCategory(s.T(), s.db, s.user, "Groceries")
}

func (s *ExpenseRepositorySuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

func (s *ExpenseRepositorySuite) date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func (s *ExpenseRepositorySuite) expense(amount string, date time.Time, categoryID *uuid.UUID) models.Expense {
	return models.Expense{
		UserID:     s.user.ID,
		CategoryID: categoryID,
		Amount:     decimal.RequireFromString(amount),
		Date:       date,
	}
}

func (s *ExpenseRepositorySuite) TestCreate_RejectsNonPositiveAmount() {
	expense := s.expense("0", time.Now(), nil)
	s.Error(s.repo.Create(s.ctx, &expense))
}

func (s *ExpenseRepositorySuite) TestGetByID_PreloadsCategory() {
	expense := s.expense("42.50", s.date(2024, time.March, 3), &s.groceries.ID)
	s.Require().NoError(s.repo.Create(s.ctx, &expense))

	found, err := s.repo.GetByID(s.ctx, s.user.ID, expense.ID)
	s.NoError(err)
	s.Require().NotNil(found.Category)
	s.Equal("Groceries", found.Category.Name)
	s.Equal(models.ExpenseSourceManual, found.Source)

	_, err = s.repo.GetByID(s.ctx, uuid.New(), expense.ID)
	s.ErrorIs(err, ErrExpenseNotFound)
}

func (s *ExpenseRepositorySuite) TestList_FiltersAndPaginates() {
	s.Require().NoError(s.repo.CreateBatch(s.ctx, []models.Expense{
		s.expense("10", s.date(2024, time.January, 5), &s.groceries.ID),
		s.expense("20", s.date(2024, time.February, 5), &s.groceries.ID),
		s.expense("30", s.date(2024, time.February, 20), nil),
		s.expense("40", s.date(2024, time.March, 1), &s.groceries.ID),
	}))

	from := s.date(2024, time.February, 1)
	to := s.date(2024, time.February, 29)
	expenses, total, err := s.repo.List(s.ctx, s.user.ID, models.ExpenseFilters{From: &from, To: &to})
	s.NoError(err)
	s.Equal(int64(2), total)
	s.Len(expenses, 2)
	s.True(expenses[0].Date.After(expenses[1].Date))

	expenses, total, err = s.repo.List(s.ctx, s.user.ID, models.ExpenseFilters{CategoryID: &s.groceries.ID, Limit: 2})
	s.NoError(err)
	s.Equal(int64(3), total)
	s.Len(expenses, 2)
}

func (s *ExpenseRepositorySuite) TestUpdateAndDelete() {
	expense := s.expense("15", s.date(2024, time.April, 2), nil)
	s.Require().NoError(s.repo.Create(s.ctx, &expense))

	expense.Description = "Farmers market"
	expense.CategoryID = &s.groceries.ID
	s.NoError(s.repo.Update(s.ctx, &expense))

	found, err := s.repo.GetByID(s.ctx, s.user.ID, expense.ID)
	s.NoError(err)
	s.Equal("Farmers market", found.Description)

	s.NoError(s.repo.Delete(s.ctx, s.user.ID, expense.ID))
	s.ErrorIs(s.repo.Delete(s.ctx, s.user.ID, expense.ID), ErrExpenseNotFound)
}

func (s *ExpenseRepositorySuite) TestListInRange_JoinsCategoryMetadata() {
	s.Require().NoError(s.repo.CreateBatch(s.ctx, []models.Expense{
		s.expense("12.50", s.date(2024, time.May, 1), &s.groceries.ID),
		s.expense("7.25", s.date(2024, time.May, 31), nil),
		s.expense("99", s.date(2024, time.June, 1), &s.groceries.ID),
	}))

	rows, err := s.repo.ListInRange(s.ctx, s.user.ID, s.date(2024, time.May, 1), s.date(2024, time.May, 31))
	s.NoError(err)
	s.Require().Len(rows, 2)

	s.Equal("Groceries", rows[0].CategoryName)
	s.Equal(s.groceries.ID, rows[0].CategoryKey())
	s.True(rows[0].Amount.Equal(decimal.RequireFromString("12.50")))

	s.Nil(rows[1].CategoryID)
	s.Equal("", rows[1].CategoryName)
	s.Equal(uuid.Nil, rows[1].CategoryKey())
}

func (s *ExpenseRepositorySuite) TestSumByCategoryInRange() {
	s.Require().NoError(s.repo.CreateBatch(s.ctx, []models.Expense{
		s.expense("12.50", s.date(2024, time.May, 1), &s.groceries.ID),
		s.expense("25", s.date(2024, time.May, 15), &s.groceries.ID),
		s.expense("30", s.date(2024, time.May, 16), nil),
	}))

	total, err := s.repo.SumByCategoryInRange(s.ctx, s.user.ID, s.groceries.ID, s.date(2024, time.May, 1), s.date(2024, time.May, 31))
	s.NoError(err)
	s.True(total.Equal(decimal.RequireFromString("37.50")), total.String())

	total, err = s.repo.SumByCategoryInRange(s.ctx, s.user.ID, s.groceries.ID, s.date(2023, time.May, 1), s.date(2023, time.May, 31))
	s.NoError(err)
	s.True(total.IsZero())
}
