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

func TestBudgetRepository(t *testing.T) {
	suite.Run(t, new(BudgetRepositorySuite))
}

type BudgetRepositorySuite struct {
	suite.Suite
	db        *database.DB
	repo      BudgetRepositoryInterface
	ctx       context.Context
	user      *models.User
	housing   *models.Category
	groceries *models.Category
}

func (s *BudgetRepositorySuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.repo = NewBudgetRepository(s.db.DB)
	s.ctx = context.Background()
	s.user = database.CreateTestUser(s.T(), s.db, "budgets@example.com")
	s.housing = database.CreateTestCategory(s.T(), s.db, s.user, "Housing")
	s.groceries = database.CreateTestCategory(s.T(), s.db, s.user, "Groceries")
}

func (s *BudgetRepositorySuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

func (s *BudgetRepositorySuite) budget(category *models.Category, start, end time.Time) models.Budget {
	return models.Budget{
		UserID:      s.user.ID,
		CategoryID:  category.ID,
		Amount:      decimal.NewFromInt(400),
		PeriodStart: start,
		PeriodEnd:   end,
	}
}

func (s *BudgetRepositorySuite) TestCreate_RejectsInvertedPeriod() {
	budget := s.budget(s.housing, day(2024, time.March, 31), day(2024, time.March, 1))
	s.Error(s.repo.Create(s.ctx, &budget))
}

func (s *BudgetRepositorySuite) TestListOverlapping_InclusiveBoundaries() {
	s.Require().NoError(s.repo.CreateBatch(s.ctx, []models.Budget{
		s.budget(s.housing, day(2024, time.February, 1), day(2024, time.February, 29)),
		s.budget(s.housing, day(2024, time.March, 31), day(2024, time.April, 30)),
		s.budget(s.groceries, day(2024, time.March, 10), day(2024, time.March, 20)),
		s.budget(s.groceries, day(2024, time.April, 1), day(2024, time.April, 30)),
	}))

	march := models.MonthRange(day(2024, time.March, 15))

	overlapping, err := s.repo.ListOverlapping(s.ctx, s.user.ID, []uuid.UUID{s.housing.ID, s.groceries.ID}, march)
	s.NoError(err)
	s.Len(overlapping, 2)

	overlapping, err = s.repo.ListOverlapping(s.ctx, s.user.ID, []uuid.UUID{s.housing.ID}, march)
	s.NoError(err)
	s.Require().Len(overlapping, 1)
	s.True(overlapping[0].PeriodStart.Equal(day(2024, time.March, 31)))

	overlapping, err = s.repo.ListOverlapping(s.ctx, s.user.ID, nil, march)
	s.NoError(err)
	s.Empty(overlapping)
}

func (s *BudgetRepositorySuite) TestListByUser_ActiveOn() {
	s.Require().NoError(s.repo.CreateBatch(s.ctx, []models.Budget{
		s.budget(s.housing, day(2024, time.January, 1), day(2024, time.January, 31)),
		s.budget(s.groceries, day(2024, time.February, 1), day(2024, time.February, 29)),
	}))

	all, err := s.repo.ListByUser(s.ctx, s.user.ID, nil)
	s.NoError(err)
	s.Len(all, 2)

	activeOn := day(2024, time.January, 31)
	active, err := s.repo.ListByUser(s.ctx, s.user.ID, &activeOn)
	s.NoError(err)
	s.Require().Len(active, 1)
	s.Equal(s.housing.ID, active[0].CategoryID)
	s.Require().NotNil(active[0].Category)
	s.Equal("Housing", active[0].Category.Name)
}

func (s *BudgetRepositorySuite) TestApplyWizard_ReplacesAtomically() {
	existing := s.budget(s.housing, day(2024, time.March, 1), day(2024, time.March, 31))
	s.Require().NoError(s.repo.Create(s.ctx, &existing))

	replacement := s.budget(s.housing, day(2024, time.March, 1), day(2024, time.March, 31))
	replacement.Source = models.BudgetSourceWizard
	replacement.Amount = decimal.NewFromInt(900)

	s.NoError(s.repo.ApplyWizard(s.ctx, s.user.ID, []uuid.UUID{existing.ID}, []models.Budget{replacement}))

	budgets, err := s.repo.ListByUser(s.ctx, s.user.ID, nil)
	s.NoError(err)
	s.Require().Len(budgets, 1)
	s.Equal(models.BudgetSourceWizard, budgets[0].Source)
	s.True(budgets[0].Amount.Equal(decimal.NewFromInt(900)))
}

func (s *BudgetRepositorySuite) TestApplyWizard_RollsBackOnUnknownBudget() {
	existing := s.budget(s.housing, day(2024, time.March, 1), day(2024, time.March, 31))
	s.Require().NoError(s.repo.Create(s.ctx, &existing))

	err := s.repo.ApplyWizard(s.ctx, s.user.ID,
		[]uuid.UUID{existing.ID, uuid.New()},
		[]models.Budget{s.budget(s.groceries, day(2024, time.March, 1), day(2024, time.March, 31))})
	s.ErrorIs(err, ErrBudgetNotFound)

	budgets, err := s.repo.ListByUser(s.ctx, s.user.ID, nil)
	s.NoError(err)
	s.Require().Len(budgets, 1)
	s.Equal(existing.ID, budgets[0].ID)
}

func (s *BudgetRepositorySuite) TestUpdateAndDelete() {
	budget := s.budget(s.groceries, day(2024, time.May, 1), day(2024, time.May, 31))
	s.Require().NoError(s.repo.Create(s.ctx, &budget))

	budget.Amount = decimal.NewFromInt(250)
	s.NoError(s.repo.Update(s.ctx, &budget))

	found, err := s.repo.GetByID(s.ctx, s.user.ID, budget.ID)
	s.NoError(err)
	s.True(found.Amount.Equal(decimal.NewFromInt(250)))

	s.NoError(s.repo.Delete(s.ctx, s.user.ID, budget.ID))
	_, err = s.repo.GetByID(s.ctx, s.user.ID, budget.ID)
	s.ErrorIs(err, ErrBudgetNotFound)
}
