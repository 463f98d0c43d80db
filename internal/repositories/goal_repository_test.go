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

func TestGoalRepository(t *testing.T) {
	suite.Run(t, new(GoalRepositorySuite))
}

type GoalRepositorySuite struct {
	suite.Suite
	db   *database.DB
	repo GoalRepositoryInterface
	ctx  context.Context
	user *models.User
}

func (s *GoalRepositorySuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.repo = NewGoalRepository(s.db.DB)
	s.ctx = context.Background()
	s.user = database.CreateTestUser(s.T(), s.db, "goals@example.com")
}

func (s *GoalRepositorySuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

func (s *GoalRepositorySuite) newGoal(name string, target time.Time) *models.Goal {
	goal := &models.Goal{
		UserID:       s.user.ID,
		Name:         name,
		TargetAmount: decimal.NewFromInt(1000),
		TargetDate:   target,
	}
	s.Require().NoError(s.repo.Create(s.ctx, goal))
	return goal
}

func (s *GoalRepositorySuite) TestListByUser_OrderedByTargetDate() {
	s.newGoal("Vacation", time.Now().AddDate(1, 0, 0))
	s.newGoal("Laptop", time.Now().AddDate(0, 3, 0))

	goals, err := s.repo.ListByUser(s.ctx, s.user.ID)
	s.NoError(err)
	s.Require().Len(goals, 2)
	s.Equal("Laptop", goals[0].Name)
}

func (s *GoalRepositorySuite) TestEntries() {
	goal := s.newGoal("Emergency fund", time.Now().AddDate(0, 6, 0))

	deposit := &models.GoalEntry{GoalID: goal.ID, Amount: decimal.NewFromInt(300), Date: time.Now().AddDate(0, 0, -2)}
	withdrawal := &models.GoalEntry{GoalID: goal.ID, Amount: decimal.NewFromInt(-50), Date: time.Now()}
	s.Require().NoError(s.repo.CreateEntry(s.ctx, deposit))
	s.Require().NoError(s.repo.CreateEntry(s.ctx, withdrawal))

	entries, err := s.repo.ListEntries(s.ctx, goal.ID)
	s.NoError(err)
	s.Require().Len(entries, 2)
	s.Equal(deposit.ID, entries[0].ID)
	s.True(entries[1].IsWithdrawal())

	found, err := s.repo.GetEntry(s.ctx, goal.ID, withdrawal.ID)
	s.NoError(err)
	s.True(found.Amount.Equal(decimal.NewFromInt(-50)))

	_, err = s.repo.GetEntry(s.ctx, uuid.New(), withdrawal.ID)
	s.ErrorIs(err, ErrGoalEntryNotFound)

	s.NoError(s.repo.DeleteEntry(s.ctx, goal.ID, withdrawal.ID))
	s.ErrorIs(s.repo.DeleteEntry(s.ctx, goal.ID, withdrawal.ID), ErrGoalEntryNotFound)
}

func (s *GoalRepositorySuite) TestCreateEntry_RejectsZeroAmount() {
	goal := s.newGoal("Bike", time.Now().AddDate(0, 2, 0))

	err := s.repo.CreateEntry(s.ctx, &models.GoalEntry{GoalID: goal.ID, Amount: decimal.Zero, Date: time.Now()})
	s.Error(err)
}

func (s *GoalRepositorySuite) TestUpdate() {
	goal := s.newGoal("Car", time.Now().AddDate(2, 0, 0))

	goal.TargetAmount = decimal.NewFromInt(15000)
	s.NoError(s.repo.Update(s.ctx, goal))

	found, err := s.repo.GetByID(s.ctx, s.user.ID, goal.ID)
	s.NoError(err)
	s.True(found.TargetAmount.Equal(decimal.NewFromInt(15000)))
}

func (s *GoalRepositorySuite) TestDelete_RemovesEntries() {
	goal := s.newGoal("Wedding", time.Now().AddDate(1, 0, 0))
	s.Require().NoError(s.repo.CreateEntry(s.ctx, &models.GoalEntry{GoalID: goal.ID, Amount: decimal.NewFromInt(10), Date: time.Now()}))

	s.NoError(s.repo.Delete(s.ctx, s.user.ID, goal.ID))

	_, err := s.repo.GetByID(s.ctx, s.user.ID, goal.ID)
	s.ErrorIs(err, ErrGoalNotFound)

	entries, err := s.repo.ListEntries(s.ctx, goal.ID)
	s.NoError(err)
	s.Empty(entries)

	s.ErrorIs(s.repo.Delete(s.ctx, s.user.ID, goal.ID), ErrGoalNotFound)
}
