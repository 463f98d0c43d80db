package repositories

import (
	"context"
	"testing"
	"time"

	"finance-tracker/internal/database"
	"finance-tracker/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

func TestIncomeRepository(t *testing.T) {
	suite.Run(t, new(IncomeRepositorySuite))
}

type IncomeRepositorySuite struct {
	suite.Suite
	db   *database.DB
	repo IncomeRepositoryInterface
	ctx  context.Context
	user *models.User
}

func (s *IncomeRepositorySuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.repo = NewIncomeRepository(s.db.DB)
	s.ctx = context.Background()
	s.user = database.CreateTestUser(s.T(), s.db, "income@example.com")
}

func (s *IncomeRepositorySuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

func (s *IncomeRepositorySuite) TestSumInRange() {
	s.Require().NoError(s.repo.CreateBatch(s.ctx, []models.Income{
		{UserID: s.user.ID, Amount: decimal.NewFromInt(2500), Date: time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)},
		{UserID: s.user.ID, Amount: decimal.NewFromInt(150), Date: time.Date(2024, time.June, 20, 0, 0, 0, 0, time.UTC)},
		{UserID: s.user.ID, Amount: decimal.NewFromInt(2500), Date: time.Date(2024, time.May, 31, 0, 0, 0, 0, time.UTC)},
	}))

	june := models.MonthRange(time.Date(2024, time.June, 10, 0, 0, 0, 0, time.UTC))
	total, err := s.repo.SumInRange(s.ctx, s.user.ID, june.Start, june.End)
	s.NoError(err)
	s.True(total.Equal(decimal.NewFromInt(2650)), total.String())

	july := models.MonthRange(time.Date(2024, time.July, 10, 0, 0, 0, 0, time.UTC))
	total, err = s.repo.SumInRange(s.ctx, s.user.ID, july.Start, july.End)
	s.NoError(err)
	s.True(total.IsZero())
}

func (s *IncomeRepositorySuite) TestCRUD() {
	income := &models.Income{UserID: s.user.ID, Amount: decimal.NewFromInt(100), Date: time.Now(), Description: "Refund"}
	s.Require().NoError(s.repo.Create(s.ctx, income))

	incomes, total, err := s.repo.List(s.ctx, s.user.ID, nil, nil, 0, 0)
	s.NoError(err)
	s.Equal(int64(1), total)
	s.Len(incomes, 1)

	income.Description = "Tax refund"
	s.NoError(s.repo.Update(s.ctx, income))

	found, err := s.repo.GetByID(s.ctx, s.user.ID, income.ID)
	s.NoError(err)
	s.Equal("Tax refund", found.Description)

	s.NoError(s.repo.Delete(s.ctx, s.user.ID, income.ID))
	_, err = s.repo.GetByID(s.ctx, s.user.ID, income.ID)
	s.ErrorIs(err, ErrIncomeNotFound)
}
