package services

import (
	"testing"
	"time"

	"finance-tracker/internal/models"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type ProgressCalculatorTestSuite struct {
	suite.Suite
	now time.Time
}

func TestProgressCalculatorSuite(t *testing.T) {
	suite.Run(t, new(ProgressCalculatorTestSuite))
}

func (s *ProgressCalculatorTestSuite) SetupTest() {
	s.now = time.Date(2025, time.March, 1, 12, 0, 0, 0, time.UTC)
}

func (s *ProgressCalculatorTestSuite) goal(target int64, targetDate time.Time, createdDaysAgo int) models.Goal {
	return models.Goal{
		ID:           uuid.New(),
		UserID:       uuid.New(),
		Name:         "Emergency fund",
		TargetAmount: decimal.NewFromInt(target),
		TargetDate:   targetDate,
		CreatedAt:    s.now.AddDate(0, 0, -createdDaysAgo),
	}
}

func entries(amounts ...int64) []models.GoalEntry {
	result := make([]models.GoalEntry, 0, len(amounts))
	for _, amount := range amounts {
		result = append(result, models.GoalEntry{
			ID:     uuid.New(),
			Amount: decimal.NewFromInt(amount),
		})
	}
	return result
}

func (s *ProgressCalculatorTestSuite) TestPacingForGoalInProgress() {
	goal := s.goal(1000, s.now.AddDate(0, 0, 30), 10)

	progress := ComputeGoalProgress(goal, entries(250, 150), s.now)

	s.True(progress.CurrentAmount.Equal(decimal.NewFromInt(400)))
	s.True(progress.Percentage.Equal(decimal.NewFromInt(40)))
	s.True(progress.RemainingAmount.Equal(decimal.NewFromInt(600)))
	s.Require().NotNil(progress.DaysRemaining)
	s.Equal(30, *progress.DaysRemaining)
	s.Require().NotNil(progress.DailyTarget)
	s.Require().NotNil(progress.MonthlyTarget)
	s.True(progress.DailyTarget.Equal(decimal.NewFromInt(20)))
	s.True(progress.MonthlyTarget.Equal(decimal.NewFromInt(600)))
	s.Equal(models.GoalStatusInProgress, progress.Status)
	s.True(progress.OnTrack, "40 per day since creation beats the 20 per day needed")
}

func (s *ProgressCalculatorTestSuite) TestNotOnTrackWhenHistoricalRateTooLow() {
	goal := s.goal(1000, s.now.AddDate(0, 0, 30), 40)

	progress := ComputeGoalProgress(goal, entries(400), s.now)

	s.Equal(models.GoalStatusInProgress, progress.Status)
	s.False(progress.OnTrack)
}

func (s *ProgressCalculatorTestSuite) TestWithdrawalBelowZeroClampsPercentage() {
	goal := s.goal(1000, s.now.AddDate(0, 2, 0), 5)

	progress := ComputeGoalProgress(goal, entries(500, -600), s.now)

	s.True(progress.CurrentAmount.Equal(decimal.NewFromInt(-100)))
	s.True(progress.Percentage.IsZero())
	s.True(progress.RemainingAmount.Equal(decimal.NewFromInt(1000)))
	s.Equal(models.GoalStatusNotStarted, progress.Status)
	s.False(progress.OnTrack)
}

func (s *ProgressCalculatorTestSuite) TestOverfundedGoalIsAchieved() {
	goal := s.goal(1000, s.now.AddDate(0, 0, -3), 90)

	progress := ComputeGoalProgress(goal, entries(1000, 500), s.now)

	s.True(progress.Percentage.Equal(decimal.NewFromInt(100)))
	s.True(progress.RemainingAmount.IsZero())
	s.Nil(progress.DaysRemaining)
	s.Nil(progress.DailyTarget)
	s.Nil(progress.MonthlyTarget)
	s.Equal(models.GoalStatusAchieved, progress.Status)
	s.True(progress.OnTrack)
}

func (s *ProgressCalculatorTestSuite) TestAchievedBeforeTargetDateHasNoPacing() {
	goal := s.goal(500, s.now.AddDate(0, 1, 0), 10)

	progress := ComputeGoalProgress(goal, entries(500), s.now)

	s.Equal(models.GoalStatusAchieved, progress.Status)
	s.NotNil(progress.DaysRemaining)
	s.Nil(progress.DailyTarget)
	s.Nil(progress.MonthlyTarget)
}

func (s *ProgressCalculatorTestSuite) TestPastTargetDateIsOverdue() {
	goal := s.goal(1000, s.now.AddDate(0, 0, -1), 60)

	progress := ComputeGoalProgress(goal, entries(300), s.now)

	s.Equal(models.GoalStatusOverdue, progress.Status)
	s.Nil(progress.DaysRemaining)
	s.Nil(progress.DailyTarget)
	s.Nil(progress.MonthlyTarget)
	s.False(progress.OnTrack)
}

func (s *ProgressCalculatorTestSuite) TestPastTargetDateWithoutEntriesIsOverdue() {
	goal := s.goal(1000, s.now.AddDate(0, 0, -1), 60)

	progress := ComputeGoalProgress(goal, nil, s.now)

	s.Equal(models.GoalStatusOverdue, progress.Status)
	s.True(progress.Percentage.IsZero())
}

func (s *ProgressCalculatorTestSuite) TestTargetDateEqualToNowIsOverdue() {
	goal := s.goal(1000, s.now, 10)

	progress := ComputeGoalProgress(goal, entries(10), s.now)

	s.Nil(progress.DaysRemaining)
	s.Equal(models.GoalStatusOverdue, progress.Status)
}

func (s *ProgressCalculatorTestSuite) TestNewGoalIsNotStarted() {
	goal := s.goal(1000, s.now.AddDate(0, 6, 0), 0)

	progress := ComputeGoalProgress(goal, nil, s.now)

	s.Equal(models.GoalStatusNotStarted, progress.Status)
	s.True(progress.CurrentAmount.IsZero())
	s.True(progress.RemainingAmount.Equal(decimal.NewFromInt(1000)))
	s.NotNil(progress.DailyTarget)
	s.False(progress.OnTrack)
}

func (s *ProgressCalculatorTestSuite) TestAlmostFundedGoalIsStillInProgress() {
	goal := s.goal(100000, s.now.AddDate(0, 0, 30), 10)
	ledger := []models.GoalEntry{{ID: uuid.New(), Amount: decimal.RequireFromString("99999.99")}}

	progress := ComputeGoalProgress(goal, ledger, s.now)

	s.Equal(models.GoalStatusInProgress, progress.Status)
	s.Equal("99.99", progress.Percentage.StringFixed(2))
	s.True(progress.RemainingAmount.Equal(decimal.RequireFromString("0.01")))
	s.Require().NotNil(progress.DailyTarget)
	s.True(progress.OnTrack)
}

func (s *ProgressCalculatorTestSuite) TestTinyContributionStartsGoal() {
	goal := s.goal(1000000, s.now.AddDate(0, 0, 30), 10)

	progress := ComputeGoalProgress(goal, entries(10), s.now)

	s.Equal(models.GoalStatusInProgress, progress.Status)
	s.True(progress.Percentage.IsZero(), "a thousandth of a percent is reported as zero")
	s.False(progress.OnTrack)
}

func (s *ProgressCalculatorTestSuite) TestTinyContributionPastDeadlineIsOverdue() {
	goal := s.goal(1000000, s.now.AddDate(0, 0, -1), 10)

	progress := ComputeGoalProgress(goal, entries(10), s.now)

	s.Equal(models.GoalStatusOverdue, progress.Status)
}

func (s *ProgressCalculatorTestSuite) TestZeroTargetYieldsZeroPercentage() {
	goal := s.goal(0, s.now.AddDate(0, 1, 0), 1)

	progress := ComputeGoalProgress(goal, entries(100), s.now)

	s.True(progress.Percentage.IsZero())
	s.True(progress.RemainingAmount.IsZero())
}

func (s *ProgressCalculatorTestSuite) TestPartialDayRoundsUp() {
	goal := s.goal(100, s.now.Add(25*time.Hour), 1)

	progress := ComputeGoalProgress(goal, nil, s.now)

	s.Require().NotNil(progress.DaysRemaining)
	s.Equal(2, *progress.DaysRemaining)
	s.True(progress.DailyTarget.Equal(decimal.NewFromInt(50)))
}

func (s *ProgressCalculatorTestSuite) TestPercentageAlwaysWithinBounds() {
	for i := 0; i < 50; i++ {
		goal := s.goal(int64(gofakeit.IntRange(1, 5000)), s.now.AddDate(0, 0, gofakeit.IntRange(-30, 30)), gofakeit.IntRange(0, 90))

		amounts := make([]int64, gofakeit.IntRange(0, 6))
		for j := range amounts {
			amounts[j] = int64(gofakeit.IntRange(-2000, 4000))
			if amounts[j] == 0 {
				amounts[j] = 1
			}
		}

		progress := ComputeGoalProgress(goal, entries(amounts...), s.now)

		s.False(progress.Percentage.IsNegative())
		s.False(progress.Percentage.GreaterThan(decimal.NewFromInt(100)))
		s.False(progress.RemainingAmount.IsNegative())
		if progress.DaysRemaining == nil {
			s.Nil(progress.DailyTarget)
			s.Nil(progress.MonthlyTarget)
		}
	}
}

func (s *ProgressCalculatorTestSuite) TestDeterministicForFixedNow() {
	goal := s.goal(750, s.now.AddDate(0, 0, 45), 20)
	ledger := entries(100, 200, -50)

	first := ComputeGoalProgress(goal, ledger, s.now)
	second := ComputeGoalProgress(goal, ledger, s.now)

	s.Equal(first.Status, second.Status)
	s.True(first.Percentage.Equal(second.Percentage))
	s.True(first.DailyTarget.Equal(*second.DailyTarget))
	s.Equal(first.OnTrack, second.OnTrack)
}
