package services

import (
	"testing"
	"time"

	"finance-tracker/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type SpendingInsightsTestSuite struct {
	suite.Suite
	groceries uuid.UUID
	dining    uuid.UUID
	travel    uuid.UUID
}

func TestSpendingInsightsSuite(t *testing.T) {
	suite.Run(t, new(SpendingInsightsTestSuite))
}

func (s *SpendingInsightsTestSuite) SetupTest() {
	s.groceries = uuid.New()
	s.dining = uuid.New()
	s.travel = uuid.New()
}

func row(categoryID *uuid.UUID, name string, amount string) models.ExpenseRow {
	return models.ExpenseRow{
		ID:           uuid.New(),
		CategoryID:   categoryID,
		CategoryName: name,
		Amount:       decimal.RequireFromString(amount),
		Date:         time.Date(2025, time.February, 10, 0, 0, 0, 0, time.UTC),
	}
}

func dec(value string) decimal.Decimal {
	return decimal.RequireFromString(value)
}

func (s *SpendingInsightsTestSuite) TestInsightWindowsFor() {
	now := time.Date(2025, time.March, 15, 9, 30, 0, 0, time.UTC)

	lastMonth, quarter := InsightWindowsFor(now)

	s.Equal(time.Date(2025, time.February, 1, 0, 0, 0, 0, time.UTC), lastMonth.Start)
	s.Equal(time.Date(2025, time.February, 28, 0, 0, 0, 0, time.UTC), lastMonth.End)
	s.Equal(time.Date(2024, time.December, 1, 0, 0, 0, 0, time.UTC), quarter.Start)
	s.Equal(time.Date(2025, time.February, 28, 0, 0, 0, 0, time.UTC), quarter.End)
}

func (s *SpendingInsightsTestSuite) TestInsightWindowsFor_YearBoundary() {
	now := time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)

	lastMonth, quarter := InsightWindowsFor(now)

	s.Equal(time.Date(2024, time.December, 1, 0, 0, 0, 0, time.UTC), lastMonth.Start)
	s.Equal(time.Date(2024, time.December, 31, 0, 0, 0, 0, time.UTC), lastMonth.End)
	s.Equal(time.Date(2024, time.October, 1, 0, 0, 0, 0, time.UTC), quarter.Start)
}

func (s *SpendingInsightsTestSuite) TestGroupsAndSortsByTotal() {
	lastMonth := []models.ExpenseRow{
		row(&s.groceries, "Groceries", "120.00"),
		row(&s.groceries, "Groceries", "80.00"),
		row(&s.dining, "Dining Out", "300.00"),
	}

	insights := ComputeSpendingInsights(lastMonth, nil)

	s.True(insights.LastMonthTotal.Equal(dec("500")))
	s.Require().Len(insights.LastMonthByCat, 2)

	first := insights.LastMonthByCat[0]
	s.Equal(s.dining, first.CategoryID)
	s.True(first.Total.Equal(dec("300")))
	s.True(first.Percentage.Equal(dec("60")))
	s.Equal(1, first.TransactionCount)

	second := insights.LastMonthByCat[1]
	s.Equal(s.groceries, second.CategoryID)
	s.True(second.Total.Equal(dec("200")))
	s.True(second.Percentage.Equal(dec("40")))
	s.Equal(2, second.TransactionCount)

	s.Empty(insights.QuarterByCat)
	s.True(insights.QuarterAverage.IsZero())
	s.Empty(insights.AtypicalExpenses)
}

func (s *SpendingInsightsTestSuite) TestUncategorizedBucket() {
	lastMonth := []models.ExpenseRow{
		row(nil, "", "10.00"),
		row(nil, "", "15.00"),
	}

	insights := ComputeSpendingInsights(lastMonth, nil)

	s.Require().Len(insights.LastMonthByCat, 1)
	s.Equal(uuid.Nil, insights.LastMonthByCat[0].CategoryID)
	s.Equal(models.UncategorizedName, insights.LastMonthByCat[0].Name)
	s.True(insights.LastMonthByCat[0].Total.Equal(dec("25")))
}

func (s *SpendingInsightsTestSuite) TestQuarterFiguresAreMonthlyAverages() {
	quarter := []models.ExpenseRow{
		row(&s.groceries, "Groceries", "300.00"),
		row(&s.groceries, "Groceries", "300.00"),
		row(&s.dining, "Dining Out", "100.00"),
	}

	insights := ComputeSpendingInsights(nil, quarter)

	s.Require().Len(insights.QuarterByCat, 2)
	s.True(insights.QuarterByCat[0].Total.Equal(dec("200")))
	s.Equal(2, insights.QuarterByCat[0].TransactionCount)
	s.True(insights.QuarterByCat[1].Total.Equal(dec("33.33")))
	s.True(insights.QuarterAverage.Equal(dec("233.33")))
}

func (s *SpendingInsightsTestSuite) TestTiesSortByName() {
	lastMonth := []models.ExpenseRow{
		row(&s.travel, "Travel", "50.00"),
		row(&s.dining, "Dining Out", "50.00"),
	}

	insights := ComputeSpendingInsights(lastMonth, nil)

	s.Equal("Dining Out", insights.LastMonthByCat[0].Name)
	s.Equal("Travel", insights.LastMonthByCat[1].Name)
}

func (s *SpendingInsightsTestSuite) TestAtypicalDetection() {
	// monthly averages: groceries 100, dining 100, travel 100
	quarter := []models.ExpenseRow{
		row(&s.groceries, "Groceries", "300.00"),
		row(&s.dining, "Dining Out", "300.00"),
		row(&s.travel, "Travel", "300.00"),
	}
	lastMonth := []models.ExpenseRow{
		row(&s.groceries, "Groceries", "110.00"),
		row(&s.dining, "Dining Out", "140.00"),
		row(&s.travel, "Travel", "180.00"),
	}

	insights := ComputeSpendingInsights(lastMonth, quarter)

	s.Require().Len(insights.AtypicalExpenses, 2)

	s.Equal(s.travel, insights.AtypicalExpenses[0].CategoryID)
	s.True(insights.AtypicalExpenses[0].PercentageIncrease.Equal(dec("80")))
	s.True(insights.AtypicalExpenses[0].IsSignificant)
	s.True(insights.AtypicalExpenses[0].QuarterAverage.Equal(dec("100")))
	s.True(insights.AtypicalExpenses[0].LastMonthTotal.Equal(dec("180")))

	s.Equal(s.dining, insights.AtypicalExpenses[1].CategoryID)
	s.True(insights.AtypicalExpenses[1].PercentageIncrease.Equal(dec("40")))
	s.False(insights.AtypicalExpenses[1].IsSignificant)
}

func (s *SpendingInsightsTestSuite) TestAtypicalThresholdsAreStrict() {
	quarter := []models.ExpenseRow{
		row(&s.groceries, "Groceries", "300.00"),
		row(&s.dining, "Dining Out", "300.00"),
	}
	lastMonth := []models.ExpenseRow{
		row(&s.groceries, "Groceries", "125.00"),
		row(&s.dining, "Dining Out", "150.00"),
	}

	insights := ComputeSpendingInsights(lastMonth, quarter)

	s.Require().Len(insights.AtypicalExpenses, 1, "an increase of exactly 25 is not atypical")
	s.Equal(s.dining, insights.AtypicalExpenses[0].CategoryID)
	s.True(insights.AtypicalExpenses[0].PercentageIncrease.Equal(dec("50")))
	s.False(insights.AtypicalExpenses[0].IsSignificant, "an increase of exactly 50 is not significant")
}

func (s *SpendingInsightsTestSuite) TestNoQuarterHistoryIsNeverAtypical() {
	lastMonth := []models.ExpenseRow{
		row(&s.travel, "Travel", "900.00"),
	}
	quarter := []models.ExpenseRow{
		row(&s.groceries, "Groceries", "30.00"),
	}

	insights := ComputeSpendingInsights(lastMonth, quarter)

	s.Empty(insights.AtypicalExpenses)
}

func (s *SpendingInsightsTestSuite) TestDecreaseIsNotAtypical() {
	quarter := []models.ExpenseRow{row(&s.groceries, "Groceries", "600.00")}
	lastMonth := []models.ExpenseRow{row(&s.groceries, "Groceries", "50.00")}

	insights := ComputeSpendingInsights(lastMonth, quarter)

	s.Empty(insights.AtypicalExpenses)
	s.NotNil(insights.AtypicalExpenses)
}

func (s *SpendingInsightsTestSuite) TestThresholdsCompareExactIncrease() {
	quarter := []models.ExpenseRow{
		row(&s.groceries, "Groceries", "3000.00"),
		row(&s.dining, "Dining Out", "3000.00"),
	}
	lastMonth := []models.ExpenseRow{
		row(&s.groceries, "Groceries", "1250.04"),
		row(&s.dining, "Dining Out", "1500.04"),
	}

	insights := ComputeSpendingInsights(lastMonth, quarter)

	s.Require().Len(insights.AtypicalExpenses, 2)

	dining := insights.AtypicalExpenses[0]
	s.Equal(s.dining, dining.CategoryID)
	s.Equal("50.00", dining.PercentageIncrease.StringFixed(2))
	s.True(dining.IsSignificant, "+50.004 is above 50")

	groceries := insights.AtypicalExpenses[1]
	s.Equal(s.groceries, groceries.CategoryID)
	s.Equal("25.00", groceries.PercentageIncrease.StringFixed(2))
	s.False(groceries.IsSignificant)
	s.True(groceries.QuarterAverage.Equal(dec("1000")))
}

func (s *SpendingInsightsTestSuite) TestCentQuarterHistoryStillCounts() {
	quarter := []models.ExpenseRow{row(&s.travel, "Travel", "0.01")}
	lastMonth := []models.ExpenseRow{row(&s.travel, "Travel", "1.00")}

	insights := ComputeSpendingInsights(lastMonth, quarter)

	s.Require().Len(insights.AtypicalExpenses, 1)
	s.True(insights.AtypicalExpenses[0].IsSignificant)
	s.True(insights.AtypicalExpenses[0].QuarterAverage.IsZero(), "the reported average rounds to cents")
}
