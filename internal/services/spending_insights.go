package services

import (
	"sort"
	"time"

	"finance-tracker/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const quarterMonths = 3

var (
	atypicalThreshold    = decimal.NewFromInt(25)
	significantThreshold = decimal.NewFromInt(50)
)

// InsightWindowsFor returns the previous calendar month and the three
// calendar months before now's month.
func InsightWindowsFor(now time.Time) (lastMonth, quarter models.DateRange) {
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	end := monthStart.AddDate(0, 0, -1)

	lastMonth = models.DateRange{Start: monthStart.AddDate(0, -1, 0), End: end}
	quarter = models.DateRange{Start: monthStart.AddDate(0, -quarterMonths, 0), End: end}
	return lastMonth, quarter
}

// ComputeSpendingInsights groups both windows by category and flags the
// categories whose last-month spending rose above the quarterly average.
// Quarter figures are monthly averages.
func ComputeSpendingInsights(lastMonth, quarter []models.ExpenseRow) models.SpendingInsights {
	lastByCat, lastTotal, lastExact := groupByCategory(lastMonth, 1)
	quarterByCat, quarterAvg, quarterExact := groupByCategory(quarter, quarterMonths)

	return models.SpendingInsights{
		LastMonthTotal:   lastTotal,
		QuarterAverage:   quarterAvg,
		LastMonthByCat:   lastByCat,
		QuarterByCat:     quarterByCat,
		AtypicalExpenses: detectAtypical(lastByCat, lastExact, quarterExact),
	}
}

type categoryBucket struct {
	spending models.CategorySpending
	sum      decimal.Decimal
}

// groupByCategory totals rows per category, divides each total by months
// and computes every category's share of the window. Reported totals are
// rounded to cents; the exact per-category amounts are returned alongside.
func groupByCategory(rows []models.ExpenseRow, months int64) ([]models.CategorySpending, decimal.Decimal, map[uuid.UUID]decimal.Decimal) {
	buckets := make(map[uuid.UUID]*categoryBucket)
	order := make([]uuid.UUID, 0)

	for _, row := range rows {
		key := row.CategoryKey()
		bucket, ok := buckets[key]
		if !ok {
			name := row.CategoryName
			if key == uuid.Nil || name == "" {
				name = models.UncategorizedName
			}
			bucket = &categoryBucket{
				spending: models.CategorySpending{
					CategoryID: key,
					Name:       name,
					Icon:       row.CategoryIcon,
					Color:      row.CategoryColor,
				},
				sum: decimal.Zero,
			}
			buckets[key] = bucket
			order = append(order, key)
		}
		bucket.sum = bucket.sum.Add(row.Amount)
		bucket.spending.TransactionCount++
	}

	divisor := decimal.NewFromInt(months)
	windowTotal := decimal.Zero
	exact := make(map[uuid.UUID]decimal.Decimal, len(order))
	result := make([]models.CategorySpending, 0, len(order))
	for _, key := range order {
		bucket := buckets[key]
		exact[key] = bucket.sum.Div(divisor)
		bucket.spending.Total = exact[key].Round(moneyDecimals)
		windowTotal = windowTotal.Add(bucket.spending.Total)
		result = append(result, bucket.spending)
	}

	for i := range result {
		result[i].Percentage = decimal.Zero
		if windowTotal.IsPositive() {
			result[i].Percentage = result[i].Total.Div(windowTotal).Mul(hundred).Round(moneyDecimals)
		}
	}

	sort.SliceStable(result, func(i, j int) bool {
		if !result[i].Total.Equal(result[j].Total) {
			return result[i].Total.GreaterThan(result[j].Total)
		}
		return result[i].Name < result[j].Name
	})

	return result, windowTotal, exact
}

// detectAtypical compares exact amounts against the thresholds and rounds
// only what it reports.
func detectAtypical(lastMonth []models.CategorySpending, lastExact, quarterExact map[uuid.UUID]decimal.Decimal) []models.AtypicalExpense {
	atypical := make([]models.AtypicalExpense, 0)
	for _, cat := range lastMonth {
		avg, ok := quarterExact[cat.CategoryID]
		if !ok || !avg.IsPositive() {
			continue
		}

		increase := lastExact[cat.CategoryID].Sub(avg).Div(avg).Mul(hundred)
		if !increase.GreaterThan(atypicalThreshold) {
			continue
		}

		atypical = append(atypical, models.AtypicalExpense{
			CategoryID:         cat.CategoryID,
			Name:               cat.Name,
			Icon:               cat.Icon,
			Color:              cat.Color,
			LastMonthTotal:     cat.Total,
			QuarterAverage:     avg.Round(moneyDecimals),
			PercentageIncrease: increase.Round(moneyDecimals),
			IsSignificant:      increase.GreaterThan(significantThreshold),
		})
	}

	sort.SliceStable(atypical, func(i, j int) bool {
		if !atypical[i].PercentageIncrease.Equal(atypical[j].PercentageIncrease) {
			return atypical[i].PercentageIncrease.GreaterThan(atypical[j].PercentageIncrease)
		}
		return atypical[i].Name < atypical[j].Name
	})

	return atypical
}
