package services

import (
	"context"
	"time"

	"finance-tracker/internal/models"
	"finance-tracker/internal/repositories"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

type insightService struct {
	expenses repositories.ExpenseRepositoryInterface
	metrics  MetricsRecorderInterface
}

func NewInsightService(expenses repositories.ExpenseRepositoryInterface, metrics MetricsRecorderInterface) InsightServiceInterface {
	return &insightService{
		expenses: expenses,
		metrics:  metrics,
	}
}

// SpendingInsights reads both windows concurrently and aggregates them.
func (s *insightService) SpendingInsights(ctx context.Context, userID uuid.UUID, now time.Time) (*models.SpendingInsights, error) {
	lastMonthRange, quarterRange := InsightWindowsFor(now)

	var lastMonth, quarter []models.ExpenseRow

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		rows, err := s.expenses.ListInRange(gctx, userID, lastMonthRange.Start, lastMonthRange.End)
		if err != nil {
			return err
		}
		lastMonth = rows
		return nil
	})
	g.Go(func() error {
		rows, err := s.expenses.ListInRange(gctx, userID, quarterRange.Start, quarterRange.End)
		if err != nil {
			return err
		}
		quarter = rows
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	start := time.Now()
	insights := ComputeSpendingInsights(lastMonth, quarter)
	s.metrics.RecordProcessingTime("spending_insights", time.Since(start))

	insights.LastMonth = lastMonthRange
	insights.Quarter = quarterRange

	return &insights, nil
}

// QuarterTotalsByCategory sums the trailing quarter per category.
// Uncategorized spending is left out.
func (s *insightService) QuarterTotalsByCategory(ctx context.Context, userID uuid.UUID, now time.Time) (map[uuid.UUID]decimal.Decimal, error) {
	_, quarterRange := InsightWindowsFor(now)

	rows, err := s.expenses.ListInRange(ctx, userID, quarterRange.Start, quarterRange.End)
	if err != nil {
		return nil, err
	}

	totals := make(map[uuid.UUID]decimal.Decimal)
	for _, row := range rows {
		if row.CategoryID == nil {
			continue
		}
		totals[*row.CategoryID] = totals[*row.CategoryID].Add(row.Amount)
	}

	return totals, nil
}
