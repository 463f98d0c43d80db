package models

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CategorySpending aggregates one category's spending within a window.
type CategorySpending struct {
	CategoryID       uuid.UUID       `json:"category_id"`
	Name             string          `json:"name"`
	Icon             string          `json:"icon,omitempty"`
	Color            string          `json:"color,omitempty"`
	Total            decimal.Decimal `json:"total"`
	Percentage       decimal.Decimal `json:"percentage"`
	TransactionCount int             `json:"transaction_count"`
}

// AtypicalExpense flags a category whose last-month spending rose above its
// quarterly monthly average.
type AtypicalExpense struct {
	CategoryID         uuid.UUID       `json:"category_id"`
	Name               string          `json:"name"`
	Icon               string          `json:"icon,omitempty"`
	Color              string          `json:"color,omitempty"`
	LastMonthTotal     decimal.Decimal `json:"last_month_total"`
	QuarterAverage     decimal.Decimal `json:"quarter_average"`
	PercentageIncrease decimal.Decimal `json:"percentage_increase"`
	IsSignificant      bool            `json:"is_significant"`
}

// SpendingInsights compares last month with the trailing quarter.
type SpendingInsights struct {
	LastMonth        DateRange          `json:"last_month"`
	Quarter          DateRange          `json:"quarter"`
	LastMonthTotal   decimal.Decimal    `json:"last_month_total"`
	QuarterAverage   decimal.Decimal    `json:"quarter_average"`
	LastMonthByCat   []CategorySpending `json:"last_month_by_category"`
	QuarterByCat     []CategorySpending `json:"quarter_average_by_category"`
	AtypicalExpenses []AtypicalExpense  `json:"atypical_expenses"`
}
