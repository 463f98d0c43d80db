package dto

import "finance-tracker/internal/models"

// SeedSummary reports what the seed command generated
type SeedSummary struct {
	Categories  int              `json:"categories"`
	Expenses    int              `json:"expenses"`
	Incomes     int              `json:"incomes"`
	Goals       int              `json:"goals"`
	GoalEntries int              `json:"goal_entries"`
	Period      models.DateRange `json:"period"`
}
