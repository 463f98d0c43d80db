package services

import (
	"time"

	"finance-tracker/internal/models"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type expenseGenerator struct {
	merchantPool []models.MerchantInfo
	byCategory   map[string][]models.MerchantInfo
	faker        *gofakeit.Faker
}

const (
	hoursInDay       = 24
	salaryDay        = 27
	billDay          = 3
	maxDailyPurchase = 3
)

// recurringCategories are billed once a month instead of drawn daily.
var recurringCategories = map[string]bool{
	CategoryHousing:       true,
	CategoryUtilities:     true,
	CategoryInsurance:     true,
	CategorySubscriptions: true,
}

var goalTemplates = []struct {
	name   string
	target int64
	months int
}{
	{"Emergency Fund", 6000, 18},
	{"Summer Holiday", 2500, 8},
	{"New Laptop", 1800, 6},
	{"Car Down Payment", 8000, 30},
}

// NewExpenseGenerator creates a generator. A zero seed draws from a random source.
func NewExpenseGenerator(seed uint64) ExpenseGeneratorInterface {
	pool := defaultMerchantPool()

	byCategory := make(map[string][]models.MerchantInfo)
	for _, merchant := range pool {
		byCategory[merchant.Category] = append(byCategory[merchant.Category], merchant)
	}

	return &expenseGenerator{
		merchantPool: pool,
		byCategory:   byCategory,
		faker:        gofakeit.New(seed),
	}
}

func (g *expenseGenerator) GetMerchantPool() []models.MerchantInfo {
	return g.merchantPool
}

// SelectRandomMerchant picks a merchant of the named category, or any
// merchant when the category has none.
func (g *expenseGenerator) SelectRandomMerchant(categoryName string) models.MerchantInfo {
	candidates := g.byCategory[categoryName]
	if len(candidates) == 0 {
		candidates = g.merchantPool
	}
	return candidates[g.faker.IntRange(0, len(candidates)-1)]
}

// GenerateAmount generates a realistic amount for the category
func (g *expenseGenerator) GenerateAmount(categoryName string) decimal.Decimal {
	minValue, maxValue := amountRange(categoryName)
	return decimal.NewFromFloat(g.faker.Price(minValue, maxValue)).Round(2)
}

func amountRange(categoryName string) (float64, float64) {
	ranges := map[string][2]float64{
		CategoryHousing:        {650.00, 1400.00},
		CategoryGroceries:      {12.00, 140.00},
		CategoryUtilities:      {35.00, 160.00},
		CategoryTransportation: {8.00, 75.00},
		CategoryHealthcare:     {15.00, 180.00},
		CategoryInsurance:      {40.00, 120.00},
		CategoryDiningOut:      {9.00, 85.00},
		CategoryEntertainment:  {8.00, 60.00},
		CategoryShopping:       {20.00, 250.00},
		CategorySubscriptions:  {4.99, 17.99},
		CategoryTravel:         {60.00, 600.00},
		CategorySalary:         {2200.00, 4200.00},
	}

	if r, exists := ranges[categoryName]; exists {
		return r[0], r[1]
	}
	return 10.00, 100.00
}

// GenerateDate returns a calendar day within [startDate, endDate].
func (g *expenseGenerator) GenerateDate(startDate, endDate time.Time) time.Time {
	if !endDate.After(startDate) {
		return models.TruncateToDate(startDate)
	}
	return models.TruncateToDate(g.faker.DateRange(startDate, endDate))
}

// GenerateExpenses generates daily purchases plus one bill per month for each
// recurring category the user has.
func (g *expenseGenerator) GenerateExpenses(userID uuid.UUID, categories []models.Category, startDate, endDate time.Time) []models.Expense {
	var daily, recurring []models.Category
	for _, category := range categories {
		if category.Type != models.CategoryTypeExpense {
			continue
		}
		if recurringCategories[category.Name] {
			recurring = append(recurring, category)
		} else {
			daily = append(daily, category)
		}
	}

	expenses := make([]models.Expense, 0)
	start := models.TruncateToDate(startDate)
	end := models.TruncateToDate(endDate)

	for day := start; !day.After(end); day = day.Add(hoursInDay * time.Hour) {
		if len(daily) > 0 {
			purchases := g.faker.IntRange(0, maxDailyPurchase)
			for i := 0; i < purchases; i++ {
				category := daily[g.faker.IntRange(0, len(daily)-1)]
				expenses = append(expenses, g.newExpense(userID, category, day))
			}
		}

		if day.Day() == billDay {
			for _, category := range recurring {
				expenses = append(expenses, g.newExpense(userID, category, day))
			}
		}
	}

	return expenses
}

func (g *expenseGenerator) newExpense(userID uuid.UUID, category models.Category, day time.Time) models.Expense {
	merchant := g.SelectRandomMerchant(category.Name)
	categoryID := category.ID

	return models.Expense{
		UserID:      userID,
		CategoryID:  &categoryID,
		Amount:      g.GenerateAmount(category.Name),
		Description: "Purchase at " + merchant.Name,
		Merchant:    merchant.Name,
		Date:        day,
		Source:      models.ExpenseSourceSeed,
	}
}

// GenerateIncomes generates a monthly salary paid on the same day each month
func (g *expenseGenerator) GenerateIncomes(userID uuid.UUID, category *models.Category, startDate, endDate time.Time) []models.Income {
	base := g.GenerateAmount(CategorySalary)
	employer := g.faker.Company()

	var categoryID *uuid.UUID
	if category != nil {
		id := category.ID
		categoryID = &id
	}

	incomes := make([]models.Income, 0)
	month := time.Date(startDate.Year(), startDate.Month(), 1, 0, 0, 0, 0, time.UTC)
	for !month.After(endDate) {
		payday := time.Date(month.Year(), month.Month(), salaryDay, 0, 0, 0, 0, time.UTC)
		if !payday.Before(models.TruncateToDate(startDate)) && !payday.After(endDate) {
			incomes = append(incomes, models.Income{
				UserID:      userID,
				CategoryID:  categoryID,
				Amount:      base,
				Description: "Salary - " + employer,
				Date:        payday,
			})
		}
		month = month.AddDate(0, 1, 0)
	}

	return incomes
}

// GenerateGoals generates two or three goals created some months before now
func (g *expenseGenerator) GenerateGoals(userID uuid.UUID, now time.Time) []models.Goal {
	count := g.faker.IntRange(2, 3)
	offset := g.faker.IntRange(0, len(goalTemplates)-1)
	today := models.TruncateToDate(now)

	goals := make([]models.Goal, 0, count)
	for i := 0; i < count; i++ {
		template := goalTemplates[(offset+i)%len(goalTemplates)]
		age := g.faker.IntRange(1, template.months-1)
		createdAt := today.AddDate(0, -age, 0)

		goals = append(goals, models.Goal{
			UserID:       userID,
			Name:         template.name,
			TargetAmount: decimal.NewFromInt(template.target),
			TargetDate:   createdAt.AddDate(0, template.months, 0),
			CreatedAt:    createdAt,
			UpdatedAt:    createdAt,
		})
	}

	return goals
}

// GenerateGoalEntries generates monthly contributions since the goal was
// created, with an occasional small withdrawal.
func (g *expenseGenerator) GenerateGoalEntries(goal models.Goal, now time.Time) []models.GoalEntry {
	months := goal.TargetDate.Sub(goal.CreatedAt).Hours() / hoursInDay / 30
	if months < 1 {
		months = 1
	}
	monthly := goal.TargetAmount.Div(decimal.NewFromFloat(months))

	entries := make([]models.GoalEntry, 0)
	for day := goal.CreatedAt.AddDate(0, 0, 1); !day.After(now); day = day.AddDate(0, 1, 0) {
		factor := decimal.NewFromFloat(g.faker.Float64Range(0.6, 1.2))
		entries = append(entries, models.GoalEntry{
			GoalID:      goal.ID,
			Amount:      monthly.Mul(factor).Round(2),
			Description: "Monthly contribution",
			Date:        models.TruncateToDate(day),
		})

		if g.faker.IntRange(1, 10) == 1 {
			entries = append(entries, models.GoalEntry{
				GoalID:      goal.ID,
				Amount:      monthly.Mul(decimal.NewFromFloat(-0.3)).Round(2),
				Description: g.faker.Sentence(4),
				Date:        models.TruncateToDate(day),
			})
		}
	}

	return entries
}
