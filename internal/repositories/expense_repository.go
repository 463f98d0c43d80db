package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"finance-tracker/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	ErrExpenseNotFound   = errors.New("expense not found")
	ErrInvalidExpenseRow = errors.New("invalid expense row")
)

const (
	defaultListLimit = 20
	maxListLimit     = 100
)

type expenseRepository struct {
	db *gorm.DB
}

// NewExpenseRepository creates a new expense repository
func NewExpenseRepository(db *gorm.DB) ExpenseRepositoryInterface {
	return &expenseRepository{db: db}
}

func (r *expenseRepository) Create(ctx context.Context, expense *models.Expense) error {
	if expense == nil {
		return errors.New("expense cannot be nil")
	}

	if err := r.db.WithContext(ctx).Create(expense).Error; err != nil {
		return fmt.Errorf("failed to create expense: %w", err)
	}

	return nil
}

func (r *expenseRepository) CreateBatch(ctx context.Context, expenses []models.Expense) error {
	if len(expenses) == 0 {
		return nil
	}

	if err := r.db.WithContext(ctx).CreateInBatches(&expenses, 200).Error; err != nil {
		return fmt.Errorf("failed to create expenses: %w", err)
	}

	return nil
}

func (r *expenseRepository) GetByID(ctx context.Context, userID, id uuid.UUID) (*models.Expense, error) {
	var expense models.Expense
	err := r.db.WithContext(ctx).
		Preload("Category").
		Where("id = ? AND user_id = ?", id, userID).
		First(&expense).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrExpenseNotFound
		}
		return nil, fmt.Errorf("failed to get expense: %w", err)
	}

	return &expense, nil
}

// List returns a page of the user's expenses, newest first, and the total
// number matching the filters.
func (r *expenseRepository) List(ctx context.Context, userID uuid.UUID, filters models.ExpenseFilters) ([]models.Expense, int64, error) {
	var expenses []models.Expense
	var total int64

	query := r.db.WithContext(ctx).Model(&models.Expense{}).Where("user_id = ?", userID)
	if filters.From != nil {
		query = query.Where("date >= ?", models.TruncateToDate(*filters.From))
	}
	if filters.To != nil {
		query = query.Where("date <= ?", models.TruncateToDate(*filters.To))
	}
	if filters.CategoryID != nil {
		query = query.Where("category_id = ?", *filters.CategoryID)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count expenses: %w", err)
	}

	limit := filters.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}

	if err := query.Preload("Category").
		Order("date DESC, created_at DESC").
		Offset(filters.Offset).
		Limit(limit).
		Find(&expenses).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list expenses: %w", err)
	}

	return expenses, total, nil
}

func (r *expenseRepository) Update(ctx context.Context, expense *models.Expense) error {
	if expense == nil {
		return errors.New("expense cannot be nil")
	}

	expense.Category = nil
	if err := r.db.WithContext(ctx).Save(expense).Error; err != nil {
		return fmt.Errorf("failed to update expense: %w", err)
	}

	return nil
}

func (r *expenseRepository) Delete(ctx context.Context, userID, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).Delete(&models.Expense{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete expense: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrExpenseNotFound
	}

	return nil
}

func (r *expenseRepository) ListInRange(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]models.ExpenseRow, error) {
	var rows []models.ExpenseRow

	err := r.db.WithContext(ctx).
		Table("expenses").
		Select(`expenses.id, expenses.category_id,
			COALESCE(categories.name, '') AS category_name,
			COALESCE(categories.icon, '') AS category_icon,
			COALESCE(categories.color, '') AS category_color,
			expenses.amount, expenses.date`).
		Joins("LEFT JOIN categories ON categories.id = expenses.category_id").
		Where("expenses.user_id = ? AND expenses.date >= ? AND expenses.date <= ?",
			userID, models.TruncateToDate(start), models.TruncateToDate(end)).
		Order("expenses.date ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses in range: %w", err)
	}

	for _, row := range rows {
		if err := row.Validate(); err != nil {
			return nil, fmt.Errorf("%w %s: %v", ErrInvalidExpenseRow, row.ID, err)
		}
	}

	return rows, nil
}

func (r *expenseRepository) SumByCategoryInRange(ctx context.Context, userID, categoryID uuid.UUID, start, end time.Time) (decimal.Decimal, error) {
	var total decimal.Decimal

	err := r.db.WithContext(ctx).
		Model(&models.Expense{}).
		Select("COALESCE(SUM(amount), 0)").
		Where("user_id = ? AND category_id = ? AND date >= ? AND date <= ?",
			userID, categoryID, models.TruncateToDate(start), models.TruncateToDate(end)).
		Row().
		Scan(&total)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum expenses: %w", err)
	}

	return total, nil
}
