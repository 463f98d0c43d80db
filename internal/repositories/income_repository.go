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

var ErrIncomeNotFound = errors.New("income not found")

type incomeRepository struct {
	db *gorm.DB
}

// NewIncomeRepository creates a new income repository
func NewIncomeRepository(db *gorm.DB) IncomeRepositoryInterface {
	return &incomeRepository{db: db}
}

func (r *incomeRepository) Create(ctx context.Context, income *models.Income) error {
	if income == nil {
		return errors.New("income cannot be nil")
	}

	if err := r.db.WithContext(ctx).Create(income).Error; err != nil {
		return fmt.Errorf("failed to create income: %w", err)
	}

	return nil
}

func (r *incomeRepository) CreateBatch(ctx context.Context, incomes []models.Income) error {
	if len(incomes) == 0 {
		return nil
	}

	if err := r.db.WithContext(ctx).CreateInBatches(&incomes, 200).Error; err != nil {
		return fmt.Errorf("failed to create incomes: %w", err)
	}

	return nil
}

func (r *incomeRepository) GetByID(ctx context.Context, userID, id uuid.UUID) (*models.Income, error) {
	var income models.Income
	err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&income).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrIncomeNotFound
		}
		return nil, fmt.Errorf("failed to get income: %w", err)
	}

	return &income, nil
}

func (r *incomeRepository) List(ctx context.Context, userID uuid.UUID, from, to *time.Time, offset, limit int) ([]models.Income, int64, error) {
	var incomes []models.Income
	var total int64

	query := r.db.WithContext(ctx).Model(&models.Income{}).Where("user_id = ?", userID)
	if from != nil {
		query = query.Where("date >= ?", models.TruncateToDate(*from))
	}
	if to != nil {
		query = query.Where("date <= ?", models.TruncateToDate(*to))
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count incomes: %w", err)
	}

	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}

	if err := query.Order("date DESC, created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&incomes).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list incomes: %w", err)
	}

	return incomes, total, nil
}

func (r *incomeRepository) Update(ctx context.Context, income *models.Income) error {
	if income == nil {
		return errors.New("income cannot be nil")
	}

	income.Category = nil
	if err := r.db.WithContext(ctx).Save(income).Error; err != nil {
		return fmt.Errorf("failed to update income: %w", err)
	}

	return nil
}

func (r *incomeRepository) Delete(ctx context.Context, userID, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).Delete(&models.Income{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete income: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrIncomeNotFound
	}

	return nil
}

func (r *incomeRepository) SumInRange(ctx context.Context, userID uuid.UUID, start, end time.Time) (decimal.Decimal, error) {
	var total decimal.Decimal

	err := r.db.WithContext(ctx).
		Model(&models.Income{}).
		Select("COALESCE(SUM(amount), 0)").
		Where("user_id = ? AND date >= ? AND date <= ?",
			userID, models.TruncateToDate(start), models.TruncateToDate(end)).
		Row().
		Scan(&total)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum incomes: %w", err)
	}

	return total, nil
}
