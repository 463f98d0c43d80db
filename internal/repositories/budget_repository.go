package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"finance-tracker/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrBudgetNotFound = errors.New("budget not found")

type budgetRepository struct {
	db *gorm.DB
}

// NewBudgetRepository creates a new budget repository
func NewBudgetRepository(db *gorm.DB) BudgetRepositoryInterface {
	return &budgetRepository{db: db}
}

func (r *budgetRepository) Create(ctx context.Context, budget *models.Budget) error {
	if budget == nil {
		return errors.New("budget cannot be nil")
	}

	if err := r.db.WithContext(ctx).Create(budget).Error; err != nil {
		return fmt.Errorf("failed to create budget: %w", err)
	}

	return nil
}

func (r *budgetRepository) CreateBatch(ctx context.Context, budgets []models.Budget) error {
	if len(budgets) == 0 {
		return nil
	}

	if err := r.db.WithContext(ctx).Create(&budgets).Error; err != nil {
		return fmt.Errorf("failed to create budgets: %w", err)
	}

	return nil
}

func (r *budgetRepository) GetByID(ctx context.Context, userID, id uuid.UUID) (*models.Budget, error) {
	var budget models.Budget
	err := r.db.WithContext(ctx).
		Preload("Category").
		Where("id = ? AND user_id = ?", id, userID).
		First(&budget).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBudgetNotFound
		}
		return nil, fmt.Errorf("failed to get budget: %w", err)
	}

	return &budget, nil
}

// ListByUser returns the user's budgets. When activeOn is set only budgets
// whose period contains that day are returned.
func (r *budgetRepository) ListByUser(ctx context.Context, userID uuid.UUID, activeOn *time.Time) ([]models.Budget, error) {
	var budgets []models.Budget

	query := r.db.WithContext(ctx).Preload("Category").Where("user_id = ?", userID)
	if activeOn != nil {
		day := models.TruncateToDate(*activeOn)
		query = query.Where("period_start <= ? AND period_end >= ?", day, day)
	}

	if err := query.Order("period_start DESC, created_at ASC").Find(&budgets).Error; err != nil {
		return nil, fmt.Errorf("failed to list budgets: %w", err)
	}

	return budgets, nil
}

// ListOverlapping returns budgets for the given categories whose period
// shares at least one day with period.
func (r *budgetRepository) ListOverlapping(ctx context.Context, userID uuid.UUID, categoryIDs []uuid.UUID, period models.DateRange) ([]models.Budget, error) {
	if len(categoryIDs) == 0 {
		return []models.Budget{}, nil
	}

	var budgets []models.Budget
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND category_id IN ? AND period_start <= ? AND period_end >= ?",
			userID, categoryIDs, models.TruncateToDate(period.End), models.TruncateToDate(period.Start)).
		Order("period_start ASC").
		Find(&budgets).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list overlapping budgets: %w", err)
	}

	return budgets, nil
}

func (r *budgetRepository) Update(ctx context.Context, budget *models.Budget) error {
	if budget == nil {
		return errors.New("budget cannot be nil")
	}

	budget.Category = nil
	if err := r.db.WithContext(ctx).Save(budget).Error; err != nil {
		return fmt.Errorf("failed to update budget: %w", err)
	}

	return nil
}

func (r *budgetRepository) Delete(ctx context.Context, userID, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).Delete(&models.Budget{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete budget: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrBudgetNotFound
	}

	return nil
}

func (r *budgetRepository) ApplyWizard(ctx context.Context, userID uuid.UUID, deleteIDs []uuid.UUID, creates []models.Budget) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if len(deleteIDs) > 0 {
			result := tx.Where("user_id = ? AND id IN ?", userID, deleteIDs).Delete(&models.Budget{})
			if result.Error != nil {
				return fmt.Errorf("failed to delete replaced budgets: %w", result.Error)
			}
			if result.RowsAffected != int64(len(deleteIDs)) {
				return ErrBudgetNotFound
			}
		}

		if len(creates) > 0 {
			if err := tx.Create(&creates).Error; err != nil {
				return fmt.Errorf("failed to create wizard budgets: %w", err)
			}
		}

		return nil
	})
}
