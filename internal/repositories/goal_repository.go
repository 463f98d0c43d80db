package repositories

import (
	"context"
	"errors"
	"fmt"

	"finance-tracker/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrGoalNotFound      = errors.New("goal not found")
	ErrGoalEntryNotFound = errors.New("goal entry not found")
)

type goalRepository struct {
	db *gorm.DB
}

// NewGoalRepository creates a new goal repository
func NewGoalRepository(db *gorm.DB) GoalRepositoryInterface {
	return &goalRepository{db: db}
}

func (r *goalRepository) Create(ctx context.Context, goal *models.Goal) error {
	if goal == nil {
		return errors.New("goal cannot be nil")
	}

	if err := r.db.WithContext(ctx).Create(goal).Error; err != nil {
		return fmt.Errorf("failed to create goal: %w", err)
	}

	return nil
}

func (r *goalRepository) GetByID(ctx context.Context, userID, id uuid.UUID) (*models.Goal, error) {
	var goal models.Goal
	err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&goal).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGoalNotFound
		}
		return nil, fmt.Errorf("failed to get goal: %w", err)
	}

	return &goal, nil
}

// ListByUser returns the user's goals ordered by target date.
func (r *goalRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.Goal, error) {
	var goals []models.Goal
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("target_date ASC, created_at ASC").
		Find(&goals).Error; err != nil {
		return nil, fmt.Errorf("failed to list goals: %w", err)
	}

	return goals, nil
}

func (r *goalRepository) Update(ctx context.Context, goal *models.Goal) error {
	if goal == nil {
		return errors.New("goal cannot be nil")
	}

	goal.Entries = nil
	if err := r.db.WithContext(ctx).Save(goal).Error; err != nil {
		return fmt.Errorf("failed to update goal: %w", err)
	}

	return nil
}

// Delete removes the goal and its entries.
func (r *goalRepository) Delete(ctx context.Context, userID, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var goal models.Goal
		if err := tx.Where("id = ? AND user_id = ?", id, userID).First(&goal).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrGoalNotFound
			}
			return fmt.Errorf("failed to get goal: %w", err)
		}

		if err := tx.Where("goal_id = ?", id).Delete(&models.GoalEntry{}).Error; err != nil {
			return fmt.Errorf("failed to delete goal entries: %w", err)
		}

		if err := tx.Delete(&goal).Error; err != nil {
			return fmt.Errorf("failed to delete goal: %w", err)
		}

		return nil
	})
}

// ListEntries returns the goal's ledger, oldest first.
func (r *goalRepository) ListEntries(ctx context.Context, goalID uuid.UUID) ([]models.GoalEntry, error) {
	var entries []models.GoalEntry
	if err := r.db.WithContext(ctx).
		Where("goal_id = ?", goalID).
		Order("date ASC, created_at ASC").
		Find(&entries).Error; err != nil {
		return nil, fmt.Errorf("failed to list goal entries: %w", err)
	}

	return entries, nil
}

func (r *goalRepository) GetEntry(ctx context.Context, goalID, entryID uuid.UUID) (*models.GoalEntry, error) {
	var entry models.GoalEntry
	err := r.db.WithContext(ctx).
		Where("id = ? AND goal_id = ?", entryID, goalID).
		First(&entry).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGoalEntryNotFound
		}
		return nil, fmt.Errorf("failed to get goal entry: %w", err)
	}

	return &entry, nil
}

func (r *goalRepository) CreateEntry(ctx context.Context, entry *models.GoalEntry) error {
	if entry == nil {
		return errors.New("goal entry cannot be nil")
	}

	if err := r.db.WithContext(ctx).Create(entry).Error; err != nil {
		return fmt.Errorf("failed to create goal entry: %w", err)
	}

	return nil
}

func (r *goalRepository) DeleteEntry(ctx context.Context, goalID, entryID uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND goal_id = ?", entryID, goalID).
		Delete(&models.GoalEntry{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete goal entry: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrGoalEntryNotFound
	}

	return nil
}
