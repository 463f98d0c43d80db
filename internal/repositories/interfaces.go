package repositories

import (
	"context"
	"time"

	"finance-tracker/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// UserRepositoryInterface defines the contract for user repository operations
type UserRepositoryInterface interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	Update(ctx context.Context, user *models.User) error
}

// CategoryRepositoryInterface defines the contract for category repository operations
type CategoryRepositoryInterface interface {
	Create(ctx context.Context, category *models.Category) error
	CreateBatch(ctx context.Context, categories []models.Category) error
	GetByID(ctx context.Context, userID, id uuid.UUID) (*models.Category, error)
	GetByName(ctx context.Context, userID uuid.UUID, name string) (*models.Category, error)
	ListByUser(ctx context.Context, userID uuid.UUID, categoryType string) ([]models.Category, error)
	Update(ctx context.Context, category *models.Category) error
	Delete(ctx context.Context, userID, id uuid.UUID) error
	CountByUser(ctx context.Context, userID uuid.UUID) (int64, error)
}

// ExpenseRepositoryInterface defines the contract for expense repository operations
type ExpenseRepositoryInterface interface {
	Create(ctx context.Context, expense *models.Expense) error
	CreateBatch(ctx context.Context, expenses []models.Expense) error
	GetByID(ctx context.Context, userID, id uuid.UUID) (*models.Expense, error)
	List(ctx context.Context, userID uuid.UUID, filters models.ExpenseFilters) ([]models.Expense, int64, error)
	Update(ctx context.Context, expense *models.Expense) error
	Delete(ctx context.Context, userID, id uuid.UUID) error

	// ListInRange returns the user's expenses dated within [start, end],
	// joined with category metadata and validated.
	ListInRange(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]models.ExpenseRow, error)
	SumByCategoryInRange(ctx context.Context, userID, categoryID uuid.UUID, start, end time.Time) (decimal.Decimal, error)
}

// IncomeRepositoryInterface defines the contract for income repository operations
type IncomeRepositoryInterface interface {
	Create(ctx context.Context, income *models.Income) error
	CreateBatch(ctx context.Context, incomes []models.Income) error
	GetByID(ctx context.Context, userID, id uuid.UUID) (*models.Income, error)
	List(ctx context.Context, userID uuid.UUID, from, to *time.Time, offset, limit int) ([]models.Income, int64, error)
	Update(ctx context.Context, income *models.Income) error
	Delete(ctx context.Context, userID, id uuid.UUID) error
	SumInRange(ctx context.Context, userID uuid.UUID, start, end time.Time) (decimal.Decimal, error)
}

// GoalRepositoryInterface defines the contract for goal and goal entry operations.
// Entry operations expect the caller to have checked goal ownership.
type GoalRepositoryInterface interface {
	Create(ctx context.Context, goal *models.Goal) error
	GetByID(ctx context.Context, userID, id uuid.UUID) (*models.Goal, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]models.Goal, error)
	Update(ctx context.Context, goal *models.Goal) error
	Delete(ctx context.Context, userID, id uuid.UUID) error

	ListEntries(ctx context.Context, goalID uuid.UUID) ([]models.GoalEntry, error)
	GetEntry(ctx context.Context, goalID, entryID uuid.UUID) (*models.GoalEntry, error)
	CreateEntry(ctx context.Context, entry *models.GoalEntry) error
	DeleteEntry(ctx context.Context, goalID, entryID uuid.UUID) error
}

// BudgetRepositoryInterface defines the contract for budget repository operations
type BudgetRepositoryInterface interface {
	Create(ctx context.Context, budget *models.Budget) error
	CreateBatch(ctx context.Context, budgets []models.Budget) error
	GetByID(ctx context.Context, userID, id uuid.UUID) (*models.Budget, error)
	ListByUser(ctx context.Context, userID uuid.UUID, activeOn *time.Time) ([]models.Budget, error)
	ListOverlapping(ctx context.Context, userID uuid.UUID, categoryIDs []uuid.UUID, period models.DateRange) ([]models.Budget, error)
	Update(ctx context.Context, budget *models.Budget) error
	Delete(ctx context.Context, userID, id uuid.UUID) error

	// ApplyWizard deletes the given budgets and creates the new ones in one transaction.
	ApplyWizard(ctx context.Context, userID uuid.UUID, deleteIDs []uuid.UUID, creates []models.Budget) error
}

// APIKeyRepositoryInterface defines the contract for integration API key operations
type APIKeyRepositoryInterface interface {
	Create(ctx context.Context, key *models.APIKey) error
	GetByHash(ctx context.Context, keyHash string) (*models.APIKey, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]models.APIKey, error)
	Revoke(ctx context.Context, userID, id uuid.UUID, at time.Time) error
	TouchLastUsed(ctx context.Context, id uuid.UUID, at time.Time) error
}

// AuditLogRepositoryInterface defines the contract for audit log repository operations
type AuditLogRepositoryInterface interface {
	Create(ctx context.Context, log *models.AuditLog) error
	GetByUserID(ctx context.Context, userID uuid.UUID, offset, limit int) ([]*models.AuditLog, int64, error)
	DeleteOlderThan(ctx context.Context, duration time.Duration) (int64, error)
}
