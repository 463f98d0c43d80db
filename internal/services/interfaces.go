package services

import (
	"context"
	"time"

	"finance-tracker/internal/dto"
	"finance-tracker/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// UserServiceInterface manages the users known from bearer tokens
type UserServiceInterface interface {
	// EnsureUser returns the user named by the token subject, creating it
	// with the default categories on first sight.
	EnsureUser(ctx context.Context, claims *models.CustomClaims) (*models.User, error)
	GetProfile(ctx context.Context, userID uuid.UUID) (*models.User, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, req *dto.UpdateProfileRequest) (*models.User, error)
}

// CategoryServiceInterface manages a user's category taxonomy
type CategoryServiceInterface interface {
	List(ctx context.Context, userID uuid.UUID, categoryType string) ([]models.Category, error)
	Create(ctx context.Context, userID uuid.UUID, req *dto.CreateCategoryRequest) (*models.Category, error)
	Update(ctx context.Context, userID, id uuid.UUID, req *dto.UpdateCategoryRequest) (*models.Category, error)
	Delete(ctx context.Context, userID, id uuid.UUID) error
	ProvisionDefaults(ctx context.Context, userID uuid.UUID) error

	// Match picks the user's expense category that best fits the hints, or
	// nil when nothing is close enough.
	Match(ctx context.Context, userID uuid.UUID, hints ...string) (*models.Category, float64, error)
}

// ExpenseServiceInterface defines expense operations
type ExpenseServiceInterface interface {
	Create(ctx context.Context, userID uuid.UUID, req *dto.CreateExpenseRequest, source string) (*models.Expense, error)
	Get(ctx context.Context, userID, id uuid.UUID) (*models.Expense, error)
	List(ctx context.Context, userID uuid.UUID, filters models.ExpenseFilters) ([]models.Expense, int64, error)
	Update(ctx context.Context, userID, id uuid.UUID, req *dto.UpdateExpenseRequest) (*models.Expense, error)
	Delete(ctx context.Context, userID, id uuid.UUID) error
}

// IncomeServiceInterface defines income operations
type IncomeServiceInterface interface {
	Create(ctx context.Context, userID uuid.UUID, req *dto.CreateIncomeRequest) (*models.Income, error)
	List(ctx context.Context, userID uuid.UUID, from, to *time.Time, offset, limit int) ([]models.Income, int64, error)
	Update(ctx context.Context, userID, id uuid.UUID, req *dto.UpdateIncomeRequest) (*models.Income, error)
	Delete(ctx context.Context, userID, id uuid.UUID) error
	MonthlyTotal(ctx context.Context, userID uuid.UUID, now time.Time) (decimal.Decimal, error)
}

// GoalServiceInterface defines savings goal operations. Every goal returned
// carries freshly computed progress.
type GoalServiceInterface interface {
	Create(ctx context.Context, userID uuid.UUID, req *dto.CreateGoalRequest, ipAddress, userAgent string) (*models.GoalWithProgress, error)
	Get(ctx context.Context, userID, id uuid.UUID) (*models.GoalWithProgress, error)
	List(ctx context.Context, userID uuid.UUID) ([]models.GoalWithProgress, error)
	Update(ctx context.Context, userID, id uuid.UUID, req *dto.UpdateGoalRequest) (*models.GoalWithProgress, error)
	Delete(ctx context.Context, userID, id uuid.UUID, ipAddress, userAgent string) error
	AddEntry(ctx context.Context, userID, goalID uuid.UUID, req *dto.CreateGoalEntryRequest) (*models.GoalWithProgress, error)
	DeleteEntry(ctx context.Context, userID, goalID, entryID uuid.UUID) (*models.GoalWithProgress, error)
}

// BudgetServiceInterface defines budget operations
type BudgetServiceInterface interface {
	Create(ctx context.Context, userID uuid.UUID, req *dto.CreateBudgetRequest) (*models.Budget, error)
	List(ctx context.Context, userID uuid.UUID, activeOn *time.Time) ([]models.BudgetWithSpending, error)
	Update(ctx context.Context, userID, id uuid.UUID, req *dto.UpdateBudgetRequest) (*models.Budget, error)
	Delete(ctx context.Context, userID, id uuid.UUID) error
}

// InsightServiceInterface compares recent spending with the trailing quarter
type InsightServiceInterface interface {
	SpendingInsights(ctx context.Context, userID uuid.UUID, now time.Time) (*models.SpendingInsights, error)
	QuarterTotalsByCategory(ctx context.Context, userID uuid.UUID, now time.Time) (map[uuid.UUID]decimal.Decimal, error)
}

// BudgetWizardServiceInterface drives the monthly budget wizard
type BudgetWizardServiceInterface interface {
	State(ctx context.Context, userID uuid.UUID, now time.Time) (*dto.WizardStateResponse, error)
	Conflicts(ctx context.Context, userID uuid.UUID, req *dto.WizardConflictsRequest) ([]models.BudgetConflict, error)
	Apply(ctx context.Context, userID uuid.UUID, req *dto.ApplyWizardRequest, now time.Time, ipAddress, userAgent string) (*dto.ApplyWizardResponse, error)
}

// IntegrationServiceInterface handles API keys and expenses pushed by external clients
type IntegrationServiceInterface interface {
	CreateKey(ctx context.Context, userID uuid.UUID, name, ipAddress, userAgent string) (*models.APIKey, string, error)
	ListKeys(ctx context.Context, userID uuid.UUID) ([]models.APIKey, error)
	RevokeKey(ctx context.Context, userID, id uuid.UUID, ipAddress, userAgent string) error
	Authenticate(ctx context.Context, secret string) (*models.APIKey, error)
	IngestShortcut(ctx context.Context, userID uuid.UUID, req *dto.ShortcutExpenseRequest) (*dto.IngestedExpenseResponse, error)
	IngestEmail(ctx context.Context, userID uuid.UUID, req *dto.EmailExpenseRequest) (*dto.IngestedExpenseResponse, error)
}

// AuditServiceInterface defines the contract for audit logging operations
type AuditServiceInterface interface {
	CreateAuditLog(ctx context.Context, log *models.AuditLog) error
	GetActivity(ctx context.Context, userID uuid.UUID, offset, limit int) ([]*models.AuditLog, int64, error)
	PruneActivity(ctx context.Context, retention time.Duration) (int64, error)
	LogGoalCreated(ctx context.Context, userID, goalID uuid.UUID, ipAddress, userAgent string) error
	LogGoalDeleted(ctx context.Context, userID, goalID uuid.UUID, ipAddress, userAgent string) error
	LogWizardApplied(ctx context.Context, userID uuid.UUID, created, deleted, skipped int, ipAddress, userAgent string) error
	LogAPIKeyCreated(ctx context.Context, userID, keyID uuid.UUID, ipAddress, userAgent string) error
	LogAPIKeyRevoked(ctx context.Context, userID, keyID uuid.UUID, ipAddress, userAgent string) error
	LogExpenseIngested(ctx context.Context, userID, expenseID uuid.UUID, source string) error
}

type MetricsRecorderInterface interface {
	IncrementCounter(name string, tags map[string]string)
	RecordProcessingTime(name string, duration time.Duration)
	RecordGauge(name string, value float64, tags map[string]string)
}

// ExpenseGeneratorInterface generates realistic finance data for demo accounts
type ExpenseGeneratorInterface interface {
	GenerateExpenses(userID uuid.UUID, categories []models.Category, startDate, endDate time.Time) []models.Expense
	GenerateIncomes(userID uuid.UUID, category *models.Category, startDate, endDate time.Time) []models.Income
	GenerateGoals(userID uuid.UUID, now time.Time) []models.Goal
	GenerateGoalEntries(goal models.Goal, now time.Time) []models.GoalEntry
	GetMerchantPool() []models.MerchantInfo
	SelectRandomMerchant(categoryName string) models.MerchantInfo
	GenerateAmount(categoryName string) decimal.Decimal
	GenerateDate(startDate, endDate time.Time) time.Time
}

// SeedServiceInterface fills a user's account with generated history
type SeedServiceInterface interface {
	Seed(ctx context.Context, userID uuid.UUID, email string, months int, now time.Time) (*dto.SeedSummary, error)
}

type TokenServiceInterface interface {
	ValidateAccessToken(tokenString string) (*models.CustomClaims, error)
	ExtractTokenFromHeader(authHeader string) (string, error)
	GenerateDevToken(userID uuid.UUID, email string, ttl time.Duration) (string, time.Time, error)
}

type AuditLoggerInterface interface {
	LogUserProvisioned(ctx context.Context, userID uuid.UUID, categories int)
	LogGoalAchieved(ctx context.Context, userID, goalID uuid.UUID)
	LogGoalEntryRecorded(ctx context.Context, userID, goalID, entryID uuid.UUID, amount string)
	LogWizardApplied(ctx context.Context, userID uuid.UUID, created, deleted, skipped int, durationMs int64)
	LogExpenseIngested(ctx context.Context, userID, expenseID uuid.UUID, source string, confidence float64)
	LogAPIKeyAuthenticated(ctx context.Context, keyID, userID uuid.UUID)
	LogAPIKeyRejected(ctx context.Context, reason string)
	LogEventPublishFailed(ctx context.Context, eventType string, errorMsg string)
	LogAuditWriteFailed(ctx context.Context, action string, errorMsg string)
}
