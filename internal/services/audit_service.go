package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"finance-tracker/internal/models"
	"finance-tracker/internal/repositories"

	"github.com/google/uuid"
)

// AuditService handles audit logging operations
type AuditService struct {
	repo repositories.AuditLogRepositoryInterface
}

// NewAuditService creates a new audit service
func NewAuditService(repo repositories.AuditLogRepositoryInterface) AuditServiceInterface {
	return &AuditService{
		repo: repo,
	}
}

var (
	ErrInvalidUserID    = errors.New("invalid user ID")
	ErrInvalidAuditLog  = errors.New("invalid audit log")
	ErrInvalidRetention = errors.New("retention must be at least one day")
)

// ValidateActivityType validates that the activity type is one of the allowed types
func ValidateActivityType(action string) error {
	validActions := map[string]bool{
		models.AuditActionCreate:        true,
		models.AuditActionUpdate:        true,
		models.AuditActionDelete:        true,
		models.AuditActionWizardApplied: true,
		models.AuditActionKeyCreated:    true,
		models.AuditActionKeyRevoked:    true,
		models.AuditActionIngested:      true,
	}

	if !validActions[action] {
		return fmt.Errorf("invalid activity type: %s", action)
	}
	return nil
}

// CreateAuditLog creates a new audit log entry with validation
func (s *AuditService) CreateAuditLog(ctx context.Context, log *models.AuditLog) error {
	if log == nil {
		return ErrInvalidAuditLog
	}

	if err := ValidateActivityType(log.Action); err != nil {
		return err
	}

	if log.CorrelationID == "" {
		log.CorrelationID = getCorrelationID(ctx)
	}

	if err := s.repo.Create(ctx, log); err != nil {
		return fmt.Errorf("failed to create audit log: %w", err)
	}

	return nil
}

// GetActivity retrieves a user's audit trail, newest first
func (s *AuditService) GetActivity(ctx context.Context, userID uuid.UUID, offset, limit int) ([]*models.AuditLog, int64, error) {
	if userID == uuid.Nil {
		return nil, 0, ErrInvalidUserID
	}

	return s.repo.GetByUserID(ctx, userID, offset, limit)
}

// PruneActivity deletes audit entries older than retention and reports how
// many rows went away.
func (s *AuditService) PruneActivity(ctx context.Context, retention time.Duration) (int64, error) {
	if retention < 24*time.Hour {
		return 0, ErrInvalidRetention
	}

	deleted, err := s.repo.DeleteOlderThan(ctx, retention)
	if err != nil {
		return 0, fmt.Errorf("failed to prune audit logs: %w", err)
	}
	return deleted, nil
}

func (s *AuditService) LogGoalCreated(ctx context.Context, userID, goalID uuid.UUID, ipAddress, userAgent string) error {
	return s.CreateAuditLog(ctx, &models.AuditLog{
		UserID:     &userID,
		Action:     models.AuditActionCreate,
		Resource:   models.AuditResourceGoal,
		ResourceID: goalID.String(),
		IPAddress:  ipAddress,
		UserAgent:  userAgent,
	})
}

func (s *AuditService) LogGoalDeleted(ctx context.Context, userID, goalID uuid.UUID, ipAddress, userAgent string) error {
	return s.CreateAuditLog(ctx, &models.AuditLog{
		UserID:     &userID,
		Action:     models.AuditActionDelete,
		Resource:   models.AuditResourceGoal,
		ResourceID: goalID.String(),
		IPAddress:  ipAddress,
		UserAgent:  userAgent,
	})
}

// LogWizardApplied records how many budgets one wizard run changed
func (s *AuditService) LogWizardApplied(ctx context.Context, userID uuid.UUID, created, deleted, skipped int, ipAddress, userAgent string) error {
	return s.CreateAuditLog(ctx, &models.AuditLog{
		UserID:    &userID,
		Action:    models.AuditActionWizardApplied,
		Resource:  models.AuditResourceBudget,
		IPAddress: ipAddress,
		UserAgent: userAgent,
		Metadata: models.AuditMetadata{
			"created": created,
			"deleted": deleted,
			"skipped": skipped,
		},
	})
}

func (s *AuditService) LogAPIKeyCreated(ctx context.Context, userID, keyID uuid.UUID, ipAddress, userAgent string) error {
	return s.CreateAuditLog(ctx, &models.AuditLog{
		UserID:     &userID,
		Action:     models.AuditActionKeyCreated,
		Resource:   models.AuditResourceAPIKey,
		ResourceID: keyID.String(),
		IPAddress:  ipAddress,
		UserAgent:  userAgent,
	})
}

func (s *AuditService) LogAPIKeyRevoked(ctx context.Context, userID, keyID uuid.UUID, ipAddress, userAgent string) error {
	return s.CreateAuditLog(ctx, &models.AuditLog{
		UserID:     &userID,
		Action:     models.AuditActionKeyRevoked,
		Resource:   models.AuditResourceAPIKey,
		ResourceID: keyID.String(),
		IPAddress:  ipAddress,
		UserAgent:  userAgent,
	})
}

func (s *AuditService) LogExpenseIngested(ctx context.Context, userID, expenseID uuid.UUID, source string) error {
	log := &models.AuditLog{
		UserID:     &userID,
		Action:     models.AuditActionIngested,
		Resource:   models.AuditResourceExpense,
		ResourceID: expenseID.String(),
	}
	log.SetMetadata("source", source)
	return s.CreateAuditLog(ctx, log)
}
