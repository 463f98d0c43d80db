package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"finance-tracker/internal/dto"
	"finance-tracker/internal/models"
	"finance-tracker/internal/repositories"

	"github.com/google/uuid"
)

// placeholderEmailDomain is used when a token carries no email claim.
const placeholderEmailDomain = "users.invalid"

type userService struct {
	users       repositories.UserRepositoryInterface
	categories  CategoryServiceInterface
	auditLogger AuditLoggerInterface
	metrics     MetricsRecorderInterface
}

func NewUserService(
	users repositories.UserRepositoryInterface,
	categories CategoryServiceInterface,
	auditLogger AuditLoggerInterface,
	metrics MetricsRecorderInterface,
) UserServiceInterface {
	return &userService{
		users:       users,
		categories:  categories,
		auditLogger: auditLogger,
		metrics:     metrics,
	}
}

func (s *userService) EnsureUser(ctx context.Context, claims *models.CustomClaims) (*models.User, error) {
	userID, err := UserIDFromClaims(claims)
	if err != nil {
		return nil, err
	}

	user, err := s.users.GetByID(ctx, userID)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, repositories.ErrUserNotFound) {
		return nil, err
	}

	user = &models.User{
		ID:          userID,
		Email:       claims.Email,
		DisplayName: claims.Name,
		Currency:    models.DefaultCurrency,
	}
	if strings.TrimSpace(user.Email) == "" {
		user.Email = fmt.Sprintf("%s@%s", userID, placeholderEmailDomain)
	}

	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, repositories.ErrUserAlreadyExists) {
			// a concurrent request created it first
			return s.users.GetByID(ctx, userID)
		}
		return nil, err
	}

	if err := s.categories.ProvisionDefaults(ctx, userID); err != nil {
		return nil, err
	}

	count := 0
	if list, err := s.categories.List(ctx, userID, ""); err == nil {
		count = len(list)
	}

	s.auditLogger.LogUserProvisioned(ctx, userID, count)
	s.metrics.IncrementCounter(MetricUsersProvisioned, nil)

	return user, nil
}

func (s *userService) GetProfile(ctx context.Context, userID uuid.UUID) (*models.User, error) {
	return s.users.GetByID(ctx, userID)
}

func (s *userService) UpdateProfile(ctx context.Context, userID uuid.UUID, req *dto.UpdateProfileRequest) (*models.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.DisplayName != nil {
		user.DisplayName = strings.TrimSpace(*req.DisplayName)
	}
	if req.Currency != nil {
		user.Currency = *req.Currency
	}

	if err := user.Validate(); err != nil {
		return nil, invalidInput("profile", err)
	}

	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}
