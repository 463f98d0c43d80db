package handlers

import (
	"net/http"
	"testing"
	"time"

	"finance-tracker/internal/dto"
	"finance-tracker/internal/services"
	"finance-tracker/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestDevHandler_SeedCurrentUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	seedService := service_mocks.NewMockSeedServiceInterface(ctrl)
	now := time.Date(2025, 6, 15, 9, 0, 0, 0, time.UTC)
	handler := NewDevHandler(seedService)
	handler.now = func() time.Time { return now }
	userID := uuid.New()

	seedService.EXPECT().Seed(gomock.Any(), userID, "dev@example.com", 6, now).
		Return(&dto.SeedSummary{Expenses: 120}, nil)

	c, rec := newTestContext(newTestEcho(), http.MethodPost, "/api/v1/dev/seed?months=6", nil, userID)
	c.Set(UserEmailContextKey, "dev@example.com")

	assert.NoError(t, handler.SeedCurrentUser(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"expenses":120`)
}

func TestDevHandler_SeedCurrentUser_DefaultsAndRange(t *testing.T) {
	ctrl := gomock.NewController(t)
	seedService := service_mocks.NewMockSeedServiceInterface(ctrl)
	handler := NewDevHandler(seedService)
	userID := uuid.New()

	seedService.EXPECT().Seed(gomock.Any(), userID, "", defaultSeedMonths, gomock.Any()).
		Return(nil, services.ErrInvalidSeedMonths)

	c, rec := newTestContext(newTestEcho(), http.MethodPost, "/api/v1/dev/seed?months=lots", nil, userID)

	assert.NoError(t, handler.SeedCurrentUser(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_004", decodeError(rec).Error.Code)
}
