package handlers

import (
	"net/http"
	"strconv"
	"time"

	"finance-tracker/internal/errors"
	"finance-tracker/internal/services"

	"github.com/labstack/echo/v4"
)

const defaultSeedMonths = 3

// DevHandler handles development-only endpoints
// These endpoints should only be available in development environments
type DevHandler struct {
	seedService services.SeedServiceInterface
	now         func() time.Time
}

// NewDevHandler creates a new development handler
func NewDevHandler(seedService services.SeedServiceInterface) *DevHandler {
	return &DevHandler{
		seedService: seedService,
		now:         time.Now,
	}
}

// SeedCurrentUser generates realistic history for the calling user
//
// Method: POST /api/v1/dev/seed
// Authentication: Required
// Environment: Development only
//
// Query parameters:
//   - months: Number of months of history to generate (default: 3, max: 24)
//
// Success Response: 201 Created with dto.SeedSummary
//
// Error Responses:
//   - 400: months out of range
//   - 401: Unauthorized
//   - 500: Internal server error
func (h *DevHandler) SeedCurrentUser(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	email, _ := c.Get(UserEmailContextKey).(string)
	months := getIntQueryParam(c, "months", defaultSeedMonths)

	summary, err := h.seedService.Seed(c.Request().Context(), userID, email, months, h.now().UTC())
	if err != nil {
		return sendServiceError(c, err)
	}

	return c.JSON(http.StatusCreated, summary)
}

// getIntQueryParam reads an integer query parameter, falling back to the
// default when it is absent or malformed.
func getIntQueryParam(c echo.Context, key string, defaultValue int) int {
	valueStr := c.QueryParam(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}

	return value
}
