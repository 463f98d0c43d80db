package handlers

import (
	"net/http"

	"finance-tracker/internal/dto"
	"finance-tracker/internal/errors"
	"finance-tracker/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// IntegrationHandler manages API keys and receives expenses from external
// clients authenticated by X-API-Key
type IntegrationHandler struct {
	integrationService services.IntegrationServiceInterface
}

// NewIntegrationHandler creates a new integration handler
func NewIntegrationHandler(integrationService services.IntegrationServiceInterface) *IntegrationHandler {
	return &IntegrationHandler{integrationService: integrationService}
}

// ListKeys lists the user's API keys. Secrets are never returned.
func (h *IntegrationHandler) ListKeys(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	keys, err := h.integrationService.ListKeys(c.Request().Context(), userID)
	if err != nil {
		return sendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, dto.APIKeyListResponse{Keys: keys})
}

// CreateKey issues a new API key. The secret is only part of this response.
func (h *IntegrationHandler) CreateKey(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	var req dto.CreateAPIKeyRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return sendValidationError(c, err)
	}

	key, secret, err := h.integrationService.CreateKey(c.Request().Context(), userID, req.Name, getClientIP(c), c.Request().UserAgent())
	if err != nil {
		return sendServiceError(c, err)
	}

	return c.JSON(http.StatusCreated, dto.CreateAPIKeyResponse{Key: *key, Secret: secret})
}

// RevokeKey revokes an API key
func (h *IntegrationHandler) RevokeKey(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return SendError(c, errors.ValidationInvalidID, errors.WithDetails("Invalid key ID"))
	}

	if err := h.integrationService.RevokeKey(c.Request().Context(), userID, id, getClientIP(c), c.Request().UserAgent()); err != nil {
		return sendServiceError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// IngestShortcut creates an expense sent by the iPhone shortcut
func (h *IntegrationHandler) IngestShortcut(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingAPIKey)
	}

	var req dto.ShortcutExpenseRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return sendValidationError(c, err)
	}

	result, err := h.integrationService.IngestShortcut(c.Request().Context(), userID, &req)
	if err != nil {
		return sendServiceError(c, err)
	}

	return c.JSON(http.StatusCreated, result)
}

// IngestEmail parses a forwarded receipt into an expense
func (h *IntegrationHandler) IngestEmail(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingAPIKey)
	}

	var req dto.EmailExpenseRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return sendValidationError(c, err)
	}

	result, err := h.integrationService.IngestEmail(c.Request().Context(), userID, &req)
	if err != nil {
		return sendServiceError(c, err)
	}

	return c.JSON(http.StatusCreated, result)
}
