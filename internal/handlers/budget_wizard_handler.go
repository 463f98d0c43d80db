package handlers

import (
	"net/http"
	"time"

	"finance-tracker/internal/dto"
	"finance-tracker/internal/errors"
	"finance-tracker/internal/services"

	"github.com/labstack/echo/v4"
)

// BudgetWizardHandler serves spending insights and the monthly budget wizard
type BudgetWizardHandler struct {
	insightService services.InsightServiceInterface
	wizardService  services.BudgetWizardServiceInterface
	now            func() time.Time
}

// NewBudgetWizardHandler creates a new budget wizard handler
func NewBudgetWizardHandler(insightService services.InsightServiceInterface, wizardService services.BudgetWizardServiceInterface) *BudgetWizardHandler {
	return &BudgetWizardHandler{
		insightService: insightService,
		wizardService:  wizardService,
		now:            time.Now,
	}
}

// GetSpendingInsights compares last month with the trailing quarter
func (h *BudgetWizardHandler) GetSpendingInsights(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	insights, err := h.insightService.SpendingInsights(c.Request().Context(), userID, h.now())
	if err != nil {
		return sendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, insights)
}

// GetState returns eligibility, eligible categories, suggested allocations
// and insights for the current month
func (h *BudgetWizardHandler) GetState(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	state, err := h.wizardService.State(c.Request().Context(), userID, h.now())
	if err != nil {
		return sendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, state)
}

// PreviewConflicts lists existing budgets the proposed allocations overlap
func (h *BudgetWizardHandler) PreviewConflicts(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	var req dto.WizardConflictsRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return sendValidationError(c, err)
	}

	conflicts, err := h.wizardService.Conflicts(c.Request().Context(), userID, &req)
	if err != nil {
		return sendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, dto.WizardConflictsResponse{Conflicts: conflicts})
}

// Apply commits the allocations with the caller's conflict decisions
func (h *BudgetWizardHandler) Apply(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	var req dto.ApplyWizardRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return sendValidationError(c, err)
	}

	result, err := h.wizardService.Apply(c.Request().Context(), userID, &req, h.now(), getClientIP(c), c.Request().UserAgent())
	if err != nil {
		return sendServiceError(c, err)
	}

	return c.JSON(http.StatusCreated, result)
}
