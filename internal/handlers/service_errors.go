package handlers

import (
	stderrors "errors"

	"finance-tracker/internal/errors"
	"finance-tracker/internal/models"
	"finance-tracker/internal/repositories"
	"finance-tracker/internal/services"

	"github.com/labstack/echo/v4"
)

// serviceErrorCodes maps service and repository sentinels to API error codes.
// Order matters: the first match wins.
var serviceErrorCodes = []struct {
	err  error
	code errors.ErrorCode
}{
	{repositories.ErrCategoryNotFound, errors.CategoryNotFound},
	{repositories.ErrCategoryAlreadyExists, errors.CategoryAlreadyExists},
	{repositories.ErrExpenseNotFound, errors.ExpenseNotFound},
	{repositories.ErrIncomeNotFound, errors.IncomeNotFound},
	{repositories.ErrGoalNotFound, errors.GoalNotFound},
	{repositories.ErrGoalEntryNotFound, errors.GoalEntryNotFound},
	{repositories.ErrBudgetNotFound, errors.BudgetNotFound},
	{repositories.ErrAPIKeyNotFound, errors.IntegrationKeyNotFound},
	{repositories.ErrUserNotFound, errors.AuthMissingToken},
	{models.ErrZeroEntryAmount, errors.GoalInvalidEntry},
	{services.ErrInvalidPeriod, errors.BudgetInvalidPeriod},
	{models.ErrInvalidDateRange, errors.ValidationInvalidDate},
	{services.ErrAllocationExceeded, errors.BudgetAllocationExceeded},
	{services.ErrWizardNotEligible, errors.BudgetWizardUnavailable},
	{services.ErrUnparsableExpense, errors.IntegrationUnparsable},
	{services.ErrAPIKeyRevoked, errors.IntegrationKeyRevoked},
	{services.ErrInvalidAPIKey, errors.AuthInvalidAPIKey},
	{models.ErrInvalidAmount, errors.ValidationInvalidAmount},
	{services.ErrInvalidAllocation, errors.ValidationOutOfRange},
	{services.ErrInvalidSeedMonths, errors.ValidationOutOfRange},
	{services.ErrDuplicateAllocation, errors.ValidationGeneral},
	{services.ErrInvalidConflictState, errors.ValidationGeneral},
	{services.ErrCategoryTypeMismatch, errors.ValidationGeneral},
	{services.ErrInvalidInput, errors.ValidationGeneral},
}

// sendServiceError answers a service failure with its coded response, or a
// system error when the failure is not a known business error.
func sendServiceError(c echo.Context, err error) error {
	for _, mapping := range serviceErrorCodes {
		if stderrors.Is(err, mapping.err) {
			return SendError(c, mapping.code, errors.WithDetails(err.Error()))
		}
	}
	return SendSystemError(c, err)
}
