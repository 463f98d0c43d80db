package errors

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"
)

// CodesTestSuite defines the test suite for error codes
type CodesTestSuite struct {
	suite.Suite
}

// TestCodesTestSuite runs the test suite
func TestCodesTestSuite(t *testing.T) {
	suite.Run(t, new(CodesTestSuite))
}

var codesByPrefix = map[string][]ErrorCode{
	"AUTH_": {
		AuthMissingToken,
		AuthExpiredToken,
		AuthInvalidTokenFormat,
		AuthInsufficientPermission,
		AuthMissingAPIKey,
		AuthInvalidAPIKey,
	},
	"VALIDATION_": {
		ValidationGeneral,
		ValidationRequiredField,
		ValidationInvalidFormat,
		ValidationOutOfRange,
		ValidationInvalidAmount,
		ValidationInvalidDate,
		ValidationInvalidID,
	},
	"CATEGORY_":    {CategoryNotFound, CategoryAlreadyExists},
	"EXPENSE_":     {ExpenseNotFound},
	"INCOME_":      {IncomeNotFound},
	"GOAL_":        {GoalNotFound, GoalEntryNotFound, GoalInvalidEntry},
	"BUDGET_":      {BudgetNotFound, BudgetInvalidPeriod, BudgetWizardUnavailable, BudgetAllocationExceeded},
	"INTEGRATION_": {IntegrationKeyNotFound, IntegrationUnparsable, IntegrationKeyRevoked},
	"SYSTEM_": {
		SystemInternalError,
		SystemDatabaseError,
		SystemServiceUnavailable,
		SystemConfigurationError,
		SystemUnexpectedError,
		SystemRateLimitExceeded,
		SystemRouteNotFound,
	},
}

// TestGetErrorMessage_ValidCode tests getting message for valid error codes
func (s *CodesTestSuite) TestGetErrorMessage_ValidCode() {
	testCases := []struct {
		name     string
		code     ErrorCode
		expected string
	}{
		{"Auth Missing Token", AuthMissingToken, "Authorization token is required"},
		{"Validation General", ValidationGeneral, "Validation failed"},
		{"Goal Not Found", GoalNotFound, "Goal not found"},
		{"Goal Invalid Entry", GoalInvalidEntry, "Goal entry amount must be non-zero"},
		{"Budget Wizard Unavailable", BudgetWizardUnavailable, "Budget wizard is not available right now"},
		{"System Internal Error", SystemInternalError, "An unexpected error occurred. Please contact support with trace ID"},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.Equal(tc.expected, GetErrorMessage(tc.code))
		})
	}
}

// TestGetErrorMessage_InvalidCode tests getting message for invalid error code
func (s *CodesTestSuite) TestGetErrorMessage_InvalidCode() {
	s.Equal("An error occurred", GetErrorMessage("INVALID_CODE"))
}

// TestIsValidErrorCode_ValidCodes tests that every declared code has a message
func (s *CodesTestSuite) TestIsValidErrorCode_ValidCodes() {
	for _, codes := range codesByPrefix {
		for _, code := range codes {
			s.True(IsValidErrorCode(code), "Expected %s to be valid", code)
		}
	}
}

// TestIsValidErrorCode_InvalidCode tests validation of invalid error code
func (s *CodesTestSuite) TestIsValidErrorCode_InvalidCode() {
	for _, code := range []ErrorCode{"INVALID_001", "UNKNOWN_CODE", "", "AUTH_999"} {
		s.False(IsValidErrorCode(code), "Expected %s to be invalid", code)
	}
}

// TestErrorCodeConstants_Uniqueness ensures all error codes are unique
func (s *CodesTestSuite) TestErrorCodeConstants_Uniqueness() {
	seen := make(map[ErrorCode]bool)
	for _, codes := range codesByPrefix {
		for _, code := range codes {
			s.False(seen[code], "Duplicate error code found: %s", code)
			seen[code] = true
		}
	}
	s.Len(seen, len(errorMessages))
}

// TestErrorCodeConstants_Format ensures all error codes follow naming convention
func (s *CodesTestSuite) TestErrorCodeConstants_Format() {
	for prefix, codes := range codesByPrefix {
		for _, code := range codes {
			s.True(strings.HasPrefix(string(code), prefix), "%s should start with %s", code, prefix)
			s.Len(strings.TrimPrefix(string(code), prefix), 3)
		}
	}
}
