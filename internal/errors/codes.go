package errors

// ErrorCode represents a standardized error code used throughout the API
type ErrorCode string

// Authentication error codes (AUTH_*)
const (
	AuthMissingToken           ErrorCode = "AUTH_001"
	AuthExpiredToken           ErrorCode = "AUTH_002"
	AuthInvalidTokenFormat     ErrorCode = "AUTH_003"
	AuthInsufficientPermission ErrorCode = "AUTH_004"
	AuthMissingAPIKey          ErrorCode = "AUTH_005"
	AuthInvalidAPIKey          ErrorCode = "AUTH_006"
)

// Validation error codes (VALIDATION_*)
const (
	ValidationGeneral       ErrorCode = "VALIDATION_001"
	ValidationRequiredField ErrorCode = "VALIDATION_002"
	ValidationInvalidFormat ErrorCode = "VALIDATION_003"
	ValidationOutOfRange    ErrorCode = "VALIDATION_004"
	ValidationInvalidAmount ErrorCode = "VALIDATION_005"
	ValidationInvalidDate   ErrorCode = "VALIDATION_006"
	ValidationInvalidID     ErrorCode = "VALIDATION_007"
)

// Category error codes (CATEGORY_*)
const (
	CategoryNotFound      ErrorCode = "CATEGORY_001"
	CategoryAlreadyExists ErrorCode = "CATEGORY_002"
)

// Expense error codes (EXPENSE_*)
const (
	ExpenseNotFound ErrorCode = "EXPENSE_001"
)

// Income error codes (INCOME_*)
const (
	IncomeNotFound ErrorCode = "INCOME_001"
)

// Goal error codes (GOAL_*)
const (
	GoalNotFound      ErrorCode = "GOAL_001"
	GoalEntryNotFound ErrorCode = "GOAL_002"
	GoalInvalidEntry  ErrorCode = "GOAL_003"
)

// Budget error codes (BUDGET_*)
const (
	BudgetNotFound           ErrorCode = "BUDGET_001"
	BudgetInvalidPeriod      ErrorCode = "BUDGET_002"
	BudgetWizardUnavailable  ErrorCode = "BUDGET_003"
	BudgetAllocationExceeded ErrorCode = "BUDGET_004"
)

// Integration error codes (INTEGRATION_*)
const (
	IntegrationKeyNotFound ErrorCode = "INTEGRATION_001"
	IntegrationUnparsable  ErrorCode = "INTEGRATION_002"
	IntegrationKeyRevoked  ErrorCode = "INTEGRATION_003"
)

// System error codes (SYSTEM_*)
const (
	SystemInternalError      ErrorCode = "SYSTEM_001"
	SystemDatabaseError      ErrorCode = "SYSTEM_002"
	SystemServiceUnavailable ErrorCode = "SYSTEM_003"
	SystemConfigurationError ErrorCode = "SYSTEM_004"
	SystemUnexpectedError    ErrorCode = "SYSTEM_005"
	SystemRateLimitExceeded  ErrorCode = "SYSTEM_006"
	SystemRouteNotFound      ErrorCode = "SYSTEM_007"
)

// errorMessages maps error codes to their default human-readable messages
var errorMessages = map[ErrorCode]string{
	// Authentication errors
	AuthMissingToken:           "Authorization token is required",
	AuthExpiredToken:           "Authorization token has expired",
	AuthInvalidTokenFormat:     "Invalid authorization token format",
	AuthInsufficientPermission: "Insufficient permissions to access this resource",
	AuthMissingAPIKey:          "API key is required",
	AuthInvalidAPIKey:          "Invalid API key",

	// Validation errors
	ValidationGeneral:       "Validation failed",
	ValidationRequiredField: "Required field is missing",
	ValidationInvalidFormat: "Invalid field format",
	ValidationOutOfRange:    "Field value is out of allowed range",
	ValidationInvalidAmount: "Invalid amount",
	ValidationInvalidDate:   "Invalid date format or range",
	ValidationInvalidID:     "Invalid identifier format",

	// Category errors
	CategoryNotFound:      "Category not found",
	CategoryAlreadyExists: "A category with this name already exists",

	// Expense errors
	ExpenseNotFound: "Expense not found",

	// Income errors
	IncomeNotFound: "Income not found",

	// Goal errors
	GoalNotFound:      "Goal not found",
	GoalEntryNotFound: "Goal entry not found",
	GoalInvalidEntry:  "Goal entry amount must be non-zero",

	// Budget errors
	BudgetNotFound:           "Budget not found",
	BudgetInvalidPeriod:      "Budget period start must not be after its end",
	BudgetWizardUnavailable:  "Budget wizard is not available right now",
	BudgetAllocationExceeded: "Allocated percentages exceed 100%",

	// Integration errors
	IntegrationKeyNotFound: "API key not found",
	IntegrationUnparsable:  "Could not find an amount in the submitted text",
	IntegrationKeyRevoked:  "API key has been revoked",

	// System errors
	SystemInternalError:      "An unexpected error occurred. Please contact support with trace ID",
	SystemDatabaseError:      "Database connection error",
	SystemServiceUnavailable: "Service temporarily unavailable",
	SystemConfigurationError: "System configuration error",
	SystemUnexpectedError:    "An unexpected error occurred",
	SystemRateLimitExceeded:  "Rate limit exceeded. Please try again later",
	SystemRouteNotFound:      "Resource not found",
}

// GetErrorMessage returns the default message for a given error code
// If the error code is not found, it returns a generic error message
func GetErrorMessage(code ErrorCode) string {
	if msg, ok := errorMessages[code]; ok {
		return msg
	}
	return "An error occurred"
}

// IsValidErrorCode checks if the provided error code is a valid registered code
func IsValidErrorCode(code ErrorCode) bool {
	_, ok := errorMessages[code]
	return ok
}
