package errors

import (
	"fmt"
	"net/http"
	"sort"
)

// ErrorResponse is the envelope every failed request returns.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail carries the machine code, a human message and the trace ID
// the caller can quote when reporting a problem.
type ErrorDetail struct {
	Code    string   `json:"code"`
	Message string   `json:"message"`
	Details []string `json:"details,omitempty"`
	TraceID string   `json:"trace_id"`
}

// ErrorOption customizes a response built by NewErrorResponse.
type ErrorOption func(*ErrorResponse)

// WithDetails replaces the response details.
func WithDetails(details ...string) ErrorOption {
	return func(er *ErrorResponse) {
		er.Error.Details = details
	}
}

// WithMessage replaces the catalogue message of the code.
func WithMessage(message string) ErrorOption {
	return func(er *ErrorResponse) {
		er.Error.Message = message
	}
}

var httpStatuses = map[ErrorCode]int{
	ValidationGeneral:       http.StatusBadRequest,
	ValidationRequiredField: http.StatusBadRequest,
	ValidationInvalidFormat: http.StatusBadRequest,
	ValidationOutOfRange:    http.StatusBadRequest,
	ValidationInvalidAmount: http.StatusBadRequest,
	ValidationInvalidDate:   http.StatusBadRequest,
	ValidationInvalidID:     http.StatusBadRequest,
	GoalInvalidEntry:        http.StatusBadRequest,
	BudgetInvalidPeriod:     http.StatusBadRequest,

	AuthMissingToken:       http.StatusUnauthorized,
	AuthExpiredToken:       http.StatusUnauthorized,
	AuthInvalidTokenFormat: http.StatusUnauthorized,
	AuthMissingAPIKey:      http.StatusUnauthorized,
	AuthInvalidAPIKey:      http.StatusUnauthorized,
	IntegrationKeyRevoked:  http.StatusUnauthorized,

	AuthInsufficientPermission: http.StatusForbidden,

	CategoryNotFound:       http.StatusNotFound,
	ExpenseNotFound:        http.StatusNotFound,
	IncomeNotFound:         http.StatusNotFound,
	GoalNotFound:           http.StatusNotFound,
	GoalEntryNotFound:      http.StatusNotFound,
	BudgetNotFound:         http.StatusNotFound,
	IntegrationKeyNotFound: http.StatusNotFound,
	SystemRouteNotFound:    http.StatusNotFound,

	CategoryAlreadyExists: http.StatusConflict,

	BudgetWizardUnavailable:  http.StatusUnprocessableEntity,
	BudgetAllocationExceeded: http.StatusUnprocessableEntity,
	IntegrationUnparsable:    http.StatusUnprocessableEntity,

	SystemRateLimitExceeded:  http.StatusTooManyRequests,
	SystemServiceUnavailable: http.StatusServiceUnavailable,
}

// GetHTTPStatus maps an error code to its HTTP status. Unknown codes and
// the SYSTEM_ family default to 500.
func GetHTTPStatus(code ErrorCode) int {
	if status, ok := httpStatuses[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}

func newResponse(code ErrorCode, traceID string, details []string) *ErrorResponse {
	return &ErrorResponse{
		Error: ErrorDetail{
			Code:    string(code),
			Message: GetErrorMessage(code),
			Details: details,
			TraceID: traceID,
		},
	}
}

// NewErrorResponse builds the envelope for code, applying opts in order.
func NewErrorResponse(code ErrorCode, traceID string, opts ...ErrorOption) *ErrorResponse {
	response := newResponse(code, traceID, nil)
	for _, opt := range opts {
		opt(response)
	}
	return response
}

// NewValidationError renders field errors as "field: message" details,
// sorted by field name.
func NewValidationError(fieldErrors map[string]string, traceID string) *ErrorResponse {
	fields := make([]string, 0, len(fieldErrors))
	for field := range fieldErrors {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	details := make([]string, 0, len(fields))
	for _, field := range fields {
		details = append(details, fmt.Sprintf("%s: %s", field, fieldErrors[field]))
	}
	return newResponse(ValidationGeneral, traceID, details)
}

// WrapSystemError hides err behind SYSTEM_001. The error is handed back
// untouched for server-side logging.
func WrapSystemError(err error, traceID string) (*ErrorResponse, error) {
	return newResponse(SystemInternalError, traceID, nil), err
}

// GetHTTPStatus returns the HTTP status of the response's code.
func (er *ErrorResponse) GetHTTPStatus() int {
	return GetHTTPStatus(ErrorCode(er.Error.Code))
}

// IsServerError reports whether the response maps to a 5xx status.
func (er *ErrorResponse) IsServerError() bool {
	return er.GetHTTPStatus() >= http.StatusInternalServerError
}
