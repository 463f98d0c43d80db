package handlers

import (
	"net/http"

	"finance-tracker/internal/errors"
	"finance-tracker/internal/validation"

	"github.com/labstack/echo/v4"
)

// Error responses
//
// Handlers answer failures through two helpers only:
//
// 1. SendError - client and business errors (4xx), e.g.
//    SendError(c, errors.GoalNotFound) or
//    SendError(c, errors.BudgetAllocationExceeded, errors.WithDetails("..."))
//
// 2. SendSystemError - anything unexpected (500). The cause is never
//    exposed to the client.
//
// Service errors go through sendServiceError, which knows every sentinel.

const (
	// TraceIDContextKey is the context key for storing the trace ID
	TraceIDContextKey = "trace_id"

	// Set by the auth middleware
	UserIDContextKey    = "user_id"
	UserEmailContextKey = "user_email"
	UserContextKey      = "user"
	APIKeyIDContextKey  = "api_key_id"
)

// SuccessResponse represents a standard success response
type SuccessResponse struct {
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
	Meta    interface{} `json:"meta,omitempty"`
}

// ErrorResponse is an alias for the standardized error response type
type ErrorResponse = errors.ErrorResponse

// getTraceID extracts the trace ID from the Echo context
func getTraceID(c echo.Context) string {
	traceID, ok := c.Get(TraceIDContextKey).(string)
	if !ok {
		return ""
	}
	return traceID
}

// SendError sends a standardized error response with trace ID from context
func SendError(c echo.Context, code errors.ErrorCode, opts ...errors.ErrorOption) error {
	traceID := getTraceID(c)
	errorResponse := errors.NewErrorResponse(code, traceID, opts...)
	return c.JSON(errorResponse.GetHTTPStatus(), errorResponse)
}

// SendSystemError wraps a system error with generic message
func SendSystemError(c echo.Context, err error) error {
	traceID := getTraceID(c)
	errorResponse, _ := errors.WrapSystemError(err, traceID)
	return c.JSON(http.StatusInternalServerError, errorResponse)
}

// sendValidationError renders validator failures field by field.
func sendValidationError(c echo.Context, err error) error {
	errorResponse := errors.NewValidationError(validation.FieldErrors(err), getTraceID(c))
	return c.JSON(http.StatusBadRequest, errorResponse)
}
