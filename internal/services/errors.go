package services

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidInput         = errors.New("invalid input")
	ErrInvalidPeriod        = errors.New("period start must not be after period end")
	ErrCategoryTypeMismatch = errors.New("category has the wrong type")
	ErrInvalidAPIKey        = errors.New("invalid api key")
	ErrAPIKeyRevoked        = errors.New("api key has been revoked")
	ErrUnparsableExpense    = errors.New("no amount found in message")
)

func invalidInput(field string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrInvalidInput, field, err)
}
