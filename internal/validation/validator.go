package validation

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var currencyCodeRegex = regexp.MustCompile(`^[A-Z]{3}$`)

// Validator wraps the go-playground validator with custom rules and error formatting
type Validator struct {
	validate *validator.Validate
}

// GetValidate returns the underlying validator.Validate instance for use with Echo
func (v *Validator) GetValidate() *validator.Validate {
	return v.validate
}

// singleton instance of the validator
var instance *Validator

// GetValidator returns the singleton validator instance
func GetValidator() *Validator {
	if instance == nil {
		instance = NewValidator()
	}
	return instance
}

// NewValidator creates a new validator instance with custom rules and configuration
func NewValidator() *Validator {
	v := validator.New()

	_ = v.RegisterValidation("positive_decimal", validatePositiveDecimal)
	_ = v.RegisterValidation("nonzero_decimal", validateNonZeroDecimal)
	_ = v.RegisterValidation("percentage", validatePercentage)
	_ = v.RegisterValidation("currency_code", validateCurrencyCode)

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			name = strings.SplitN(fld.Tag.Get("query"), ",", 2)[0]
		}
		return name
	})

	return &Validator{validate: v}
}

// Struct validates s and returns validator.ValidationErrors on failure.
func (v *Validator) Struct(s interface{}) error {
	return v.validate.Struct(s)
}

// FieldErrors converts validation errors into field name to message pairs.
// Errors of any other kind are returned under the "request" key.
func FieldErrors(err error) map[string]string {
	result := make(map[string]string)

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		result["request"] = err.Error()
		return result
	}

	for _, fe := range validationErrors {
		result[fe.Field()] = messageFor(fe)
	}
	return result
}

func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "positive_decimal":
		return "must be a positive decimal amount with at most 2 decimal places"
	case "nonzero_decimal":
		return "must be a non-zero decimal amount with at most 2 decimal places"
	case "percentage":
		return "must be a number between 0 and 100"
	case "currency_code":
		return "must be a three-letter ISO 4217 code"
	case "datetime":
		return fmt.Sprintf("must be a date formatted as %s", fe.Param())
	case "uuid":
		return "must be a valid UUID"
	case "oneof":
		return fmt.Sprintf("must be one of: %s", fe.Param())
	case "min":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "hexcolor", "len":
		return "must be a #rrggbb color"
	default:
		return fmt.Sprintf("failed %s validation", fe.Tag())
	}
}

// Custom validation functions

func parseDecimalField(fl validator.FieldLevel) (decimal.Decimal, bool) {
	value := strings.TrimSpace(fl.Field().String())
	if value == "" {
		return decimal.Zero, false
	}
	amount, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Zero, false
	}
	return amount, true
}

// hasAtMostTwoDecimals rejects sub-cent precision
func hasAtMostTwoDecimals(amount decimal.Decimal) bool {
	return amount.Equal(amount.Truncate(2))
}

func validatePositiveDecimal(fl validator.FieldLevel) bool {
	amount, ok := parseDecimalField(fl)
	return ok && amount.IsPositive() && hasAtMostTwoDecimals(amount)
}

func validateNonZeroDecimal(fl validator.FieldLevel) bool {
	amount, ok := parseDecimalField(fl)
	return ok && !amount.IsZero() && hasAtMostTwoDecimals(amount)
}

func validatePercentage(fl validator.FieldLevel) bool {
	pct, ok := parseDecimalField(fl)
	return ok && !pct.IsNegative() && pct.LessThanOrEqual(decimal.NewFromInt(100))
}

func validateCurrencyCode(fl validator.FieldLevel) bool {
	return currencyCodeRegex.MatchString(fl.Field().String())
}
