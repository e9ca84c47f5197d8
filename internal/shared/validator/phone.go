package validator

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

var (
	// phoneRegex matches Korean mobile numbers with hyphens (fits the 13 char phone column)
	// Formats: 010-1234-5678, 010-123-4567
	phoneRegex = regexp.MustCompile(`^010-\d{3,4}-\d{4}$`)
)

// ValidatePhone validates a Korean mobile phone number
func ValidatePhone(fl validator.FieldLevel) bool {
	return phoneRegex.MatchString(fl.Field().String())
}
