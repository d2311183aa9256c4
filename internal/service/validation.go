package service

import (
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

const (
	// MinPasswordLength is the shortest accepted password.
	MinPasswordLength = 6
	// MaxPasswordBytes is the bcrypt input limit.
	MaxPasswordBytes = 72
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// isHTTPURL reports whether value is an absolute http or https URL.
func isHTTPURL(value string) bool {
	return validate.Var(value, "required,http_url") == nil
}

func isEmail(value string) bool {
	return validate.Var(value, "required,email") == nil
}

func normaliseEmail(value string) string {
	return strings.ToLower(strings.TrimSpace(value))
}

// validatePassword checks a password that is about to be hashed.
func validatePassword(password string) error {
	switch {
	case strings.TrimSpace(password) == "":
		return Validation(msgPasswordBlank)
	case len(password) < MinPasswordLength:
		return Validation(msgPasswordTooShort)
	case len(password) > MaxPasswordBytes:
		return Validation(msgPasswordTooLong)
	}
	return nil
}

// ParseID parses a path identifier. Only positive base-10 integers are
// accepted.
func ParseID(raw string) (uint, error) {
	trimmed := strings.TrimSpace(raw)
	id, err := strconv.ParseUint(trimmed, 10, 64)
	if err != nil || id == 0 || trimmed != raw {
		return 0, Validation(msgInvalidID)
	}
	return uint(id), nil
}

// requireText trims value and fails with message when nothing is left.
func requireText(value, message string) (string, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return "", Validation(message)
	}
	return trimmed, nil
}

// optionalText applies requireText to a present field and leaves absent
// fields nil.
func optionalText(value *string, message string) (*string, error) {
	if value == nil {
		return nil, nil
	}
	trimmed, err := requireText(*value, message)
	if err != nil {
		return nil, err
	}
	return &trimmed, nil
}

// optionalURL validates a present URL field.
func optionalURL(value *string, message string) (*string, error) {
	if value == nil {
		return nil, nil
	}
	trimmed := strings.TrimSpace(*value)
	if !isHTTPURL(trimmed) {
		return nil, Validation(message)
	}
	return &trimmed, nil
}
