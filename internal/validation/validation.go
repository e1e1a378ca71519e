// Package validation holds the pure input checks shared by the CLI and the
// task service. All functions are side-effect free and safe for concurrent use.
package validation

import (
	"errors"
	"strings"
	"unicode/utf8"
)

const (
	// MaxDescriptionLen is the limit for console task descriptions.
	MaxDescriptionLen = 500
	// MaxTitleLen is the limit for API task titles.
	MaxTitleLen = 200
	// MaxLongDescriptionLen is the limit for API task descriptions.
	MaxLongDescriptionLen = 2000
)

var (
	ErrEmptyInput = errors.New("input cannot be empty")
	ErrTooLong    = errors.New("input exceeds maximum length")
	ErrInvalidID  = errors.New("task ID must be a positive integer")
)

// Text trims value and checks it against maxLen. It returns the trimmed
// value; validation always happens on the trimmed form.
func Text(value string, maxLen int) (string, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return "", ErrEmptyInput
	}
	if utf8.RuneCountInString(trimmed) > maxLen {
		return "", ErrTooLong
	}
	return trimmed, nil
}

// Description validates a console task description (1-500 characters).
func Description(value string) (string, error) {
	return Text(value, MaxDescriptionLen)
}

// TaskID validates a sequential task identifier.
func TaskID(id int) error {
	if id <= 0 {
		return ErrInvalidID
	}
	return nil
}
