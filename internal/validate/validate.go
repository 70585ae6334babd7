// Package validate provides input validation helpers for the Ticktock CLI.
// Validation lives here, in the command layer's hands: the store accepts
// whatever it is given.
package validate

import (
	"time"
	"unicode/utf8"

	"github.com/espian/ticktock/internal/errors"
)

const (
	// MaxLabelLength is the maximum length for a countdown label.
	MaxLabelLength = 128

	// MaxYearsAhead bounds how far in the future a target date may be.
	MaxYearsAhead = 2
)

// Label validates a countdown label.
func Label(label string) error {
	if label == "" {
		return errors.NewUserError("Label cannot be empty", "Provide a label for the countdown")
	}
	if utf8.RuneCountInString(label) > MaxLabelLength {
		return errors.NewUserErrorWithField("label", label,
			"Label too long",
			"Labels must be 128 characters or fewer")
	}
	return nil
}

// TargetDate validates a target date against the allowed window.
func TargetDate(now, target time.Time) error {
	if target.After(now.AddDate(MaxYearsAhead, 0, 0)) {
		return errors.NewUserErrorWithField("date", target.Format("2006-01-02"),
			"Target date too far ahead",
			"Pick a date within the next 2 years")
	}
	return nil
}
