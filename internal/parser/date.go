// Package parser turns user-supplied date text into target dates.
package parser

import (
	"strings"
	"time"

	"github.com/markusmobius/go-dateparser"

	"github.com/espian/ticktock/internal/errors"
	"github.com/espian/ticktock/internal/model"
)

// ParseTargetDate parses a target date from user input. The canonical
// stored layout is tried first so round-tripped text always parses the
// same way; anything else goes through natural language parsing, so
// "tomorrow", "dec 25" and "in 3 weeks" all work.
func ParseTargetDate(input string, now time.Time) (time.Time, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return time.Time{}, errors.NewUserError("Date cannot be empty", "Provide a target date, e.g. 'December 25, 2025' or 'tomorrow'")
	}

	if t, err := model.ParseDate(input); err == nil {
		return t, nil
	}

	cfg := &dateparser.Configuration{
		CurrentTime: now,
	}

	result, err := dateparser.Parse(cfg, input)
	if err != nil {
		return time.Time{}, errors.NewUserErrorWithField("date", input,
			"Cannot understand date",
			"Use a form like 'December 25, 2025', '2025-12-25' or 'next friday'")
	}

	return result.Time, nil
}
