// Package model defines the domain models for Ticktock.
package model

import (
	"strconv"
	"time"
)

const (
	// DateFormat is the canonical long-form layout countdown dates are stored
	// with. Write and read paths must agree on it: rows written in one layout
	// cannot be parsed back in another.
	DateFormat = "January 2, 2006"

	// DisplayDateFormat is the medium-form layout used when rendering a date
	// back to the user.
	DisplayDateFormat = "Jan 2, 2006"
)

// Countdown is one countdown entry: a label and a target date, persisted as a
// single row. The Notify column is reserved in the schema and never written.
type Countdown struct {
	ID     int64  `json:"id"`
	Label  string `json:"label"`
	Date   string `json:"date"`
	Notify string `json:"-"`
}

// TargetDate parses the stored date text back into a date value.
func (c Countdown) TargetDate() (time.Time, error) {
	return time.Parse(DateFormat, c.Date)
}

// IDString returns the row id as text, used where a label is missing.
func (c Countdown) IDString() string {
	return strconv.FormatInt(c.ID, 10)
}

// FormatDate renders t in the canonical stored layout.
func FormatDate(t time.Time) string {
	return t.Format(DateFormat)
}

// ParseDate parses canonical stored date text.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateFormat, s)
}
