// Package pager lazily materializes presentation pages from query results.
package pager

import "github.com/espian/ticktock/internal/model"

// Result is an ordered, positionally indexed snapshot of a query's match
// set. It is frozen at query time: store mutations after the query are
// invisible until the caller re-queries and swaps in a fresh Result.
type Result struct {
	rows []model.Countdown
}

// NewResult wraps query rows in a positional snapshot.
func NewResult(rows []model.Countdown) *Result {
	return &Result{rows: rows}
}

// Len returns the number of rows in the snapshot.
func (r *Result) Len() int {
	if r == nil {
		return 0
	}
	return len(r.rows)
}

// At returns the row at position, reporting false when out of range.
func (r *Result) At(position int) (model.Countdown, bool) {
	if r == nil || position < 0 || position >= len(r.rows) {
		return model.Countdown{}, false
	}
	return r.rows[position], true
}
