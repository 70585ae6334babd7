package output

import "github.com/espian/ticktock/internal/model"

// CountdownJSON is the machine-readable shape of one countdown.
type CountdownJSON struct {
	ID    int64  `json:"id"`
	Label string `json:"label"`
	Date  string `json:"date"`
	Days  *int   `json:"days_remaining,omitempty"`
}

// JSONFormatter renders output for machine consumption.
type JSONFormatter struct {
	f *Formatter
}

// NewJSONFormatter creates a JSON formatter.
func NewJSONFormatter(f *Formatter) *JSONFormatter {
	return &JSONFormatter{f: f}
}

func countdownJSON(cd model.Countdown, days int, hasDays bool) CountdownJSON {
	out := CountdownJSON{ID: cd.ID, Label: cd.Label, Date: cd.Date}
	if hasDays {
		d := days
		out.Days = &d
	}
	return out
}

// PrintCountdown renders one countdown as JSON.
func (j *JSONFormatter) PrintCountdown(cd model.Countdown, days int, hasDays bool) error {
	return j.f.JSON(countdownJSON(cd, days, hasDays))
}

// Entry pairs a countdown with its computed days value for list output.
type Entry struct {
	Countdown model.Countdown
	Days      int
	HasDays   bool
}

// PrintList renders a list of countdowns as a JSON array.
func (j *JSONFormatter) PrintList(entries []Entry) error {
	out := make([]CountdownJSON, 0, len(entries))
	for _, e := range entries {
		out = append(out, countdownJSON(e.Countdown, e.Days, e.HasDays))
	}
	return j.f.JSON(out)
}

// Status is the machine-readable result of a mutation.
type Status struct {
	OK      bool   `json:"ok"`
	ID      int64  `json:"id,omitempty"`
	Rows    int64  `json:"rows,omitempty"`
	Message string `json:"message,omitempty"`
}

// PrintStatus renders a mutation result as JSON.
func (j *JSONFormatter) PrintStatus(s Status) error {
	return j.f.JSON(s)
}
