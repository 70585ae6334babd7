package output

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/espian/ticktock/internal/errors"
	"github.com/espian/ticktock/internal/model"
)

// Styles for countdown rendering.
var (
	labelStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#7C3AED")) // Purple

	daysStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#10B981")) // Green

	pastStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#F59E0B")) // Yellow

	dateStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6B7280")) // Gray

	errorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#EF4444")) // Red

	hintStyle = lipgloss.NewStyle().
			Italic(true).
			Foreground(lipgloss.Color("#6B7280")) // Gray
)

// CLIFormatter renders output for human consumption.
type CLIFormatter struct {
	f *Formatter
}

// NewCLIFormatter creates a CLI formatter.
func NewCLIFormatter(f *Formatter) *CLIFormatter {
	return &CLIFormatter{f: f}
}

// DaysText renders a days-remaining value the way the app speaks about it.
func DaysText(days int) string {
	switch {
	case days == 1:
		return "today"
	case days == 2:
		return "tomorrow"
	case days > 1:
		return fmt.Sprintf("%d days", days)
	case days == 0:
		return "1 day ago"
	default:
		return fmt.Sprintf("%d days ago", -days+1)
	}
}

// PrintCountdown renders one countdown line with its computed days value.
func (c *CLIFormatter) PrintCountdown(cd model.Countdown, days int, hasDays bool) {
	display := cd.Date
	if t, err := cd.TargetDate(); err == nil {
		display = t.Format(model.DisplayDateFormat)
	}

	label := cd.Label
	if label == "" {
		label = cd.IDString()
	}

	daysText := "…"
	if hasDays {
		daysText = DaysText(days)
	}

	if c.f.IsColorEnabled() {
		style := daysStyle
		if hasDays && days <= 0 {
			style = pastStyle
		}
		c.f.Printf("%4d  %s  %s  %s\n",
			cd.ID,
			labelStyle.Render(label),
			dateStyle.Render(display),
			style.Render(daysText))
		return
	}

	c.f.Printf("%4d  %s  %s  %s\n", cd.ID, label, display, daysText)
}

// PrintMessage renders an informational message.
func (c *CLIFormatter) PrintMessage(msg string) {
	c.f.Println(msg)
}

// PrintError renders a failure. UserErrors come with their suggestion;
// anything else is printed as-is.
func (c *CLIFormatter) PrintError(err error) {
	msg := err.Error()
	if c.f.IsColorEnabled() {
		msg = errorStyle.Render(msg)
	}
	c.f.Println(msg)

	if ue, ok := errors.AsUserError(err); ok && ue.Suggestion != "" {
		hint := ue.Suggestion
		if c.f.IsColorEnabled() {
			hint = hintStyle.Render(hint)
		}
		c.f.Println(hint)
	}
}
