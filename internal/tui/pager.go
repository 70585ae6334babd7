// Package tui provides the interactive terminal pager for Ticktock.
package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/espian/ticktock/internal/countdown"
	"github.com/espian/ticktock/internal/model"
	"github.com/espian/ticktock/internal/output"
	"github.com/espian/ticktock/internal/pager"
	"github.com/espian/ticktock/internal/parser"
	"github.com/espian/ticktock/internal/storage"
	"github.com/espian/ticktock/internal/validate"
)

// refreshMsg carries a fresh query snapshot into the model.
type refreshMsg struct {
	result *pager.Result
}

// daysMsg is a redraw poke: some page's async days value arrived.
type daysMsg struct{}

// errMsg is sent when a store operation fails.
type errMsg struct {
	err error
}

// mode tracks what keystrokes currently mean.
type mode int

const (
	modeBrowse mode = iota
	modeNewLabel
	modeNewDate
	modeEditLabel
	modeEditDate
)

// Styles for the pager view.
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#7C3AED")) // Purple

	daysBigStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#10B981")) // Green

	dateStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6B7280")) // Gray

	errStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#EF4444")) // Red

	footerStyle = lipgloss.NewStyle().
			Italic(true).
			Foreground(lipgloss.Color("#6B7280")) // Gray

	promptStyle = lipgloss.NewStyle().
			Bold(true)

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(1, 4)
)

// PagerModel is the bubbletea model for the countdown pager. It owns the
// page cache and is the single sequencing goroutine for it; only the days
// computation happens elsewhere.
type PagerModel struct {
	repo  *storage.CountdownRepo
	cache *pager.Cache

	pos    int
	width  int
	height int

	err     error
	message string

	// Input prompt state for the new/edit flows. draftLabel holds the
	// confirmed label while the date is being typed; editID is the row
	// being rewritten, zero for a new countdown.
	mode       mode
	input      textinput.Model
	draftLabel string
	draftDate  string
	editID     int64

	// updates is poked by async days deliveries; a pending listen command
	// turns each poke into a redraw.
	updates chan struct{}
}

// PagerConfig holds configuration for the pager.
type PagerConfig struct {
	Repo     *storage.CountdownRepo
	Pool     *countdown.Pool
	Capacity int
	Policy   pager.StalenessPolicy
}

// NewPagerModel creates a new pager model.
func NewPagerModel(cfg PagerConfig) (*PagerModel, error) {
	cache, err := pager.New(pager.Config{
		Capacity:   cfg.Capacity,
		Policy:     cfg.Policy,
		EmptyState: true,
		Pool:       cfg.Pool,
	})
	if err != nil {
		return nil, err
	}

	ti := textinput.New()
	ti.CharLimit = validate.MaxLabelLength
	ti.Width = 40

	return &PagerModel{
		repo:    cfg.Repo,
		cache:   cache,
		input:   ti,
		updates: make(chan struct{}, 1),
	}, nil
}

// Init initializes the model.
func (m *PagerModel) Init() tea.Cmd {
	return tea.Batch(m.refreshCmd(), m.listenCmd())
}

// Update handles messages and updates the model.
func (m *PagerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.mode != modeBrowse {
			return m.handleInputKey(msg)
		}
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case refreshMsg:
		m.cache.Swap(msg.result)
		if max := m.cache.Len() - 1; m.pos > max {
			m.pos = max
		}
		if m.pos < 0 {
			m.pos = 0
		}
		return m, nil

	case daysMsg:
		// The value itself lives on the page; arriving here just means
		// the view is stale.
		return m, m.listenCmd()

	case errMsg:
		m.err = msg.err
		return m, nil
	}

	return m, nil
}

func (m *PagerModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc", "ctrl+c":
		return m, tea.Quit

	case "left", "h":
		if m.pos > 0 {
			m.pos--
		}
		m.message = ""
		m.err = nil
		return m, nil

	case "right", "l":
		if m.pos < m.cache.Len()-1 {
			m.pos++
		}
		m.message = ""
		m.err = nil
		return m, nil

	case "r":
		m.message = ""
		m.err = nil
		return m, m.refreshCmd()

	case "n":
		return m.startNew()

	case "e":
		return m.startEdit()

	case "d":
		return m.deleteCurrent()
	}

	return m, nil
}

// handleInputKey drives the label/date prompts. Esc abandons the flow,
// enter confirms the current field, everything else goes to the input.
func (m *PagerModel) handleInputKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.leaveInput()
		m.message = "Cancelled"
		return m, nil

	case "ctrl+c":
		return m, tea.Quit

	case "enter":
		return m.confirmInput()

	default:
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
}

func (m *PagerModel) confirmInput() (tea.Model, tea.Cmd) {
	value := strings.TrimSpace(m.input.Value())

	switch m.mode {
	case modeNewLabel, modeEditLabel:
		if err := validate.Label(value); err != nil {
			m.message = err.Error()
			return m, nil
		}
		m.draftLabel = value
		m.input.Placeholder = "December 25, 2025"
		m.input.CharLimit = 0
		if m.mode == modeNewLabel {
			m.mode = modeNewDate
			m.input.SetValue("")
		} else {
			m.mode = modeEditDate
			m.input.SetValue(m.draftDate)
			m.input.CursorEnd()
		}
		return m, nil

	case modeNewDate, modeEditDate:
		now := time.Now()
		target, err := parser.ParseTargetDate(value, now)
		if err != nil {
			m.message = err.Error()
			return m, nil
		}
		if err := validate.TargetDate(now, target); err != nil {
			m.message = err.Error()
			return m, nil
		}

		label := m.draftLabel
		id := m.editID
		dateText := model.FormatDate(target)
		creating := m.mode == modeNewDate
		m.leaveInput()

		return m, func() tea.Msg {
			if creating {
				if _, err := m.repo.Create(label, dateText); err != nil {
					return errMsg{err: err}
				}
			} else {
				n, err := m.repo.Update(id, label, dateText)
				if err != nil {
					return errMsg{err: err}
				}
				if n == 0 {
					return errMsg{err: fmt.Errorf("countdown %d no longer exists", id)}
				}
			}
			rows, err := m.repo.Query(storage.All())
			if err != nil {
				return errMsg{err: err}
			}
			return refreshMsg{result: pager.NewResult(rows)}
		}
	}

	return m, nil
}

// startNew opens the label prompt for a fresh countdown.
func (m *PagerModel) startNew() (tea.Model, tea.Cmd) {
	m.mode = modeNewLabel
	m.editID = 0
	m.message = ""
	m.err = nil
	m.input.SetValue("")
	m.input.Placeholder = "Label"
	m.input.CharLimit = validate.MaxLabelLength
	m.input.Focus()
	return m, textinput.Blink
}

// startEdit opens the label prompt prefilled from the displayed countdown.
func (m *PagerModel) startEdit() (tea.Model, tea.Cmd) {
	page := m.currentPage()
	if page == nil || page.Kind == pager.KindEmpty {
		m.message = "Nothing to edit"
		return m, nil
	}

	m.mode = modeEditLabel
	m.editID = page.ID
	m.draftDate = page.DateText
	m.message = ""
	m.err = nil
	m.input.SetValue(page.Label)
	m.input.Placeholder = "Label"
	m.input.CharLimit = validate.MaxLabelLength
	m.input.CursorEnd()
	m.input.Focus()
	return m, textinput.Blink
}

func (m *PagerModel) leaveInput() {
	m.mode = modeBrowse
	m.draftLabel = ""
	m.draftDate = ""
	m.editID = 0
	m.input.Blur()
	m.input.SetValue("")
}

// deleteCurrent removes the displayed countdown and re-queries.
func (m *PagerModel) deleteCurrent() (tea.Model, tea.Cmd) {
	page := m.currentPage()
	if page == nil || page.Kind == pager.KindEmpty {
		m.message = "Nothing to delete"
		return m, nil
	}

	id := page.ID
	return m, func() tea.Msg {
		n, err := m.repo.Delete(id)
		if err != nil {
			return errMsg{err: err}
		}
		if n == 0 {
			return errMsg{err: fmt.Errorf("countdown %d was already gone", id)}
		}
		rows, err := m.repo.Query(storage.All())
		if err != nil {
			return errMsg{err: err}
		}
		return refreshMsg{result: pager.NewResult(rows)}
	}
}

// refreshCmd re-queries the store and swaps the snapshot in.
func (m *PagerModel) refreshCmd() tea.Cmd {
	return func() tea.Msg {
		rows, err := m.repo.Query(storage.All())
		if err != nil {
			return errMsg{err: err}
		}
		return refreshMsg{result: pager.NewResult(rows)}
	}
}

// listenCmd waits for the next async days delivery.
func (m *PagerModel) listenCmd() tea.Cmd {
	return func() tea.Msg {
		<-m.updates
		return daysMsg{}
	}
}

// currentPage realizes the page at the current position and hooks its async
// delivery into the update channel.
func (m *PagerModel) currentPage() *pager.Page {
	page := m.cache.Get(m.pos)
	if page == nil {
		return nil
	}
	page.OnDays(func(int) {
		select {
		case m.updates <- struct{}{}:
		default:
		}
	})
	return page
}

func (m *PagerModel) promptTitle() string {
	switch m.mode {
	case modeNewLabel:
		return "New countdown: label"
	case modeNewDate:
		return "New countdown: target date"
	case modeEditLabel:
		return "Edit countdown: label"
	case modeEditDate:
		return "Edit countdown: target date"
	}
	return ""
}

// View renders the pager.
func (m *PagerModel) View() string {
	var b strings.Builder

	page := m.currentPage()
	if page == nil {
		return "no pages\n"
	}

	var card string
	switch {
	case page.Kind == pager.KindEmpty:
		card = cardStyle.Render(
			titleStyle.Render(page.Title()) + "\n\n" +
				footerStyle.Render("Add a countdown with 'n'"))

	case page.Err != nil:
		card = cardStyle.Render(
			titleStyle.Render(page.Title()) + "\n\n" +
				errStyle.Render("Malformed date was stored"))

	default:
		daysText := "…"
		if days, ok := page.Days(); ok {
			daysText = output.DaysText(days)
		}
		card = cardStyle.Render(
			titleStyle.Render(page.Title()) + "\n\n" +
				daysBigStyle.Render(daysText) + "\n\n" +
				dateStyle.Render(page.DisplayDate))
	}

	b.WriteString(card)
	b.WriteString("\n")

	if m.mode != modeBrowse {
		b.WriteString(promptStyle.Render(m.promptTitle()) + "\n")
		b.WriteString(m.input.View() + "\n")
	}

	if m.message != "" {
		b.WriteString(m.message + "\n")
	}
	if m.err != nil {
		b.WriteString(errStyle.Render(m.err.Error()) + "\n")
	}

	var footer string
	if m.mode != modeBrowse {
		footer = "enter confirm · esc cancel"
	} else {
		footer = fmt.Sprintf("%d/%d  ←/→ navigate · n new · e edit · d delete · r refresh · q quit",
			m.pos+1, m.cache.Len())
	}
	b.WriteString(footerStyle.Render(footer))
	b.WriteString("\n")

	if m.width > 0 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, b.String())
	}
	return b.String()
}
