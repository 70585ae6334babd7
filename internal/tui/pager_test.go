package tui

import (
	"errors"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/espian/ticktock/internal/countdown"
	"github.com/espian/ticktock/internal/model"
	"github.com/espian/ticktock/internal/storage"
)

func setupTestPager(t *testing.T) (*PagerModel, *storage.CountdownRepo) {
	db, err := storage.Open(storage.Options{InMemory: true})
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	repo := storage.NewCountdownRepo(db)

	pool := countdown.NewPool(countdown.DefaultWorkers)
	t.Cleanup(pool.Close)

	m, err := NewPagerModel(PagerConfig{Repo: repo, Pool: pool})
	require.NoError(t, err)
	return m, repo
}

// refresh runs the query command synchronously and feeds the snapshot back.
func refresh(t *testing.T, m *PagerModel) {
	msg := m.refreshCmd()()
	_, ok := msg.(refreshMsg)
	require.True(t, ok, "refresh should produce a snapshot, got %T", msg)
	m.Update(msg)
}

func pressKey(m *PagerModel, key string) tea.Cmd {
	var msg tea.KeyMsg
	switch key {
	case "enter":
		msg = tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		msg = tea.KeyMsg{Type: tea.KeyEsc}
	default:
		msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
	}
	_, cmd := m.Update(msg)
	return cmd
}

func typeText(m *PagerModel, text string) {
	for _, r := range text {
		m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

func futureDate(days int) string {
	return model.FormatDate(time.Now().AddDate(0, 0, days))
}

func TestNewKeybindingCreatesCountdown(t *testing.T) {
	m, repo := setupTestPager(t)
	refresh(t, m)

	pressKey(m, "n")
	assert.Equal(t, modeNewLabel, m.mode)

	typeText(m, "Launch")
	pressKey(m, "enter")
	assert.Equal(t, modeNewDate, m.mode)

	typeText(m, futureDate(30))
	cmd := pressKey(m, "enter")
	require.NotNil(t, cmd, "confirming the date should run the create command")
	assert.Equal(t, modeBrowse, m.mode)

	msg := cmd()
	result, ok := msg.(refreshMsg)
	require.True(t, ok, "create should end in a snapshot, got %T", msg)
	m.Update(msg)

	require.Equal(t, 1, result.result.Len())
	row, ok := result.result.At(0)
	require.True(t, ok)
	assert.Equal(t, "Launch", row.Label)
	assert.Equal(t, "LAUNCH", m.cache.Title(0))

	rows, err := repo.Query(storage.All())
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, futureDate(30), rows[0].Date)
}

func TestNewKeybindingRejectsEmptyLabel(t *testing.T) {
	m, _ := setupTestPager(t)
	refresh(t, m)

	pressKey(m, "n")
	pressKey(m, "enter")

	assert.Equal(t, modeNewLabel, m.mode, "empty label stays on the label prompt")
	assert.NotEmpty(t, m.message)
}

func TestNewKeybindingRejectsBadDate(t *testing.T) {
	m, repo := setupTestPager(t)
	refresh(t, m)

	pressKey(m, "n")
	typeText(m, "Launch")
	pressKey(m, "enter")
	typeText(m, "not a date at all zzz")
	cmd := pressKey(m, "enter")

	assert.Nil(t, cmd)
	assert.Equal(t, modeNewDate, m.mode, "bad date stays on the date prompt")
	assert.NotEmpty(t, m.message)

	rows, err := repo.Query(storage.All())
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestEscCancelsInputFlow(t *testing.T) {
	m, repo := setupTestPager(t)
	refresh(t, m)

	pressKey(m, "n")
	typeText(m, "Launch")
	pressKey(m, "esc")

	assert.Equal(t, modeBrowse, m.mode)
	assert.Equal(t, "Cancelled", m.message)

	rows, err := repo.Query(storage.All())
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestEditKeybindingUpdatesCountdown(t *testing.T) {
	m, repo := setupTestPager(t)
	date := futureDate(10)
	id, err := repo.Create("Birthday", date)
	require.NoError(t, err)
	refresh(t, m)

	pressKey(m, "e")
	require.Equal(t, modeEditLabel, m.mode)
	assert.Equal(t, "Birthday", m.input.Value(), "label prompt is prefilled")
	assert.Equal(t, id, m.editID)

	m.input.SetValue("Birthday Party")
	pressKey(m, "enter")
	require.Equal(t, modeEditDate, m.mode)
	assert.Equal(t, date, m.input.Value(), "date prompt is prefilled with the stored date")

	newDate := futureDate(11)
	m.input.SetValue(newDate)
	cmd := pressKey(m, "enter")
	require.NotNil(t, cmd)

	msg := cmd()
	_, ok := msg.(refreshMsg)
	require.True(t, ok, "edit should end in a snapshot, got %T", msg)
	m.Update(msg)

	got, err := repo.Get(id)
	require.NoError(t, err)
	assert.Equal(t, "Birthday Party", got.Label)
	assert.Equal(t, newDate, got.Date)
	assert.Equal(t, "BIRTHDAY PARTY", m.cache.Title(0))
}

func TestEditKeybindingOnEmptyState(t *testing.T) {
	m, _ := setupTestPager(t)
	refresh(t, m)

	cmd := pressKey(m, "e")
	assert.Nil(t, cmd)
	assert.Equal(t, modeBrowse, m.mode)
	assert.Equal(t, "Nothing to edit", m.message)
}

func TestEditReportsVanishedRow(t *testing.T) {
	m, repo := setupTestPager(t)
	id, err := repo.Create("Birthday", futureDate(10))
	require.NoError(t, err)
	refresh(t, m)

	pressKey(m, "e")
	pressKey(m, "enter")
	require.Equal(t, modeEditDate, m.mode)

	// The row goes away while the date is being typed.
	n, err := repo.Delete(id)
	require.NoError(t, err)
	require.EqualValues(t, 1, n)

	m.input.SetValue(futureDate(12))
	cmd := pressKey(m, "enter")
	require.NotNil(t, cmd)

	msg := cmd()
	em, ok := msg.(errMsg)
	require.True(t, ok, "zero-row update should surface a failure, got %T", msg)
	assert.Contains(t, em.err.Error(), "no longer exists")
}

func TestDeleteKeybindingRemovesCountdown(t *testing.T) {
	m, repo := setupTestPager(t)
	_, err := repo.Create("Birthday", futureDate(10))
	require.NoError(t, err)
	refresh(t, m)

	cmd := pressKey(m, "d")
	require.NotNil(t, cmd)

	msg := cmd()
	result, ok := msg.(refreshMsg)
	require.True(t, ok, "delete should end in a snapshot, got %T", msg)
	m.Update(msg)

	assert.Equal(t, 0, result.result.Len())
	rows, err := repo.Query(storage.All())
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestNavigationClearsError(t *testing.T) {
	m, repo := setupTestPager(t)
	_, err := repo.Create("Birthday", futureDate(10))
	require.NoError(t, err)
	_, err = repo.Create("Launch", futureDate(20))
	require.NoError(t, err)
	refresh(t, m)

	m.Update(errMsg{err: errors.New("store hiccup")})
	require.Error(t, m.err)

	pressKey(m, "right")
	assert.NoError(t, m.err)
	assert.Empty(t, m.message)

	m.Update(errMsg{err: errors.New("store hiccup")})
	pressKey(m, "left")
	assert.NoError(t, m.err)
}

func TestNavigationClamps(t *testing.T) {
	m, repo := setupTestPager(t)
	_, err := repo.Create("Birthday", futureDate(10))
	require.NoError(t, err)
	refresh(t, m)

	pressKey(m, "left")
	assert.Equal(t, 0, m.pos)
	pressKey(m, "right")
	assert.Equal(t, 0, m.pos, "single page cannot advance")
}

func TestPagerViewModes(t *testing.T) {
	m, repo := setupTestPager(t)
	refresh(t, m)

	view := m.View()
	assert.Contains(t, view, "NO ITEMS")

	_, err := repo.Create("Birthday", futureDate(10))
	require.NoError(t, err)
	refresh(t, m)

	view = m.View()
	assert.Contains(t, view, "BIRTHDAY")
	assert.Contains(t, view, "n new · e edit")

	pressKey(m, "n")
	view = m.View()
	assert.Contains(t, view, "New countdown: label")
	assert.Contains(t, view, "enter confirm")
}
