package cmd

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/espian/ticktock/internal/countdown"
	"github.com/espian/ticktock/internal/model"
	"github.com/espian/ticktock/internal/output"
	"github.com/espian/ticktock/internal/runtime"
	"github.com/espian/ticktock/internal/storage"
)

// setupTestContext wires the shared command context to an in-memory store
// and a buffered writer, returning the buffer for output assertions.
func setupTestContext(t *testing.T, format output.Format) *bytes.Buffer {
	db, err := storage.Open(storage.Options{InMemory: true})
	require.NoError(t, err)

	pool := countdown.NewPool(countdown.DefaultWorkers)

	buf := &bytes.Buffer{}
	f := output.NewFormatter()
	f.Writer = buf
	f.Format = format
	f.ColorMode = output.ColorNever

	ctx = &runtime.Context{
		DB:         db,
		Countdowns: storage.NewCountdownRepo(db),
		Pool:       pool,
		Formatter:  f,
	}
	t.Cleanup(func() {
		ctx.Close()
		ctx = nil
	})
	return buf
}

func decodeStatus(t *testing.T, buf *bytes.Buffer) output.Status {
	var st output.Status
	require.NoError(t, json.Unmarshal(buf.Bytes(), &st), "output is not a JSON status: %q", buf.String())
	return st
}

func TestAddSuccessJSON(t *testing.T) {
	buf := setupTestContext(t, output.FormatJSON)

	date := model.FormatDate(time.Now().AddDate(0, 0, 30))
	require.NoError(t, runAdd(addCmd, []string{"Launch", date}))

	st := decodeStatus(t, buf)
	assert.True(t, st.OK)
	assert.NotZero(t, st.ID)
}

func TestAddValidationErrorIsJSON(t *testing.T) {
	buf := setupTestContext(t, output.FormatJSON)

	require.NoError(t, runAdd(addCmd, []string{"", "December 25, 2026"}))

	st := decodeStatus(t, buf)
	assert.False(t, st.OK)
	assert.NotEmpty(t, st.Message)
}

func TestAddParseErrorIsJSON(t *testing.T) {
	buf := setupTestContext(t, output.FormatJSON)

	require.NoError(t, runAdd(addCmd, []string{"Launch", "not", "a", "date", "zzz"}))

	st := decodeStatus(t, buf)
	assert.False(t, st.OK)
	assert.NotEmpty(t, st.Message)
}

func TestAddValidationErrorIsProseOnCLI(t *testing.T) {
	buf := setupTestContext(t, output.FormatCLI)

	require.NoError(t, runAdd(addCmd, []string{"", "December 25, 2026"}))

	out := buf.String()
	assert.NotContains(t, out, `"ok"`)
	assert.NotEmpty(t, out)
}

func TestEditErrorsAreJSON(t *testing.T) {
	buf := setupTestContext(t, output.FormatJSON)

	editFlagLabel = "Party"
	editFlagDate = ""
	t.Cleanup(func() { editFlagLabel, editFlagDate = "", "" })

	require.NoError(t, runEdit(editCmd, []string{"99"}))

	st := decodeStatus(t, buf)
	assert.False(t, st.OK)
	assert.NotEmpty(t, st.Message)
}

func TestDeleteMissingRowIsJSON(t *testing.T) {
	buf := setupTestContext(t, output.FormatJSON)

	require.NoError(t, runDelete(deleteCmd, []string{"7"}))

	st := decodeStatus(t, buf)
	assert.False(t, st.OK)
	assert.NotEmpty(t, st.Message)
}
