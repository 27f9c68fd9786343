package tui

import (
	"context"
	"errors"
	"testing"

	"listfmt/internal/columns"
	"listfmt/internal/form"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeGenerator struct {
	calls    int
	requests []form.Request
	path     string
	err      error
}

func (f *fakeGenerator) generate(_ context.Context, req form.Request) (string, error) {
	f.calls++
	f.requests = append(f.requests, req)
	return f.path, f.err
}

func newTestModel(gen *fakeGenerator) model {
	return initialModel(context.Background(), gen.generate, UIConfig{ShowHelp: true})
}

func press(t *testing.T, m model, keys ...string) model {
	t.Helper()
	for _, k := range keys {
		var msg tea.KeyMsg
		switch k {
		case "enter":
			msg = tea.KeyMsg{Type: tea.KeyEnter}
		case "esc":
			msg = tea.KeyMsg{Type: tea.KeyEsc}
		case "tab":
			msg = tea.KeyMsg{Type: tea.KeyTab}
		case "down":
			msg = tea.KeyMsg{Type: tea.KeyDown}
		case "up":
			msg = tea.KeyMsg{Type: tea.KeyUp}
		case "right":
			msg = tea.KeyMsg{Type: tea.KeyRight}
		case "space":
			msg = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}
		next, _ := m.Update(msg)
		m = next.(model)
	}
	return m
}

// runCmd executes cmd and everything it batches, returning the messages.
func runCmd(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var msgs []tea.Msg
		for _, c := range batch {
			msgs = append(msgs, runCmd(c)...)
		}
		return msgs
	}
	return []tea.Msg{msg}
}

func findDone(t *testing.T, msgs []tea.Msg) generateDoneMsg {
	t.Helper()
	for _, msg := range msgs {
		if done, ok := msg.(generateDoneMsg); ok {
			return done
		}
	}
	require.FailNow(t, "no generateDoneMsg produced")
	return generateDoneMsg{}
}

func TestToggleDynamicColumns(t *testing.T) {
	m := newTestModel(&fakeGenerator{})

	m = press(t, m, "space", "down", "down", "enter")
	assert.Equal(t, []string{"prefecture", "email"}, m.form.DynamicColumns)

	m = press(t, m, "space")
	assert.Equal(t, []string{"prefecture"}, m.form.DynamicColumns)
}

func TestAddCustomColumn(t *testing.T) {
	m := newTestModel(&fakeGenerator{})

	m = press(t, m, "a")
	require.Equal(t, stateDialog, m.state)
	assert.True(t, m.form.DialogOpen)

	m = press(t, m, "N", "o", "t", "e", "s", "enter")
	assert.Equal(t, stateForm, m.state)
	assert.Equal(t, []columns.CustomColumn{{Name: "Notes", Type: columns.TypeFree}}, m.form.CustomColumns)
	assert.Equal(t, len(columns.DynamicCatalog), m.cursor, "cursor moves to the new column")
}

func TestAddCustomColumnLongName(t *testing.T) {
	m := newTestModel(&fakeGenerator{})
	m = press(t, m, "a")

	keys := make([]string, 80)
	for i := range keys {
		keys[i] = "b"
	}
	m = press(t, m, keys...)
	m = press(t, m, "enter")

	require.Len(t, m.form.CustomColumns, 1)
	assert.Len(t, m.form.CustomColumns[0].Name, 80, "name is not truncated")
}

func TestAddDropdownColumn(t *testing.T) {
	m := newTestModel(&fakeGenerator{})

	m = press(t, m, "a", "R", "e", "g", "i", "o", "n", "tab", "right")
	assert.Equal(t, columns.TypeDropdown, m.form.Draft.Type)

	m = press(t, m, "tab")
	assert.Equal(t, fieldOptions, m.focus)
	m = press(t, m, "A", ",", " ", ",", "B", ",", "enter")

	require.Len(t, m.form.CustomColumns, 1)
	assert.Equal(t, columns.CustomColumn{
		Name:    "Region",
		Type:    columns.TypeDropdown,
		Options: []string{"A", "B"},
	}, m.form.CustomColumns[0])
}

func TestTabSkipsOptionsForFreeColumns(t *testing.T) {
	m := press(t, newTestModel(&fakeGenerator{}), "a")
	assert.Equal(t, fieldName, m.focus)

	m = press(t, m, "tab")
	assert.Equal(t, fieldType, m.focus)
	m = press(t, m, "tab")
	assert.Equal(t, fieldName, m.focus)
}

func TestCommitWithoutNameShowsNotice(t *testing.T) {
	m := press(t, newTestModel(&fakeGenerator{}), "a", "enter")

	assert.Equal(t, stateNotice, m.state)
	assert.Equal(t, form.NameRequiredNotice, m.notice)
	assert.Empty(t, m.form.CustomColumns)
	assert.True(t, m.form.DialogOpen)

	m = press(t, m, "enter")
	assert.Equal(t, stateDialog, m.state, "dialog stays open after the notice")

	m = press(t, m, "X", "enter")
	assert.Len(t, m.form.CustomColumns, 1)
}

func TestCancelDialogDiscardsDraft(t *testing.T) {
	m := press(t, newTestModel(&fakeGenerator{}), "a", "M", "e", "m", "o", "esc")

	assert.Equal(t, stateForm, m.state)
	assert.Empty(t, m.form.CustomColumns)
	assert.Equal(t, "", m.form.Draft.Name)

	m = press(t, m, "a")
	assert.Equal(t, "", m.nameInput.Value())
}

func TestRemoveCustomColumn(t *testing.T) {
	m := newTestModel(&fakeGenerator{})
	for _, name := range []string{"A", "B", "C"} {
		m = press(t, m, "a", name, "enter")
	}
	require.Len(t, m.form.CustomColumns, 3)

	m = press(t, m, "up", "d")
	assert.Equal(t, []string{"A", "C"}, names(m.form.CustomColumns))

	m = press(t, m, "down", "d")
	assert.Equal(t, []string{"A"}, names(m.form.CustomColumns))
	assert.Equal(t, len(columns.DynamicCatalog), m.cursor, "cursor clamped to the last item")

	// Removing with the cursor on a catalog entry does nothing.
	m.cursor = 0
	m = press(t, m, "d")
	assert.Equal(t, []string{"A"}, names(m.form.CustomColumns))
}

func TestGenerateSuccess(t *testing.T) {
	gen := &fakeGenerator{path: "out/customer_list_format.xlsx"}
	m := press(t, newTestModel(gen), "space", "a", "N", "enter")

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("g")})
	m = next.(model)
	require.NotNil(t, cmd)
	assert.True(t, m.form.Busy)
	assert.Contains(t, m.View(), "Generating...")

	// Busy gates a second request.
	next, again := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("g")})
	m = next.(model)
	assert.Nil(t, again)

	done := findDone(t, runCmd(cmd))
	assert.Equal(t, 1, gen.calls)
	assert.Equal(t, form.Request{
		DynamicColumns: []string{"prefecture"},
		CustomColumns:  []columns.CustomColumn{{Name: "N", Type: columns.TypeFree}},
	}, gen.requests[0])

	next, _ = m.Update(done)
	m = next.(model)
	assert.False(t, m.form.Busy)
	assert.Equal(t, stateNotice, m.state)
	assert.Equal(t, form.NoticeInfo, m.notice.Kind)
	assert.Contains(t, m.notice.Text, "customer_list_format.xlsx")

	m = press(t, m, "enter")
	assert.Equal(t, stateForm, m.state)
	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("g")})
	assert.NotNil(t, cmd, "generate re-enabled")
}

func TestGenerateFailureKeepsConfiguration(t *testing.T) {
	gen := &fakeGenerator{err: errors.New("connection refused")}
	m := press(t, newTestModel(gen), "space", "a", "N", "enter")
	before := m.form

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("g")})
	m = next.(model)
	next, _ = m.Update(findDone(t, runCmd(cmd)))
	m = next.(model)

	assert.False(t, m.form.Busy)
	assert.Equal(t, form.GenerateFailedNotice, m.notice)
	assert.Equal(t, before.DynamicColumns, m.form.DynamicColumns)
	assert.Equal(t, before.CustomColumns, m.form.CustomColumns)
}

func TestFormStaysInteractiveWhileBusy(t *testing.T) {
	gen := &fakeGenerator{path: "x.xlsx"}
	m := newTestModel(gen)

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("g")})
	m = next.(model)
	require.True(t, m.form.Busy)

	m = press(t, m, "a", "Z", "enter", "space")
	assert.Len(t, m.form.CustomColumns, 1)
	assert.True(t, m.form.Busy)

	next, _ = m.Update(findDone(t, runCmd(cmd)))
	m = next.(model)
	assert.False(t, m.form.Busy)
	assert.Len(t, m.form.CustomColumns, 1)
}

func TestViewListsColumns(t *testing.T) {
	m := press(t, newTestModel(&fakeGenerator{}), "space", "a", "R", "tab", "right", "tab", "x", ",", "y", "enter")
	view := m.View()

	for _, label := range columns.RequiredColumns {
		assert.Contains(t, view, label)
	}
	assert.Contains(t, view, "[x] "+columns.DynamicCatalog[0].Label)
	assert.Contains(t, view, "options: x, y")
	assert.Contains(t, view, "Generate Excel format")
}

func names(cols []columns.CustomColumn) []string {
	out := make([]string, 0, len(cols))
	for _, c := range cols {
		out = append(out, c.Name)
	}
	return out
}
