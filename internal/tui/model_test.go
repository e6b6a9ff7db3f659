package tui

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/listbox/internal/listbox"
)

var fruit = []listbox.Node{
	listbox.Option{Text: "Apple", Value: "apple"},
	listbox.Option{Text: "Banana", Value: "banana"},
	listbox.Option{Text: "Cherry", Value: "cherry"},
}

func newTestModel(t *testing.T, cfg listbox.Config, children []listbox.Node, opts Options) Model {
	t.Helper()
	if cfg.AriaLabel == "" && cfg.AriaLabelledBy == "" {
		cfg.AriaLabel = "Fruit"
	}
	m, err := NewModel(context.Background(), cfg, children, opts)
	require.NoError(t, err)
	return m
}

func keyMsg(k string) tea.KeyMsg {
	types := map[string]tea.KeyType{
		"up":             tea.KeyUp,
		"down":           tea.KeyDown,
		"shift+down":     tea.KeyShiftDown,
		"home":           tea.KeyHome,
		"end":            tea.KeyEnd,
		"ctrl+shift+end": tea.KeyCtrlShiftEnd,
		"ctrl+a":         tea.KeyCtrlA,
		"ctrl+c":         tea.KeyCtrlC,
		"enter":          tea.KeyEnter,
		"esc":            tea.KeyEsc,
		"tab":            tea.KeyTab,
		" ":              tea.KeySpace,
	}
	if t, ok := types[k]; ok {
		if t == tea.KeySpace {
			return tea.KeyMsg{Type: t, Runes: []rune{' '}}
		}
		return tea.KeyMsg{Type: t}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
}

// send runs msgs through the model and collects the messages produced by
// the returned commands.
func send(t *testing.T, m Model, msgs ...tea.Msg) (Model, []tea.Msg) {
	t.Helper()

	var out []tea.Msg
	for _, msg := range msgs {
		updated, cmd := m.Update(msg)
		var ok bool
		m, ok = updated.(Model)
		require.True(t, ok)
		out = append(out, collect(cmd)...)
	}
	return m, out
}

func keys(ks ...string) []tea.Msg {
	msgs := make([]tea.Msg, len(ks))
	for i, k := range ks {
		msgs[i] = keyMsg(k)
	}
	return msgs
}

func collect(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, collect(c)...)
		}
		return out
	}
	return []tea.Msg{msg}
}

func selectionMsgs(msgs []tea.Msg) [][]string {
	var out [][]string
	for _, msg := range msgs {
		if sc, ok := msg.(SelectionChangedMsg); ok {
			out = append(out, sc.Selected)
		}
	}
	return out
}

func hasQuit(msgs []tea.Msg) bool {
	for _, msg := range msgs {
		if _, ok := msg.(tea.QuitMsg); ok {
			return true
		}
	}
	return false
}

func mouse(action tea.MouseAction, button tea.MouseButton, y int) tea.MouseMsg {
	return tea.MouseMsg{X: 4, Y: y, Action: action, Button: button}
}

// TestNewModel verifies initial model state.
func TestNewModel(t *testing.T) {
	m := newTestModel(t, listbox.Config{}, fruit, Options{})

	assert.Equal(t, ViewStateList, m.State())
	assert.True(t, m.Listbox().Focused())
	assert.Nil(t, m.Init())
	assert.Empty(t, m.Selected())

	view := m.View()
	assert.Contains(t, view, "Fruit")
	assert.Contains(t, view, "Apple")
	assert.Contains(t, view, "Cherry")
	assert.Contains(t, view, "quit")
}

func TestNewModel_InvalidConfig(t *testing.T) {
	_, err := NewModel(context.Background(), listbox.Config{}, fruit, Options{})
	require.ErrorIs(t, err, listbox.ErrMissingAccessibleName)
}

// TestModel_SingleSelectConfirm verifies Enter selects and finishes.
func TestModel_SingleSelectConfirm(t *testing.T) {
	m := newTestModel(t, listbox.Config{}, fruit, Options{ConfirmOnEnter: true})

	m, msgs := send(t, m, keys("down", "down", "enter")...)

	assert.Equal(t, ViewStateDone, m.State())
	assert.Equal(t, []string{"banana"}, m.Selected())
	assert.Equal(t, [][]string{{"banana"}}, selectionMsgs(msgs))
	assert.True(t, hasQuit(msgs))
	assert.Empty(t, m.View())
}

func TestModel_EnterWithoutConfirm(t *testing.T) {
	m := newTestModel(t, listbox.Config{}, fruit, Options{})

	m, msgs := send(t, m, keys("down", "enter")...)

	assert.Equal(t, ViewStateList, m.State())
	assert.Equal(t, []string{"apple"}, m.Selected())
	assert.False(t, hasQuit(msgs))
	assert.Contains(t, m.View(), "* Apple")
}

// TestModel_EnterBeforeNavigating verifies Enter with no active option does not finish.
func TestModel_EnterBeforeNavigating(t *testing.T) {
	m := newTestModel(t, listbox.Config{}, fruit, Options{ConfirmOnEnter: true})

	m, msgs := send(t, m, keys("enter")...)

	assert.Equal(t, ViewStateList, m.State())
	assert.Empty(t, m.Selected())
	assert.Empty(t, m.Listbox().Active())
	assert.False(t, hasQuit(msgs))

	m, msgs = send(t, m, keys("down", "enter")...)
	assert.Equal(t, ViewStateDone, m.State())
	assert.Equal(t, []string{"apple"}, m.Selected())
	assert.True(t, hasQuit(msgs))
}

func TestModel_LogsWithContextLogger(t *testing.T) {
	var buf bytes.Buffer
	ctx := zerolog.New(&buf).Level(zerolog.DebugLevel).WithContext(context.Background())

	m, err := NewModel(ctx, listbox.Config{AriaLabel: "Fruit"}, fruit, Options{})
	require.NoError(t, err)

	_, msgs := send(t, m, keys("q")...)
	assert.True(t, hasQuit(msgs))
	assert.Contains(t, buf.String(), `"component":"tui"`)
	assert.Contains(t, buf.String(), `"message":"done"`)
}

// TestModel_MultiToggle verifies checkbox rendering and change messages.
func TestModel_MultiToggle(t *testing.T) {
	m := newTestModel(t, listbox.Config{Mode: listbox.ModeMulti}, fruit, Options{ConfirmOnEnter: true})

	m, msgs := send(t, m, keys("down", " ", "shift+down")...)

	assert.Equal(t, []string{"apple", "banana"}, m.Selected())
	assert.Equal(t, [][]string{{"apple"}, {"apple", "banana"}}, selectionMsgs(msgs))

	view := m.View()
	assert.Contains(t, view, "[x] Apple")
	assert.Contains(t, view, "[x] Banana")
	assert.Contains(t, view, "[ ] Cherry")

	// Enter toggles in multiselect and never finishes the program.
	m, msgs = send(t, m, keyMsg("enter"))
	assert.Equal(t, ViewStateList, m.State())
	assert.False(t, hasQuit(msgs))
	assert.Equal(t, []string{"apple"}, m.Selected())
}

func TestModel_SelectAll(t *testing.T) {
	multi := newTestModel(t, listbox.Config{Mode: listbox.ModeMulti}, fruit, Options{})
	multi, _ = send(t, multi, keyMsg("ctrl+a"))
	assert.Equal(t, []string{"apple", "banana", "cherry"}, multi.Selected())

	single := newTestModel(t, listbox.Config{}, fruit, Options{})
	single, msgs := send(t, single, keyMsg("ctrl+a"))
	assert.Empty(t, single.Selected())
	assert.Empty(t, selectionMsgs(msgs))
}

func TestModel_RangeSelect(t *testing.T) {
	m := newTestModel(t, listbox.Config{Mode: listbox.ModeMulti}, fruit, Options{})

	m, _ = send(t, m, keys("down", "down", "ctrl+shift+end")...)

	assert.Equal(t, "cherry", m.Listbox().Active())
	assert.ElementsMatch(t, []string{"banana", "cherry"}, m.Selected())
}

func TestModel_FollowFocus(t *testing.T) {
	m := newTestModel(t, listbox.Config{Mode: listbox.ModeSingleFollowsFocus}, fruit, Options{})

	m, msgs := send(t, m, keys("down", "down", "up")...)

	assert.Equal(t, []string{"apple"}, m.Selected())
	assert.Equal(t, [][]string{{"apple"}, {"banana"}, {"apple"}}, selectionMsgs(msgs))
}

// TestModel_FocusToggle verifies Tab and terminal focus reports.
func TestModel_FocusToggle(t *testing.T) {
	m := newTestModel(t, listbox.Config{}, fruit, Options{})

	m, _ = send(t, m, keys("down", "tab")...)
	assert.False(t, m.Listbox().Focused())
	assert.Empty(t, m.Listbox().Active(), "blur clears the active option")

	m, _ = send(t, m, keyMsg("down"))
	assert.Empty(t, m.Listbox().Active(), "keys are ignored without focus")

	m, _ = send(t, m, keyMsg("tab"))
	assert.True(t, m.Listbox().Focused())

	m, _ = send(t, m, keyMsg("down"), tea.BlurMsg{})
	assert.False(t, m.Listbox().Focused())
	assert.Empty(t, m.Listbox().Active())

	m, _ = send(t, m, tea.FocusMsg{})
	assert.True(t, m.Listbox().Focused())
}

// TestModel_QuitKeys verifies quit and cancel.
func TestModel_QuitKeys(t *testing.T) {
	tests := []struct {
		key   string
		state ViewState
	}{
		{key: "q", state: ViewStateDone},
		{key: "esc", state: ViewStateDone},
		{key: "ctrl+c", state: ViewStateCancelled},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			m := newTestModel(t, listbox.Config{}, fruit, Options{})

			m, msgs := send(t, m, keyMsg(tt.key))
			assert.Equal(t, tt.state, m.State())
			assert.True(t, hasQuit(msgs))

			m, _ = send(t, m, keyMsg("down"))
			assert.Empty(t, m.Listbox().Active(), "finished programs ignore keys")
		})
	}
}

// TestModel_MouseClick verifies press and release on the same row.
func TestModel_MouseClick(t *testing.T) {
	m := newTestModel(t, listbox.Config{}, fruit, Options{})
	m.Listbox().Blur()
	_ = m.View()

	// Line 0 is the title, so Banana is on line 2.
	m, msgs := send(t, m,
		mouse(tea.MouseActionPress, tea.MouseButtonLeft, 2),
		mouse(tea.MouseActionRelease, tea.MouseButtonNone, 2),
	)

	assert.True(t, m.Listbox().Focused(), "pressing an option focuses the listbox")
	assert.Equal(t, "banana", m.Listbox().Active())
	assert.Equal(t, []string{"banana"}, m.Selected())
	assert.Equal(t, [][]string{{"banana"}}, selectionMsgs(msgs))
}

func TestModel_Description(t *testing.T) {
	m := newTestModel(t, listbox.Config{}, fruit, Options{Description: "Pick one for lunch"})
	view := m.View()
	assert.Contains(t, view, "Pick one for lunch")

	// Title and description take lines 0 and 1, so Banana is on line 3.
	m, _ = send(t, m,
		mouse(tea.MouseActionPress, tea.MouseButtonLeft, 3),
		mouse(tea.MouseActionRelease, tea.MouseButtonNone, 3),
	)
	assert.Equal(t, []string{"banana"}, m.Selected())
}

// TestModel_MouseDragAway verifies that leaving the pressed row cancels the click.
func TestModel_MouseDragAway(t *testing.T) {
	m := newTestModel(t, listbox.Config{}, fruit, Options{})
	_ = m.View()

	m, _ = send(t, m, mouse(tea.MouseActionPress, tea.MouseButtonLeft, 1))
	assert.Equal(t, "apple", m.Listbox().Active())

	m, _ = send(t, m,
		mouse(tea.MouseActionMotion, tea.MouseButtonLeft, 3),
		mouse(tea.MouseActionRelease, tea.MouseButtonNone, 3),
	)

	assert.Empty(t, m.Listbox().Active(), "leaving with the button held clears the active option")
	assert.Empty(t, m.Selected())
}

func TestModel_MouseOutsideRows(t *testing.T) {
	m := newTestModel(t, listbox.Config{}, fruit, Options{})
	_ = m.View()

	m, _ = send(t, m,
		mouse(tea.MouseActionPress, tea.MouseButtonLeft, 0),
		mouse(tea.MouseActionRelease, tea.MouseButtonNone, 0),
		mouse(tea.MouseActionPress, tea.MouseButtonRight, 1),
		mouse(tea.MouseActionRelease, tea.MouseButtonNone, 1),
	)

	assert.Empty(t, m.Selected())
}

// TestModel_Groups verifies headings and that they are skipped.
func TestModel_Groups(t *testing.T) {
	children := []listbox.Node{
		listbox.Group{Label: "Citrus", Options: []listbox.Option{
			{Text: "Lemon", Value: "lemon"},
			{Text: "Lime", Value: "lime"},
		}},
		listbox.Option{Text: "Plum", Value: "plum"},
	}
	m := newTestModel(t, listbox.Config{}, children, Options{})

	view := m.View()
	assert.Contains(t, view, "CITRUS")
	assert.Contains(t, view, "Lemon")

	// Clicking the heading does nothing.
	m, _ = send(t, m,
		mouse(tea.MouseActionPress, tea.MouseButtonLeft, 1),
		mouse(tea.MouseActionRelease, tea.MouseButtonNone, 1),
	)
	assert.Empty(t, m.Selected())

	m, _ = send(t, m, keys("down", "down", "down", "enter")...)
	assert.Equal(t, []string{"plum"}, m.Selected())
}

// TestModel_Virtualized verifies windowing follows the active option.
func TestModel_Virtualized(t *testing.T) {
	children := make([]listbox.Node, 50)
	for i := range children {
		children[i] = listbox.Option{Text: fmt.Sprintf("Option %d", i), Value: fmt.Sprintf("o%d", i)}
	}
	m := newTestModel(t, listbox.Config{Virtualized: true}, children, Options{Height: 5})

	view := m.View()
	assert.Contains(t, view, "Option 0")
	assert.NotContains(t, view, "Option 10")

	m, _ = send(t, m, keyMsg("end"))
	view = m.View()
	assert.Contains(t, view, "Option 49")
	assert.NotContains(t, view, "Option 0")
	assert.Len(t, m.Listbox().OptionOrder(), 50, "windowing keeps every option registered")

	// Clicking inside the shifted window hits the right option.
	m, _ = send(t, m,
		mouse(tea.MouseActionPress, tea.MouseButtonLeft, 5),
		mouse(tea.MouseActionRelease, tea.MouseButtonNone, 5),
	)
	assert.Equal(t, []string{"o49"}, m.Selected())
}

func TestModel_WindowSize(t *testing.T) {
	children := make([]listbox.Node, 100)
	for i := range children {
		children[i] = listbox.Option{Text: fmt.Sprintf("Option %d", i), Value: fmt.Sprintf("o%d", i)}
	}
	m := newTestModel(t, listbox.Config{Virtualized: true}, children, Options{})

	m, _ = send(t, m, tea.WindowSizeMsg{Width: 60, Height: 12})

	lines := strings.Split(m.View(), "\n")
	assert.LessOrEqual(t, len(lines), 12)
	assert.Equal(t, 60, m.list.Width())
}

// TestModel_Controlled verifies that a controlled selection waits for SetValue.
func TestModel_Controlled(t *testing.T) {
	value := []string{}
	m := newTestModel(t, listbox.Config{Mode: listbox.ModeMulti, Value: &value}, fruit, Options{})

	m, msgs := send(t, m, keys("down", " ")...)
	proposed := selectionMsgs(msgs)
	require.Equal(t, [][]string{{"apple"}}, proposed)
	assert.Empty(t, m.Selected())

	m.SetValue(proposed[0])
	assert.Equal(t, []string{"apple"}, m.Selected())
	assert.Contains(t, m.View(), "[x] Apple")
}

func TestModel_SetChildren(t *testing.T) {
	m := newTestModel(t, listbox.Config{}, fruit, Options{})
	m, _ = send(t, m, keys("down", "down", "enter")...)

	require.NoError(t, m.SetChildren(
		listbox.Option{Text: "Banana", Value: "banana"},
		listbox.Option{Text: "Date", Value: "date"},
	))

	view := m.View()
	assert.NotContains(t, view, "Apple")
	assert.Contains(t, view, "Date")
	assert.Equal(t, []string{"banana"}, m.Selected())

	err := m.SetChildren(listbox.Option{Text: "Dup", Value: "x"}, listbox.Option{Text: "Dup", Value: "x"})
	require.ErrorIs(t, err, listbox.ErrDuplicateOptionValue)
}

func TestModel_EmptyList(t *testing.T) {
	m := newTestModel(t, listbox.Config{}, nil, Options{})

	assert.Contains(t, m.View(), "No options.")

	m, msgs := send(t, m, keys("down", "enter")...)
	assert.Empty(t, m.Selected())
	assert.Empty(t, selectionMsgs(msgs))
}

func TestKeyMap_Help(t *testing.T) {
	single := DefaultKeyMap(listbox.ModeSingle)
	assert.False(t, single.SelectAll.Enabled())
	in, ok := single.Input(keyMsg("shift+down"))
	require.True(t, ok)
	assert.Equal(t, listbox.Input{Key: listbox.KeyArrowDown}, in)

	multi := DefaultKeyMap(listbox.ModeMulti)
	assert.True(t, multi.SelectAll.Enabled())
	in, ok = multi.Input(keyMsg("shift+down"))
	require.True(t, ok)
	assert.Equal(t, listbox.Input{Key: listbox.KeyArrowDown, Shift: true}, in)

	_, ok = multi.Input(keyMsg("x"))
	assert.False(t, ok)

	assert.Len(t, multi.ShortHelp(), 5)
	assert.Len(t, multi.FullHelp(), 4)
}
