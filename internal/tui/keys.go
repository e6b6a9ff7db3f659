package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rshade/listbox/internal/listbox"
)

// KeyMap binds terminal keys to listbox inputs and program actions.
type KeyMap struct {
	Up         key.Binding
	Down       key.Binding
	ExtendUp   key.Binding
	ExtendDown key.Binding
	Home       key.Binding
	End        key.Binding
	RangeHome  key.Binding
	RangeEnd   key.Binding
	SelectAll  key.Binding
	Toggle     key.Binding
	Confirm    key.Binding
	Focus      key.Binding
	Help       key.Binding
	Quit       key.Binding
	Cancel     key.Binding
}

// DefaultKeyMap returns the bindings for mode. Range and select-all
// bindings only exist in multiselect mode; elsewhere their keys fall back
// to plain navigation.
func DefaultKeyMap(mode listbox.Mode) KeyMap {
	km := KeyMap{
		Up:         key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:       key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		ExtendUp:   key.NewBinding(key.WithKeys("shift+up"), key.WithHelp("shift+↑", "toggle up")),
		ExtendDown: key.NewBinding(key.WithKeys("shift+down"), key.WithHelp("shift+↓", "toggle down")),
		Home:       key.NewBinding(key.WithKeys("home", "ctrl+home", "shift+home"), key.WithHelp("home", "first")),
		End:        key.NewBinding(key.WithKeys("end", "ctrl+end", "shift+end"), key.WithHelp("end", "last")),
		RangeHome:  key.NewBinding(key.WithKeys("ctrl+shift+home"), key.WithHelp("ctrl+shift+home", "select to first")),
		RangeEnd:   key.NewBinding(key.WithKeys("ctrl+shift+end"), key.WithHelp("ctrl+shift+end", "select to last")),
		SelectAll:  key.NewBinding(key.WithKeys("ctrl+a"), key.WithHelp("ctrl+a", "select all")),
		Toggle:     key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "select")),
		Confirm:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select")),
		Focus:      key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "focus")),
		Help:       key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:       key.NewBinding(key.WithKeys("q", "esc"), key.WithHelp("q", "quit")),
		Cancel:     key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "cancel")),
	}

	if mode.Multiselect() {
		km.Toggle.SetHelp("space", "toggle")
		km.Confirm.SetHelp("enter", "toggle")
		return km
	}

	km.Up.SetKeys("up", "k", "shift+up")
	km.Down.SetKeys("down", "j", "shift+down")
	km.Home.SetKeys("home", "ctrl+home", "shift+home", "ctrl+shift+home")
	km.End.SetKeys("end", "ctrl+end", "shift+end", "ctrl+shift+end")
	for _, b := range []*key.Binding{&km.ExtendUp, &km.ExtendDown, &km.RangeHome, &km.RangeEnd, &km.SelectAll} {
		b.SetEnabled(false)
	}
	return km
}

// Input translates a key press into a listbox input.
func (k KeyMap) Input(msg tea.KeyMsg) (listbox.Input, bool) {
	switch {
	case key.Matches(msg, k.ExtendUp):
		return listbox.Input{Key: listbox.KeyArrowUp, Shift: true}, true
	case key.Matches(msg, k.ExtendDown):
		return listbox.Input{Key: listbox.KeyArrowDown, Shift: true}, true
	case key.Matches(msg, k.Up):
		return listbox.Input{Key: listbox.KeyArrowUp}, true
	case key.Matches(msg, k.Down):
		return listbox.Input{Key: listbox.KeyArrowDown}, true
	case key.Matches(msg, k.RangeHome):
		return listbox.Input{Key: listbox.KeyHome, Shift: true, Ctrl: true}, true
	case key.Matches(msg, k.RangeEnd):
		return listbox.Input{Key: listbox.KeyEnd, Shift: true, Ctrl: true}, true
	case key.Matches(msg, k.Home):
		return listbox.Input{Key: listbox.KeyHome}, true
	case key.Matches(msg, k.End):
		return listbox.Input{Key: listbox.KeyEnd}, true
	case key.Matches(msg, k.SelectAll):
		return listbox.Input{Key: listbox.KeyA, Ctrl: true}, true
	case key.Matches(msg, k.Toggle):
		return listbox.Input{Key: listbox.KeySpace}, true
	case key.Matches(msg, k.Confirm):
		return listbox.Input{Key: listbox.KeyEnter}, true
	default:
		return listbox.Input{}, false
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Toggle, k.Quit, k.Help}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Home, k.End},
		{k.ExtendUp, k.ExtendDown, k.RangeHome, k.RangeEnd, k.SelectAll},
		{k.Toggle, k.Confirm, k.Focus},
		{k.Help, k.Quit, k.Cancel},
	}
}
