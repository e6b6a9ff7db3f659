package tui

import (
	"context"
	"slices"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	"github.com/rshade/listbox/internal/listbox"
	"github.com/rshade/listbox/internal/logging"
	listview "github.com/rshade/listbox/internal/tui/list"
)

const (
	defaultWidth      = 80
	defaultListHeight = 10
)

// ViewState is the lifecycle state of the program.
type ViewState int

const (
	// ViewStateList is the interactive listbox.
	ViewStateList ViewState = iota
	// ViewStateDone means the user finished; the selection is the result.
	ViewStateDone
	// ViewStateCancelled means the user aborted.
	ViewStateCancelled
)

// SelectionChangedMsg reports a proposed selection.
type SelectionChangedMsg struct {
	Selected []string
}

// Options configures the program around the listbox.
type Options struct {
	// Title is shown above the rows. Defaults to the accessible label.
	Title string

	// Description is shown under the title.
	Description string

	// Height is the viewport height of a virtualized listbox. Zero fits
	// the window.
	Height int

	// ConfirmOnEnter finishes the program after Enter in single modes.
	ConfirmOnEnter bool

	// KeyMap overrides the default bindings for the mode.
	KeyMap *KeyMap
}

// Model is the Bubble Tea model for an interactive listbox.
//
//nolint:recvcheck // Bubble Tea requires value receivers for Init/Update/View interface methods.
type Model struct {
	lb     *listbox.Listbox
	list   *listview.Model[listbox.Row]
	rows   []listbox.Row
	keys   KeyMap
	help   help.Model
	logger zerolog.Logger

	title          string
	description    string
	state          ViewState
	width          int
	height         int
	fixedHeight    int
	confirmOnEnter bool

	// hover is the option under the pointer.
	hover string

	// changes collects selections proposed by the listbox until they are
	// turned into messages.
	changes *[][]string
}

// NewModel builds the listbox and the program model around it. The
// container starts focused.
func NewModel(ctx context.Context, cfg listbox.Config, children []listbox.Node, opts Options) (Model, error) {
	changes := &[][]string{}
	onChange := cfg.OnChange
	cfg.OnChange = func(selected []string) {
		*changes = append(*changes, selected)
		if onChange != nil {
			onChange(slices.Clone(selected))
		}
	}

	lb, err := listbox.New(ctx, cfg, children...)
	if err != nil {
		return Model{}, err
	}
	lb.Focus()

	keys := DefaultKeyMap(cfg.Mode)
	if opts.KeyMap != nil {
		keys = *opts.KeyMap
	}

	title := opts.Title
	if title == "" {
		title = cfg.AriaLabel
	}

	// Without virtualization every row is drawn.
	listHeight := 0
	if cfg.Virtualized {
		listHeight = opts.Height
		if listHeight <= 0 {
			listHeight = defaultListHeight
		}
	}

	m := Model{
		lb:             lb,
		rows:           lb.Rows(),
		keys:           keys,
		help:           help.New(),
		logger:         logging.ComponentLogger(*logging.FromContext(ctx), "tui"),
		title:          title,
		description:    opts.Description,
		state:          ViewStateList,
		width:          defaultWidth,
		fixedHeight:    opts.Height,
		confirmOnEnter: opts.ConfirmOnEnter,
		changes:        changes,
	}
	m.help.Width = defaultWidth
	m.list = listview.NewModel(m.rows, listHeight, defaultWidth, renderRow())
	return m, nil
}

// Init initializes the model (Bubble Tea interface).
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state (Bubble Tea interface).
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
	case tea.FocusMsg:
		m.lb.Focus()
	case tea.BlurMsg:
		m.lb.Blur()
	case tea.KeyMsg:
		m, cmd = m.handleKey(msg)
	case tea.MouseMsg:
		m.handleMouse(msg)
	case SelectionChangedMsg:
		return m, nil
	}

	m.syncCursor()
	return m, tea.Batch(m.drainChanges(), cmd)
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case m.state != ViewStateList:
		return m, nil
	case key.Matches(msg, m.keys.Cancel):
		m.state = ViewStateCancelled
		m.logger.Debug().Msg("cancelled")
		return m, tea.Quit
	case key.Matches(msg, m.keys.Quit):
		m.state = ViewStateDone
		m.logger.Debug().Strs("selected", m.lb.Selected()).Msg("done")
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case key.Matches(msg, m.keys.Focus):
		if m.lb.Focused() {
			m.lb.Blur()
		} else {
			m.lb.Focus()
		}
		return m, nil
	}

	in, ok := m.keys.Input(msg)
	if !ok {
		return m, nil
	}

	out := m.lb.HandleKey(in)
	// Enter without an active option commits nothing and does not finish.
	if m.confirmOnEnter && out.Select != nil && in.Key == listbox.KeyEnter && !m.lb.Mode().Multiselect() {
		m.state = ViewStateDone
		m.logger.Debug().Strs("selected", m.lb.Selected()).Msg("confirmed")
		return m, tea.Quit
	}
	return m, nil
}

// handleMouse turns terminal mouse events into press, click and leave
// intents on the option under the pointer.
func (m *Model) handleMouse(msg tea.MouseMsg) {
	if m.state != ViewStateList {
		return
	}

	value, onOption := m.optionAt(msg.Y)

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft && onOption {
			m.lb.Press(value)
		}
	case tea.MouseActionRelease:
		m.lb.Release(value)
	case tea.MouseActionMotion:
		if m.hover != "" && m.hover != value {
			m.lb.Leave(m.hover, msg.Button == tea.MouseButtonLeft)
		}
	}
	m.hover = value
}

// optionAt returns the option drawn on screen line y.
func (m Model) optionAt(y int) (string, bool) {
	idx, ok := m.list.ItemAt(y - m.listTop())
	if !ok || idx >= len(m.rows) || m.rows[idx].Option == nil {
		return "", false
	}
	return m.rows[idx].Option.Value(), true
}

func (m *Model) resize(width, height int) {
	m.width = width
	m.height = height
	m.help.Width = width

	if !m.lb.Config().Virtualized {
		m.list.SetSize(width, 0)
		return
	}

	listHeight := m.fixedHeight
	if listHeight <= 0 {
		listHeight = max(height-m.listTop()-lipgloss.Height(m.help.View(m.keys)), 1)
	}
	m.list.SetSize(width, listHeight)
}

// syncCursor keeps the active option inside the window.
func (m Model) syncCursor() {
	active := m.lb.Active()
	if active == "" {
		return
	}
	for i, row := range m.rows {
		if row.Option != nil && row.Option.Value() == active {
			m.list.SetCursor(i)
			return
		}
	}
}

func (m Model) drainChanges() tea.Cmd {
	if len(*m.changes) == 0 {
		return nil
	}

	cmds := make([]tea.Cmd, 0, len(*m.changes))
	for _, selected := range *m.changes {
		cmds = append(cmds, func() tea.Msg {
			return SelectionChangedMsg{Selected: selected}
		})
	}
	*m.changes = nil

	if len(cmds) == 1 {
		return cmds[0]
	}
	return tea.Sequence(cmds...)
}

// SetChildren replaces the options, keeping the selection and the nodes
// of options that still exist.
func (m *Model) SetChildren(children ...listbox.Node) error {
	if err := m.lb.SetChildren(children...); err != nil {
		return err
	}
	m.rows = m.lb.Rows()
	m.list.SetItems(m.rows)
	m.syncCursor()
	return nil
}

// SetValue feeds a caller-owned selection back into the listbox.
func (m Model) SetValue(selected []string) {
	m.lb.SetValue(selected)
}

// Listbox returns the wrapped container.
func (m Model) Listbox() *listbox.Listbox {
	return m.lb
}

// State returns the lifecycle state.
func (m Model) State() ViewState {
	return m.state
}

// Selected returns the current selection.
func (m Model) Selected() []string {
	return m.lb.Selected()
}
