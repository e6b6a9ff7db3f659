package listbox

import (
	"context"
	"fmt"
	"slices"

	"github.com/rs/zerolog"

	"github.com/rshade/listbox/internal/controllable"
	"github.com/rshade/listbox/internal/logging"
	"github.com/rshade/listbox/internal/registry"
)

// Row is one flattened child with its mounted node.
type Row struct {
	Entry

	// Option is set for option rows.
	Option *OptionNode

	// Group is set for group heading rows.
	Group *GroupNode
}

// Listbox is the container. It owns the active option, the selection and
// the option registry; children only change them through the Context.
// A Listbox is driven from a single event loop and is not safe for
// concurrent use.
type Listbox struct {
	cfg    Config
	logger zerolog.Logger
	id     string

	active    string
	focused   bool
	pressed   string
	selection *controllable.State[[]string]
	registry  *registry.Registry[*OptionNode]
	ctx       *Context

	rows    []Row
	options map[string]*OptionNode
	groups  map[string]*GroupNode
}

// New validates cfg and builds a Listbox with the given children. The
// logger is taken from ctx.
func New(ctx context.Context, cfg Config, children ...Node) (*Listbox, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	lb := &Listbox{
		cfg: cfg,
		logger: logging.FromContext(ctx).With().
			Str("component", "listbox").
			Str("mode", cfg.Mode.String()).
			Logger(),
		id:       newID("listbox"),
		registry: registry.New[*OptionNode](),
		options:  make(map[string]*OptionNode),
		groups:   make(map[string]*GroupNode),
	}

	params := controllable.Params[[]string]{
		Initial:  slices.Clone(cfg.DefaultValue),
		OnChange: lb.selectionChanged,
		Equal:    controllable.SameSlice[string],
	}
	if cfg.Value != nil {
		value := slices.Clone(*cfg.Value)
		params.Value = &value
	}
	lb.selection = controllable.New(params)

	lb.ctx = &Context{
		Multiselect:      cfg.Mode.Multiselect(),
		GetActive:        func() string { return lb.active },
		GetSelected:      lb.selection.Get,
		OnActiveChange:   lb.setActive,
		OnSelectedChange: func(update func([]string) []string) { lb.selection.Update(update) },
		OnRegister:       lb.registry.Register,
		OnDeregister:     lb.registry.Deregister,
	}

	if err := lb.SetChildren(children...); err != nil {
		return nil, err
	}
	return lb, nil
}

// SetChildren replaces the children, the equivalent of a re-render. Options
// whose value disappeared are unmounted, new ones are mounted and kept ones
// are registered again at their new position. Invalid children leave the
// listbox unchanged.
func (lb *Listbox) SetChildren(children ...Node) error {
	entries := Flatten(children)
	if err := validateEntries(entries); err != nil {
		return fmt.Errorf("setting listbox children: %w", err)
	}

	// Every option mounts again below, so the registry is rebuilt in one
	// pass instead of re-registering each kept option in place.
	lb.registry.Reset()

	keep := make(map[string]struct{}, len(entries))
	for _, e := range entries {
		if e.Kind == EntryOption {
			keep[e.Value] = struct{}{}
		}
	}
	for value, node := range lb.options {
		if _, ok := keep[value]; !ok {
			node.Unmount()
			delete(lb.options, value)
		}
	}

	rows := make([]Row, len(entries))
	groups := make(map[string]*GroupNode)
	for i, e := range entries {
		rows[i].Entry = e
		switch e.Kind {
		case EntryGroup:
			key := groupKey(e)
			g, ok := lb.groups[key]
			if !ok {
				g = NewGroupNode(Group{Label: e.Text, DescribedBy: e.DescribedBy})
			}
			groups[key] = g
			rows[i].Group = g
		case EntryOption:
			node, ok := lb.options[e.Value]
			if !ok {
				node = NewOptionNode(lb.ctx, Option{Text: e.Text, Value: e.Value}, e.Position)
				lb.options[e.Value] = node
			}
			node.text = e.Text
			node.group = e.Group
			node.position = e.Position
			rows[i].Option = node
		}
	}

	// Every position is final before anything registers, so mounting in
	// authored order appends each option to the registry.
	for _, row := range rows {
		if row.Option != nil {
			row.Option.Mount()
		}
	}

	lb.rows = rows
	lb.groups = groups

	lb.logger.Debug().
		Int("rows", len(rows)).
		Int("options", lb.registry.Len()).
		Msg("children updated")
	return nil
}

func groupKey(e Entry) string {
	return fmt.Sprintf("%d/%s", e.Position, e.Text)
}

// Context returns the context handed to option nodes.
func (lb *Listbox) Context() *Context { return lb.ctx }

// Config returns the configuration the listbox was built with.
func (lb *Listbox) Config() Config { return lb.cfg }

// ID is the element id of the listbox.
func (lb *Listbox) ID() string { return lb.id }

// Mode returns the selection mode.
func (lb *Listbox) Mode() Mode { return lb.cfg.Mode }

// Rows returns the flattened children with their nodes.
func (lb *Listbox) Rows() []Row {
	return slices.Clone(lb.rows)
}

// Entries returns the flattened children without their nodes.
func (lb *Listbox) Entries() []Entry {
	entries := make([]Entry, len(lb.rows))
	for i, row := range lb.rows {
		entries[i] = row.Entry
	}
	return entries
}

// OptionNode returns the mounted option with value.
func (lb *Listbox) OptionNode(value string) (*OptionNode, bool) {
	return lb.registry.Get(value)
}

// OptionOrder returns the registered option values in document order.
func (lb *Listbox) OptionOrder() []string {
	return lb.registry.Keys()
}

// Active returns the active option value, or "".
func (lb *Listbox) Active() string { return lb.active }

// Selected returns a copy of the current selection.
func (lb *Listbox) Selected() []string {
	return slices.Clone(lb.selection.Get())
}

// Controlled reports whether the selection is owned by the caller.
func (lb *Listbox) Controlled() bool { return lb.selection.Controlled() }

// SetValue feeds the caller-owned selection back into a controlled listbox.
// On an uncontrolled listbox it switches to controlled mode.
func (lb *Listbox) SetValue(selected []string) {
	value := slices.Clone(selected)
	if value == nil {
		value = []string{}
	}
	lb.selection.SetExternal(&value)
}

// Focused reports whether the container has focus.
func (lb *Listbox) Focused() bool { return lb.focused }

// Focus gives the container keyboard focus.
func (lb *Listbox) Focus() {
	lb.focused = true
}

// Blur removes focus and clears the active option. The selection is kept.
func (lb *Listbox) Blur() {
	lb.focused = false
	lb.pressed = ""
	lb.setActive("")
}

// Snapshot returns the state the navigation engine works on.
func (lb *Listbox) Snapshot() Snapshot {
	return Snapshot{
		Order:    lb.registry.Keys(),
		Active:   lb.active,
		Selected: lb.selection.Get(),
		Mode:     lb.cfg.Mode,
	}
}

// HandleKey applies a key press. Keys are ignored while the container is
// not focused. The returned outcome reports whether the key was handled.
func (lb *Listbox) HandleKey(in Input) Outcome {
	if !lb.focused {
		return Outcome{Active: lb.active}
	}

	out := Apply(lb.Snapshot(), in)
	lb.setActive(out.Active)
	if out.Select != nil {
		lb.selection.Update(out.Select)
	}

	lb.logger.Debug().
		Int("key", int(in.Key)).
		Bool("shift", in.Shift).
		Bool("ctrl", in.Ctrl).
		Bool("handled", out.Handled).
		Str("active", lb.active).
		Msg("key applied")
	return out
}

// Press handles a primary button press on the option with value.
func (lb *Listbox) Press(value string) {
	node, ok := lb.registry.Get(value)
	if !ok {
		return
	}
	lb.focused = true
	lb.pressed = value
	node.MouseDown()
}

// Release handles the button release on the option with value. A release
// on the option that received the press is a click; anything else, and an
// option unmounted in between, cancels the press.
func (lb *Listbox) Release(value string) {
	pressed := lb.pressed
	lb.pressed = ""
	if pressed == "" || pressed != value {
		return
	}
	if node, ok := lb.registry.Get(value); ok {
		node.Click()
	}
}

// Leave reports that the pointer left the option with value.
func (lb *Listbox) Leave(value string, buttonHeld bool) {
	node, ok := lb.registry.Get(value)
	if !ok {
		return
	}
	node.MouseLeave(buttonHeld)
	if buttonHeld && lb.pressed == value {
		lb.pressed = ""
	}
}

// Pressed returns the option that received the outstanding press, or "".
func (lb *Listbox) Pressed() string { return lb.pressed }

// Attributes returns the accessibility attributes of the container.
func (lb *Listbox) Attributes() Attributes {
	attrs := Attributes{}.With("id", lb.id).With("role", "listbox")
	if lb.cfg.AriaLabel != "" {
		attrs = attrs.With("aria-label", lb.cfg.AriaLabel)
	}
	if lb.cfg.AriaLabelledBy != "" {
		attrs = attrs.With("aria-labelledby", lb.cfg.AriaLabelledBy)
	}
	if lb.cfg.AriaDescribedBy != "" {
		attrs = attrs.With("aria-describedby", lb.cfg.AriaDescribedBy)
	}
	return attrs.
		With("tabindex", "0").
		With("aria-multiselectable", boolAttr(lb.cfg.Mode.Multiselect()))
}

func (lb *Listbox) setActive(value string) {
	lb.active = value
}

func (lb *Listbox) selectionChanged(selected []string) {
	lb.logger.Debug().
		Strs("selected", selected).
		Bool("controlled", lb.selection.Controlled()).
		Msg("selection changed")
	if lb.cfg.OnChange != nil {
		lb.cfg.OnChange(slices.Clone(selected))
	}
}
