package listbox

import "slices"

// OptionState is the derived visual and accessibility state of an option.
type OptionState struct {
	Active      bool
	Selected    bool
	Multiselect bool
}

// OptionNode is a mounted option. It registers itself with the listbox on
// Mount, reads its state from the Context, and turns pointer input into
// intents sent back through the Context. It never computes navigation.
type OptionNode struct {
	ctx      *Context
	text     string
	value    string
	group    string
	position int
	id       string
}

// NewOptionNode builds an option node bound to ctx. position is the authored
// index of the option; a negative position means it is not known yet.
func NewOptionNode(ctx *Context, opt Option, position int) *OptionNode {
	return &OptionNode{
		ctx:      ctx,
		text:     opt.Text,
		value:    opt.Value,
		position: position,
		id:       newID("option"),
	}
}

// Key implements registry.Registrant.
func (o *OptionNode) Key() string { return o.value }

// Position implements registry.Registrant.
func (o *OptionNode) Position() (int, bool) { return o.position, o.position >= 0 }

// ID is the element id of the option.
func (o *OptionNode) ID() string { return o.id }

// Text is the display text.
func (o *OptionNode) Text() string { return o.text }

// Value is the option identity.
func (o *OptionNode) Value() string { return o.value }

// Group is the label of the owning group, or "".
func (o *OptionNode) Group() string { return o.group }

// Mount registers the option.
func (o *OptionNode) Mount() {
	o.ctx.Register(o)
}

// Unmount deregisters the option.
func (o *OptionNode) Unmount() {
	o.ctx.Deregister(o.value)
}

// State derives the option state from the context.
func (o *OptionNode) State() OptionState {
	return OptionState{
		Active:      o.ctx.Active() == o.value,
		Selected:    slices.Contains(o.ctx.Selected(), o.value),
		Multiselect: o.ctx.IsMultiselect(),
	}
}

// Attributes returns the accessibility attributes of the option element.
// aria-selected is used in single-select and aria-checked in multiselect.
func (o *OptionNode) Attributes() Attributes {
	st := o.State()
	attrs := Attributes{}.With("id", o.id).With("role", "option")
	if st.Multiselect {
		return attrs.With("aria-checked", boolAttr(st.Selected))
	}
	return attrs.With("aria-selected", boolAttr(st.Selected))
}

// MouseDown makes the option active.
func (o *OptionNode) MouseDown() {
	o.ctx.SetActive(o.value)
}

// Click commits the option: toggle in multiselect, replace otherwise.
func (o *OptionNode) Click() {
	value, multi := o.value, o.ctx.IsMultiselect()
	o.ctx.UpdateSelected(func(current []string) []string {
		return Commit(current, value, multi)
	})
}

// MouseLeave clears the active option when the pointer is dragged off the
// option with the button held, cancelling the press.
func (o *OptionNode) MouseLeave(buttonHeld bool) {
	if buttonHeld {
		o.ctx.SetActive("")
	}
}

// GroupNode is a mounted group heading. It contributes no state.
type GroupNode struct {
	label       string
	describedBy string
	id          string
	labelID     string
}

// NewGroupNode builds a group node for g.
func NewGroupNode(g Group) *GroupNode {
	return &GroupNode{
		label:       g.Label,
		describedBy: g.DescribedBy,
		id:          newID("group"),
		labelID:     newID("group-label"),
	}
}

// Label is the heading text.
func (g *GroupNode) Label() string { return g.label }

// ID is the element id of the group.
func (g *GroupNode) ID() string { return g.id }

// LabelID is the element id of the rendered label.
func (g *GroupNode) LabelID() string { return g.labelID }

// Attributes returns the accessibility attributes of the group element.
func (g *GroupNode) Attributes() Attributes {
	attrs := Attributes{}.With("id", g.id).With("role", "group").With("aria-labelledby", g.labelID)
	if g.describedBy != "" {
		attrs = attrs.With("aria-describedby", g.describedBy)
	}
	return attrs
}

// LabelAttributes returns the attributes of the label element.
func (g *GroupNode) LabelAttributes() Attributes {
	return Attributes{}.With("id", g.labelID)
}
