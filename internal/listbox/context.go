package listbox

// Context is the read and mutate channel a Listbox hands to its option
// nodes. It is passed explicitly at construction; nodes never look it up.
//
// The zero value is inert: reads return empty state and writes are
// dropped, so an option built outside a listbox renders without effect.
type Context struct {
	Multiselect bool

	GetActive        func() string
	GetSelected      func() []string
	OnActiveChange   func(value string)
	OnSelectedChange func(update func(current []string) []string)
	OnRegister       func(node *OptionNode)
	OnDeregister     func(value string)
}

// Active returns the active option value, or "" when none is active.
func (c *Context) Active() string {
	if c == nil || c.GetActive == nil {
		return ""
	}
	return c.GetActive()
}

// Selected returns the selected option values.
func (c *Context) Selected() []string {
	if c == nil || c.GetSelected == nil {
		return nil
	}
	return c.GetSelected()
}

// IsMultiselect reports whether the owning listbox is multiselect.
func (c *Context) IsMultiselect() bool {
	return c != nil && c.Multiselect
}

// SetActive asks the listbox to move the cursor to value ("" clears it).
func (c *Context) SetActive(value string) {
	if c == nil || c.OnActiveChange == nil {
		return
	}
	c.OnActiveChange(value)
}

// UpdateSelected asks the listbox to replace the selection with the result
// of update applied to the current selection.
func (c *Context) UpdateSelected(update func(current []string) []string) {
	if c == nil || c.OnSelectedChange == nil {
		return
	}
	c.OnSelectedChange(update)
}

// Register adds node to the listbox registry.
func (c *Context) Register(node *OptionNode) {
	if c == nil || c.OnRegister == nil {
		return
	}
	c.OnRegister(node)
}

// Deregister removes the option with value from the listbox registry.
func (c *Context) Deregister(value string) {
	if c == nil || c.OnDeregister == nil {
		return
	}
	c.OnDeregister(value)
}
