package listbox

import (
	"fmt"
	"strings"
)

// Mode selects how the listbox commits selection. Multiselect and
// selection-follows-focus are distinct modes, so no configuration can ask
// for both.
type Mode int

const (
	// ModeSingle selects at most one option, committed with Space, Enter
	// or a click.
	ModeSingle Mode = iota
	// ModeSingleFollowsFocus selects at most one option and moves the
	// selection together with the active option.
	ModeSingleFollowsFocus
	// ModeMulti selects any number of options.
	ModeMulti
)

// String returns the configuration name of the mode.
func (m Mode) String() string {
	switch m {
	case ModeSingle:
		return "single"
	case ModeSingleFollowsFocus:
		return "follow-focus"
	case ModeMulti:
		return "multi"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// Multiselect reports whether more than one option may be selected.
func (m Mode) Multiselect() bool {
	return m == ModeMulti
}

// SelectionFollowsFocus reports whether moving the cursor commits selection.
func (m Mode) SelectionFollowsFocus() bool {
	return m == ModeSingleFollowsFocus
}

// Valid reports whether m is a known mode.
func (m Mode) Valid() bool {
	return m >= ModeSingle && m <= ModeMulti
}

// ParseMode converts a configuration name into a Mode.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "single":
		return ModeSingle, nil
	case "follow-focus", "follows-focus", "single-follows-focus":
		return ModeSingleFollowsFocus, nil
	case "multi", "multiselect", "multiple":
		return ModeMulti, nil
	default:
		return ModeSingle, fmt.Errorf("%w: %q", ErrInvalidMode, s)
	}
}

// Config is the public configuration surface of a Listbox.
type Config struct {
	// AriaLabel and AriaLabelledBy name the listbox. Exactly one is required.
	AriaLabel      string
	AriaLabelledBy string

	// AriaDescribedBy optionally references a description element.
	AriaDescribedBy string

	Mode Mode

	// Value, when non-nil, makes the selection controlled: the listbox only
	// proposes changes through OnChange and the caller feeds the accepted
	// value back with SetValue.
	Value *[]string

	// DefaultValue seeds the selection when it is not controlled.
	DefaultValue []string

	// OnChange receives every proposed selection.
	OnChange func(selected []string)

	// Virtualized opts into windowed rendering. The registry is keyed by
	// option value, so windowing never changes the navigation order.
	Virtualized bool
}

// Validate checks the accessible name and the mode.
func (c Config) Validate() error {
	hasLabel := c.AriaLabel != ""
	hasLabelledBy := c.AriaLabelledBy != ""

	switch {
	case !hasLabel && !hasLabelledBy:
		return ErrMissingAccessibleName
	case hasLabel && hasLabelledBy:
		return ErrConflictingAccessibleName
	}

	if !c.Mode.Valid() {
		return fmt.Errorf("%w: %d", ErrInvalidMode, int(c.Mode))
	}
	return nil
}
