package listbox

import "slices"

// Key is a keyboard input the navigation engine understands.
type Key int

const (
	KeyNone Key = iota
	KeyArrowUp
	KeyArrowDown
	KeyHome
	KeyEnd
	// KeyA is the letter A; only Ctrl+A (select all) is meaningful.
	KeyA
	KeySpace
	KeyEnter
)

// Input is one key press with its modifiers. Ctrl also stands for the
// platform command key.
type Input struct {
	Key   Key
	Shift bool
	Ctrl  bool
}

// Snapshot is the state the engine reads to compute a transition.
type Snapshot struct {
	// Order is the registered option values in document order.
	Order    []string
	Active   string
	Selected []string
	Mode     Mode
}

// Outcome is a fully computed transition.
type Outcome struct {
	// Active is the active value after the transition.
	Active string

	// Select, when non-nil, is the single selection update of the
	// transition. It is applied to the selection current at commit time.
	Select func(current []string) []string

	// Handled reports that the key belongs to the listbox and must not be
	// passed on (the equivalent of preventing the default action).
	Handled bool
}

// IndexOf returns the index of value in the option order, or -1.
func (s Snapshot) IndexOf(value string) int {
	if value == "" {
		return -1
	}
	return slices.Index(s.Order, value)
}

// First returns the first option value, or "".
func (s Snapshot) First() string {
	if len(s.Order) == 0 {
		return ""
	}
	return s.Order[0]
}

// Last returns the last option value, or "".
func (s Snapshot) Last() string {
	if len(s.Order) == 0 {
		return ""
	}
	return s.Order[len(s.Order)-1]
}

// Current returns the navigation reference and its index. It is the active
// option; in single-select modes with nothing active it falls back to the
// first selected option. Values missing from the order count as no
// reference, reported as ("", -1).
func (s Snapshot) Current() (string, int) {
	ref := s.Active
	if ref == "" && !s.Mode.Multiselect() && len(s.Selected) > 0 {
		ref = s.Selected[0]
	}

	idx := s.IndexOf(ref)
	if idx < 0 {
		return "", -1
	}
	return ref, idx
}

// Next returns the option after the reference, clamped at the last option.
// Without a reference it returns the first option.
func (s Snapshot) Next() string {
	current, idx := s.Current()
	switch {
	case idx < 0:
		return s.First()
	case idx == len(s.Order)-1:
		return current
	default:
		return s.Order[idx+1]
	}
}

// Previous returns the option before the reference, clamped at the first
// option. Without a reference it returns the last option.
func (s Snapshot) Previous() string {
	current, idx := s.Current()
	switch {
	case idx < 0:
		return s.Last()
	case idx == 0:
		return current
	default:
		return s.Order[idx-1]
	}
}

// Apply computes the transition for in. It does not mutate s.
func Apply(s Snapshot, in Input) Outcome {
	unchanged := Outcome{Active: s.Active}

	switch in.Key {
	case KeyArrowDown:
		return s.move(s.Next(), in)
	case KeyArrowUp:
		return s.move(s.Previous(), in)
	case KeyHome:
		return s.jump(s.First(), in, true)
	case KeyEnd:
		return s.jump(s.Last(), in, false)
	case KeyA:
		if !in.Ctrl || !s.Mode.Multiselect() {
			return unchanged
		}
		out := unchanged
		out.Handled = true
		if len(s.Order) > 0 {
			order := s.Order
			out.Select = func(current []string) []string {
				return SelectRange(current, order, 0, len(order)-1)
			}
		}
		return out
	case KeySpace, KeyEnter:
		out := unchanged
		out.Handled = true
		if s.IndexOf(s.Active) < 0 {
			return out
		}
		active, multi := s.Active, s.Mode.Multiselect()
		out.Select = func(current []string) []string { return Commit(current, active, multi) }
		return out
	default:
		return unchanged
	}
}

// move handles the arrow keys.
func (s Snapshot) move(target string, in Input) Outcome {
	out := Outcome{Active: s.Active, Handled: true}
	if len(s.Order) == 0 {
		return out
	}
	out.Active = target

	switch {
	case s.Mode.Multiselect() && in.Shift && target != "":
		out.Select = func(current []string) []string { return Toggle(current, target) }
	case s.Mode.SelectionFollowsFocus():
		out.Select = func([]string) []string { return single(target) }
	}
	return out
}

// jump handles Home (toStart) and End. With Ctrl+Shift in multiselect the
// options between the reference and the boundary join the selection.
func (s Snapshot) jump(target string, in Input, toStart bool) Outcome {
	out := Outcome{Active: s.Active, Handled: true}
	if len(s.Order) == 0 {
		return out
	}
	out.Active = target

	switch {
	case s.Mode.Multiselect() && in.Ctrl && in.Shift:
		order := s.Order
		last := len(order) - 1
		_, idx := s.Current()

		from, to := idx, last
		if toStart {
			from, to = 0, idx
		}
		if idx < 0 {
			// No reference: the range shrinks to the boundary option.
			from, to = last, last
			if toStart {
				from, to = 0, 0
			}
		}
		out.Select = func(current []string) []string { return SelectRange(current, order, from, to) }
	case s.Mode.SelectionFollowsFocus():
		out.Select = func([]string) []string { return single(target) }
	}
	return out
}

// Toggle returns a new selection with value removed if present, otherwise
// appended at the end.
func Toggle(selected []string, value string) []string {
	if slices.Contains(selected, value) {
		out := make([]string, 0, len(selected))
		for _, v := range selected {
			if v != value {
				out = append(out, v)
			}
		}
		return out
	}

	out := make([]string, 0, len(selected)+1)
	out = append(out, selected...)
	return append(out, value)
}

// SelectRange returns a new selection holding selected followed by the
// options order[from..to] (inclusive) that were not yet selected.
func SelectRange(selected, order []string, from, to int) []string {
	from = max(from, 0)
	to = min(to, len(order)-1)

	out := make([]string, 0, len(selected)+max(to-from+1, 0))
	out = append(out, selected...)
	seen := make(map[string]struct{}, len(out))
	for _, v := range out {
		seen[v] = struct{}{}
	}

	for i := from; i <= to; i++ {
		if _, ok := seen[order[i]]; ok {
			continue
		}
		seen[order[i]] = struct{}{}
		out = append(out, order[i])
	}
	return out
}

// Commit returns the selection a click or Enter commits on value: a toggle
// in multiselect, otherwise the value alone.
func Commit(selected []string, value string, multiselect bool) []string {
	if multiselect {
		return Toggle(selected, value)
	}
	return []string{value}
}

func single(value string) []string {
	if value == "" {
		return []string{}
	}
	return []string{value}
}
