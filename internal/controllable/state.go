// Package controllable provides a two-mode state cell that is either owned
// by the embedding caller (controlled) or managed internally (uncontrolled).
//
// In controlled mode the cell never mutates itself: every accepted change is
// only proposed to the caller through OnChange, and the caller feeds its
// authoritative value back with SetExternal. In uncontrolled mode the cell
// stores the value and still reports changes through OnChange when set.
package controllable

// Params configures a State.
type Params[V any] struct {
	// Value is the externally owned value. A non-nil pointer puts the
	// state in controlled mode.
	Value *V

	// Initial seeds the internal value used in uncontrolled mode.
	Initial V

	// OnChange receives the resolved next value whenever the equality
	// gate passes. Optional.
	OnChange func(V)

	// Equal is the change gate. A nil Equal treats every set as a change.
	Equal func(a, b V) bool
}

// State is a controllable value cell. It is not safe for concurrent use;
// it is owned by a single container and mutated from its event handlers.
type State[V any] struct {
	internal V
	external *V
	onChange func(V)
	equal    func(a, b V) bool
}

// New creates a State from the given parameters.
func New[V any](p Params[V]) *State[V] {
	return &State[V]{
		internal: p.Initial,
		external: p.Value,
		onChange: p.OnChange,
		equal:    p.Equal,
	}
}

// NewComparable creates a State whose change gate is the == operator.
// Any Equal set on p is replaced.
func NewComparable[V comparable](p Params[V]) *State[V] {
	p.Equal = func(a, b V) bool { return a == b }
	return New(p)
}

// Controlled reports whether the current value is owned by the caller.
func (s *State[V]) Controlled() bool {
	return s.external != nil
}

// Get returns the current value: the external value when controlled,
// otherwise the internal one.
func (s *State[V]) Get() V {
	if s.external != nil {
		return *s.external
	}
	return s.internal
}

// Set proposes next as the new value. It returns true when the equality
// gate passed, meaning exactly one internal mutation (uncontrolled) or one
// external notification (controlled) happened.
func (s *State[V]) Set(next V) bool {
	current := s.Get()
	if s.equal != nil && s.equal(current, next) {
		return false
	}

	if s.external == nil {
		s.internal = next
	}
	if s.onChange != nil {
		s.onChange(next)
	}
	return true
}

// Update resolves fn against the current value and passes the result to Set.
func (s *State[V]) Update(fn func(V) V) bool {
	return s.Set(fn(s.Get()))
}

// SetExternal replaces the controlled value. Passing nil switches the state
// to uncontrolled mode; the internal value is left as it was.
func (s *State[V]) SetExternal(v *V) {
	s.external = v
}

// SetOnChange replaces the change callback.
func (s *State[V]) SetOnChange(fn func(V)) {
	s.onChange = fn
}

// SameSlice is the shallow identity gate for slice values. Two slices are
// the same when they view the same backing array with the same length and
// capacity. A freshly built slice with equal contents is not the same.
// Two empty slices are the same.
func SameSlice[E any](a, b []E) bool {
	if len(a) != len(b) || cap(a) != cap(b) {
		return len(a) == 0 && len(b) == 0
	}
	if len(a) == 0 {
		return true
	}
	return &a[0] == &b[0]
}
