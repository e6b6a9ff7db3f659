package controllable_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/listbox/internal/controllable"
)

func TestState_Uncontrolled(t *testing.T) {
	var calls []int
	s := controllable.NewComparable(controllable.Params[int]{
		Initial:  1,
		OnChange: func(v int) { calls = append(calls, v) },
	})

	assert.False(t, s.Controlled())
	assert.Equal(t, 1, s.Get())

	assert.True(t, s.Set(2))
	assert.Equal(t, 2, s.Get(), "internal state updates immediately")

	assert.False(t, s.Set(2), "equal value does not pass the gate")
	assert.Equal(t, []int{2}, calls)
}

func TestState_UncontrolledWithoutOnChange(t *testing.T) {
	s := controllable.NewComparable(controllable.Params[string]{Initial: "a"})

	assert.True(t, s.Set("b"))
	assert.Equal(t, "b", s.Get())
}

func TestState_Controlled(t *testing.T) {
	external := 10
	var proposed []int
	s := controllable.NewComparable(controllable.Params[int]{
		Value:    &external,
		Initial:  0,
		OnChange: func(v int) { proposed = append(proposed, v) },
	})

	require.True(t, s.Controlled())
	assert.Equal(t, 10, s.Get())

	assert.True(t, s.Set(11))
	assert.Equal(t, 10, s.Get(), "controlled value only changes when fed back")
	assert.Equal(t, []int{11}, proposed)

	// The caller feeds the proposal back in.
	next := proposed[0]
	s.SetExternal(&next)
	assert.Equal(t, 11, s.Get())

	assert.False(t, s.Set(11))
	assert.Len(t, proposed, 1)
}

func TestState_UpdateResolvesAgainstCurrent(t *testing.T) {
	external := 3
	var got int
	s := controllable.NewComparable(controllable.Params[int]{
		Value:    &external,
		OnChange: func(v int) { got = v },
	})

	assert.True(t, s.Update(func(v int) int { return v * 2 }))
	assert.Equal(t, 6, got, "OnChange receives the resolved value")
	assert.Equal(t, 3, s.Get())
}

func TestState_SwitchToUncontrolled(t *testing.T) {
	external := 5
	s := controllable.NewComparable(controllable.Params[int]{Value: &external, Initial: 1})

	s.SetExternal(nil)
	assert.False(t, s.Controlled())
	assert.Equal(t, 1, s.Get())
}

func TestState_SliceIdentityGate(t *testing.T) {
	var notified int
	s := controllable.New(controllable.Params[[]string]{
		Initial:  []string{"a"},
		OnChange: func([]string) { notified++ },
		Equal:    controllable.SameSlice[string],
	})

	current := s.Get()
	assert.False(t, s.Set(current), "the same slice is not a change")

	assert.True(t, s.Set(slices.Clone(current)), "a new slice with the same contents is a change")
	assert.Equal(t, 1, notified)
}

func TestState_NilEqualAlwaysChanges(t *testing.T) {
	var notified int
	s := controllable.New(controllable.Params[[]int]{OnChange: func([]int) { notified++ }})

	s.Set(nil)
	s.Set(nil)
	assert.Equal(t, 2, notified)
}

func TestSameSlice(t *testing.T) {
	base := []string{"a", "b", "c"}

	tests := []struct {
		name string
		a, b []string
		want bool
	}{
		{name: "same slice", a: base, b: base, want: true},
		{name: "different length view", a: base, b: base[:2], want: false},
		{name: "clone", a: base, b: slices.Clone(base), want: false},
		{name: "nil and empty", a: nil, b: []string{}, want: true},
		{name: "both nil", a: nil, b: nil, want: true},
		{name: "offset view", a: base[1:], b: base[1:], want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, controllable.SameSlice(tt.a, tt.b))
		})
	}
}
