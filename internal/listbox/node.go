package listbox

import "fmt"

// Node is a child of a Listbox: an Option or a Group.
type Node interface {
	isNode()
}

// Option is one selectable item. Value is its identity and must be unique
// and stable across re-renders.
type Option struct {
	Text  string
	Value string
}

func (Option) isNode() {}

// Group is a non-selectable heading clustering a run of options.
type Group struct {
	Label       string
	DescribedBy string
	Options     []Option
}

func (Group) isNode() {}

// EntryKind distinguishes the rows of a flattened listbox.
type EntryKind int

const (
	// EntryOption is a selectable option row.
	EntryOption EntryKind = iota
	// EntryGroup is a group heading row.
	EntryGroup
)

// Entry is one row of the flattened child sequence.
type Entry struct {
	Kind EntryKind

	// Position is the authored index in the flattened sequence. Options use
	// it as their registry position.
	Position int

	// Text is the option text or the group label.
	Text string

	// Value is empty for group headings.
	Value string

	// Group is the label of the owning group, if any.
	Group string

	// DescribedBy is only set for group headings.
	DescribedBy string
}

// Flatten turns children into a flat sequence in which every group heading
// is followed by its options.
func Flatten(children []Node) []Entry {
	var entries []Entry
	add := func(e Entry) {
		e.Position = len(entries)
		entries = append(entries, e)
	}

	for _, child := range children {
		switch n := child.(type) {
		case Option:
			add(Entry{Kind: EntryOption, Text: n.Text, Value: n.Value})
		case *Option:
			add(Entry{Kind: EntryOption, Text: n.Text, Value: n.Value})
		case Group:
			addGroup(add, n)
		case *Group:
			addGroup(add, *n)
		}
	}

	return entries
}

func addGroup(add func(Entry), g Group) {
	add(Entry{Kind: EntryGroup, Text: g.Label, DescribedBy: g.DescribedBy})
	for _, o := range g.Options {
		add(Entry{Kind: EntryOption, Text: o.Text, Value: o.Value, Group: g.Label})
	}
}

// OptionValues returns the option values of entries in order.
func OptionValues(entries []Entry) []string {
	var values []string
	for _, e := range entries {
		if e.Kind == EntryOption {
			values = append(values, e.Value)
		}
	}
	return values
}

func validateEntries(entries []Entry) error {
	seen := make(map[string]int, len(entries))
	for _, e := range entries {
		if e.Kind != EntryOption {
			continue
		}
		if e.Value == "" {
			return fmt.Errorf("%w: option %q at position %d", ErrEmptyOptionValue, e.Text, e.Position)
		}
		if prev, ok := seen[e.Value]; ok {
			return fmt.Errorf("%w: %q at positions %d and %d", ErrDuplicateOptionValue, e.Value, prev, e.Position)
		}
		seen[e.Value] = e.Position
	}
	return nil
}
