package listbox

import (
	"strconv"
	"strings"

	"github.com/oklog/ulid/v2"
)

// Attribute is one accessibility attribute of a rendered element.
type Attribute struct {
	Name  string
	Value string
}

// Attributes is an ordered attribute list.
type Attributes []Attribute

// With returns a copy of a with name set to value appended.
func (a Attributes) With(name, value string) Attributes {
	out := make(Attributes, len(a), len(a)+1)
	copy(out, a)
	return append(out, Attribute{Name: name, Value: value})
}

// Get returns the value of name.
func (a Attributes) Get(name string) (string, bool) {
	for _, attr := range a {
		if attr.Name == name {
			return attr.Value, true
		}
	}
	return "", false
}

// Has reports whether name is present.
func (a Attributes) Has(name string) bool {
	_, ok := a.Get(name)
	return ok
}

// String renders the attributes as name="value" pairs.
func (a Attributes) String() string {
	parts := make([]string, len(a))
	for i, attr := range a {
		parts[i] = attr.Name + "=" + strconv.Quote(attr.Value)
	}
	return strings.Join(parts, " ")
}

func boolAttr(b bool) string {
	return strconv.FormatBool(b)
}

// newID returns a unique element id.
func newID(prefix string) string {
	return prefix + "-" + strings.ToLower(ulid.Make().String())
}
