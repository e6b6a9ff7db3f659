// Package listbox implements the state and behaviour of an accessible
// listbox widget (the ARIA listbox, option and group pattern) independent
// of any renderer.
//
// The Listbox container owns the active option (the keyboard cursor) and
// the selected options (the committed choice). Option nodes register
// themselves in document order on mount and talk back to the container
// only through the Context they were constructed with. Keyboard input is
// interpreted by Apply, a pure function over a Snapshot of the state, so the
// same navigation rules hold for single, multi, grouped and virtualized
// listboxes.
package listbox
