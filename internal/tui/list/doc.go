// Package listview provides the windowing adapter for long listboxes in
// Bubble Tea applications.
//
// Only the rows inside the viewport, plus a small buffer, are rendered.
// Every rendered row is measured with lipgloss and its height is reported
// back, which shifts the offsets of all later rows. Items keep their
// logical order; windowing only decides which of them are drawn.
//
// Key features:
//   - O(viewport_height) render complexity for 10,000+ rows
//   - Variable row heights, re-measured on every frame
//   - The cursor row stays centred in the viewport where possible
//   - Row offsets for pointer hit-testing
package listview
