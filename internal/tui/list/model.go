package listview

import (
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// defaultBufferSize is the number of extra rows measured above/below the viewport for smooth scrolling.
const defaultBufferSize = 5

// halfViewportDivisor is used to calculate half the viewport height for centering.
const halfViewportDivisor = 2

// estimatedItemHeight is assumed for rows that have not been measured yet.
const estimatedItemHeight = 1

// maxMeasurePasses bounds re-measuring when new heights move the window.
const maxMeasurePasses = 3

// RenderFunc renders the item at index.
type RenderFunc[T any] func(item T, index int) string

// Row is a rendered item inside the window.
type Row struct {
	// Index is the item index in the logical order.
	Index int

	// Offset is the first line of the row relative to the top of the
	// viewport. It is negative when the row is partially scrolled out.
	Offset int

	// Height is the measured height in lines.
	Height int

	// Content is the rendered row.
	Content string
}

// Model windows a list of items with variable heights.
// A viewport height of zero or less disables windowing and renders every item.
type Model[T any] struct {
	// items contains all list items in logical order
	items []T

	// renderFunc renders a single item
	renderFunc RenderFunc[T]

	// heights holds measured row heights; zero means not measured yet
	heights []int

	// offsets holds the first line of each row
	offsets []int

	// totalLines is the sum of all row heights
	totalLines int

	// cursor is the item kept inside the viewport
	cursor int

	// topLine is the first visible line
	topLine int

	// visibleFrom is the first visible item index
	visibleFrom int

	// visibleTo is the last visible item index (exclusive)
	visibleTo int

	// height is the viewport height in rows
	height int

	// width is the viewport width in columns
	width int

	// bufferSize is the number of extra rows measured above/below viewport
	bufferSize int
}

// NewModel creates a new windowed list.
// items: the complete list of items to display.
// height: viewport height in lines (<= 0 renders everything).
// width: viewport width in columns.
// renderFunc: function to render each item.
func NewModel[T any](items []T, height, width int, renderFunc RenderFunc[T]) *Model[T] {
	m := &Model[T]{
		renderFunc: renderFunc,
		height:     height,
		width:      width,
		bufferSize: defaultBufferSize,
	}

	m.SetItems(items)
	return m
}

// Init initializes the model (required for tea.Model interface).
func (m *Model[T]) Init() tea.Cmd {
	return nil
}

// Update handles resize messages. Navigation belongs to the owner of the
// cursor, which moves it with SetCursor.
func (m *Model[T]) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.WindowSizeMsg); ok {
		m.SetSize(msg.Width, msg.Height)
	}
	return m, nil
}

// SetSize changes the viewport size.
func (m *Model[T]) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.updateVisibleRange()
}

// SetItems replaces the items. Heights measured for indexes that still
// exist are kept as estimates until the rows are measured again.
func (m *Model[T]) SetItems(items []T) {
	m.items = items

	heights := make([]int, len(items))
	copy(heights, m.heights)
	m.heights = heights
	m.offsets = make([]int, len(items))

	if m.cursor >= len(items) {
		m.cursor = max(len(items)-1, 0)
	}

	m.relayout(0)
	m.updateVisibleRange()
}

// SetItemHeight records the measured height of the row at index and moves
// every later row accordingly.
func (m *Model[T]) SetItemHeight(index, height int) {
	if index < 0 || index >= len(m.items) || height <= 0 || m.heights[index] == height {
		return
	}

	m.heights[index] = height
	m.relayout(index + 1)
	m.updateVisibleRange()
}

// relayout recomputes offsets from index on.
func (m *Model[T]) relayout(from int) {
	offset := 0
	if from > 0 {
		offset = m.offsets[from-1] + m.itemHeight(from-1)
	}

	for i := from; i < len(m.items); i++ {
		m.offsets[i] = offset
		offset += m.itemHeight(i)
	}
	m.totalLines = offset
}

func (m *Model[T]) itemHeight(index int) int {
	if h := m.heights[index]; h > 0 {
		return h
	}
	return estimatedItemHeight
}

// updateVisibleRange calculates the visible range of items around the cursor.
// This ensures the cursor row is visible and updates visibleFrom/visibleTo.
func (m *Model[T]) updateVisibleRange() {
	if len(m.items) == 0 {
		m.topLine = 0
		m.visibleFrom = 0
		m.visibleTo = 0
		return
	}

	if m.height <= 0 {
		m.topLine = 0
		m.visibleFrom = 0
		m.visibleTo = len(m.items)
		return
	}

	// Centre the cursor row, then clamp to the ends of the list.
	halfViewport := m.height / halfViewportDivisor
	top := m.offsets[m.cursor] + m.itemHeight(m.cursor)/halfViewportDivisor - halfViewport
	top = min(top, max(m.totalLines-m.height, 0))
	top = max(top, 0)
	m.topLine = top

	bottom := top + m.height
	m.visibleFrom = sort.Search(len(m.items), func(i int) bool {
		return m.offsets[i]+m.itemHeight(i) > top
	})
	m.visibleTo = sort.Search(len(m.items), func(i int) bool {
		return m.offsets[i] >= bottom
	})
}

// measure renders the window plus buffer and records row heights until
// the window stops moving. It returns the rendered rows by index.
func (m *Model[T]) measure() map[int]string {
	rendered := make(map[int]string)

	for range maxMeasurePasses {
		from := max(m.visibleFrom-m.bufferSize, 0)
		to := min(m.visibleTo+m.bufferSize, len(m.items))

		changed := false
		for i := from; i < to; i++ {
			content, ok := rendered[i]
			if !ok {
				content = m.renderFunc(m.items[i], i)
				rendered[i] = content
			}
			if h := lipgloss.Height(content); m.heights[i] != h {
				m.heights[i] = h
				changed = true
			}
		}

		if !changed {
			break
		}
		m.relayout(0)
		m.updateVisibleRange()
	}

	return rendered
}

// Rows measures and renders the visible rows.
func (m *Model[T]) Rows() []Row {
	if len(m.items) == 0 {
		return nil
	}

	rendered := m.measure()
	rows := make([]Row, 0, m.visibleTo-m.visibleFrom)
	for i := m.visibleFrom; i < m.visibleTo; i++ {
		content, ok := rendered[i]
		if !ok {
			content = m.renderFunc(m.items[i], i)
		}
		rows = append(rows, Row{
			Index:   i,
			Offset:  m.offsets[i] - m.topLine,
			Height:  m.itemHeight(i),
			Content: content,
		})
	}
	return rows
}

// View renders the visible lines of the list.
func (m *Model[T]) View() string {
	rows := m.Rows()
	if len(rows) == 0 {
		return ""
	}

	var sb strings.Builder
	written := 0
	for _, row := range rows {
		for k, line := range strings.Split(row.Content, "\n") {
			ln := row.Offset + k
			if ln < 0 || (m.height > 0 && ln >= m.height) {
				continue
			}
			if written > 0 {
				sb.WriteString("\n")
			}
			sb.WriteString(line)
			written++
		}
	}

	return sb.String()
}

// ItemAt returns the index of the item drawn on viewport line y.
func (m *Model[T]) ItemAt(y int) (int, bool) {
	if y < 0 || (m.height > 0 && y >= m.height) {
		return 0, false
	}

	line := y + m.topLine
	for i := m.visibleFrom; i < m.visibleTo; i++ {
		if line >= m.offsets[i] && line < m.offsets[i]+m.itemHeight(i) {
			return i, true
		}
	}
	return 0, false
}

// ItemCount returns the total number of items in the list.
func (m *Model[T]) ItemCount() int {
	return len(m.items)
}

// Cursor returns the index kept visible.
func (m *Model[T]) Cursor() int {
	return m.cursor
}

// SetCursor sets the index kept visible, capping to valid bounds.
func (m *Model[T]) SetCursor(index int) {
	if len(m.items) == 0 {
		m.cursor = 0
		return
	}

	switch {
	case index < 0:
		m.cursor = 0
	case index >= len(m.items):
		m.cursor = len(m.items) - 1
	default:
		m.cursor = index
	}

	m.updateVisibleRange()
}

// VisibleFrom returns the first visible item index (inclusive).
func (m *Model[T]) VisibleFrom() int {
	return m.visibleFrom
}

// VisibleTo returns the last visible item index (exclusive).
func (m *Model[T]) VisibleTo() int {
	return m.visibleTo
}

// TopLine returns the first visible line of the whole list.
func (m *Model[T]) TopLine() int {
	return m.topLine
}

// TotalLines returns the height of the whole list in lines.
func (m *Model[T]) TotalLines() int {
	return m.totalLines
}

// Offset returns the first line of the item at index in the whole list.
func (m *Model[T]) Offset(index int) int {
	if index < 0 || index >= len(m.items) {
		return 0
	}
	return m.offsets[index]
}

// Height returns the viewport height.
func (m *Model[T]) Height() int {
	return m.height
}

// Width returns the viewport width.
func (m *Model[T]) Width() int {
	return m.width
}

// CursorItem returns the item at the cursor.
// Returns nil if list is empty.
func (m *Model[T]) CursorItem() *T {
	if len(m.items) == 0 || m.cursor < 0 || m.cursor >= len(m.items) {
		return nil
	}
	return &m.items[m.cursor]
}
