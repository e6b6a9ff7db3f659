package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/rshade/listbox/internal/listbox"
	listview "github.com/rshade/listbox/internal/tui/list"
)

// View renders the current view (Bubble Tea interface).
func (m Model) View() string {
	if m.state != ViewStateList {
		return ""
	}

	var sections []string
	if header := m.renderHeader(); header != "" {
		sections = append(sections, header)
	}

	if m.list.ItemCount() == 0 {
		sections = append(sections, EmptyStyle.Render("No options."))
	} else {
		sections = append(sections, m.list.View())
	}

	sections = append(sections, m.help.View(m.keys))
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) renderTitle() string {
	if m.title == "" {
		return ""
	}
	if !m.lb.Focused() {
		return BlurredStyle.Render(m.title)
	}
	return TitleStyle.Render(m.title)
}

// renderHeader is the title followed by the description.
func (m Model) renderHeader() string {
	var lines []string
	if title := m.renderTitle(); title != "" {
		lines = append(lines, title)
	}
	if m.description != "" {
		lines = append(lines, DescriptionStyle.Render(m.description))
	}
	if len(lines) == 0 {
		return ""
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// listTop is the screen line of the first row.
func (m Model) listTop() int {
	if header := m.renderHeader(); header != "" {
		return lipgloss.Height(header)
	}
	return 0
}

// renderRow draws group headings and options from their live state.
func renderRow() listview.RenderFunc[listbox.Row] {
	upper := cases.Upper(language.Und)

	return func(row listbox.Row, _ int) string {
		if row.Group != nil {
			return GroupLabelStyle.Render(upper.String(row.Group.Label()))
		}
		if row.Option == nil {
			return ""
		}

		state := row.Option.State()

		var sb strings.Builder
		if state.Active {
			sb.WriteString(CursorStyle.Render("> "))
		} else {
			sb.WriteString("  ")
		}
		if row.Option.Group() != "" {
			sb.WriteString("  ")
		}

		text := row.Option.Text()
		switch {
		case state.Multiselect && state.Selected:
			text = "[x] " + text
		case state.Multiselect:
			text = "[ ] " + text
		case state.Selected:
			text = "* " + text
		default:
			text = "  " + text
		}

		style := OptionStyle
		switch {
		case state.Active:
			style = ActiveOptionStyle
		case state.Selected:
			style = SelectedOptionStyle
		}
		sb.WriteString(style.Render(text))
		return sb.String()
	}
}
