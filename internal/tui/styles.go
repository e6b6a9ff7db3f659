package tui

import "github.com/charmbracelet/lipgloss"

// Color palette.
const (
	ColorHeader    = lipgloss.Color("99")
	ColorLabel     = lipgloss.Color("245")
	ColorValue     = lipgloss.Color("252")
	ColorMuted     = lipgloss.Color("240")
	ColorHighlight = lipgloss.Color("212")
	ColorSelected  = lipgloss.Color("42")
)

// Styles used by the listbox view.
var (
	TitleStyle = lipgloss.NewStyle().
			Foreground(ColorHeader).
			Bold(true)

	DescriptionStyle = lipgloss.NewStyle().
				Foreground(ColorLabel)

	GroupLabelStyle = lipgloss.NewStyle().
			Foreground(ColorLabel).
			Bold(true)

	OptionStyle = lipgloss.NewStyle().
			Foreground(ColorValue)

	ActiveOptionStyle = lipgloss.NewStyle().
				Foreground(ColorHighlight).
				Bold(true)

	SelectedOptionStyle = lipgloss.NewStyle().
				Foreground(ColorSelected)

	CursorStyle = lipgloss.NewStyle().
			Foreground(ColorHighlight)

	BlurredStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	EmptyStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			Italic(true)
)
