package tui

import "github.com/charmbracelet/lipgloss"

// Color palette
var (
	ColorPurple      = lipgloss.Color("#7D56F4")
	ColorGreen       = lipgloss.Color("#25A065")
	ColorBlue        = lipgloss.Color("#4285F4")
	ColorRed         = lipgloss.Color("#E05252")
	ColorYellow      = lipgloss.Color("#E5C07B")
	ColorGray        = lipgloss.Color("#626262")
	ColorGrayDim     = lipgloss.Color("#404040")
	ColorWhite       = lipgloss.Color("#FFFFFF")
	ColorOffWhite    = lipgloss.Color("#D0D0D0")
	ColorSelectionBg = lipgloss.Color("#2D3B4D")
	ColorCyan        = lipgloss.Color("#56B6C2")
	ColorOrange      = lipgloss.Color("#D19A66")
	ColorMoveBg      = lipgloss.Color("#3E2F1F")
)

// Header styles
var (
	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPurple)

	HeaderCountStyle = lipgloss.NewStyle().
				Foreground(ColorGray)

	FooterStyle = lipgloss.NewStyle().
			Foreground(ColorGray)

	StatusStyle = lipgloss.NewStyle().
			Foreground(ColorCyan)
)

// Grid styles
var (
	DayHeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorOffWhite)

	TodayHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(ColorRed)

	DayDoneStyle = lipgloss.NewStyle().
			Foreground(ColorGreen)

	HourLabelStyle = lipgloss.NewStyle().
			Foreground(ColorGray)

	EmptyCellStyle = lipgloss.NewStyle().
			Foreground(ColorGrayDim)

	SelectedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorWhite).
			Background(ColorSelectionBg)

	CompleteStyle = lipgloss.NewStyle().
			Foreground(ColorGreen)

	IncompleteStyle = lipgloss.NewStyle().
			Foreground(ColorOffWhite)

	MoveStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorOrange).
			Background(ColorMoveBg)

	ProjectStyle = lipgloss.NewStyle().
			Foreground(ColorYellow)
)

// Modal styles
var (
	ModalStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorPurple).
			Padding(1, 2)

	ModalTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPurple)
)

// Input styles
var (
	InputPromptStyle = lipgloss.NewStyle().
				Foreground(ColorPurple).
				Bold(true)
)

// Status icons
const (
	IconComplete   = "✓"
	IconIncomplete = "○"
	IconMove       = "↕"
	IconMore       = "+"
)

// taskStyle colors a task by its own color hint, if any.
func taskStyle(color string, completed bool) lipgloss.Style {
	if completed {
		return CompleteStyle
	}
	if color != "" {
		return lipgloss.NewStyle().Foreground(lipgloss.Color(color))
	}
	return IncompleteStyle
}
