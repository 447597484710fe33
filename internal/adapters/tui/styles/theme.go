package styles

import (
	"github.com/charmbracelet/lipgloss"

	"tally/internal/domain"
)

var (
	// Colors
	Primary   = lipgloss.Color("#7C3AED") // Purple
	Secondary = lipgloss.Color("#10B981") // Green
	Muted     = lipgloss.Color("#6B7280") // Gray
	Warning   = lipgloss.Color("#F59E0B") // Amber
	Error     = lipgloss.Color("#EF4444") // Red
	White     = lipgloss.Color("#FFFFFF")
	Black     = lipgloss.Color("#000000")

	// Counter colors
	CounterPrimary   = lipgloss.Color("#6366F1") // Indigo
	CounterSecondary = lipgloss.Color("#EC4899") // Pink
	CounterSuccess   = lipgloss.Color("#22C55E") // Green
	CounterWarning   = lipgloss.Color("#F97316") // Orange
	CounterError     = lipgloss.Color("#EF4444") // Red
	CounterInfo      = lipgloss.Color("#0EA5E9") // Sky

	// Base styles
	App = lipgloss.NewStyle().
		Padding(1, 2)

	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		MarginBottom(1)

	// List tabs
	TabActive = lipgloss.NewStyle().
			Background(Primary).
			Foreground(White).
			Bold(true).
			Padding(0, 1)

	TabInactive = lipgloss.NewStyle().
			Foreground(Muted).
			Padding(0, 1)

	// Counter rows
	CounterName = lipgloss.NewStyle().
			Bold(true)

	CounterValue = lipgloss.NewStyle().
			Bold(true).
			Width(8).
			Align(lipgloss.Right)

	RowSelected = lipgloss.NewStyle().
			Background(lipgloss.Color("#1F2937"))

	RowDragged = lipgloss.NewStyle().
			Background(Primary).
			Foreground(White)

	// Status bar
	StatusBar = lipgloss.NewStyle().
			Background(lipgloss.Color("#1F2937")).
			Foreground(White).
			Padding(0, 1)

	// Input styles
	InputLabel = lipgloss.NewStyle().
			Foreground(Secondary).
			Bold(true)

	InputField = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Primary).
			Padding(0, 1)

	InputFocused = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Secondary).
			Padding(0, 1)

	InputInvalid = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Error).
			Padding(0, 1)

	// Help styles
	HelpKey = lipgloss.NewStyle().
		Foreground(Primary).
		Bold(true)

	HelpDesc = lipgloss.NewStyle().
			Foreground(Muted)

	HelpSeparator = lipgloss.NewStyle().
			Foreground(Muted).
			SetString(" • ")

	// Message styles
	Success = lipgloss.NewStyle().
		Foreground(Secondary).
		Bold(true)

	ErrorMsg = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)

	FieldError = lipgloss.NewStyle().
			Foreground(Error).
			Italic(true)

	// Muted text style (for using Muted color as a style)
	MutedText = lipgloss.NewStyle().
			Foreground(Muted)
)

// CounterColor returns the display color for a counter color
func CounterColor(c domain.Color) lipgloss.Color {
	switch c {
	case domain.ColorSecondary:
		return CounterSecondary
	case domain.ColorSuccess:
		return CounterSuccess
	case domain.ColorWarning:
		return CounterWarning
	case domain.ColorError:
		return CounterError
	case domain.ColorInfo:
		return CounterInfo
	default:
		return CounterPrimary
	}
}

// Swatch renders a short colored block labelled with the color name
func Swatch(c domain.Color) string {
	return lipgloss.NewStyle().
		Background(CounterColor(c)).
		Foreground(White).
		Padding(0, 1).
		Render(c.String())
}
