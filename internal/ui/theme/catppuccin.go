package theme

import "github.com/charmbracelet/lipgloss"

// Catppuccin Mocha.
var (
	Base     = lipgloss.Color("#1e1e2e")
	Mantle   = lipgloss.Color("#181825")
	Surface1 = lipgloss.Color("#45475a")
	Text     = lipgloss.Color("#cdd6f4")
	Subtext0 = lipgloss.Color("#a6adc8")
	Lavender = lipgloss.Color("#b4befe")
	Sapphire = lipgloss.Color("#74c7ec")
	Green    = lipgloss.Color("#a6e3a1")
	Peach    = lipgloss.Color("#fab387")
	Yellow   = lipgloss.Color("#f9e2af")
	Red      = lipgloss.Color("#f38ba8")
)

var (
	Card = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Lavender).
		Foreground(Text).
		Padding(0, 1)

	Bar = lipgloss.NewStyle().Background(Mantle)

	Title = lipgloss.NewStyle().Foreground(Sapphire).Bold(true)
	Muted = lipgloss.NewStyle().Foreground(Subtext0)
	Hot   = lipgloss.NewStyle().Foreground(Peach).Bold(true)
	Error = lipgloss.NewStyle().Foreground(Red)

	TabActive = Hot.Underline(true)
	TabIdle   = Muted

	DayDone   = lipgloss.NewStyle().Foreground(Green).Bold(true)
	DayReward = lipgloss.NewStyle().Foreground(Yellow).Bold(true)
	DayToday  = lipgloss.NewStyle().Foreground(Base).Background(Lavender)
)

// Quiz colours a month's quiz state: available green, locked peach,
// anything else muted.
func Quiz(state string) lipgloss.Style {
	switch state {
	case "available":
		return DayDone
	case "locked":
		return Hot
	default:
		return Muted
	}
}
