package style

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	HeadingStyle = lipgloss.NewStyle().Foreground(HeadingColor).Bold(true)
	TextStyle    = lipgloss.NewStyle().Foreground(TextColor)
	MutedStyle   = lipgloss.NewStyle().Foreground(MutedColor)
	ValueStyle   = lipgloss.NewStyle().Foreground(ValueColor)

	SuccessStyle = lipgloss.NewStyle().Foreground(SuccessColor).Bold(true)
	WarningStyle = lipgloss.NewStyle().Foreground(WarningColor).Bold(true)
	ErrorStyle   = lipgloss.NewStyle().Foreground(ErrorColor).Bold(true)

	ProfileStyle  = lipgloss.NewStyle().Foreground(ProfileColor).Bold(true)
	DockStyle     = lipgloss.NewStyle().Foreground(DockColor)
	UndockedStyle = lipgloss.NewStyle().Foreground(UndockedColor)
	ActiveStyle   = lipgloss.NewStyle().Foreground(ActiveColor).Bold(true)
)

// Line prefixes
var (
	SuccessIndicator  = SuccessStyle.Render("✓")
	WarningIndicator  = WarningStyle.Render("!")
	ActiveIndicator   = ActiveStyle.Render("●")
	InactiveIndicator = MutedStyle.Render("○")
)

// Indent pads s by two spaces per level
func Indent(s string, level int) string {
	return lipgloss.NewStyle().PaddingLeft(level * 2).Render(s)
}
