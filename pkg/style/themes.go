package style

import (
	"github.com/charmbracelet/lipgloss"
)

// Palette colors adapt to light and dark terminals
var (
	HeadingColor = lipgloss.AdaptiveColor{Light: "#1F2937", Dark: "#F3F4F6"}
	TextColor    = lipgloss.AdaptiveColor{Light: "#374151", Dark: "#E5E7EB"}
	MutedColor   = lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#9CA3AF"}
	ValueColor   = lipgloss.AdaptiveColor{Light: "#0369A1", Dark: "#7DD3FC"}

	SuccessColor = lipgloss.AdaptiveColor{Light: "#15803D", Dark: "#4ADE80"}
	WarningColor = lipgloss.AdaptiveColor{Light: "#B45309", Dark: "#FCD34D"}
	ErrorColor   = lipgloss.AdaptiveColor{Light: "#B91C1C", Dark: "#F87171"}
)

// Binding colors: one per kind of association a profile can have
var (
	ProfileColor  = lipgloss.AdaptiveColor{Light: "#7C3AED", Dark: "#C4B5FD"}
	DockColor     = lipgloss.AdaptiveColor{Light: "#0284C7", Dark: "#38BDF8"}
	UndockedColor = lipgloss.AdaptiveColor{Light: "#D97706", Dark: "#FBBF24"}
	ActiveColor   = lipgloss.AdaptiveColor{Light: "#059669", Dark: "#34D399"}
)
