package style

import "github.com/charmbracelet/lipgloss"

// Color palette, adaptive for light and dark terminals
var (
	HeadingColor = lipgloss.AdaptiveColor{Light: "#1a1a2e", Dark: "#e0e0ff"}
	TextColor    = lipgloss.AdaptiveColor{Light: "#2d2d2d", Dark: "#d0d0d0"}
	MutedColor   = lipgloss.AdaptiveColor{Light: "#8a8a8a", Dark: "#6c6c6c"}
	SuccessColor = lipgloss.AdaptiveColor{Light: "#00875f", Dark: "#5fd7a7"}
	ErrorColor   = lipgloss.AdaptiveColor{Light: "#d70000", Dark: "#ff5f5f"}
	WarningColor = lipgloss.AdaptiveColor{Light: "#af8700", Dark: "#ffd75f"}
	InfoColor    = lipgloss.AdaptiveColor{Light: "#0087af", Dark: "#5fd7ff"}
	PathColor    = lipgloss.AdaptiveColor{Light: "#5f5faf", Dark: "#afafff"}
)
