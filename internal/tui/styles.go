package tui

import "github.com/charmbracelet/lipgloss"

// truncate shortens text to maxLen, adding "..." if truncated
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[:maxLen]
	}
	return s[:maxLen-3] + "..."
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

var (
	// Colors
	colorGold   = lipgloss.Color("#FFD700")
	colorInk    = lipgloss.Color("#1A1A1A")
	colorWhite  = lipgloss.Color("#F5F5F5")
	colorSubtle = lipgloss.Color("#CCCCCC")
	colorMuted  = lipgloss.Color("#6B7280")
	colorError  = lipgloss.Color("#EF4444")
	colorOK     = lipgloss.Color("#10B981")

	// Logo style
	styleLogo = lipgloss.NewStyle().
			Foreground(colorGold).
			Bold(true)

	// Subtitle
	styleSubtitle = lipgloss.NewStyle().
			Foreground(colorMuted)

	// Box
	styleBox = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorMuted).
			Padding(0, 1)

	// Status bar
	styleStatusBar = lipgloss.NewStyle().
			Foreground(colorMuted)

	// Slide canvas
	styleCanvas = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorGold).
			Padding(1, 3)

	// Region styles keyed by role
	styleSlideLabel = lipgloss.NewStyle().
			Foreground(colorGold).
			Bold(true)

	styleSlideTitle = lipgloss.NewStyle().
			Foreground(colorGold).
			Bold(true)

	styleSlideSubtitle = lipgloss.NewStyle().
				Foreground(colorSubtle).
				Italic(true)

	styleSlideBody = lipgloss.NewStyle().
			Foreground(colorWhite)

	styleSlideStat = lipgloss.NewStyle().
			Foreground(colorGold).
			Bold(true)

	styleSlideDim = lipgloss.NewStyle().
			Foreground(colorMuted)

	styleSectionBanner = lipgloss.NewStyle().
				Foreground(colorInk).
				Background(colorGold).
				Bold(true).
				Padding(0, 2)

	styleRegionCursor = lipgloss.NewStyle().
				Foreground(colorInk).
				Background(colorGold)

	styleNotes = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), true, false, false, false).
			BorderForeground(colorMuted)
)
