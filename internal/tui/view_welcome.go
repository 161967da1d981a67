package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

const logo = `
 ██╗  ██╗██╗███╗   ███╗██╗███╗   ██╗ ██████╗ ████████╗███████╗
 ██║ ██╔╝██║████╗ ████║██║████╗  ██║██╔═══██╗╚══██╔══╝██╔════╝
 █████╔╝ ██║██╔████╔██║██║██╔██╗ ██║██║   ██║   ██║   █████╗
 ██╔═██╗ ██║██║╚██╔╝██║██║██║╚██╗██║██║   ██║   ██║   ██╔══╝
 ██║  ██╗██║██║ ╚═╝ ██║██║██║ ╚████║╚██████╔╝   ██║   ███████╗
 ╚═╝  ╚═╝╚═╝╚═╝     ╚═╝╚═╝╚═╝  ╚═══╝ ╚═════╝    ╚═╝   ╚══════╝
`

func (a *App) renderWelcome() string {
	logoRendered := styleLogo.Render(logo)

	subtitle := styleSubtitle.Render("Document to Presentation")

	inputBox := styleBox.Copy().
		Width(min(64, a.width-4)).
		BorderForeground(colorGold).
		Render(a.state.input.View())

	// Provider status line
	var status string
	if a.state.providerError != nil {
		status = lipgloss.NewStyle().Foreground(colorError).
			Render("Provider error: " + truncate(a.state.providerError.Error(), 50))
	} else if a.state.providerReady {
		status = lipgloss.NewStyle().Foreground(colorOK).
			Render(fmt.Sprintf("Connected: %s (%s)", a.state.config.Provider, a.state.config.Model))
	} else {
		status = styleSubtitle.Render("Connecting to provider...")
	}

	statusBar := styleStatusBar.Render("[Enter] Generate  [/help] Commands  [Esc] Quit")

	content := lipgloss.JoinVertical(
		lipgloss.Center,
		logoRendered,
		subtitle,
		"",
		inputBox,
		"",
		status,
	)

	mainArea := lipgloss.Place(
		a.width,
		a.height-2,
		lipgloss.Center,
		lipgloss.Center,
		content,
	)

	statusLine := lipgloss.PlaceHorizontal(a.width, lipgloss.Center, statusBar)

	return lipgloss.JoinVertical(lipgloss.Left, mainArea, statusLine)
}
