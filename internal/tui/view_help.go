package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (a *App) renderHelp() string {
	var b strings.Builder

	title := lipgloss.NewStyle().
		Foreground(colorGold).
		Bold(true).
		Render("Help")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, title))
	b.WriteString("\n\n")

	commands := []string{
		"  /help, /h      Show this help",
		"  /quit, /q      Quit kiminote",
		"",
		"  Or type a document path to generate a deck",
	}

	commandsBox := styleBox.Copy().
		Width(54).
		Render(strings.Join(commands, "\n"))
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, commandsBox))
	b.WriteString("\n\n")

	shortcuts := []string{
		"  ←/→, h/l       Previous / next slide",
		"  ↑/↓, j/k, Tab  Move between regions",
		"  Enter          Edit the selected region",
		"  p / w / d      Export pptx / html / json",
		"  n              Start over with a new document",
		"  Esc            Cancel edit / quit",
	}

	shortcutsTitle := styleSubtitle.Render("Editor Shortcuts")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, shortcutsTitle))
	b.WriteString("\n\n")

	shortcutsBox := styleBox.Copy().
		Width(54).
		Render(strings.Join(shortcuts, "\n"))
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, shortcutsBox))
	b.WriteString("\n\n")

	instructions := styleStatusBar.Render("[Esc] Back")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, instructions))

	return a.centerVertically(b.String())
}
