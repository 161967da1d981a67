package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (a *App) renderProcessing() string {
	var b strings.Builder

	title := lipgloss.NewStyle().
		Foreground(colorGold).
		Bold(true).
		Render("Generating Presentation")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, title))
	b.WriteString("\n\n")

	if a.state.document != nil {
		doc := a.state.document
		docInfo := styleSubtitle.Render(fmt.Sprintf("%s  (%s, %d words)",
			truncate(doc.Metadata.Title, 40), doc.Metadata.FileSizeHuman(), doc.Metadata.WordCount))
		b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, docInfo))
		b.WriteString("\n\n")

		previewBox := styleBox.Copy().
			Width(min(60, a.width-4)).
			Render(styleSubtitle.Render(doc.Preview))
		b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, previewBox))
		b.WriteString("\n\n")
	}

	stages := []string{"Reading document", "Designing slides"}
	currentStage := a.state.stage

	var stageLines []string
	for i, stage := range stages {
		var icon string
		var style lipgloss.Style

		if i < currentStage {
			icon = "[x]"
			style = lipgloss.NewStyle().Foreground(colorOK)
		} else if i == currentStage {
			icon = "[>]"
			style = lipgloss.NewStyle().Foreground(colorGold).Bold(true)
		} else {
			icon = "[ ]"
			style = lipgloss.NewStyle().Foreground(colorMuted)
		}

		stageLines = append(stageLines, style.Render(fmt.Sprintf("  %s  %-18s", icon, stage)))
	}

	stagesBox := styleBox.Copy().
		Width(min(44, a.width-4)).
		Render(strings.Join(stageLines, "\n"))
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, stagesBox))
	b.WriteString("\n\n")

	hint := styleSubtitle.Render("This can take up to a minute")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, hint))

	return a.centerVertically(b.String())
}
