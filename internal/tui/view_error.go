package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (a *App) renderError() string {
	var b strings.Builder

	title := lipgloss.NewStyle().
		Foreground(colorError).
		Bold(true).
		Render("Something went wrong")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, title))
	b.WriteString("\n\n")

	errMsg := "Unknown error"
	if err := a.state.session.Err(); err != nil {
		errMsg = err.Error()
	} else if a.state.providerError != nil {
		errMsg = a.state.providerError.Error()
	}

	errBox := styleBox.Copy().
		Width(min(60, a.width-4)).
		BorderForeground(colorError).
		Render(errMsg)
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, errBox))
	b.WriteString("\n\n")

	var suggestions []string
	errLower := strings.ToLower(errMsg)

	if strings.Contains(errLower, "api key") || strings.Contains(errLower, "401") || strings.Contains(errLower, "unauthorized") {
		suggestions = append(suggestions, "Check your API key in ~/.config/kiminote/config.yaml")
		suggestions = append(suggestions, "Or set KIMINOTE_API_KEY in the environment")
	} else if strings.Contains(errLower, "connection") || strings.Contains(errLower, "connect") || strings.Contains(errLower, "timeout") {
		suggestions = append(suggestions, "Check your internet connection")
		suggestions = append(suggestions, "Then press [Esc] and try again")
	} else if strings.Contains(errLower, "not found") || strings.Contains(errLower, "no such file") {
		suggestions = append(suggestions, "Check the file path is correct")
		suggestions = append(suggestions, "Make sure the file exists and is readable")
	} else if strings.Contains(errLower, "convert to pdf") || strings.Contains(errLower, "unsupported") {
		suggestions = append(suggestions, "Supported formats: pdf, md, txt, csv, json")
		suggestions = append(suggestions, "Export office documents to PDF first")
	} else if strings.Contains(errLower, "rate limit") || strings.Contains(errLower, "429") {
		suggestions = append(suggestions, "You've hit the API rate limit")
		suggestions = append(suggestions, "Wait a moment and try again")
	} else if strings.Contains(errLower, "response") || strings.Contains(errLower, "slides") {
		suggestions = append(suggestions, "The model returned an unusable deck")
		suggestions = append(suggestions, "Try again, or try a different model")
	}

	if len(suggestions) > 0 {
		suggBox := styleBox.Copy().
			Width(min(60, a.width-4)).
			BorderForeground(colorMuted).
			Render("Suggestions:\n" + strings.Join(suggestions, "\n"))
		b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, suggBox))
		b.WriteString("\n\n")
	}

	status := styleStatusBar.Render("[Esc] Back")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, status))

	return a.centerVertically(b.String())
}
