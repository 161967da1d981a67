package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"

	"github.com/kiminote/kiminote/internal/logging"
	"github.com/kiminote/kiminote/internal/tui"
)

var version = "dev"

func main() {
	// A local .env can carry GEMINI_API_KEY during development.
	_ = godotenv.Load()

	log := logging.New()
	log.Info().Str("version", version).Msg("starting")

	app := tui.NewApp(log)
	p := tea.NewProgram(
		app,
		tea.WithAltScreen(),
	)

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
