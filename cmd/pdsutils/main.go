package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"pdsutils/internal/adapters/editor"
	"pdsutils/internal/adapters/sqlite"
	"pdsutils/internal/adapters/tui"
	"pdsutils/internal/config"
)

func main() {
	dbFlag := flag.String("db", config.HistoryPath(), "scan history database")
	flag.Parse()

	// Initialize adapters
	history := sqlite.NewHistory()
	if err := history.Open(*dbFlag); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer history.Close()
	editorOpener := editor.NewOpener()

	// Create and run TUI app
	app := tui.NewApp(history, editorOpener)

	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		history.Close()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
