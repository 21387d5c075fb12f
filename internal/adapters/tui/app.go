package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"pdsutils/internal/adapters/tui/views"
	"pdsutils/internal/ports"
)

// ViewState represents the current view
type ViewState int

const (
	ViewRuns ViewState = iota
	ViewReport
	ViewHelp
)

// App is the main TUI application model
type App struct {
	history ports.ScanHistory
	editor  ports.EditorOpener

	state  ViewState
	runs   *views.RunsModel
	report *views.ReportModel
	help   *views.HelpModel

	width  int
	height int
}

// NewApp creates a new TUI application. A nil editor disables opening result files.
func NewApp(history ports.ScanHistory, ed ports.EditorOpener) *App {
	return &App{
		history: history,
		editor:  ed,
		state:   ViewRuns,
		runs:    views.NewRunsModel(history),
		report:  views.NewReportModel(ed != nil),
		help:    views.NewHelpModel(),
	}
}

// Init initializes the application
func (a *App) Init() tea.Cmd {
	return a.runs.Init()
}

// Update handles messages for the application
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.runs.SetSize(msg.Width, msg.Height)
		a.report.SetSize(msg.Width, msg.Height)
		a.help.SetSize(msg.Width, msg.Height)
		return a, nil

	// View switching messages
	case views.SwitchToReportMsg:
		a.state = ViewReport
		a.report.SetRun(msg.Run)
		return a, a.report.Init()

	case views.SwitchToHelpMsg:
		a.state = ViewHelp
		return a, nil

	case views.SwitchToRunsMsg:
		a.state = ViewRuns
		if msg.Reload {
			return a, a.runs.Reload()
		}
		return a, nil

	case views.OpenEditorMsg:
		return a, a.openEditor(msg.Path, msg.Line)

	case editorFinishedMsg:
		if msg.err != nil {
			a.report.SetMessage(msg.err.Error(), true)
		}
		return a, nil
	}

	// Delegate to current view
	var cmd tea.Cmd
	switch a.state {
	case ViewRuns:
		_, cmd = a.runs.Update(msg)
	case ViewReport:
		_, cmd = a.report.Update(msg)
	case ViewHelp:
		_, cmd = a.help.Update(msg)
	}

	return a, cmd
}

type editorFinishedMsg struct{ err error }

func (a *App) openEditor(path string, line int) tea.Cmd {
	if a.editor == nil {
		return nil
	}

	cmd, err := a.editor.Command(path, line)
	if err != nil {
		return func() tea.Msg {
			return editorFinishedMsg{err: err}
		}
	}

	return tea.ExecProcess(cmd, func(err error) tea.Msg {
		return editorFinishedMsg{err: err}
	})
}

// View renders the current view
func (a *App) View() string {
	switch a.state {
	case ViewReport:
		return a.report.View()
	case ViewHelp:
		return a.help.View()
	default:
		return a.runs.View()
	}
}
