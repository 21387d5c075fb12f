package views

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"pdsutils/internal/adapters/tui/styles"
	"pdsutils/internal/application/commands"
	"pdsutils/internal/domain"
	"pdsutils/internal/ports"
)

// RunsKeyMap defines key bindings for the run list
type RunsKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	NextPage key.Binding
	PrevPage key.Binding
	Open     key.Binding
	Delete   key.Binding
	Reload   key.Binding
	Help     key.Binding
	Quit     key.Binding
}

var RunsKeys = RunsKeyMap{
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "down"),
	),
	NextPage: key.NewBinding(
		key.WithKeys("ctrl+f", "pgdown"),
		key.WithHelp("ctrl+f", "next page"),
	),
	PrevPage: key.NewBinding(
		key.WithKeys("ctrl+b", "pgup"),
		key.WithHelp("ctrl+b", "prev page"),
	),
	Open: key.NewBinding(
		key.WithKeys("enter", "l", "right"),
		key.WithHelp("enter", "report"),
	),
	Delete: key.NewBinding(
		key.WithKeys("d"),
		key.WithHelp("d", "delete"),
	),
	Reload: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "reload"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// listChrome is the number of lines around the run rows
const listChrome = 10

// RunsModel lists recorded scans, newest first
type RunsModel struct {
	ViewState
	history ports.ScanHistory
	runs    []domain.RunSummary
	pager   pager
	spinner spinner.Model
	loading bool
	confirm ConfirmationModel
}

// NewRunsModel creates a new run list model
func NewRunsModel(history ports.ScanHistory) *RunsModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = styles.MutedText

	return &RunsModel{
		history: history,
		pager:   pager{size: 10},
		spinner: s,
		confirm: NewConfirmationModel(),
	}
}

type runsLoadedMsg struct {
	runs []domain.RunSummary
}

type runLoadedMsg struct {
	run *domain.ScanRun
}

type runDeletedMsg struct {
	id      string
	message string
}

// Init loads the run list
func (m *RunsModel) Init() tea.Cmd {
	return m.Reload()
}

// Reload fetches the run list again
func (m *RunsModel) Reload() tea.Cmd {
	m.loading = true
	return tea.Batch(m.spinner.Tick, m.loadRuns)
}

func (m *RunsModel) loadRuns() tea.Msg {
	result, err := commands.NewListRunsCommand(m.history, 0).Execute(context.Background())
	if err != nil {
		return errMsg{err}
	}
	return runsLoadedMsg{result.Runs}
}

func (m *RunsModel) loadRun(id string) tea.Cmd {
	return func() tea.Msg {
		result, err := commands.NewShowRunCommand(m.history, id).Execute(context.Background())
		if err != nil {
			return errMsg{err}
		}
		return runLoadedMsg{result.Run}
	}
}

func (m *RunsModel) deleteRun(id string) tea.Cmd {
	return func() tea.Msg {
		result, err := commands.NewDeleteRunCommand(m.history, id).Execute(context.Background())
		if err != nil {
			return errMsg{err}
		}
		return runDeletedMsg{id: result.ID, message: result.Message}
	}
}

// SetSize updates the view dimensions and the page size
func (m *RunsModel) SetSize(width, height int) {
	m.ViewState.SetSize(width, height)
	m.pager.resize(height - listChrome)
}

// Selected returns the run under the cursor
func (m *RunsModel) Selected() (domain.RunSummary, bool) {
	cursor := m.pager.cursor
	if cursor < 0 || cursor >= len(m.runs) {
		return domain.RunSummary{}, false
	}
	return m.runs[cursor], true
}

// Update handles messages for the run list
func (m *RunsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case spinner.TickMsg:
		if m.loading {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
		return m, nil

	case runsLoadedMsg:
		m.loading = false
		m.runs = msg.runs
		m.pager.setTotal(len(m.runs))
		return m, nil

	case runLoadedMsg:
		return m, func() tea.Msg { return SwitchToReportMsg{Run: msg.run} }

	case runDeletedMsg:
		for i, r := range m.runs {
			if r.ID == msg.id {
				m.runs = append(m.runs[:i], m.runs[i+1:]...)
				m.pager.setTotal(len(m.runs))
				break
			}
		}
		m.SetMessage(msg.message, false)
		return m, nil

	case errMsg:
		m.loading = false
		m.SetMessage(msg.err.Error(), true)
		return m, nil

	case tea.KeyMsg:
		if m.confirm.Active() {
			handled, cmd := m.confirm.HandleKeyMsg(msg)
			if handled {
				return m, cmd
			}
			return m, nil
		}
		return m.handleKey(msg)
	}

	return m, nil
}

func (m *RunsModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.ClearMessage()

	switch {
	case key.Matches(msg, RunsKeys.Quit):
		return m, tea.Quit
	case key.Matches(msg, RunsKeys.Up):
		m.pager.move(-1)
	case key.Matches(msg, RunsKeys.Down):
		m.pager.move(1)
	case key.Matches(msg, RunsKeys.NextPage):
		m.pager.turn(1)
	case key.Matches(msg, RunsKeys.PrevPage):
		m.pager.turn(-1)
	case key.Matches(msg, RunsKeys.Reload):
		return m, m.Reload()
	case key.Matches(msg, RunsKeys.Help):
		return m, func() tea.Msg { return SwitchToHelpMsg{} }
	case key.Matches(msg, RunsKeys.Open):
		if run, ok := m.Selected(); ok {
			return m, m.loadRun(run.ID)
		}
	case key.Matches(msg, RunsKeys.Delete):
		if run, ok := m.Selected(); ok {
			id := run.ID
			m.confirm.Ask(fmt.Sprintf("Delete scan %s of %s?", shortID(id), run.Root), m.deleteRun(id))
		}
	}
	return m, nil
}

// View renders the run list
func (m *RunsModel) View() string {
	v := NewViewBuilder().Title("Recorded scans")

	switch {
	case m.loading:
		v.Line(m.spinner.View() + " Loading scan history...")
		return v.String()

	case len(m.runs) == 0:
		v.Muted("No scans recorded yet. Run `pdsutils-cli scan --record` to add one.")
		v.BlankLine()
		v.Message(m.Message, m.MessageErr)
		v.Help(RunsKeys.Reload, RunsKeys.Help, RunsKeys.Quit)
		return v.String()
	}

	start, end := m.pager.visible()
	cursor := m.pager.cursor
	for i, r := range m.runs[start:end] {
		line := formatRunLine(r)
		if start+i == cursor {
			v.Line(styles.RowSelected.Render(" > " + line + " "))
		} else {
			v.Line("   " + line)
		}
	}
	if m.pager.pages() > 1 {
		v.BlankLine()
		v.Muted(fmt.Sprintf("Page %d/%d", m.pager.page(), m.pager.pages()))
	}
	v.BlankLine()

	if m.confirm.Active() {
		v.Line(m.confirm.View())
		return v.String()
	}

	v.Message(m.Message, m.MessageErr)
	v.Help(RunsKeys.Up, RunsKeys.Down, RunsKeys.Open, RunsKeys.Delete, RunsKeys.Reload, RunsKeys.Help, RunsKeys.Quit)
	return v.String()
}

func formatRunLine(r domain.RunSummary) string {
	return strings.Join([]string{
		r.CreatedAt.Format("2006-01-02 15:04"),
		shortID(r.ID),
		fmt.Sprintf("%dx%d realizations, %d bodies", r.Cases, r.Reals, r.Bodies),
		r.Root,
	}, "  ")
}

// shortID returns the first block of a UUID
func shortID(id string) string {
	if i := strings.IndexByte(id, '-'); i > 0 {
		return id[:i]
	}
	return id
}

// pager keeps the cursor inside the run list and derives the visible page
// from it
type pager struct {
	cursor int
	size   int
	total  int
}

// resize sets how many rows fit on screen
func (p *pager) resize(rows int) {
	if rows > 0 {
		p.size = rows
	}
}

// setTotal clamps the cursor after the list grew or shrank
func (p *pager) setTotal(n int) {
	p.total = n
	p.cursor = max(0, min(p.cursor, n-1))
}

// move shifts the cursor by delta rows, stopping at either end
func (p *pager) move(delta int) {
	p.cursor = max(0, min(p.cursor+delta, p.total-1))
}

// turn jumps to the first row of the next (1) or previous (-1) page
func (p *pager) turn(dir int) {
	start, _ := p.visible()
	next := start + dir*p.size
	if next < 0 || next >= p.total {
		return
	}
	p.cursor = next
}

// visible returns the [start, end) rows of the cursor's page
func (p *pager) visible() (int, int) {
	start := (p.cursor / p.size) * p.size
	return start, min(start+p.size, p.total)
}

func (p *pager) page() int {
	return p.cursor/p.size + 1
}

func (p *pager) pages() int {
	if p.total == 0 {
		return 1
	}
	return (p.total + p.size - 1) / p.size
}
