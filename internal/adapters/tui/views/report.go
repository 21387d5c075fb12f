package views

import (
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"pdsutils/internal/adapters/editor"
	"pdsutils/internal/domain"
)

// ReportKeyMap defines key bindings for the report view
type ReportKeyMap struct {
	Up   key.Binding
	Down key.Binding
	Copy key.Binding
	Open key.Binding
	Back key.Binding
	Quit key.Binding
}

var ReportKeys = ReportKeyMap{
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "down"),
	),
	Copy: key.NewBinding(
		key.WithKeys("c", "y"),
		key.WithHelp("c", "copy realization"),
	),
	Open: key.NewBinding(
		key.WithKeys("o", "enter"),
		key.WithHelp("o", "open position.dat"),
	),
	Back: key.NewBinding(
		key.WithKeys("esc", "h", "left"),
		key.WithHelp("esc", "back"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// ReportModel shows the per-axis result of one recorded scan
type ReportModel struct {
	ViewState
	run        *domain.ScanRun
	cursor     int
	canEdit    bool
	copyToClip func(string) error
}

// NewReportModel creates a new report view model
func NewReportModel(canEdit bool) *ReportModel {
	return &ReportModel{
		canEdit:    canEdit,
		copyToClip: clipboard.WriteAll,
	}
}

// SetRun replaces the displayed scan
func (m *ReportModel) SetRun(run *domain.ScanRun) {
	m.run = run
	m.cursor = 0
	m.ClearMessage()
}

// Init initializes the report view
func (m *ReportModel) Init() tea.Cmd {
	return nil
}

// selectedStat returns the axis under the cursor
func (m *ReportModel) selectedStat() (domain.Axis, domain.AxisStat, bool) {
	if m.run == nil || m.run.Stats == nil || m.cursor >= len(m.run.Stats.Axes) {
		return "", domain.AxisStat{}, false
	}
	axis := m.run.Stats.Axes[m.cursor]
	st, ok := m.run.Stats.Get(axis)
	return axis, st, ok
}

// WinningFile returns the position.dat of the first body in the winning pair
// of the selected axis, with the line holding the winning sample
func (m *ReportModel) WinningFile() (string, int, error) {
	axis, st, ok := m.selectedStat()
	if !ok {
		return "", 0, fmt.Errorf("no axis selected")
	}
	if !st.Found {
		return "", 0, fmt.Errorf("%s has no recorded maximum", axis)
	}
	if st.Pair < 0 || st.Pair >= len(m.run.Params.Chain) {
		return "", 0, fmt.Errorf("pair %d outside the body chain", st.Pair)
	}

	caseNum, realNum, err := domain.ParseRealizationTag(st.Which)
	if err != nil {
		return "", 0, err
	}
	path := domain.PositionPath(m.run.Params.Root, caseNum, realNum, m.run.Params.Chain[st.Pair])
	return path, editor.SampleLine(st.Time, m.run.Params.SampleInterval), nil
}

// Update handles messages for the report view
func (m *ReportModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		m.ClearMessage()

		switch {
		case key.Matches(msg, ReportKeys.Quit):
			return m, tea.Quit

		case key.Matches(msg, ReportKeys.Back):
			return m, func() tea.Msg { return SwitchToRunsMsg{} }

		case key.Matches(msg, ReportKeys.Up):
			if m.cursor > 0 {
				m.cursor--
			}

		case key.Matches(msg, ReportKeys.Down):
			if m.run != nil && m.cursor < len(m.run.Stats.Axes)-1 {
				m.cursor++
			}

		case key.Matches(msg, ReportKeys.Copy):
			axis, st, ok := m.selectedStat()
			if !ok || !st.Found {
				m.SetMessage("Nothing to copy", true)
				return m, nil
			}
			if err := m.copyToClip(st.Which); err != nil {
				m.SetMessage("Copy failed: "+err.Error(), true)
				return m, nil
			}
			m.SetMessage(fmt.Sprintf("Copied %s realization: %s", axis, st.Which), false)

		case key.Matches(msg, ReportKeys.Open):
			if !m.canEdit {
				return m, nil
			}
			path, line, err := m.WinningFile()
			if err != nil {
				m.SetMessage(err.Error(), true)
				return m, nil
			}
			return m, func() tea.Msg { return OpenEditorMsg{Path: path, Line: line} }
		}
	}

	return m, nil
}

// View renders the report
func (m *ReportModel) View() string {
	v := NewViewBuilder()
	if m.run == nil {
		return v.Title("Scan report").Muted("No scan selected").String()
	}

	v.Title("Scan " + m.run.ID)
	v.Line(RenderRunParams(m.run))
	v.BlankLine()
	v.Raw(RenderStatsTable(m.run.Stats, m.cursor))
	v.BlankLine()
	v.Message(m.Message, m.MessageErr)

	bindings := []key.Binding{ReportKeys.Up, ReportKeys.Down, ReportKeys.Copy}
	if m.canEdit {
		bindings = append(bindings, ReportKeys.Open)
	}
	bindings = append(bindings, ReportKeys.Back, ReportKeys.Quit)
	v.Help(bindings...)

	return v.String()
}
