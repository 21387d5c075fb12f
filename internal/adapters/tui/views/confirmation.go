package views

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"pdsutils/internal/adapters/tui/styles"
)

// ConfirmKeyMap defines key bindings for confirmation prompts
type ConfirmKeyMap struct {
	Confirm key.Binding
	Cancel  key.Binding
}

// DefaultConfirmKeys returns the default confirmation key bindings
var DefaultConfirmKeys = ConfirmKeyMap{
	Confirm: key.NewBinding(
		key.WithKeys("y"),
		key.WithHelp("y", "confirm"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("n", "esc"),
		key.WithHelp("n/esc", "cancel"),
	),
}

// ConfirmationModel is an inline yes/no prompt guarding a destructive command
type ConfirmationModel struct {
	Keys      ConfirmKeyMap
	question  string
	onConfirm tea.Cmd
}

// NewConfirmationModel creates a new confirmation model with default keys
func NewConfirmationModel() ConfirmationModel {
	return ConfirmationModel{
		Keys: DefaultConfirmKeys,
	}
}

// Ask shows question and runs onConfirm if the user accepts
func (m *ConfirmationModel) Ask(question string, onConfirm tea.Cmd) {
	m.question = question
	m.onConfirm = onConfirm
}

// Active reports whether a question is pending
func (m *ConfirmationModel) Active() bool {
	return m.onConfirm != nil
}

// HandleKeyMsg processes key messages while a question is pending.
// Returns (handled, cmd) where handled is true if the key was processed.
func (m *ConfirmationModel) HandleKeyMsg(msg tea.KeyMsg) (bool, tea.Cmd) {
	switch {
	case key.Matches(msg, m.Keys.Cancel):
		m.reset()
		return true, nil
	case key.Matches(msg, m.Keys.Confirm):
		cmd := m.onConfirm
		m.reset()
		return true, cmd
	}
	return false, nil
}

func (m *ConfirmationModel) reset() {
	m.question = ""
	m.onConfirm = nil
}

// View renders the pending question with its key hints
func (m *ConfirmationModel) View() string {
	var b strings.Builder
	b.WriteString(styles.ErrorMsg.Render(m.question))
	b.WriteString(" ")
	b.WriteString(styles.HelpKey.Render("y"))
	b.WriteString(styles.HelpDesc.Render(" to confirm, "))
	b.WriteString(styles.HelpKey.Render("n"))
	b.WriteString(styles.HelpDesc.Render(" to cancel"))
	return b.String()
}
