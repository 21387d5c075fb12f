package views

import "pdsutils/internal/domain"

// ViewState contains common state shared by all view models.
// Embed this struct in view models to get width/height and message handling.
type ViewState struct {
	Width      int
	Height     int
	Message    string
	MessageErr bool
}

// SetSize updates the view dimensions
func (s *ViewState) SetSize(width, height int) {
	s.Width = width
	s.Height = height
}

// SetMessage sets a message to display in the view
func (s *ViewState) SetMessage(msg string, isErr bool) {
	s.Message = msg
	s.MessageErr = isErr
}

// ClearMessage clears the current message
func (s *ViewState) ClearMessage() {
	s.Message = ""
	s.MessageErr = false
}

// Messages shared between views and the app

// SwitchToRunsMsg returns to the run list
type SwitchToRunsMsg struct {
	Reload bool
}

// SwitchToReportMsg opens the report of a recorded scan
type SwitchToReportMsg struct {
	Run *domain.ScanRun
}

// SwitchToHelpMsg opens the help view
type SwitchToHelpMsg struct{}

// OpenEditorMsg asks the app to open path at line in the editor
type OpenEditorMsg struct {
	Path string
	Line int
}

type errMsg struct {
	err error
}
