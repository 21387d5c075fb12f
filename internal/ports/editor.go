package ports

import "os/exec"

// EditorOpener defines the interface for opening result files in an external editor
type EditorOpener interface {
	// OpenFile opens the specified file in the user's preferred editor
	// It uses $EDITOR environment variable, falling back to common editors
	OpenFile(path string, line int) error

	// Command returns an exec.Cmd for opening a file at line (1-based, 0 for
	// the top). This is useful for integrating with bubbletea's ExecProcess
	Command(path string, line int) (*exec.Cmd, error)
}
