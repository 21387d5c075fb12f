package editor

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"pdsutils/internal/domain"
	"pdsutils/internal/ports"
)

// Opener implements ports.EditorOpener
type Opener struct {
	lookup func(string) string
}

// Ensure Opener implements EditorOpener
var _ ports.EditorOpener = (*Opener)(nil)

// NewOpener creates a new editor opener
func NewOpener() *Opener {
	return &Opener{lookup: os.Getenv}
}

// OpenFile opens a file in the user's preferred editor
func (o *Opener) OpenFile(path string, line int) error {
	cmd, err := o.Command(path, line)
	if err != nil {
		return err
	}
	return cmd.Run()
}

// Command returns an exec.Cmd for opening a file in the editor
// This is useful for integrating with bubbletea's ExecProcess
func (o *Opener) Command(path string, line int) (*exec.Cmd, error) {
	editor := o.findEditor()
	if editor == "" {
		return nil, fmt.Errorf("no editor found: set $EDITOR environment variable")
	}

	fields := strings.Fields(editor)
	args := append(fields[1:], editorArgs(fields[0], path, line)...)
	cmd := exec.Command(fields[0], args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	return cmd, nil
}

// editorArgs positions the cursor on line for editors that support it
func editorArgs(editor, path string, line int) []string {
	if line <= 0 {
		return []string{path}
	}
	switch filepath.Base(editor) {
	case "vi", "vim", "nvim", "nano", "emacs", "hx", "kak", "micro":
		return []string{fmt.Sprintf("+%d", line), path}
	case "code", "codium":
		return []string{"--goto", fmt.Sprintf("%s:%d", path, line)}
	default:
		return []string{path}
	}
}

// SampleLine returns the 1-based position.dat line holding the sample at
// time t, given the spacing between rows
func SampleLine(t, sampleInterval float64) int {
	if sampleInterval <= 0 {
		return 0
	}
	return domain.PositionHeaderRows + domain.WarmupRows(t, sampleInterval) + 1
}

// findEditor returns the editor to use
func (o *Opener) findEditor() string {
	// Check $EDITOR first
	if editor := o.lookup("EDITOR"); editor != "" {
		return editor
	}

	// Check $VISUAL
	if visual := o.lookup("VISUAL"); visual != "" {
		return visual
	}

	// Try common editors
	editors := []string{"nvim", "vim", "vi", "nano", "code"}
	for _, editor := range editors {
		if path, err := exec.LookPath(editor); err == nil {
			return path
		}
	}

	return ""
}
