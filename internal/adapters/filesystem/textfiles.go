package filesystem

import (
	"fmt"
	"io"
	"os"
	"strings"

	"pdsutils/internal/ports"
)

// TextFiles implements ports.TextFiles on the local filesystem
type TextFiles struct{}

// Ensure TextFiles implements ports.TextFiles
var _ ports.TextFiles = (*TextFiles)(nil)

// NewTextFiles creates a new text file store
func NewTextFiles() *TextFiles {
	return &TextFiles{}
}

// Exists reports whether path is a regular file
func (t *TextFiles) Exists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

// ReadLines returns the lines of path with their endings preserved
func (t *TextFiles) ReadLines(path string) ([]string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return SplitLines(string(content)), nil
}

// SplitLines splits text after each newline. A trailing newline does not
// produce an empty last line.
func SplitLines(text string) []string {
	if text == "" {
		return nil
	}
	lines := strings.SplitAfter(text, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// WriteLines rewrites path in place
func (t *TextFiles) WriteLines(path string, lines []string) error {
	perm := os.FileMode(0644)
	if info, err := os.Stat(path); err == nil {
		perm = info.Mode().Perm()
	}
	if err := os.WriteFile(path, []byte(strings.Join(lines, "")), perm); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// AppendLine appends line to path, starting a new line if the file does not end with one
func (t *TextFiles) AppendLine(path, line string) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_APPEND, 0)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	if len(content) > 0 && content[len(content)-1] != '\n' {
		line = "\n" + line
	}
	if _, err := f.WriteString(line + "\n"); err != nil {
		return fmt.Errorf("failed to append to %s: %w", path, err)
	}
	return nil
}

// Copy duplicates src into dst
func (t *TextFiles) Copy(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", dst, err)
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return fmt.Errorf("failed to copy %s: %w", src, err)
	}
	return out.Close()
}
