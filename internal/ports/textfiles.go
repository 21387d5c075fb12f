package ports

// TextFiles defines line-oriented access to simulator sim/ini/dat files
type TextFiles interface {
	// Exists reports whether path names a regular file
	Exists(path string) bool

	// ReadLines returns the file's lines, each keeping its line ending
	ReadLines(path string) ([]string, error)

	// WriteLines replaces the file contents, keeping its permissions
	WriteLines(path string, lines []string) error

	// AppendLine adds line plus a newline at the end of the file
	AppendLine(path, line string) error

	// Copy duplicates src to dst, overwriting dst
	Copy(src, dst string) error
}
