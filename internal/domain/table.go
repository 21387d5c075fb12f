package domain

import "fmt"

// TableFormatError reports a malformed cell or short row in a numeric table
type TableFormatError struct {
	Path   string
	Line   int
	Reason string
}

func (e *TableFormatError) Error() string {
	return fmt.Sprintf("%s:%d: %s", e.Path, e.Line, e.Reason)
}
