package ports

import "gonum.org/v1/gonum/mat"

// TableLoader loads whitespace-delimited numeric tables such as position.dat
type TableLoader interface {
	// Load skips the first skipRows lines of path and returns the requested
	// columns (0-based) as a rows x len(columns) matrix, in the order given.
	// A table with no remaining rows yields a nil matrix and no error.
	Load(path string, skipRows int, columns []int) (*mat.Dense, error)
}
