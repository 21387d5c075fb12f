package filesystem

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/mat"

	"pdsutils/internal/domain"
	"pdsutils/internal/ports"
)

// TableLoader implements ports.TableLoader for whitespace-delimited text tables
type TableLoader struct{}

// Ensure TableLoader implements ports.TableLoader
var _ ports.TableLoader = (*TableLoader)(nil)

// NewTableLoader creates a new table loader
func NewTableLoader() *TableLoader {
	return &TableLoader{}
}

// Load reads the selected columns of path after skipping skipRows lines.
// Blank lines after the skipped block are ignored.
func (l *TableLoader) Load(path string, skipRows int, columns []int) (*mat.Dense, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	maxCol := 0
	for _, c := range columns {
		if c < 0 {
			return nil, fmt.Errorf("invalid column index %d", c)
		}
		maxCol = max(maxCol, c)
	}

	var data []float64
	rows := 0
	lineNo := 0
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)
	for scanner.Scan() {
		lineNo++
		if lineNo <= skipRows {
			continue
		}

		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		if len(fields) <= maxCol {
			return nil, &domain.TableFormatError{
				Path:   path,
				Line:   lineNo,
				Reason: fmt.Sprintf("expected at least %d columns, got %d", maxCol+1, len(fields)),
			}
		}

		for _, c := range columns {
			v, err := strconv.ParseFloat(fields[c], 64)
			if err != nil {
				return nil, &domain.TableFormatError{
					Path:   path,
					Line:   lineNo,
					Reason: fmt.Sprintf("column %d: %q is not a number", c, fields[c]),
				}
			}
			data = append(data, v)
		}
		rows++
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	if rows == 0 || len(columns) == 0 {
		return nil, nil
	}
	return mat.NewDense(rows, len(columns), data), nil
}
