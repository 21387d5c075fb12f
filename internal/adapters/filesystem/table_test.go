package filesystem

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"pdsutils/internal/domain"
)

func writeTable(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "position.dat")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write table: %v", err)
	}
	return path
}

const positionTable = `Time X Y Z Roll Pitch Yaw
s m m m deg deg deg
0.0  1.0  2.0  3.0  0.0  0.0  10.0
0.1  1.5  2.0  3.0  0.0  0.5  11.0

0.2  2.0  2.0  3.0  0.0  1.0  12.0
`

func TestTableLoader_Load(t *testing.T) {
	path := writeTable(t, positionTable)

	m, err := NewTableLoader().Load(path, 2, []int{0, 1, 6})
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	rows, cols := m.Dims()
	if rows != 3 || cols != 3 {
		t.Fatalf("expected 3x3, got %dx%d", rows, cols)
	}
	if m.At(1, 1) != 1.5 {
		t.Errorf("At(1, 1) = %v, want 1.5", m.At(1, 1))
	}
	if m.At(2, 2) != 12.0 {
		t.Errorf("At(2, 2) = %v, want 12", m.At(2, 2))
	}
}

func TestTableLoader_ColumnOrder(t *testing.T) {
	path := writeTable(t, positionTable)

	m, err := NewTableLoader().Load(path, 2, []int{6, 0})
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if m.At(0, 0) != 10.0 || m.At(0, 1) != 0.0 {
		t.Errorf("unexpected first row %v, %v", m.At(0, 0), m.At(0, 1))
	}
}

func TestTableLoader_SkipAll(t *testing.T) {
	path := writeTable(t, positionTable)

	m, err := NewTableLoader().Load(path, 10, []int{0})
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if m != nil {
		t.Errorf("expected nil matrix, got %v rows", m.RawMatrix().Rows)
	}
}

func TestTableLoader_Errors(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		columns  []int
		wantLine int
	}{
		{
			name:     "short row",
			content:  "h\nu\n0.0 1.0 2.0\n0.1 1.0\n",
			columns:  []int{0, 2},
			wantLine: 4,
		},
		{
			name:     "not a number",
			content:  "h\nu\n0.0 abc\n",
			columns:  []int{1},
			wantLine: 3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeTable(t, tt.content)

			_, err := NewTableLoader().Load(path, 2, tt.columns)
			var formatErr *domain.TableFormatError
			if !errors.As(err, &formatErr) {
				t.Fatalf("expected TableFormatError, got %v", err)
			}
			if formatErr.Line != tt.wantLine {
				t.Errorf("Line = %d, want %d", formatErr.Line, tt.wantLine)
			}
		})
	}
}

func TestTableLoader_MissingFile(t *testing.T) {
	_, err := NewTableLoader().Load(filepath.Join(t.TempDir(), "missing.dat"), 2, []int{0})
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected not-exist error, got %v", err)
	}
}

func TestTableLoader_NegativeColumn(t *testing.T) {
	path := writeTable(t, positionTable)

	if _, err := NewTableLoader().Load(path, 2, []int{-1}); err == nil {
		t.Error("expected error for negative column")
	}
}
