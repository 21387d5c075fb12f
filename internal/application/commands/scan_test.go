package commands

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gonum.org/v1/gonum/mat"

	"pdsutils/internal/adapters/filesystem"
	"pdsutils/internal/application"
	"pdsutils/internal/domain"
)

// countingLoader records calls and fails any file access
type countingLoader struct {
	calls int
}

func (l *countingLoader) Load(path string, skipRows int, columns []int) (*mat.Dense, error) {
	l.calls++
	return nil, &fs.PathError{Op: "open", Path: path, Err: fs.ErrNotExist}
}

// sample is one position.dat row: time followed by x, y, z, roll, pitch, yaw
type sample [7]float64

func yawSample(t, yaw float64) sample {
	return sample{t, 0, 0, 0, 0, 0, yaw}
}

// writePosition writes a position.dat with the two header rows
func writePosition(t *testing.T, root string, caseNum, realNum int, body string, rows []sample) {
	t.Helper()
	path := domain.PositionPath(root, caseNum, realNum, body)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("failed to create results dir: %v", err)
	}

	var b strings.Builder
	b.WriteString("Rigid body position\n")
	b.WriteString("t(sec) x(m) y(m) z(m) roll(deg) pitch(deg) yaw(deg)\n")
	for _, r := range rows {
		for i, v := range r {
			if i > 0 {
				b.WriteString("  ")
			}
			fmt.Fprintf(&b, "%g", v)
		}
		b.WriteString("\n")
	}
	if err := os.WriteFile(path, []byte(b.String()), 0644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
}

func TestScanCommand_Validate(t *testing.T) {
	chain := []string{"Walkway1", "Walkway2"}
	tests := []struct {
		name    string
		cmd     *ScanCommand
		wantErr error
		errMsg  string
	}{
		{
			name: "valid",
			cmd:  NewScanCommand(nil, "root", []int{1, 9}, []int{1}, chain, 0),
		},
		{
			name:    "empty root",
			cmd:     NewScanCommand(nil, "", []int{1}, []int{1}, chain, 0),
			wantErr: application.ErrInvalidValue,
			errMsg:  "root is required",
		},
		{
			name:    "case zero",
			cmd:     NewScanCommand(nil, "root", []int{0}, []int{1}, chain, 0),
			wantErr: application.ErrOutOfRange,
			errMsg:  "case: 0 not in [1, 9]",
		},
		{
			name:    "realization ten",
			cmd:     NewScanCommand(nil, "root", []int{1}, []int{2, 10}, chain, 0),
			wantErr: application.ErrOutOfRange,
			errMsg:  "realization: 10 not in [1, 9]",
		},
		{
			name:    "no cases",
			cmd:     NewScanCommand(nil, "root", nil, []int{1}, chain, 0),
			wantErr: application.ErrInvalidValue,
		},
		{
			name:    "unknown axis",
			cmd:     NewScanCommand(nil, "root", []int{1}, []int{1}, chain, 0).WithAxes([]string{"yaw", "surge"}),
			wantErr: application.ErrInvalidValue,
			errMsg:  "surge",
		},
		{
			name:    "body without suffix",
			cmd:     NewScanCommand(nil, "root", []int{1}, []int{1}, []string{"Walkway1", "Walkway"}, 0),
			wantErr: application.ErrInvalidValue,
			errMsg:  "numeric suffix",
		},
		{
			name:    "single body",
			cmd:     NewScanCommand(nil, "root", []int{1}, []int{1}, []string{"Walkway1"}, 0),
			wantErr: application.ErrInvalidValue,
			errMsg:  "at least 2 bodies",
		},
		{
			name:    "empty chain",
			cmd:     NewScanCommand(nil, "root", []int{1}, []int{1}, nil, 0),
			wantErr: application.ErrInvalidValue,
		},
		{
			name:    "negative start time",
			cmd:     NewScanCommand(nil, "root", []int{1}, []int{1}, chain, -1),
			wantErr: application.ErrInvalidValue,
		},
		{
			name:    "zero sample interval",
			cmd:     NewScanCommand(nil, "root", []int{1}, []int{1}, chain, 0).WithSampleInterval(0),
			wantErr: application.ErrInvalidValue,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cmd.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected %v, got %v", tt.wantErr, err)
			}
			if !contains(err.Error(), tt.errMsg) {
				t.Errorf("expected error containing %q, got %q", tt.errMsg, err.Error())
			}
		})
	}
}

func TestScanCommand_InvalidInputNeverTouchesFiles(t *testing.T) {
	chain := []string{"Walkway1", "Walkway2"}
	cmds := []*ScanCommand{
		NewScanCommand(nil, "root", []int{1}, []int{1}, chain, 0).WithAxes([]string{"heave"}),
		NewScanCommand(nil, "root", []int{1, 12}, []int{1}, chain, 0),
		NewScanCommand(nil, "root", []int{1}, []int{0}, chain, 0),
	}
	for _, cmd := range cmds {
		loader := &countingLoader{}
		cmd.loader = loader
		if _, err := cmd.Execute(context.Background()); err == nil {
			t.Error("expected error")
		}
		if loader.calls != 0 {
			t.Errorf("expected no file access, got %d loads", loader.calls)
		}
	}
}

func TestScanCommand_AdjacentYaw(t *testing.T) {
	root := t.TempDir()
	chain := []string{"Walkway1", "Walkway2", "Walkway3"}
	for i, yaw := range []float64{0, 5, 1} {
		writePosition(t, root, 1, 1, chain[i], []sample{yawSample(0, yaw)})
	}

	cmd := NewScanCommand(filesystem.NewTableLoader(), root, []int{1}, []int{1}, chain, 0).
		WithAxes([]string{"yaw"})
	result, err := cmd.Execute(context.Background())
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	st, ok := result.Stats.Get(domain.AxisYaw)
	if !ok {
		t.Fatal("yaw missing from stats")
	}
	if !st.Found || st.Max != 5 {
		t.Errorf("expected max 5, got %+v", st)
	}
	if st.Index != 1 || st.Pair != 0 {
		t.Errorf("expected pair between Walkway1 and Walkway2, got index %d pair %d", st.Index, st.Pair)
	}
	if st.Which != "Case01, Realization001" {
		t.Errorf("unexpected tag %q", st.Which)
	}
	if len(result.Stats.Axes) != 1 {
		t.Errorf("expected only yaw tracked, got %v", result.Stats.Axes)
	}
}

func TestScanCommand_ChainOrderNotSuffixOrder(t *testing.T) {
	root := t.TempDir()
	// Walkway3 sits between Walkway1 and Walkway2 in the chain
	chain := []string{"Walkway1", "Walkway3", "Walkway2"}
	values := map[string]float64{"Walkway1": 0, "Walkway3": 1, "Walkway2": 10}
	for _, body := range chain {
		writePosition(t, root, 1, 1, body, []sample{yawSample(0, values[body])})
	}

	result, err := NewScanCommand(filesystem.NewTableLoader(), root, []int{1}, []int{1}, chain, 0).Execute(context.Background())
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	st, _ := result.Stats.Get(domain.AxisYaw)
	if st.Max != 9 || st.Index != 3 || st.Pair != 1 {
		t.Errorf("expected 9 between Walkway3 and Walkway2, got %+v", st)
	}
}

func TestScanCommand_AcrossRealizations(t *testing.T) {
	root := t.TempDir()
	chain := []string{"Walkway1", "Walkway2"}

	// Case01/Realization001: peak roll 2 at t=0.1
	writePosition(t, root, 1, 1, "Walkway1", []sample{{0, 0, 0, 0, 0, 0, 0}, {0.1, 0, 0, 0, 1, 0, 0}})
	writePosition(t, root, 1, 1, "Walkway2", []sample{{0, 0, 0, 0, 1, 0, 0}, {0.1, 0, 0, 0, 3, 0, 0}})
	// Case02/Realization001: peak roll 4 at t=0.0, x differs by 1
	writePosition(t, root, 2, 1, "Walkway1", []sample{{0, 1, 0, 0, 4, 0, 0}, {0.1, 0, 0, 0, 0, 0, 0}})
	writePosition(t, root, 2, 1, "Walkway2", []sample{{0, 0, 0, 0, 0, 0, 0}, {0.1, 0, 0, 0, 0, 0, 0}})

	// x differences: Case01 none, Case02 1 at t=0
	result, err := NewScanCommand(filesystem.NewTableLoader(), root, []int{1, 2}, []int{1}, chain, 0).
		WithAxes([]string{"x", "roll", "pitch"}).
		Execute(context.Background())
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if result.Realizations != 2 {
		t.Errorf("expected 2 realizations, got %d", result.Realizations)
	}

	roll, _ := result.Stats.Get(domain.AxisRoll)
	if roll.Max != 4 || roll.Time != 0 || roll.Which != "Case02, Realization001" {
		t.Errorf("unexpected roll stat %+v", roll)
	}

	x, _ := result.Stats.Get(domain.AxisX)
	if x.Max != 1 || x.Which != "Case02, Realization001" {
		t.Errorf("unexpected x stat %+v", x)
	}

	pitch, _ := result.Stats.Get(domain.AxisPitch)
	if pitch.Found || pitch.Max != 0 {
		t.Errorf("all-zero pitch should report no maximum, got %+v", pitch)
	}
}

func TestScanCommand_TieKeepsFirstRealization(t *testing.T) {
	root := t.TempDir()
	chain := []string{"Walkway1", "Walkway2"}
	for _, realNum := range []int{1, 2} {
		writePosition(t, root, 1, realNum, "Walkway1", []sample{yawSample(0, 0)})
		writePosition(t, root, 1, realNum, "Walkway2", []sample{yawSample(0, 7)})
	}

	result, err := NewScanCommand(filesystem.NewTableLoader(), root, []int{1}, []int{1, 2}, chain, 0).Execute(context.Background())
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	st, _ := result.Stats.Get(domain.AxisYaw)
	if st.Which != "Case01, Realization001" {
		t.Errorf("tie should keep the first realization, got %q", st.Which)
	}

	// Reversed order: the first visited wins
	result, err = NewScanCommand(filesystem.NewTableLoader(), root, []int{1}, []int{2, 1}, chain, 0).Execute(context.Background())
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	st, _ = result.Stats.Get(domain.AxisYaw)
	if st.Which != "Case01, Realization002" {
		t.Errorf("tie should keep the first realization, got %q", st.Which)
	}
}

func TestScanCommand_StartTimeSkipsWarmup(t *testing.T) {
	root := t.TempDir()
	chain := []string{"Walkway1", "Walkway2"}
	// A large transient in the first 0.3 s, a smaller difference afterwards
	writePosition(t, root, 1, 1, "Walkway1", []sample{
		yawSample(0, 0), yawSample(0.1, 0), yawSample(0.2, 0), yawSample(0.3, 0), yawSample(0.4, 0),
	})
	writePosition(t, root, 1, 1, "Walkway2", []sample{
		yawSample(0, 50), yawSample(0.1, 40), yawSample(0.2, 30), yawSample(0.3, 2), yawSample(0.4, 3),
	})

	result, err := NewScanCommand(filesystem.NewTableLoader(), root, []int{1}, []int{1}, chain, 0.3).
		WithSampleInterval(0.1).
		Execute(context.Background())
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if got := result.Params.RowSkip(); got != 5 {
		t.Errorf("expected 5 skipped rows, got %d", got)
	}
	st, _ := result.Stats.Get(domain.AxisYaw)
	if st.Max != 3 || st.Time != 0.4 {
		t.Errorf("expected warm-up skipped, got %+v", st)
	}

	// A coarser interval skips fewer rows
	result, err = NewScanCommand(filesystem.NewTableLoader(), root, []int{1}, []int{1}, chain, 0.3).
		WithSampleInterval(0.2).
		Execute(context.Background())
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	st, _ = result.Stats.Get(domain.AxisYaw)
	if st.Max != 40 || st.Time != 0.1 {
		t.Errorf("expected one warm-up row skipped, got %+v", st)
	}
}

func TestScanCommand_WarmupConsumesAllSamples(t *testing.T) {
	root := t.TempDir()
	chain := []string{"Walkway1", "Walkway2"}
	writePosition(t, root, 1, 1, "Walkway1", []sample{yawSample(0, 0), yawSample(0.1, 0)})
	writePosition(t, root, 1, 1, "Walkway2", []sample{yawSample(0, 1), yawSample(0.1, 2)})

	result, err := NewScanCommand(filesystem.NewTableLoader(), root, []int{1}, []int{1}, chain, 100).
		WithSampleInterval(0.1).
		Execute(context.Background())
	if result != nil {
		t.Errorf("expected no result, got %+v", result)
	}
	if !errors.Is(err, application.ErrInvalidValue) {
		t.Fatalf("expected value error, got %v", err)
	}
	if !contains(err.Error(), "Case01, Realization001") {
		t.Errorf("expected error naming the realization, got %q", err.Error())
	}
}

// Skip counts round to the nearest whole row when start/interval lands within
// float noise of it, so 0.3 s at 0.1 s skips three rows rather than two.
func TestScanCommand_WarmupRoundsFloatNoise(t *testing.T) {
	root := t.TempDir()
	chain := []string{"Walkway1", "Walkway2"}
	writePosition(t, root, 1, 1, "Walkway1", []sample{
		yawSample(0, 0), yawSample(0.1, 0), yawSample(0.2, 0), yawSample(0.3, 0),
	})
	writePosition(t, root, 1, 1, "Walkway2", []sample{
		yawSample(0, 0), yawSample(0.1, 0), yawSample(0.2, 9), yawSample(0.3, 1),
	})

	result, err := NewScanCommand(filesystem.NewTableLoader(), root, []int{1}, []int{1}, chain, 0.3).
		WithSampleInterval(0.1).
		Execute(context.Background())
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	st, _ := result.Stats.Get(domain.AxisYaw)
	if st.Max != 1 || st.Time != 0.3 {
		t.Errorf("expected the 0.2 s sample skipped, got %+v", st)
	}
}

func TestScanCommand_MissingRoot(t *testing.T) {
	root := filepath.Join(t.TempDir(), "does-not-exist")
	cmd := NewScanCommand(filesystem.NewTableLoader(), root, []int{1}, []int{1}, []string{"walkway1", "walkway2"}, 0)

	result, err := cmd.Execute(context.Background())
	if result != nil {
		t.Errorf("expected no result, got %+v", result)
	}
	if !errors.Is(err, application.ErrNotFound) {
		t.Fatalf("expected not-found error, got %v", err)
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("expected error to match fs.ErrNotExist")
	}
	var nfErr *application.NotFoundError
	if !errors.As(err, &nfErr) || !strings.HasSuffix(nfErr.Path, "position.dat") {
		t.Errorf("expected NotFoundError naming the position file, got %v", err)
	}
}

func TestScanCommand_MissingBodyAbortsScan(t *testing.T) {
	root := t.TempDir()
	chain := []string{"Walkway1", "Walkway2"}
	writePosition(t, root, 1, 1, "Walkway1", []sample{yawSample(0, 0)})
	writePosition(t, root, 1, 1, "Walkway2", []sample{yawSample(0, 1)})
	writePosition(t, root, 1, 2, "Walkway1", []sample{yawSample(0, 0)})

	_, err := NewScanCommand(filesystem.NewTableLoader(), root, []int{1}, []int{1, 2}, chain, 0).Execute(context.Background())
	if !errors.Is(err, application.ErrNotFound) {
		t.Fatalf("expected not-found error, got %v", err)
	}
}

func TestScanCommand_MismatchedRows(t *testing.T) {
	root := t.TempDir()
	chain := []string{"Walkway1", "Walkway2"}
	writePosition(t, root, 1, 1, "Walkway1", []sample{yawSample(0, 0), yawSample(0.1, 0)})
	writePosition(t, root, 1, 1, "Walkway2", []sample{yawSample(0, 1)})

	_, err := NewScanCommand(filesystem.NewTableLoader(), root, []int{1}, []int{1}, chain, 0).Execute(context.Background())
	if !errors.Is(err, application.ErrInvalidValue) {
		t.Fatalf("expected value error, got %v", err)
	}
}

func TestScanCommand_MalformedTable(t *testing.T) {
	root := t.TempDir()
	chain := []string{"Walkway1", "Walkway2"}
	writePosition(t, root, 1, 1, "Walkway1", []sample{yawSample(0, 0)})
	path := domain.PositionPath(root, 1, 1, "Walkway2")
	os.MkdirAll(filepath.Dir(path), 0755)
	os.WriteFile(path, []byte("h\nh\n0 0 0 0 0 0 oops\n"), 0644)

	_, err := NewScanCommand(filesystem.NewTableLoader(), root, []int{1}, []int{1}, chain, 0).Execute(context.Background())
	if !errors.Is(err, application.ErrInvalidValue) {
		t.Fatalf("expected value error, got %v", err)
	}
}

func TestScanCommand_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	loader := &countingLoader{}
	_, err := NewScanCommand(loader, "root", []int{1}, []int{1}, []string{"Walkway1", "Walkway2"}, 0).Execute(ctx)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if loader.calls != 0 {
		t.Errorf("expected no loads after cancellation, got %d", loader.calls)
	}
}
