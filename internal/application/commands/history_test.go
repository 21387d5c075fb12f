package commands

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"pdsutils/internal/adapters/filesystem"
	"pdsutils/internal/adapters/sqlite"
	"pdsutils/internal/application"
	"pdsutils/internal/domain"
)

func openTestHistory(t *testing.T) *sqlite.History {
	t.Helper()
	h := sqlite.NewHistory()
	if err := h.Open(filepath.Join(t.TempDir(), "history.db")); err != nil {
		t.Fatalf("failed to open history: %v", err)
	}
	t.Cleanup(func() { h.Close() })
	return h
}

func TestScanCommand_RecordsHistory(t *testing.T) {
	root := t.TempDir()
	writePosition(t, root, 1, 1, "Walkway1", []sample{yawSample(0, 0), yawSample(0.1, 0)})
	writePosition(t, root, 1, 1, "Walkway2", []sample{yawSample(0, 3), yawSample(0.1, 0)})
	h := openTestHistory(t)
	ctx := context.Background()

	scan := NewScanCommand(filesystem.NewTableLoader(), root, []int{1}, []int{1}, []string{"Walkway1", "Walkway2"}, 0).
		WithAxes([]string{"yaw"}).
		WithHistory(h)
	result, err := scan.Execute(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.RunID == "" {
		t.Fatal("expected the scan to be recorded")
	}

	listed, err := NewListRunsCommand(h, 0).Execute(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(listed.Runs) != 1 || listed.Runs[0].ID != result.RunID {
		t.Fatalf("unexpected runs: %+v", listed.Runs)
	}

	shown, err := NewShowRunCommand(h, result.RunID).Execute(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	yaw, _ := shown.Run.Stats.Get(domain.AxisYaw)
	if !yaw.Found || yaw.Max != 3 || yaw.Which != "Case01, Realization001" {
		t.Errorf("unexpected recorded yaw stat: %+v", yaw)
	}

	if _, err := NewDeleteRunCommand(h, result.RunID).Execute(ctx); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := NewShowRunCommand(h, result.RunID).Execute(ctx); !errors.Is(err, application.ErrNotFound) {
		t.Errorf("expected ErrNotFound after delete, got %v", err)
	}
}

func TestDeleteRunCommand_Unknown(t *testing.T) {
	h := openTestHistory(t)

	_, err := NewDeleteRunCommand(h, "missing").Execute(context.Background())
	if !errors.Is(err, application.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestHistoryCommands_Validate(t *testing.T) {
	if err := NewListRunsCommand(nil, -1).Validate(); !errors.Is(err, application.ErrInvalidValue) {
		t.Errorf("expected ErrInvalidValue for negative limit, got %v", err)
	}
	if err := NewShowRunCommand(nil, "").Validate(); !errors.Is(err, application.ErrInvalidValue) {
		t.Errorf("expected ErrInvalidValue for empty id, got %v", err)
	}
	if err := NewDeleteRunCommand(nil, " ").Validate(); !errors.Is(err, application.ErrInvalidValue) {
		t.Errorf("expected ErrInvalidValue for blank id, got %v", err)
	}
}
