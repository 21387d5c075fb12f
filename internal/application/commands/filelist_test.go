package commands

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"pdsutils/internal/application"
)

func TestFileListCommand_Execute(t *testing.T) {
	cmd := NewFileListCommand("model", "sim.ini", 2, 3)
	result, err := cmd.Execute(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{
		filepath.Join("model", "Case01", "Realization001", "sim.ini"),
		filepath.Join("model", "Case01", "Realization002", "sim.ini"),
		filepath.Join("model", "Case01", "Realization003", "sim.ini"),
		filepath.Join("model", "Case02", "Realization001", "sim.ini"),
		filepath.Join("model", "Case02", "Realization002", "sim.ini"),
		filepath.Join("model", "Case02", "Realization003", "sim.ini"),
	}
	if len(result.Paths) != len(want) {
		t.Fatalf("got %d paths, want %d", len(result.Paths), len(want))
	}
	for i := range want {
		if result.Paths[i] != want[i] {
			t.Errorf("Paths[%d] = %q, want %q", i, result.Paths[i], want[i])
		}
	}
}

func TestFileListCommand_Padding(t *testing.T) {
	result, err := NewFileListCommand("", "Walkway1.ini", 12, 10).Execute(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	last := result.Paths[len(result.Paths)-1]
	if want := filepath.Join("Case12", "Realization010", "Walkway1.ini"); last != want {
		t.Errorf("last path = %q, want %q", last, want)
	}
}

func TestFileListCommand_Validate(t *testing.T) {
	tests := []struct {
		name   string
		cmd    *FileListCommand
		errMsg string
	}{
		{name: "empty file name", cmd: NewFileListCommand("model", "", 1, 1), errMsg: "file name is required"},
		{name: "zero cases", cmd: NewFileListCommand("model", "sim.ini", 0, 1), errMsg: "number of cases"},
		{name: "zero realizations", cmd: NewFileListCommand("model", "sim.ini", 1, 0), errMsg: "number of realizations"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cmd.Validate()
			if !errors.Is(err, application.ErrInvalidValue) {
				t.Fatalf("expected ErrInvalidValue, got %v", err)
			}
			if !contains(err.Error(), tt.errMsg) {
				t.Errorf("expected error containing %q, got %q", tt.errMsg, err.Error())
			}
		})
	}
}
