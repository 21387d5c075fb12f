package commands

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"pdsutils/internal/application"
	"pdsutils/internal/domain"
	"pdsutils/internal/logging"
	"pdsutils/internal/ports"
)

// ListRunsResult contains the recorded scans, newest first
type ListRunsResult struct {
	Runs    []domain.RunSummary
	Message string
}

// ListRunsCommand lists recorded scans
type ListRunsCommand struct {
	history ports.ScanHistory
	Limit   int
}

// NewListRunsCommand creates a new ListRunsCommand. A limit of zero lists every run.
func NewListRunsCommand(history ports.ScanHistory, limit int) *ListRunsCommand {
	return &ListRunsCommand{history: history, Limit: limit}
}

// Validate checks the listing limit
func (c *ListRunsCommand) Validate() error {
	if c.Limit < 0 {
		return &application.ValueError{Field: "limit", Message: fmt.Sprintf("limit must not be negative, got %d", c.Limit)}
	}
	return nil
}

// Execute lists the runs
func (c *ListRunsCommand) Execute(ctx context.Context) (*ListRunsResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	runs, err := c.history.List(c.Limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list scans: %w", err)
	}

	return &ListRunsResult{
		Runs:    runs,
		Message: fmt.Sprintf("Found %d recorded scans", len(runs)),
	}, nil
}

// ShowRunResult contains one recorded scan
type ShowRunResult struct {
	Run     *domain.ScanRun
	Message string
}

// ShowRunCommand loads one recorded scan
type ShowRunCommand struct {
	history ports.ScanHistory
	ID      string
}

// NewShowRunCommand creates a new ShowRunCommand
func NewShowRunCommand(history ports.ScanHistory, id string) *ShowRunCommand {
	return &ShowRunCommand{history: history, ID: id}
}

// Validate checks the run id
func (c *ShowRunCommand) Validate() error {
	return application.ValidateRequired("id", c.ID)
}

// Execute loads the run
func (c *ShowRunCommand) Execute(ctx context.Context) (*ShowRunResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	run, err := c.history.Get(c.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load scan %s: %w", c.ID, err)
	}
	if run == nil {
		return nil, &application.NotFoundError{Path: "scan " + c.ID}
	}

	return &ShowRunResult{
		Run:     run,
		Message: fmt.Sprintf("Scan %s of %s", run.ID, run.Params.Root),
	}, nil
}

// DeleteRunResult contains the result of deleting a recorded scan
type DeleteRunResult struct {
	ID      string
	Message string
}

// DeleteRunCommand removes a recorded scan
type DeleteRunCommand struct {
	history ports.ScanHistory
	ID      string
}

// NewDeleteRunCommand creates a new DeleteRunCommand
func NewDeleteRunCommand(history ports.ScanHistory, id string) *DeleteRunCommand {
	return &DeleteRunCommand{history: history, ID: id}
}

// Validate checks the run id
func (c *DeleteRunCommand) Validate() error {
	return application.ValidateRequired("id", c.ID)
}

// Execute deletes the run, failing with a NotFoundError for unknown ids
func (c *DeleteRunCommand) Execute(ctx context.Context) (*DeleteRunResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	run, err := c.history.Get(c.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load scan %s: %w", c.ID, err)
	}
	if run == nil {
		return nil, &application.NotFoundError{Path: "scan " + c.ID}
	}

	if err := c.history.Delete(c.ID); err != nil {
		return nil, err
	}
	logging.FromContext(ctx).Info("scan deleted", zap.String("run", c.ID))

	return &DeleteRunResult{
		ID:      c.ID,
		Message: fmt.Sprintf("Deleted scan %s", c.ID),
	}, nil
}
