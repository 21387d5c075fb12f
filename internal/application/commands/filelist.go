package commands

import (
	"context"
	"fmt"
	"path/filepath"

	"pdsutils/internal/application"
	"pdsutils/internal/domain"
)

// FileListResult contains the generated paths
type FileListResult struct {
	Paths   []string
	Message string
}

// FileListCommand lists the path of a file in every realization folder of a
// case/realization grid
type FileListCommand struct {
	Base         string
	FileName     string
	Cases        int
	Realizations int
}

// NewFileListCommand creates a new FileListCommand
func NewFileListCommand(base, fileName string, cases, realizations int) *FileListCommand {
	return &FileListCommand{
		Base:         base,
		FileName:     fileName,
		Cases:        cases,
		Realizations: realizations,
	}
}

// Validate checks if the listing parameters are valid
func (c *FileListCommand) Validate() error {
	if err := application.ValidateRequired("fileName", c.FileName); err != nil {
		return err
	}
	if c.Cases < 1 {
		return &application.ValueError{Field: "cases", Message: fmt.Sprintf("number of cases must be at least 1, got %d", c.Cases)}
	}
	if c.Realizations < 1 {
		return &application.ValueError{Field: "realizations", Message: fmt.Sprintf("number of realizations must be at least 1, got %d", c.Realizations)}
	}
	return nil
}

// Execute builds base/CaseCC/RealizationRRR/<file> for case 1..Cases and
// realization 1..Realizations, cases outer. No file is touched.
func (c *FileListCommand) Execute(ctx context.Context) (*FileListResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	paths := make([]string, 0, c.Cases*c.Realizations)
	for caseNum := 1; caseNum <= c.Cases; caseNum++ {
		for realNum := 1; realNum <= c.Realizations; realNum++ {
			paths = append(paths, filepath.Join(domain.RealizationPath(c.Base, caseNum, realNum), c.FileName))
		}
	}

	return &FileListResult{
		Paths:   paths,
		Message: fmt.Sprintf("Listed %s in %d realizations", c.FileName, len(paths)),
	}, nil
}
