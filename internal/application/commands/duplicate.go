package commands

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	"go.uber.org/zap"

	"pdsutils/internal/application"
	"pdsutils/internal/domain"
	"pdsutils/internal/logging"
	"pdsutils/internal/ports"
)

// DuplicateBodyResult contains the result of duplicating a rigid body
type DuplicateBodyResult struct {
	Created   []string
	Positions []domain.Vector6
	Message   string
}

// DuplicateBodyCommand copies a rigid body's ini and state files n times,
// offsetting each copy's position by a fixed increment, and registers the
// copies in sim.ini
type DuplicateBodyCommand struct {
	files     ports.TextFiles
	Folder    string
	Body      string
	Count     int
	Increment domain.Vector6
}

// NewDuplicateBodyCommand creates a new DuplicateBodyCommand
func NewDuplicateBodyCommand(files ports.TextFiles, folder, body string, n int, incr domain.Vector6) *DuplicateBodyCommand {
	return &DuplicateBodyCommand{
		files:     files,
		Folder:    folder,
		Body:      body,
		Count:     n,
		Increment: incr,
	}
}

// Validate checks if the duplicate operation is valid
func (c *DuplicateBodyCommand) Validate() error {
	if err := application.ValidateRequired("folder", c.Folder); err != nil {
		return err
	}
	if err := application.ValidateRequired("body", c.Body); err != nil {
		return err
	}
	if c.Count < 1 {
		return &application.ValueError{
			Field:   "count",
			Message: fmt.Sprintf("number of copies must be at least 1, got %d", c.Count),
		}
	}
	return nil
}

// Execute writes the copies. Every input file is checked before anything is written.
func (c *DuplicateBodyCommand) Execute(ctx context.Context) (*DuplicateBodyResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	iniPath := filepath.Join(c.Folder, c.Body+".ini")
	datPath := filepath.Join(c.Folder, c.Body+".dat")
	simPath := filepath.Join(c.Folder, domain.SimFileName)
	for _, p := range []string{iniPath, datPath, simPath} {
		if !c.files.Exists(p) {
			return nil, &application.NotFoundError{Path: p, Err: fs.ErrNotExist}
		}
	}

	datLines, err := c.files.ReadLines(datPath)
	if err != nil {
		return nil, readError(datPath, err)
	}
	base, err := domain.ReadPositionState(datLines)
	if err != nil {
		return nil, &application.ValueError{
			Field:   "state",
			Message: fmt.Sprintf("error reading state position from %s: %v", datPath, err),
			Err:     err,
		}
	}

	startID := 1
	if n, err := domain.ExtractSuffix(c.Body); err == nil {
		startID = n + 1
	}
	stem := domain.Stem(c.Body)

	log := logging.FromContext(ctx)
	result := &DuplicateBodyResult{}
	for k := 0; k < c.Count; k++ {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		name := fmt.Sprintf("%s%d", stem, startID+k)
		pos := base.Add(c.Increment.Scale(float64(k + 1)))

		if err := c.files.AppendLine(simPath, "$DObjects RigidBody "+name); err != nil {
			return result, err
		}
		if err := c.files.Copy(iniPath, filepath.Join(c.Folder, name+".ini")); err != nil {
			return result, err
		}
		state := []string{domain.FormatState(pos)}
		if err := c.files.WriteLines(filepath.Join(c.Folder, name+".dat"), state); err != nil {
			return result, err
		}

		log.Debug("body duplicated", zap.String("body", name), zap.Stringer("position", pos))
		result.Created = append(result.Created, name)
		result.Positions = append(result.Positions, pos)
	}

	result.Message = fmt.Sprintf("Created %d copies of %s: %s to %s",
		len(result.Created), c.Body, result.Created[0], result.Created[len(result.Created)-1])
	log.Info(result.Message, zap.String("folder", c.Folder))
	return result, nil
}

func readError(path string, err error) error {
	if errors.Is(err, fs.ErrNotExist) {
		return &application.NotFoundError{Path: path, Err: err}
	}
	return fmt.Errorf("failed to read %s: %w", path, err)
}

