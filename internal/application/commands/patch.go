package commands

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"pdsutils/internal/application"
	"pdsutils/internal/domain"
	"pdsutils/internal/logging"
	"pdsutils/internal/ports"
)

// PatchFileReport describes the outcome for one file
type PatchFileReport struct {
	Path    string
	Outcome domain.PatchOutcome
	Current []domain.PropertyValue
	Message string
}

// PatchPropertyResult contains the result of patching a property
type PatchPropertyResult struct {
	Reports []PatchFileReport
	Updated int
	Message string
}

// PatchPropertyCommand checks a `key value` property across files and
// optionally rewrites it to the expected value
type PatchPropertyCommand struct {
	files    ports.TextFiles
	Property string
	Expected domain.PropertyValue
	Paths    []string
	Correct  bool
}

// NewPatchPropertyCommand creates a new PatchPropertyCommand that corrects differing values
func NewPatchPropertyCommand(files ports.TextFiles, property string, expected domain.PropertyValue, paths []string) *PatchPropertyCommand {
	return &PatchPropertyCommand{
		files:    files,
		Property: property,
		Expected: expected,
		Paths:    paths,
		Correct:  true,
	}
}

// WithCorrect toggles rewriting of differing values
func (c *PatchPropertyCommand) WithCorrect(correct bool) *PatchPropertyCommand {
	c.Correct = correct
	return c
}

// Validate checks if the patch operation is valid
func (c *PatchPropertyCommand) Validate() error {
	if err := application.ValidateRequired("property", c.Property); err != nil {
		return err
	}
	if strings.ContainsAny(c.Property, " \t") || strings.HasPrefix(c.Property, domain.CommentPrefix) {
		return &application.ValueError{
			Field:   "property",
			Message: fmt.Sprintf("invalid property name: %q", c.Property),
		}
	}
	if err := application.ValidateRequired("expected", c.Expected.String()); err != nil {
		return err
	}
	if strings.ContainsAny(c.Expected.String(), " \t\r\n") {
		return &application.ValueError{
			Field:   "expected",
			Message: fmt.Sprintf("expected value must be a single token, got %q", c.Expected.String()),
		}
	}
	return nil
}

// Execute runs the patch over every path in order. A missing file stops the
// run; files patched before it stay patched.
func (c *PatchPropertyCommand) Execute(ctx context.Context) (*PatchPropertyResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	log := logging.FromContext(ctx)
	result := &PatchPropertyResult{}
	for _, path := range c.Paths {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		report, err := c.patchFile(path)
		if err != nil {
			return result, err
		}
		if report.Outcome == domain.OutcomeUpdated {
			result.Updated++
		}
		log.Info(report.Message,
			zap.String("file", path),
			zap.String("property", c.Property),
			zap.Stringer("outcome", report.Outcome),
		)
		result.Reports = append(result.Reports, report)
	}

	result.Message = fmt.Sprintf("Checked %s in %d files, updated %d", c.Property, len(result.Reports), result.Updated)
	return result, nil
}

func (c *PatchPropertyCommand) patchFile(path string) (PatchFileReport, error) {
	lines, err := c.files.ReadLines(path)
	if err != nil {
		return PatchFileReport{}, readError(path, err)
	}

	patched := domain.PatchProperty(lines, c.Property, c.Expected)
	report := PatchFileReport{Path: path, Current: patched.Current}

	switch {
	case !patched.Found:
		report.Outcome = domain.OutcomeAbsent
		report.Message = fmt.Sprintf("Property %s did not exist in %s", c.Property, path)

	case !patched.Differs:
		report.Outcome = domain.OutcomeAlreadySet
		report.Message = fmt.Sprintf("Property %s did exist in %s but it was already set to %s", c.Property, path, c.Expected)

	case !c.Correct:
		report.Outcome = domain.OutcomeDiffers
		report.Message = fmt.Sprintf("Property %s in %s is %s, expected %s", c.Property, path, joinValues(patched.Current), c.Expected)

	default:
		if err := c.files.WriteLines(path, patched.Lines); err != nil {
			return PatchFileReport{}, err
		}
		report.Outcome = domain.OutcomeUpdated
		report.Message = fmt.Sprintf("Property %s was set to %s in %s", c.Property, c.Expected, path)
	}

	return report, nil
}

func joinValues(values []domain.PropertyValue) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = v.String()
	}
	return strings.Join(parts, ", ")
}
