package commands

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"time"

	"go.uber.org/zap"
	"gonum.org/v1/gonum/mat"

	"pdsutils/internal/application"
	"pdsutils/internal/config"
	"pdsutils/internal/domain"
	"pdsutils/internal/logging"
	"pdsutils/internal/ports"
)

// ScanResult contains the result of a relative motion scan
type ScanResult struct {
	Params       domain.ScanParams
	Stats        *domain.MotionStats
	Realizations int
	Duration     time.Duration
	RunID        string
	Message      string
}

// ScanCommand finds the maximum relative motion between adjacent bodies of a
// chain across a grid of cases and realizations
type ScanCommand struct {
	loader         ports.TableLoader
	history        ports.ScanHistory
	Root           string
	Cases          []int
	Realizations   []int
	Chain          []string
	StartTime      float64
	SampleInterval float64
	Axes           []string
}

// NewScanCommand creates a new ScanCommand over every axis using the
// configured sample interval
func NewScanCommand(loader ports.TableLoader, root string, cases, realizations []int, chain []string, startTime float64) *ScanCommand {
	return &ScanCommand{
		loader:         loader,
		Root:           root,
		Cases:          cases,
		Realizations:   realizations,
		Chain:          chain,
		StartTime:      startTime,
		SampleInterval: config.SampleInterval(),
	}
}

// WithAxes restricts the scan to the named axes
func (c *ScanCommand) WithAxes(axes []string) *ScanCommand {
	c.Axes = axes
	return c
}

// WithSampleInterval sets the spacing in seconds between position.dat rows
func (c *ScanCommand) WithSampleInterval(interval float64) *ScanCommand {
	c.SampleInterval = interval
	return c
}

// WithHistory records the finished scan in history
func (c *ScanCommand) WithHistory(history ports.ScanHistory) *ScanCommand {
	c.history = history
	return c
}

// Validate checks the scan parameters without touching the filesystem
func (c *ScanCommand) Validate() error {
	_, _, err := c.validate()
	return err
}

func (c *ScanCommand) validate() ([]domain.Axis, []int, error) {
	if err := application.ValidateRequired("root", c.Root); err != nil {
		return nil, nil, err
	}

	axes, err := application.ValidateAxes(c.Axes)
	if err != nil {
		return nil, nil, err
	}

	if len(c.Cases) == 0 {
		return nil, nil, &application.ValueError{Field: "cases", Message: "at least one case is required"}
	}
	if len(c.Realizations) == 0 {
		return nil, nil, &application.ValueError{Field: "realizations", Message: "at least one realization is required"}
	}
	if err := application.ValidateRunNumbers("cases", c.Cases); err != nil {
		return nil, nil, err
	}
	if err := application.ValidateRunNumbers("realizations", c.Realizations); err != nil {
		return nil, nil, err
	}

	indices, err := application.ValidateChain(c.Chain)
	if err != nil {
		return nil, nil, err
	}

	if err := application.ValidateNonNegative("startTime", c.StartTime); err != nil {
		return nil, nil, err
	}
	if err := application.ValidatePositive("sampleInterval", c.SampleInterval); err != nil {
		return nil, nil, err
	}

	return axes, indices, nil
}

// Execute runs the scan. Realizations are visited cases-outer in the order
// given; a missing result file aborts the whole scan.
func (c *ScanCommand) Execute(ctx context.Context) (*ScanResult, error) {
	axes, indices, err := c.validate()
	if err != nil {
		return nil, err
	}

	start := time.Now()
	log := logging.FromContext(ctx)
	params := domain.ScanParams{
		Root:           c.Root,
		Cases:          c.Cases,
		Realizations:   c.Realizations,
		Chain:          c.Chain,
		StartTime:      c.StartTime,
		SampleInterval: c.SampleInterval,
		Axes:           axes,
	}
	skip := params.RowSkip()

	columns := make([]int, 0, len(axes)+1)
	columns = append(columns, 0)
	for _, a := range axes {
		columns = append(columns, a.Column())
	}

	stats := domain.NewMotionStats(axes)
	scanned := 0
	for _, caseNum := range c.Cases {
		for _, realNum := range c.Realizations {
			if err := ctx.Err(); err != nil {
				return nil, err
			}

			tag := domain.RealizationTag(caseNum, realNum)
			tables, rows, err := c.loadRealization(caseNum, realNum, skip, columns)
			if err != nil {
				return nil, err
			}
			scanned++

			if rows == 0 {
				log.Warn("no samples after warm-up", zap.String("realization", tag), zap.Int("skipped_rows", skip))
				return nil, &application.ValueError{
					Field:   "startTime",
					Message: fmt.Sprintf("%s has no samples after skipping %d rows (start time %gs)", tag, skip, c.StartTime),
				}
			}

			for k, axis := range axes {
				peak, ok := domain.MaxAdjacentDifference(axisMatrix(tables, k+1))
				if !ok {
					continue
				}
				candidate := domain.Candidate{
					Value: peak.Value,
					Time:  tables[0].At(peak.Row, 0),
					Index: indices[peak.Pair],
					Pair:  peak.Pair,
					Which: tag,
				}
				if stats.Offer(axis, candidate) {
					log.Debug("new maximum",
						zap.String("axis", string(axis)),
						zap.Float64("value", candidate.Value),
						zap.Float64("time", candidate.Time),
						zap.Int("index", candidate.Index),
						zap.String("realization", tag),
					)
				}
			}
			log.Debug("realization scanned", zap.String("realization", tag), zap.Int("samples", rows))
		}
	}

	elapsed := time.Since(start)
	log.Info("scan finished",
		zap.String("root", c.Root),
		zap.Int("realizations", scanned),
		zap.Int("bodies", len(c.Chain)),
		zap.Duration("duration", elapsed),
	)

	result := &ScanResult{
		Params:       params,
		Stats:        stats,
		Realizations: scanned,
		Duration:     elapsed,
		Message:      fmt.Sprintf("Scanned %d realizations of %d bodies", scanned, len(c.Chain)),
	}

	if c.history != nil {
		run := &domain.ScanRun{Params: params, Stats: stats, CreatedAt: start, Duration: elapsed}
		if err := c.history.Save(run); err != nil {
			return result, fmt.Errorf("failed to record scan: %w", err)
		}
		result.RunID = run.ID
		result.Message += fmt.Sprintf(" (recorded as %s)", run.ID)
		log.Debug("scan recorded", zap.String("run", run.ID))
	}

	return result, nil
}

// loadRealization loads every body table of one realization and checks they
// share a row count
func (c *ScanCommand) loadRealization(caseNum, realNum, skip int, columns []int) ([]*mat.Dense, int, error) {
	tables := make([]*mat.Dense, len(c.Chain))
	rows := -1
	for i, body := range c.Chain {
		path := domain.PositionPath(c.Root, caseNum, realNum, body)
		table, err := c.loader.Load(path, skip, columns)
		if err != nil {
			return nil, 0, classifyLoadError(path, err)
		}

		n := 0
		if table != nil {
			n, _ = table.Dims()
		}
		if rows >= 0 && n != rows {
			return nil, 0, &application.ValueError{
				Field:   "table",
				Message: fmt.Sprintf("%s has %d samples, expected %d like %s", path, n, rows, c.Chain[0]),
			}
		}
		rows = n
		tables[i] = table
	}
	return tables, rows, nil
}

// axisMatrix gathers column col of every body table into a samples x bodies matrix
func axisMatrix(tables []*mat.Dense, col int) *mat.Dense {
	rows, _ := tables[0].Dims()
	m := mat.NewDense(rows, len(tables), nil)
	for j, t := range tables {
		m.SetCol(j, mat.Col(nil, col, t))
	}
	return m
}

func classifyLoadError(path string, err error) error {
	if errors.Is(err, fs.ErrNotExist) {
		return &application.NotFoundError{Path: path, Err: err}
	}
	var formatErr *domain.TableFormatError
	if errors.As(err, &formatErr) {
		return &application.ValueError{Field: "table", Message: formatErr.Error(), Err: err}
	}
	return fmt.Errorf("failed to load %s: %w", path, err)
}
