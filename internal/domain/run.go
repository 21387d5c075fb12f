package domain

import "time"

// ScanParams are the inputs of a relative motion scan
type ScanParams struct {
	Root           string
	Cases          []int
	Realizations   []int
	Chain          []string
	StartTime      float64 // seconds of warm-up to skip
	SampleInterval float64 // seconds between position.dat rows
	Axes           []Axis
}

// RowSkip returns the number of leading position.dat rows to drop:
// the header rows plus the samples before StartTime
func (p ScanParams) RowSkip() int {
	return PositionHeaderRows + WarmupRows(p.StartTime, p.SampleInterval)
}

// PositionHeaderRows is the number of header lines in a position.dat file
const PositionHeaderRows = 2

// WarmupRows returns floor(startTime / interval), tolerating float noise
// such as 0.3/0.1 = 2.9999999999999996
func WarmupRows(startTime, interval float64) int {
	if interval <= 0 || startTime <= 0 {
		return 0
	}
	q := startTime / interval
	n := int(q)
	if float64(n+1)-q < 1e-9 {
		n++
	}
	return n
}

// ScanRun is a recorded scan with its results
type ScanRun struct {
	ID        string
	Params    ScanParams
	Stats     *MotionStats
	CreatedAt time.Time
	Duration  time.Duration
}

// RunSummary is a lightweight listing entry for a recorded scan
type RunSummary struct {
	ID        string
	Root      string
	Cases     int
	Reals     int
	Bodies    int
	CreatedAt time.Time
}
