package domain

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// AdjacentPeak is the largest absolute difference between neighbouring
// columns of a samples x bodies table
type AdjacentPeak struct {
	Value float64
	Row   int
	Pair  int
}

// MaxAdjacentDifference scans rows in order and, within a row, pairs in
// ascending order, keeping the first strictly larger difference. It reports
// false when the table has fewer than two columns or no rows.
func MaxAdjacentDifference(m mat.Matrix) (AdjacentPeak, bool) {
	rows, cols := m.Dims()
	if rows == 0 || cols < 2 {
		return AdjacentPeak{}, false
	}

	peak := AdjacentPeak{Value: math.Inf(-1)}
	for r := range rows {
		for c := range cols - 1 {
			d := math.Abs(m.At(r, c+1) - m.At(r, c))
			if d > peak.Value {
				peak = AdjacentPeak{Value: d, Row: r, Pair: c}
			}
		}
	}
	if math.IsInf(peak.Value, -1) {
		return AdjacentPeak{}, false
	}
	return peak, true
}
