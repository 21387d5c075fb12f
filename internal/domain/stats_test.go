package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestMotionStats_StartsAtZero(t *testing.T) {
	s := NewMotionStats([]Axis{AxisYaw})

	st, ok := s.Get(AxisYaw)
	require.True(t, ok)
	assert.Zero(t, st.Max)
	assert.False(t, st.Found)

	assert.False(t, s.Offer(AxisYaw, Candidate{Value: 0}), "zero never replaces the initial maximum")
	st, _ = s.Get(AxisYaw)
	assert.False(t, st.Found)
}

func TestMotionStats_StrictGreaterKeepsFirst(t *testing.T) {
	s := NewMotionStats([]Axis{AxisRoll})

	require.True(t, s.Offer(AxisRoll, Candidate{Value: 2, Time: 1, Index: 3, Which: "first"}))
	assert.False(t, s.Offer(AxisRoll, Candidate{Value: 2, Time: 9, Index: 7, Which: "second"}))
	assert.False(t, s.Offer(AxisRoll, Candidate{Value: 1.5, Which: "smaller"}))

	st, _ := s.Get(AxisRoll)
	assert.Equal(t, AxisStat{Max: 2, Time: 1, Index: 3, Which: "first", Found: true}, st)

	require.True(t, s.Offer(AxisRoll, Candidate{Value: 2.5, Time: 4, Index: 1, Pair: 0, Which: "third"}))
	st, _ = s.Get(AxisRoll)
	assert.Equal(t, "third", st.Which)
}

func TestMotionStats_UnknownAxis(t *testing.T) {
	s := NewMotionStats([]Axis{AxisX})
	assert.False(t, s.Offer(AxisYaw, Candidate{Value: 10}))
	_, ok := s.Get(AxisYaw)
	assert.False(t, ok)
}

func TestMaxAdjacentDifference(t *testing.T) {
	tests := []struct {
		name   string
		m      mat.Matrix
		want   AdjacentPeak
		wantOK bool
	}{
		{
			name:   "single sample",
			m:      mat.NewDense(1, 3, []float64{0, 5, 1}),
			want:   AdjacentPeak{Value: 5, Row: 0, Pair: 0},
			wantOK: true,
		},
		{
			name: "later row wins",
			m: mat.NewDense(3, 3, []float64{
				0, 1, 0,
				0, 0, -4,
				1, 2, 3,
			}),
			want:   AdjacentPeak{Value: 4, Row: 1, Pair: 1},
			wantOK: true,
		},
		{
			name: "tie keeps first row then first pair",
			m: mat.NewDense(2, 3, []float64{
				0, 3, 0,
				3, 0, 3,
			}),
			want:   AdjacentPeak{Value: 3, Row: 0, Pair: 0},
			wantOK: true,
		},
		{
			name:   "all zero",
			m:      mat.NewDense(2, 2, []float64{0, 0, 0, 0}),
			want:   AdjacentPeak{Value: 0, Row: 0, Pair: 0},
			wantOK: true,
		},
		{
			name:   "one body",
			m:      mat.NewDense(2, 1, []float64{1, 2}),
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := MaxAdjacentDifference(tt.m)
			assert.Equal(t, tt.wantOK, ok)
			if ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}
