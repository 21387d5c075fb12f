package domain

// AxisStat tracks the largest adjacent-body difference seen for one axis.
// Found stays false until some difference exceeds zero.
type AxisStat struct {
	Max   float64
	Time  float64
	Index int // numeric suffix of the first body in the winning pair
	Pair  int // chain position of the first body in the winning pair
	Which string
	Found bool
}

// Candidate is the largest difference found in a single realization
type Candidate struct {
	Value float64
	Time  float64
	Index int
	Pair  int
	Which string
}

// MotionStats maps each scanned axis to its running maximum
type MotionStats struct {
	Axes  []Axis
	Stats map[Axis]*AxisStat
}

// NewMotionStats starts every axis at a maximum of zero
func NewMotionStats(axes []Axis) *MotionStats {
	s := &MotionStats{
		Axes:  axes,
		Stats: make(map[Axis]*AxisStat, len(axes)),
	}
	for _, a := range axes {
		s.Stats[a] = &AxisStat{}
	}
	return s
}

// Offer replaces the running maximum for axis when c is strictly larger.
// Ties keep the earlier result.
func (s *MotionStats) Offer(axis Axis, c Candidate) bool {
	st, ok := s.Stats[axis]
	if !ok || !(c.Value > st.Max) {
		return false
	}
	*st = AxisStat{
		Max:   c.Value,
		Time:  c.Time,
		Index: c.Index,
		Pair:  c.Pair,
		Which: c.Which,
		Found: true,
	}
	return true
}

// Get returns the stat for axis
func (s *MotionStats) Get(axis Axis) (AxisStat, bool) {
	st, ok := s.Stats[axis]
	if !ok {
		return AxisStat{}, false
	}
	return *st, true
}
