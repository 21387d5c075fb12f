package application

import (
	"fmt"
	"strings"

	"pdsutils/internal/domain"
)

// FormatAxisStat describes one axis result on a single line
func FormatAxisStat(axis domain.Axis, st domain.AxisStat) string {
	if !st.Found {
		return fmt.Sprintf("%-5s  no relative motion", axis)
	}
	return fmt.Sprintf("%-5s  max %.6g %s at t=%gs, index %d, %s",
		axis, st.Max, axis.Unit(), st.Time, st.Index, st.Which)
}

// FormatMotionReport lists every scanned axis in column order
func FormatMotionReport(stats *domain.MotionStats) string {
	var sb strings.Builder
	for _, axis := range stats.Axes {
		st, _ := stats.Get(axis)
		sb.WriteString(FormatAxisStat(axis, st))
		sb.WriteString("\n")
	}
	return sb.String()
}
