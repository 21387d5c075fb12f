package application

import "pdsutils/internal/domain"

// Re-export domain types for use by adapters
type (
	Axis          = domain.Axis
	AxisStat      = domain.AxisStat
	MotionStats   = domain.MotionStats
	Vector6       = domain.Vector6
	PropertyValue = domain.PropertyValue
	ScanRun       = domain.ScanRun
)

// ParseValue converts a command-line value to an int, float or text property value
func ParseValue(s string) PropertyValue {
	return domain.ParseValue(s)
}
