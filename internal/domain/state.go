package domain

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	StateOpenTag  = "<state>"
	StateCloseTag = "</state>"

	// StateValueCount is the number of numeric lines in a state record:
	// the previous 6-vector followed by the current one.
	StateValueCount = 12
)

// StateFormatError is returned when a state record cannot be decoded
type StateFormatError struct {
	Reason string
}

func (e *StateFormatError) Error() string {
	return "invalid state record: " + e.Reason
}

// ReadPositionState decodes a state record and returns its current position
func ReadPositionState(lines []string) (Vector6, error) {
	var values []float64
	for _, line := range lines {
		trimmed := strings.TrimRight(line, "\r\n")
		if trimmed == StateOpenTag || trimmed == StateCloseTag || trimmed == "" {
			continue
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(trimmed), 64)
		if err != nil {
			return Vector6{}, &StateFormatError{Reason: fmt.Sprintf("non-numeric line %q", trimmed)}
		}
		values = append(values, v)
	}

	if len(values) != StateValueCount {
		return Vector6{}, &StateFormatError{
			Reason: fmt.Sprintf("expected %d values, got %d (the body may be controlled externally)", StateValueCount, len(values)),
		}
	}

	return Vector6FromSlice(values[StateValueCount-6:])
}

// FormatState encodes v as the current state of a record with a zero previous state
func FormatState(v Vector6) string {
	var b strings.Builder
	b.WriteString(StateOpenTag)
	b.WriteString("\n")
	for range 6 {
		b.WriteString("0\n")
	}
	for _, c := range v.Slice() {
		b.WriteString(strconv.FormatFloat(c, 'g', -1, 64))
		b.WriteString("\n")
	}
	b.WriteString(StateCloseTag)
	return b.String()
}
