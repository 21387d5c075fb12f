package application

import (
	"fmt"
	"strings"

	"pdsutils/internal/domain"
)

// ValidateRequired checks if a string field is non-empty (after trimming whitespace).
// Returns a ValueError if the field is empty.
func ValidateRequired(fieldName, value string) error {
	if strings.TrimSpace(value) == "" {
		return &ValueError{
			Field:   fieldName,
			Message: fmt.Sprintf("%s is required", formatFieldName(fieldName)),
		}
	}
	return nil
}

// formatFieldName converts camelCase field names to space-separated words
// for more readable error messages (e.g., "startTime" -> "start time")
func formatFieldName(fieldName string) string {
	replacements := map[string]string{
		"root":           "root",
		"cases":          "case",
		"realizations":   "realization",
		"chain":          "body chain",
		"startTime":      "start time",
		"sampleInterval": "sample interval",
		"property":       "property name",
		"expected":       "expected value",
		"folder":         "folder",
		"body":           "body name",
		"fileName":       "file name",
	}

	if formatted, ok := replacements[fieldName]; ok {
		return formatted
	}

	return fieldName
}

// ValidateRunNumbers checks every case or realization number lies in [1, 9]
func ValidateRunNumbers(fieldName string, numbers []int) error {
	for _, n := range numbers {
		if n < domain.MinRunNumber || n > domain.MaxRunNumber {
			return &RangeError{
				Field: formatFieldName(fieldName),
				Value: n,
				Min:   domain.MinRunNumber,
				Max:   domain.MaxRunNumber,
			}
		}
	}
	return nil
}

// ValidateAxes parses axis names, returning a ValueError for unknown ones
func ValidateAxes(names []string) ([]domain.Axis, error) {
	axes, err := domain.ParseAxes(names)
	if err != nil {
		return nil, &ValueError{Field: "axes", Message: err.Error(), Err: err}
	}
	return axes, nil
}

// ValidateChain checks the body chain has at least one adjacent pair and every
// body has a numeric suffix
func ValidateChain(chain []string) ([]int, error) {
	if len(chain) == 0 {
		return nil, &ValueError{Field: "chain", Message: "body chain is required"}
	}
	if len(chain) < 2 {
		return nil, &ValueError{
			Field:   "chain",
			Message: fmt.Sprintf("body chain needs at least 2 bodies to compare, got %d", len(chain)),
		}
	}
	indices := make([]int, len(chain))
	for i, body := range chain {
		n, err := domain.ExtractSuffix(body)
		if err != nil {
			return nil, &ValueError{Field: "chain", Message: err.Error(), Err: err}
		}
		indices[i] = n
	}
	return indices, nil
}

// ValidatePositive checks a numeric field is strictly positive
func ValidatePositive(fieldName string, v float64) error {
	if !(v > 0) {
		return &ValueError{
			Field:   fieldName,
			Message: fmt.Sprintf("%s must be positive, got %g", formatFieldName(fieldName), v),
		}
	}
	return nil
}

// ValidateNonNegative checks a numeric field is zero or positive
func ValidateNonNegative(fieldName string, v float64) error {
	if !(v >= 0) {
		return &ValueError{
			Field:   fieldName,
			Message: fmt.Sprintf("%s must not be negative, got %g", formatFieldName(fieldName), v),
		}
	}
	return nil
}
