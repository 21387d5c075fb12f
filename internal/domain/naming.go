package domain

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strconv"
)

const (
	ResultsDir       = "Results"
	PositionFileName = "position.dat"
	SimFileName      = "sim.ini"

	// MinRunNumber and MaxRunNumber bound case and realization numbers in a scan
	MinRunNumber = 1
	MaxRunNumber = 9
)

var suffixRegex = regexp.MustCompile(`(\d+)$`)

// ExtractSuffix returns the trailing integer of a name such as "Walkway12"
func ExtractSuffix(name string) (int, error) {
	m := suffixRegex.FindStringSubmatch(name)
	if m == nil {
		return 0, fmt.Errorf("couldn't parse numeric suffix from %q", name)
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, fmt.Errorf("couldn't parse numeric suffix from %q: %w", name, err)
	}
	return n, nil
}

// Stem returns name without its trailing digits
func Stem(name string) string {
	loc := suffixRegex.FindStringIndex(name)
	if loc == nil {
		return name
	}
	return name[:loc[0]]
}

// CaseFolder returns the folder name of a case, e.g. "Case03"
func CaseFolder(n int) string {
	return fmt.Sprintf("Case%02d", n)
}

// RealizationFolder returns the folder name of a realization, e.g. "Realization003"
func RealizationFolder(n int) string {
	return fmt.Sprintf("Realization%03d", n)
}

// RealizationPath joins root with the case and realization folders
func RealizationPath(root string, caseNum, realNum int) string {
	return filepath.Join(root, CaseFolder(caseNum), RealizationFolder(realNum))
}

// PositionPath returns the position.dat of a body in one realization
func PositionPath(root string, caseNum, realNum int, body string) string {
	return filepath.Join(RealizationPath(root, caseNum, realNum), ResultsDir, body, PositionFileName)
}

// RealizationTag identifies a realization in reports, e.g. "Case03, Realization002"
func RealizationTag(caseNum, realNum int) string {
	return CaseFolder(caseNum) + ", " + RealizationFolder(realNum)
}

var tagRegex = regexp.MustCompile(`^Case(\d+), Realization(\d+)$`)

// ParseRealizationTag reverses RealizationTag
func ParseRealizationTag(tag string) (caseNum, realNum int, err error) {
	m := tagRegex.FindStringSubmatch(tag)
	if m == nil {
		return 0, 0, fmt.Errorf("not a realization tag: %q", tag)
	}
	caseNum, _ = strconv.Atoi(m[1])
	realNum, _ = strconv.Atoi(m[2])
	return caseNum, realNum, nil
}
