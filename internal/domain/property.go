package domain

import (
	"strconv"
	"strings"
)

// CommentPrefix starts a comment line in sim and ini files
const CommentPrefix = "//"

// ValueKind is the parsed type of a property value
type ValueKind int

const (
	KindText ValueKind = iota
	KindInt
	KindFloat
)

func (k ValueKind) String() string {
	switch k {
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	default:
		return "text"
	}
}

// PropertyValue is a scalar read from a `key value` line
type PropertyValue struct {
	Kind  ValueKind
	Int   int64
	Float float64
	Text  string
}

// ParseValue converts s to an int if possible, then a float, else keeps the text
func ParseValue(s string) PropertyValue {
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return PropertyValue{Kind: KindInt, Int: i, Text: s}
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return PropertyValue{Kind: KindFloat, Float: f, Text: s}
	}
	return PropertyValue{Kind: KindText, Text: s}
}

// IntValue wraps an int
func IntValue(i int64) PropertyValue {
	return PropertyValue{Kind: KindInt, Int: i, Text: strconv.FormatInt(i, 10)}
}

// FloatValue wraps a float
func FloatValue(f float64) PropertyValue {
	return PropertyValue{Kind: KindFloat, Float: f, Text: formatFloat(f)}
}

func (v PropertyValue) numeric() (float64, bool) {
	switch v.Kind {
	case KindInt:
		return float64(v.Int), true
	case KindFloat:
		return v.Float, true
	default:
		return 0, false
	}
}

// Equal compares numbers by value across int and float; text only matches text
func (v PropertyValue) Equal(o PropertyValue) bool {
	if v.Kind == KindInt && o.Kind == KindInt {
		return v.Int == o.Int
	}
	a, okA := v.numeric()
	b, okB := o.numeric()
	if okA && okB {
		return a == b
	}
	if okA || okB {
		return false
	}
	return v.Text == o.Text
}

func (v PropertyValue) String() string {
	switch v.Kind {
	case KindInt:
		return strconv.FormatInt(v.Int, 10)
	case KindFloat:
		return formatFloat(v.Float)
	default:
		return v.Text
	}
}

// formatFloat keeps a decimal point on integral floats so the value reads back as a float
func formatFloat(f float64) string {
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if strings.ContainsAny(s, ".eEnN") {
		return s
	}
	return s + ".0"
}

// PatchResult describes what PatchProperty did to a set of lines
type PatchResult struct {
	Lines   []string
	Found   bool
	Differs bool
	Current []PropertyValue
}

// PatchProperty rewrites every `name value` line whose value differs from
// expected. Comment lines and all other lines are returned unchanged,
// including their line endings.
func PatchProperty(lines []string, name string, expected PropertyValue) PatchResult {
	res := PatchResult{Lines: make([]string, len(lines))}
	for i, line := range lines {
		res.Lines[i] = line
		if strings.HasPrefix(line, CommentPrefix) {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) != 2 || fields[0] != name {
			continue
		}

		res.Found = true
		current := ParseValue(fields[1])
		res.Current = append(res.Current, current)
		if current.Equal(expected) {
			continue
		}

		res.Differs = true
		res.Lines[i] = name + " " + expected.String() + lineEnding(line)
	}
	return res
}

func lineEnding(line string) string {
	switch {
	case strings.HasSuffix(line, "\r\n"):
		return "\r\n"
	case strings.HasSuffix(line, "\n"):
		return "\n"
	default:
		return ""
	}
}

// PatchOutcome is what happened to one file during a property patch
type PatchOutcome int

const (
	OutcomeAbsent PatchOutcome = iota
	OutcomeAlreadySet
	OutcomeUpdated
	OutcomeDiffers
)

func (o PatchOutcome) String() string {
	switch o {
	case OutcomeAlreadySet:
		return "already-set"
	case OutcomeUpdated:
		return "updated"
	case OutcomeDiffers:
		return "differs"
	default:
		return "absent"
	}
}
