package domain

import (
	"fmt"
	"slices"
	"strings"
)

// Axis identifies one tracked degree of freedom in a position.dat table
type Axis string

const (
	AxisX     Axis = "x"
	AxisY     Axis = "y"
	AxisZ     Axis = "z"
	AxisRoll  Axis = "roll"
	AxisPitch Axis = "pitch"
	AxisYaw   Axis = "yaw"
)

// AllAxes lists the axes in position.dat column order
var AllAxes = []Axis{AxisX, AxisY, AxisZ, AxisRoll, AxisPitch, AxisYaw}

// Column returns the position.dat column holding this axis (column 0 is time)
func (a Axis) Column() int {
	return slices.Index(AllAxes, a) + 1
}

// Unit returns the unit of the axis values
func (a Axis) Unit() string {
	switch a {
	case AxisX, AxisY, AxisZ:
		return "m"
	default:
		return "deg"
	}
}

// Valid reports whether a is a known axis
func (a Axis) Valid() bool {
	return slices.Contains(AllAxes, a)
}

// UnknownAxesError lists axis names outside the known set
type UnknownAxesError struct {
	Names []string
}

func (e *UnknownAxesError) Error() string {
	valid := make([]string, len(AllAxes))
	for i, a := range AllAxes {
		valid[i] = string(a)
	}
	return fmt.Sprintf("unknown axis(es): %s; choose from %s",
		strings.Join(e.Names, ", "), strings.Join(valid, ", "))
}

// ParseAxes validates axis names. An empty list selects every axis.
// The result follows column order with duplicates removed.
func ParseAxes(names []string) ([]Axis, error) {
	if len(names) == 0 {
		return slices.Clone(AllAxes), nil
	}

	var unknown []string
	requested := make(map[Axis]bool, len(names))
	for _, n := range names {
		a := Axis(strings.ToLower(strings.TrimSpace(n)))
		if !a.Valid() {
			unknown = append(unknown, n)
			continue
		}
		requested[a] = true
	}
	if len(unknown) > 0 {
		return nil, &UnknownAxesError{Names: unknown}
	}

	axes := make([]Axis, 0, len(requested))
	for _, a := range AllAxes {
		if requested[a] {
			axes = append(axes, a)
		}
	}
	return axes, nil
}
