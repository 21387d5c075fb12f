package domain

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// Vector6 is a position/orientation tuple: three translations followed by
// three rotations. It is a value type; every operation returns a new vector.
type Vector6 struct {
	X, Y, Z    float64
	RX, RY, RZ float64
}

// NewVector6 builds a vector from its six components
func NewVector6(x, y, z, rx, ry, rz float64) Vector6 {
	return Vector6{X: x, Y: y, Z: z, RX: rx, RY: ry, RZ: rz}
}

// Vector6FromSlice builds a vector from exactly 6 values
func Vector6FromSlice(values []float64) (Vector6, error) {
	if len(values) != 6 {
		return Vector6{}, fmt.Errorf("vector6 needs exactly 6 elements, got %d", len(values))
	}
	return Vector6{
		X: values[0], Y: values[1], Z: values[2],
		RX: values[3], RY: values[4], RZ: values[5],
	}, nil
}

// Slice returns the components in (x, y, z, rx, ry, rz) order
func (v Vector6) Slice() []float64 {
	return []float64{v.X, v.Y, v.Z, v.RX, v.RY, v.RZ}
}

// Add returns v + o
func (v Vector6) Add(o Vector6) Vector6 {
	return Vector6{
		X: v.X + o.X, Y: v.Y + o.Y, Z: v.Z + o.Z,
		RX: v.RX + o.RX, RY: v.RY + o.RY, RZ: v.RZ + o.RZ,
	}
}

// Sub returns v - o
func (v Vector6) Sub(o Vector6) Vector6 {
	return Vector6{
		X: v.X - o.X, Y: v.Y - o.Y, Z: v.Z - o.Z,
		RX: v.RX - o.RX, RY: v.RY - o.RY, RZ: v.RZ - o.RZ,
	}
}

// Scale returns k * v
func (v Vector6) Scale(k float64) Vector6 {
	return Vector6{
		X: v.X * k, Y: v.Y * k, Z: v.Z * k,
		RX: v.RX * k, RY: v.RY * k, RZ: v.RZ * k,
	}
}

// Dot returns the inner product of v and o
func (v Vector6) Dot(o Vector6) float64 {
	return floats.Dot(v.Slice(), o.Slice())
}

// Norm returns the Euclidean length of v
func (v Vector6) Norm() float64 {
	return floats.Norm(v.Slice(), 2)
}

func (v Vector6) String() string {
	return fmt.Sprintf("(%g, %g, %g, %g, %g, %g)", v.X, v.Y, v.Z, v.RX, v.RY, v.RZ)
}
