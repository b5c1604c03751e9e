package vector

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Vector is an immutable point or direction in 3D space.
type Vector struct {
	X, Y, Z float64
}

var (
	Zero = Vector{0, 0, 0}
	One  = Vector{1, 1, 1}

	// Standard basis.
	I = Vector{1, 0, 0}
	J = Vector{0, 1, 0}
	K = Vector{0, 0, 1}
)

// New creates a vector from its components.
func New(x, y, z float64) Vector {
	return Vector{X: x, Y: y, Z: z}
}

// Splat creates a vector with s in every component.
func Splat(s float64) Vector {
	return Vector{X: s, Y: s, Z: s}
}

// FromArray creates a vector from an (x, y, z) triple.
func FromArray(a [3]float64) Vector {
	return Vector{X: a[0], Y: a[1], Z: a[2]}
}

// Array returns the components as an (x, y, z) triple.
func (v Vector) Array() [3]float64 {
	return [3]float64{v.X, v.Y, v.Z}
}

// FromR3 converts a gonum r3 vector.
func FromR3(p r3.Vec) Vector {
	return Vector{X: p.X, Y: p.Y, Z: p.Z}
}

// R3 converts v to a gonum r3 vector.
func (v Vector) R3() r3.Vec {
	return r3.Vec{X: v.X, Y: v.Y, Z: v.Z}
}

func (v Vector) Add(o Vector) Vector { return Vector{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }

func (v Vector) Sub(o Vector) Vector { return Vector{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }

// Mul scales every component by s.
func (v Vector) Mul(s float64) Vector { return Vector{v.X * s, v.Y * s, v.Z * s} }

// Div divides every component by s. Division by zero yields infinities
// or NaN per IEEE-754.
func (v Vector) Div(s float64) Vector { return Vector{v.X / s, v.Y / s, v.Z / s} }

func (v Vector) Neg() Vector { return Vector{-v.X, -v.Y, -v.Z} }

// Dot returns the inner product of v and o.
func (v Vector) Dot(o Vector) float64 {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z
}

// Cross returns the right-handed cross product v × o. The products are
// rounded before subtracting (no fused multiply-add), which keeps
// a.Cross(b) exactly equal to b.Cross(a).Neg().
func (v Vector) Cross(o Vector) Vector {
	return Vector{
		X: float64(v.Y*o.Z) - float64(v.Z*o.Y),
		Y: -(float64(v.X*o.Z) - float64(v.Z*o.X)),
		Z: float64(v.X*o.Y) - float64(v.Y*o.X),
	}
}

// DistanceSquared returns the squared Euclidean distance between v and o
// taken as points.
func (v Vector) DistanceSquared(o Vector) float64 {
	dx := o.X - v.X
	dy := o.Y - v.Y
	dz := o.Z - v.Z
	return dx*dx + dy*dy + dz*dz
}

// Distance returns the Euclidean distance between v and o.
func (v Vector) Distance(o Vector) float64 {
	return math.Sqrt(v.DistanceSquared(o))
}

// LengthSquared is the squared distance from the origin.
func (v Vector) LengthSquared() float64 {
	return v.DistanceSquared(Zero)
}

func (v Vector) Length() float64 {
	return math.Sqrt(v.LengthSquared())
}

// Normalize returns v scaled to unit length. The zero vector has no
// direction and yields NaN components.
func (v Vector) Normalize() Vector {
	return v.Div(v.Length())
}

// IsValid reports whether every component is finite.
func (v Vector) IsValid() bool {
	for _, c := range v.Array() {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return false
		}
	}
	return true
}
