package vector

import "math"

// Equal reports exact component-wise equality. There is no tolerance:
// vectors that differ in the last bit of any component are unequal.
func (v Vector) Equal(o Vector) bool {
	return v.X == o.X && v.Y == o.Y && v.Z == o.Z
}

// Vectors are ordered by magnitude, not component by component. Two
// vectors of the same length but different direction are neither greater
// nor less than each other.

func (v Vector) Greater(o Vector) bool { return v.LengthSquared() > o.LengthSquared() }

func (v Vector) Less(o Vector) bool { return v.LengthSquared() < o.LengthSquared() }

func (v Vector) GreaterOrEqual(o Vector) bool { return v.LengthSquared() >= o.LengthSquared() }

func (v Vector) LessOrEqual(o Vector) bool { return v.LengthSquared() <= o.LengthSquared() }

// Compare returns -1, 0 or +1 as v is shorter than, as long as, or longer
// than o. A NaN length compares as 0 against everything, which is not
// transitive; sorts over possibly-NaN vectors need their own NaN rule.
func (v Vector) Compare(o Vector) int {
	a, b := v.LengthSquared(), o.LengthSquared()
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// Hash combines the component hashes by addition. Equal vectors hash
// equal; permuted components collide.
func (v Vector) Hash() uint64 {
	return HashFloat(v.X) + HashFloat(v.Y) + HashFloat(v.Z)
}

// HashFloat hashes a single float64 consistently with ==, so -0 and +0
// share a hash.
func HashFloat(f float64) uint64 {
	if f == 0 {
		return 0
	}
	return math.Float64bits(f)
}
