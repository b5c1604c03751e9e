package particle

import (
	"cmp"
	"math"
	"slices"

	"github.com/san-kum/mechkit/internal/vector"
)

// Set is an ordered collection of particles.
type Set []Particle

// Key selects the vector a Set is ordered by.
type Key func(Particle) vector.Vector

var (
	ByPosition Key = func(p Particle) vector.Vector { return p.Position }
	ByVelocity Key = func(p Particle) vector.Vector { return p.Velocity }
	ByMomentum Key = func(p Particle) vector.Vector { return p.Momentum() }
)

// SortedBy returns a copy of s stably ordered by the magnitude of key.
// Particles whose keys have equal length keep their relative order, and
// keys with a NaN length sort last.
func (s Set) SortedBy(key Key) Set {
	out := slices.Clone(s)
	slices.SortStableFunc(out, func(a, b Particle) int {
		return compareLength(key(a), key(b))
	})
	return out
}

// compareLength orders like vector.Compare but is a total order: NaN
// lengths are equal to each other and greater than any number.
func compareLength(a, b vector.Vector) int {
	la, lb := a.LengthSquared(), b.LengthSquared()
	switch an, bn := math.IsNaN(la), math.IsNaN(lb); {
	case an && bn:
		return 0
	case an:
		return 1
	case bn:
		return -1
	}
	return cmp.Compare(la, lb)
}

// Find returns the first particle called name.
func (s Set) Find(name string) (Particle, bool) {
	for _, p := range s {
		if p.Name == name {
			return p, true
		}
	}
	return Particle{}, false
}

// Equal reports whether s and o hold equal particles in the same order.
func (s Set) Equal(o Set) bool {
	return slices.EqualFunc(s, o, Particle.Equal)
}

func (s Set) TotalMass() float64 {
	total := 0.0
	for _, p := range s {
		total += p.Mass
	}
	return total
}

func (s Set) TotalCharge() float64 {
	total := 0.0
	for _, p := range s {
		total += p.Charge
	}
	return total
}

// Momentum is the vector sum of the particles' momenta.
func (s Set) Momentum() vector.Vector {
	total := vector.Zero
	for _, p := range s {
		total = total.Add(p.Momentum())
	}
	return total
}

func (s Set) KineticEnergy() float64 {
	total := 0.0
	for _, p := range s {
		total += p.KineticEnergy()
	}
	return total
}

// CenterOfMass is the mass-weighted mean position. A set with zero total
// mass has no center and yields non-finite components.
func (s Set) CenterOfMass() vector.Vector {
	weighted := vector.Zero
	for _, p := range s {
		weighted = weighted.Add(p.Position.Mul(p.Mass))
	}
	return weighted.Div(s.TotalMass())
}
