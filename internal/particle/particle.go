package particle

import (
	"strings"

	"github.com/san-kum/mechkit/internal/numfmt"
	"github.com/san-kum/mechkit/internal/vector"
)

// Particle is an immutable point mass with charge. Mass is in kilograms
// and charge in coulombs; neither is validated.
type Particle struct {
	Name     string        `json:"name" yaml:"name"`
	Position vector.Vector `json:"position" yaml:"position"`
	Velocity vector.Vector `json:"velocity" yaml:"velocity"`
	Mass     float64       `json:"mass" yaml:"mass"`
	Charge   float64       `json:"charge" yaml:"charge"`
}

// New returns a particle holding exactly the given fields.
func New(name string, position, velocity vector.Vector, mass, charge float64) Particle {
	return Particle{
		Name:     name,
		Position: position,
		Velocity: velocity,
		Mass:     mass,
		Charge:   charge,
	}
}

// Equal reports whether every field of p and o matches exactly.
func (p Particle) Equal(o Particle) bool {
	return p.Name == o.Name &&
		p.Position.Equal(o.Position) &&
		p.Velocity.Equal(o.Velocity) &&
		p.Mass == o.Mass &&
		p.Charge == o.Charge
}

// Hash covers position and mass only. Equal particles hash equal, but
// particles that differ only in name, velocity or charge collide.
func (p Particle) Hash() uint64 {
	return p.Position.Hash() ^ vector.HashFloat(p.Mass)
}

// Speed is the magnitude of the velocity.
func (p Particle) Speed() float64 {
	return p.Velocity.Length()
}

// Momentum is m·v.
func (p Particle) Momentum() vector.Vector {
	return p.Velocity.Mul(p.Mass)
}

// KineticEnergy is ½·m·|v|².
func (p Particle) KineticEnergy() float64 {
	return 0.5 * p.Mass * p.Velocity.LengthSquared()
}

// String renders p with general formatting under the invariant locale
// rather than the process locale. Use Render with a formatter built from
// numfmt.Ambient for locale-dependent output.
func (p Particle) String() string {
	return p.Render(numfmt.Invariant)
}

// Render renders p as
//
//	Particle: (Name = n, r = <x, y, z>, v = <x, y, z>, Mass = m kg, q = c C)
//
// with every number formatted by f and fields separated by the locale's
// group separator.
func (p Particle) Render(f numfmt.Formatter) string {
	sep := f.Separator() + " "

	var b strings.Builder
	b.WriteString("Particle: (Name = ")
	b.WriteString(p.Name)
	b.WriteString(sep)
	b.WriteString("r = ")
	b.WriteString(p.Position.Render(f))
	b.WriteString(sep)
	b.WriteString("v = ")
	b.WriteString(p.Velocity.Render(f))
	b.WriteString(sep)
	b.WriteString("Mass = ")
	b.WriteString(f.FormatFloat(p.Mass))
	b.WriteString(" kg")
	b.WriteString(sep)
	b.WriteString("q = ")
	b.WriteString(f.FormatFloat(p.Charge))
	b.WriteString(" C)")
	return b.String()
}
