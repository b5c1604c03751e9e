package storage

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"strconv"

	"github.com/san-kum/mechkit/internal/particle"
	"github.com/san-kum/mechkit/internal/vector"
)

type ExportData struct {
	Name          string           `json:"name"`
	Count         int              `json:"count"`
	TotalMass     Float            `json:"total_mass"`
	TotalCharge   Float            `json:"total_charge"`
	KineticEnergy Float            `json:"kinetic_energy"`
	Particles     []ExportParticle `json:"particles"`
}

// ExportParticle mirrors particle.Particle with JSON-safe scalars.
type ExportParticle struct {
	Name     string        `json:"name"`
	Position vector.Vector `json:"position"`
	Velocity vector.Vector `json:"velocity"`
	Mass     Float         `json:"mass"`
	Charge   Float         `json:"charge"`
}

// Set converts the exported particles back, in order.
func (d ExportData) Set() particle.Set {
	set := make(particle.Set, 0, len(d.Particles))
	for _, p := range d.Particles {
		set = append(set, particle.New(p.Name, p.Position, p.Velocity, float64(p.Mass), float64(p.Charge)))
	}
	return set
}

// ExportJSON writes set with its aggregate quantities as indented JSON.
func ExportJSON(w io.Writer, name string, set particle.Set) error {
	data := ExportData{
		Name:          name,
		Count:         len(set),
		TotalMass:     Float(set.TotalMass()),
		TotalCharge:   Float(set.TotalCharge()),
		KineticEnergy: Float(set.KineticEnergy()),
		Particles:     make([]ExportParticle, 0, len(set)),
	}
	for _, p := range set {
		data.Particles = append(data.Particles, ExportParticle{
			Name:     p.Name,
			Position: p.Position,
			Velocity: p.Velocity,
			Mass:     Float(p.Mass),
			Charge:   Float(p.Charge),
		})
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	encoder.SetEscapeHTML(false)
	return encoder.Encode(data)
}

// WriteCSV writes one row per particle with full round-trip precision.
func WriteCSV(w io.Writer, set particle.Set) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(csvHeader); err != nil {
		return err
	}

	for _, p := range set {
		row := []string{p.Name}
		for _, v := range []float64{
			p.Position.X, p.Position.Y, p.Position.Z,
			p.Velocity.X, p.Velocity.Y, p.Velocity.Z,
			p.Mass, p.Charge,
		} {
			row = append(row, strconv.FormatFloat(v, 'g', -1, 64))
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
