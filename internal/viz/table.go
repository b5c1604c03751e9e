package viz

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/san-kum/mechkit/internal/numfmt"
	"github.com/san-kum/mechkit/internal/particle"
)

var particleHeaders = []string{"NAME", "POSITION (m)", "VELOCITY (m/s)", "MASS (kg)", "CHARGE (C)", "SPEED (m/s)", "KE (J)"}

// ParticleTable renders one row per particle with every number formatted by f.
func (s Styles) ParticleTable(set particle.Set, f numfmt.Formatter) string {
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(s.Theme.Muted)).
		Headers(particleHeaders...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return s.Header
			}
			if col == 0 {
				return s.Label.Padding(0, 1)
			}
			return lipgloss.NewStyle().Foreground(s.Theme.Text).Padding(0, 1)
		})

	for _, p := range set {
		t.Row(
			p.Name,
			p.Position.Render(f),
			p.Velocity.Render(f),
			f.FormatFloat(p.Mass),
			f.FormatFloat(p.Charge),
			f.FormatFloat(p.Speed()),
			f.FormatFloat(p.KineticEnergy()),
		)
	}

	return t.String()
}
