package config

import (
	"slices"

	"github.com/san-kum/mechkit/internal/vector"
)

// CODATA values, SI units.
const (
	ElectronMass      = 9.1093837015e-31
	ProtonMass        = 1.67262192369e-27
	NeutronMass       = 1.67492749804e-27
	AlphaMass         = 6.6446573357e-27
	ElementaryCharge  = 1.602176634e-19
	BohrRadius        = 5.29177210903e-11
	bohrSpeed         = 2.18769126364e6
	thermalSpeed      = 2.2e3
	alphaDecaySpeed   = 1.5e7
	electronBeamSpeed = 1e6
)

var Presets = map[string]*Config{
	"electron": {
		Name: "electron", Format: DefaultFormat, Locale: DefaultLocale,
		Particles: []ParticleConfig{
			{Name: "electron", Velocity: Triple(vector.I), Mass: ElectronMass, Charge: -ElementaryCharge},
		},
	},
	"hydrogen": {
		Name: "hydrogen", Format: "E4", Locale: DefaultLocale,
		Particles: []ParticleConfig{
			{Name: "proton", Mass: ProtonMass, Charge: ElementaryCharge},
			{
				Name:     "electron",
				Position: Triple(vector.I.Mul(BohrRadius)),
				Velocity: Triple(vector.J.Mul(bohrSpeed)),
				Mass:     ElectronMass,
				Charge:   -ElementaryCharge,
			},
		},
	},
	"alpha": {
		Name: "alpha", Format: "E3", Locale: DefaultLocale,
		Particles: []ParticleConfig{
			{Name: "alpha", Velocity: Triple(vector.K.Mul(alphaDecaySpeed)), Mass: AlphaMass, Charge: 2 * ElementaryCharge},
		},
	},
	"neutron": {
		Name: "neutron", Format: "E3", Locale: DefaultLocale,
		Particles: []ParticleConfig{
			{Name: "neutron", Velocity: Triple(vector.New(1, 1, 0).Normalize().Mul(thermalSpeed)), Mass: NeutronMass},
		},
	},
	"beam": {
		Name: "beam", Format: "E3", Locale: DefaultLocale,
		Particles: []ParticleConfig{
			{Name: "e0", Position: Triple(vector.New(0, 0, 0)), Velocity: Triple(vector.I.Mul(electronBeamSpeed)), Mass: ElectronMass, Charge: -ElementaryCharge},
			{Name: "e1", Position: Triple(vector.New(-1e-3, 1e-4, 0)), Velocity: Triple(vector.I.Mul(1.02 * electronBeamSpeed)), Mass: ElectronMass, Charge: -ElementaryCharge},
			{Name: "e2", Position: Triple(vector.New(-2e-3, -1e-4, 0)), Velocity: Triple(vector.I.Mul(0.97 * electronBeamSpeed)), Mass: ElectronMass, Charge: -ElementaryCharge},
			{Name: "e3", Position: Triple(vector.New(-3e-3, 0, 1e-4)), Velocity: Triple(vector.I.Mul(1.05 * electronBeamSpeed)), Mass: ElectronMass, Charge: -ElementaryCharge},
		},
	},
}

// GetPreset returns a copy of the named preset, or nil.
func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	c := *cfg
	c.Particles = slices.Clone(cfg.Particles)
	return &c
}

// ListPresets returns the preset names in sorted order.
func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
