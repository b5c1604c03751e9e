package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/mechkit/internal/numfmt"
	"github.com/san-kum/mechkit/internal/particle"
	"github.com/san-kum/mechkit/internal/vector"
)

const (
	DefaultFormat = "G"
	DefaultLocale = "invariant"
)

// ErrVector indicates a YAML vector that is neither a "<x, y, z>" string
// nor a three-element sequence.
var ErrVector = errors.New("config: invalid vector")

type Config struct {
	Name      string           `yaml:"name,omitempty"`
	Format    string           `yaml:"format"`
	Locale    string           `yaml:"locale"`
	Particles []ParticleConfig `yaml:"particles"`
}

type ParticleConfig struct {
	Name     string  `yaml:"name"`
	Position Triple  `yaml:"position"`
	Velocity Triple  `yaml:"velocity"`
	Mass     float64 `yaml:"mass"`
	Charge   float64 `yaml:"charge"`
}

// Triple is a vector as written in a config file, either "<x, y, z>" or
// [x, y, z].
type Triple vector.Vector

func (t *Triple) UnmarshalYAML(n *yaml.Node) error {
	switch n.Kind {
	case yaml.ScalarNode:
		v, err := vector.Parse(n.Value)
		if err != nil {
			return fmt.Errorf("%w at line %d: %v", ErrVector, n.Line, err)
		}
		*t = Triple(v)
		return nil
	case yaml.SequenceNode:
		var c []float64
		if err := n.Decode(&c); err != nil {
			return fmt.Errorf("%w at line %d: %v", ErrVector, n.Line, err)
		}
		if len(c) != 3 {
			return fmt.Errorf("%w at line %d: want 3 components, got %d", ErrVector, n.Line, len(c))
		}
		*t = Triple(vector.New(c[0], c[1], c[2]))
		return nil
	}
	return fmt.Errorf("%w at line %d", ErrVector, n.Line)
}

func (t Triple) MarshalYAML() (interface{}, error) {
	return vector.Vector(t).String(), nil
}

func DefaultConfig() *Config {
	return &Config{
		Format: DefaultFormat,
		Locale: DefaultLocale,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Formatter resolves the configured format specifier and locale.
func (c *Config) Formatter() (numfmt.Formatter, error) {
	tag, err := numfmt.ParseLocale(c.Locale)
	if err != nil {
		return numfmt.Formatter{}, err
	}
	return numfmt.Parse(c.Format, tag)
}

// Build converts the configured particles, in file order.
func (c *Config) Build() particle.Set {
	set := make(particle.Set, 0, len(c.Particles))
	for _, pc := range c.Particles {
		set = append(set, particle.New(pc.Name,
			vector.Vector(pc.Position),
			vector.Vector(pc.Velocity),
			pc.Mass,
			pc.Charge,
		))
	}
	return set
}

// FromSet is the inverse of Build.
func FromSet(name string, set particle.Set) *Config {
	cfg := DefaultConfig()
	cfg.Name = name
	for _, p := range set {
		cfg.Particles = append(cfg.Particles, ParticleConfig{
			Name:     p.Name,
			Position: Triple(p.Position),
			Velocity: Triple(p.Velocity),
			Mass:     p.Mass,
			Charge:   p.Charge,
		})
	}
	return cfg
}
