package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/san-kum/mechkit/internal/numfmt"
	"github.com/san-kum/mechkit/internal/vector"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Format != DefaultFormat {
		t.Errorf("expected format %s, got %s", DefaultFormat, cfg.Format)
	}
	if len(cfg.Particles) != 0 {
		t.Error("default config should have no particles")
	}

	f, err := cfg.Formatter()
	if err != nil {
		t.Fatalf("Formatter() error: %v", err)
	}
	if got := f.FormatFloat(9.11e-31); got != "9.11E-31" {
		t.Errorf("default formatter rendered %q", got)
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "set.yaml")
	data := `name: pair
format: F3
locale: de
particles:
  - name: a
    position: "<1, 2, 3>"
    velocity: [0, 0, -1.5]
    mass: 2
    charge: -1
  - name: b
    mass: 9.11e-31
`
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	set := cfg.Build()
	if len(set) != 2 {
		t.Fatalf("expected 2 particles, got %d", len(set))
	}
	if set[0].Position != vector.New(1, 2, 3) {
		t.Errorf("position = %v", set[0].Position)
	}
	if set[0].Velocity != vector.New(0, 0, -1.5) {
		t.Errorf("velocity = %v", set[0].Velocity)
	}
	if set[1].Position != vector.Zero || set[1].Mass != 9.11e-31 {
		t.Errorf("second particle = %v", set[1])
	}

	f, err := cfg.Formatter()
	if err != nil {
		t.Fatalf("Formatter() error: %v", err)
	}
	if got := set[0].Velocity.Render(f); got != "<0,000. 0,000. -1,500>" {
		t.Errorf("Render() = %q", got)
	}
}

func TestLoad_InvalidVector(t *testing.T) {
	tests := map[string]string{
		"short sequence": "particles:\n  - position: [1, 2]\n",
		"bad string":     "particles:\n  - position: \"<1, 2>\"\n",
		"mapping":        "particles:\n  - position: {x: 1}\n",
	}

	for name, data := range tests {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "bad.yaml")
			if err := os.WriteFile(path, []byte(data), 0644); err != nil {
				t.Fatal(err)
			}
			if _, err := Load(path); !errors.Is(err, ErrVector) {
				t.Errorf("expected ErrVector, got %v", err)
			}
		})
	}
}

func TestLoad_Missing(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected not-exist error, got %v", err)
	}
}

func TestFormatter_Invalid(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Format = "Q"
	if _, err := cfg.Formatter(); !errors.Is(err, numfmt.ErrInvalidFormat) {
		t.Errorf("expected ErrInvalidFormat, got %v", err)
	}

	cfg = DefaultConfig()
	cfg.Locale = "not a locale!"
	if _, err := cfg.Formatter(); !errors.Is(err, numfmt.ErrInvalidLocale) {
		t.Errorf("expected ErrInvalidLocale, got %v", err)
	}
}

func TestSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hydrogen.yaml")
	want := GetPreset("hydrogen")

	if err := Save(path, want); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if got.Name != want.Name || got.Format != want.Format {
		t.Errorf("header mismatch: %+v", got)
	}
	if !got.Build().Equal(want.Build()) {
		t.Errorf("particles changed:\n got %v\nwant %v", got.Build(), want.Build())
	}
}

func TestFromSet(t *testing.T) {
	set := GetPreset("beam").Build()
	cfg := FromSet("copy", set)

	if cfg.Name != "copy" {
		t.Errorf("expected name copy, got %s", cfg.Name)
	}
	if !cfg.Build().Equal(set) {
		t.Error("FromSet(...).Build() differs from input")
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("electron")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	set := cfg.Build()
	if len(set) != 1 || set[0].Charge != -ElementaryCharge {
		t.Errorf("unexpected electron preset: %v", set)
	}

	cfg.Particles[0].Mass = 1
	if Presets["electron"].Particles[0].Mass != ElectronMass {
		t.Error("GetPreset returned shared particle storage")
	}
}

func TestGetPreset_NotFound(t *testing.T) {
	if cfg := GetPreset("nonexistent"); cfg != nil {
		t.Error("expected nil for nonexistent preset")
	}
}

func TestListPresets(t *testing.T) {
	presets := ListPresets()
	if len(presets) != len(Presets) {
		t.Fatalf("expected %d presets, got %d", len(Presets), len(presets))
	}
	for i := 1; i < len(presets); i++ {
		if presets[i-1] > presets[i] {
			t.Errorf("presets not sorted: %v", presets)
		}
	}
}

func TestPresetsFormat(t *testing.T) {
	for _, name := range ListPresets() {
		if _, err := GetPreset(name).Formatter(); err != nil {
			t.Errorf("preset %s: %v", name, err)
		}
	}
}
