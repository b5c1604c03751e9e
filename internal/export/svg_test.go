package export

import (
	"errors"
	"strings"
	"testing"

	"github.com/san-kum/mechkit/internal/particle"
	"github.com/san-kum/mechkit/internal/vector"
)

func TestParticlesToSVG(t *testing.T) {
	set := particle.Set{
		particle.New("a<b", vector.Zero, vector.New(1, 0, 0), 1, 0),
		particle.New("", vector.New(1, 1, 5), vector.Zero, 1, 0),
	}

	svg, err := ParticlesToSVG(set, PlaneXY, 200, 100, "#00ff00")
	if err != nil {
		t.Fatalf("ParticlesToSVG() error: %v", err)
	}

	if !strings.HasPrefix(svg, "<?xml") || !strings.HasSuffix(svg, "</svg>") {
		t.Errorf("not an svg document:\n%s", svg)
	}
	if n := strings.Count(svg, "<circle"); n != 2 {
		t.Errorf("expected 2 circles, got %d", n)
	}
	// only the moving particle gets a velocity stroke, only the named one a label
	if n := strings.Count(svg, "<line"); n != 1 {
		t.Errorf("expected 1 line, got %d", n)
	}
	if n := strings.Count(svg, "<text"); n != 1 {
		t.Errorf("expected 1 label, got %d", n)
	}
	if !strings.Contains(svg, "a&lt;b") {
		t.Errorf("label not escaped:\n%s", svg)
	}
	// bounds are padded by 10% so the first particle sits at 1/12 of the width
	if !strings.Contains(svg, `cx="16.7" cy="91.7"`) {
		t.Errorf("unexpected placement:\n%s", svg)
	}
}

func TestParticlesToSVG_SinglePoint(t *testing.T) {
	set := particle.Set{particle.New("p", vector.Zero, vector.Zero, 1, 0)}

	svg, err := ParticlesToSVG(set, PlaneYZ, 100, 100, "white")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(svg, `cx="50.0" cy="50.0"`) {
		t.Errorf("single particle should be centered:\n%s", svg)
	}
}

func TestParticlesToSVG_Empty(t *testing.T) {
	svg, err := ParticlesToSVG(nil, PlaneXY, 100, 100, "white")
	if err != nil || svg != "" {
		t.Errorf("ParticlesToSVG(nil) = %q, %v", svg, err)
	}
}

func TestParticlesToSVG_BadPlane(t *testing.T) {
	set := particle.Set{particle.New("p", vector.Zero, vector.Zero, 1, 0)}
	if _, err := ParticlesToSVG(set, Plane("xw"), 100, 100, "white"); !errors.Is(err, ErrPlane) {
		t.Errorf("expected ErrPlane, got %v", err)
	}
}
