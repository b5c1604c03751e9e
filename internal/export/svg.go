package export

import (
	"errors"
	"fmt"
	"html"
	"math"
	"strings"

	"github.com/san-kum/mechkit/internal/particle"
	"github.com/san-kum/mechkit/internal/vector"
)

// ErrPlane indicates a projection plane other than xy, xz or yz.
var ErrPlane = errors.New("export: unknown projection plane")

// Plane names the two position components drawn on the image axes.
type Plane string

const (
	PlaneXY Plane = "xy"
	PlaneXZ Plane = "xz"
	PlaneYZ Plane = "yz"
)

func (p Plane) project(v vector.Vector) (float64, float64, error) {
	switch p {
	case PlaneXY:
		return v.X, v.Y, nil
	case PlaneXZ:
		return v.X, v.Z, nil
	case PlaneYZ:
		return v.Y, v.Z, nil
	}
	return 0, 0, fmt.Errorf("%w: %q", ErrPlane, string(p))
}

// ParticlesToSVG draws every particle of set as a labeled dot at its
// position projected onto plane, with a short stroke along its projected
// velocity. An empty set yields an empty string.
func ParticlesToSVG(set particle.Set, plane Plane, width, height int, color string) (string, error) {
	if len(set) == 0 {
		return "", nil
	}

	xs := make([]float64, len(set))
	ys := make([]float64, len(set))
	for i, p := range set {
		x, y, err := plane.project(p.Position)
		if err != nil {
			return "", err
		}
		xs[i], ys[i] = x, y
	}

	minX, maxX := bounds(xs)
	minY, maxY := bounds(ys)
	rangeX := maxX - minX
	rangeY := maxY - minY

	var sb strings.Builder

	fmt.Fprintf(&sb, `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
<g fill="%s" stroke="%s" font-family="monospace" font-size="10">
`, width, height, width, height, color, color)

	arrow := 0.05 * float64(min(width, height))
	for i, p := range set {
		cx := (xs[i] - minX) / rangeX * float64(width)
		cy := float64(height) - (ys[i]-minY)/rangeY*float64(height)

		fmt.Fprintf(&sb, "<circle cx=\"%.1f\" cy=\"%.1f\" r=\"3\"/>\n", cx, cy)

		vx, vy, _ := plane.project(p.Velocity)
		if n := math.Hypot(vx, vy); n > 0 && !math.IsInf(n, 0) {
			fmt.Fprintf(&sb, "<line x1=\"%.1f\" y1=\"%.1f\" x2=\"%.1f\" y2=\"%.1f\" stroke-width=\"1.5\"/>\n",
				cx, cy, cx+vx/n*arrow, cy-vy/n*arrow)
		}

		if p.Name != "" {
			fmt.Fprintf(&sb, "<text x=\"%.1f\" y=\"%.1f\" stroke=\"none\">%s</text>\n", cx+5, cy-5, html.EscapeString(p.Name))
		}
	}

	sb.WriteString("</g>\n</svg>")
	return sb.String(), nil
}

// bounds returns the padded extent of values, never of zero width.
func bounds(values []float64) (float64, float64) {
	lo, hi := values[0], values[0]
	for _, v := range values {
		lo = min(lo, v)
		hi = max(hi, v)
	}

	rng := hi - lo
	if rng == 0 {
		rng = max(math.Abs(lo), 1)
	}
	return lo - rng*0.1, hi + rng*0.1
}
