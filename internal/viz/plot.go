package viz

import (
	"fmt"
	"math"

	"github.com/guptarohit/asciigraph"
)

// Plot renders values as an ASCII line graph. Values spanning very small or
// very large magnitudes are rescaled by a power of 1000 noted in the caption.
func Plot(values []float64, caption string, height, width int) string {
	if len(values) == 0 {
		return ""
	}
	if len(values) == 1 {
		values = []float64{values[0], values[0]}
	}

	scaled, exp := EngineeringScale(values)
	if exp != 0 {
		caption = fmt.Sprintf("%s (x1e%d)", caption, exp)
	}

	opts := []asciigraph.Option{
		asciigraph.Height(height),
		asciigraph.Caption(caption),
		asciigraph.Precision(3),
	}
	if width > 0 {
		opts = append(opts, asciigraph.Width(width))
	}
	return asciigraph.Plot(scaled, opts...)
}

// EngineeringScale divides values by 10^exp, where exp is the multiple of 3
// that brings the largest finite magnitude into [1, 1000).
func EngineeringScale(values []float64) ([]float64, int) {
	peak := 0.0
	for _, v := range values {
		if !math.IsInf(v, 0) && !math.IsNaN(v) {
			peak = max(peak, math.Abs(v))
		}
	}

	out := make([]float64, len(values))
	if peak == 0 {
		copy(out, values)
		return out, 0
	}

	exp := int(math.Floor(math.Log10(peak)))
	exp -= ((exp % 3) + 3) % 3
	if exp == 0 {
		copy(out, values)
		return out, 0
	}

	scale := math.Pow10(-exp)
	for i, v := range values {
		out[i] = v * scale
	}
	return out, exp
}
