package viz

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Styles is the set of lipgloss styles derived from one Theme.
type Styles struct {
	Theme  Theme
	Title  lipgloss.Style
	Label  lipgloss.Style
	Value  lipgloss.Style
	Subtle lipgloss.Style
	Error  lipgloss.Style
	Panel  lipgloss.Style
	Header lipgloss.Style

	sparkHigh lipgloss.Style
	sparkMid  lipgloss.Style
	sparkLow  lipgloss.Style
}

func NewStyles(t Theme) Styles {
	return Styles{
		Theme: t,
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(t.Primary),
		Label: lipgloss.NewStyle().
			Foreground(t.Secondary),
		Value: lipgloss.NewStyle().
			Foreground(t.Accent).
			Bold(true),
		Subtle: lipgloss.NewStyle().
			Foreground(t.Muted),
		Error: lipgloss.NewStyle().
			Bold(true).
			Foreground(t.Error),
		Panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.Muted).
			Padding(0, 1),
		Header: lipgloss.NewStyle().
			Bold(true).
			Foreground(t.Primary).
			Padding(0, 1),
		sparkHigh: lipgloss.NewStyle().Foreground(t.Accent),
		sparkMid:  lipgloss.NewStyle().Foreground(t.Primary),
		sparkLow:  lipgloss.NewStyle().Foreground(t.Muted),
	}
}

// KeyValue renders "key: value" with the label and value styles.
func (s Styles) KeyValue(key, value string) string {
	return s.Label.Render(key+":") + " " + s.Value.Render(value)
}

// Summary renders rows of key/value pairs inside a titled panel.
func (s Styles) Summary(title string, pairs [][2]string) string {
	width := 0
	for _, p := range pairs {
		width = max(width, len(p[0]))
	}

	lines := make([]string, 0, len(pairs)+1)
	lines = append(lines, s.Title.Render(title))
	for _, p := range pairs {
		pad := strings.Repeat(" ", width-len(p[0]))
		lines = append(lines, s.KeyValue(p[0], pad+p[1]))
	}
	return s.Panel.Render(strings.Join(lines, "\n"))
}

var sparkChars = []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

// Sparkline renders values as a one-line bar chart at most width cells wide.
func (s Styles) Sparkline(values []float64, width int) string {
	if width <= 0 {
		return ""
	}
	if len(values) == 0 {
		return strings.Repeat("─", width)
	}

	lo, hi := values[0], values[0]
	for _, v := range values {
		lo = min(lo, v)
		hi = max(hi, v)
	}

	rng := hi - lo
	if rng == 0 {
		rng = 1
	}

	step := max(len(values)/width, 1)

	var result strings.Builder
	for i := 0; i < width && i*step < len(values); i++ {
		norm := (values[i*step] - lo) / rng
		idx := int(norm * float64(len(sparkChars)-1))
		idx = min(max(idx, 0), len(sparkChars)-1)

		c := string(sparkChars[idx])
		switch {
		case norm > 0.7:
			result.WriteString(s.sparkHigh.Render(c))
		case norm > 0.3:
			result.WriteString(s.sparkMid.Render(c))
		default:
			result.WriteString(s.sparkLow.Render(c))
		}
	}

	return result.String()
}
