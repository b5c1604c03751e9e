package viz

import "github.com/charmbracelet/lipgloss"

// Theme defines the color scheme for rendered output
type Theme struct {
	Name      string
	Primary   lipgloss.Color
	Secondary lipgloss.Color
	Accent    lipgloss.Color
	Text      lipgloss.Color
	Muted     lipgloss.Color
	Error     lipgloss.Color
}

var (
	ThemeMinimal = Theme{
		Name:      "minimal",
		Primary:   lipgloss.Color("#ffffff"),
		Secondary: lipgloss.Color("#aaaaaa"),
		Accent:    lipgloss.Color("#ffffff"),
		Text:      lipgloss.Color("#dddddd"),
		Muted:     lipgloss.Color("#666666"),
		Error:     lipgloss.Color("#ff6666"),
	}

	ThemeOcean = Theme{
		Name:      "ocean",
		Primary:   lipgloss.Color("#00ccff"),
		Secondary: lipgloss.Color("#0088cc"),
		Accent:    lipgloss.Color("#00ffcc"),
		Text:      lipgloss.Color("#ccffff"),
		Muted:     lipgloss.Color("#336688"),
		Error:     lipgloss.Color("#ff4466"),
	}

	ThemeRetro = Theme{
		Name:      "retro",
		Primary:   lipgloss.Color("#00ff00"), // green phosphor
		Secondary: lipgloss.Color("#00cc00"),
		Accent:    lipgloss.Color("#88ff88"),
		Text:      lipgloss.Color("#00ff00"),
		Muted:     lipgloss.Color("#006600"),
		Error:     lipgloss.Color("#ff0000"),
	}

	ThemeSunset = Theme{
		Name:      "sunset",
		Primary:   lipgloss.Color("#ff6b35"),
		Secondary: lipgloss.Color("#f7c59f"),
		Accent:    lipgloss.Color("#ffbe0b"),
		Text:      lipgloss.Color("#efefd0"),
		Muted:     lipgloss.Color("#8b5a2b"),
		Error:     lipgloss.Color("#ff006e"),
	}

	Themes = []Theme{
		ThemeOcean,
		ThemeMinimal,
		ThemeRetro,
		ThemeSunset,
	}
)

// GetTheme returns a theme by name, falling back to the first theme.
func GetTheme(name string) (Theme, bool) {
	for _, t := range Themes {
		if t.Name == name {
			return t, true
		}
	}
	return Themes[0], false
}

// ThemeNames returns list of available theme names
func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}
