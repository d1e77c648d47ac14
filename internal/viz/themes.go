package viz

import "github.com/charmbracelet/lipgloss"

// Theme defines the color scheme for the terminal animation
type Theme struct {
	Name    string
	Primary lipgloss.Color
	Accent  lipgloss.Color
	Text    lipgloss.Color
	Muted   lipgloss.Color
}

// Available themes
var (
	ThemeCrimson = Theme{
		Name:    "crimson",
		Primary: lipgloss.Color("#ff2244"),
		Accent:  lipgloss.Color("#ff88aa"),
		Text:    lipgloss.Color("#ffffff"),
		Muted:   lipgloss.Color("#666666"),
	}

	ThemeRose = Theme{
		Name:    "rose",
		Primary: lipgloss.Color("#ff9ff3"),
		Accent:  lipgloss.Color("#feca57"),
		Text:    lipgloss.Color("#fff5f5"),
		Muted:   lipgloss.Color("#8b6b8c"),
	}

	ThemeEmber = Theme{
		Name:    "ember",
		Primary: lipgloss.Color("#ff8800"),
		Accent:  lipgloss.Color("#ffcc00"),
		Text:    lipgloss.Color("#fff0e0"),
		Muted:   lipgloss.Color("#885522"),
	}

	ThemeRetroGreen = Theme{
		Name:    "retro",
		Primary: lipgloss.Color("#00ff00"),
		Accent:  lipgloss.Color("#88ff88"),
		Text:    lipgloss.Color("#00ff00"),
		Muted:   lipgloss.Color("#005500"),
	}

	ThemeMono = Theme{
		Name:    "mono",
		Primary: lipgloss.Color("#ffffff"),
		Accent:  lipgloss.Color("#cccccc"),
		Text:    lipgloss.Color("#ffffff"),
		Muted:   lipgloss.Color("#888888"),
	}

	// All available themes
	Themes = []Theme{
		ThemeCrimson,
		ThemeRose,
		ThemeEmber,
		ThemeRetroGreen,
		ThemeMono,
	}
)

// GetTheme returns a theme by name
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemeCrimson
}

// ThemeIndex returns the position of a theme in Themes, 0 if unknown.
func ThemeIndex(name string) int {
	for i, t := range Themes {
		if t.Name == name {
			return i
		}
	}
	return 0
}

// ThemeNames returns list of available theme names
func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}
