package viz

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/teardown/internal/parts"
)

// Theme defines the color scheme for the viewer
type Theme struct {
	Name     string
	Primary  lipgloss.Color
	Accent   lipgloss.Color // hovered part
	Selected lipgloss.Color
	Label    lipgloss.Color
	Text     lipgloss.Color
	Muted    lipgloss.Color
	Parts    [parts.Count]lipgloss.Color
}

// Available themes
var (
	// Studio mirrors the material colors of the physical parts.
	ThemeStudio = Theme{
		Name:     "studio",
		Primary:  lipgloss.Color("#00cccc"),
		Accent:   lipgloss.Color("#ff88ff"),
		Selected: lipgloss.Color("#ffff00"),
		Label:    lipgloss.Color("#ffffff"),
		Text:     lipgloss.Color("#e0e0e0"),
		Muted:    lipgloss.Color("#666688"),
		Parts: [parts.Count]lipgloss.Color{
			lipgloss.Color("#add8e6"), // lightblue
			lipgloss.Color("#32cd32"), // limegreen
			lipgloss.Color("#ffa500"), // orange
			lipgloss.Color("#808080"), // gray
			lipgloss.Color("#a9a9a9"), // darkgray
			lipgloss.Color("#c0c0c0"), // silver
		},
	}

	ThemeBlueprint = Theme{
		Name:     "blueprint",
		Primary:  lipgloss.Color("#0077be"),
		Accent:   lipgloss.Color("#00ffff"),
		Selected: lipgloss.Color("#ffd700"),
		Label:    lipgloss.Color("#e0f0ff"),
		Text:     lipgloss.Color("#e0f0ff"),
		Muted:    lipgloss.Color("#4488aa"),
		Parts: [parts.Count]lipgloss.Color{
			lipgloss.Color("#66aadd"),
			lipgloss.Color("#5599cc"),
			lipgloss.Color("#4488bb"),
			lipgloss.Color("#77bbee"),
			lipgloss.Color("#3377aa"),
			lipgloss.Color("#88ccff"),
		},
	}

	ThemeMono = Theme{
		Name:     "mono",
		Primary:  lipgloss.Color("#ffffff"),
		Accent:   lipgloss.Color("#ffffff"),
		Selected: lipgloss.Color("#0088ff"),
		Label:    lipgloss.Color("#ffffff"),
		Text:     lipgloss.Color("#ffffff"),
		Muted:    lipgloss.Color("#888888"),
		Parts: [parts.Count]lipgloss.Color{
			lipgloss.Color("#bbbbbb"),
			lipgloss.Color("#bbbbbb"),
			lipgloss.Color("#bbbbbb"),
			lipgloss.Color("#bbbbbb"),
			lipgloss.Color("#bbbbbb"),
			lipgloss.Color("#bbbbbb"),
		},
	}

	// All available themes
	Themes = []Theme{
		ThemeStudio,
		ThemeBlueprint,
		ThemeMono,
	}
)

// GetTheme returns a theme by name, falling back to studio.
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemeStudio
}

// NextTheme returns the theme after t, wrapping around.
func NextTheme(t Theme) Theme {
	for i, th := range Themes {
		if th.Name == t.Name {
			return Themes[(i+1)%len(Themes)]
		}
	}
	return Themes[0]
}

// ThemeNames returns list of available theme names
func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}

// Color is the foreground color for cells drawn with ink.
func (t Theme) Color(ink Ink) lipgloss.Color {
	switch ink {
	case InkHover:
		return t.Accent
	case InkSelected:
		return t.Selected
	case InkLabel:
		return t.Label
	case InkNone:
		return t.Muted
	}
	if i := int(ink - InkPart); i >= 0 && i < len(t.Parts) {
		return t.Parts[i]
	}
	return t.Text
}

func (t Theme) Style(ink Ink) lipgloss.Style {
	s := lipgloss.NewStyle().Foreground(t.Color(ink))
	if ink == InkLabel {
		s = s.Background(lipgloss.Color("#000000")).Bold(true)
	}
	return s
}
