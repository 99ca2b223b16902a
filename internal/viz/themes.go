package viz

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/algolab/internal/frame"
)

// Theme is the colour scheme of the lab screen, including one bar colour per
// highlight tag.
type Theme struct {
	Name    string
	Primary lipgloss.Color
	Accent  lipgloss.Color
	Text    lipgloss.Color
	Muted   lipgloss.Color
	Warning lipgloss.Color
	Error   lipgloss.Color

	Default lipgloss.Color
	Compare lipgloss.Color
	Swap    lipgloss.Color
	Pivot   lipgloss.Color
	Sorted  lipgloss.Color
}

var (
	ThemeClassic = Theme{
		Name:    "classic",
		Primary: lipgloss.Color("#059669"),
		Accent:  lipgloss.Color("#0000FF"),
		Text:    lipgloss.Color("#e5e5e5"),
		Muted:   lipgloss.Color("#6b7280"),
		Warning: lipgloss.Color("#D97706"),
		Error:   lipgloss.Color("#dc2626"),
		Default: lipgloss.Color("#333333"),
		Compare: lipgloss.Color("#DC2626"),
		Swap:    lipgloss.Color("#D97706"),
		Pivot:   lipgloss.Color("#0000FF"),
		Sorted:  lipgloss.Color("#059669"),
	}

	ThemeCyberpunk = Theme{
		Name:    "cyberpunk",
		Primary: lipgloss.Color("#ff00ff"),
		Accent:  lipgloss.Color("#00ffff"),
		Text:    lipgloss.Color("#ffffff"),
		Muted:   lipgloss.Color("#666666"),
		Warning: lipgloss.Color("#ff8800"),
		Error:   lipgloss.Color("#ff0000"),
		Default: lipgloss.Color("#5f5f87"),
		Compare: lipgloss.Color("#ff0055"),
		Swap:    lipgloss.Color("#ffff00"),
		Pivot:   lipgloss.Color("#00ffff"),
		Sorted:  lipgloss.Color("#00ff88"),
	}

	ThemeRetroGreen = Theme{
		Name:    "retro",
		Primary: lipgloss.Color("#00ff00"),
		Accent:  lipgloss.Color("#88ff88"),
		Text:    lipgloss.Color("#00ff00"),
		Muted:   lipgloss.Color("#005500"),
		Warning: lipgloss.Color("#ffff00"),
		Error:   lipgloss.Color("#ff0000"),
		Default: lipgloss.Color("#007700"),
		Compare: lipgloss.Color("#ffff00"),
		Swap:    lipgloss.Color("#ffaa00"),
		Pivot:   lipgloss.Color("#ffffff"),
		Sorted:  lipgloss.Color("#88ff88"),
	}

	ThemeOcean = Theme{
		Name:    "ocean",
		Primary: lipgloss.Color("#0077be"),
		Accent:  lipgloss.Color("#ffd700"),
		Text:    lipgloss.Color("#e0f0ff"),
		Muted:   lipgloss.Color("#4488aa"),
		Warning: lipgloss.Color("#ffcc00"),
		Error:   lipgloss.Color("#ff4444"),
		Default: lipgloss.Color("#335577"),
		Compare: lipgloss.Color("#ff6b6b"),
		Swap:    lipgloss.Color("#ffcc00"),
		Pivot:   lipgloss.Color("#ffd700"),
		Sorted:  lipgloss.Color("#00ff88"),
	}

	Themes = []Theme{
		ThemeClassic,
		ThemeCyberpunk,
		ThemeRetroGreen,
		ThemeOcean,
	}
)

// TagColor returns the bar colour for t.
func (th Theme) TagColor(t frame.Tag) lipgloss.Color {
	switch t {
	case frame.TagCompare:
		return th.Compare
	case frame.TagSwap:
		return th.Swap
	case frame.TagPivot:
		return th.Pivot
	case frame.TagSorted:
		return th.Sorted
	}
	return th.Default
}

// GetTheme returns a theme by name, falling back to classic.
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemeClassic
}

func themeIndex(name string) int {
	for i, t := range Themes {
		if t.Name == name {
			return i
		}
	}
	return 0
}

func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}
