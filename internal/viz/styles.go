package viz

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

var (
	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 1)

	keyStyle  = lipgloss.NewStyle().Bold(true)
	hintStyle = lipgloss.NewStyle().Italic(true)
	boldStyle = lipgloss.NewStyle().Bold(true)
)

// GradientText colours each rune of text along a blend from start to end.
func GradientText(text string, start, end lipgloss.Color) string {
	runes := []rune(text)
	if len(runes) == 0 {
		return ""
	}
	c1, err1 := colorful.Hex(string(start))
	c2, err2 := colorful.Hex(string(end))
	if err1 != nil || err2 != nil {
		return lipgloss.NewStyle().Foreground(start).Render(text)
	}

	var b strings.Builder
	for i, r := range runes {
		t := 0.0
		if len(runes) > 1 {
			t = float64(i) / float64(len(runes)-1)
		}
		color := lipgloss.Color(c1.BlendLab(c2, t).Clamped().Hex())
		b.WriteString(lipgloss.NewStyle().Foreground(color).Bold(true).Render(string(r)))
	}
	return b.String()
}

// Gauge renders a fixed-width fill bar for percent in [0, 1].
func Gauge(percent float64, width int, fill lipgloss.Color) string {
	filled := int(percent*float64(width) + 0.5)
	filled = max(0, min(filled, width))
	return lipgloss.NewStyle().Foreground(fill).Render(strings.Repeat("█", filled)) +
		strings.Repeat("░", width-filled)
}

// Separator draws a muted rule with a centre mark.
func Separator(width int, color lipgloss.Color) string {
	if width < 8 {
		width = 8
	}
	mid := width / 2
	rule := strings.Repeat("─", mid-2) + " ◆ " + strings.Repeat("─", width-mid-3)
	return lipgloss.NewStyle().Foreground(color).Render(rule)
}

func keyHints(th Theme, pairs ...string) string {
	key := keyStyle.Foreground(th.Accent)
	hint := hintStyle.Foreground(th.Muted)
	var parts []string
	for i := 0; i+1 < len(pairs); i += 2 {
		parts = append(parts, key.Render(pairs[i])+" "+hint.Render(pairs[i+1]))
	}
	return strings.Join(parts, "  ")
}
