package viz

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/algolab/internal/frame"
)

// LabelLimit is the largest dataset size that still gets value labels.
const LabelLimit = 20

// RenderBars draws one vertical bar per value, coloured by its tag. Bars are
// scaled against frame.MaxValue so a bar keeps its height across frames.
// With labels, each value is printed directly above its bar.
func RenderBars(values frame.Dataset, tags frame.Highlight, th Theme, height int, labels bool) string {
	if len(values) == 0 || height < 1 {
		return ""
	}

	colWidth := 2
	if labels {
		colWidth = 3
	}

	heights := make([]int, len(values))
	for i, v := range values {
		h := (v*height + frame.MaxValue - 1) / frame.MaxValue
		heights[i] = max(1, min(h, height))
	}

	rows := height
	if labels {
		rows++
	}

	block := strings.Repeat("█", colWidth-1) + " "
	blank := strings.Repeat(" ", colWidth)

	var b strings.Builder
	for row := rows; row >= 1; row-- {
		for i, h := range heights {
			switch {
			case row <= h:
				tag := frame.TagDefault
				if i < len(tags) {
					tag = tags[i]
				}
				b.WriteString(lipgloss.NewStyle().Foreground(th.TagColor(tag)).Render(block))
			case labels && row == h+1:
				b.WriteString(fmt.Sprintf("%-*d", colWidth, values[i]))
			default:
				b.WriteString(blank)
			}
		}
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

// Legend lists the tag colours of th.
func Legend(th Theme) string {
	var parts []string
	for _, t := range frame.Tags {
		parts = append(parts, lipgloss.NewStyle().Foreground(th.TagColor(t)).Render("■")+" "+t.String())
	}
	return strings.Join(parts, "  ")
}
