package export

import (
	"fmt"
	"html"
	"strings"

	"github.com/san-kum/algolab/internal/frame"
)

// TagFills are the bar colours per highlight tag.
var TagFills = map[frame.Tag]string{
	frame.TagDefault: "#333333",
	frame.TagCompare: "#DC2626",
	frame.TagSwap:    "#D97706",
	frame.TagPivot:   "#0000FF",
	frame.TagSorted:  "#059669",
}

// FrameToSVG draws one frame as a bar chart. Bar heights are a percentage of
// frame.MaxValue; values are labelled when the dataset is small enough.
func FrameToSVG(f frame.Frame, width, height int) string {
	const (
		pad     = 10.0
		statusH = 24.0
		labelH  = 14.0
	)

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#f0f0f0"/>
`, width, height, width, height))

	n := len(f.Values)
	if n > 0 {
		plotW := float64(width) - 2*pad
		plotH := float64(height) - 2*pad - statusH - labelH
		slot := plotW / float64(n)
		bottom := pad + labelH + plotH
		labels := n <= 20

		for i, v := range f.Values {
			tag := frame.TagDefault
			if i < len(f.Tags) {
				tag = f.Tags[i]
			}
			h := plotH * float64(v) / float64(frame.MaxValue)
			x := pad + float64(i)*slot
			sb.WriteString(fmt.Sprintf(`<rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" rx="3" fill="%s"/>
`, x+1, bottom-h, slot-2, h, TagFills[tag]))
			if labels {
				sb.WriteString(fmt.Sprintf(`<text x="%.1f" y="%.1f" font-size="10" font-weight="bold" text-anchor="middle" fill="#333">%d</text>
`, x+slot/2, bottom-h-2, v))
			}
		}
	}

	sb.WriteString(fmt.Sprintf(`<text x="%.1f" y="%.1f" font-size="12" font-style="italic" fill="#333">%s</text>
`, pad, float64(height)-pad, html.EscapeString(f.Status)))
	sb.WriteString("</svg>")
	return sb.String()
}

// SeriesToSVG draws values as a polyline scaled to the canvas, e.g. the
// inversion count of each frame of a run.
func SeriesToSVG(values []float64, width, height int, strokeColor string) string {
	if len(values) < 2 {
		return ""
	}

	minY, maxY := values[0], values[0]
	for _, v := range values {
		minY = min(minY, v)
		maxY = max(maxY, v)
	}
	rangeY := maxY - minY
	if rangeY == 0 {
		rangeY = 1
	}
	minY -= rangeY * 0.1
	rangeY *= 1.2

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
<path fill="none" stroke="%s" stroke-width="1.5" d="M`,
		width, height, width, height, strokeColor))

	last := float64(len(values) - 1)
	for i, v := range values {
		x := float64(i) / last * float64(width)
		y := float64(height) - (v-minY)/rangeY*float64(height)
		if i == 0 {
			sb.WriteString(fmt.Sprintf("%.1f,%.1f", x, y))
		} else {
			sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", x, y))
		}
	}

	sb.WriteString(`"/>
</svg>`)
	return sb.String()
}
