package export

import (
	"strings"
	"testing"

	"github.com/san-kum/algolab/internal/frame"
)

func TestFrameToSVG(t *testing.T) {
	f := frame.New(frame.KindSwap, frame.Dataset{50, 100},
		frame.NewRoles(2).Mark(frame.TagSwap, 0).Mark(frame.TagSorted, 1).Highlight(), "Tukar <a> & b")

	svg := FrameToSVG(f, 200, 148)

	if !strings.HasPrefix(svg, "<?xml") || !strings.HasSuffix(svg, "</svg>") {
		t.Fatal("not an svg document")
	}
	if strings.Count(svg, "<rect") != 3 {
		t.Errorf("expected background plus 2 bars")
	}
	if !strings.Contains(svg, `fill="#D97706"`) || !strings.Contains(svg, `fill="#059669"`) {
		t.Error("tag colours missing")
	}
	if !strings.Contains(svg, ">100</text>") {
		t.Error("value label missing")
	}
	if !strings.Contains(svg, "Tukar &lt;a&gt; &amp; b") {
		t.Error("status not escaped")
	}
	// plot height 148-20-24-14 = 90, so the full bar is 90 tall
	if !strings.Contains(svg, `height="90.0"`) {
		t.Errorf("full-scale bar height wrong:\n%s", svg)
	}
}

func TestFrameToSVGNoLabelsForLargeData(t *testing.T) {
	data := make(frame.Dataset, 30)
	for i := range data {
		data[i] = i + 1
	}
	svg := FrameToSVG(frame.New(frame.KindReset, data, frame.NewRoles(30).Highlight(), ""), 600, 300)
	if strings.Count(svg, "<text") != 1 {
		t.Error("only the status line should be text for 30 values")
	}
}

func TestSeriesToSVG(t *testing.T) {
	if SeriesToSVG([]float64{1}, 100, 50, "#fff") != "" {
		t.Error("single point should produce nothing")
	}
	svg := SeriesToSVG([]float64{3, 2, 0}, 100, 50, "#00ff88")
	if !strings.Contains(svg, `stroke="#00ff88"`) || strings.Count(svg, " L") != 2 {
		t.Errorf("bad path:\n%s", svg)
	}
}
