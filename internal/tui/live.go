package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/san-kum/algolab/internal/frame"
)

const (
	height      = 16
	clearScreen = "\033[2J\033[H"
	hideCursor  = "\033[?25l"
	showCursor  = "\033[?25h"
	reset       = "\033[0m"
)

var tagColors = map[frame.Tag]string{
	frame.TagDefault: "\033[90m",
	frame.TagCompare: "\033[31m",
	frame.TagSwap:    "\033[33m",
	frame.TagPivot:   "\033[34m",
	frame.TagSorted:  "\033[32m",
}

// LiveRenderer redraws every frame of a headless run as ANSI bars. It
// satisfies engine.Observer.
type LiveRenderer struct {
	w     io.Writer
	title string
	color bool
}

func NewLiveRenderer(w io.Writer, title string) *LiveRenderer {
	return &LiveRenderer{w: w, title: title, color: true}
}

// Plain disables colour codes, marking tags with letters instead.
func (r *LiveRenderer) Plain() *LiveRenderer {
	r.color = false
	return r
}

func (r *LiveRenderer) OnFrame(f frame.Frame) {
	fmt.Fprint(r.w, r.render(f))
}

func (r *LiveRenderer) render(f frame.Frame) string {
	var b strings.Builder
	if r.color {
		b.WriteString(clearScreen)
	}
	fmt.Fprintf(&b, "  %s  step=%d  %s\n", r.title, f.Step, f.Kind)
	b.WriteString("  " + strings.Repeat("-", 2*len(f.Values)) + "\n")

	for row := height; row >= 1; row-- {
		b.WriteString("  ")
		for i, v := range f.Values {
			h := max(1, (v*height+frame.MaxValue-1)/frame.MaxValue)
			if row > h {
				b.WriteString("  ")
				continue
			}
			b.WriteString(r.cell(f.Tags[i]))
		}
		b.WriteString("\n")
	}

	b.WriteString("  " + strings.Repeat("-", 2*len(f.Values)) + "\n")
	b.WriteString("  " + f.Status + "\n")
	return b.String()
}

func (r *LiveRenderer) cell(t frame.Tag) string {
	if r.color {
		return tagColors[t] + "#" + reset + " "
	}
	switch t {
	case frame.TagCompare:
		return "c "
	case frame.TagSwap:
		return "s "
	case frame.TagPivot:
		return "p "
	case frame.TagSorted:
		return "= "
	}
	return "# "
}

func (r *LiveRenderer) Start() { fmt.Fprint(r.w, hideCursor) }
func (r *LiveRenderer) Stop()  { fmt.Fprint(r.w, showCursor) }
