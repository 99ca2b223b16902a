package viz

import (
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/san-kum/algolab/internal/frame"
)

type frameMsg struct {
	frame   frame.Frame
	running bool
}

type configMsg struct {
	size, speed int
}

// programSurface forwards controller output into a Bubble Tea program.
// Output produced before the program is attached is dropped; the app reads
// the controller's view when it starts.
type programSurface struct {
	mu sync.Mutex
	p  *tea.Program
}

func (s *programSurface) attach(p *tea.Program) {
	s.mu.Lock()
	s.p = p
	s.mu.Unlock()
}

func (s *programSurface) send(msg tea.Msg) {
	s.mu.Lock()
	p := s.p
	s.mu.Unlock()
	if p != nil {
		p.Send(msg)
	}
}

func (s *programSurface) Render(f frame.Frame, running bool) {
	s.send(frameMsg{frame: f, running: running})
}

func (s *programSurface) Configure(size, speed int) {
	s.send(configMsg{size: size, speed: speed})
}
