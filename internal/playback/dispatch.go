package playback

import (
	"sync"

	"github.com/san-kum/algolab/internal/frame"
)

type event struct {
	configure   bool
	size, speed int
	frame       frame.Frame
	running     bool
}

// dispatcher delivers surface calls in order on its own goroutine, so a
// surface may block or call back into the controller.
type dispatcher struct {
	surface Surface

	mu      sync.Mutex
	queue   []event
	closed  bool
	wake    chan struct{}
	stopped chan struct{}
}

func newDispatcher(s Surface) *dispatcher {
	d := &dispatcher{
		surface: s,
		wake:    make(chan struct{}, 1),
		stopped: make(chan struct{}),
	}
	go d.loop()
	return d
}

func (d *dispatcher) render(f frame.Frame, running bool) {
	d.push(event{frame: f, running: running})
}

func (d *dispatcher) configure(size, speed int) {
	d.push(event{configure: true, size: size, speed: speed})
}

func (d *dispatcher) push(e event) {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return
	}
	d.queue = append(d.queue, e)
	d.mu.Unlock()

	select {
	case d.wake <- struct{}{}:
	default:
	}
}

func (d *dispatcher) loop() {
	defer close(d.stopped)
	for range d.wake {
		for {
			d.mu.Lock()
			if len(d.queue) == 0 {
				closed := d.closed
				d.mu.Unlock()
				if closed {
					return
				}
				break
			}
			e := d.queue[0]
			d.queue = d.queue[1:]
			d.mu.Unlock()

			if e.configure {
				d.surface.Configure(e.size, e.speed)
			} else {
				d.surface.Render(e.frame, e.running)
			}
		}
	}
}

// close delivers what is queued, then stops the loop.
func (d *dispatcher) close() {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return
	}
	d.closed = true
	d.mu.Unlock()

	select {
	case d.wake <- struct{}{}:
	default:
	}
	<-d.stopped
}
