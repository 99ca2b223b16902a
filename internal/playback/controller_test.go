package playback_test

import (
	"context"
	"math/rand"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/algolab/internal/drivers"
	"github.com/san-kum/algolab/internal/engine"
	"github.com/san-kum/algolab/internal/frame"
	"github.com/san-kum/algolab/internal/playback"
)

type recordSurface struct {
	mu      sync.Mutex
	frames  []frame.Frame
	running []bool
	sizes   []int
	speeds  []int
}

func (s *recordSurface) Render(f frame.Frame, running bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.frames = append(s.frames, f)
	s.running = append(s.running, running)
}

func (s *recordSurface) Configure(size, speed int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sizes = append(s.sizes, size)
	s.speeds = append(s.speeds, speed)
}

func (s *recordSurface) last() (frame.Frame, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.frames) == 0 {
		return frame.Frame{}, false
	}
	return s.frames[len(s.frames)-1], s.running[len(s.running)-1]
}

func (s *recordSurface) lastStatus() string {
	f, _ := s.last()
	return f.Status
}

func (s *recordSurface) lastSpeed() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.speeds) == 0 {
		return 0
	}
	return s.speeds[len(s.speeds)-1]
}

// blockingSleep parks every pause until the run is cancelled.
func blockingSleep(calls *atomic.Int32) engine.SleepFunc {
	return func(ctx context.Context, _ time.Duration) error {
		calls.Add(1)
		<-ctx.Done()
		return ctx.Err()
	}
}

var _ = Describe("Controller", func() {
	var (
		surface *recordSurface
		opts    playback.Options
		ctrl    *playback.Controller
	)

	BeforeEach(func() {
		surface = &recordSurface{}
		opts = playback.Options{
			Rand:    rand.New(rand.NewSource(1)),
			Surface: surface,
			Sleep:   engine.NoSleep,
		}
	})

	JustBeforeEach(func() {
		ctrl = playback.New(opts)
	})

	AfterEach(func() {
		ctrl.Close()
	})

	Describe("initial state", func() {
		It("starts idle with a fresh default-sized dataset", func() {
			v := ctrl.View()
			Expect(v.State).To(Equal("idle"))
			Expect(v.Category).To(Equal("sorting"))
			Expect(v.Algorithm).To(Equal("bubble"))
			Expect(v.Values).To(HaveLen(frame.DefaultSize))
			Expect(v.Values.Distinct()).To(BeTrue())
			Expect(v.Status).To(Equal("Siap memulai..."))
			for _, tag := range v.Tags {
				Expect(tag).To(Equal("default"))
			}
			Expect(ctrl.Delay()).To(Equal(550 * time.Millisecond))
		})

		It("pushes the first frame and configuration to the surface", func() {
			Eventually(surface.lastStatus).Should(Equal("Siap memulai..."))
			Eventually(surface.lastSpeed).Should(Equal(frame.DefaultSpeed))
		})
	})

	Describe("Reset", func() {
		It("draws a dataset of the requested size", func() {
			Expect(ctrl.Reset(8, drivers.Sorting)).To(BeTrue())
			v := ctrl.View()
			Expect(v.Values).To(HaveLen(8))
			Expect(v.Values.Validate()).To(Succeed())
			Expect(v.Status).To(Equal("Array direset."))
		})

		It("switches to the category's default algorithm", func() {
			Expect(ctrl.Reset(10, drivers.Searching)).To(BeTrue())
			Expect(ctrl.View().Algorithm).To(Equal("linear"))
		})

		It("rejects sizes outside the allowed range", func() {
			before := ctrl.View().Values
			Expect(ctrl.Reset(4, drivers.Sorting)).To(BeFalse())
			Expect(ctrl.Reset(51, drivers.Sorting)).To(BeFalse())
			Expect(ctrl.View().Values).To(Equal(before))
		})
	})

	Describe("a sorting run", func() {
		It("runs to completion and returns to idle", func() {
			Expect(ctrl.Start()).To(Succeed())
			Eventually(ctrl.State).Should(Equal(playback.Idle))
			ctrl.Wait()

			v := ctrl.View()
			Expect(v.Values.IsSorted()).To(BeTrue())
			Expect(v.Status).To(Equal("Selesai! Array sudah terurut."))
			for _, tag := range v.Tags {
				Expect(tag).To(Equal("sorted"))
			}

			res := ctrl.LastResult()
			Expect(res).NotTo(BeNil())
			Expect(res.Outcome.Status).To(Equal(drivers.StatusSorted))
			Expect(res.Metrics).To(HaveKey("comparisons"))

			Eventually(func() bool {
				_, running := surface.last()
				return running
			}).Should(BeFalse())
		})
	})

	Describe("a searching run", func() {
		BeforeEach(func() {
			opts.Category = drivers.Searching
		})

		It("rejects a missing target before anything changes", func() {
			before := ctrl.View()
			err := ctrl.Start()
			Expect(err).To(MatchError(playback.ErrInvalidTarget))
			Expect(err.Error()).To(Equal("Masukkan angka yang ingin dicari!"))
			Expect(ctrl.State()).To(Equal(playback.Idle))
			Expect(ctrl.View()).To(Equal(before))
		})

		It("rejects a non-numeric target", func() {
			ctrl.SetTarget("tujuh")
			Expect(ctrl.Start()).To(MatchError(playback.ErrInvalidTarget))
			Expect(ctrl.State()).To(Equal(playback.Idle))
		})

		It("finds a value that is present", func() {
			values := ctrl.View().Values
			ctrl.SetTarget(" " + strconv.Itoa(values[3]) + " ")
			Expect(ctrl.Start()).To(Succeed())
			Eventually(ctrl.State).Should(Equal(playback.Idle))
			ctrl.Wait()

			res := ctrl.LastResult()
			Expect(res.Outcome.Status).To(Equal(drivers.StatusFound))
			Expect(res.Outcome.Index).To(Equal(3))
			Expect(ctrl.View().Tags[3]).To(Equal("sorted"))
		})

		It("reports a missing value as not found", func() {
			ctrl.SetTarget("101")
			Expect(ctrl.Start()).To(Succeed())
			Eventually(ctrl.State).Should(Equal(playback.Idle))
			ctrl.Wait()
			Expect(ctrl.LastResult().Outcome.Status).To(Equal(drivers.StatusNotFound))
			Expect(ctrl.View().Status).To(Equal("Nilai 101 tidak ditemukan."))
		})
	})

	Describe("stopping", func() {
		var calls atomic.Int32

		BeforeEach(func() {
			calls.Store(0)
			opts.Sleep = blockingSleep(&calls)
		})

		It("toggles: Start while running stops without waiting for the driver", func() {
			Expect(ctrl.Start()).To(Succeed())
			Expect(ctrl.State()).To(Equal(playback.Running))
			Eventually(calls.Load).Should(BeNumerically(">=", 1))

			Expect(ctrl.Start()).To(Succeed())
			Expect(ctrl.State()).To(Equal(playback.Idle))
			Expect(ctrl.View().Status).To(Equal("Dihentikan."))

			ctrl.Wait()
			res := ctrl.LastResult()
			Expect(res.Canceled()).To(BeTrue())
			Expect(res.Steps).To(Equal(1))
			Expect(ctrl.View().Values).To(Equal(res.Final.Values))
		})

		It("reports whether a run was active", func() {
			Expect(ctrl.Stop()).To(BeFalse())
			Expect(ctrl.Start()).To(Succeed())
			Expect(ctrl.Stop()).To(BeTrue())
			Expect(ctrl.Stop()).To(BeFalse())
		})

		It("ignores reconfiguration while running", func() {
			Expect(ctrl.Start()).To(Succeed())
			before := ctrl.View()

			Expect(ctrl.Reset(10, drivers.Sorting)).To(BeFalse())
			Expect(ctrl.SetSize(20)).To(Succeed())
			Expect(ctrl.SetCategory(drivers.Searching)).To(Succeed())
			Expect(ctrl.SetAlgorithm("insertion")).To(Succeed())

			after := ctrl.View()
			Expect(after.Size).To(Equal(before.Size))
			Expect(after.Category).To(Equal("sorting"))
			Expect(after.Algorithm).To(Equal("bubble"))
			Expect(ctrl.State()).To(Equal(playback.Running))
		})
	})

	Describe("a stale run", func() {
		var (
			calls    atomic.Int32
			releaseA chan struct{}
		)

		BeforeEach(func() {
			calls.Store(0)
			releaseA = make(chan struct{})
			// the first pause belongs to run A and ignores cancellation
			// until released
			opts.Sleep = func(ctx context.Context, _ time.Duration) error {
				if calls.Add(1) == 1 {
					<-releaseA
					return ctx.Err()
				}
				<-ctx.Done()
				return ctx.Err()
			}
		})

		It("never touches the state of a later run", func() {
			Expect(ctrl.Start()).To(Succeed())
			Eventually(calls.Load).Should(BeNumerically("==", 1))
			Expect(ctrl.Stop()).To(BeTrue())

			Expect(ctrl.Start()).To(Succeed())
			Eventually(calls.Load).Should(BeNumerically("==", 2))
			statusB := ctrl.View().Status

			close(releaseA)
			Eventually(ctrl.LastResult).ShouldNot(BeNil())
			Expect(ctrl.LastResult().Canceled()).To(BeTrue())

			Consistently(ctrl.State, 50*time.Millisecond).Should(Equal(playback.Running))
			Expect(ctrl.View().Status).To(Equal(statusB))
			Expect(ctrl.Stop()).To(BeTrue())
		})
	})

	Describe("a stale run exiting after a later run finished", func() {
		var (
			calls    atomic.Int32
			releaseA chan struct{}
		)

		BeforeEach(func() {
			calls.Store(0)
			releaseA = make(chan struct{})
			opts.Sleep = func(ctx context.Context, _ time.Duration) error {
				if calls.Add(1) == 1 {
					<-releaseA
					return ctx.Err()
				}
				return ctx.Err()
			}
		})

		It("keeps the later run's result", func() {
			Expect(ctrl.Start()).To(Succeed())
			Eventually(calls.Load).Should(BeNumerically("==", 1))
			Expect(ctrl.Stop()).To(BeTrue())

			Expect(ctrl.Start()).To(Succeed())
			Eventually(ctrl.State).Should(Equal(playback.Idle))
			Eventually(ctrl.LastResult).ShouldNot(BeNil())
			Expect(ctrl.LastResult().Outcome.Status).To(Equal(drivers.StatusSorted))

			close(releaseA)
			ctrl.Wait()
			res := ctrl.LastResult()
			Expect(res.Canceled()).To(BeFalse())
			Expect(res.Outcome.Status).To(Equal(drivers.StatusSorted))
		})
	})

	Describe("speed", func() {
		It("clamps and maps to the delay law", func() {
			ctrl.SetSpeed(1000)
			Expect(ctrl.Delay()).To(Equal(50 * time.Millisecond))
			ctrl.SetSpeed(10)
			Expect(ctrl.View().Speed).To(Equal(frame.MinSpeed))
			Expect(ctrl.Delay()).To(Equal(1000 * time.Millisecond))
			Eventually(surface.lastSpeed).Should(Equal(frame.MinSpeed))
		})

		Context("while running", func() {
			var (
				pauses  chan time.Duration
				proceed chan struct{}
			)

			BeforeEach(func() {
				pauses = make(chan time.Duration, 16)
				proceed = make(chan struct{})
				opts.Sleep = func(ctx context.Context, d time.Duration) error {
					pauses <- d
					select {
					case <-proceed:
						return nil
					case <-ctx.Done():
						return ctx.Err()
					}
				}
			})

			It("applies a new speed from the next step", func() {
				Expect(ctrl.Start()).To(Succeed())
				Eventually(pauses).Should(Receive(Equal(550 * time.Millisecond)))

				ctrl.SetSpeed(1000)
				proceed <- struct{}{}
				Eventually(pauses).Should(Receive(Equal(50 * time.Millisecond)))
				Expect(ctrl.Stop()).To(BeTrue())
			})
		})
	})

	Describe("setters", func() {
		It("resets on a size change", func() {
			Expect(ctrl.SetSize(30)).To(Succeed())
			Expect(ctrl.View().Values).To(HaveLen(30))
			Expect(ctrl.SetSize(60)).To(MatchError(playback.ErrSizeOutOfRange))
		})

		It("selects the default algorithm on a category change", func() {
			Expect(ctrl.SetCategory(drivers.Searching)).To(Succeed())
			v := ctrl.View()
			Expect(v.Algorithm).To(Equal("linear"))
			Expect(v.Algorithms).To(Equal([]string{"linear", "binary"}))
			Expect(ctrl.SetCategory("graph")).To(MatchError(playback.ErrUnknownCategory))
		})

		It("accepts only algorithms of the current category", func() {
			Expect(ctrl.SetAlgorithm("insertion")).To(Succeed())
			Expect(ctrl.View().Algorithm).To(Equal("insertion"))
			Expect(ctrl.SetAlgorithm("binary")).To(MatchError(playback.ErrUnknownAlgorithm))
		})
	})
})
