package playback

import (
	"context"
	"log/slog"
	"math/rand"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/san-kum/algolab/internal/drivers"
	"github.com/san-kum/algolab/internal/engine"
	"github.com/san-kum/algolab/internal/experiment"
	"github.com/san-kum/algolab/internal/frame"
	"github.com/san-kum/algolab/internal/metrics"
)

type Controller struct {
	reg       *experiment.Registry
	lang      frame.Lang
	logger    *slog.Logger
	sleep     engine.SleepFunc
	observers []engine.Observer
	metrics   func() []engine.Metric

	speed atomic.Int64

	mu        sync.Mutex
	rng       *rand.Rand
	category  drivers.Category
	algorithm string
	size      int
	target    string
	current   frame.Frame
	state     State
	gen       uint64
	cancel    context.CancelFunc
	last      *engine.Result
	lastGen   uint64
	runs      sync.WaitGroup

	out *dispatcher
}

func New(opts Options) *Controller {
	if opts.Registry == nil {
		opts.Registry = experiment.NewRegistry()
	}
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if !opts.Lang.Valid() {
		opts.Lang = frame.DefaultLang
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.Surface == nil {
		opts.Surface = nopSurface{}
	}
	if opts.Metrics == nil {
		opts.Metrics = opts.Registry.DefaultMetrics
	}
	if opts.Category == "" {
		opts.Category = drivers.Sorting
	}
	if !opts.Registry.Has(opts.Category, opts.Algorithm) {
		opts.Algorithm = opts.Registry.DefaultAlgorithm(opts.Category)
	}
	if opts.Size < frame.MinSize || opts.Size > frame.MaxSize {
		opts.Size = frame.DefaultSize
	}
	if opts.Speed == 0 {
		opts.Speed = frame.DefaultSpeed
	}

	c := &Controller{
		reg:       opts.Registry,
		lang:      opts.Lang,
		logger:    opts.Logger.With(slog.String("component", "playback")),
		sleep:     opts.Sleep,
		observers: opts.Observers,
		metrics:   opts.Metrics,
		rng:       opts.Rand,
		category:  opts.Category,
		algorithm: opts.Algorithm,
		size:      opts.Size,
		target:    opts.Target,
		out:       newDispatcher(opts.Surface),
	}
	c.speed.Store(int64(frame.ClampSpeed(opts.Speed)))

	c.mu.Lock()
	c.resetLocked(frame.MsgReady)
	c.mu.Unlock()
	return c
}

// Delay is the live pause for ordinary steps; runs read it once per step.
func (c *Controller) Delay() time.Duration {
	return frame.Delay(int(c.speed.Load()))
}

// Reset draws a fresh dataset of size values for category. It returns false
// without changing anything while a run is active or when the input is out
// of range.
func (c *Controller) Reset(size int, category drivers.Category) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state == Running {
		return false
	}
	if size < frame.MinSize || size > frame.MaxSize {
		return false
	}
	if _, err := drivers.ParseCategory(string(category)); err != nil {
		return false
	}
	if category != c.category {
		c.category = category
		c.algorithm = c.reg.DefaultAlgorithm(category)
	}
	c.size = size
	c.resetLocked(frame.MsgReset)
	return true
}

func (c *Controller) resetLocked(msg frame.MsgKey) {
	data, err := frame.Generate(c.rng, c.size)
	if err != nil {
		c.logger.Error("reset failed", slog.Int("size", c.size), slog.String("error", err.Error()))
		return
	}
	c.current = frame.New(frame.KindReset, data, frame.Uniform(len(data), frame.TagDefault), c.lang.Format(msg))
	c.out.configure(c.size, int(c.speed.Load()))
	c.out.render(c.current, false)
}

// Start begins a run of the selected algorithm, or stops the active one.
// A missing or non-numeric target for a searching algorithm is rejected
// with an *InputError before anything changes.
func (c *Controller) Start() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state == Running {
		c.stopLocked()
		return nil
	}

	var cfg engine.Config
	if c.category == drivers.Searching {
		target, err := strconv.Atoi(strings.TrimSpace(c.target))
		if err != nil {
			return &InputError{Msg: c.lang.Format(frame.MsgInvalidTarget), Err: ErrInvalidTarget}
		}
		cfg.Target, cfg.HasTarget = target, true
	}

	d, err := c.reg.GetDriver(c.category, c.algorithm, c.lang)
	if err != nil {
		return err
	}

	runner := engine.New(d)
	runner.SetLogger(c.logger)
	for _, m := range c.metrics() {
		runner.AddMetric(m)
	}

	c.gen++
	gen := c.gen
	runner.AddObserver(&controllerObserver{c: c, gen: gen})
	runner.AddObserver(metrics.NewPromObserver(d.Name()))
	for _, o := range c.observers {
		runner.AddObserver(o)
	}

	ctx, cancel := context.WithCancel(context.Background())
	c.cancel = cancel
	c.state = Running
	cfg.Delay = c
	cfg.Sleep = c.sleep

	data := c.current.Values.Clone()
	c.out.render(c.current, true)

	c.logger.Info("run started",
		slog.String("algorithm", d.Name()),
		slog.Int("size", len(data)),
		slog.Uint64("generation", gen),
	)

	finish := metrics.RunStarted(d.Name())
	c.runs.Add(1)
	go func() {
		defer c.runs.Done()
		defer cancel()

		res, err := runner.Run(ctx, data, cfg)
		if err != nil {
			finish("error")
			c.logger.Error("run rejected", slog.String("error", err.Error()))
			c.finish(gen, nil)
			return
		}
		finish(res.Outcome.Status.String())
		c.finish(gen, res)
	}()
	return nil
}

// finish returns the controller to idle unless the run was already stopped
// or superseded.
func (c *Controller) finish(gen uint64, res *engine.Result) {
	c.mu.Lock()
	defer c.mu.Unlock()

	// a stopped run still reports its result unless a later run already has
	if res != nil && gen >= c.lastGen {
		c.last, c.lastGen = res, gen
	}
	if gen != c.gen || c.state != Running {
		return
	}
	c.state = Idle
	c.cancel = nil
	if res != nil {
		c.logger.Info("run finished",
			slog.String("outcome", res.Outcome.Status.String()),
			slog.Int("steps", res.Steps),
			slog.Uint64("generation", gen),
		)
	}
	c.out.render(c.current, false)
}

// Stop cancels the active run and marks the controller idle without waiting
// for the driver. It reports whether a run was active.
func (c *Controller) Stop() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state != Running {
		return false
	}
	c.stopLocked()
	return true
}

func (c *Controller) stopLocked() {
	c.cancel()
	c.cancel = nil
	c.gen++
	c.state = Idle
	step := c.current.Step
	c.current = frame.New(frame.KindStopped, c.current.Values, c.current.Tags, c.lang.Format(frame.MsgStopped))
	c.current.Step = step
	c.logger.Info("run stopped", slog.Uint64("generation", c.gen))
	c.out.render(c.current, false)
}

func (c *Controller) SetSpeed(speed int) {
	speed = frame.ClampSpeed(speed)
	c.speed.Store(int64(speed))

	c.mu.Lock()
	defer c.mu.Unlock()
	c.out.configure(c.size, speed)
}

// SetSize changes the dataset size and resets when idle. It is ignored while
// a run is active.
func (c *Controller) SetSize(size int) error {
	if size < frame.MinSize || size > frame.MaxSize {
		return ErrSizeOutOfRange
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state == Running {
		return nil
	}
	c.size = size
	c.resetLocked(frame.MsgReset)
	return nil
}

// SetCategory switches category, selects its default algorithm and resets.
func (c *Controller) SetCategory(category drivers.Category) error {
	if _, err := drivers.ParseCategory(string(category)); err != nil {
		return ErrUnknownCategory
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state == Running {
		return nil
	}
	c.category = category
	c.algorithm = c.reg.DefaultAlgorithm(category)
	c.resetLocked(frame.MsgReset)
	return nil
}

func (c *Controller) SetAlgorithm(name string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.reg.Has(c.category, name) {
		return ErrUnknownAlgorithm
	}
	if c.state == Running {
		return nil
	}
	c.algorithm = name
	return nil
}

// SetTarget stores the raw search input; it is parsed by Start.
func (c *Controller) SetTarget(raw string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.target = raw
}

// Lang is the status catalog used for frames and input errors.
func (c *Controller) Lang() frame.Lang {
	return c.lang
}

func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

func (c *Controller) View() View {
	c.mu.Lock()
	defer c.mu.Unlock()

	tags := make([]string, len(c.current.Tags))
	for i, t := range c.current.Tags {
		tags[i] = t.String()
	}
	speed := int(c.speed.Load())
	return View{
		State:       c.state.String(),
		Category:    string(c.category),
		Algorithm:   c.algorithm,
		Algorithms:  c.reg.Algorithms(c.category),
		Size:        c.size,
		Speed:       speed,
		DelayMillis: frame.Delay(speed).Milliseconds(),
		Target:      c.target,
		Values:      c.current.Values.Clone(),
		Tags:        tags,
		Status:      c.current.Status,
		Step:        c.current.Step,
		Description: c.reg.Description(c.category, c.algorithm, c.lang),
	}
}

// LastResult is the result of the most recent run to exit, stopped runs
// included.
func (c *Controller) LastResult() *engine.Result {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.last
}

// Wait blocks until every run goroutine, including abandoned ones, has
// exited.
func (c *Controller) Wait() {
	c.runs.Wait()
}

// Close stops any active run, waits for it and stops rendering.
func (c *Controller) Close() {
	c.Stop()
	c.Wait()
	c.out.close()
}

type controllerObserver struct {
	c   *Controller
	gen uint64
}

// OnFrame adopts f unless the run has been stopped or superseded.
func (o *controllerObserver) OnFrame(f frame.Frame) {
	c := o.c
	c.mu.Lock()
	defer c.mu.Unlock()

	if o.gen != c.gen || c.state != Running {
		return
	}
	c.current = f
	c.out.render(f, true)
}
