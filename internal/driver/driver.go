package driver

import (
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/five82/xsortlab/internal/results"
	"github.com/five82/xsortlab/internal/sortlab"
)

const (
	DefaultFastDelay   = 100 * time.Millisecond
	DefaultNormalDelay = time.Second
)

// Recorder receives per-step and per-run measurements.
type Recorder interface {
	ObserveStep(alg sortlab.Algorithm, kind sortlab.StepKind)
	ObserveRun(r results.TimedSortResult)
}

// Sink stores finished-run summaries.
type Sink interface {
	Append(r results.TimedSortResult)
}

// Options configure a Driver. Zero values fall back to defaults.
type Options struct {
	Scheduler   Scheduler
	Algorithm   sortlab.Algorithm
	FastDelay   time.Duration
	NormalDelay time.Duration
	Fast        bool

	// Clock reports wall time for elapsed measurement. Defaults to time.Now.
	Clock  func() time.Time
	Logger zerolog.Logger

	Sink     Sink
	Recorder Recorder
	// OnChange is called with a fresh State after every change.
	OnChange func(State)
	// NewRunID overrides run id generation.
	NewRunID func() string
}

// Driver plays one step-machine at a time, either a step per call or
// continuously through its Scheduler.
//
// A Driver is not safe for concurrent use. Every method, and every fn the
// Scheduler fires, must run on the same goroutine.
type Driver struct {
	opts Options
	log  zerolog.Logger

	kind    sortlab.Algorithm
	fast    bool
	initial []sortlab.Item
	machine sortlab.Machine
	board   *sortlab.Board
	runID   string

	// gen is bumped whenever a pending continuation is cancelled, so a
	// continuation that still fires after cancellation finds a stale token.
	gen    uint64
	cancel func()

	comparisons int
	copies      int
	steps       int
	last        sortlab.StepEvent
	hasLast     bool
	headline    string
	narration   string

	running  bool
	paused   bool
	finished bool

	started   bool
	startedAt time.Time
	elapsed   time.Duration
}

// New returns a driver with no active run. Call NewRun to load an array.
func New(opts Options) *Driver {
	if opts.Scheduler == nil {
		opts.Scheduler = NewManualScheduler()
	}
	if opts.FastDelay <= 0 {
		opts.FastDelay = DefaultFastDelay
	}
	if opts.NormalDelay <= 0 {
		opts.NormalDelay = DefaultNormalDelay
	}
	if opts.Clock == nil {
		opts.Clock = time.Now
	}
	if opts.NewRunID == nil {
		opts.NewRunID = func() string { return uuid.NewString() }
	}
	kind := opts.Algorithm
	if _, err := sortlab.ParseAlgorithm(string(kind)); err != nil {
		kind = sortlab.Selection
	}
	return &Driver{
		opts: opts,
		log:  opts.Logger.With().Str("component", "driver").Logger(),
		kind: kind,
		fast: opts.Fast,
	}
}

// SelectAlgorithm switches to kind. The in-progress machine is discarded and
// a fresh one is built over the current run's starting array; no run is
// started. Unknown kinds are rejected with sortlab.ErrUnknownAlgorithm.
func (d *Driver) SelectAlgorithm(kind sortlab.Algorithm) error {
	if _, err := sortlab.ParseAlgorithm(string(kind)); err != nil {
		return err
	}
	d.cancelPending()
	d.kind = kind
	if d.initial == nil {
		d.notify()
		return nil
	}
	if err := d.load(d.initial); err != nil {
		return err
	}
	d.notify()
	return nil
}

// NewRun loads items as the array to sort with the selected algorithm,
// resetting counters and flags. On error the previous run is left intact.
func (d *Driver) NewRun(items []sortlab.Item) error {
	if _, err := sortlab.New(d.kind, items); err != nil {
		return err
	}
	d.cancelPending()
	if err := d.load(items); err != nil {
		return err
	}
	d.notify()
	return nil
}

func (d *Driver) load(items []sortlab.Item) error {
	m, err := sortlab.New(d.kind, items)
	if err != nil {
		return err
	}
	initial := make([]sortlab.Item, len(items))
	copy(initial, items)

	d.initial = initial
	d.machine = m
	d.board = m.Board()
	d.runID = d.opts.NewRunID()
	d.comparisons, d.copies, d.steps = 0, 0, 0
	d.last, d.hasLast = sortlab.StepEvent{}, false
	d.headline = m.InitialNarration()
	d.narration = ""
	d.running, d.paused, d.finished = false, false, false
	d.started, d.startedAt, d.elapsed = false, time.Time{}, 0

	d.log.Debug().
		Str("run_id", d.runID).
		Str("algorithm", string(d.kind)).
		Int("size", len(items)).
		Msg("run loaded")
	return nil
}

// Run starts continuous playback. It is a no-op without a run, while
// already running or once finished.
func (d *Driver) Run() {
	if d.machine == nil || d.running || d.finished {
		return
	}
	d.markStarted()
	d.running = true
	d.paused = false
	d.log.Info().Str("run_id", d.runID).Str("algorithm", string(d.kind)).Int("steps", d.steps).Msg("run started")
	d.tick(d.gen)
}

// Pause halts continuous playback after the step in flight. A later Run
// resumes exactly where it stopped. It is a no-op unless running.
func (d *Driver) Pause() {
	if !d.running {
		return
	}
	d.cancelPending()
	d.running = false
	d.paused = true
	d.log.Info().
		Str("run_id", d.runID).
		Int("steps", d.steps).
		Int("comparisons", d.comparisons).
		Int("copies", d.copies).
		Msg("run paused")
	d.notify()
}

// Step advances the machine by one event. It is a no-op without a run,
// while running or once finished.
func (d *Driver) Step() {
	if d.machine == nil || d.running || d.finished {
		return
	}
	d.markStarted()
	d.advance()
	d.notify()
}

// SetFast switches between the fast and normal cadence. It takes effect
// from the next scheduled step.
func (d *Driver) SetFast(fast bool) {
	if d.fast == fast {
		return
	}
	d.fast = fast
	d.notify()
}

// Fast reports whether the fast cadence is selected.
func (d *Driver) Fast() bool {
	return d.fast
}

// Algorithm returns the selected algorithm.
func (d *Driver) Algorithm() sortlab.Algorithm {
	return d.kind
}

func (d *Driver) delay() time.Duration {
	if d.fast {
		return d.opts.FastDelay
	}
	return d.opts.NormalDelay
}

func (d *Driver) markStarted() {
	if d.started {
		return
	}
	d.started = true
	d.startedAt = d.opts.Clock()
}

// tick is the continuous-playback continuation. It pulls one event and
// re-arms itself while the run stays active.
func (d *Driver) tick(gen uint64) {
	if gen != d.gen || !d.running {
		return
	}
	d.cancel = nil
	next := d.advance()
	if d.running {
		token := d.gen
		d.cancel = d.opts.Scheduler.Schedule(next, func() { d.tick(token) })
	}
	d.notify()
}

// advance pulls and applies one event, returning the delay before the
// following pull.
func (d *Driver) advance() time.Duration {
	ev, ok := d.machine.NextStep()
	if !ok {
		d.finish()
		return 0
	}

	if err := d.board.Apply(ev); err != nil {
		d.log.Error().Err(err).Str("run_id", d.runID).Stringer("step", ev).Msg("apply step")
	}
	d.steps++
	d.last, d.hasLast = ev, true
	switch ev.Kind {
	case sortlab.KindCompare:
		d.comparisons++
	case sortlab.KindMove, sortlab.KindSwap:
		d.copies++
	}
	if ev.Message != "" {
		d.narration = ev.Message
	}
	if d.opts.Recorder != nil {
		d.opts.Recorder.ObserveStep(d.kind, ev.Kind)
	}

	if d.machine.IsComplete() {
		d.finish()
		return 0
	}
	if ev.Delay > 0 {
		return ev.Delay
	}
	return d.delay()
}

func (d *Driver) finish() {
	if d.finished {
		return
	}
	d.cancelPending()
	d.finished = true
	d.running = false
	d.paused = false
	now := d.opts.Clock()
	d.elapsed = now.Sub(d.startedAt)

	r := results.TimedSortResult{
		RunID:       d.runID,
		Algorithm:   d.kind,
		RunCount:    1,
		ArraySize:   d.board.Len(),
		Comparisons: d.comparisons,
		Copies:      d.copies,
		Elapsed:     d.elapsed,
		FinishedAt:  now,
	}
	if d.opts.Sink != nil {
		d.opts.Sink.Append(r)
	}
	if d.opts.Recorder != nil {
		d.opts.Recorder.ObserveRun(r)
	}
	d.log.Info().
		Str("run_id", d.runID).
		Str("algorithm", string(d.kind)).
		Int("steps", d.steps).
		Int("comparisons", d.comparisons).
		Int("copies", d.copies).
		Dur("elapsed", d.elapsed).
		Msg("run finished")
}

func (d *Driver) cancelPending() {
	if d.cancel != nil {
		d.cancel()
		d.cancel = nil
	}
	d.gen++
}

func (d *Driver) notify() {
	if d.opts.OnChange != nil {
		d.opts.OnChange(d.State())
	}
}
