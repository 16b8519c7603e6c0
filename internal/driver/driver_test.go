package driver

import (
	"errors"
	"slices"
	"testing"
	"time"

	"github.com/five82/xsortlab/internal/results"
	"github.com/five82/xsortlab/internal/sortlab"
)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Add(d time.Duration) { c.now = c.now.Add(d) }

type countingRecorder struct {
	steps map[sortlab.StepKind]int
	runs  []results.TimedSortResult
}

func (r *countingRecorder) ObserveStep(_ sortlab.Algorithm, kind sortlab.StepKind) {
	if r.steps == nil {
		r.steps = map[sortlab.StepKind]int{}
	}
	r.steps[kind]++
}

func (r *countingRecorder) ObserveRun(res results.TimedSortResult) {
	r.runs = append(r.runs, res)
}

type harness struct {
	d     *Driver
	sched *ManualScheduler
	clock *fakeClock
	log   *results.Log
	rec   *countingRecorder
}

func newHarness(t *testing.T, kind sortlab.Algorithm) *harness {
	t.Helper()
	h := &harness{
		sched: NewManualScheduler(),
		clock: &fakeClock{now: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)},
		log:   &results.Log{},
		rec:   &countingRecorder{},
	}
	h.d = New(Options{
		Scheduler: h.sched,
		Algorithm: kind,
		Clock:     h.clock.Now,
		Sink:      h.log,
		Recorder:  h.rec,
	})
	return h
}

func (h *harness) stepToEnd(t *testing.T) {
	t.Helper()
	for range 100000 {
		if h.d.State().Finished {
			return
		}
		h.d.Step()
	}
	t.Fatal("driver did not finish")
}

func TestDriver_StepCountsBubbleScenario(t *testing.T) {
	h := newHarness(t, sortlab.Bubble)
	if err := h.d.NewRun(sortlab.FromValues(3, 1, 2)); err != nil {
		t.Fatalf("NewRun: %v", err)
	}

	for range 5 {
		h.d.Step()
	}
	st := h.d.State()
	if st.Comparisons != 2 || st.Copies != 2 {
		t.Fatalf("after first pass comparisons=%d copies=%d, want 2 and 2", st.Comparisons, st.Copies)
	}
	if got := st.Board.Values(); !slices.Equal(got, []int{1, 2, 3}) {
		t.Fatalf("values = %v, want [1 2 3]", got)
	}
	if st.Headline == "" || st.Narration == "" {
		t.Fatalf("headline=%q narration=%q, want both set", st.Headline, st.Narration)
	}

	h.stepToEnd(t)
	st = h.d.State()
	if st.Running || !st.Finished {
		t.Fatalf("running=%v finished=%v after completion", st.Running, st.Finished)
	}
	if st.Narration != "The sort is finished." {
		t.Fatalf("narration = %q", st.Narration)
	}
	snap := h.log.Snapshot()
	if len(snap) != 1 {
		t.Fatalf("results = %d, want 1", len(snap))
	}
	r := snap[0]
	if r.Algorithm != sortlab.Bubble || r.RunCount != 1 || r.ArraySize != 3 || r.Comparisons != 3 || r.Copies != 2 {
		t.Fatalf("result = %+v", r)
	}
	if r.RunID == "" || r.RunID != st.RunID {
		t.Fatalf("result run id %q, state run id %q", r.RunID, st.RunID)
	}
	if len(h.rec.runs) != 1 || h.rec.steps[sortlab.KindCompare] != 3 {
		t.Fatalf("recorder runs=%d compares=%d", len(h.rec.runs), h.rec.steps[sortlab.KindCompare])
	}
}

func TestDriver_RunFollowsCadence(t *testing.T) {
	h := newHarness(t, sortlab.Selection)
	if err := h.d.NewRun(sortlab.NewSeededGenerator(1).Generate(8)); err != nil {
		t.Fatalf("NewRun: %v", err)
	}

	h.d.Run()
	if st := h.d.State(); !st.Running || st.Steps != 1 {
		t.Fatalf("after Run running=%v steps=%d, want running with 1 step", st.Running, st.Steps)
	}
	if n := h.sched.Advance(DefaultNormalDelay - time.Millisecond); n != 0 {
		t.Fatalf("fired %d before the normal delay elapsed", n)
	}
	if n := h.sched.Advance(time.Millisecond); n != 1 {
		t.Fatalf("fired %d at the normal delay, want 1", n)
	}

	h.d.SetFast(true)
	// The pending continuation was armed with the normal delay.
	h.sched.Advance(DefaultNormalDelay)
	before := h.d.State().Steps
	if n := h.sched.Advance(10 * DefaultFastDelay); n != 10 {
		t.Fatalf("fast mode fired %d in ten fast periods, want 10", n)
	}
	if got := h.d.State().Steps - before; got != 10 {
		t.Fatalf("fast mode advanced %d steps, want 10", got)
	}

	h.sched.RunUntilIdle(100000)
	st := h.d.State()
	if !st.Finished || st.Running {
		t.Fatalf("finished=%v running=%v after draining", st.Finished, st.Running)
	}
	if h.sched.Pending() != 0 {
		t.Fatalf("pending continuations after finish = %d", h.sched.Pending())
	}
	if h.log.Len() != 1 {
		t.Fatalf("results = %d, want 1", h.log.Len())
	}
}

func TestDriver_PauseResumeMatchesStepping(t *testing.T) {
	for _, kind := range sortlab.Algorithms() {
		t.Run(string(kind), func(t *testing.T) {
			items := sortlab.NewSeededGenerator(77).Generate(16)

			stepped := newHarness(t, kind)
			if err := stepped.d.NewRun(items); err != nil {
				t.Fatalf("NewRun: %v", err)
			}
			stepped.stepToEnd(t)

			played := newHarness(t, kind)
			if err := played.d.NewRun(items); err != nil {
				t.Fatalf("NewRun: %v", err)
			}
			for !played.d.State().Finished {
				played.d.Run()
				played.sched.Advance(3 * DefaultNormalDelay)
				played.d.Pause()
				if played.sched.Advance(10*DefaultNormalDelay) != 0 {
					t.Fatal("continuation fired while paused")
				}
			}

			a, b := stepped.d.State(), played.d.State()
			if !slices.Equal(a.Board.Values(), b.Board.Values()) {
				t.Fatalf("final arrays differ: %v vs %v", a.Board.Values(), b.Board.Values())
			}
			if a.Comparisons != b.Comparisons || a.Copies != b.Copies || a.Steps != b.Steps {
				t.Fatalf("stepped %d/%d/%d, played %d/%d/%d (comparisons/copies/steps)",
					a.Comparisons, a.Copies, a.Steps, b.Comparisons, b.Copies, b.Steps)
			}
		})
	}
}

func TestDriver_SelectNewRunPauseRunStartsAtFirstStep(t *testing.T) {
	h := newHarness(t, sortlab.Bubble)
	if err := h.d.NewRun(sortlab.NewSeededGenerator(3).Generate(10)); err != nil {
		t.Fatalf("NewRun: %v", err)
	}
	h.d.Run()
	h.sched.Advance(5 * DefaultNormalDelay)

	items := sortlab.NewSeededGenerator(4).Generate(10)
	if err := h.d.SelectAlgorithm(sortlab.Quick); err != nil {
		t.Fatalf("SelectAlgorithm: %v", err)
	}
	if err := h.d.NewRun(items); err != nil {
		t.Fatalf("NewRun: %v", err)
	}
	h.d.Pause()
	if st := h.d.State(); st.Paused || st.Running || st.Steps != 0 {
		t.Fatalf("after select/newRun/pause state = %+v", st)
	}

	h.d.Run()
	fresh, err := sortlab.New(sortlab.Quick, items)
	if err != nil {
		t.Fatalf("sortlab.New: %v", err)
	}
	want, _ := fresh.NextStep()
	st := h.d.State()
	if st.Steps != 1 || st.LastStep.String() != want.String() {
		t.Fatalf("first step after restart = %v (steps %d), want %v", st.LastStep, st.Steps, want)
	}
}

// leakyScheduler never cancels anything, like a timer whose message is
// already in flight.
type leakyScheduler struct {
	fns []func()
}

func (s *leakyScheduler) Schedule(_ time.Duration, fn func()) func() {
	s.fns = append(s.fns, fn)
	return func() {}
}

func TestDriver_StaleContinuationsAreIgnored(t *testing.T) {
	sched := &leakyScheduler{}
	d := New(Options{Scheduler: sched, Algorithm: sortlab.Insertion})
	if err := d.NewRun(sortlab.NewSeededGenerator(9).Generate(12)); err != nil {
		t.Fatalf("NewRun: %v", err)
	}

	d.Run()
	d.Pause()
	d.Run()
	if got := d.State().Steps; got != 2 {
		t.Fatalf("steps = %d, want 2", got)
	}
	if len(sched.fns) != 2 {
		t.Fatalf("scheduled %d continuations, want 2", len(sched.fns))
	}

	sched.fns[0]()
	if got := d.State().Steps; got != 2 {
		t.Fatalf("stale continuation advanced the run to %d steps", got)
	}
	sched.fns[1]()
	if got := d.State().Steps; got != 3 {
		t.Fatalf("live continuation: steps = %d, want 3", got)
	}

	live := sched.fns[2]
	if err := d.NewRun(sortlab.NewSeededGenerator(10).Generate(12)); err != nil {
		t.Fatalf("NewRun: %v", err)
	}
	live()
	if st := d.State(); st.Steps != 0 || st.Running {
		t.Fatalf("continuation from discarded run touched the new one: %+v", st)
	}
}

func TestDriver_InvalidCallsAreNoops(t *testing.T) {
	h := newHarness(t, sortlab.Merge)

	h.d.Run()
	h.d.Step()
	h.d.Pause()
	if st := h.d.State(); st.Loaded() || st.Running || st.Steps != 0 {
		t.Fatalf("calls before NewRun changed state: %+v", st)
	}

	if err := h.d.NewRun(sortlab.NewSeededGenerator(5).Generate(6)); err != nil {
		t.Fatalf("NewRun: %v", err)
	}
	h.d.Pause()
	if h.d.State().Paused {
		t.Fatal("Pause while stopped set Paused")
	}

	h.d.Run()
	h.d.Step()
	h.d.Run()
	if st := h.d.State(); st.Steps != 1 {
		t.Fatalf("Step/Run while running changed steps to %d", st.Steps)
	}
	if h.sched.Pending() != 1 {
		t.Fatalf("pending = %d, want exactly one continuation", h.sched.Pending())
	}

	h.sched.RunUntilIdle(100000)
	final := h.d.State()
	h.d.Run()
	h.d.Step()
	h.d.Pause()
	if st := h.d.State(); st.Steps != final.Steps || !st.Finished || st.Running {
		t.Fatalf("calls after finish changed state: %+v", st)
	}
	if h.log.Len() != 1 || len(h.rec.runs) != 1 {
		t.Fatalf("results = %d, recorder runs = %d, want 1 each", h.log.Len(), len(h.rec.runs))
	}
}

func TestDriver_NewRunRejectsBadInputAndKeepsRun(t *testing.T) {
	h := newHarness(t, sortlab.Quick)
	if err := h.d.NewRun(sortlab.FromValues(2, 1, 3)); err != nil {
		t.Fatalf("NewRun: %v", err)
	}
	h.d.Step()
	before := h.d.State()

	if err := h.d.NewRun(sortlab.FromValues(1)); !errors.Is(err, sortlab.ErrInvalidInput) {
		t.Fatalf("NewRun(short) error = %v, want ErrInvalidInput", err)
	}
	if err := h.d.SelectAlgorithm("heap"); !errors.Is(err, sortlab.ErrUnknownAlgorithm) {
		t.Fatalf("SelectAlgorithm(heap) error = %v, want ErrUnknownAlgorithm", err)
	}
	after := h.d.State()
	if after.RunID != before.RunID || after.Steps != before.Steps || after.Algorithm != sortlab.Quick {
		t.Fatalf("rejected calls changed the run: before %+v after %+v", before, after)
	}
}

func TestDriver_SelectAlgorithmResetsToStartingArray(t *testing.T) {
	h := newHarness(t, sortlab.Bubble)
	items := sortlab.FromValues(4, 3, 2, 1)
	if err := h.d.NewRun(items); err != nil {
		t.Fatalf("NewRun: %v", err)
	}
	for range 4 {
		h.d.Step()
	}
	oldRun := h.d.State().RunID

	if err := h.d.SelectAlgorithm(sortlab.Insertion); err != nil {
		t.Fatalf("SelectAlgorithm: %v", err)
	}
	st := h.d.State()
	if !slices.Equal(st.Board.Values(), []int{4, 3, 2, 1}) {
		t.Fatalf("board = %v, want the starting array", st.Board.Values())
	}
	if st.Steps != 0 || st.Comparisons != 0 || st.Copies != 0 || st.RunID == oldRun {
		t.Fatalf("select did not start a fresh run: %+v", st)
	}
	if st.Headline != "The sublist in the box -- just item 1 for now -- is correctly sorted" {
		t.Fatalf("headline = %q", st.Headline)
	}
}

func TestDriver_DisplayBoardTracksMachine(t *testing.T) {
	for _, kind := range []sortlab.Algorithm{sortlab.Insertion, sortlab.Merge, sortlab.Quick} {
		items := sortlab.NewSeededGenerator(21).Generate(9)
		h := newHarness(t, kind)
		if err := h.d.NewRun(items); err != nil {
			t.Fatalf("NewRun: %v", err)
		}
		ref, err := sortlab.New(kind, items)
		if err != nil {
			t.Fatalf("sortlab.New: %v", err)
		}
		for !h.d.State().Finished {
			h.d.Step()
			ref.NextStep()
			got, want := h.d.State().Board, ref.Board()
			for slot := 0; slot <= 2*want.Len(); slot++ {
				if got.At(slot) != want.At(slot) {
					t.Fatalf("%s slot %d: display %+v, machine %+v", kind, slot, got.At(slot), want.At(slot))
				}
			}
		}
	}
}

func TestDriver_ElapsedStartsAtFirstPull(t *testing.T) {
	h := newHarness(t, sortlab.Selection)
	if err := h.d.NewRun(sortlab.FromValues(2, 1)); err != nil {
		t.Fatalf("NewRun: %v", err)
	}
	h.clock.Add(time.Minute)
	if got := h.d.State().Elapsed; got != 0 {
		t.Fatalf("elapsed before start = %v, want 0", got)
	}

	h.d.Step()
	h.clock.Add(3 * time.Second)
	if got := h.d.State().Elapsed; got != 3*time.Second {
		t.Fatalf("elapsed mid-run = %v, want 3s", got)
	}
	h.stepToEnd(t)
	h.clock.Add(time.Hour)

	if got := h.d.State().Elapsed; got != 3*time.Second {
		t.Fatalf("elapsed after finish = %v, want frozen at 3s", got)
	}
	last, _ := h.log.Last()
	if last.Elapsed != 3*time.Second {
		t.Fatalf("result elapsed = %v, want 3s", last.Elapsed)
	}
}

func TestDriver_OnChangeSeesEveryStep(t *testing.T) {
	var seen []State
	d := New(Options{
		Algorithm: sortlab.Bubble,
		OnChange:  func(st State) { seen = append(seen, st) },
	})
	if err := d.NewRun(sortlab.FromValues(2, 1)); err != nil {
		t.Fatalf("NewRun: %v", err)
	}
	d.Step()
	d.Step()
	if len(seen) != 3 {
		t.Fatalf("OnChange calls = %d, want 3", len(seen))
	}
	if seen[0].Steps != 0 || seen[1].Steps != 1 || seen[2].Steps != 2 {
		t.Fatalf("observed steps %d %d %d", seen[0].Steps, seen[1].Steps, seen[2].Steps)
	}
	if seen[1].LastStep.Kind != sortlab.KindCompare || seen[2].LastStep.Kind != sortlab.KindSwap {
		t.Fatalf("observed kinds %s then %s", seen[1].LastStep.Kind, seen[2].LastStep.Kind)
	}
}
