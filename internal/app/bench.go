package app

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/five82/xsortlab/internal/driver"
	"github.com/five82/xsortlab/internal/results"
	"github.com/five82/xsortlab/internal/sortlab"
)

// ErrInvalidBench is returned when a benchmark is asked for no runs or for
// arrays too small to sort.
var ErrInvalidBench = errors.New("invalid benchmark")

// BenchOptions configure a timed sort.
type BenchOptions struct {
	Algorithm sortlab.Algorithm
	Size      int
	Count     int
	// Generator supplies the arrays. Defaults to a random generator.
	Generator sortlab.Generator
	Recorder  driver.Recorder
	Logger    zerolog.Logger
	// Clock measures the batch. Defaults to time.Now.
	Clock func() time.Time
}

// sliceSink collects the per-run results the driver reports.
type sliceSink []results.TimedSortResult

func (s *sliceSink) Append(r results.TimedSortResult) {
	*s = append(*s, r)
}

// Bench sorts Count generated arrays of Size items with one algorithm, as
// fast as the machine can step, and sums the counters into one result with
// RunCount = Count. It stops early with ctx's error when ctx is cancelled.
func Bench(ctx context.Context, opts BenchOptions) (results.TimedSortResult, error) {
	alg, err := sortlab.ParseAlgorithm(string(opts.Algorithm))
	if err != nil {
		return results.TimedSortResult{}, err
	}
	if opts.Count < 1 {
		return results.TimedSortResult{}, fmt.Errorf("%w: count %d", ErrInvalidBench, opts.Count)
	}
	if opts.Size < sortlab.MinSize {
		return results.TimedSortResult{}, fmt.Errorf("%w: size %d below %d", ErrInvalidBench, opts.Size, sortlab.MinSize)
	}
	gen := opts.Generator
	if gen == nil {
		gen = sortlab.NewRandomGenerator()
	}
	clock := opts.Clock
	if clock == nil {
		clock = time.Now
	}

	// Per-run lifecycle lines would drown the batch summary.
	runLog := opts.Logger
	if runLog.GetLevel() < zerolog.WarnLevel {
		runLog = runLog.Level(zerolog.WarnLevel)
	}

	var runs sliceSink
	sched := driver.NewManualScheduler()
	d := driver.New(driver.Options{
		Scheduler: sched,
		Algorithm: alg,
		Clock:     clock,
		Logger:    runLog,
		Sink:      &runs,
		Recorder:  opts.Recorder,
	})

	start := clock()
	for i := range opts.Count {
		if err := ctx.Err(); err != nil {
			return results.TimedSortResult{}, err
		}
		if err := d.NewRun(gen.Generate(opts.Size)); err != nil {
			return results.TimedSortResult{}, fmt.Errorf("run %d: %w", i+1, err)
		}
		d.Run()
		sched.RunUntilIdle(math.MaxInt)
		if !d.State().Finished {
			return results.TimedSortResult{}, fmt.Errorf("run %d: sort did not finish", i+1)
		}
	}
	end := clock()

	total := results.TimedSortResult{
		RunID:      uuid.NewString(),
		Algorithm:  alg,
		RunCount:   len(runs),
		ArraySize:  opts.Size,
		Elapsed:    end.Sub(start),
		FinishedAt: end,
	}
	for _, r := range runs {
		total.Comparisons += r.Comparisons
		total.Copies += r.Copies
	}

	opts.Logger.Info().
		Str("run_id", total.RunID).
		Str("algorithm", string(alg)).
		Int("runs", total.RunCount).
		Int("size", total.ArraySize).
		Int("comparisons", total.Comparisons).
		Int("copies", total.Copies).
		Dur("elapsed", total.Elapsed).
		Msg("benchmark finished")
	return total, nil
}
