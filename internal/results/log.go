package results

import (
	"slices"
	"sync"
	"time"

	"github.com/five82/xsortlab/internal/sortlab"
)

// TimedSortResult summarizes one finished run, or a batch of runs for the
// timed benchmark.
type TimedSortResult struct {
	RunID       string
	Algorithm   sortlab.Algorithm
	RunCount    int
	ArraySize   int
	Comparisons int
	Copies      int
	Elapsed     time.Duration
	FinishedAt  time.Time
}

// AverageComparisons returns comparisons per run.
func (r TimedSortResult) AverageComparisons() float64 {
	if r.RunCount <= 0 {
		return 0
	}
	return float64(r.Comparisons) / float64(r.RunCount)
}

// AverageCopies returns copies per run.
func (r TimedSortResult) AverageCopies() float64 {
	if r.RunCount <= 0 {
		return 0
	}
	return float64(r.Copies) / float64(r.RunCount)
}

// Log is an append-only record of results. The zero value is ready to use
// and safe for concurrent use.
type Log struct {
	mu      sync.RWMutex
	entries []TimedSortResult
}

// Append records r.
func (l *Log) Append(r TimedSortResult) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = append(l.entries, r)
}

// Snapshot returns a copy of every result in append order.
func (l *Log) Snapshot() []TimedSortResult {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return slices.Clone(l.entries)
}

// Len returns the number of recorded results.
func (l *Log) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.entries)
}

// Last returns the most recent result, if any.
func (l *Log) Last() (TimedSortResult, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	if len(l.entries) == 0 {
		return TimedSortResult{}, false
	}
	return l.entries[len(l.entries)-1], true
}
