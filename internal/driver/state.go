package driver

import (
	"time"

	"github.com/five82/xsortlab/internal/sortlab"
)

// State is a snapshot of everything the presentation layer draws.
type State struct {
	Algorithm sortlab.Algorithm
	RunID     string
	// Board is nil until the first NewRun.
	Board *sortlab.Board

	// Headline is the machine's initial narration. Narration is the message
	// of the most recent step that carried one.
	Headline  string
	Narration string
	LastStep  sortlab.StepEvent
	HasStep   bool

	Steps       int
	Comparisons int
	Copies      int

	Running  bool
	Paused   bool
	Finished bool
	Fast     bool

	Elapsed time.Duration
}

// Loaded reports whether a run is on the board.
func (s State) Loaded() bool {
	return s.Board != nil
}

// Started reports whether any step has been taken in the current run.
func (s State) Started() bool {
	return s.Steps > 0
}

// State returns a snapshot of the driver.
func (d *Driver) State() State {
	st := State{
		Algorithm:   d.kind,
		RunID:       d.runID,
		Headline:    d.headline,
		Narration:   d.narration,
		LastStep:    d.last,
		HasStep:     d.hasLast,
		Steps:       d.steps,
		Comparisons: d.comparisons,
		Copies:      d.copies,
		Running:     d.running,
		Paused:      d.paused,
		Finished:    d.finished,
		Fast:        d.fast,
	}
	if d.board != nil {
		st.Board = d.board.Clone()
	}
	switch {
	case d.finished:
		st.Elapsed = d.elapsed
	case d.started:
		st.Elapsed = d.opts.Clock().Sub(d.startedAt)
	}
	return st
}
