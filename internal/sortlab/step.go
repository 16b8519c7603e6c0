package sortlab

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// StepKind classifies a StepEvent.
type StepKind string

const (
	KindCompare   StepKind = "compare"
	KindSwap      StepKind = "swap"
	KindMove      StepKind = "move"
	KindHighlight StepKind = "highlight"
	KindFinish    StepKind = "finish"
)

var (
	// ErrInvalidInput is returned when a machine is built from an array it
	// cannot sort.
	ErrInvalidInput = errors.New("invalid input array")
	// ErrUnknownAlgorithm is returned for algorithm names outside the catalogue.
	ErrUnknownAlgorithm = errors.New("unknown algorithm")
	// ErrInvalidStep is returned by Board.Apply for events that address
	// slots the board does not have.
	ErrInvalidStep = errors.New("invalid step")
)

// StepEvent is one visible unit of work emitted by a Machine.
type StepEvent struct {
	Kind StepKind
	// Items lists affected slots, 1-based. Slot 0 is the temp register and
	// only appears in moves and compares against temp. For a move the order
	// is source then destination.
	Items []int
	// Message narrates the step. Follow-up events of a transition (the swap
	// after its compare) carry an empty message.
	Message string
	// Delay, when non-zero, overrides the playback cadence before the next
	// pull.
	Delay time.Duration
	// FromScratch marks the merge copy-back: every listed live slot receives
	// the scratch item with the same index.
	FromScratch bool
}

// Mutates reports whether applying the event relocates items.
func (e StepEvent) Mutates() bool {
	return e.Kind == KindSwap || e.Kind == KindMove
}

func (e StepEvent) String() string {
	var b strings.Builder
	b.WriteString(string(e.Kind))
	if len(e.Items) > 0 {
		b.WriteString(" [")
		for i, s := range e.Items {
			if i > 0 {
				b.WriteByte(' ')
			}
			if s == TempSlot {
				b.WriteString("temp")
				continue
			}
			fmt.Fprintf(&b, "%d", s)
		}
		b.WriteByte(']')
	}
	if e.FromScratch {
		b.WriteString(" from scratch")
	}
	if e.Message != "" {
		b.WriteString(" ")
		b.WriteString(e.Message)
	}
	return b.String()
}

func span(lo, hi int) []int {
	if hi < lo {
		return []int{}
	}
	out := make([]int, 0, hi-lo+1)
	for s := lo; s <= hi; s++ {
		out = append(out, s)
	}
	return out
}
