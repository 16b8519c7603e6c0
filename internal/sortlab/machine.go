package sortlab

import (
	"fmt"
	"strings"
)

// Algorithm names one of the step-machine variants.
type Algorithm string

const (
	Bubble    Algorithm = "bubble"
	Selection Algorithm = "selection"
	Insertion Algorithm = "insertion"
	Merge     Algorithm = "merge"
	Quick     Algorithm = "quick"
)

// MinSize is the smallest array a machine accepts.
const MinSize = 2

// Algorithms returns every algorithm in menu order.
func Algorithms() []Algorithm {
	return []Algorithm{Bubble, Selection, Insertion, Merge, Quick}
}

// ParseAlgorithm resolves a case-insensitive algorithm name.
func ParseAlgorithm(name string) (Algorithm, error) {
	a := Algorithm(strings.ToLower(strings.TrimSpace(name)))
	for _, known := range Algorithms() {
		if a == known {
			return a, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
}

// Next returns the algorithm after a in menu order, wrapping around.
func (a Algorithm) Next() Algorithm {
	all := Algorithms()
	for i, known := range all {
		if known == a {
			return all[(i+1)%len(all)]
		}
	}
	return all[0]
}

// Machine is a sorting algorithm that can be advanced one visible step at a
// time. Machines are not safe for concurrent use.
type Machine interface {
	Algorithm() Algorithm
	// NextStep applies and returns the next event. It returns false once the
	// sort is complete, and keeps returning false without side effects.
	NextStep() (StepEvent, bool)
	InitialNarration() string
	IsComplete() bool
	// Board returns a copy of the machine's current board.
	Board() *Board
}

// New builds a fresh machine of the given kind over a copy of items.
func New(kind Algorithm, items []Item) (Machine, error) {
	if err := validate(items); err != nil {
		return nil, err
	}
	b := newBase(kind, items)
	switch kind {
	case Bubble:
		return newBubbleSort(b), nil
	case Selection:
		return newSelectionSort(b), nil
	case Insertion:
		return newInsertionSort(b), nil
	case Merge:
		return newMergeSort(b), nil
	case Quick:
		return newQuickSort(b), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, string(kind))
	}
}

func validate(items []Item) error {
	if len(items) < MinSize {
		return fmt.Errorf("%w: need at least %d items, got %d", ErrInvalidInput, MinSize, len(items))
	}
	for i, it := range items {
		if it.Value < 1 {
			return fmt.Errorf("%w: item %d has value %d", ErrInvalidInput, i+1, it.Value)
		}
	}
	return nil
}

// base carries what every machine shares: the board it sorts, the queue of
// events produced by the last transition and the completion flag.
type base struct {
	kind    Algorithm
	n       int
	board   *Board
	pending []StepEvent
	done    bool
}

func newBase(kind Algorithm, items []Item) *base {
	return &base{kind: kind, n: len(items), board: NewBoard(items)}
}

func (b *base) Algorithm() Algorithm { return b.kind }

func (b *base) Board() *Board { return b.board.Clone() }

func (b *base) IsComplete() bool {
	return b.done && len(b.pending) == 0
}

func (b *base) emit(ev StepEvent) {
	b.pending = append(b.pending, ev)
}

func (b *base) value(slot int) int {
	return b.board.At(slot).Value
}

// pull delivers the oldest pending event, running advance first when the
// queue is empty.
func (b *base) pull(advance func()) (StepEvent, bool) {
	if len(b.pending) == 0 {
		if b.done {
			return StepEvent{}, false
		}
		advance()
		if len(b.pending) == 0 {
			return StepEvent{}, false
		}
	}
	ev := b.pending[0]
	b.pending = b.pending[1:]
	if err := b.board.Apply(ev); err != nil {
		// Machines only emit slots inside their own board.
		panic(fmt.Sprintf("sortlab: %s emitted %v: %v", b.kind, ev, err))
	}
	return ev, true
}
