package sortlab

import (
	"fmt"
	"slices"
)

// Empty is the value of a slot whose item has been copied elsewhere and not
// yet replaced.
const Empty = -1

// TempSlot is the slot number of the out-of-band temp register.
const TempSlot = 0

// Item is a single bar in the visualization.
type Item struct {
	Value int
	// Position is the slot the item held when the run began. It travels with
	// the item, so two items with equal values can still be told apart.
	Position      int
	IsFinished    bool
	IsMoving      bool
	IsHighlighted bool
}

// IsEmpty reports whether the item marks a vacated slot.
func (it Item) IsEmpty() bool {
	return it.Value == Empty
}

func emptyItem() Item {
	return Item{Value: Empty, Position: -1}
}

// Board holds the live items plus the temp register and the merge scratch
// buffer. Slots are numbered the way StepEvents address them: 0 is temp,
// 1..N are the live items and N+1..2N are scratch.
type Board struct {
	items   []Item
	temp    Item
	scratch []Item
}

// NewBoard copies items into a fresh board with an empty temp register and
// scratch buffer.
func NewBoard(items []Item) *Board {
	b := &Board{
		items:   slices.Clone(items),
		temp:    emptyItem(),
		scratch: make([]Item, len(items)),
	}
	for i := range b.scratch {
		b.scratch[i] = emptyItem()
	}
	return b
}

// Len returns N, the number of live slots.
func (b *Board) Len() int {
	return len(b.items)
}

// Items returns a copy of the live slots in order.
func (b *Board) Items() []Item {
	return slices.Clone(b.items)
}

// Temp returns the item held in the temp register, if any.
func (b *Board) Temp() (Item, bool) {
	return b.temp, !b.temp.IsEmpty()
}

// Values returns the live values in slot order, Empty included.
func (b *Board) Values() []int {
	out := make([]int, len(b.items))
	for i, it := range b.items {
		out[i] = it.Value
	}
	return out
}

// Held returns every non-empty value on the board, across live slots, temp
// and scratch, sorted ascending.
func (b *Board) Held() []int {
	out := make([]int, 0, len(b.items)+1)
	for _, it := range b.items {
		if !it.IsEmpty() {
			out = append(out, it.Value)
		}
	}
	if !b.temp.IsEmpty() {
		out = append(out, b.temp.Value)
	}
	for _, it := range b.scratch {
		if !it.IsEmpty() {
			out = append(out, it.Value)
		}
	}
	slices.Sort(out)
	return out
}

// Clone returns an independent copy of the board.
func (b *Board) Clone() *Board {
	return &Board{
		items:   slices.Clone(b.items),
		temp:    b.temp,
		scratch: slices.Clone(b.scratch),
	}
}

// At returns the item in slot.
func (b *Board) At(slot int) Item {
	p, err := b.slot(slot)
	if err != nil {
		return emptyItem()
	}
	return *p
}

func (b *Board) slot(slot int) (*Item, error) {
	n := len(b.items)
	switch {
	case slot == TempSlot:
		return &b.temp, nil
	case slot >= 1 && slot <= n:
		return &b.items[slot-1], nil
	case slot > n && slot <= 2*n:
		return &b.scratch[slot-n-1], nil
	default:
		return nil, fmt.Errorf("%w: slot %d outside 0..%d", ErrInvalidStep, slot, 2*n)
	}
}

func (b *Board) live(slot int) bool {
	return slot >= 1 && slot <= len(b.items)
}

// Apply performs the positional effect of ev. Compares and highlights only
// change display flags; moves and swaps relocate items.
func (b *Board) Apply(ev StepEvent) error {
	for i := range b.items {
		b.items[i].IsMoving = false
	}

	switch ev.Kind {
	case KindCompare:
		for _, s := range ev.Items {
			if _, err := b.slot(s); err != nil {
				return err
			}
			if b.live(s) {
				b.items[s-1].IsMoving = true
			}
		}
	case KindSwap:
		if len(ev.Items) != 2 {
			return fmt.Errorf("%w: swap needs 2 slots, got %d", ErrInvalidStep, len(ev.Items))
		}
		a, err := b.slot(ev.Items[0])
		if err != nil {
			return err
		}
		c, err := b.slot(ev.Items[1])
		if err != nil {
			return err
		}
		av, cv := *a, *c
		place(a, cv)
		place(c, av)
		a.IsMoving, c.IsMoving = true, true
	case KindMove:
		if ev.FromScratch {
			return b.copyBack(ev.Items)
		}
		if len(ev.Items) != 2 {
			return fmt.Errorf("%w: move needs 2 slots, got %d", ErrInvalidStep, len(ev.Items))
		}
		from, err := b.slot(ev.Items[0])
		if err != nil {
			return err
		}
		to, err := b.slot(ev.Items[1])
		if err != nil {
			return err
		}
		moved := *from
		place(from, emptyItem())
		place(to, moved)
		to.IsMoving = b.live(ev.Items[1])
	case KindHighlight:
		for i := range b.items {
			b.items[i].IsHighlighted = false
		}
		for _, s := range ev.Items {
			if !b.live(s) {
				return fmt.Errorf("%w: highlight slot %d", ErrInvalidStep, s)
			}
			b.items[s-1].IsHighlighted = true
		}
	case KindFinish:
		for _, s := range ev.Items {
			if !b.live(s) {
				return fmt.Errorf("%w: finish slot %d", ErrInvalidStep, s)
			}
			b.items[s-1].IsFinished = true
		}
	default:
		return fmt.Errorf("%w: kind %q", ErrInvalidStep, ev.Kind)
	}
	return nil
}

func (b *Board) copyBack(slots []int) error {
	for _, s := range slots {
		if !b.live(s) {
			return fmt.Errorf("%w: copy-back slot %d", ErrInvalidStep, s)
		}
		src := &b.scratch[s-1]
		if src.IsEmpty() {
			continue
		}
		place(&b.items[s-1], *src)
		*src = emptyItem()
	}
	return nil
}

// place stores src's identity in dst. Finished and highlighted marks belong
// to the slot, not the item, so they stay put.
func place(dst *Item, src Item) {
	dst.Value = src.Value
	dst.Position = src.Position
}
