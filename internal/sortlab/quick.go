package sortlab

import "fmt"

type quickStage int

const (
	quickPivot quickStage = iota
	quickPartition
	quickPlaced
	quickPop
)

type quickRange struct {
	lo, hi int
}

// quickSort partitions without recursion. Pending ranges live on an explicit
// stack; only ranges holding two or more items are ever pushed.
//
// Partitioning lifts slot lo into temp and collapses lo and hi toward each
// other. Whichever end is empty is the hole: the item at the other end is
// compared with temp and either moved into the hole or left in place. On a
// tie the item stays put and its pointer advances.
type quickSort struct {
	*base
	stage quickStage
	stack []quickRange
	// lo and hi are the collapsing pointers; first and last bound the range
	// being partitioned.
	lo, hi      int
	first, last int
}

func newQuickSort(b *base) *quickSort {
	return &quickSort{base: b, stage: quickPivot, lo: 1, hi: b.n, first: 1, last: b.n}
}

func (m *quickSort) InitialNarration() string {
	return fmt.Sprintf("Apply \"QuickSortStep\" to items 1 through %d. The range of possible final positions for item 1 is boxed.", m.n)
}

func (m *quickSort) NextStep() (StepEvent, bool) {
	return m.pull(m.advance)
}

func (m *quickSort) advance() {
	switch m.stage {
	case quickPop:
		if len(m.stack) == 0 {
			m.emit(StepEvent{Kind: KindFinish, Items: []int{}, Message: "The sort is finished."})
			m.done = true
			return
		}
		top := m.stack[len(m.stack)-1]
		m.stack = m.stack[:len(m.stack)-1]
		m.lo, m.hi = top.lo, top.hi
		m.first, m.last = top.lo, top.hi
		m.stage = quickPivot
		m.emit(StepEvent{
			Kind:    KindHighlight,
			Items:   span(m.lo, m.hi),
			Message: fmt.Sprintf("Apply \"QuickSortStep\" to items %d through %d. The range of possible final positions for item %d is boxed", m.lo, m.hi, m.lo),
		})

	case quickPivot:
		m.emit(StepEvent{Kind: KindMove, Items: []int{m.lo, TempSlot}, Message: fmt.Sprintf("Copy item %d to Temp", m.lo)})
		m.stage = quickPartition

	case quickPartition:
		m.partitionStep()

	case quickPlaced:
		m.place()
	}
}

func (m *quickSort) partitionStep() {
	lo, hi := m.lo, m.hi
	if lo == hi {
		m.emit(StepEvent{Kind: KindMove, Items: []int{TempSlot, hi}, Message: fmt.Sprintf("Only one possible position left for Temp; copy Temp to position %d", hi)})
		m.stage = quickPlaced
		return
	}

	temp := m.value(TempSlot)
	if m.board.At(lo).IsEmpty() {
		if temp > m.value(hi) {
			m.emit(StepEvent{Kind: KindCompare, Items: []int{hi, TempSlot}, Message: fmt.Sprintf("Item %d is smaller than Temp, so move it; Temp will end up above it", hi)})
			m.emit(StepEvent{Kind: KindMove, Items: []int{hi, lo}})
			m.lo++
		} else {
			m.emit(StepEvent{Kind: KindCompare, Items: []int{TempSlot, hi}, Message: fmt.Sprintf("Item %d is bigger than Temp, so Temp will end up below it", hi)})
			m.hi--
		}
		return
	}

	if m.value(lo) > temp {
		m.emit(StepEvent{Kind: KindCompare, Items: []int{lo, TempSlot}, Message: fmt.Sprintf("Item %d is bigger than Temp, so move it; Temp will end up below it", lo)})
		m.emit(StepEvent{Kind: KindMove, Items: []int{lo, hi}})
		m.hi--
	} else {
		m.emit(StepEvent{Kind: KindCompare, Items: []int{lo, TempSlot}, Message: fmt.Sprintf("Item %d is smaller than Temp, so Temp will end up above it", lo)})
		m.lo++
	}
}

// place finishes the pivot slot and pushes the sub-ranges on either side.
// Single-item sub-ranges are already final and are finished with the pivot.
func (m *quickSort) place() {
	p := m.hi
	finished := []int{p}

	upper := quickRange{lo: p + 1, hi: m.last}
	lower := quickRange{lo: m.first, hi: p - 1}
	for _, r := range []quickRange{upper, lower} {
		switch size := r.hi - r.lo + 1; {
		case size > 1:
			m.stack = append(m.stack, r)
		case size == 1:
			finished = append(finished, r.lo)
		}
	}

	m.emit(StepEvent{Kind: KindFinish, Items: finished, Message: fmt.Sprintf("Item %d is in final position; smaller items below and bigger items above", p)})
	m.stage = quickPop
}
