package sortlab

import "fmt"

type selectionStage int

const (
	selectionScan selectionStage = iota
	selectionPlace
	selectionNextPhase
)

// selectionSort scans slots 2..j for the running maximum, then moves it to
// slot j. Target slot j runs from N down to 2.
type selectionSort struct {
	*base
	stage  selectionStage
	i, j   int
	maxLoc int
}

func newSelectionSort(b *base) *selectionSort {
	return &selectionSort{base: b, stage: selectionScan, i: 2, j: b.n, maxLoc: 1}
}

func (m *selectionSort) InitialNarration() string {
	return fmt.Sprintf("Phase 1: Find the largest item and swap it with item %d. Item 1 is the largest item seen so far during this phase", m.n)
}

func (m *selectionSort) NextStep() (StepEvent, bool) {
	return m.pull(m.advance)
}

func (m *selectionSort) advance() {
	if m.j == 1 {
		m.emit(StepEvent{Kind: KindFinish, Items: []int{1}, Message: "The sort is finished."})
		m.done = true
		return
	}

	switch m.stage {
	case selectionNextPhase:
		m.i = 2
		m.maxLoc = 1
		m.stage = selectionScan
		m.emit(StepEvent{
			Kind:    KindHighlight,
			Items:   []int{1},
			Message: fmt.Sprintf("Phase %d: Find the next largest item and move it to position %d. Item 1 is the largest item seen so far during this phase", m.n+1-m.j, m.j),
		})

	case selectionScan:
		i, prev := m.i, m.maxLoc
		if m.value(i) > m.value(prev) {
			m.maxLoc = i
			m.emit(StepEvent{Kind: KindCompare, Items: []int{i, prev}, Message: fmt.Sprintf("Item %d is bigger than item %d, so item %d is now the max seen.", i, prev, i)})
		} else {
			m.emit(StepEvent{Kind: KindCompare, Items: []int{i, prev}, Message: fmt.Sprintf("Item %d is smaller than item %d, so item %d is still the max seen.", i, prev, prev)})
		}
		m.i++
		if m.i > m.j {
			m.stage = selectionPlace
		}

	case selectionPlace:
		j := m.j
		if m.maxLoc == j {
			m.emit(StepEvent{Kind: KindHighlight, Items: []int{j}, Message: fmt.Sprintf("Item %d is already in its correct location.", j)})
		} else {
			msg := fmt.Sprintf("Swap item %d with maximum among items 1 through %d", j, j-1)
			if j == 2 {
				msg = "Swap item 2 with item 1"
			}
			m.emit(StepEvent{Kind: KindSwap, Items: []int{m.maxLoc, j}, Message: msg})
		}
		m.emit(StepEvent{Kind: KindFinish, Items: []int{j}})
		m.j--
		m.stage = selectionNextPhase
	}
}
