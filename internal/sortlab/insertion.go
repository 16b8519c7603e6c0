package sortlab

import "fmt"

type insertionStage int

const (
	insertionPick insertionStage = iota
	insertionScan
	insertionSorted
)

// insertionSort lifts slot j into temp, shifts larger items up one slot
// while scanning down from j-1, then drops temp into the gap.
type insertionSort struct {
	*base
	stage insertionStage
	i, j  int
}

func newInsertionSort(b *base) *insertionSort {
	return &insertionSort{base: b, stage: insertionPick, j: 2}
}

func (m *insertionSort) InitialNarration() string {
	return "The sublist in the box -- just item 1 for now -- is correctly sorted"
}

func (m *insertionSort) NextStep() (StepEvent, bool) {
	return m.pull(m.advance)
}

func (m *insertionSort) advance() {
	switch m.stage {
	case insertionPick:
		if m.j > m.n {
			m.emit(StepEvent{Kind: KindFinish, Items: span(1, m.n), Message: "The sort is finished."})
			m.done = true
			return
		}
		j := m.j
		m.emit(StepEvent{
			Kind:    KindMove,
			Items:   []int{j, TempSlot},
			Message: fmt.Sprintf("Phase %d: Insert item %d into its correct position in the sorted list. Copy item %d to Temp.", j-1, j, j),
		})
		m.i = j - 1
		m.stage = insertionScan

	case insertionScan:
		i := m.i
		if i == 0 {
			m.emit(StepEvent{Kind: KindMove, Items: []int{TempSlot, 1}, Message: "Temp is smaller than all items in the sorted list; copy it to position 1."})
			m.stage = insertionSorted
			return
		}
		if m.value(i) > m.value(TempSlot) {
			m.emit(StepEvent{Kind: KindCompare, Items: []int{i, TempSlot}, Message: fmt.Sprintf("Is item %d bigger than Temp? Yes, so move it up to position %d", i, i+1)})
			m.emit(StepEvent{Kind: KindMove, Items: []int{i, i + 1}})
			m.i--
			return
		}
		m.emit(StepEvent{Kind: KindCompare, Items: []int{i, TempSlot}, Message: fmt.Sprintf("Is item %d bigger than Temp? No, so Temp belongs in position %d", i, i+1)})
		m.emit(StepEvent{Kind: KindMove, Items: []int{TempSlot, i + 1}})
		m.stage = insertionSorted

	case insertionSorted:
		m.emit(StepEvent{Kind: KindHighlight, Items: span(1, m.j), Message: fmt.Sprintf("Items 1 through %d now form a sorted list.", m.j)})
		m.j++
		m.stage = insertionPick
	}
}
