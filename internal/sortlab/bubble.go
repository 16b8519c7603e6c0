package sortlab

import "fmt"

// bubbleSort compares slot i with i+1 for i in 1..j-1, then shrinks the
// pass boundary j by one. The pass for j = 2 is the last.
type bubbleSort struct {
	*base
	i, j int
}

func newBubbleSort(b *base) *bubbleSort {
	return &bubbleSort{base: b, i: 1, j: b.n}
}

func (m *bubbleSort) InitialNarration() string {
	return fmt.Sprintf("Phase 1: largest item \"bubbles\" up to position %d", m.n)
}

func (m *bubbleSort) NextStep() (StepEvent, bool) {
	return m.pull(m.advance)
}

func (m *bubbleSort) advance() {
	if m.i == m.j {
		if m.j == 2 {
			m.emit(StepEvent{Kind: KindFinish, Items: []int{1}, Message: "The sort is finished."})
			m.done = true
			return
		}
		m.j--
		m.i = 1
		m.emit(StepEvent{
			Kind:    KindHighlight,
			Items:   []int{},
			Message: fmt.Sprintf("Phase %d: next largest item bubbles up to position %d", m.n+1-m.j, m.j),
		})
		return
	}

	i := m.i
	pair := []int{i, i + 1}
	if m.value(i) > m.value(i+1) {
		m.emit(StepEvent{Kind: KindCompare, Items: pair, Message: fmt.Sprintf("Is item %d bigger than item %d? Yes, so swap them.", i, i+1)})
		m.emit(StepEvent{Kind: KindSwap, Items: []int{i, i + 1}})
	} else {
		m.emit(StepEvent{Kind: KindCompare, Items: pair, Message: fmt.Sprintf("Is item %d bigger than item %d? No, so don't swap them.", i, i+1)})
	}

	m.i++
	if m.i == m.j {
		m.emit(StepEvent{Kind: KindFinish, Items: []int{m.j}})
	}
}
