package sortlab

import "fmt"

type mergeStage int

const (
	mergeMerging mergeStage = iota
	mergeCopied
)

// mergeSort is a bottom-up merge. Each phase merges adjacent runs of length
// `length` into scratch slots N+1..2N, left to right, then copies scratch
// back over the live slots. The run length doubles every phase.
type mergeSort struct {
	*base
	stage  mergeStage
	phase  int
	length int
	// i..ei is the left run, j..ej the right run, k the next scratch slot.
	i, ei int
	j, ej int
	k     int
}

func newMergeSort(b *base) *mergeSort {
	m := &mergeSort{base: b, stage: mergeMerging, phase: 1, length: 1, k: b.n + 1}
	m.startPair(1)
	return m
}

func (m *mergeSort) startPair(start int) {
	m.i = start
	m.ei = min(start+m.length-1, m.n)
	m.j = m.ei + 1
	m.ej = min(start+2*m.length-1, m.n)
}

func (m *mergeSort) InitialNarration() string {
	return "Phase 1: Merge lists of length 1 into lists of length 2. First, merge item 1 with item 2."
}

func (m *mergeSort) NextStep() (StepEvent, bool) {
	return m.pull(m.advance)
}

func (m *mergeSort) advance() {
	if m.stage == mergeCopied {
		if 2*m.length >= m.n {
			m.emit(StepEvent{Kind: KindFinish, Items: span(1, m.n), Message: "The sort is finished."})
			m.done = true
			return
		}
		m.length *= 2
		m.phase++
		m.k = m.n + 1
		m.startPair(1)
		m.stage = mergeMerging
		m.emit(StepEvent{
			Kind:  KindHighlight,
			Items: span(m.i, m.ej),
			Message: fmt.Sprintf("Phase %d: Merge lists of length %d into lists of length %d. First, %s.",
				m.phase, m.length, 2*m.length, m.pairNarration()),
		})
		return
	}

	leftDone, rightDone := m.i > m.ei, m.j > m.ej
	switch {
	case leftDone && rightDone:
		if m.k == 2*m.n+1 {
			m.emit(StepEvent{Kind: KindMove, Items: span(1, m.n), FromScratch: true, Message: "Copy merged items back to original list."})
			m.stage = mergeCopied
			return
		}
		m.startPair(m.ej + 1)
		narration := m.pairNarration()
		m.emit(StepEvent{Kind: KindHighlight, Items: span(m.i, m.ej), Message: "Next, " + narration})

	case leftDone:
		m.emit(StepEvent{Kind: KindMove, Items: []int{m.j, m.k}, Message: fmt.Sprintf("List 1 is empty; move item %d to the merged list.", m.j)})
		m.j++
		m.k++

	case rightDone:
		m.emit(StepEvent{Kind: KindMove, Items: []int{m.i, m.k}, Message: fmt.Sprintf("List 2 is empty; move item %d to the merged list.", m.i)})
		m.i++
		m.k++

	default:
		// Strict comparison: equal items leave from the left run first.
		if m.value(m.i) > m.value(m.j) {
			m.emit(StepEvent{Kind: KindCompare, Items: []int{m.i, m.j}, Message: fmt.Sprintf("Is item %d smaller than item %d? Yes, so move item %d to merged list", m.j, m.i, m.j)})
			m.emit(StepEvent{Kind: KindMove, Items: []int{m.j, m.k}})
			m.j++
		} else {
			m.emit(StepEvent{Kind: KindCompare, Items: []int{m.i, m.j}, Message: fmt.Sprintf("Is item %d smaller than item %d? No, so move item %d to merged list", m.j, m.i, m.i)})
			m.emit(StepEvent{Kind: KindMove, Items: []int{m.i, m.k}})
			m.i++
		}
		m.k++
	}
}

func (m *mergeSort) pairNarration() string {
	switch {
	case m.j > m.ej && m.i == m.ei:
		return fmt.Sprintf("item %d has no partner; move it to the merged list", m.i)
	case m.j > m.ej:
		return fmt.Sprintf("items %d through %d have no partner; move them to the merged list", m.i, m.ei)
	case m.length == 1:
		return fmt.Sprintf("merge item %d with item %d", m.i, m.j)
	default:
		return fmt.Sprintf("merge items %d through %d with items %d through %d", m.i, m.ei, m.j, m.ej)
	}
}
