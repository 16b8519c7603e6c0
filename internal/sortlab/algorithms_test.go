package sortlab

import (
	"slices"
	"strings"
	"testing"
)

func TestBubble_ThreeItemScenario(t *testing.T) {
	m := mustNew(t, Bubble, FromValues(3, 1, 2))

	steps := []struct {
		kind   StepKind
		items  []int
		values []int
	}{
		{KindCompare, []int{1, 2}, []int{3, 1, 2}},
		{KindSwap, []int{1, 2}, []int{1, 3, 2}},
		{KindCompare, []int{2, 3}, []int{1, 3, 2}},
		{KindSwap, []int{2, 3}, []int{1, 2, 3}},
		{KindFinish, []int{3}, []int{1, 2, 3}},
	}
	compares, copies := 0, 0
	for i, want := range steps {
		ev, ok := m.NextStep()
		if !ok {
			t.Fatalf("step %d: machine finished early", i+1)
		}
		if ev.Kind != want.kind || !slices.Equal(ev.Items, want.items) {
			t.Fatalf("step %d = %v, want %s %v", i+1, ev, want.kind, want.items)
		}
		if got := m.Board().Values(); !slices.Equal(got, want.values) {
			t.Fatalf("step %d values = %v, want %v", i+1, got, want.values)
		}
		if ev.Kind == KindCompare {
			compares++
		}
		if ev.Mutates() {
			copies++
		}
	}
	if compares != 2 || copies != 2 {
		t.Fatalf("after first pass compares=%d copies=%d, want 2 and 2", compares, copies)
	}

	first, _ := mustNew(t, Bubble, FromValues(3, 1, 2)).NextStep()
	if !strings.Contains(first.Message, "Yes, so swap them") {
		t.Fatalf("first narration = %q, want a swap decision", first.Message)
	}

	ev, ok := m.NextStep()
	if !ok || ev.Kind != KindHighlight || !strings.HasPrefix(ev.Message, "Phase 2:") {
		t.Fatalf("after first pass got %v, want phase 2 highlight", ev)
	}

	rest := drain(t, m)
	if got := m.Board().Values(); !slices.Equal(got, []int{1, 2, 3}) {
		t.Fatalf("final values = %v", got)
	}
	// Phase 2 still compares slots 1 and 2; it swaps nothing.
	if n := countKind(rest, KindCompare); n != 1 {
		t.Fatalf("phase 2 compares = %d, want 1", n)
	}
	if n := countKind(rest, KindSwap); n != 0 {
		t.Fatalf("phase 2 swaps = %d, want 0", n)
	}
}

func TestBubble_ComparesEveryPair(t *testing.T) {
	events := drain(t, mustNew(t, Bubble, NewSeededGenerator(11).Generate(16)))
	if got := countKind(events, KindCompare); got != 16*15/2 {
		t.Fatalf("compares = %d, want %d", got, 16*15/2)
	}
}

func TestSelection_RunsNMinusOnePhases(t *testing.T) {
	for _, size := range []int{2, 5, 16} {
		events := drain(t, mustNew(t, Selection, NewSeededGenerator(5).Generate(size)))
		phases := 0
		for _, ev := range events {
			if ev.Kind == KindFinish && ev.Message == "" {
				phases++
			}
		}
		if phases != size-1 {
			t.Fatalf("n=%d phases = %d, want %d", size, phases, size-1)
		}
		if got := countKind(events, KindCompare); got != size*(size-1)/2 {
			t.Fatalf("n=%d compares = %d, want %d", size, got, size*(size-1)/2)
		}
	}
}

func TestSelection_MarksItemAlreadyInPlace(t *testing.T) {
	m := mustNew(t, Selection, FromValues(1, 2))
	events := drain(t, m)
	found := false
	for _, ev := range events {
		if ev.Kind == KindSwap {
			t.Fatalf("sorted input produced swap %v", ev)
		}
		if ev.Message == "Item 2 is already in its correct location." {
			found = true
		}
	}
	if !found {
		t.Fatalf("no in-place narration in %v", events)
	}
}

func TestInsertion_UsesTempRegister(t *testing.T) {
	m := mustNew(t, Insertion, FromValues(2, 1, 3))

	ev, _ := m.NextStep()
	if ev.Kind != KindMove || !slices.Equal(ev.Items, []int{2, TempSlot}) {
		t.Fatalf("first step = %v, want move [2 temp]", ev)
	}
	temp, ok := m.Board().Temp()
	if !ok || temp.Value != 1 {
		t.Fatalf("temp = %+v (%v), want value 1", temp, ok)
	}
	if !m.Board().At(2).IsEmpty() {
		t.Fatalf("slot 2 = %+v, want empty", m.Board().At(2))
	}

	// 2 > 1: shift item 1 up, then temp is smaller than everything.
	want := []struct {
		kind  StepKind
		items []int
	}{
		{KindCompare, []int{1, TempSlot}},
		{KindMove, []int{1, 2}},
		{KindMove, []int{TempSlot, 1}},
		{KindHighlight, []int{1, 2}},
	}
	for i, w := range want {
		ev, _ := m.NextStep()
		if ev.Kind != w.kind || !slices.Equal(ev.Items, w.items) {
			t.Fatalf("step %d = %v, want %s %v", i+2, ev, w.kind, w.items)
		}
	}
	if got := m.Board().Values(); !slices.Equal(got, []int{1, 2, 3}) {
		t.Fatalf("values = %v, want [1 2 3]", got)
	}
}

func TestInsertion_SortedInputComparesOncePerPhase(t *testing.T) {
	events := drain(t, mustNew(t, Insertion, Sorted(16)))
	if got := countKind(events, KindCompare); got != 15 {
		t.Fatalf("compares = %d, want 15", got)
	}
}

func TestMerge_IsStable(t *testing.T) {
	inputs := [][]int{
		{2, 1, 2, 1, 3, 2, 1, 3},
		{1, 1, 1, 1, 1},
		{4, 3, 3, 1, 4, 2, 2, 1, 3, 4, 1, 2, 2, 3, 4, 1},
	}
	for _, values := range inputs {
		m := mustNew(t, Merge, FromValues(values...))
		drain(t, m)
		out := m.Board().Items()
		for i := 1; i < len(out); i++ {
			if out[i-1].Value > out[i].Value {
				t.Fatalf("input %v: output not sorted: %v", values, ValuesOf(out))
			}
			if out[i-1].Value == out[i].Value && out[i-1].Position > out[i].Position {
				t.Fatalf("input %v: equal values out of order at %d (positions %d, %d)",
					values, i, out[i-1].Position, out[i].Position)
			}
		}
	}
}

func TestMerge_UsesScratchAndCopiesBackOncePerPhase(t *testing.T) {
	m := mustNew(t, Merge, NewSeededGenerator(2).Generate(16))
	var copyBacks int
	for {
		ev, ok := m.NextStep()
		if !ok {
			break
		}
		if ev.Kind == KindMove && !ev.FromScratch && ev.Items[1] <= 16 {
			t.Fatalf("merge move %v does not target scratch", ev)
		}
		if ev.FromScratch {
			copyBacks++
			if !slices.Equal(ev.Items, oneToN(16)) {
				t.Fatalf("copy-back covers %v, want all 16 slots", ev.Items)
			}
		}
	}
	// Run lengths 1, 2, 4 and 8.
	if copyBacks != 4 {
		t.Fatalf("copy-backs = %d, want 4", copyBacks)
	}
}

func TestQuick_SortedInputIsWorstCase(t *testing.T) {
	items := Sorted(16)
	events := drain(t, mustNew(t, Quick, items))
	got := countKind(events, KindCompare)
	if got != 16*15/2 {
		t.Fatalf("compares = %d, want %d", got, 16*15/2)
	}
	if ref := referenceQuickComparisons(ValuesOf(items)); got != ref {
		t.Fatalf("compares = %d, reference = %d", got, ref)
	}
}

func TestQuick_MatchesReferenceComparisons(t *testing.T) {
	for seed := uint64(1); seed <= 25; seed++ {
		items := NewSeededGenerator(seed).Generate(16)
		events := drain(t, mustNew(t, Quick, items))
		got := countKind(events, KindCompare)
		if ref := referenceQuickComparisons(ValuesOf(items)); got != ref {
			t.Fatalf("seed %d: compares = %d, reference = %d", seed, got, ref)
		}
	}
}

func TestQuick_FinishesEverySlot(t *testing.T) {
	m := mustNew(t, Quick, NewSeededGenerator(9).Generate(16))
	drain(t, m)
	for i, it := range m.Board().Items() {
		if !it.IsFinished {
			t.Fatalf("slot %d not finished", i+1)
		}
	}
}

// referenceQuickComparisons runs the same hole-based partition recursively
// and counts comparisons against the pivot.
func referenceQuickComparisons(values []int) int {
	a := slices.Clone(values)
	count := 0
	var sortRange func(lo, hi int)
	sortRange = func(lo, hi int) {
		if hi <= lo {
			return
		}
		temp := a[lo]
		i, j := lo, hi
		holeLow := true
		for i < j {
			count++
			if holeLow {
				if temp > a[j] {
					a[i] = a[j]
					i++
					holeLow = false
				} else {
					j--
				}
			} else {
				if a[i] > temp {
					a[j] = a[i]
					j--
					holeLow = true
				} else {
					i++
				}
			}
		}
		a[i] = temp
		sortRange(lo, i-1)
		sortRange(i+1, hi)
	}
	sortRange(0, len(a)-1)
	return count
}
