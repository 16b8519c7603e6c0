// Package sortlab implements the sorting algorithms behind xsortlab as
// step-machines.
//
// # Overview
//
// Each algorithm is an explicit state object rather than a loop. A caller
// pulls one visible step at a time with NextStep and may stop, inspect the
// board and resume whenever it likes. This is what lets the UI single-step a
// sort or play it back at any speed.
//
// # Slots
//
// Every StepEvent addresses board slots by number:
//
//	0          temp register (insertion and quick sort)
//	1..N       the live array
//	N+1..2N    merge sort's scratch buffer
//
// A move copies the item from its first slot to its second and leaves the
// source Empty. The merge copy-back is the one move that lists all live
// slots; it is flagged with FromScratch.
//
// # Invariants
//
//   - The multiset of values on the board (live, temp and scratch) never
//     changes during a run.
//   - A compare that causes a swap or move is delivered immediately before
//     it.
//   - After the final finish event, IsComplete is true and NextStep returns
//     false forever.
//
// # Machines
//
//   - Bubble: adjacent compare/swap, pass boundary j shrinks from N to 2
//   - Selection: running-maximum scan of 2..j, then swap into j
//   - Insertion: lift into temp, shift larger items up, drop into the gap
//   - Merge: bottom-up, run length doubles, ties leave from the left run
//   - Quick: explicit range stack, pivot lifted into temp, two-pointer collapse
//
// Machines read the board they own and apply each event to it as it is
// delivered. Callers that keep their own copy of the array apply the same
// events with Board.Apply.
package sortlab
