// marks_test.go - Mark stack store semantics

/*
SortScope - watch and hear five sorting algorithms at work

(c) 2025 - 2026 Zayn Otley
https://github.com/IntuitionAmiga/SortScope
License: GPLv3 or later
*/

package main

import "testing"

// displayRecorder captures every display callback so tests can assert that
// the shown color always follows the stack top.
type displayRecorder struct {
	colors map[int]BarColor
	calls  int
}

func newDisplayRecorder() *displayRecorder {
	return &displayRecorder{colors: make(map[int]BarColor)}
}

func (dr *displayRecorder) set(index int, color BarColor) {
	dr.colors[index] = color
	dr.calls++
}

func (dr *displayRecorder) at(index int) BarColor {
	if c, ok := dr.colors[index]; ok {
		return c
	}
	return COLOR_NEUTRAL
}

func TestMarkStore_DisplayFollowsTop(t *testing.T) {
	rec := newDisplayRecorder()
	ms := NewMarkStore(8, rec.set)

	ms.Mark(3, COLOR_COMPARE)
	if got := rec.at(3); got != COLOR_COMPARE {
		t.Fatalf("after first mark, display = %d, want COLOR_COMPARE", got)
	}
	ms.Mark(3, COLOR_PIVOT)
	if got := rec.at(3); got != COLOR_PIVOT {
		t.Fatalf("nested mark should display the new top, got %d", got)
	}
	ms.Unmark(3)
	if got := rec.at(3); got != COLOR_COMPARE {
		t.Fatalf("unmark should reveal the previous mark, got %d", got)
	}
	ms.Unmark(3)
	if got := rec.at(3); got != COLOR_NEUTRAL {
		t.Fatalf("empty stack should display neutral, got %d", got)
	}
	if ms.MarkedCount() != 0 {
		t.Fatalf("store should be empty, %d indices still marked", ms.MarkedCount())
	}
}

func TestMarkStore_UnmarkAbsentIsNoOp(t *testing.T) {
	ms := NewMarkStore(4, nil)
	ms.Unmark(2) // never marked: normal occurrence, not an error
	ms.Unmark(-1)
	ms.Unmark(99)
	if ms.MarkedCount() != 0 {
		t.Fatalf("no-op unmarks must not create stacks")
	}
}

func TestMarkStore_OutOfRangeNoOps(t *testing.T) {
	rec := newDisplayRecorder()
	ms := NewMarkStore(4, rec.set)
	ms.Mark(-1, COLOR_COMPARE)
	ms.Mark(4, COLOR_COMPARE)
	ms.TransferOnSwap(-1, 2)
	ms.TransferOnSwap(1, 17)
	if ms.MarkedCount() != 0 || rec.calls != 0 {
		t.Fatalf("out-of-range operations must be silent no-ops")
	}
}

func TestMarkStore_UnmarkColorPreservesOrder(t *testing.T) {
	rec := newDisplayRecorder()
	ms := NewMarkStore(8, rec.set)

	// Stack at index 3: [compare, track, compare] bottom to top.
	ms.Mark(3, COLOR_COMPARE)
	ms.Mark(3, COLOR_TRACK)
	ms.Mark(3, COLOR_COMPARE)

	ms.UnmarkColor(COLOR_COMPARE)

	if got := rec.at(3); got != COLOR_TRACK {
		t.Fatalf("after removing every compare mark, display = %d, want COLOR_TRACK", got)
	}
	ms.Unmark(3)
	if got := rec.at(3); got != COLOR_NEUTRAL {
		t.Fatalf("only one mark should have remained, display = %d, want neutral", got)
	}
}

func TestMarkStore_UnmarkColorEmptiesStacks(t *testing.T) {
	rec := newDisplayRecorder()
	ms := NewMarkStore(8, rec.set)
	ms.Mark(1, COLOR_VERIFIED)
	ms.Mark(5, COLOR_VERIFIED)
	ms.Mark(5, COLOR_VERIFIED)

	ms.UnmarkColor(COLOR_VERIFIED)

	if ms.MarkedCount() != 0 {
		t.Fatalf("all stacks should be gone, %d remain", ms.MarkedCount())
	}
	for _, idx := range []int{1, 5} {
		if got := rec.at(idx); got != COLOR_NEUTRAL {
			t.Fatalf("index %d should display neutral, got %d", idx, got)
		}
	}
}

func TestMarkStore_UnmarkAll(t *testing.T) {
	rec := newDisplayRecorder()
	ms := NewMarkStore(8, rec.set)
	for i := 0; i < 5; i++ {
		ms.Mark(i, COLOR_COMPARE)
	}
	ms.UnmarkAll()
	if ms.MarkedCount() != 0 {
		t.Fatalf("UnmarkAll left %d stacks", ms.MarkedCount())
	}
	for i := 0; i < 5; i++ {
		if got := rec.at(i); got != COLOR_NEUTRAL {
			t.Fatalf("index %d not reverted to neutral", i)
		}
	}
}

func TestMarkStore_SwapTransfersMarks(t *testing.T) {
	rec := newDisplayRecorder()
	marks := NewMarkStore(8, rec.set)
	arr := NewSortArray([]int{1, 2, 3, 4, 5, 6, 7, 8}, marks, nil)

	marks.Mark(2, COLOR_TRACK)
	arr.Swap(2, 5)

	if got := rec.at(5); got != COLOR_TRACK {
		t.Fatalf("mark should follow the value to index 5, display = %d", got)
	}
	if got := rec.at(2); got != COLOR_NEUTRAL {
		t.Fatalf("index 2 had no prior mark, display = %d, want neutral", got)
	}
	if arr.Value(5) != 3 || arr.Value(2) != 6 {
		t.Fatalf("swap did not exchange values: got %v", arr.Values())
	}
}

func TestMarkStore_SwapExchangesBothStacks(t *testing.T) {
	rec := newDisplayRecorder()
	ms := NewMarkStore(8, rec.set)
	ms.Mark(0, COLOR_COMPARE)
	ms.Mark(1, COLOR_PIVOT)
	ms.Mark(1, COLOR_TRACK)

	ms.TransferOnSwap(0, 1)

	if got := rec.at(0); got != COLOR_TRACK {
		t.Fatalf("index 0 should now show the transferred top, got %d", got)
	}
	if got := rec.at(1); got != COLOR_COMPARE {
		t.Fatalf("index 1 should now show the transferred top, got %d", got)
	}
	ms.Unmark(0)
	if got := rec.at(0); got != COLOR_PIVOT {
		t.Fatalf("transferred stack order lost: got %d, want COLOR_PIVOT", got)
	}
}
