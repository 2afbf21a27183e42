// marks.go - Per-index color mark stacks for algorithm state display

/*
SortScope - watch and hear five sorting algorithms at work

(c) 2025 - 2026 Zayn Otley
https://github.com/IntuitionAmiga/SortScope
License: GPLv3 or later
*/

package main

// BarColor names one entry of the bar palette. Marks carry BarColor values;
// the video layer decides what each one looks like.
type BarColor uint8

const (
	COLOR_NEUTRAL  BarColor = iota // Unmarked bar
	COLOR_COMPARE                  // Pair under comparison
	COLOR_TRACK                    // Running candidate (selection minimum)
	COLOR_PIVOT                    // Partition pivot
	COLOR_VERIFIED                 // Confirmed in order by the final sweep
)

// MarkStore keeps one stack of colors per marked index, so nested highlights
// (partition range + pivot, say) never clobber each other. The displayed
// color of an index is the top of its stack, or COLOR_NEUTRAL when the index
// has no stack. Every top change is pushed to the display callback.
//
// Owned exclusively by the stepping lane; no locking.
type MarkStore struct {
	size    int
	stacks  map[int][]BarColor
	display func(index int, color BarColor)
}

// NewMarkStore creates a store for indices [0, size). display may be nil.
func NewMarkStore(size int, display func(index int, color BarColor)) *MarkStore {
	return &MarkStore{
		size:    size,
		stacks:  make(map[int][]BarColor),
		display: display,
	}
}

func (ms *MarkStore) inRange(index int) bool {
	return index >= 0 && index < ms.size
}

func (ms *MarkStore) redisplay(index int) {
	if ms.display == nil {
		return
	}
	ms.display(index, ms.Top(index))
}

// Top returns the displayed color for an index: the top of its stack, or
// COLOR_NEUTRAL if it has none.
func (ms *MarkStore) Top(index int) BarColor {
	if stack, ok := ms.stacks[index]; ok {
		return stack[len(stack)-1]
	}
	return COLOR_NEUTRAL
}

// Mark pushes a color onto the index's stack and displays it immediately.
// Out-of-range indices are ignored.
func (ms *MarkStore) Mark(index int, color BarColor) {
	if !ms.inRange(index) {
		return
	}
	ms.stacks[index] = append(ms.stacks[index], color)
	ms.redisplay(index)
}

// Unmark pops the index's stack, displaying the new top or reverting to
// neutral when the stack empties. Unmarking an index with no stack is a
// normal no-op, not an error.
func (ms *MarkStore) Unmark(index int) {
	stack, ok := ms.stacks[index]
	if !ok {
		return
	}
	stack = stack[:len(stack)-1]
	if len(stack) == 0 {
		delete(ms.stacks, index)
	} else {
		ms.stacks[index] = stack
	}
	ms.redisplay(index)
}

// UnmarkColor removes every occurrence of a color from every stack, keeping
// the relative order of what remains. Each affected stack is rebuilt once.
func (ms *MarkStore) UnmarkColor(color BarColor) {
	for index, stack := range ms.stacks {
		kept := make([]BarColor, 0, len(stack))
		for _, c := range stack {
			if c != color {
				kept = append(kept, c)
			}
		}
		if len(kept) == len(stack) {
			continue
		}
		if len(kept) == 0 {
			delete(ms.stacks, index)
		} else {
			ms.stacks[index] = kept
		}
		ms.redisplay(index)
	}
}

// UnmarkAll clears every stack and reverts every previously marked index to
// neutral. Indices that were never marked are untouched.
func (ms *MarkStore) UnmarkAll() {
	for index := range ms.stacks {
		delete(ms.stacks, index)
		ms.redisplay(index)
	}
}

// TransferOnSwap exchanges the stacks held at a and b, then redisplays both.
// Marks belong to values, not positions, so this must run as part of every
// value swap. Either side holding no stack is valid state.
func (ms *MarkStore) TransferOnSwap(a, b int) {
	if !ms.inRange(a) || !ms.inRange(b) || a == b {
		return
	}
	sa, okA := ms.stacks[a]
	sb, okB := ms.stacks[b]
	if okB {
		ms.stacks[a] = sb
	} else {
		delete(ms.stacks, a)
	}
	if okA {
		ms.stacks[b] = sa
	} else {
		delete(ms.stacks, b)
	}
	ms.redisplay(a)
	ms.redisplay(b)
}

// MarkedCount returns how many indices currently hold a non-empty stack.
func (ms *MarkStore) MarkedCount() int {
	return len(ms.stacks)
}
