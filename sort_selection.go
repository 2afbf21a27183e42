// sort_selection.go - Selection sort step sequence

/*
SortScope - watch and hear five sorting algorithms at work

(c) 2025 - 2026 Zayn Otley
https://github.com/IntuitionAmiga/SortScope
License: GPLv3 or later
*/

package main

import "iter"

// selectionSteps scans each suffix for its minimum, keeping the running
// candidate highlighted and sounding every comparison, then swaps the found
// minimum into place.
func selectionSteps(arr *SortArray) iter.Seq[SortOp] {
	return func(yield func(SortOp) bool) {
		n := arr.Size()
		for i := 0; i < n-1; i++ {
			minIdx := i
			arr.Mark(minIdx, COLOR_TRACK)
			for j := i + 1; j < n; j++ {
				arr.Mark(j, COLOR_COMPARE)
				arr.PlayIndex(j)
				if !yield(SortOp{Kind: OP_COMPARE, A: minIdx, B: j}) {
					return
				}
				arr.Unmark(j)
				if arr.Value(j) < arr.Value(minIdx) {
					arr.Unmark(minIdx)
					minIdx = j
					arr.Mark(minIdx, COLOR_TRACK)
				}
			}
			arr.Unmark(minIdx)
			if minIdx != i {
				arr.Swap(i, minIdx)
				if !yield(SortOp{Kind: OP_SWAP, A: i, B: minIdx}) {
					return
				}
			}
		}
	}
}
