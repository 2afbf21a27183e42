// sort_insertion.go - Insertion sort step sequence

/*
SortScope - watch and hear five sorting algorithms at work

(c) 2025 - 2026 Zayn Otley
https://github.com/IntuitionAmiga/SortScope
License: GPLv3 or later
*/

package main

import "iter"

// insertionSteps walks each key leftward one shift at a time, marking and
// sounding the shifting pair, until the left neighbor no longer exceeds it.
// Shifts are expressed as swaps so the key's marks travel with it.
func insertionSteps(arr *SortArray) iter.Seq[SortOp] {
	return func(yield func(SortOp) bool) {
		n := arr.Size()
		for i := 1; i < n; i++ {
			for j := i; j > 0; j-- {
				arr.Mark(j-1, COLOR_COMPARE)
				arr.Mark(j, COLOR_COMPARE)
				arr.PlayIndex(j - 1)
				arr.PlayIndex(j)
				if !yield(SortOp{Kind: OP_COMPARE, A: j - 1, B: j}) {
					return
				}
				placed := arr.Value(j-1) <= arr.Value(j)
				if !placed {
					arr.Swap(j-1, j)
					if !yield(SortOp{Kind: OP_SWAP, A: j - 1, B: j}) {
						return
					}
				}
				arr.Unmark(j)
				arr.Unmark(j - 1)
				if placed {
					break
				}
			}
		}
	}
}
