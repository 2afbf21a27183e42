// sort_bubble.go - Bubble sort step sequence

/*
SortScope - watch and hear five sorting algorithms at work

(c) 2025 - 2026 Zayn Otley
https://github.com/IntuitionAmiga/SortScope
License: GPLv3 or later
*/

package main

import "iter"

// bubbleSteps runs n-1 adjacent passes with a shrinking inner bound. Every
// compared pair is marked and sounded; out-of-order neighbors are swapped.
func bubbleSteps(arr *SortArray) iter.Seq[SortOp] {
	return func(yield func(SortOp) bool) {
		n := arr.Size()
		for i := 0; i < n-1; i++ {
			for j := 0; j < n-1-i; j++ {
				arr.Mark(j, COLOR_COMPARE)
				arr.Mark(j+1, COLOR_COMPARE)
				arr.PlayIndex(j)
				arr.PlayIndex(j + 1)
				if !yield(SortOp{Kind: OP_COMPARE, A: j, B: j + 1}) {
					return
				}
				if arr.Value(j) > arr.Value(j+1) {
					arr.Swap(j, j+1)
					if !yield(SortOp{Kind: OP_SWAP, A: j, B: j + 1}) {
						return
					}
				}
				arr.Unmark(j + 1)
				arr.Unmark(j)
			}
		}
	}
}
