// sort_quick.go - Quick sort step sequence (Lomuto partition)

/*
SortScope - watch and hear five sorting algorithms at work

(c) 2025 - 2026 Zayn Otley
https://github.com/IntuitionAmiga/SortScope
License: GPLv3 or later
*/

package main

import "iter"

// quickSteps partitions with the Lomuto scheme: last element as pivot, a
// boundary pointer collecting the less-than region, pivot swapped onto the
// boundary at the end, then recursion on both partitions excluding the
// pivot. The pivot's mark travels with its value across swaps.
func quickSteps(arr *SortArray) iter.Seq[SortOp] {
	return func(yield func(SortOp) bool) {
		var sortRange func(low, high int) bool
		sortRange = func(low, high int) bool {
			if low >= high {
				return true
			}
			pivot := high
			arr.Mark(pivot, COLOR_PIVOT)
			arr.PlayIndex(pivot)
			if !yield(SortOp{Kind: OP_MARK, A: pivot, B: pivot}) {
				return false
			}
			boundary := low
			for j := low; j < high; j++ {
				arr.Mark(j, COLOR_COMPARE)
				arr.PlayIndex(j)
				if !yield(SortOp{Kind: OP_COMPARE, A: j, B: pivot}) {
					return false
				}
				arr.Unmark(j)
				if arr.Value(j) < arr.Value(pivot) {
					if boundary != j {
						arr.Swap(boundary, j)
						if !yield(SortOp{Kind: OP_SWAP, A: boundary, B: j}) {
							return false
						}
					}
					boundary++
				}
			}
			if boundary != high {
				arr.Swap(boundary, high)
				if !yield(SortOp{Kind: OP_SWAP, A: boundary, B: high}) {
					return false
				}
			}
			// The pivot mark moved to the boundary with its value.
			arr.Unmark(boundary)
			if !sortRange(low, boundary-1) {
				return false
			}
			return sortRange(boundary+1, high)
		}
		sortRange(0, arr.Size()-1)
	}
}
