// sort_merge.go - Merge sort step sequence

/*
SortScope - watch and hear five sorting algorithms at work

(c) 2025 - 2026 Zayn Otley
https://github.com/IntuitionAmiga/SortScope
License: GPLv3 or later
*/

package main

import "iter"

// mergeSteps divides [low, high] at the midpoint, recurses on both halves,
// then merges. The merge walks the two sorted subranges with two pointers
// into a temporary buffer, marking and sounding each compared head, and
// copies the buffer back one element per step. The left subrange wins ties,
// keeping the merge stable.
func mergeSteps(arr *SortArray) iter.Seq[SortOp] {
	return func(yield func(SortOp) bool) {
		merge := func(low, mid, high int) bool {
			tmp := make([]int, 0, high-low+1)
			i, j := low, mid+1
			for i <= mid && j <= high {
				arr.Mark(i, COLOR_COMPARE)
				arr.Mark(j, COLOR_COMPARE)
				arr.PlayIndex(i)
				arr.PlayIndex(j)
				if !yield(SortOp{Kind: OP_COMPARE, A: i, B: j}) {
					return false
				}
				arr.Unmark(j)
				arr.Unmark(i)
				if arr.Value(j) < arr.Value(i) {
					tmp = append(tmp, arr.Value(j))
					j++
				} else {
					tmp = append(tmp, arr.Value(i))
					i++
				}
			}
			for i <= mid {
				tmp = append(tmp, arr.Value(i))
				i++
			}
			for j <= high {
				tmp = append(tmp, arr.Value(j))
				j++
			}
			for k, v := range tmp {
				arr.Set(low+k, v)
				if !yield(SortOp{Kind: OP_COPY, A: low + k, B: low + k}) {
					return false
				}
			}
			return true
		}

		var sortRange func(low, high int) bool
		sortRange = func(low, high int) bool {
			if low >= high {
				return true
			}
			mid := (low + high) / 2
			if !sortRange(low, mid) {
				return false
			}
			if !sortRange(mid+1, high) {
				return false
			}
			return merge(low, mid, high)
		}
		sortRange(0, arr.Size()-1)
	}
}
