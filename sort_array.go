// sort_array.go - The array under sort, with mark and tone side effects

/*
SortScope - watch and hear five sorting algorithms at work

(c) 2025 - 2026 Zayn Otley
https://github.com/IntuitionAmiga/SortScope
License: GPLv3 or later
*/

package main

// SortArray owns the values being sorted together with their mark stacks and
// a capability to request tones. Swaps permute values, never create or
// destroy them, and carry each value's marks along with it.
//
// Owned exclusively by the stepping lane.
type SortArray struct {
	values []int
	marks  *MarkStore
	chip   *SoundChip // may be nil (silent)
}

func NewSortArray(values []int, marks *MarkStore, chip *SoundChip) *SortArray {
	return &SortArray{
		values: values,
		marks:  marks,
		chip:   chip,
	}
}

func (sa *SortArray) Size() int {
	return len(sa.values)
}

// Value returns the value at an index, or 0 when out of range.
func (sa *SortArray) Value(i int) int {
	if i < 0 || i >= len(sa.values) {
		return 0
	}
	return sa.values[i]
}

// Values returns a copy of the current permutation.
func (sa *SortArray) Values() []int {
	return append([]int(nil), sa.values...)
}

// SetValues replaces the array contents and drops every mark.
func (sa *SortArray) SetValues(values []int) {
	sa.values = values
	sa.marks.UnmarkAll()
}

// Swap exchanges two positions' values and their mark stacks.
// Out-of-range indices make the whole operation a no-op.
func (sa *SortArray) Swap(i, j int) {
	if i < 0 || j < 0 || i >= len(sa.values) || j >= len(sa.values) || i == j {
		return
	}
	sa.values[i], sa.values[j] = sa.values[j], sa.values[i]
	sa.marks.TransferOnSwap(i, j)
}

// Set overwrites one position. Used by the merge copy-back, which moves
// values through a temporary buffer rather than by swapping.
func (sa *SortArray) Set(i, v int) {
	if i < 0 || i >= len(sa.values) {
		return
	}
	sa.values[i] = v
}

// PlayIndex requests a tone for the value at an index, normalized against
// the array size.
func (sa *SortArray) PlayIndex(i int) {
	if sa.chip == nil || i < 0 || i >= len(sa.values) {
		return
	}
	sa.chip.PlayValue(float64(sa.values[i]) / float64(len(sa.values)))
}

func (sa *SortArray) Mark(i int, c BarColor) { sa.marks.Mark(i, c) }
func (sa *SortArray) Unmark(i int)           { sa.marks.Unmark(i) }
func (sa *SortArray) UnmarkAll()             { sa.marks.UnmarkAll() }

// Sorted reports whether the array is non-decreasing end to end.
func (sa *SortArray) Sorted() bool {
	for i := 1; i < len(sa.values); i++ {
		if sa.values[i-1] > sa.values[i] {
			return false
		}
	}
	return true
}
