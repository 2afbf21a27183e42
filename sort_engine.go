// sort_engine.go - Step sequence model shared by the five algorithms

/*
SortScope - watch and hear five sorting algorithms at work

(c) 2025 - 2026 Zayn Otley
https://github.com/IntuitionAmiga/SortScope
License: GPLv3 or later
*/

package main

import "iter"

// SortAlgorithm selects one of the five step engines.
type SortAlgorithm int

const (
	SORT_BUBBLE SortAlgorithm = iota
	SORT_INSERTION
	SORT_SELECTION
	SORT_MERGE
	SORT_QUICK
)

func (a SortAlgorithm) String() string {
	switch a {
	case SORT_BUBBLE:
		return "Bubble Sort"
	case SORT_INSERTION:
		return "Insertion Sort"
	case SORT_SELECTION:
		return "Selection Sort"
	case SORT_MERGE:
		return "Merge Sort"
	case SORT_QUICK:
		return "Quick Sort"
	}
	return "Unknown"
}

// SortOpKind classifies one micro-step of algorithm progress.
type SortOpKind uint8

const (
	OP_COMPARE SortOpKind = iota
	OP_SWAP
	OP_COPY // merge copy-back of one element
	OP_MARK // standalone highlight, e.g. pivot selection
)

// SortOp describes the micro-step that just ran. The session consumes one
// SortOp per tick; tests use the descriptors to count and classify steps.
type SortOp struct {
	Kind SortOpKind
	A, B int
}

// Steps returns the algorithm's step sequence over arr. Each element of the
// sequence performs a constant amount of comparison/mutation/marking/tone
// work before suspending, so progress happens exactly once per pull
// regardless of the host frame rate. Abandoning the sequence mid-flight
// (yield returning false) unwinds the engine without touching the array
// further; any marks left behind are the caller's to clear.
func (a SortAlgorithm) Steps(arr *SortArray) iter.Seq[SortOp] {
	switch a {
	case SORT_BUBBLE:
		return bubbleSteps(arr)
	case SORT_INSERTION:
		return insertionSteps(arr)
	case SORT_SELECTION:
		return selectionSteps(arr)
	case SORT_MERGE:
		return mergeSteps(arr)
	case SORT_QUICK:
		return quickSteps(arr)
	}
	return func(yield func(SortOp) bool) {}
}

// Algorithms lists every available engine in menu order.
func Algorithms() []SortAlgorithm {
	return []SortAlgorithm{SORT_BUBBLE, SORT_INSERTION, SORT_SELECTION, SORT_MERGE, SORT_QUICK}
}
