// randomize.go - Initial-condition generators for the array under sort

/*
SortScope - watch and hear five sorting algorithms at work

(c) 2025 - 2026 Zayn Otley
https://github.com/IntuitionAmiga/SortScope
License: GPLv3 or later
*/

package main

import (
	"math"
	"math/rand/v2"
)

// Generator selects one of the built-in initial-condition shapes. Every
// generator produces n values in [1, n]; all but the near-duplicate shape
// produce a permutation of 1..n.
type Generator int

const (
	GEN_SHUFFLE Generator = iota
	GEN_NEAR_DUPLICATE
	GEN_CUBIC
	GEN_QUINTIC
	GEN_DESCENDING
)

func (g Generator) String() string {
	switch g {
	case GEN_SHUFFLE:
		return "shuffle"
	case GEN_NEAR_DUPLICATE:
		return "near-duplicate"
	case GEN_CUBIC:
		return "cubic"
	case GEN_QUINTIC:
		return "quintic"
	case GEN_DESCENDING:
		return "descending"
	}
	return "unknown"
}

// Generators lists the built-in shapes in menu order.
func Generators() []Generator {
	return []Generator{GEN_SHUFFLE, GEN_NEAR_DUPLICATE, GEN_CUBIC, GEN_QUINTIC, GEN_DESCENDING}
}

// GenerateValues produces a fresh array of n values for the chosen shape.
func GenerateValues(g Generator, n int, rng *rand.Rand) []int {
	values := make([]int, n)
	switch g {
	case GEN_NEAR_DUPLICATE:
		// A repeated mid value with exactly one smaller and one larger
		// outlier. Demonstrations of duplicate handling depend on this
		// exact shape, not just "some duplicates".
		mid := (n + 1) / 2
		for i := range values {
			values[i] = mid
		}
		// n == 2 has no room for outliers inside [1, n]; it degenerates to
		// two equal values.
		if n >= 3 {
			values[0] = mid - 1
			values[1] = mid + 1
		}
		shuffle(values, rng)

	case GEN_CUBIC:
		polyFill(values, 3)
		shuffle(values, rng)

	case GEN_QUINTIC:
		polyFill(values, 5)
		shuffle(values, rng)

	case GEN_DESCENDING:
		for i := range values {
			values[i] = n - i
		}

	default: // GEN_SHUFFLE
		for i := range values {
			values[i] = i + 1
		}
		shuffle(values, rng)
	}
	return values
}

// polyFill maps i over [-1,1], raises it to the given odd power and rescales
// into [1,n], biasing values toward the middle of the range.
func polyFill(values []int, power float64) {
	n := len(values)
	if n == 1 {
		values[0] = 1
		return
	}
	for i := range values {
		x := 2.0*float64(i)/float64(n-1) - 1.0
		v := (math.Pow(x, power) + 1.0) / 2.0 * float64(n-1)
		values[i] = int(math.Round(v)) + 1
	}
}

func shuffle(values []int, rng *rand.Rand) {
	if rng == nil {
		rand.Shuffle(len(values), func(i, j int) {
			values[i], values[j] = values[j], values[i]
		})
		return
	}
	rng.Shuffle(len(values), func(i, j int) {
		values[i], values[j] = values[j], values[i]
	})
}
