// randomize_test.go - Initial-condition generator shapes

/*
SortScope - watch and hear five sorting algorithms at work

(c) 2025 - 2026 Zayn Otley
https://github.com/IntuitionAmiga/SortScope
License: GPLv3 or later
*/

package main

import (
	"math/rand/v2"
	"testing"
)

func TestGenerateValues_RangeAndLength(t *testing.T) {
	for _, g := range Generators() {
		for _, n := range []int{2, 7, 64, 255} {
			values := GenerateValues(g, n, testRNG())
			if len(values) != n {
				t.Fatalf("%s: got %d values, want %d", g, len(values), n)
			}
			for i, v := range values {
				if v < 1 || v > n {
					t.Fatalf("%s: values[%d] = %d outside [1,%d]", g, i, v, n)
				}
			}
		}
	}
}

func TestGenerateValues_ShuffleIsPermutation(t *testing.T) {
	const n = 100
	values := GenerateValues(GEN_SHUFFLE, n, testRNG())
	seen := make([]bool, n+1)
	for _, v := range values {
		if seen[v] {
			t.Fatalf("value %d appears twice, not a permutation", v)
		}
		seen[v] = true
	}
}

func TestGenerateValues_NearDuplicateShape(t *testing.T) {
	const n = 64
	values := GenerateValues(GEN_NEAR_DUPLICATE, n, testRNG())

	mid := (n + 1) / 2
	counts := valueCounts(values)
	if counts[mid] != n-2 {
		t.Fatalf("mid value %d appears %d times, want %d", mid, counts[mid], n-2)
	}
	if counts[mid-1] != 1 {
		t.Fatalf("low outlier %d appears %d times, want exactly 1", mid-1, counts[mid-1])
	}
	if counts[mid+1] != 1 {
		t.Fatalf("high outlier %d appears %d times, want exactly 1", mid+1, counts[mid+1])
	}
}

func TestGenerateValues_Descending(t *testing.T) {
	const n = 16
	values := GenerateValues(GEN_DESCENDING, n, testRNG())
	for i, v := range values {
		if v != n-i {
			t.Fatalf("values[%d] = %d, want strict descent from %d", i, v, n)
		}
	}
}

func TestGenerateValues_PolynomialMultisets(t *testing.T) {
	// Shuffling must not change which values the curve produced.
	tests := []struct {
		gen   Generator
		power float64
	}{
		{GEN_CUBIC, 3},
		{GEN_QUINTIC, 5},
	}
	const n = 48
	for _, tt := range tests {
		t.Run(tt.gen.String(), func(t *testing.T) {
			curve := make([]int, n)
			polyFill(curve, tt.power)

			values := GenerateValues(tt.gen, n, testRNG())
			if !sameMultiset(curve, values) {
				t.Fatalf("shuffled values are not the curve's multiset:\n curve  %v\n values %v", curve, values)
			}
		})
	}
}

func TestGenerateValues_PolynomialBiasesTowardMiddle(t *testing.T) {
	const n = 101
	values := make([]int, n)
	polyFill(values, 5)

	mid := (n + 1) / 2
	near := 0
	for _, v := range values {
		if v >= mid-n/10 && v <= mid+n/10 {
			near++
		}
	}
	// The flat center of x^5 parks well over half the values near mid.
	if near <= n/2 {
		t.Fatalf("only %d of %d values near the middle, curve looks wrong", near, n)
	}
}

func TestGenerateValues_SeedDeterminism(t *testing.T) {
	for _, g := range []Generator{GEN_SHUFFLE, GEN_NEAR_DUPLICATE, GEN_CUBIC} {
		a := GenerateValues(g, 64, rand.New(rand.NewPCG(42, 43)))
		b := GenerateValues(g, 64, rand.New(rand.NewPCG(42, 43)))
		for i := range a {
			if a[i] != b[i] {
				t.Fatalf("%s: same seed diverged at index %d (%d vs %d)", g, i, a[i], b[i])
			}
		}
	}
}

func TestGenerateValues_NilRNGStillShuffles(t *testing.T) {
	values := GenerateValues(GEN_SHUFFLE, 32, nil)
	if len(values) != 32 {
		t.Fatalf("nil rng produced %d values", len(values))
	}
	seen := make(map[int]bool, 32)
	for _, v := range values {
		if v < 1 || v > 32 || seen[v] {
			t.Fatalf("nil rng broke the permutation: %v", values)
		}
		seen[v] = true
	}
}
