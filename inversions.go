package interview

import (
	"slices"
	"sort"

	"github.com/yourbasic/fenwick"
)

// WeightedInversions returns the sum, over every index j, of the number
// of earlier elements strictly greater than arr[j] multiplied by the
// number of later elements strictly smaller than arr[j]. Equivalently, it
// counts the index triples i < j < k with arr[i] > arr[j] > arr[k].
//
// Equal values never contribute. The default algorithm runs in
// O(n log n).
func WeightedInversions(arr []int64, opts ...InversionOption) int64 {
	var cfg inversionConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.bruteForce {
		return weightedInversionsQuadratic(arr)
	}
	return weightedInversionsFenwick(arr)
}

func weightedInversionsQuadratic(arr []int64) int64 {
	var count int64
	for j, x := range arr {
		var leftGreater, rightSmaller int64
		for _, y := range arr[:j] {
			if y > x {
				leftGreater++
			}
		}
		for _, y := range arr[j+1:] {
			if y < x {
				rightSmaller++
			}
		}
		count += leftGreater * rightSmaller
	}
	return count
}

func weightedInversionsFenwick(arr []int64) int64 {
	if len(arr) < 3 {
		return 0
	}

	// sorted[r] is the r-th smallest value; the rank of x is the index of
	// its first occurrence, so the rank is also the number of elements
	// strictly smaller than x in the whole array.
	sorted := slices.Clone(arr)
	slices.Sort(sorted)

	// seen counts, per rank, the elements already swept over.
	seen := fenwick.New(make([]int64, len(sorted))...)

	var count int64
	for j, x := range arr {
		rank := sort.Search(len(sorted), func(i int) bool { return sorted[i] >= x })

		leftSmaller := seen.Sum(rank)
		leftNotGreater := leftSmaller + seen.SumRange(rank, rank+1)
		leftGreater := int64(j) - leftNotGreater
		rightSmaller := int64(rank) - leftSmaller

		count += leftGreater * rightSmaller
		seen.Add(rank, 1)
	}
	return count
}
