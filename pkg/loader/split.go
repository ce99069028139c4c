// Package loader provides seeded row sampling and fold partitioning.
// Every random choice goes through a caller-supplied *rand.Rand so that
// whole pipelines replay exactly under a fixed seed.
package loader

import (
	"fmt"
	"math/rand"
	"sort"
)

// Sample draws size distinct row indices from [0, n) without replacement.
// The result is sorted so downstream row subsets keep file order.
func Sample(n, size int, rng *rand.Rand) ([]int, error) {
	if size < 0 || size > n {
		return nil, fmt.Errorf("sample size %d out of range [0,%d]", size, n)
	}
	idx := rng.Perm(n)[:size]
	sort.Ints(idx)
	return idx, nil
}

// Shuffle returns a permuted copy of X and Y, permuted in unison.
func Shuffle(X [][]float64, Y []float64, rng *rand.Rand) ([][]float64, []float64) {
	n := len(X)
	perm := rng.Perm(n)
	outX := make([][]float64, n)
	outY := make([]float64, n)
	for i, k := range perm {
		outX[i] = X[k]
		outY[i] = Y[k]
	}
	return outX, outY
}

// KFold partitions [0, n) into k disjoint non-empty folds of held-out
// indices. Fold sizes differ by at most one; the remainder is spread over
// the leading folds.
func KFold(n, k int, rng *rand.Rand) ([][]int, error) {
	if k < 2 {
		return nil, fmt.Errorf("need at least 2 folds, got %d", k)
	}
	if k > n {
		return nil, fmt.Errorf("cannot split %d observations into %d folds", n, k)
	}
	perm := rng.Perm(n)
	folds := make([][]int, k)
	per, rem := n/k, n%k
	at := 0
	for f := 0; f < k; f++ {
		size := per
		if f < rem {
			size++
		}
		folds[f] = append([]int{}, perm[at:at+size]...)
		at += size
	}
	return folds, nil
}

// Complement returns the indices of [0, n) not in fold, preserving order.
func Complement(n int, fold []int) []int {
	in := make([]bool, n)
	for _, i := range fold {
		in[i] = true
	}
	out := make([]int, 0, n-len(fold))
	for i := 0; i < n; i++ {
		if !in[i] {
			out = append(out, i)
		}
	}
	return out
}
