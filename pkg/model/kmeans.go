package model

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"runtime"
	"sync"
)

// KMeans partitions data points into K clusters by Lloyd's algorithm.
// All randomness flows from Seed, so a run replays exactly; the parallel
// assignment step writes disjoint index ranges and cannot change results.
type KMeans struct {
	K       int
	MaxIter int
	Seed    int64

	Centroids [][]float64
	Labels    []int
	Inertia   float64 // sum of squared distances to assigned centroids
}

// NewKMeans creates a KMeans model with the given cluster count,
// iteration cap, and random seed.
func NewKMeans(k, maxIter int, seed int64) *KMeans {
	return &KMeans{K: k, MaxIter: maxIter, Seed: seed}
}

var _ Clusterer = (*KMeans)(nil)

// Fit clusters the rows of X. It terminates when no assignment changes
// between consecutive iterations or after MaxIter iterations.
func (m *KMeans) Fit(X [][]float64) error {
	if len(X) == 0 {
		return errors.New("input data cannot be empty")
	}
	n, p := len(X), len(X[0])
	for i, row := range X {
		if len(row) != p {
			return fmt.Errorf("row %d has %d features, want %d", i, len(row), p)
		}
	}
	if m.K < 1 || m.K > n {
		return fmt.Errorf("cluster count %d out of range [1,%d]", m.K, n)
	}

	rng := rand.New(rand.NewSource(m.Seed))
	m.initCenters(X, rng)

	assign := make([]int, n)
	var wg sync.WaitGroup
	workers := runtime.GOMAXPROCS(0)

	for it := 0; it < m.MaxIter; it++ {
		// Assignment step, chunked across workers. Each worker owns a
		// row range and its own changed flag.
		changedBy := make([]bool, workers)
		rowsPerWorker := (n + workers - 1) / workers
		for w := 0; w < workers; w++ {
			start := w * rowsPerWorker
			end := start + rowsPerWorker
			if end > n {
				end = n
			}
			if start >= end {
				continue
			}

			wg.Add(1)
			go func(w, start, end int) {
				defer wg.Done()
				for i := start; i < end; i++ {
					// Strict < keeps the lowest cluster index on
					// exact distance ties.
					best, bestD := 0, math.MaxFloat64
					for k := 0; k < m.K; k++ {
						if d := euclidSquared(X[i], m.Centroids[k]); d < bestD {
							bestD = d
							best = k
						}
					}
					if assign[i] != best {
						changedBy[w] = true
					}
					assign[i] = best
				}
			}(w, start, end)
		}
		wg.Wait()

		changed := false
		for _, c := range changedBy {
			changed = changed || c
		}

		// Update step: each centroid becomes the mean of its points.
		sums := make([][]float64, m.K)
		counts := make([]int, m.K)
		for k := range sums {
			sums[k] = make([]float64, p)
		}
		for i, k := range assign {
			counts[k]++
			for j, v := range X[i] {
				sums[k][j] += v
			}
		}
		for k := 0; k < m.K; k++ {
			if counts[k] == 0 {
				// Re-seed an empty cluster from the point farthest
				// from its assigned centroid; index order breaks ties.
				far, farD := 0, -1.0
				for i := range X {
					if d := euclidSquared(X[i], m.Centroids[assign[i]]); d > farD {
						farD = d
						far = i
					}
				}
				m.Centroids[k] = append([]float64{}, X[far]...)
				changed = true
				continue
			}
			for j := 0; j < p; j++ {
				m.Centroids[k][j] = sums[k][j] / float64(counts[k])
			}
		}

		if !changed {
			break
		}
	}

	m.Labels = assign
	m.Inertia = 0
	for i, k := range assign {
		m.Inertia += euclidSquared(X[i], m.Centroids[k])
	}
	return nil
}

// Predict assigns each row of X to its nearest fitted centroid.
func (m *KMeans) Predict(X [][]float64) ([]int, error) {
	if len(X) == 0 {
		return nil, errors.New("input data for prediction cannot be empty")
	}
	if len(m.Centroids) == 0 {
		return nil, errors.New("model is not fitted")
	}
	if len(X[0]) != len(m.Centroids[0]) {
		return nil, errors.New("feature count mismatch between input data and model centroids")
	}

	out := make([]int, len(X))
	for i, row := range X {
		best, bestD := 0, math.MaxFloat64
		for k := range m.Centroids {
			if d := euclidSquared(row, m.Centroids[k]); d < bestD {
				bestD = d
				best = k
			}
		}
		out[i] = best
	}
	return out, nil
}

// initCenters seeds centroids with weighted-distance sampling: the first
// center is a uniform draw, each later one is drawn proportional to its
// squared distance from the nearest existing center.
func (m *KMeans) initCenters(X [][]float64, rng *rand.Rand) {
	m.Centroids = make([][]float64, m.K)
	first := rng.Intn(len(X))
	m.Centroids[0] = append([]float64{}, X[first]...)

	for k := 1; k < m.K; k++ {
		distSq := make([]float64, len(X))
		total := 0.0
		for i, x := range X {
			minD := math.MaxFloat64
			for _, c := range m.Centroids[:k] {
				if d := euclidSquared(x, c); d < minD {
					minD = d
				}
			}
			distSq[i] = minD
			total += minD
		}
		if total == 0 {
			// All points coincide with existing centers.
			m.Centroids[k] = append([]float64{}, X[rng.Intn(len(X))]...)
			continue
		}

		r := rng.Float64() * total
		cumulative := 0.0
		chosen := len(X) - 1
		for i, d := range distSq {
			cumulative += d
			if cumulative > r {
				chosen = i
				break
			}
		}
		m.Centroids[k] = append([]float64{}, X[chosen]...)
	}
}

// FitBest runs independent seeded restarts and keeps the clustering with
// the lowest inertia. Restart r uses seed+r, so the whole search replays
// under a fixed seed.
func FitBest(X [][]float64, k, maxIter, restarts int, seed int64) (*KMeans, error) {
	if restarts < 1 {
		return nil, fmt.Errorf("need at least 1 restart, got %d", restarts)
	}
	var best *KMeans
	for r := 0; r < restarts; r++ {
		m := NewKMeans(k, maxIter, seed+int64(r))
		if err := m.Fit(X); err != nil {
			return nil, err
		}
		if best == nil || m.Inertia < best.Inertia {
			best = m
		}
	}
	return best, nil
}

func euclidSquared(a, b []float64) float64 {
	s := 0.0
	for i := range a {
		d := a[i] - b[i]
		s += d * d
	}
	return s
}
