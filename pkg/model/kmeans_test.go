package model

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestKMeansSingleCluster(t *testing.T) {
	X := [][]float64{{1, 2}, {3, 4}, {5, 0}, {7, 6}}
	m := NewKMeans(1, 100, 1)
	require.NoError(t, m.Fit(X))

	require.Equal(t, []int{0, 0, 0, 0}, m.Labels)
	require.InDelta(t, 4.0, m.Centroids[0][0], 1e-12)
	require.InDelta(t, 3.0, m.Centroids[0][1], 1e-12)
}

func TestKMeansTwoWellSeparatedClusters(t *testing.T) {
	X := [][]float64{{0, 0}, {0, 1}, {10, 0}, {10, 1}}
	m, err := FitBest(X, 2, 100, 10, 1)
	require.NoError(t, err)

	require.Equal(t, m.Labels[0], m.Labels[1], "left pair must share a cluster")
	require.Equal(t, m.Labels[2], m.Labels[3], "right pair must share a cluster")
	require.NotEqual(t, m.Labels[0], m.Labels[2])

	left := m.Centroids[m.Labels[0]]
	right := m.Centroids[m.Labels[2]]
	require.InDelta(t, 0.0, left[0], 1e-9)
	require.InDelta(t, 0.5, left[1], 1e-9)
	require.InDelta(t, 10.0, right[0], 1e-9)
	require.InDelta(t, 0.5, right[1], 1e-9)

	// Four points at squared distance 0.25 from their centroid.
	require.InDelta(t, 1.0, m.Inertia, 1e-9)
}

func TestKMeansDeterministicUnderSeed(t *testing.T) {
	X := [][]float64{
		{1, 1}, {1.5, 2}, {3, 4},
		{5, 7}, {3.5, 5}, {4.5, 5}, {3.5, 4.5},
	}
	run := func() *KMeans {
		m := NewKMeans(2, 100, 99)
		require.NoError(t, m.Fit(X))
		return m
	}
	first, second := run(), run()
	require.Equal(t, first.Labels, second.Labels)
	require.Equal(t, first.Centroids, second.Centroids)
	require.Equal(t, first.Inertia, second.Inertia)
}

func TestKMeansEachPointItsOwnCluster(t *testing.T) {
	X := [][]float64{{0, 0}, {5, 0}, {0, 5}, {5, 5}}
	m := NewKMeans(4, 100, 3)
	require.NoError(t, m.Fit(X))

	counts := make([]int, 4)
	for _, c := range m.Labels {
		counts[c]++
	}
	for k, c := range counts {
		require.Equal(t, 1, c, "cluster %d", k)
	}
	require.InDelta(t, 0.0, m.Inertia, 1e-12)
}

func TestKMeansPredictMatchesLabels(t *testing.T) {
	X := [][]float64{{0, 0}, {0.5, 0}, {9, 9}, {9.5, 9}}
	m := NewKMeans(2, 100, 17)
	require.NoError(t, m.Fit(X))

	got, err := m.Predict(X)
	require.NoError(t, err)
	require.Equal(t, m.Labels, got)

	_, err = m.Predict([][]float64{{1, 2, 3}})
	require.Error(t, err)
	_, err = m.Predict(nil)
	require.Error(t, err)
}

func TestKMeansValidation(t *testing.T) {
	X := [][]float64{{1}, {2}, {3}}
	cases := []struct {
		name string
		k    int
		data [][]float64
	}{
		{"EmptyData", 2, nil},
		{"ZeroClusters", 0, X},
		{"TooManyClusters", 4, X},
		{"RaggedRows", 2, [][]float64{{1, 2}, {3}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m := NewKMeans(tc.k, 100, 1)
			require.Error(t, m.Fit(tc.data))
		})
	}

	_, err := FitBest(X, 2, 100, 0, 1)
	require.Error(t, err)
}
