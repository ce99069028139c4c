package stats

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMeanStd(t *testing.T) {
	xs := []float64{2, 4, 4, 4, 5, 5, 7, 9}
	require.InDelta(t, 5.0, Mean(xs), 1e-12)
	require.InDelta(t, 2.138, Std(xs), 1e-3)

	m, s := MeanStd(xs)
	require.Equal(t, Mean(xs), m)
	require.Equal(t, Std(xs), s)

	require.Equal(t, 0.0, Mean(nil))
	require.Equal(t, 0.0, Std([]float64{3}))
}

func TestStandardScaler(t *testing.T) {
	X := [][]float64{
		{1, 100, 5},
		{2, 200, 5},
		{3, 300, 5},
	}
	sc := NewStandardScaler()
	out := sc.FitTransform(X)

	for j := 0; j < 3; j++ {
		col := []float64{out[0][j], out[1][j], out[2][j]}
		require.InDelta(t, 0, Mean(col), 1e-12, "column %d should be centered", j)
	}
	// Unit spread for the varying columns.
	require.InDelta(t, 1, Std([]float64{out[0][0], out[1][0], out[2][0]}), 1e-12)
	require.InDelta(t, 1, Std([]float64{out[0][1], out[1][1], out[2][1]}), 1e-12)
	// The constant column stays finite at zero.
	require.Equal(t, 0.0, out[0][2])
	require.Equal(t, 0.0, out[2][2])

	// The input is untouched.
	require.Equal(t, 1.0, X[0][0])
}

func TestStandardScalerUnfitted(t *testing.T) {
	sc := NewStandardScaler()
	X := [][]float64{{1, 2}}
	require.Equal(t, X, sc.Transform(X))
	require.Error(t, sc.Fit(nil))
}
