package model

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRegressionMetrics(t *testing.T) {
	yTrue := []float64{1, 2, 3, 4}
	yPred := []float64{1, 2, 3, 4}

	require.Equal(t, 0.0, MSE(yTrue, yPred))
	require.Equal(t, 0.0, MAE(yTrue, yPred))
	require.Equal(t, 0.0, RMSE(yTrue, yPred))
	require.Equal(t, 1.0, R2(yTrue, yPred))

	off := []float64{2, 3, 4, 5}
	require.InDelta(t, 1.0, MSE(yTrue, off), 1e-12)
	require.InDelta(t, 1.0, MAE(yTrue, off), 1e-12)
	require.InDelta(t, 1.0, RMSE(yTrue, off), 1e-12)
	require.InDelta(t, 0.2, R2(yTrue, off), 1e-12)

	// A constant response has no variance to explain.
	require.Equal(t, 0.0, R2([]float64{5, 5}, []float64{5, 5}))
}
