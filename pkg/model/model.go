// Package model implements the two core fitting procedures: lasso-penalized
// linear regression over a descending penalty grid (with k-fold cross
// validation) and Lloyd's k-means clustering.
package model

// Clusterer is for unsupervised clustering.
type Clusterer interface {
	Fit(X [][]float64) error
	Predict(X [][]float64) ([]int, error) // cluster assignments
}

// Transformer is for preprocessing steps (fit on train, transform both).
type Transformer interface {
	Fit(X [][]float64) error
	Transform(X [][]float64) [][]float64
	FitTransform(X [][]float64) [][]float64
}
