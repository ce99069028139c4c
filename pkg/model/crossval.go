package model

import (
	"fmt"
	"math"
	"math/rand"

	"gonum.org/v1/gonum/mat"

	"github.com/c-myang/extra-topics/pkg/loader"
	"github.com/c-myang/extra-topics/pkg/stats"
)

// CVConfig configures k-fold cross-validation of a lasso path.
type CVConfig struct {
	Lambdas []float64 // descending penalty grid
	Folds   int
	Seed    int64 // seeds the fold shuffle
	MaxIter int
	Tol     float64
}

// NewCVConfig returns a config with the conventional 10 folds.
func NewCVConfig(lambdas []float64) *CVConfig {
	return &CVConfig{
		Lambdas: lambdas,
		Folds:   10,
		Seed:    1,
		MaxIter: 1000,
		Tol:     1e-7,
	}
}

// CVResult is the cross-validated error curve over the grid.
type CVResult struct {
	Lambdas   []float64
	MeanError []float64 // held-out MSE per lambda, averaged over folds
	StdError  []float64 // standard error of the per-fold means
	LambdaMin float64   // grid member with minimal mean error
}

// SelectOneSE applies the one-standard-error rule: the largest lambda
// whose mean error is within one standard error of the minimum.
func (r *CVResult) SelectOneSE() float64 {
	minIdx := 0
	for i, e := range r.MeanError {
		if e < r.MeanError[minIdx] {
			minIdx = i
		}
	}
	limit := r.MeanError[minIdx] + r.StdError[minIdx]
	for i, e := range r.MeanError {
		if e <= limit {
			return r.Lambdas[i]
		}
	}
	return r.Lambdas[minIdx]
}

// CrossValidate partitions the rows into folds, refits the lasso path
// with each fold held out, and scores held-out squared error per lambda.
// Ties on the error curve resolve toward the larger (more regularized)
// lambda because the grid is scanned largest-first with a strict compare.
func CrossValidate(X *mat.Dense, y []float64, cfg *CVConfig) (*CVResult, error) {
	n, p := X.Dims()
	if len(y) != n {
		return nil, fmt.Errorf("response length %d does not match %d rows", len(y), n)
	}
	if err := checkGrid(cfg.Lambdas); err != nil {
		return nil, err
	}

	rng := rand.New(rand.NewSource(cfg.Seed))
	folds, err := loader.KFold(n, cfg.Folds, rng)
	if err != nil {
		return nil, err
	}

	m := len(cfg.Lambdas)
	foldErr := make([][]float64, m) // per lambda, one MSE per fold
	for li := range foldErr {
		foldErr[li] = make([]float64, len(folds))
	}

	row := make([]float64, p)
	for f, held := range folds {
		train := loader.Complement(n, held)
		trainX := mat.NewDense(len(train), p, nil)
		trainY := make([]float64, len(train))
		for i, r := range train {
			mat.Row(row, r, X)
			trainX.SetRow(i, row)
			trainY[i] = y[r]
		}

		pathCfg := NewPathConfig(cfg.Lambdas)
		pathCfg.MaxIter = cfg.MaxIter
		pathCfg.Tol = cfg.Tol
		path, err := FitLassoPath(trainX, trainY, pathCfg)
		if err != nil {
			return nil, fmt.Errorf("fold %d: %w", f, err)
		}

		heldY := make([]float64, len(held))
		preds := make([]float64, len(held))
		for li := range path.Steps {
			step := &path.Steps[li]
			for i, r := range held {
				pred := step.Intercept
				for j := 0; j < p; j++ {
					pred += X.At(r, j) * step.Weights[j]
				}
				preds[i] = pred
				heldY[i] = y[r]
			}
			foldErr[li][f] = MSE(heldY, preds)
		}
	}

	result := &CVResult{
		Lambdas:   append([]float64{}, cfg.Lambdas...),
		MeanError: make([]float64, m),
		StdError:  make([]float64, m),
	}
	for li := range foldErr {
		mean, std := stats.MeanStd(foldErr[li])
		result.MeanError[li] = mean
		result.StdError[li] = std / math.Sqrt(float64(len(folds)))
	}

	minIdx := 0
	for li, e := range result.MeanError {
		if e < result.MeanError[minIdx] {
			minIdx = li
		}
	}
	result.LambdaMin = result.Lambdas[minIdx]
	return result, nil
}
