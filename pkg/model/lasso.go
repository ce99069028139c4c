package model

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/c-myang/extra-topics/pkg/stats"
)

// PathConfig holds the penalty grid and convergence parameters for a
// lasso path fit. Lambdas must be positive and strictly decreasing.
type PathConfig struct {
	Lambdas []float64 // descending penalty grid
	MaxIter int       // full coordinate passes per lambda
	Tol     float64   // max coefficient change to declare convergence
}

// NewPathConfig returns a config with recommended defaults for the grid.
func NewPathConfig(lambdas []float64) *PathConfig {
	return &PathConfig{
		Lambdas: lambdas,
		MaxIter: 1000,
		Tol:     1e-7,
	}
}

// PathStep is the fitted model at one penalty strength, reported on the
// original feature scale.
type PathStep struct {
	Lambda    float64
	Weights   []float64
	Intercept float64
	R2        float64 // fraction of response variance explained
}

// Predict returns fitted values for rows of X.
func (s *PathStep) Predict(X *mat.Dense) []float64 {
	n, p := X.Dims()
	out := make([]float64, n)
	for i := 0; i < n; i++ {
		sum := s.Intercept
		for j := 0; j < p; j++ {
			sum += X.At(i, j) * s.Weights[j]
		}
		out[i] = sum
	}
	return out
}

// LassoPath is the full solution path, one step per grid value, in the
// same (descending) order as the grid.
type LassoPath struct {
	Steps []PathStep
}

// Coefficients returns the path of feature j across the grid.
func (p *LassoPath) Coefficients(j int) []float64 {
	out := make([]float64, len(p.Steps))
	for i := range p.Steps {
		out[i] = p.Steps[i].Weights[j]
	}
	return out
}

// FitLassoPath fits an L1-penalized linear model at every grid value by
// coordinate descent with soft-thresholding. Features are standardized
// internally so the penalty applies uniformly; reported coefficients are
// on the original scale. Each grid value warm-starts from the previous
// solution, which is what makes the path continuous.
func FitLassoPath(X *mat.Dense, y []float64, cfg *PathConfig) (*LassoPath, error) {
	n, p := X.Dims()
	if n < 1 || p < 1 {
		return nil, fmt.Errorf("design matrix is %dx%d, need at least one row and column", n, p)
	}
	if len(y) != n {
		return nil, fmt.Errorf("response length %d does not match %d rows", len(y), n)
	}
	if err := checkGrid(cfg.Lambdas); err != nil {
		return nil, err
	}

	cols, means, stds := standardizeColumns(X)
	yc := make([]float64, n)
	copy(yc, y)
	yMean := floats.Sum(yc) / float64(n)
	floats.AddConst(-yMean, yc)
	tss := floats.Dot(yc, yc)

	// Column norms are fixed for the whole path. A zero norm marks a
	// constant column; the epsilon below keeps its update at exactly 0.
	xtx := make([]float64, p)
	for j := range cols {
		xtx[j] = floats.Dot(cols[j], cols[j])
	}

	weights := make([]float64, p) // standardized scale, warm-started
	intercept := 0.0
	residuals := make([]float64, n)
	copy(residuals, yc)

	path := &LassoPath{Steps: make([]PathStep, 0, len(cfg.Lambdas))}
	for _, lambda := range cfg.Lambdas {
		for pass := 0; pass < cfg.MaxIter; pass++ {
			maxDelta := 0.0
			for j := 0; j < p; j++ {
				old := weights[j]
				if old != 0 {
					floats.AddScaled(residuals, old, cols[j])
				}
				rho := floats.Dot(cols[j], residuals)
				w := softThreshold(rho, lambda) / (xtx[j] + 1e-8)
				if w != 0 {
					floats.AddScaled(residuals, -w, cols[j])
				}
				weights[j] = w
				if d := math.Abs(w - old); d > maxDelta {
					maxDelta = d
				}
			}

			meanResidual := floats.Sum(residuals) / float64(n)
			intercept += meanResidual
			floats.AddConst(-meanResidual, residuals)

			if maxDelta < cfg.Tol {
				break
			}
		}

		step := PathStep{
			Lambda:  lambda,
			Weights: make([]float64, p),
		}
		for j := 0; j < p; j++ {
			step.Weights[j] = weights[j] / stds[j]
		}
		dot := 0.0
		for j := 0; j < p; j++ {
			dot += means[j] * step.Weights[j]
		}
		step.Intercept = yMean + intercept - dot

		rss := floats.Dot(residuals, residuals)
		if tss > 0 {
			step.R2 = 1 - rss/tss
		}
		path.Steps = append(path.Steps, step)
	}
	return path, nil
}

// LambdaMax returns the smallest penalty at which the lasso solution is
// all-zero: the largest absolute correlation between a standardized
// feature and the centered response.
func LambdaMax(X *mat.Dense, y []float64) float64 {
	n, _ := X.Dims()
	cols, _, _ := standardizeColumns(X)
	yc := make([]float64, n)
	copy(yc, y)
	floats.AddConst(-floats.Sum(yc)/float64(n), yc)

	maxCorr := 0.0
	for j := range cols {
		if c := math.Abs(floats.Dot(cols[j], yc)); c > maxCorr {
			maxCorr = c
		}
	}
	return maxCorr
}

// LambdaGrid builds an m-point log-spaced descending grid from lmax down
// to lmax*ratio, the conventional shape for a lasso path.
func LambdaGrid(lmax, ratio float64, m int) []float64 {
	if m < 1 || lmax <= 0 || ratio <= 0 || ratio >= 1 {
		return nil
	}
	if m == 1 {
		return []float64{lmax}
	}
	grid := make([]float64, m)
	logMax, logMin := math.Log(lmax), math.Log(lmax*ratio)
	for i := 0; i < m; i++ {
		frac := float64(i) / float64(m-1)
		grid[i] = math.Exp(logMax + frac*(logMin-logMax))
	}
	return grid
}

func checkGrid(lambdas []float64) error {
	if len(lambdas) == 0 {
		return fmt.Errorf("empty penalty grid")
	}
	for i, l := range lambdas {
		if l <= 0 {
			return fmt.Errorf("penalty grid value %g at position %d is not positive", l, i)
		}
		if i > 0 && l >= lambdas[i-1] {
			return fmt.Errorf("penalty grid must be strictly decreasing, got %g after %g", l, lambdas[i-1])
		}
	}
	return nil
}

// standardizeColumns copies X into column slices with zero mean and unit
// sample standard deviation. Constant columns get scale 1 so downstream
// math never divides by zero.
func standardizeColumns(X *mat.Dense) (cols [][]float64, means, stds []float64) {
	n, p := X.Dims()
	cols = make([][]float64, p)
	means = make([]float64, p)
	stds = make([]float64, p)
	for j := 0; j < p; j++ {
		col := make([]float64, n)
		mat.Col(col, j, X)
		mean, std := stats.MeanStd(col)
		if std < 1e-8 {
			std = 1
		}
		for i := range col {
			col[i] = (col[i] - mean) / std
		}
		cols[j] = col
		means[j] = mean
		stds[j] = std
	}
	return cols, means, stds
}

// softThreshold shrinks z toward zero by lambda, clamping to exactly
// zero inside the threshold.
func softThreshold(z, lambda float64) float64 {
	switch {
	case z > lambda:
		return z - lambda
	case z < -lambda:
		return z + lambda
	}
	return 0
}
