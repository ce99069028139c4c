package stats

import "errors"

// StandardScaler centers each column to zero mean and scales it to unit
// sample standard deviation. Columns with no spread are centered only.
type StandardScaler struct {
	Mean []float64
	Std  []float64
	fit  bool
}

func NewStandardScaler() *StandardScaler { return &StandardScaler{} }

// Fit learns per-column means and standard deviations from X.
func (s *StandardScaler) Fit(X [][]float64) error {
	if len(X) == 0 || len(X[0]) == 0 {
		return errors.New("cannot fit scaler on empty data")
	}
	rows, cols := len(X), len(X[0])
	s.Mean = make([]float64, cols)
	s.Std = make([]float64, cols)
	col := make([]float64, rows)
	for j := 0; j < cols; j++ {
		for i := 0; i < rows; i++ {
			col[i] = X[i][j]
		}
		s.Mean[j], s.Std[j] = MeanStd(col)
		if s.Std[j] == 0 {
			s.Std[j] = 1
		}
	}
	s.fit = true
	return nil
}

// Transform returns a standardized copy of X using the fitted moments.
func (s *StandardScaler) Transform(X [][]float64) [][]float64 {
	if !s.fit {
		return X
	}
	out := make([][]float64, len(X))
	for i, row := range X {
		scaled := make([]float64, len(row))
		for j, v := range row {
			scaled[j] = (v - s.Mean[j]) / s.Std[j]
		}
		out[i] = scaled
	}
	return out
}

func (s *StandardScaler) FitTransform(X [][]float64) [][]float64 {
	_ = s.Fit(X)
	return s.Transform(X)
}

// StandardizeData standardizes each column of X in one shot.
func StandardizeData(X [][]float64) [][]float64 {
	return NewStandardScaler().FitTransform(X)
}
