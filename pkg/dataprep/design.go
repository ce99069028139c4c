package dataprep

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/c-myang/extra-topics/pkg/data"
)

// Design pairs a numeric design matrix with the name of each column.
// Categorical table columns appear expanded as "<col>_<level>" indicators.
type Design struct {
	Names []string
	X     *mat.Dense
}

// BuildDesign assembles a design matrix and aligned response vector from a
// table. Columns listed in categorical are indicator-expanded with their
// reference level dropped; every other column (except the response and any
// in drop) must parse as numeric. Errors name the offending column.
func BuildDesign(t *data.Table, response string, categorical []string, drop []string) (*Design, []float64, error) {
	if !t.Has(response) {
		return nil, nil, fmt.Errorf("response column %q not in table", response)
	}
	y, err := t.Floats(response)
	if err != nil {
		return nil, nil, err
	}

	isCat := map[string]bool{}
	for _, c := range categorical {
		if !t.Has(c) {
			return nil, nil, fmt.Errorf("categorical column %q not in table", c)
		}
		isCat[c] = true
	}
	skip := map[string]bool{response: true}
	for _, c := range drop {
		skip[c] = true
	}

	var names []string
	var cols [][]float64 // column-major
	for _, h := range t.Headers() {
		if skip[h] {
			continue
		}
		if isCat[h] {
			raw, err := t.Column(h)
			if err != nil {
				return nil, nil, err
			}
			rows, levels, err := EncodeIndicator(raw)
			if err != nil {
				return nil, nil, fmt.Errorf("column %q: %w", h, err)
			}
			for k, level := range levels[1:] {
				col := make([]float64, len(rows))
				for i := range rows {
					col[i] = rows[i][k]
				}
				names = append(names, h+"_"+level)
				cols = append(cols, col)
			}
			continue
		}
		col, err := t.Floats(h)
		if err != nil {
			return nil, nil, err
		}
		names = append(names, h)
		cols = append(cols, col)
	}
	if len(cols) == 0 {
		return nil, nil, fmt.Errorf("no feature columns left after dropping %q", response)
	}

	n, p := t.Len(), len(cols)
	X := mat.NewDense(n, p, nil)
	for j, col := range cols {
		X.SetCol(j, col)
	}
	return &Design{Names: names, X: X}, y, nil
}
