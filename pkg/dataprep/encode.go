package dataprep

import "fmt"

// EncodeIndicator expands a categorical column into indicator columns,
// dropping the first-seen level as the reference category. The returned
// rows have one column per non-reference level, ordered by first
// appearance; levels[0] is the dropped reference.
func EncodeIndicator(col []string) (rows [][]float64, levels []string, err error) {
	if len(col) == 0 {
		return nil, nil, fmt.Errorf("cannot encode an empty column")
	}
	seen := map[string]int{}
	for _, v := range col {
		if _, ok := seen[v]; !ok {
			seen[v] = len(levels)
			levels = append(levels, v)
		}
	}
	width := len(levels) - 1
	rows = make([][]float64, len(col))
	for i, v := range col {
		vec := make([]float64, width)
		if k := seen[v]; k > 0 {
			vec[k-1] = 1
		}
		rows[i] = vec
	}
	return rows, levels, nil
}

// DecodeIndicator reverses EncodeIndicator: an all-zero row maps back to
// the reference level, otherwise to the level of the set indicator.
func DecodeIndicator(rows [][]float64, levels []string) ([]string, error) {
	if len(levels) == 0 {
		return nil, fmt.Errorf("no levels to decode against")
	}
	out := make([]string, len(rows))
	for i, row := range rows {
		if len(row) != len(levels)-1 {
			return nil, fmt.Errorf("row %d has %d indicators, want %d", i, len(row), len(levels)-1)
		}
		out[i] = levels[0]
		for j, v := range row {
			if v != 0 {
				out[i] = levels[j+1]
				break
			}
		}
	}
	return out, nil
}

// LabelEncode encodes categories as integers in first-seen order.
func LabelEncode(col []string) ([]int, map[string]int) {
	unique := map[string]int{}
	out := make([]int, len(col))
	for i, v := range col {
		if _, ok := unique[v]; !ok {
			unique[v] = len(unique)
		}
		out[i] = unique[v]
	}
	return out, unique
}
