// Package data loads delimited tabular text into a column-oriented table
// with by-name access, the input format shared by both dataset pipelines.
package data

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
)

// Table holds a header row plus column-oriented string storage.
// Columns are addressed by header name; rows by index.
type Table struct {
	headers []string
	index   map[string]int
	cols    [][]string
}

// Read parses delimited text with a header row from r.
// Ragged rows or an empty input fail fast; no partial table is returned.
func Read(r io.Reader) (*Table, error) {
	reader := csv.NewReader(bufio.NewReader(r))
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading table: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("reading table: no header row")
	}

	headers := records[0]
	t := &Table{
		headers: headers,
		index:   make(map[string]int, len(headers)),
		cols:    make([][]string, len(headers)),
	}
	for j, h := range headers {
		if _, dup := t.index[h]; dup {
			return nil, fmt.Errorf("reading table: duplicate column %q", h)
		}
		t.index[h] = j
		t.cols[j] = make([]string, 0, len(records)-1)
	}
	for _, rec := range records[1:] {
		for j, v := range rec {
			t.cols[j] = append(t.cols[j], v)
		}
	}
	return t, nil
}

// Load reads a delimited file from disk.
func Load(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()
	return Read(f)
}

// Len returns the number of data rows.
func (t *Table) Len() int {
	if len(t.cols) == 0 {
		return 0
	}
	return len(t.cols[0])
}

// Headers returns the column names in file order.
func (t *Table) Headers() []string {
	out := make([]string, len(t.headers))
	copy(out, t.headers)
	return out
}

// Has reports whether the table contains the named column.
func (t *Table) Has(name string) bool {
	_, ok := t.index[name]
	return ok
}

// Column returns the raw string values of the named column.
func (t *Table) Column(name string) ([]string, error) {
	j, ok := t.index[name]
	if !ok {
		return nil, fmt.Errorf("no such column %q", name)
	}
	out := make([]string, len(t.cols[j]))
	copy(out, t.cols[j])
	return out, nil
}

// Floats parses the named column as float64 values. A cell that does not
// parse fails the whole column, naming the column and row.
func (t *Table) Floats(name string) ([]float64, error) {
	col, err := t.Column(name)
	if err != nil {
		return nil, err
	}
	out := make([]float64, len(col))
	for i, s := range col {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, fmt.Errorf("column %q row %d: non-numeric value %q", name, i, s)
		}
		out[i] = v
	}
	return out, nil
}

// Matrix assembles the named numeric columns into rows of float64.
func (t *Table) Matrix(names ...string) ([][]float64, error) {
	cols := make([][]float64, len(names))
	for j, name := range names {
		c, err := t.Floats(name)
		if err != nil {
			return nil, err
		}
		cols[j] = c
	}
	out := make([][]float64, t.Len())
	for i := range out {
		row := make([]float64, len(names))
		for j := range names {
			row[j] = cols[j][i]
		}
		out[i] = row
	}
	return out, nil
}

// Rows returns a new table containing the given row indices, in order.
func (t *Table) Rows(idx []int) (*Table, error) {
	n := t.Len()
	sub := &Table{
		headers: t.Headers(),
		index:   make(map[string]int, len(t.headers)),
		cols:    make([][]string, len(t.headers)),
	}
	for j, h := range sub.headers {
		sub.index[h] = j
		sub.cols[j] = make([]string, 0, len(idx))
	}
	for _, i := range idx {
		if i < 0 || i >= n {
			return nil, fmt.Errorf("row index %d out of range [0,%d)", i, n)
		}
		for j := range t.cols {
			sub.cols[j] = append(sub.cols[j], t.cols[j][i])
		}
	}
	return sub, nil
}
