package data

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const sampleCSV = `age,race,bwt
19,white,2523
33,other,2551
20,black,2557
21,white,2594
`

func TestReadTable(t *testing.T) {
	table, err := Read(strings.NewReader(sampleCSV))
	require.NoError(t, err)
	require.Equal(t, 4, table.Len())
	require.Equal(t, []string{"age", "race", "bwt"}, table.Headers())

	race, err := table.Column("race")
	require.NoError(t, err)
	require.Equal(t, []string{"white", "other", "black", "white"}, race)

	bwt, err := table.Floats("bwt")
	require.NoError(t, err)
	require.Equal(t, []float64{2523, 2551, 2557, 2594}, bwt)
}

func TestReadErrors(t *testing.T) {
	cases := []struct {
		name string
		in   string
	}{
		{"Empty", ""},
		{"RaggedRow", "a,b\n1,2\n3\n"},
		{"DuplicateColumn", "a,a\n1,2\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Read(strings.NewReader(tc.in))
			require.Error(t, err)
		})
	}
}

func TestFloatsNamesColumn(t *testing.T) {
	table, err := Read(strings.NewReader(sampleCSV))
	require.NoError(t, err)

	_, err = table.Floats("race")
	require.Error(t, err)
	require.Contains(t, err.Error(), `"race"`)

	_, err = table.Floats("nope")
	require.Error(t, err)
}

func TestMatrix(t *testing.T) {
	table, err := Read(strings.NewReader(sampleCSV))
	require.NoError(t, err)

	m, err := table.Matrix("age", "bwt")
	require.NoError(t, err)
	require.Equal(t, [][]float64{{19, 2523}, {33, 2551}, {20, 2557}, {21, 2594}}, m)
}

func TestRows(t *testing.T) {
	table, err := Read(strings.NewReader(sampleCSV))
	require.NoError(t, err)

	sub, err := table.Rows([]int{2, 0})
	require.NoError(t, err)
	require.Equal(t, 2, sub.Len())
	race, err := sub.Column("race")
	require.NoError(t, err)
	require.Equal(t, []string{"black", "white"}, race)

	_, err = table.Rows([]int{7})
	require.Error(t, err)
}
