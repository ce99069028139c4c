package dataprep

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/c-myang/extra-topics/pkg/data"
)

const designCSV = `low,age,race,smoke,bwt
0,19,white,no,2523
0,33,black,no,2551
1,20,black,yes,2557
0,21,other,yes,2594
`

func loadTable(t *testing.T, csv string) *data.Table {
	t.Helper()
	table, err := data.Read(strings.NewReader(csv))
	require.NoError(t, err)
	return table
}

func TestBuildDesign(t *testing.T) {
	table := loadTable(t, designCSV)

	design, y, err := BuildDesign(table, "bwt", []string{"race", "smoke"}, []string{"low"})
	require.NoError(t, err)
	require.Equal(t, []float64{2523, 2551, 2557, 2594}, y)
	require.Equal(t, []string{"age", "race_black", "race_other", "smoke_yes"}, design.Names)

	n, p := design.X.Dims()
	require.Equal(t, 4, n)
	require.Equal(t, 4, p)

	// Row 2: age 20, race black, smoker.
	require.Equal(t, 20.0, design.X.At(2, 0))
	require.Equal(t, 1.0, design.X.At(2, 1))
	require.Equal(t, 0.0, design.X.At(2, 2))
	require.Equal(t, 1.0, design.X.At(2, 3))

	// Row 0 is all reference levels.
	require.Equal(t, 0.0, design.X.At(0, 1))
	require.Equal(t, 0.0, design.X.At(0, 2))
	require.Equal(t, 0.0, design.X.At(0, 3))
}

func TestBuildDesignErrors(t *testing.T) {
	table := loadTable(t, designCSV)

	_, _, err := BuildDesign(table, "missing", nil, nil)
	require.Error(t, err)

	_, _, err = BuildDesign(table, "bwt", []string{"missing"}, nil)
	require.Error(t, err)

	// race is not numeric, so leaving it out of the categorical list
	// must fail naming the column.
	_, _, err = BuildDesign(table, "bwt", []string{"smoke"}, []string{"low"})
	require.Error(t, err)
	require.Contains(t, err.Error(), `"race"`)

	// Dropping everything leaves no features.
	_, _, err = BuildDesign(table, "bwt", nil, []string{"low", "age", "race", "smoke"})
	require.Error(t, err)
}
