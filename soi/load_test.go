package soi

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testCSV = `state,year,agi_stub,agi_stub_cat,returns,inc,agi,wages,notes
IL,2022,1,"$1 under $25,000",800,4000,4000,3200,low
IL,2022,10,"$1,000,000 or more",50,3000,3000,600,top
IL,2022,0,Total,,,,,agg
`

func writeCSV(t *testing.T, body string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "data.csv")
	if e := os.WriteFile(path, []byte(body), 0o644); e != nil {
		t.Fatal(e)
	}

	return path
}

func TestLoad(t *testing.T) {
	tbl, e := Load(writeCSV(t, testCSV))
	require.NoError(t, e)

	assert.Equal(t, 3, tbl.RowCount())
	assert.Equal(t, 9, tbl.ColumnCount())

	state, e1 := tbl.Column(ColState)
	require.NoError(t, e1)
	assert.Equal(t, KindString, state.Kind())

	year, e2 := tbl.Column(ColYear)
	require.NoError(t, e2)
	assert.Equal(t, KindInt, year.Kind())
	assert.Equal(t, []int{2022, 2022, 2022}, year.Ints())

	returns, e3 := tbl.Floats(ColReturns)
	require.NoError(t, e3)
	// blank numeric cells load as zero
	assert.Equal(t, []float64{800, 50, 0}, returns)

	// quoted commas survive
	labels, e4 := tbl.Strs(ColBracketName)
	require.NoError(t, e4)
	assert.Equal(t, "$1 under $25,000", labels[0])

	// an undeclared non-numeric column loads as string
	notes, e5 := tbl.Column("notes")
	require.NoError(t, e5)
	assert.Equal(t, KindString, notes.Kind())
}

func TestLoadNotFound(t *testing.T) {
	tbl, e := Load(filepath.Join(t.TempDir(), "nope.csv"))
	assert.Nil(t, tbl)
	assert.True(t, errors.Is(e, ErrNotFound))
}

func TestLoadSchemaError(t *testing.T) {
	bad := strings.Replace(testCSV, "800", "eight hundred", 1)

	tbl, e := Load(writeCSV(t, bad))
	assert.Nil(t, tbl)

	var se *SchemaError
	require.True(t, errors.As(e, &se))
	assert.Equal(t, ColReturns, se.Column)
	assert.Equal(t, 0, se.Row)
	assert.Equal(t, KindFloat, se.Want)
}

func TestLoadTwiceEqual(t *testing.T) {
	path := writeCSV(t, testCSV)

	first, e1 := Load(path)
	second, e2 := Load(path)
	require.NoError(t, e1)
	require.NoError(t, e2)

	require.Equal(t, first.ColumnNames(), second.ColumnNames())
	for _, name := range first.ColumnNames() {
		c1, _ := first.Column(name)
		c2, _ := second.Column(name)
		assert.Equal(t, c1.Kind(), c2.Kind())
		for ind := 0; ind < c1.Len(); ind++ {
			assert.Equal(t, c1.Element(ind), c2.Element(ind))
		}
	}
}

func TestReadUndeclaredNumeric(t *testing.T) {
	tbl, e := Read(strings.NewReader("state,mystery\nIL,1.5\nIN,2\n"))
	require.NoError(t, e)

	c, e1 := tbl.Column("mystery")
	require.NoError(t, e1)
	assert.Equal(t, KindFloat, c.Kind())
	assert.Equal(t, []float64{1.5, 2}, c.Floats())
}

func TestReadNoHeader(t *testing.T) {
	_, e := Read(strings.NewReader(""))
	assert.Error(t, e)
}
