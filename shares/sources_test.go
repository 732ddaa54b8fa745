package shares

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cpoulo2/il-income-inequality/soi"
)

func TestSourcesByGroup(t *testing.T) {
	tbl := testTable(t)

	rows, e := SourcesByGroup(tbl, Slice{Year: 2022, State: "IL"})
	require.NoError(t, e)
	// six sources by three brackets
	require.Len(t, rows, 18)

	find := func(source string, bracket int) GroupSource {
		for _, r := range rows {
			if r.Source == source && r.Bracket == bracket {
				return r
			}
		}
		t.Fatalf("missing row %s bracket %d", source, bracket)
		return GroupSource{}
	}

	w1 := find("Wages and Salaries", 1)
	assert.InDelta(t, 0.8, w1.ShareOfBracket, 1e-12) // 3200 / 4000
	assert.InDelta(t, 3200.0/5600.0, w1.ShareOfSource, 1e-12)

	cg10 := find("Capital Gains", soi.TopBracket)
	assert.InDelta(t, 0.3, cg10.ShareOfBracket, 1e-12) // 900 / 3000
	assert.InDelta(t, 900.0/1300.0, cg10.ShareOfSource, 1e-12)

	// each source's distribution across brackets covers the whole total
	bySource := make(map[string]float64)
	for _, r := range rows {
		bySource[r.Source] += r.ShareOfSource
	}
	for _, src := range Sources {
		assert.InDelta(t, 1.0, bySource[src.Name], 1e-12, src.Name)
	}
}

func TestSourcesByGroupEmptySlice(t *testing.T) {
	tbl := testTable(t)

	rows, e := SourcesByGroup(tbl, Slice{Year: 1999, State: "IL"})
	assert.NoError(t, e)
	assert.Empty(t, rows)
}

func TestFilterSource(t *testing.T) {
	tbl := testTable(t)

	rows, e := SourcesByGroup(tbl, Slice{Year: 2022, State: "IL"})
	require.NoError(t, e)

	div := FilterSource(rows, "Dividends")
	require.Len(t, div, 3)
	for _, r := range div {
		assert.Equal(t, "Dividends", r.Source)
	}

	// a typo'd source name yields an empty table, not an error
	assert.Empty(t, FilterSource(rows, "Dividnds"))
}

func TestSourcesByPercentile(t *testing.T) {
	tbl := testTable(t)

	rows, e := SourcesByPercentile(tbl, 2022, "IL")
	require.NoError(t, e)
	// six sources by four groups
	require.Len(t, rows, 24)

	find := func(source, group string) PercentileSource {
		for _, r := range rows {
			if r.Source == source && r.Group == group {
				return r
			}
		}
		t.Fatalf("missing row %s %s", source, group)
		return PercentileSource{}
	}

	// bottom-50 wages: (5600 - 4000) over bottom-50 AGI (10000 - 8000)
	wb := find("Wages and Salaries", GroupBottom50)
	assert.InDelta(t, 1600.0, wb.Amount, 1e-12)
	assert.InDelta(t, 0.8, wb.ShareOfGroup, 1e-12)
	assert.InDelta(t, 1600.0/5600.0, wb.ShareOfSource, 1e-12)

	s1 := find("S-Corp", GroupTop1)
	assert.InDelta(t, 500.0/2100.0, s1.ShareOfGroup, 1e-12)
	assert.InDelta(t, 500.0/900.0, s1.ShareOfSource, 1e-12)

	// the percentile groups nest, so a source's slice can only grow
	for _, src := range Sources {
		assert.LessOrEqual(t, find(src.Name, GroupTop1).ShareOfSource, find(src.Name, GroupTop5).ShareOfSource)
		assert.LessOrEqual(t, find(src.Name, GroupTop5).ShareOfSource, find(src.Name, GroupTop10).ShareOfSource)
	}
}

func TestSourcesByPercentileNegativeResidual(t *testing.T) {
	tbl := makeTable(t, []fixtureRow{
		aggRow("IL", 2022, map[string]float64{
			"total_agi": 1000, "sum_agi_01": 200, "sum_agi_05": 300, "sum_agi_10": 400, "sum_agi_50": 800,
			"total_sal_amt": 500, "sum_sal_50": 600,
		}),
	})

	rows, e := SourcesByPercentile(tbl, 2022, "IL")
	assert.Nil(t, rows)

	var re *soi.ResidualError
	require.True(t, errors.As(e, &re))
	assert.Equal(t, "sal", re.Measure)
}

func TestSourcesByPercentileEmpty(t *testing.T) {
	tbl := testTable(t)

	rows, e := SourcesByPercentile(tbl, 1999, "IL")
	assert.NoError(t, e)
	assert.Empty(t, rows)
}
