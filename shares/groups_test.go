package shares

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGroupSharesTwoBrackets(t *testing.T) {
	tbl := makeTable(t, []fixtureRow{
		bracketRow("IL", 2022, 1, "A", 100, 1000, 1000, nil),
		bracketRow("IL", 2022, 2, "B", 10, 9000, 9000, nil),
	})

	rows, e := GroupShares(tbl, Slice{Year: 2022, State: "IL"})
	require.NoError(t, e)
	require.Len(t, rows, 4)

	// returns shares first, brackets ascending
	assert.Equal(t, MetricReturns, rows[0].Metric)
	assert.InDelta(t, 0.909, rows[0].Share, 0.001)
	assert.InDelta(t, 0.091, rows[1].Share, 0.001)

	assert.Equal(t, MetricIncome, rows[2].Metric)
	assert.InDelta(t, 0.1, rows[2].Share, 1e-12)
	assert.InDelta(t, 0.9, rows[3].Share, 1e-12)
}

func TestGroupSharesSumToOne(t *testing.T) {
	tbl := testTable(t)

	rows, e := GroupShares(tbl, Slice{Year: 2022, State: "IL"})
	require.NoError(t, e)
	require.Len(t, rows, 6)

	sums := make(map[string]float64)
	for _, r := range rows {
		sums[r.Metric] += r.Share
	}

	assert.InDelta(t, 1.0, sums[MetricReturns], 1e-12)
	assert.InDelta(t, 1.0, sums[MetricIncome], 1e-12)
}

func TestGroupSharesExcludesAggregateRow(t *testing.T) {
	tbl := testTable(t)

	rows, e := GroupShares(tbl, Slice{Year: 2022, State: "IL"})
	require.NoError(t, e)

	for _, r := range rows {
		assert.NotEqual(t, 0, r.Bracket)
	}
}

func TestGroupSharesEmptySlice(t *testing.T) {
	tbl := testTable(t)

	rows, e := GroupShares(tbl, Slice{Year: 1999, State: "IL"})
	assert.NoError(t, e)
	assert.Empty(t, rows)

	rows, e = GroupShares(tbl, Slice{Year: 2022, State: "ZZ"})
	assert.NoError(t, e)
	assert.Empty(t, rows)
}

func TestGroupSharesDeterministic(t *testing.T) {
	tbl := testTable(t)

	first, e1 := GroupShares(tbl, Slice{Year: 2022, State: "IL"})
	second, e2 := GroupShares(tbl, Slice{Year: 2022, State: "IL"})
	require.NoError(t, e1)
	require.NoError(t, e2)
	assert.Equal(t, first, second)
}
