package shares

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarize(t *testing.T) {
	tbl := testTable(t)

	s, e := Summarize(tbl, "IL", 2012, 2022)
	require.NoError(t, e)
	require.NotNil(t, s)

	assert.InDelta(t, 10000.0, s.TotalAGI, 1e-12)
	assert.InDelta(t, 3000.0, s.AGIChange, 1e-12)
	assert.InDelta(t, 3000.0/7000.0, s.GrowthRate, 1e-12)

	assert.InDelta(t, 600000.0, s.Thresholds[GroupTop1], 1e-12)
	assert.InDelta(t, 45000.0, s.Thresholds[GroupTop50], 1e-12)

	assert.InDelta(t, 0.3, s.TopBracketShare, 1e-12)
	assert.InDelta(t, 0.21, s.Top1Share, 1e-12)
}

func TestSummarizeUnknownState(t *testing.T) {
	tbl := testTable(t)

	s, e := Summarize(tbl, "ZZ", 2012, 2022)
	assert.NoError(t, e)
	assert.Nil(t, s)
}
