package shares

import (
	"gonum.org/v1/gonum/floats"

	"github.com/cpoulo2/il-income-inequality/soi"
)

// Summary carries the headline numbers for the narrative text: total
// AGI and its growth over the window, the entry thresholds for each
// percentile, and the closing-year shares of the top bracket and the
// top 1%.
type Summary struct {
	State    string
	FromYear int
	ToYear   int

	TotalAGI   float64 // ToYear, summed over brackets
	AGIChange  float64 // ToYear - FromYear
	GrowthRate float64 // AGIChange relative to FromYear

	// AGI needed to enter each percentile in ToYear, keyed by group
	Thresholds map[string]float64

	TopBracketShare float64 // ToYear top-bracket share of income
	Top1Share       float64 // ToYear top-1% share of AGI
}

// Summarize computes the headline statistics for one state over
// [fromYear, toYear]. Returns (nil, nil) when the state has no rows.
func Summarize(t *soi.Table, state string, fromYear, toYear int) (*Summary, error) {
	sumAGI := func(year int) (float64, error) {
		sub, e := bracketRows(t, state, year)
		if e != nil {
			return 0, e
		}

		agi, e1 := sub.Floats(soi.ColAGI)
		if e1 != nil {
			return 0, e1
		}

		return floats.Sum(agi), nil
	}

	toAGI, e := sumAGI(toYear)
	if e != nil {
		return nil, e
	}

	fromAGI, e1 := sumAGI(fromYear)
	if e1 != nil {
		return nil, e1
	}

	if toAGI == 0 && fromAGI == 0 {
		return nil, nil
	}

	s := &Summary{
		State:     state,
		FromYear:  fromYear,
		ToYear:    toYear,
		TotalAGI:  toAGI,
		AGIChange: toAGI - fromAGI,
	}
	if fromAGI != 0 {
		s.GrowthRate = s.AGIChange / fromAGI
	}

	agg, e2 := aggregateRows(t, state, toYear)
	if e2 != nil {
		return nil, e2
	}

	if agg.RowCount() > 0 {
		s.Thresholds = make(map[string]float64)
		for _, g := range []struct {
			name string
			suf  string
		}{
			{GroupTop1, soi.SufTop1},
			{GroupTop5, soi.SufTop5},
			{GroupTop10, soi.SufTop10},
			{GroupTop50, soi.SufTop50},
		} {
			x, e3 := agg.Floats(soi.ThresholdCol(g.suf))
			if e3 != nil {
				return nil, e3
			}

			s.Thresholds[g.name] = x[0]
		}
	}

	top, e4 := TopBracketSeries(t, state)
	if e4 != nil {
		return nil, e4
	}

	for _, p := range top {
		if p.Year == toYear {
			s.TopBracketShare = p.ShareIncome
		}
	}

	pct, e5 := PercentileSeries(t, state)
	if e5 != nil {
		return nil, e5
	}

	for _, p := range pct {
		if p.Year == toYear && p.Group == GroupTop1 {
			s.Top1Share = p.Share
		}
	}

	return s, nil
}
