package shares

import (
	"gonum.org/v1/gonum/floats"

	"github.com/cpoulo2/il-income-inequality/soi"
)

// Metric names for the long-form group-share table.
const (
	MetricReturns = "Tax returns"
	MetricIncome  = "Income"
)

// GroupShare is one row of the figure-1 table: a bracket's share of
// either total returns filed or total reported income.
type GroupShare struct {
	Bracket int
	Label   string
	Metric  string
	Share   float64
}

// GroupShares computes, for one (year, state), each income bracket's
// share of returns and share of income, long form: one row per
// (bracket, metric), brackets ascending, all returns-share rows first.
func GroupShares(t *soi.Table, s Slice) ([]GroupShare, error) {
	sub, e := bracketRows(t, s.State, s.Year)
	if e != nil {
		return nil, e
	}

	if sub.RowCount() == 0 {
		return nil, nil
	}

	if e = sub.Sort(soi.ColBracket); e != nil {
		return nil, e
	}

	brackets, e1 := sub.Ints(soi.ColBracket)
	if e1 != nil {
		return nil, e1
	}

	labels, e2 := sub.Strs(soi.ColBracketName)
	if e2 != nil {
		return nil, e2
	}

	returns, e3 := sub.Floats(soi.ColReturns)
	if e3 != nil {
		return nil, e3
	}

	inc, e4 := sub.Floats(soi.ColIncome)
	if e4 != nil {
		return nil, e4
	}

	totReturns := floats.Sum(returns)
	totInc := floats.Sum(inc)

	var out []GroupShare
	if totReturns != 0 {
		for ind := 0; ind < len(brackets); ind++ {
			out = append(out, GroupShare{
				Bracket: brackets[ind],
				Label:   labels[ind],
				Metric:  MetricReturns,
				Share:   returns[ind] / totReturns,
			})
		}
	}

	if totInc != 0 {
		for ind := 0; ind < len(brackets); ind++ {
			out = append(out, GroupShare{
				Bracket: brackets[ind],
				Label:   labels[ind],
				Metric:  MetricIncome,
				Share:   inc[ind] / totInc,
			})
		}
	}

	return out, nil
}
