package shares

import (
	"sort"

	"github.com/cpoulo2/il-income-inequality/soi"
)

// TopBracketPoint is one year of the figure-2 series: the top
// bracket's share of all returns filed and of all reported income.
type TopBracketPoint struct {
	Year         int
	ShareReturns float64
	ShareIncome  float64
}

// TopBracketSeries computes, for every year in the data, the share of
// returns and income held by the highest bracket (agi_stub 10, $1M+)
// in one state. Years with a zero total are dropped.
func TopBracketSeries(t *soi.Table, state string) ([]TopBracketPoint, error) {
	sub, e := bracketRows(t, state, 0)
	if e != nil {
		return nil, e
	}

	if sub.RowCount() == 0 {
		return nil, nil
	}

	years, e1 := sub.Ints(soi.ColYear)
	if e1 != nil {
		return nil, e1
	}

	brackets, e2 := sub.Ints(soi.ColBracket)
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

	type accum struct {
		returns, inc       float64
		topReturns, topInc float64
	}

	byYear := make(map[int]*accum)
	for ind := 0; ind < len(years); ind++ {
		a := byYear[years[ind]]
		if a == nil {
			a = &accum{}
			byYear[years[ind]] = a
		}

		a.returns += returns[ind]
		a.inc += inc[ind]
		if brackets[ind] == soi.TopBracket {
			a.topReturns += returns[ind]
			a.topInc += inc[ind]
		}
	}

	var ys []int
	for y := range byYear {
		ys = append(ys, y)
	}
	sort.Ints(ys)

	var out []TopBracketPoint
	for _, y := range ys {
		a := byYear[y]
		if a.returns == 0 || a.inc == 0 {
			continue
		}

		out = append(out, TopBracketPoint{
			Year:         y,
			ShareReturns: a.topReturns / a.returns,
			ShareIncome:  a.topInc / a.inc,
		})
	}

	return out, nil
}
