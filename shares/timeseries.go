package shares

import (
	"sort"

	"github.com/cpoulo2/il-income-inequality/soi"
)

// SourcePoint is one (year, source) row of the figure-8 series: the
// source's share of the state's total reported income that year.
type SourcePoint struct {
	Year   int
	Source string
	Share  float64
}

// SourceSeries computes each income source's share of total income per
// year for one state, summing across all brackets. Output order:
// sources in display order, years ascending. Years with zero total
// income are dropped.
func SourceSeries(t *soi.Table, state string) ([]SourcePoint, error) {
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

	inc, e2 := sub.Floats(soi.ColIncome)
	if e2 != nil {
		return nil, e2
	}

	incByYear := make(map[int]float64)
	for ind := 0; ind < len(years); ind++ {
		incByYear[years[ind]] += inc[ind]
	}

	var ys []int
	for y := range incByYear {
		ys = append(ys, y)
	}
	sort.Ints(ys)

	var out []SourcePoint
	for _, src := range Sources {
		amt, e3 := sub.Floats(src.Column)
		if e3 != nil {
			return nil, e3
		}

		amtByYear := make(map[int]float64)
		for ind := 0; ind < len(years); ind++ {
			amtByYear[years[ind]] += amt[ind]
		}

		for _, y := range ys {
			if incByYear[y] == 0 {
				continue
			}

			out = append(out, SourcePoint{Year: y, Source: src.Name, Share: amtByYear[y] / incByYear[y]})
		}
	}

	return out, nil
}
