package shares

import (
	"sort"

	"github.com/cpoulo2/il-income-inequality/soi"
)

// PercentilePoint is one (year, percentile group) row of the figure-3
// series: the group's share of total AGI.
type PercentilePoint struct {
	Year  int
	Group string
	Share float64
}

// PercentileSeries computes, for every year in the data, the share of
// one state's AGI held by the top 1%, 5% and 10% of filers and by the
// bottom 50%. The source reports cumulative top-X% sums only, so the
// bottom 50% is the residual total_agi - sum_agi_50. A negative
// residual is malformed source data and is reported as a
// *soi.ResidualError, never clamped.
func PercentileSeries(t *soi.Table, state string) ([]PercentilePoint, error) {
	sub, e := aggregateRows(t, state, 0)
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

	total, e2 := sub.Floats("total_agi")
	if e2 != nil {
		return nil, e2
	}

	sums := make(map[string][]float64)
	for _, suf := range []string{soi.SufTop1, soi.SufTop5, soi.SufTop10, soi.SufTop50} {
		var e3 error
		if sums[suf], e3 = sub.Floats(soi.SumCol("agi", suf)); e3 != nil {
			return nil, e3
		}
	}

	// one aggregate row per year; keep the first if duplicated
	rowOf := make(map[int]int)
	var ys []int
	for ind := 0; ind < len(years); ind++ {
		if _, ok := rowOf[years[ind]]; ok {
			continue
		}

		rowOf[years[ind]] = ind
		ys = append(ys, years[ind])
	}
	sort.Ints(ys)

	groups := []struct {
		name string
		suf  string
	}{
		{GroupTop1, soi.SufTop1},
		{GroupTop5, soi.SufTop5},
		{GroupTop10, soi.SufTop10},
		{GroupBottom50, soi.SufTop50},
	}

	var out []PercentilePoint
	for _, g := range groups {
		for _, y := range ys {
			at := rowOf[y]
			if total[at] == 0 {
				continue
			}

			amt := sums[g.suf][at]
			if g.name == GroupBottom50 {
				amt = total[at] - sums[soi.SufTop50][at]
				if amt < 0 {
					return nil, &soi.ResidualError{Measure: "agi", Year: y, Residual: amt}
				}
			}

			out = append(out, PercentilePoint{Year: y, Group: g.name, Share: amt / total[at]})
		}
	}

	return out, nil
}
