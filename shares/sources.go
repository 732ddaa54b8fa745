package shares

import (
	"gonum.org/v1/gonum/floats"

	"github.com/cpoulo2/il-income-inequality/soi"
)

// GroupSource is one (bracket, source) row of the figure-4/5 table.
// ShareOfBracket is the source's weight inside the bracket's income;
// ShareOfSource is the bracket's slice of that source's statewide
// total. The two ratios answer different questions and both are kept.
type GroupSource struct {
	Bracket int
	Label   string
	Source  string

	Amount         float64
	ShareOfBracket float64
	ShareOfSource  float64
}

// SourcesByGroup reshapes the wide source-of-income columns into long
// form for one (year, state): one row per (source, bracket), sources
// in display order, brackets ascending. Rows whose bracket income or
// statewide source total is zero are omitted.
func SourcesByGroup(t *soi.Table, s Slice) ([]GroupSource, error) {
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

	inc, e3 := sub.Floats(soi.ColIncome)
	if e3 != nil {
		return nil, e3
	}

	var out []GroupSource
	for _, src := range Sources {
		amt, e4 := sub.Floats(src.Column)
		if e4 != nil {
			return nil, e4
		}

		totSource := floats.Sum(amt)
		if totSource == 0 {
			continue
		}

		for ind := 0; ind < len(brackets); ind++ {
			if inc[ind] == 0 {
				continue
			}

			out = append(out, GroupSource{
				Bracket:        brackets[ind],
				Label:          labels[ind],
				Source:         src.Name,
				Amount:         amt[ind],
				ShareOfBracket: amt[ind] / inc[ind],
				ShareOfSource:  amt[ind] / totSource,
			})
		}
	}

	return out, nil
}

// FilterSource narrows a long-form table to one source, for the
// figure-4 source selector. An unknown name yields an empty table.
func FilterSource(rows []GroupSource, source string) []GroupSource {
	var out []GroupSource
	for _, r := range rows {
		if r.Source == source {
			out = append(out, r)
		}
	}

	return out
}

// PercentileSource is one (percentile group, source) row of the
// figure-6/7 table. ShareOfGroup is the source's weight inside the
// group's AGI; ShareOfSource is the group's slice of that source's
// statewide total.
type PercentileSource struct {
	Group  string
	Source string

	Amount        float64
	ShareOfGroup  float64
	ShareOfSource float64
}

// SourcesByPercentile decomposes each percentile group's income by
// source for one (year, state), using the aggregate row's cumulative
// sums. The bottom 50% of each measure is the residual
// total - top-50% cumulative, per source; a negative residual is
// reported as a *soi.ResidualError. Output order: sources in display
// order, groups bottom 50%, top 1%, top 5%, top 10%. Rows with a zero
// denominator are omitted.
func SourcesByPercentile(t *soi.Table, year int, state string) ([]PercentileSource, error) {
	sub, e := aggregateRows(t, state, year)
	if e != nil {
		return nil, e
	}

	if sub.RowCount() == 0 {
		return nil, nil
	}

	// the group AGI denominators, in group order
	totalAGI, e1 := sub.Floats("total_agi")
	if e1 != nil {
		return nil, e1
	}

	agi := make(map[string]float64)
	for _, suf := range []string{soi.SufTop1, soi.SufTop5, soi.SufTop10, soi.SufTop50} {
		x, e2 := sub.Floats(soi.SumCol("agi", suf))
		if e2 != nil {
			return nil, e2
		}

		agi[suf] = x[0]
	}

	bottomAGI := totalAGI[0] - agi[soi.SufTop50]
	if bottomAGI < 0 {
		return nil, &soi.ResidualError{Measure: "agi", Year: year, Residual: bottomAGI}
	}

	groups := []struct {
		name string
		suf  string
		agi  float64
	}{
		{GroupBottom50, soi.SufTop50, bottomAGI},
		{GroupTop1, soi.SufTop1, agi[soi.SufTop1]},
		{GroupTop5, soi.SufTop5, agi[soi.SufTop5]},
		{GroupTop10, soi.SufTop10, agi[soi.SufTop10]},
	}

	var out []PercentileSource
	for _, src := range Sources {
		tot, e3 := sub.Floats(soi.TotalCol(src.Stem))
		if e3 != nil {
			return nil, e3
		}

		sum50, e4 := sub.Floats(soi.SumCol(src.Stem, soi.SufTop50))
		if e4 != nil {
			return nil, e4
		}

		bottom := tot[0] - sum50[0]
		if bottom < 0 {
			return nil, &soi.ResidualError{Measure: src.Stem, Year: year, Residual: bottom}
		}

		for _, g := range groups {
			amt := bottom
			if g.name != GroupBottom50 {
				x, e5 := sub.Floats(soi.SumCol(src.Stem, g.suf))
				if e5 != nil {
					return nil, e5
				}

				amt = x[0]
			}

			if g.agi == 0 || tot[0] == 0 {
				continue
			}

			out = append(out, PercentileSource{
				Group:         g.name,
				Source:        src.Name,
				Amount:        amt,
				ShareOfGroup:  amt / g.agi,
				ShareOfSource: amt / tot[0],
			})
		}
	}

	return out, nil
}
