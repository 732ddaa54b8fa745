package figures

import (
	"fmt"

	"github.com/cpoulo2/il-income-inequality/shares"
)

// IncomeGroups is the figure-1 builder: grouped bars of each bracket's
// share of returns versus share of income.
func IncomeGroups(rows []shares.GroupShare, year int, state string) *Plot {
	p := NewPlot(
		WithTitle(fmt.Sprintf("Share of Total Income Versus Tax Returns by Income Group (%s, %d)", state, year)),
		WithXlabel("Income Group"),
		WithYlabel("Percent of Total"),
		WithPercentYaxis(),
		WithSlantedXticks(),
		WithGroupedBars(),
		WithLegend(true),
	)

	for _, metric := range []string{shares.MetricReturns, shares.MetricIncome} {
		var (
			x []string
			y []float64
		)
		for _, r := range rows {
			if r.Metric == metric {
				x = append(x, r.Label)
				y = append(y, r.Share)
			}
		}

		if len(x) > 0 {
			p.AddBars(metric, x, y)
		}
	}

	return p
}

// TopBracket is the figure-2 builder: the $1M+ bracket's share of
// income and of returns over time.
func TopBracket(pts []shares.TopBracketPoint, state string) *Plot {
	p := NewPlot(
		WithTitle(fmt.Sprintf("Millionaires' and Billionaires' Share of Total Income Versus Tax Returns (%s)", state)),
		WithXlabel("Year"),
		WithYlabel("Share"),
		WithPercentYaxis(),
		WithLegend(true),
	)

	var (
		years   []int
		income  []float64
		returns []float64
	)
	for _, pt := range pts {
		years = append(years, pt.Year)
		income = append(income, pt.ShareIncome)
		returns = append(returns, pt.ShareReturns)
	}

	p.AddLine("Share of Income", years, income, "red")
	p.AddLine("Share of Tax Returns", years, returns, "blue")

	return p
}

var groupColors = map[string]string{
	shares.GroupTop1:     "blue",
	shares.GroupTop5:     "orange",
	shares.GroupTop10:    "green",
	shares.GroupBottom50: "red",
}

// Percentiles is the figure-3 builder: one line per percentile group.
func Percentiles(pts []shares.PercentilePoint, state string) *Plot {
	p := NewPlot(
		WithTitle(fmt.Sprintf("Share of Total Income by Percentile (%s)", state)),
		WithXlabel("Year"),
		WithYlabel("Share of Income"),
		WithPercentYaxis(),
		WithLegend(true),
	)

	for _, group := range []string{shares.GroupTop1, shares.GroupTop5, shares.GroupTop10, shares.GroupBottom50} {
		var (
			years []int
			y     []float64
		)
		for _, pt := range pts {
			if pt.Group == group {
				years = append(years, pt.Year)
				y = append(y, pt.Share)
			}
		}

		if len(years) > 0 {
			p.AddLine(group, years, y, groupColors[group])
		}
	}

	return p
}

// SourceByGroup is the figure-4 builder: one source's weight inside
// each bracket's income. rows should already be narrowed with
// shares.FilterSource.
func SourceByGroup(rows []shares.GroupSource, year int, state string) *Plot {
	p := NewPlot(
		WithTitle(fmt.Sprintf("Source of Income by Income Group (%s, %d)", state, year)),
		WithXlabel("Income Group"),
		WithYlabel("Share of Income"),
		WithPercentYaxis(),
		WithSlantedXticks(),
		WithGroupedBars(),
		WithLegend(true),
	)

	addSourceBars(p, rows, func(r shares.GroupSource) float64 { return r.ShareOfBracket })

	return p
}

// SourceSharesByGroup is the figure-5 builder: how each source's
// statewide total splits across brackets.
func SourceSharesByGroup(rows []shares.GroupSource, year int, state string) *Plot {
	p := NewPlot(
		WithTitle(fmt.Sprintf("Share of Income Source by Income Group (%s, %d)", state, year)),
		WithXlabel("Income Group"),
		WithYlabel("Share of Income"),
		WithPercentYaxis(),
		WithSlantedXticks(),
		WithGroupedBars(),
		WithLegend(true),
	)

	addSourceBars(p, rows, func(r shares.GroupSource) float64 { return r.ShareOfSource })

	return p
}

func addSourceBars(p *Plot, rows []shares.GroupSource, val func(shares.GroupSource) float64) {
	for _, src := range shares.Sources {
		var (
			x []string
			y []float64
		)
		for _, r := range rows {
			if r.Source == src.Name {
				x = append(x, r.Label)
				y = append(y, val(r))
			}
		}

		if len(x) > 0 {
			p.AddBars(src.Name, x, y)
		}
	}
}

// SourceByPercentile is the figure-6 builder: the composition of each
// percentile group's income by source.
func SourceByPercentile(rows []shares.PercentileSource, year int, state string) *Plot {
	p := NewPlot(
		WithTitle(fmt.Sprintf("Source of Income by Percentile (%s, %d)", state, year)),
		WithXlabel("Income Percentile"),
		WithYlabel("Share of Income"),
		WithPercentYaxis(),
		WithGroupedBars(),
		WithLegend(true),
	)

	addPercentileBars(p, rows, func(r shares.PercentileSource) float64 { return r.ShareOfGroup })

	return p
}

// SourceSharesByPercentile is the figure-7 builder: how each source's
// statewide total splits across percentile groups.
func SourceSharesByPercentile(rows []shares.PercentileSource, year int, state string) *Plot {
	p := NewPlot(
		WithTitle(fmt.Sprintf("Share of Income Source by Percentile (%s, %d)", state, year)),
		WithXlabel("Income Percentile"),
		WithYlabel("Share of Income Type"),
		WithPercentYaxis(),
		WithGroupedBars(),
		WithLegend(true),
	)

	addPercentileBars(p, rows, func(r shares.PercentileSource) float64 { return r.ShareOfSource })

	return p
}

func addPercentileBars(p *Plot, rows []shares.PercentileSource, val func(shares.PercentileSource) float64) {
	for _, src := range shares.Sources {
		var (
			x []string
			y []float64
		)
		for _, r := range rows {
			if r.Source == src.Name {
				x = append(x, r.Group)
				y = append(y, val(r))
			}
		}

		if len(x) > 0 {
			p.AddBars(src.Name, x, y)
		}
	}
}

// SourceTrend is the figure-8 builder: one line per source's share of
// total income over time.
func SourceTrend(pts []shares.SourcePoint, state string) *Plot {
	p := NewPlot(
		WithTitle(fmt.Sprintf("Share of Income by Source Over Time (%s)", state)),
		WithXlabel("Year"),
		WithYlabel("Share of Income"),
		WithPercentYaxis(),
		WithLegend(true),
	)

	for _, src := range shares.Sources {
		var (
			years []int
			y     []float64
		)
		for _, pt := range pts {
			if pt.Source == src.Name {
				years = append(years, pt.Year)
				y = append(y, pt.Share)
			}
		}

		if len(years) > 0 {
			p.AddLine(src.Name, years, y, "")
		}
	}

	return p
}
