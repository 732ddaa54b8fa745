// Package shares derives the percentage-share tables behind the
// dashboard figures. Every function is a pure transformation of a
// loaded *soi.Table: filters copy, nothing mutates the snapshot, and a
// filter that matches no rows yields an empty result rather than an
// error. A share whose denominator is zero is omitted from the output.
package shares

import "github.com/cpoulo2/il-income-inequality/soi"

// Source identifies one source of income. Column is the per-bracket
// amount column; Stem is the column stem used by the percentile
// aggregates (total_<stem>_amt, sum_<stem>_XX).
type Source struct {
	Name   string
	Column string
	Stem   string
}

// Sources lists the income sources in display order.
var Sources = []Source{
	{Name: "Wages and Salaries", Column: "wages", Stem: "sal"},
	{Name: "Interest", Column: "interest", Stem: "int"},
	{Name: "Dividends", Column: "dividends", Stem: "div"},
	{Name: "Business", Column: "business", Stem: "businc"},
	{Name: "Capital Gains", Column: "capital_gains", Stem: "cpgain"},
	{Name: "S-Corp", Column: "s_corp", Stem: "scorp"},
}

// SourceByName looks a source up by display name.
func SourceByName(name string) (Source, bool) {
	for _, s := range Sources {
		if s.Name == name {
			return s, true
		}
	}

	return Source{}, false
}

// Percentile group labels. Top 10%/5%/1% are nested supersets, not
// disjoint bins; Bottom 50% is derived by subtraction.
const (
	GroupBottom50 = "Bottom 50%"
	GroupTop1     = "Top 1%"
	GroupTop5     = "Top 5%"
	GroupTop10    = "Top 10%"
)

// GroupTop50 only appears as an entry threshold; the share tables
// derive the bottom 50% from its cumulative sum instead.
const GroupTop50 = "Top 50%"

// Slice selects one (year, state) snapshot.
type Slice struct {
	Year  int
	State string
}

// bracketRows filters t down to the bracket rows (agi_stub >= 1) for
// one state, and optionally one year (year > 0).
func bracketRows(t *soi.Table, state string, year int) (*soi.Table, error) {
	agg, e1 := t.EqInt(soi.ColBracket, soi.AggregateRow)
	if e1 != nil {
		return nil, e1
	}

	st, e2 := t.EqStr(soi.ColState, state)
	if e2 != nil {
		return nil, e2
	}

	mask := soi.And(soi.Not(agg), st)
	if year > 0 {
		yr, e3 := t.EqInt(soi.ColYear, year)
		if e3 != nil {
			return nil, e3
		}

		mask = soi.And(mask, yr)
	}

	return t.Where(mask)
}

// aggregateRows filters t down to the percentile summary rows
// (agi_stub == 0) for one state, and optionally one year (year > 0).
func aggregateRows(t *soi.Table, state string, year int) (*soi.Table, error) {
	agg, e1 := t.EqInt(soi.ColBracket, soi.AggregateRow)
	if e1 != nil {
		return nil, e1
	}

	st, e2 := t.EqStr(soi.ColState, state)
	if e2 != nil {
		return nil, e2
	}

	mask := soi.And(agg, st)
	if year > 0 {
		yr, e3 := t.EqInt(soi.ColYear, year)
		if e3 != nil {
			return nil, e3
		}

		mask = soi.And(mask, yr)
	}

	return t.Where(mask)
}
