package soi

import "fmt"

// Key columns of the SOI dataset.
const (
	ColState       = "state"
	ColYear        = "year"
	ColBracket     = "agi_stub"
	ColBracketName = "agi_stub_cat"
	ColReturns     = "returns"
	ColIncome      = "inc"
	ColAGI         = "agi"
)

// TopBracket is the agi_stub code of the highest income bracket
// ($1M or more of reported income).
const TopBracket = 10

// AggregateRow is the agi_stub code reserved for the per-(state, year)
// percentile summary row. Bracket rows and aggregate rows carry
// disjoint measures and are never mixed in one computation.
const AggregateRow = 0

// Percentile cumulative-sum suffixes as they appear in column names:
// sum_agi_01 is AGI of the top 1%, sum_agi_50 of the top 50%, and so
// on. Thresholds use the same suffixes (agi_01 .. agi_50).
const (
	SufTop1  = "01"
	SufTop5  = "05"
	SufTop10 = "10"
	SufTop50 = "50"
)

// SumCol names a percentile cumulative-sum column, e.g.
// SumCol("agi", SufTop10) -> "sum_agi_10".
func SumCol(stem, suffix string) string {
	return fmt.Sprintf("sum_%s_%s", stem, suffix)
}

// TotalCol names a dataset-wide source total column, e.g.
// TotalCol("sal") -> "total_sal_amt".
func TotalCol(stem string) string {
	return fmt.Sprintf("total_%s_amt", stem)
}

// ThresholdCol names an AGI entry-threshold column, e.g.
// ThresholdCol(SufTop1) -> "agi_01".
func ThresholdCol(suffix string) string {
	return "agi_" + suffix
}

// Schema declares the column types of the SOI file. Declared columns
// are coerced strictly at load time; a cell that does not parse fails
// the load with a *SchemaError. Undeclared columns load as float when
// every cell parses, as string otherwise.
type Schema struct {
	strCols map[string]bool
	intCols map[string]bool
	fltCols map[string]bool
}

// Kind reports the declared kind of a column, KindUnknown if the
// column is not declared.
func (s *Schema) Kind(name string) Kind {
	switch {
	case s.strCols[name]:
		return KindString
	case s.intCols[name]:
		return KindInt
	case s.fltCols[name]:
		return KindFloat
	default:
		return KindUnknown
	}
}

// sourceStems are the per-source column stems used by the percentile
// aggregate fields (total_<stem>_amt, sum_<stem>_XX).
var sourceStems = []string{"agi", "sal", "int", "div", "businc", "cpgain", "scorp"}

// bracketAmountCols are the per-bracket source-of-income amounts.
var bracketAmountCols = []string{
	"wages", "interest", "dividends", "business", "capital_gains", "s_corp",
}

// DataSchema returns the declared schema of the SOI dataset.
func DataSchema() *Schema {
	s := &Schema{
		strCols: map[string]bool{ColState: true, ColBracketName: true},
		intCols: map[string]bool{ColYear: true, ColBracket: true},
		fltCols: map[string]bool{ColReturns: true, ColIncome: true, ColAGI: true},
	}

	for _, c := range bracketAmountCols {
		s.fltCols[c] = true
	}

	sufs := []string{SufTop1, SufTop5, SufTop10, SufTop50}
	for _, suf := range sufs {
		s.fltCols[ThresholdCol(suf)] = true
	}

	s.fltCols["total_agi"] = true
	for _, stem := range sourceStems {
		for _, suf := range sufs {
			s.fltCols[SumCol(stem, suf)] = true
		}
		if stem != "agi" {
			s.fltCols[TotalCol(stem)] = true
		}
	}

	return s
}
