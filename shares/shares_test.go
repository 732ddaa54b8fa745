package shares

import (
	"testing"

	"github.com/cpoulo2/il-income-inequality/soi"
)

// fixtureRow maps column name to value; missing numeric columns load
// as zero, like blank cells in the real file.
type fixtureRow map[string]any

// columnOrder is the full fixture column set in file order.
func columnOrder() []string {
	names := []string{
		soi.ColState, soi.ColYear, soi.ColBracket, soi.ColBracketName,
		soi.ColReturns, soi.ColIncome, soi.ColAGI,
		"wages", "interest", "dividends", "business", "capital_gains", "s_corp",
		"total_agi",
	}

	sufs := []string{soi.SufTop1, soi.SufTop5, soi.SufTop10, soi.SufTop50}
	for _, stem := range []string{"agi", "sal", "int", "div", "businc", "cpgain", "scorp"} {
		for _, suf := range sufs {
			names = append(names, soi.SumCol(stem, suf))
		}
		if stem != "agi" {
			names = append(names, soi.TotalCol(stem))
		}
	}

	for _, suf := range sufs {
		names = append(names, soi.ThresholdCol(suf))
	}

	return names
}

func makeTable(t *testing.T, rows []fixtureRow) *soi.Table {
	t.Helper()

	strCols := map[string]bool{soi.ColState: true, soi.ColBracketName: true}
	intCols := map[string]bool{soi.ColYear: true, soi.ColBracket: true}

	var cols []*soi.Col
	for _, name := range columnOrder() {
		var (
			c *soi.Col
			e error
		)

		switch {
		case strCols[name]:
			x := make([]string, len(rows))
			for ind, r := range rows {
				if v, ok := r[name]; ok {
					x[ind] = v.(string)
				}
			}
			c, e = soi.NewCol(name, x)
		case intCols[name]:
			x := make([]int, len(rows))
			for ind, r := range rows {
				if v, ok := r[name]; ok {
					x[ind] = v.(int)
				}
			}
			c, e = soi.NewCol(name, x)
		default:
			x := make([]float64, len(rows))
			for ind, r := range rows {
				if v, ok := r[name]; ok {
					x[ind] = v.(float64)
				}
			}
			c, e = soi.NewCol(name, x)
		}

		if e != nil {
			t.Fatal(e)
		}

		cols = append(cols, c)
	}

	tbl, e := soi.NewTable(cols...)
	if e != nil {
		t.Fatal(e)
	}

	return tbl
}

func bracketRow(state string, year, stub int, label string, returns, inc, agi float64, src map[string]float64) fixtureRow {
	r := fixtureRow{
		soi.ColState: state, soi.ColYear: year, soi.ColBracket: stub, soi.ColBracketName: label,
		soi.ColReturns: returns, soi.ColIncome: inc, soi.ColAGI: agi,
	}
	for k, v := range src {
		r[k] = v
	}

	return r
}

func aggRow(state string, year int, vals map[string]float64) fixtureRow {
	r := fixtureRow{
		soi.ColState: state, soi.ColYear: year, soi.ColBracket: soi.AggregateRow, soi.ColBracketName: "Total",
	}
	for k, v := range vals {
		r[k] = v
	}

	return r
}

// testTable builds the shared fixture: Illinois 2012 and 2022 with
// three brackets (low, middle, $1M+) plus the aggregate rows, and a
// second state to prove the filters hold.
func testTable(t *testing.T) *soi.Table {
	t.Helper()

	rows := []fixtureRow{
		// IL 2022: returns 1000 total, income 10000 total
		bracketRow("IL", 2022, 1, "$1 under $25,000", 800, 4000, 4000, map[string]float64{
			"wages": 3200, "interest": 100, "dividends": 100, "business": 200, "capital_gains": 100, "s_corp": 100,
		}),
		bracketRow("IL", 2022, 2, "$25,000 under $100,000", 150, 3000, 3000, map[string]float64{
			"wages": 1800, "interest": 100, "dividends": 200, "business": 300, "capital_gains": 300, "s_corp": 200,
		}),
		bracketRow("IL", 2022, soi.TopBracket, "$1,000,000 or more", 50, 3000, 3000, map[string]float64{
			"wages": 600, "interest": 100, "dividends": 400, "business": 300, "capital_gains": 900, "s_corp": 600,
		}),
		aggRow("IL", 2022, map[string]float64{
			"total_agi": 10000, "sum_agi_01": 2100, "sum_agi_05": 3600, "sum_agi_10": 4700, "sum_agi_50": 8000,
			"total_sal_amt": 5600, "sum_sal_01": 300, "sum_sal_05": 700, "sum_sal_10": 1000, "sum_sal_50": 4000,
			"total_int_amt": 300, "sum_int_01": 80, "sum_int_05": 120, "sum_int_10": 160, "sum_int_50": 250,
			"total_div_amt": 700, "sum_div_01": 250, "sum_div_05": 350, "sum_div_10": 450, "sum_div_50": 600,
			"total_businc_amt": 800, "sum_businc_01": 200, "sum_businc_05": 300, "sum_businc_10": 400, "sum_businc_50": 650,
			"total_cpgain_amt": 1300, "sum_cpgain_01": 700, "sum_cpgain_05": 800, "sum_cpgain_10": 900, "sum_cpgain_50": 1200,
			"total_scorp_amt": 900, "sum_scorp_01": 500, "sum_scorp_05": 600, "sum_scorp_10": 650, "sum_scorp_50": 850,
			"agi_01": 600000, "agi_05": 250000, "agi_10": 150000, "agi_50": 45000,
		}),

		// IL 2012: returns 850 total, income 7000 total
		bracketRow("IL", 2012, 1, "$1 under $25,000", 700, 3500, 3500, map[string]float64{
			"wages": 3000, "interest": 100, "dividends": 100, "business": 100, "capital_gains": 100, "s_corp": 50,
		}),
		bracketRow("IL", 2012, 2, "$25,000 under $100,000", 120, 2000, 2000, map[string]float64{
			"wages": 1400, "interest": 100, "dividends": 100, "business": 150, "capital_gains": 100, "s_corp": 100,
		}),
		bracketRow("IL", 2012, soi.TopBracket, "$1,000,000 or more", 30, 1500, 1500, map[string]float64{
			"wages": 400, "interest": 50, "dividends": 200, "business": 150, "capital_gains": 400, "s_corp": 250,
		}),
		aggRow("IL", 2012, map[string]float64{
			"total_agi": 7000, "sum_agi_01": 1000, "sum_agi_05": 1800, "sum_agi_10": 2400, "sum_agi_50": 5600,
			"total_sal_amt": 4800, "sum_sal_01": 250, "sum_sal_05": 550, "sum_sal_10": 800, "sum_sal_50": 3400,
			"total_int_amt": 250, "sum_int_01": 60, "sum_int_05": 100, "sum_int_10": 130, "sum_int_50": 200,
			"total_div_amt": 400, "sum_div_01": 150, "sum_div_05": 200, "sum_div_10": 250, "sum_div_50": 350,
			"total_businc_amt": 400, "sum_businc_01": 100, "sum_businc_05": 150, "sum_businc_10": 200, "sum_businc_50": 350,
			"total_cpgain_amt": 600, "sum_cpgain_01": 300, "sum_cpgain_05": 350, "sum_cpgain_10": 400, "sum_cpgain_50": 550,
			"total_scorp_amt": 400, "sum_scorp_01": 200, "sum_scorp_05": 250, "sum_scorp_10": 300, "sum_scorp_50": 380,
			"agi_01": 450000, "agi_05": 180000, "agi_10": 110000, "agi_50": 38000,
		}),

		// a neighboring state that must never leak into IL results
		bracketRow("IN", 2022, 1, "$1 under $25,000", 400, 2000, 2000, map[string]float64{
			"wages": 1800, "interest": 50, "dividends": 50, "business": 50, "capital_gains": 25, "s_corp": 25,
		}),
		bracketRow("IN", 2022, soi.TopBracket, "$1,000,000 or more", 10, 500, 500, map[string]float64{
			"wages": 100, "interest": 25, "dividends": 75, "business": 50, "capital_gains": 150, "s_corp": 100,
		}),
		aggRow("IN", 2022, map[string]float64{
			"total_agi": 2500, "sum_agi_01": 400, "sum_agi_05": 700, "sum_agi_10": 950, "sum_agi_50": 1900,
		}),
	}

	return makeTable(t, rows)
}
