// Package export writes the derived share tables to an xlsx workbook,
// one sheet per figure basis, so the numbers behind the charts can be
// taken away and reworked.
package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/cpoulo2/il-income-inequality/shares"
)

// Tables collects every derived output for one dashboard render.
type Tables struct {
	Groups            []shares.GroupShare
	TopBracket        []shares.TopBracketPoint
	Percentiles       []shares.PercentilePoint
	GroupSources      []shares.GroupSource
	PercentileSources []shares.PercentileSource
	SourceTrend       []shares.SourcePoint
	Summary           *shares.Summary
}

// Workbook writes tbls to an xlsx file at path.
func Workbook(path string, tbls Tables) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	const first = "Income Groups"
	if err := f.SetSheetName("Sheet1", first); err != nil {
		return err
	}

	if err := writeSheet(f, first,
		[]any{"bracket", "label", "metric", "share"},
		len(tbls.Groups),
		func(i int) []any {
			r := tbls.Groups[i]
			return []any{r.Bracket, r.Label, r.Metric, r.Share}
		}); err != nil {
		return err
	}

	if err := writeSheet(f, "Top Bracket",
		[]any{"year", "share_of_returns", "share_of_income"},
		len(tbls.TopBracket),
		func(i int) []any {
			r := tbls.TopBracket[i]
			return []any{r.Year, r.ShareReturns, r.ShareIncome}
		}); err != nil {
		return err
	}

	if err := writeSheet(f, "Percentiles",
		[]any{"year", "group", "share"},
		len(tbls.Percentiles),
		func(i int) []any {
			r := tbls.Percentiles[i]
			return []any{r.Year, r.Group, r.Share}
		}); err != nil {
		return err
	}

	if err := writeSheet(f, "Sources by Group",
		[]any{"bracket", "label", "source", "amount", "share_of_bracket", "share_of_source"},
		len(tbls.GroupSources),
		func(i int) []any {
			r := tbls.GroupSources[i]
			return []any{r.Bracket, r.Label, r.Source, r.Amount, r.ShareOfBracket, r.ShareOfSource}
		}); err != nil {
		return err
	}

	if err := writeSheet(f, "Sources by Percentile",
		[]any{"group", "source", "amount", "share_of_group", "share_of_source"},
		len(tbls.PercentileSources),
		func(i int) []any {
			r := tbls.PercentileSources[i]
			return []any{r.Group, r.Source, r.Amount, r.ShareOfGroup, r.ShareOfSource}
		}); err != nil {
		return err
	}

	if err := writeSheet(f, "Source Trend",
		[]any{"year", "source", "share"},
		len(tbls.SourceTrend),
		func(i int) []any {
			r := tbls.SourceTrend[i]
			return []any{r.Year, r.Source, r.Share}
		}); err != nil {
		return err
	}

	if tbls.Summary != nil {
		if err := writeSummary(f, tbls.Summary); err != nil {
			return err
		}
	}

	return f.SaveAs(path)
}

func writeSheet(f *excelize.File, name string, header []any, n int, row func(int) []any) error {
	if idx, err := f.GetSheetIndex(name); err != nil {
		return err
	} else if idx < 0 {
		if _, err = f.NewSheet(name); err != nil {
			return err
		}
	}

	if err := f.SetSheetRow(name, "A1", &header); err != nil {
		return err
	}

	for i := 0; i < n; i++ {
		cell := fmt.Sprintf("A%d", i+2)
		r := row(i)
		if err := f.SetSheetRow(name, cell, &r); err != nil {
			return err
		}
	}

	return nil
}

func writeSummary(f *excelize.File, s *shares.Summary) error {
	const name = "Summary"
	if _, err := f.NewSheet(name); err != nil {
		return err
	}

	rows := [][]any{
		{"state", s.State},
		{"from_year", s.FromYear},
		{"to_year", s.ToYear},
		{"total_agi", s.TotalAGI},
		{"agi_change", s.AGIChange},
		{"growth_rate", s.GrowthRate},
		{"top_bracket_share", s.TopBracketShare},
		{"top_1pct_share", s.Top1Share},
	}

	for _, g := range []string{shares.GroupTop1, shares.GroupTop5, shares.GroupTop10, shares.GroupTop50} {
		if v, ok := s.Thresholds[g]; ok {
			rows = append(rows, []any{"threshold " + g, v})
		}
	}

	for i := range rows {
		cell := fmt.Sprintf("A%d", i+1)
		if err := f.SetSheetRow(name, cell, &rows[i]); err != nil {
			return err
		}
	}

	return nil
}
