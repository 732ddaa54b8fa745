package main

import (
	"fmt"
	"html/template"
	"os"
	"path/filepath"

	"github.com/cpoulo2/il-income-inequality/export"
	"github.com/cpoulo2/il-income-inequality/shares"
)

var indexTmpl = template.Must(template.New("index").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Who gets {{.State}}'s income and how do they get it?</title>
<style>
body { font-family: sans-serif; max-width: 900px; margin: 2em auto; }
iframe { border: none; width: 100%; height: 480px; }
</style>
</head>
<body>
<h1>Who gets {{.State}}'s income and how do they get it?</h1>
{{if .Summary}}
<h2>Summary of findings</h2>
<p>Between {{.Summary.FromYear}} and {{.Summary.ToYear}}, total annual gross income in {{.State}}
changed by ${{printf "%.1f" .ChangeMillions}} million, reaching ${{printf "%.1f" .TotalBillions}} billion
({{printf "%.1f" .GrowthPct}}%). In {{.Summary.ToYear}}, the top 1% of tax filers claimed
{{printf "%.0f" .Top1Pct}}% of reported income; millionaires and billionaires took home
{{printf "%.0f" .TopBracketPct}}%.</p>
{{end}}
{{range .Figures}}
<h2>Figure {{.Num}}</h2>
<iframe src="{{.File}}"></iframe>
{{end}}
<p><a href="tables.xlsx">Download the data behind the figures</a></p>
<h2>Notes on data source</h2>
<p>Tax return data comes from the IRS Statistics of Income (SOI) series. Only reported
income appears here; shares are of the reported totals.</p>
</body>
</html>
`))

type indexData struct {
	State   string
	Summary *shares.Summary

	ChangeMillions float64
	TotalBillions  float64
	GrowthPct      float64
	Top1Pct        float64
	TopBracketPct  float64

	Figures []figRef
}

type figRef struct {
	Num  int
	File string
}

// writeSite renders the static dashboard: one HTML page per figure, an
// index that frames them, and the xlsx workbook.
func writeSite(cfg *Config, res *results) error {
	if err := os.MkdirAll(cfg.OutDir, 0o755); err != nil {
		return err
	}

	data := indexData{State: cfg.State, Summary: res.tables.Summary}
	if s := res.tables.Summary; s != nil {
		data.ChangeMillions = s.AGIChange / 1e6
		data.TotalBillions = s.TotalAGI / 1e9
		data.GrowthPct = s.GrowthRate * 100
		data.Top1Pct = s.Top1Share * 100
		data.TopBracketPct = s.TopBracketShare * 100
	}

	for num, id := range figIDs {
		fig, ok := res.figs[id]
		if !ok {
			continue
		}

		file := id + ".html"
		fig.WriteHTML(filepath.Join(cfg.OutDir, file))
		data.Figures = append(data.Figures, figRef{Num: num + 1, File: file})
	}

	if err := export.Workbook(filepath.Join(cfg.OutDir, "tables.xlsx"), res.tables); err != nil {
		return fmt.Errorf("workbook export: %w", err)
	}

	f, err := os.Create(filepath.Join(cfg.OutDir, "index.html"))
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()

	return indexTmpl.Execute(f, data)
}
