package main

import (
	"log/slog"

	"github.com/cpoulo2/il-income-inequality/export"
	"github.com/cpoulo2/il-income-inequality/figures"
	"github.com/cpoulo2/il-income-inequality/shares"
	"github.com/cpoulo2/il-income-inequality/soi"
)

// figure ids, used for file names and API routes
var figIDs = []string{"fig1", "fig2", "fig3", "fig4", "fig5", "fig6", "fig7", "fig8"}

// results holds everything one render derives from the table. A
// derivation that fails is logged and leaves its figure out; the
// others still render.
type results struct {
	tables export.Tables
	figs   map[string]*figures.Plot
}

func derive(log *slog.Logger, t *soi.Table, cfg *Config) *results {
	res := &results{figs: make(map[string]*figures.Plot)}
	slice := shares.Slice{Year: cfg.Year, State: cfg.State}

	fail := func(name string, err error) {
		log.Error("derivation failed", "derivation", name, "error", err)
	}

	if rows, err := shares.GroupShares(t, slice); err != nil {
		fail("group shares", err)
	} else {
		res.tables.Groups = rows
		res.figs["fig1"] = figures.IncomeGroups(rows, cfg.Year, cfg.State)
	}

	if pts, err := shares.TopBracketSeries(t, cfg.State); err != nil {
		fail("top bracket series", err)
	} else {
		res.tables.TopBracket = pts
		res.figs["fig2"] = figures.TopBracket(pts, cfg.State)
	}

	if pts, err := shares.PercentileSeries(t, cfg.State); err != nil {
		fail("percentile series", err)
	} else {
		res.tables.Percentiles = pts
		res.figs["fig3"] = figures.Percentiles(pts, cfg.State)
	}

	if rows, err := shares.SourcesByGroup(t, slice); err != nil {
		fail("sources by group", err)
	} else {
		res.tables.GroupSources = rows

		selected := shares.FilterSource(rows, cfg.SelectedSource)
		if len(selected) == 0 && len(rows) > 0 {
			log.Warn("selected source matches no rows", "source", cfg.SelectedSource)
		}

		res.figs["fig4"] = figures.SourceByGroup(selected, cfg.Year, cfg.State)
		res.figs["fig5"] = figures.SourceSharesByGroup(rows, cfg.Year, cfg.State)
	}

	if rows, err := shares.SourcesByPercentile(t, cfg.Year, cfg.State); err != nil {
		fail("sources by percentile", err)
	} else {
		res.tables.PercentileSources = rows
		res.figs["fig6"] = figures.SourceByPercentile(rows, cfg.Year, cfg.State)
		res.figs["fig7"] = figures.SourceSharesByPercentile(rows, cfg.Year, cfg.State)
	}

	if pts, err := shares.SourceSeries(t, cfg.State); err != nil {
		fail("source series", err)
	} else {
		res.tables.SourceTrend = pts
		res.figs["fig8"] = figures.SourceTrend(pts, cfg.State)
	}

	if s, err := shares.Summarize(t, cfg.State, cfg.FromYear, cfg.Year); err != nil {
		fail("summary", err)
	} else {
		res.tables.Summary = s
	}

	return res
}
