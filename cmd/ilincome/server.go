package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
)

// newRouter serves the rendered site plus a small JSON API: the figure
// specs (plotly JSON) and the tidy tables behind them.
func newRouter(cfg *Config, res *results) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, req *http.Request) {
		render.JSON(w, req, map[string]string{"status": "ok"})
	})

	r.Get("/api/figures/{id}", func(w http.ResponseWriter, req *http.Request) {
		id := chi.URLParam(req, "id")
		fig, ok := res.figs[id]
		if !ok {
			render.Status(req, http.StatusNotFound)
			render.JSON(w, req, map[string]string{"error": "no such figure: " + id})
			return
		}

		render.JSON(w, req, fig.Fig)
	})

	r.Get("/api/tables/{id}", func(w http.ResponseWriter, req *http.Request) {
		id := chi.URLParam(req, "id")
		tbl, ok := tableByID(res, id)
		if !ok {
			render.Status(req, http.StatusNotFound)
			render.JSON(w, req, map[string]string{"error": "no such table: " + id})
			return
		}

		render.JSON(w, req, tbl)
	})

	r.Handle("/*", http.FileServer(http.Dir(cfg.OutDir)))

	return r
}

func tableByID(res *results, id string) (any, bool) {
	switch id {
	case "groups":
		return res.tables.Groups, true
	case "top-bracket":
		return res.tables.TopBracket, true
	case "percentiles":
		return res.tables.Percentiles, true
	case "group-sources":
		return res.tables.GroupSources, true
	case "percentile-sources":
		return res.tables.PercentileSources, true
	case "source-trend":
		return res.tables.SourceTrend, true
	case "summary":
		return res.tables.Summary, true
	default:
		return nil, false
	}
}
