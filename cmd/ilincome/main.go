// Command ilincome builds the income-inequality dashboard from IRS
// Statistics of Income data: it loads the dataset once, derives the
// share tables, renders the figures to a static site plus an xlsx
// workbook, and (optionally) serves the result.
package main

import (
	"context"
	"database/sql"
	"errors"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cpoulo2/il-income-inequality/soi"
)

func main() {
	serve := flag.Bool("serve", true, "serve the dashboard over HTTP after rendering")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg, err := loadConfig()
	if err != nil {
		logger.Error("bad configuration", "error", err)
		os.Exit(1)
	}

	tbl, err := loadTable(cfg)
	if err != nil {
		// a missing data file halts everything: there is nothing to
		// partially render
		if errors.Is(err, soi.ErrNotFound) {
			logger.Error("data file not found, ensure the CSV is in place", "path", cfg.DataPath)
		} else {
			logger.Error("load failed", "error", err)
		}
		os.Exit(1)
	}
	logger.Info("dataset loaded", "rows", tbl.RowCount(), "columns", tbl.ColumnCount())

	res := derive(logger.With("component", "derive"), tbl, cfg)

	if err = writeSite(cfg, res); err != nil {
		logger.Error("render failed", "error", err)
		os.Exit(1)
	}
	logger.Info("dashboard rendered", "dir", cfg.OutDir)

	if !*serve {
		return
	}

	srv := &http.Server{
		Addr:         cfg.Addr,
		Handler:      newRouter(cfg, res),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigChan
		logger.Info("shutdown signal received", "signal", sig.String())

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			logger.Error("server shutdown error", "error", err)
		}
	}()

	logger.Info("serving dashboard", "addr", cfg.Addr)
	if err = srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("server error", "error", err)
		os.Exit(1)
	}
}

// loadTable reads the dataset from whichever source is configured.
func loadTable(cfg *Config) (*soi.Table, error) {
	switch cfg.Source {
	case "clickhouse":
		db := soi.OpenClickHouse(cfg.ClickhouseAddr, cfg.ClickhouseDB, cfg.ClickhouseUser, cfg.ClickhousePassword)
		defer func() { _ = db.Close() }()

		return soi.LoadDB(db, cfg.Query)
	case "postgres":
		var (
			db *sql.DB
			e  error
		)
		if db, e = soi.OpenPostgres(cfg.PostgresDSN); e != nil {
			return nil, e
		}
		defer func() { _ = db.Close() }()

		return soi.LoadDB(db, cfg.Query)
	default:
		return soi.Load(cfg.DataPath)
	}
}
