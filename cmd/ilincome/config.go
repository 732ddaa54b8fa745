package main

import (
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config is read from the environment (prefix ILINC_), with an
// optional .env file. The analysis itself takes no configuration; this
// only locates the data and shapes the render.
type Config struct {
	// data source: csv, clickhouse or postgres
	Source   string `default:"csv"`
	DataPath string `split_words:"true" default:"data.csv"`
	Query    string `default:"SELECT * FROM soi.returns"`

	ClickhouseAddr     string `split_words:"true" default:"127.0.0.1:9000"`
	ClickhouseDB       string `envconfig:"CLICKHOUSE_DB" default:"soi"`
	ClickhouseUser     string `split_words:"true" default:"default"`
	ClickhousePassword string `split_words:"true" default:""`
	PostgresDSN        string `envconfig:"POSTGRES_DSN" default:""`

	// what to render
	State    string `default:"IL"`
	Year     int    `default:"2022"`
	FromYear int    `split_words:"true" default:"2012"`
	// figure 4's selected source
	SelectedSource string `split_words:"true" default:"Wages and Salaries"`

	OutDir string `split_words:"true" default:"dashboard"`
	Addr   string `default:":8080"`
}

func loadConfig() (*Config, error) {
	// a missing .env just means the environment is already set
	_ = godotenv.Load()

	cfg := &Config{}
	if err := envconfig.Process("ilinc", cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}
