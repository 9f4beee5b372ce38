// Package main is the entry point for roomgen.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/samdwyer/roomgen/internal/app"
	"github.com/samdwyer/roomgen/internal/telemetry"
)

func main() {
	// A missing .env is fine; variables may be set directly.
	envErr := godotenv.Load()

	cfg, err := app.ConfigFromEnv(app.DefaultConfig(), os.Getenv)
	if err != nil {
		fmt.Fprintf(os.Stderr, "roomgen: %v\n", err)
		os.Exit(2)
	}

	flag.Int64Var(&cfg.Seed, "seed", cfg.Seed, "random seed (0 picks one from the clock)")
	flag.IntVar(&cfg.Capacity, "capacity", cfg.Capacity, "number of rooms to generate")
	flag.IntVar(&cfg.CatalogSize, "catalog", cfg.CatalogSize, "number of catalog names to draw from")
	flag.StringVar(&cfg.OutputDir, "out", cfg.OutputDir, "parent directory for the run directory")
	flag.StringVar(&cfg.DirPrefix, "prefix", cfg.DirPrefix, "run directory prefix, as in <prefix>.rooms.<pid>")
	flag.StringVar(&cfg.ManifestPath, "manifest", cfg.ManifestPath, "write a YAML manifest to this path")
	flag.BoolVar(&cfg.Preview, "preview", cfg.Preview, "show the layout in the terminal when done")
	quiet := flag.Bool("quiet", false, "disable logging")
	flag.Parse()

	logger, err := newLogger(*quiet)
	if err != nil {
		fmt.Fprintf(os.Stderr, "roomgen: logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if envErr != nil {
		logger.Debug(".env file not loaded", zap.Error(envErr))
	}

	ctx := context.Background()

	if setupOTelEnv() {
		shutdown, err := telemetry.Setup(ctx)
		if err != nil {
			logger.Warn("Telemetry setup failed; continuing without tracing", zap.Error(err))
		} else {
			defer func() {
				if err := shutdown(ctx); err != nil {
					logger.Error("Error shutting down telemetry", zap.Error(err))
				}
			}()
		}
	}

	a, err := app.New(cfg, logger)
	if err != nil {
		logger.Fatal("Invalid configuration", zap.Error(err))
	}

	res, err := a.Run(ctx)
	if err != nil {
		logger.Fatal("Run failed", zap.Error(err))
	}
	logger.Info("Done", zap.String("dir", res.Dir), zap.Int64("seed", res.Seed))
}

// newLogger builds a production logger when ROOMGEN_ENV=production and a
// development logger otherwise.
func newLogger(quiet bool) (*zap.Logger, error) {
	if quiet {
		return zap.NewNop(), nil
	}
	if os.Getenv("ROOMGEN_ENV") == "production" {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}

// setupOTelEnv points the OTLP exporter at Honeycomb when an API key is set and
// reports whether tracing should be enabled. An explicit OTEL_EXPORTER_OTLP_ENDPOINT
// also enables tracing.
func setupOTelEnv() bool {
	apiKey := os.Getenv("HONEYCOMB_ROOMGEN_API_KEY")
	if apiKey == "" {
		return os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT") != ""
	}

	dataset := os.Getenv("HONEYCOMB_ROOMGEN_DATASET")
	if dataset == "" {
		dataset = "roomgen"
	}
	os.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "https://api.honeycomb.io")
	os.Setenv("OTEL_EXPORTER_OTLP_HEADERS",
		fmt.Sprintf("x-honeycomb-team=%s,x-honeycomb-dataset=%s", apiKey, dataset))
	return true
}
