// Package app wires configuration, layout generation, and descriptor output
// into a single generation run.
package app

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.uber.org/zap"

	"github.com/samdwyer/roomgen/internal/descriptor"
	"github.com/samdwyer/roomgen/internal/telemetry"
	"github.com/samdwyer/roomgen/internal/ui"
	"github.com/samdwyer/roomgen/internal/world"
)

// App runs one layout generation.
type App struct {
	cfg       Config
	logger    *zap.Logger
	runID     string
	seed      int64
	newScreen func() (*ui.Screen, error)
}

// Option customizes an App.
type Option func(*App)

// WithScreen replaces the terminal used by the preview.
func WithScreen(newScreen func() (*ui.Screen, error)) Option {
	return func(a *App) { a.newScreen = newScreen }
}

// Result describes what a run produced.
type Result struct {
	RunID        string
	Seed         int64
	Dir          string
	Files        []string
	ManifestPath string
	Layout       *world.Layout
}

// New validates cfg and creates an App. A zero seed is replaced by a
// time-based one so the run can be reproduced from the logs.
func New(cfg Config, logger *zap.Logger, opts ...Option) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	a := &App{
		cfg:       cfg,
		logger:    logger,
		runID:     uuid.New().String(),
		seed:      seed,
		newScreen: ui.NewScreen,
	}
	for _, opt := range opts {
		opt(a)
	}
	a.logger = a.logger.With(zap.String("run_id", a.runID))
	return a, nil
}

// Run generates a layout, verifies it, writes one descriptor per room into a
// fresh directory, and then writes the manifest and shows the preview if
// configured. Nothing is written unless the layout verifies.
func (a *App) Run(ctx context.Context) (*Result, error) {
	tracer := telemetry.Tracer("app")
	ctx, span := tracer.Start(ctx, "app.run")
	defer span.End()

	span.SetAttributes(
		attribute.String("run.id", a.runID),
		attribute.Int64("run.seed", a.seed),
	)

	res, err := a.run(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "run failed")
		return nil, err
	}
	span.SetAttributes(attribute.String("run.dir", res.Dir))
	return res, nil
}

func (a *App) run(ctx context.Context) (*Result, error) {
	a.logger.Info("Generating layout",
		zap.Int("capacity", a.cfg.Capacity),
		zap.Int("catalog_size", a.cfg.CatalogSize),
		zap.Int64("seed", a.seed),
	)

	layout, err := world.NewLayout(a.cfg.Params(), rand.New(rand.NewSource(a.seed)))
	if err != nil {
		return nil, err
	}
	if err := layout.Generate(ctx); err != nil {
		return nil, fmt.Errorf("generate layout: %w", err)
	}
	if err := layout.Verify(); err != nil {
		return nil, err
	}

	stats := layout.Stats()
	a.logger.Info("Layout generated",
		zap.Int("rooms", len(layout.Rooms)),
		zap.Int("edges", stats.Edges),
		zap.Int("iterations", stats.Iterations),
		zap.Int("draws", stats.Draws),
		zap.String("start", layout.Start().Name()),
		zap.String("end", layout.End().Name()),
		zap.Int("start_to_end", layout.PathLength(layout.Start().NameIndex, layout.End().NameIndex)),
	)
	if !layout.Connected() {
		a.logger.Warn("Layout is not connected; some rooms cannot be reached from the start")
	}

	dir, err := descriptor.CreateRunDir(a.cfg.OutputDir, a.cfg.DirPrefix)
	if err != nil {
		return nil, err
	}
	files, err := descriptor.WriteLayout(ctx, dir, layout)
	if err != nil {
		return nil, err
	}
	for _, f := range files {
		a.logger.Debug("Wrote room", zap.String("path", f))
	}
	a.logger.Info("Rooms written", zap.String("dir", dir), zap.Int("files", len(files)))

	res := &Result{
		RunID:  a.runID,
		Seed:   a.seed,
		Dir:    dir,
		Files:  files,
		Layout: layout,
	}

	if a.cfg.ManifestPath != "" {
		m := descriptor.NewManifest(a.runID, a.seed, dir, layout)
		if err := descriptor.WriteManifest(a.cfg.ManifestPath, m); err != nil {
			return nil, err
		}
		res.ManifestPath = a.cfg.ManifestPath
		a.logger.Info("Manifest written", zap.String("path", a.cfg.ManifestPath))
	}

	if a.cfg.Preview {
		if err := a.preview(layout); err != nil {
			return nil, fmt.Errorf("preview: %w", err)
		}
	}

	return res, nil
}
