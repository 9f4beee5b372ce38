package app

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/samdwyer/roomgen/internal/world"
)

// ErrInvalidConfig wraps every configuration validation failure.
var ErrInvalidConfig = errors.New("app: invalid configuration")

var validate = validator.New()

// Config holds generation and output options.
type Config struct {
	// Seed for random number generation. Used for reproducible layouts.
	// A seed of 0 means a random seed will be generated.
	Seed int64

	Capacity    int `validate:"min=2,ltefield=CatalogSize"`
	CatalogSize int `validate:"min=1,max=10"`

	// OutputDir is where the per-run directory <DirPrefix>.rooms.<pid> is created.
	OutputDir string `validate:"required"`
	DirPrefix string `validate:"required,excludesall=/"`

	// ManifestPath, when set, receives a YAML summary of the run.
	ManifestPath string

	// Preview shows the layout in the terminal after writing it.
	Preview bool
}

// DefaultConfig returns seven rooms from the full catalog written under the
// working directory.
func DefaultConfig() Config {
	p := world.DefaultParams()
	return Config{
		Capacity:    p.Capacity,
		CatalogSize: p.CatalogSize,
		OutputDir:   ".",
		DirPrefix:   "roomgen",
	}
}

// Params returns the layout sizes from the config.
func (c Config) Params() world.Params {
	return world.Params{
		Capacity:    c.Capacity,
		CatalogSize: c.CatalogSize,
	}
}

// Validate checks field constraints, then the layout feasibility rules.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, formatValidationError(err))
	}
	if err := world.ValidateParams(c.Params()); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}

// ConfigFromEnv overrides fields of base with ROOMGEN_* variables read through getenv.
// Unset or empty variables leave the base value alone.
func ConfigFromEnv(base Config, getenv func(string) string) (Config, error) {
	cfg := base

	ints := []struct {
		key string
		dst *int
	}{
		{"ROOMGEN_CAPACITY", &cfg.Capacity},
		{"ROOMGEN_CATALOG_SIZE", &cfg.CatalogSize},
	}
	for _, v := range ints {
		raw := getenv(v.key)
		if raw == "" {
			continue
		}
		n, err := strconv.Atoi(raw)
		if err != nil {
			return base, fmt.Errorf("%s: %w", v.key, err)
		}
		*v.dst = n
	}

	if raw := getenv("ROOMGEN_SEED"); raw != "" {
		seed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return base, fmt.Errorf("ROOMGEN_SEED: %w", err)
		}
		cfg.Seed = seed
	}
	if raw := getenv("ROOMGEN_PREVIEW"); raw != "" {
		preview, err := strconv.ParseBool(raw)
		if err != nil {
			return base, fmt.Errorf("ROOMGEN_PREVIEW: %w", err)
		}
		cfg.Preview = preview
	}
	if raw := getenv("ROOMGEN_OUTPUT_DIR"); raw != "" {
		cfg.OutputDir = raw
	}
	if raw := getenv("ROOMGEN_DIR_PREFIX"); raw != "" {
		cfg.DirPrefix = raw
	}
	if raw := getenv("ROOMGEN_MANIFEST"); raw != "" {
		cfg.ManifestPath = raw
	}

	return cfg, nil
}

// formatValidationError turns validator field errors into one readable line.
func formatValidationError(err error) string {
	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) {
		return err.Error()
	}

	msgs := make([]string, 0, len(fieldErrors))
	for _, e := range fieldErrors {
		field := strings.ToLower(e.Field())
		switch e.Tag() {
		case "required":
			msgs = append(msgs, fmt.Sprintf("%s is required", field))
		case "min":
			msgs = append(msgs, fmt.Sprintf("%s must be at least %s", field, e.Param()))
		case "max":
			msgs = append(msgs, fmt.Sprintf("%s must be at most %s", field, e.Param()))
		case "ltefield":
			msgs = append(msgs, fmt.Sprintf("%s must not exceed %s", field, strings.ToLower(e.Param())))
		case "excludesall":
			msgs = append(msgs, fmt.Sprintf("%s must not contain %q", field, e.Param()))
		default:
			msgs = append(msgs, fmt.Sprintf("%s is invalid", field))
		}
	}
	return strings.Join(msgs, "; ")
}
