package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	sharedcfg "github.com/couchcryptid/storm-data-shared/config"
)

// Config holds all service settings, populated from environment variables.
type Config struct {
	DataDir         string
	ReadConcurrency int

	// Map rendering.
	StatesShapefile string
	PlotDir         string
	PlotFormat      string
	PlotWidth       float64 // inches
	PlotHeight      float64 // inches

	HTTPAddr        string
	LogLevel        string
	LogFormat       string
	ShutdownTimeout time.Duration
}

// Load reads configuration from environment variables, applying defaults where unset.
func Load() (*Config, error) {
	shutdownTimeout, err := sharedcfg.ParseShutdownTimeout()
	if err != nil {
		return nil, err
	}

	concurrency, err := parseIntRange("FARS_READ_CONCURRENCY", 1, 1, 32)
	if err != nil {
		return nil, err
	}

	width, err := parsePositiveFloat("FARS_PLOT_WIDTH", 8)
	if err != nil {
		return nil, err
	}
	height, err := parsePositiveFloat("FARS_PLOT_HEIGHT", 6)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		DataDir:         sharedcfg.EnvOrDefault("FARS_DATA_DIR", "."),
		ReadConcurrency: concurrency,
		StatesShapefile: os.Getenv("FARS_STATES_SHAPEFILE"),
		PlotDir:         sharedcfg.EnvOrDefault("FARS_PLOT_DIR", "."),
		PlotFormat:      strings.ToLower(sharedcfg.EnvOrDefault("FARS_PLOT_FORMAT", "png")),
		PlotWidth:       width,
		PlotHeight:      height,
		HTTPAddr:        sharedcfg.EnvOrDefault("HTTP_ADDR", ":8080"),
		LogLevel:        sharedcfg.EnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:       sharedcfg.EnvOrDefault("LOG_FORMAT", "json"),
		ShutdownTimeout: shutdownTimeout,
	}

	if cfg.DataDir == "" {
		return nil, errors.New("FARS_DATA_DIR is required")
	}
	switch cfg.PlotFormat {
	case "png", "svg":
	default:
		return nil, fmt.Errorf("invalid FARS_PLOT_FORMAT %q: want png or svg", cfg.PlotFormat)
	}

	return cfg, nil
}

func parseIntRange(key string, def, lo, hi int) (int, error) {
	s := os.Getenv(key)
	if s == "" {
		return def, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < lo || n > hi {
		return 0, fmt.Errorf("invalid %s: must be an integer between %d and %d", key, lo, hi)
	}
	return n, nil
}

func parsePositiveFloat(key string, def float64) (float64, error) {
	s := os.Getenv(key)
	if s == "" {
		return def, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v <= 0 {
		return 0, fmt.Errorf("invalid %s", key)
	}
	return v, nil
}
