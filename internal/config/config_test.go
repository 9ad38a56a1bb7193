package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ".", cfg.DataDir)
	assert.Equal(t, 1, cfg.ReadConcurrency)
	assert.Empty(t, cfg.StatesShapefile)
	assert.Equal(t, ".", cfg.PlotDir)
	assert.Equal(t, "png", cfg.PlotFormat)
	assert.Equal(t, 8.0, cfg.PlotWidth)
	assert.Equal(t, 6.0, cfg.PlotHeight)
	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
}

func TestLoad_CustomEnv(t *testing.T) {
	t.Setenv("FARS_DATA_DIR", "/data/fars")
	t.Setenv("FARS_READ_CONCURRENCY", "4")
	t.Setenv("FARS_STATES_SHAPEFILE", "/data/tl_2024_us_state.shp")
	t.Setenv("FARS_PLOT_DIR", "/tmp/plots")
	t.Setenv("FARS_PLOT_FORMAT", "SVG")
	t.Setenv("FARS_PLOT_WIDTH", "10")
	t.Setenv("FARS_PLOT_HEIGHT", "7.5")
	t.Setenv("HTTP_ADDR", ":9090")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "text")
	t.Setenv("SHUTDOWN_TIMEOUT", "30s")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "/data/fars", cfg.DataDir)
	assert.Equal(t, 4, cfg.ReadConcurrency)
	assert.Equal(t, "/data/tl_2024_us_state.shp", cfg.StatesShapefile)
	assert.Equal(t, "/tmp/plots", cfg.PlotDir)
	assert.Equal(t, "svg", cfg.PlotFormat)
	assert.Equal(t, 10.0, cfg.PlotWidth)
	assert.Equal(t, 7.5, cfg.PlotHeight)
	assert.Equal(t, ":9090", cfg.HTTPAddr)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Equal(t, 30*time.Second, cfg.ShutdownTimeout)
}

func TestLoad_InvalidShutdownTimeout(t *testing.T) {
	t.Setenv("SHUTDOWN_TIMEOUT", "not-a-duration")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SHUTDOWN_TIMEOUT")
}

func TestLoad_InvalidReadConcurrency(t *testing.T) {
	for _, v := range []string{"0", "33", "many"} {
		t.Run(v, func(t *testing.T) {
			t.Setenv("FARS_READ_CONCURRENCY", v)
			_, err := Load()
			require.Error(t, err)
			assert.Contains(t, err.Error(), "FARS_READ_CONCURRENCY")
		})
	}
}

func TestLoad_InvalidPlotFormat(t *testing.T) {
	t.Setenv("FARS_PLOT_FORMAT", "gif")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "FARS_PLOT_FORMAT")
}

func TestLoad_InvalidPlotSize(t *testing.T) {
	t.Setenv("FARS_PLOT_WIDTH", "-2")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "FARS_PLOT_WIDTH")
}
