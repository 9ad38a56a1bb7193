// Command fars summarizes FARS accident files and plots accident locations.
//
// Usage:
//
//	fars summary 2013 2014 2015 [--json]
//	fars map 6 2014
//	fars serve
//
// Settings come from the environment (FARS_DATA_DIR, FARS_STATES_SHAPEFILE,
// FARS_PLOT_DIR, LOG_LEVEL, ...); --data-dir and --plot-dir override them.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/couchcryptid/fars-accident-service/internal/config"
	"github.com/couchcryptid/fars-accident-service/internal/observability"
	"github.com/spf13/cobra"
)

var (
	cfg    *config.Config
	logger *slog.Logger

	dataDirFlag string
	plotDirFlag string
)

var rootCmd = &cobra.Command{
	Use:           "fars",
	Short:         "Summarize and map FARS fatal accident data",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		c, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		if dataDirFlag != "" {
			c.DataDir = dataDirFlag
		}
		if plotDirFlag != "" {
			c.PlotDir = plotDirFlag
		}
		cfg = c
		if cmd.Name() == serveCmd.Name() {
			logger = observability.NewLogger(cfg)
		} else {
			logger = observability.NewStderrLogger(cfg)
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dataDirFlag, "data-dir", "", "directory holding accident_<year>.csv.bz2 files")
	rootCmd.PersistentFlags().StringVar(&plotDirFlag, "plot-dir", "", "directory state maps are written to")
	rootCmd.AddCommand(summaryCmd, mapCmd, serveCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		if logger == nil {
			logger = slog.Default()
		}
		logger.Error("command failed", "error", err)
		os.Exit(1)
	}
}
