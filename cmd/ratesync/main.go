// Command ratesync fetches residential utility rate structures for all 50
// U.S. states from the OpenEI USURDB API, reconciles them against static
// reference data, and writes one JSON file per state plus a national
// rollup.
//
// Usage:
//
//	ratesync <api-key>
//
// The API key is the only required input. Tuning (output directory, retry
// counts, pacing) comes from an optional config.yaml in the working
// directory.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/time/rate"

	"github.com/solarcrm/ratesync/internal/config"
	"github.com/solarcrm/ratesync/internal/openei"
	"github.com/solarcrm/ratesync/internal/output"
	"github.com/solarcrm/ratesync/internal/pipeline"
	"github.com/solarcrm/ratesync/internal/reconcile"
	"github.com/solarcrm/ratesync/internal/reference"
)

const defaultConfigPath = "config.yaml"

var rootCmd = &cobra.Command{
	Use:   "ratesync <api-key>",
	Short: "Fetch and reconcile U.S. residential utility rates",
	Long: `ratesync queries the OpenEI USURDB rate API from multiple geographic
points per state, merges the results with EIA reference data, and emits
normalized per-state and national JSON files.`,
	Args: cobra.ExactArgs(1),
	RunE: run,
}

func run(cmd *cobra.Command, args []string) error {
	// Past argument validation the usage block is noise; runtime failures
	// should surface as a single error line.
	cmd.SilenceUsage = true

	apiKey := args[0]

	cfg, err := config.Load(defaultConfigPath)
	if err != nil {
		return err
	}

	logger := newLogger(cfg.Logging)
	logger.WithFields(logrus.Fields{
		"run_id":     uuid.NewString(),
		"output_dir": cfg.Output.Dir,
	}).Info("starting national rate sync")

	client, err := openei.NewClient(cfg.API, apiKey, logger)
	if err != nil {
		return err
	}

	writer, err := output.NewWriter(cfg.Output.Dir, logger)
	if err != nil {
		return err
	}

	tables := reference.Default()

	// The cooldown after every query is a correctness requirement for the
	// upstream service, not a performance knob.
	limiter := rate.NewLimiter(rate.Every(cfg.API.Cooldown()), 1)
	reconciler := reconcile.New(client, tables, limiter, logger)
	runner := pipeline.New(reconciler, tables, writer, logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if _, err := runner.Run(ctx); err != nil {
		return err
	}
	return nil
}

func newLogger(cfg config.LoggingConfig) *logrus.Logger {
	logger := logrus.New()
	if cfg.Format == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	}
	if level, err := logrus.ParseLevel(cfg.Level); err == nil {
		logger.SetLevel(level)
	} else {
		logger.SetLevel(logrus.InfoLevel)
		logger.WithField("level", cfg.Level).Warn("unknown log level, using info")
	}
	return logger
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
