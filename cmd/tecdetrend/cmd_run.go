package main

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/sartorproj/tecdetrend/detrend"
	"github.com/sartorproj/tecdetrend/internal/config"
	"github.com/sartorproj/tecdetrend/stats"
	"github.com/sartorproj/tecdetrend/timeseries"
)

// Run flags
var (
	runConfigPath string
	runOutput     string
	runRadius     int
	runWindow     time.Duration
	runWorkers    int
	runColumn     string
)

// runCmd implements 'tecdetrend run'
var runCmd = &cobra.Command{
	Use:   "run <input.csv>",
	Short: "Detrend a CSV series with the rolling barrel",
	Long: `Read a timestamped series from CSV, fit a local line over a window of
2*radius+1 samples around every row and write the trend and detrended values
next to the original column.

Examples:
  tecdetrend run tec.csv --radius 25 --output tec_detrended.csv
  tecdetrend run tec.csv --window 30m --workers 4
  tecdetrend run tec.csv --config run.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runDetrend,
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringVar(&runConfigPath, "config", "", "Path to YAML run configuration")
	runCmd.Flags().StringVarP(&runOutput, "output", "o", "", "Output CSV path (default: stdout)")
	runCmd.Flags().IntVar(&runRadius, "radius", 25, "Barrel half-width in samples")
	runCmd.Flags().DurationVar(&runWindow, "window", 0, "Barrel half-width in time; overrides --radius")
	runCmd.Flags().IntVar(&runWorkers, "workers", 1, "Goroutines used for the index loop")
	runCmd.Flags().StringVar(&runColumn, "column", "TEC", "Name of the observation column")
}

func runDetrend(cmd *cobra.Command, args []string) error {
	cfg, err := resolveRunConfig(cmd)
	if err != nil {
		return err
	}

	series, err := timeseries.LoadCSV(args[0], csvOptions(cfg))
	if err != nil {
		return fmt.Errorf("failed to load series: %w", err)
	}
	log.Info().Str("file", args[0]).Str("column", series.Name).Int("samples", series.Len()).Msg("loaded series")

	radius := cfg.Radius
	if cfg.Window > 0 {
		radius, err = radiusForWindow(series, cfg.Window)
		if err != nil {
			return err
		}
		log.Debug().Dur("window", cfg.Window).Int("radius", radius).Msg("converted window to radius")
	}

	est := detrend.Estimator{Radius: radius, Workers: cfg.Workers}
	start := time.Now()
	result, err := est.EstimateSeries(series)
	if err != nil {
		return fmt.Errorf("failed to detrend: %w", err)
	}
	log.Info().Int("radius", radius).Int("workers", cfg.Workers).Dur("elapsed", time.Since(start)).
		Float64("residual_std", result.Residual()).Msg("detrended series")

	columns := []*timeseries.Series{result.Trend, result.Detrended}
	if cfg.Output.Gradient {
		rate, err := stats.AbsGradient(result.Detrended.Values, result.Hours)
		if err != nil {
			log.Warn().Err(err).Msg("skipping gradient column")
		} else {
			columns = append(columns, series.WithValues(rate, "abs_gradient"))
		}
	}

	if runOutput == "" {
		return timeseries.WriteTable(os.Stdout, series, columns...)
	}
	if err := timeseries.SaveTable(runOutput, series, columns...); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	log.Info().Str("file", runOutput).Msg("wrote result table")
	return nil
}

// resolveRunConfig loads the optional config file and applies explicitly set
// flags on top of it.
func resolveRunConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if runConfigPath != "" {
		loaded, err := config.Load(runConfigPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("radius") {
		cfg.Radius = runRadius
	}
	if flags.Changed("window") {
		cfg.Window = runWindow
	}
	if flags.Changed("workers") {
		cfg.Workers = runWorkers
	}
	if flags.Changed("column") {
		cfg.Input.ValueColumn = runColumn
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid run configuration: %w", err)
	}
	return cfg, nil
}

func csvOptions(cfg *config.Config) *timeseries.CSVOptions {
	opts := timeseries.DefaultCSVOptions()
	opts.ValueColumn = cfg.Input.ValueColumn
	opts.DateColumn = cfg.Input.DateColumn
	opts.DateFormat = cfg.Input.DateFormat
	opts.IDColumn = cfg.Input.IDColumn
	opts.IDFilter = cfg.Input.IDFilter
	opts.Delimiter = cfg.Input.DelimiterRune()
	opts.SkipRows = cfg.Input.SkipRows
	opts.HasHeader = !cfg.Input.NoHeader
	return opts
}

// radiusForWindow converts a wall-clock half-width using the mean sampling
// interval of the series.
func radiusForWindow(series *timeseries.Series, window time.Duration) (int, error) {
	n := len(series.Timestamps)
	if n < 2 {
		return 0, nil
	}
	step := series.Timestamps[n-1].Sub(series.Timestamps[0]) / time.Duration(n-1)
	radius, err := detrend.RadiusForDuration(window, step)
	if err != nil {
		return 0, fmt.Errorf("failed to convert window %v: %w", window, err)
	}
	return radius, nil
}
