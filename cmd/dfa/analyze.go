package main

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/sartorproj/godfa/dfa"
	"github.com/sartorproj/godfa/timeseries"
)

func analyzeCmd() *cobra.Command {
	var (
		cfgPath string
		dataOut string
		csvOut  string
		quiet   bool
	)

	cfg := defaultConfig()
	flagCfg := defaultConfig()

	cmd := &cobra.Command{
		Use:   "analyze <file>",
		Short: "Run the DFA scaling sweep over a series file",
		Long: `Loads a time series from a whitespace-delimited text file or a CSV
file (chosen by extension), runs the DFA window-size sweep, and reports
the scaling exponent. The log-log curve can be exported with --data-out
and the linear curve with --csv-out.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if cfgPath != "" {
				if err := cfg.mergeFile(cfgPath); err != nil {
					return err
				}
			}

			// Flags override both defaults and the config file.
			if cmd.Flags().Changed("initial-window") {
				cfg.InitialWindowSize = flagCfg.InitialWindowSize
			}
			if cmd.Flags().Changed("steps") {
				cfg.Steps = flagCfg.Steps
			}
			if cmd.Flags().Changed("value-col") {
				cfg.ValueColumn = flagCfg.ValueColumn
			}
			if cmd.Flags().Changed("time-col") {
				cfg.TimeColumn = flagCfg.TimeColumn
			}
			if cmd.Flags().Changed("no-header") {
				cfg.NoHeader = flagCfg.NoHeader
			}

			return runAnalyze(args[0], cfg, dataOut, csvOut, quiet)
		},
	}

	cmd.Flags().StringVar(&cfgPath, "config", "", "yaml file with sweep defaults")
	cmd.Flags().IntVar(&flagCfg.InitialWindowSize, "initial-window", flagCfg.InitialWindowSize, "smallest window size of the sweep")
	cmd.Flags().IntVar(&flagCfg.Steps, "steps", flagCfg.Steps, "nominal number of sweep points")
	cmd.Flags().StringVar(&flagCfg.ValueColumn, "value-col", flagCfg.ValueColumn, "CSV column holding amplitudes")
	cmd.Flags().StringVar(&flagCfg.TimeColumn, "time-col", "", "CSV column holding the time axis")
	cmd.Flags().BoolVar(&flagCfg.NoHeader, "no-header", false, "treat the CSV as headerless (time,value layout)")
	cmd.Flags().StringVar(&dataOut, "data-out", "", "write the log-log curve to this file")
	cmd.Flags().StringVar(&csvOut, "csv-out", "", "write the linear curve to this CSV file")
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "suppress the progress bar")

	return cmd
}

func runAnalyze(path string, cfg config, dataOut, csvOut string, quiet bool) error {
	series, err := loadSeries(path, cfg)
	if err != nil {
		return err
	}

	log.Info().
		Str("file", path).
		Int("samples", series.Len()).
		Float64("mean", series.Mean()).
		Float64("std", series.Std()).
		Msg("series loaded")

	opts := dfa.Options{
		InitialWindowSize: cfg.InitialWindowSize,
		Steps:             cfg.Steps,
	}

	var bar *progressBar
	if !quiet {
		bar = newProgressBar(os.Stderr)
		opts.Progress = bar.update
	}

	start := time.Now()
	result, err := dfa.Analyze(series, &opts)
	if bar != nil {
		bar.done()
	}
	if err != nil {
		return err
	}

	log.Info().
		Float64("alpha", result.Alpha).
		Float64("intercept", result.Intercept).
		Int("points", len(result.Points)).
		Dur("elapsed", time.Since(start)).
		Msg("scaling sweep completed")

	if dataOut != "" {
		if err := writeArtifact(dataOut, result.WriteTable); err != nil {
			return err
		}
		log.Info().Str("file", dataOut).Msg("log-log curve written")
	}
	if csvOut != "" {
		if err := writeArtifact(csvOut, result.WriteCSV); err != nil {
			return err
		}
		log.Info().Str("file", csvOut).Msg("curve CSV written")
	}

	return nil
}

func loadSeries(path string, cfg config) (*timeseries.Series, error) {
	if strings.EqualFold(filepath.Ext(path), ".csv") {
		opts := timeseries.DefaultCSVOptions()
		opts.ValueColumn = cfg.ValueColumn
		opts.TimeColumn = cfg.TimeColumn
		opts.HasHeader = !cfg.NoHeader
		return timeseries.LoadCSV(path, opts)
	}
	return timeseries.LoadText(path)
}

func writeArtifact(path string, write func(w io.Writer) error) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()
	return write(file)
}
