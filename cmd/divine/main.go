// Command divine computes Qi Men Dun Jia charts and Taiyi readings.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Maximilian-Winter/taiyi-qi-men-dunjia/internal/calculation"
	"github.com/Maximilian-Winter/taiyi-qi-men-dunjia/internal/config"
	"github.com/Maximilian-Winter/taiyi-qi-men-dunjia/internal/domain"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// buildLogger creates the process logger (replaced in tests).
var buildLogger = func(verbose bool) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	return cfg.Build()
}

// app carries the state shared by every subcommand after flag parsing.
type app struct {
	configPath string
	format     string
	location   string
	timeFrame  string
	outputDir  string
	verbose    bool

	cfg    *domain.Configuration
	loc    *time.Location
	engine *calculation.Engine
	logger *zap.Logger
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	a := &app{}
	cmd := &cobra.Command{
		Use:   "divine",
		Short: "Qi Men Dun Jia and Taiyi Shenshu charts from a lunisolar calendar",
		Long: `divine converts instants to the Chinese lunisolar calendar and lays out
Qi Men Dun Jia charts and Taiyi Shenshu readings for them.

Times are RFC 3339, or 2006-01-02T15:04 in the configured location.
Omitting the time uses the current instant.

Civil days, and with them the lunar date and every pillar, are always
reckoned in the configured location (Asia/Shanghai unless changed), even
for a time given with an explicit offset such as 2025-07-13T16:26:00Z.
Pass --location UTC to read a UTC instant on the UTC calendar day.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVarP(&a.configPath, "config", "c", "", "YAML configuration file")
	pf.StringVarP(&a.format, "format", "f", "", "output format (console, console-lite, csv, detailed-csv, html, json, yaml)")
	pf.StringVarP(&a.location, "location", "l", "", "IANA time zone in which every time is read, including times with an explicit offset (default Asia/Shanghai)")
	pf.StringVar(&a.timeFrame, "frame", "", "Qi Men time frame: hour, day, month or year")
	pf.StringVarP(&a.outputDir, "output-dir", "o", "", "write a timestamped report file to this directory instead of stdout")
	pf.BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")

	cmd.AddCommand(
		newLunarCmd(a),
		newQiMenCmd(a),
		newTaiyiCmd(a),
		newChartCmd(a),
		newRangeCmd(a),
		newFormatsCmd(),
		newConfigCmd(),
	)
	return cmd
}

// setup loads the configuration, applies flag overrides and builds the engine.
func (a *app) setup(cmd *cobra.Command) error {
	loader := config.NewConfigLoader()
	cfg := domain.DefaultConfiguration()
	if a.configPath != "" {
		loaded, err := loader.LoadFromFile(a.configPath)
		if err != nil {
			return err
		}
		cfg = *loaded
	}
	flags := cmd.Flags()
	if flags.Changed("format") {
		cfg.Format = a.format
	}
	if flags.Changed("location") {
		cfg.Location = a.location
	}
	if flags.Changed("frame") {
		cfg.TimeFrame = a.timeFrame
	}
	if flags.Changed("verbose") {
		cfg.Verbose = a.verbose
	}
	if err := loader.ValidateConfiguration(&cfg); err != nil {
		return err
	}
	loc, err := loader.Location(&cfg)
	if err != nil {
		return err
	}
	frame, err := loader.TimeFrame(&cfg)
	if err != nil {
		return err
	}

	logger, err := buildLogger(cfg.Verbose)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	a.cfg, a.loc, a.logger = &cfg, loc, logger

	a.engine = calculation.NewEngine()
	a.engine.TimeFrame = frame
	a.engine.SetLogger(calculation.NewZapLogger(logger))
	logger.Debug("configured",
		zap.String("location", loc.String()),
		zap.String("format", cfg.Format),
		zap.String("frame", frame.English()),
		zap.Int("concurrency", cfg.Concurrency))
	return nil
}

// instant resolves the optional time argument.
func (a *app) instant(args []string) (time.Time, error) {
	if len(args) == 0 {
		return calculation.Now(a.loc), nil
	}
	t, err := config.ParseInstant(args[0], a.loc)
	if err != nil {
		return time.Time{}, err
	}
	return t.In(a.loc), nil
}
