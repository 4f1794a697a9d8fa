package main

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/Maximilian-Winter/taiyi-qi-men-dunjia/internal/calculation"
	"github.com/Maximilian-Winter/taiyi-qi-men-dunjia/internal/config"
	"github.com/Maximilian-Winter/taiyi-qi-men-dunjia/internal/domain"
	"github.com/Maximilian-Winter/taiyi-qi-men-dunjia/internal/output"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

func newLunarCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "lunar [time]",
		Short: "Convert an instant to its lunar date and four pillars",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := a.instant(args)
			if err != nil {
				return err
			}
			ld, err := a.engine.Lunar(t)
			if err != nil {
				return err
			}
			return writeLunar(cmd.OutOrStdout(), a.cfg.Format, ld, calculation.AnalyzePillars(ld))
		},
	}
}

func newQiMenCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "qimen [time]",
		Short: "Lay out the Qi Men Dun Jia chart",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.single(cmd, args, func(r *domain.Report) { r.Taiyi = nil })
		},
	}
}

func newTaiyiCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "taiyi [time]",
		Short: "Compute the Taiyi Shenshu reading",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.single(cmd, args, func(r *domain.Report) { r.QiMen = nil })
		},
	}
}

func newChartCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "chart [time]",
		Short: "Full report: lunar date, Qi Men chart and Taiyi reading",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.single(cmd, args, nil)
		},
	}
}

func newRangeCmd(a *app) *cobra.Command {
	var from, to string
	var step time.Duration
	cmd := &cobra.Command{
		Use:   "range",
		Short: "Compute reports for every step between two instants",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			start, err := config.ParseInstant(from, a.loc)
			if err != nil {
				return fmt.Errorf("--from: %w", err)
			}
			end, err := config.ParseInstant(to, a.loc)
			if err != nil {
				return fmt.Errorf("--to: %w", err)
			}
			instants, err := calculation.Instants(start.In(a.loc), end.In(a.loc), step)
			if err != nil {
				return err
			}
			a.logger.Info("computing range",
				zap.Time("from", start), zap.Time("to", end),
				zap.Int("instants", len(instants)), zap.Int("concurrency", a.cfg.Concurrency))
			reports, err := a.engine.ComputeReports(cmd.Context(), instants, a.cfg.Concurrency)
			if err != nil {
				return err
			}
			return a.emit(cmd.OutOrStdout(), reports)
		},
	}
	cmd.Flags().StringVar(&from, "from", "", "first instant (required)")
	cmd.Flags().StringVar(&to, "to", "", "last instant (required)")
	cmd.Flags().DurationVar(&step, "step", 2*time.Hour, "distance between instants")
	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("to")
	return cmd
}

func newFormatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "formats",
		Short: "List output formats and their aliases",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := cmd.OutOrStdout()
			for _, name := range output.AvailableFormatterNames() {
				fmt.Fprintln(w, name)
			}
			for _, alias := range output.AvailableFormatAliases() {
				fmt.Fprintf(w, "%s -> %s\n", alias, output.NormalizeFormatName(alias))
			}
			return nil
		},
	}
}

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage configuration files",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "init [path]",
		Short: "Write an example configuration",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "divine.yaml"
			if len(args) == 1 {
				path = args[0]
			}
			example := config.NewConfigLoader().CreateExampleConfiguration()
			if err := output.SaveConfiguration(example, path); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
			return nil
		},
	})
	return cmd
}

// single computes one report, trims it with trim and emits it.
func (a *app) single(cmd *cobra.Command, args []string, trim func(*domain.Report)) error {
	t, err := a.instant(args)
	if err != nil {
		return err
	}
	report, err := a.engine.ComputeReport(t)
	if err != nil {
		return err
	}
	if trim != nil {
		trim(report)
	}
	return a.emit(cmd.OutOrStdout(), []*domain.Report{report})
}

// emit writes reports to w, or to a file when an output directory is set.
func (a *app) emit(w io.Writer, reports []*domain.Report) error {
	if a.outputDir != "" {
		path, err := output.GenerateReport(reports, a.cfg.Format, a.outputDir)
		if err != nil {
			return err
		}
		a.logger.Info("report written", zap.String("path", path))
		fmt.Fprintln(w, path)
		return nil
	}
	if len(reports) == 1 {
		return output.Render(w, a.cfg.Format, reports[0])
	}
	return output.RenderAll(w, a.cfg.Format, reports)
}

type lunarView struct {
	LunarDate   domain.LunarDate         `json:"lunar_date" yaml:"lunar_date"`
	Composition domain.PillarComposition `json:"pillar_composition" yaml:"pillar_composition"`
}

// writeLunar renders the lunar date alone; structured formats get the data,
// every other format the text summary.
func writeLunar(w io.Writer, format string, ld *domain.LunarDate, comp domain.PillarComposition) error {
	view := lunarView{LunarDate: *ld, Composition: comp}
	switch output.NormalizeFormatName(format) {
	case "json":
		data, err := json.MarshalIndent(view, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	case "yaml":
		enc := yaml.NewEncoder(w)
		if err := enc.Encode(view); err != nil {
			return err
		}
		return enc.Close()
	}
	fmt.Fprintf(w, "%s (%s)\n", ld, ld.Numeric())
	fmt.Fprintf(w, "年 %s  月 %s  日 %s  時 %s\n", ld.YearPillar, ld.MonthPillar, ld.DayPillar, ld.HourPillar)
	fmt.Fprintf(w, "%s (%s), solar longitude %.2f°\n", ld.SolarTerm, ld.SolarTerm.English(), ld.SolarLongitude)
	fmt.Fprintf(w, "Cycle %d, year %d of 60\n", ld.Cycle, ld.YearInCycle)
	fmt.Fprintf(w, "Dominant %s, weak %s\n", elementList(comp.Dominant), elementList(comp.Weak))
	return nil
}

func elementList(es []domain.Element) string {
	s := ""
	for i, e := range es {
		if i > 0 {
			s += " "
		}
		s += e.String()
	}
	if s == "" {
		return "none"
	}
	return s
}
