package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/maxtek/threadpool/internal/config"
	"github.com/maxtek/threadpool/internal/demo"
)

func NewDemoCommand(cfg *config.Configuration) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Run producer and consumer tasks over a shared bounded buffer",
		Args:  cobra.NoArgs,
		PreRunE: func(_ *cobra.Command, _ []string) error {
			switch output {
			case "text", "json", "yaml":
				return nil
			default:
				return fmt.Errorf("invalid output %q: must be 'text', 'json' or 'yaml'", output)
			}
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			pool, err := newPool(cfg.Pool, nil)
			if err != nil {
				return err
			}
			defer pool.Close()

			zap.S().Infow("starting demo", "demo", cfg.Demo.DebugMap(), "workers", pool.Workers())

			report, err := demo.Run(cmd.Context(), pool, cfg.Demo)
			if err != nil {
				return fmt.Errorf("demo failed: %w", err)
			}

			if err := printReport(cmd.OutOrStdout(), output, report); err != nil {
				return err
			}
			if report.Produced != report.Consumed || report.ProducedSum != report.ConsumedSum {
				return fmt.Errorf("demo lost items: produced %d, consumed %d", report.Produced, report.Consumed)
			}
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&output, "output", "o", "text", "Report format: 'text', 'json' or 'yaml'")
	registerDemoFlags(flags, &cfg.Demo)

	return cmd
}

func printReport(w io.Writer, format string, report *demo.Report) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	case "yaml":
		enc := yaml.NewEncoder(w)
		defer enc.Close()
		return enc.Encode(report)
	}

	fmt.Fprintf(w, "produced %d items (sum %d)\n", report.Produced, report.ProducedSum)
	fmt.Fprintf(w, "consumed %d items (sum %d)\n", report.Consumed, report.ConsumedSum)
	fmt.Fprintf(w, "elapsed  %s\n", report.Elapsed)
	if report.Produced == report.Consumed && report.ProducedSum == report.ConsumedSum {
		fmt.Fprintln(w, color.GreenString("OK"))
	} else {
		fmt.Fprintln(w, color.RedString("MISMATCH"))
	}
	return nil
}

func registerDemoFlags(flags *pflag.FlagSet, d *config.Demo) {
	flags.IntVar(&d.Producers, "producers", d.Producers, "Number of producer tasks")
	flags.IntVar(&d.Consumers, "consumers", d.Consumers, "Number of consumer tasks")
	flags.IntVar(&d.Items, "items", d.Items, "Items pushed by each producer")
	flags.IntVar(&d.BufferSize, "buffer-size", d.BufferSize, "Capacity of the shared buffer")
	flags.DurationVar(&d.MaxRetryInterval, "max-retry-interval", d.MaxRetryInterval, "Backoff cap when the buffer is full or empty")
	flags.DurationVar(&d.DemoTimeout, "demo-timeout", d.DemoTimeout, "Upper bound for a demo run")
}
