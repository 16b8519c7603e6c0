package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/five82/xsortlab/internal/app"
	"github.com/five82/xsortlab/internal/logging"
	"github.com/five82/xsortlab/internal/metrics"
	"github.com/five82/xsortlab/internal/results"
)

func newBenchCommand(g *globalFlags) *cobra.Command {
	var (
		algorithm string
		size      int
		count     int
		seed      uint64
		format    string
	)

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Time sorts of many random arrays without animation",
		Long: `Sort --count random arrays of --size items with one algorithm, as fast as
possible, and report the total and average comparisons and copies.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := results.ParseFormat(format)
			if err != nil {
				return err
			}
			cfg, err := app.LoadConfig(app.Options{
				ConfigPath: g.configPath,
				ArraySize:  size,
				Algorithm:  algorithm,
				Seed:       seed,
				LogLevel:   g.logLevel,
			})
			if err != nil {
				return err
			}

			logger, closer, err := logging.New(logging.Options{
				Level:   cfg.LogLevel,
				Console: cmd.ErrOrStderr(),
				NoColor: g.noColor,
			})
			if err != nil {
				return fmt.Errorf("init logging: %w", err)
			}
			defer func() { _ = closer.Close() }()


			r, err := app.Bench(cmd.Context(), app.BenchOptions{
				Algorithm: cfg.Algorithm,
				Size:      cfg.ArraySize,
				Count:     count,
				Generator: app.NewGenerator(cfg.Seed),
				Recorder:  metrics.New(),
				Logger:    logger,
			})
			if err != nil {
				return err
			}
			return results.Write(cmd.OutOrStdout(), f, []results.TimedSortResult{r})
		},
	}

	cmd.Flags().StringVarP(&algorithm, "algorithm", "a", "", "algorithm: bubble, selection, insertion, merge, quick")
	cmd.Flags().IntVarP(&size, "size", "n", 0, "items per array (2-64, default from config)")
	cmd.Flags().IntVar(&count, "count", 10, "number of arrays to sort")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "seed for the array generator (0 = random)")
	cmd.Flags().StringVarP(&format, "format", "o", "table", "output format: table, json, yaml")

	return cmd
}
