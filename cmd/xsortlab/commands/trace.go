package commands

import (
	"github.com/spf13/cobra"

	"github.com/five82/xsortlab/internal/app"
)

func newTraceCommand(g *globalFlags) *cobra.Command {
	var (
		algorithm string
		size      int
		seed      uint64
		values    []int
	)

	cmd := &cobra.Command{
		Use:   "trace",
		Short: "Print every step of one sort",
		Long: `Print each event a sort produces, in order, with the array after every move
or swap. Pass --values to sort a specific array, for example --values 3,1,2.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := app.LoadConfig(app.Options{
				ConfigPath: g.configPath,
				ArraySize:  size,
				Algorithm:  algorithm,
				Seed:       seed,
			})
			if err != nil {
				return err
			}

			return app.Trace(cmd.Context(), cmd.OutOrStdout(), app.TraceOptions{
				Algorithm: cfg.Algorithm,
				Size:      cfg.ArraySize,
				Values:    values,
				Generator: app.NewGenerator(cfg.Seed),
			})
		},
	}

	cmd.Flags().StringVarP(&algorithm, "algorithm", "a", "", "algorithm: bubble, selection, insertion, merge, quick")
	cmd.Flags().IntVarP(&size, "size", "n", 0, "items in the generated array (2-64, default from config)")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "seed for the array generator (0 = random)")
	cmd.Flags().IntSliceVar(&values, "values", nil, "explicit array to sort, comma separated")

	return cmd
}
