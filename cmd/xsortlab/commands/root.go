package commands

import (
	"context"
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/five82/xsortlab/internal/app"
)

// globalFlags are shared by every command.
type globalFlags struct {
	configPath string
	logLevel   string
	noColor    bool
}

// Execute runs the root command
func Execute(ctx context.Context, version, commit, buildDate string) error {
	rootCmd := newRootCommand(version, commit, buildDate)
	return rootCmd.ExecuteContext(ctx)
}

func newRootCommand(version, commit, buildDate string) *cobra.Command {
	g := &globalFlags{}
	var (
		prefsPath   string
		algorithm   string
		size        int
		seed        uint64
		metricsAddr string
	)

	rootCmd := &cobra.Command{
		Use:   "xsortlab",
		Short: "xsortlab - watch sorting algorithms step by step",
		Long: `xsortlab animates bubble, selection, insertion, merge and quick sort one
comparison or copy at a time, with narration of every step.

Run without a subcommand to start the interactive viewer. Use "bench" to time
sorts headless and "trace" to print every step of a run.`,
		Version:       fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, buildDate),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if g.noColor {
				lipgloss.SetColorProfile(termenv.Ascii)
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.Run(cmd.Context(), app.Options{
				ConfigPath:  g.configPath,
				PrefsPath:   prefsPath,
				ArraySize:   size,
				Algorithm:   algorithm,
				Seed:        seed,
				LogLevel:    g.logLevel,
				MetricsAddr: metricsAddr,
			})
		},
	}

	// Persistent flags available to all commands
	rootCmd.PersistentFlags().StringVarP(&g.configPath, "config", "c", "", "config file path (default ~/.config/xsortlab/config.toml)")
	rootCmd.PersistentFlags().StringVar(&g.logLevel, "log-level", "", "log level: trace, debug, info, warn, error")
	rootCmd.PersistentFlags().BoolVar(&g.noColor, "no-color", false, "disable colored output")

	rootCmd.Flags().StringVar(&prefsPath, "prefs", "", "preferences file path (default ~/.config/xsortlab/prefs.toml)")
	rootCmd.Flags().StringVarP(&algorithm, "algorithm", "a", "", "starting algorithm: bubble, selection, insertion, merge, quick")
	rootCmd.Flags().IntVarP(&size, "size", "n", 0, "number of bars (2-64)")
	rootCmd.Flags().Uint64Var(&seed, "seed", 0, "seed for the array generator (0 = random)")
	rootCmd.Flags().StringVar(&metricsAddr, "metrics-addr", "", "serve Prometheus metrics on host:port")

	// Add subcommands
	rootCmd.AddCommand(newBenchCommand(g))
	rootCmd.AddCommand(newTraceCommand(g))
	rootCmd.AddCommand(newVersionCommand(version, commit, buildDate))

	return rootCmd
}

func newVersionCommand(version, commit, buildDate string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "xsortlab %s (commit: %s, built: %s)\n", version, commit, buildDate)
		},
	}
}
