package commands

import (
	"github.com/spf13/cobra"

	"github.com/gracelang/mason/internal/app"
)

func (c *CLI) newBenchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bench [script]",
		Short: "Time repeated interpreter runs of a benchmark script",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			iterations, _ := cmd.Flags().GetInt("iterations")
			configuration, _ := cmd.Flags().GetString("configuration")
			output, _ := cmd.Flags().GetString("output")

			opts := app.BenchOptions{
				Iterations:    iterations,
				Configuration: configuration,
				Output:        output,
			}
			if len(args) == 1 {
				opts.Script = args[0]
			}

			return c.app.Bench(cmd.Context(), opts)
		},
	}

	cmd.Flags().IntP("iterations", "n", 0, "Number of timed runs (defaults to the settings value)")
	cmd.Flags().StringP("configuration", "c", "", "Configuration of the interpreter to benchmark (default Release)")
	cmd.Flags().StringP("output", "o", "", "Write a JSON report to this path")

	return cmd
}
