package commands

import (
	"github.com/spf13/cobra"

	"github.com/gracelang/mason/internal/app"
)

func (c *CLI) newExamplesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "examples [dir]",
		Short: "Run every example program with the built interpreter",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			jobs, _ := cmd.Flags().GetInt("jobs")
			configuration, _ := cmd.Flags().GetString("configuration")

			opts := app.ExamplesOptions{
				Jobs:          jobs,
				Configuration: configuration,
			}
			if len(args) == 1 {
				opts.Dir = args[0]
			}

			return c.app.Examples(cmd.Context(), opts)
		},
	}

	cmd.Flags().IntP("jobs", "j", 0, "Number of programs to run in parallel (default 1)")
	cmd.Flags().StringP("configuration", "c", "", "Configuration of the interpreter to use (default Release)")

	return cmd
}
