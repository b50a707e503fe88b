package commands

import (
	"github.com/spf13/cobra"

	"github.com/gracelang/mason/internal/app"
)

func (c *CLI) newBuildCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build <exe|dll> <Debug|Release|All>",
		Short: "Configure and compile the interpreter",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			install, _ := cmd.Flags().GetBool("install")
			dryRun, _ := cmd.Flags().GetBool("dry-run")
			jobs, _ := cmd.Flags().GetInt("jobs")

			return c.app.Build(cmd.Context(), app.BuildOptions{
				Kind:     args[0],
				Selector: args[1],
				Install:  install,
				DryRun:   dryRun,
				Jobs:     jobs,
			})
		},
	}

	cmd.Flags().BoolP("install", "i", false, "Install artifacts after a successful build")
	cmd.Flags().Bool("dry-run", false, "Print the planned backend commands without executing them")
	cmd.Flags().IntP("jobs", "j", 0, "Number of parallel compile jobs (defaults to the settings value)")

	return cmd
}
