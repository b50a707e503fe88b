package commands

import (
	"github.com/spf13/cobra"

	"github.com/gracelang/mason/internal/app"
)

func (c *CLI) newWatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch <exe|dll> <Debug|Release|All>",
		Short: "Rebuild whenever the source tree changes",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			jobs, _ := cmd.Flags().GetInt("jobs")

			return c.app.Watch(cmd.Context(), app.WatchOptions{
				Kind:     args[0],
				Selector: args[1],
				Jobs:     jobs,
			})
		},
	}

	cmd.Flags().IntP("jobs", "j", 0, "Number of parallel compile jobs (defaults to the settings value)")

	return cmd
}
