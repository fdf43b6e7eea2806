package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/osw/internal/app"
	"go.trai.ch/osw/internal/core/domain"
	"go.trai.ch/osw/internal/ui/output"
)

func (c *CLI) newWatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Run the workflow and re-run it when its inputs change",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path, s, opts, err := c.runOptions(cmd)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("debounce") {
				s.DebounceWindow, _ = cmd.Flags().GetDuration("debounce")
			}

			printer := output.NewPrinter(cmd.OutOrStdout())
			return c.app.Watch(cmd.Context(), path, app.WatchOptions{
				RunOptions: opts,
				Debounce:   s.DebounceWindow,
				OnResult: func(res *domain.RunResult, err error) {
					if res != nil {
						printer.RunSummary(res)
					}
					if err != nil {
						cmd.PrintErrln("Error: " + err.Error())
					}
				},
			})
		},
	}
	addRunFlags(cmd)
	cmd.Flags().Duration("debounce", 0, "Quiet period after the last change before re-running")
	return cmd
}
