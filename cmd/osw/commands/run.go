package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/osw/internal/ui/output"
)

func (c *CLI) newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the workflow",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path, _, opts, err := c.runOptions(cmd)
			if err != nil {
				return err
			}
			res, err := c.app.Run(cmd.Context(), path, opts)
			if res != nil {
				output.NewPrinter(cmd.OutOrStdout()).RunSummary(res)
			}
			return err
		},
	}
	addRunFlags(cmd)
	return cmd
}
