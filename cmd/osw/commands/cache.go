package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.trai.ch/osw/internal/ui/output"
)

func (c *CLI) newCacheCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Show what the workflow inputs cache to",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path, _, opts, err := c.runOptions(cmd)
			if err != nil {
				return err
			}
			snap, err := c.app.CacheSnapshot(cmd.Context(), path, opts)
			if err != nil {
				return err
			}
			output.NewPrinter(cmd.OutOrStdout()).CacheSnapshot(snap)
			return nil
		},
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "reset",
		Short: "Drop every cached entry",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			c.app.ResetCache()
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "cache cleared")
		},
	})
	return cmd
}
