package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.trai.ch/osw/internal/ui/output"
)

func (c *CLI) newMeasureCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "measure",
		Short: "Inspect and update measures",
	}
	cmd.AddCommand(c.newMeasureInfoCmd(), c.newMeasureUpdateCmd())
	return cmd
}

func (c *CLI) newMeasureInfoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "info <dir>",
		Short: "Show the arguments and outputs of a measure",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.cwdSettings(cmd); err != nil {
				return err
			}
			model, _ := cmd.Flags().GetString("model")
			info, err := c.app.MeasureInfo(cmd.Context(), args[0], model)
			if err != nil {
				return err
			}
			output.NewPrinter(cmd.OutOrStdout()).MeasureInfo(info)
			return nil
		},
	}
	cmd.Flags().StringP("model", "m", "", "Model to compute model-dependent arguments against")
	return cmd
}

func (c *CLI) newMeasureUpdateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "update <dir>",
		Short: "Recompute and save the metadata of a measure",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.cwdSettings(cmd); err != nil {
				return err
			}
			md, err := c.app.UpdateMeasure(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s (%s, %s)\n", md.Name, md.ClassName, md.MeasureType)
			return nil
		},
	}
}

// cwdSettings applies settings from the working directory for commands that
// do not need a workflow.
func (c *CLI) cwdSettings(cmd *cobra.Command) error {
	cwd, err := os.Getwd()
	if err != nil {
		return err
	}
	_, err = c.settings(cmd, cwd)
	return err
}
