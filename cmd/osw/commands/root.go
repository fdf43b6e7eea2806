// Package commands implements the CLI commands for osw.
package commands

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.trai.ch/osw/internal/adapters/config"
	"go.trai.ch/osw/internal/app"
	"go.trai.ch/osw/internal/build"
	"go.trai.ch/osw/internal/core/domain"
	"go.trai.ch/osw/internal/core/ports"
)

// Application represents the application logic interface.
type Application interface {
	Run(ctx context.Context, path string, opts app.RunOptions) (*domain.RunResult, error)
	Watch(ctx context.Context, path string, opts app.WatchOptions) error
	MeasureInfo(ctx context.Context, dir, modelPath string) (*domain.MeasureInfo, error)
	UpdateMeasure(ctx context.Context, dir string) (domain.MeasureMetadata, error)
	CacheSnapshot(ctx context.Context, path string, opts app.RunOptions) (domain.CacheSnapshot, error)
	ResetCache()
}

// logModes is implemented by loggers that can switch output format.
type logModes interface {
	SetJSON(enabled bool)
	SetQuiet(enabled bool)
}

// CLI represents the command line interface for osw.
type CLI struct {
	app     Application
	logger  ports.Logger
	rootCmd *cobra.Command
}

// New creates a new CLI instance with the given app. When logger supports
// output modes, the --json and --quiet flags and their settings apply to it.
func New(a Application, logger ports.Logger) *CLI {
	rootCmd := &cobra.Command{
		Use:           "osw",
		Short:         "Run building energy measure workflows",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.SetVersionTemplate(build.String() + "\n")
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	rootCmd.PersistentFlags().StringP("workflow", "w", "", "Path to the workflow file (default: discovered from the working directory)")
	rootCmd.PersistentFlags().Bool("json", false, "Log as JSON")
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "Only log warnings and errors")

	c := &CLI{
		app:     a,
		logger:  logger,
		rootCmd: rootCmd,
	}

	rootCmd.AddCommand(c.newRunCmd())
	rootCmd.AddCommand(c.newWatchCmd())
	rootCmd.AddCommand(c.newMeasureCmd())
	rootCmd.AddCommand(c.newCacheCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}

// workflowPath returns the --workflow flag or the workflow discovered from
// the working directory.
func workflowPath(cmd *cobra.Command) (string, error) {
	if path, _ := cmd.Flags().GetString("workflow"); path != "" {
		return filepath.Abs(path)
	}
	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	return config.Find(cwd)
}

// settings loads the settings next to dir and applies the persistent flags.
func (c *CLI) settings(cmd *cobra.Command, dir string) (config.Settings, error) {
	s, err := config.LoadSettings(dir)
	if err != nil {
		return s, err
	}
	if cmd.Flags().Changed("json") {
		s.LogJSON, _ = cmd.Flags().GetBool("json")
	}
	if cmd.Flags().Changed("quiet") {
		s.Quiet, _ = cmd.Flags().GetBool("quiet")
	}
	if lm, ok := c.logger.(logModes); ok {
		lm.SetJSON(s.LogJSON)
		lm.SetQuiet(s.Quiet)
	}
	return s, nil
}

// runOptions resolves the workflow and builds run options from settings and
// run flags.
func (c *CLI) runOptions(cmd *cobra.Command) (string, config.Settings, app.RunOptions, error) {
	path, err := workflowPath(cmd)
	if err != nil {
		return "", config.Settings{}, app.RunOptions{}, err
	}
	s, err := c.settings(cmd, filepath.Dir(path))
	if err != nil {
		return "", s, app.RunOptions{}, err
	}

	flags := cmd.Flags()
	if flags.Lookup("run-dir") != nil && flags.Changed("run-dir") {
		s.RunDir, _ = flags.GetString("run-dir")
	}
	if flags.Lookup("measure-path") != nil {
		extra, _ := flags.GetStringSlice("measure-path")
		s.MeasurePaths = append(s.MeasurePaths, extra...)
	}
	if flags.Lookup("timeout") != nil && flags.Changed("timeout") {
		s.StepTimeout, _ = flags.GetDuration("timeout")
	}
	if flags.Lookup("no-chdir") != nil && flags.Changed("no-chdir") {
		noChdir, _ := flags.GetBool("no-chdir")
		s.ChangeDir = !noChdir
	}
	force := false
	if flags.Lookup("force") != nil {
		force, _ = flags.GetBool("force")
	}

	return path, s, app.RunOptions{
		Overlay:     s.Apply,
		StepTimeout: s.StepTimeout,
		ChangeDir:   s.ChangeDir,
		ForceReload: force,
	}, nil
}

func addRunFlags(cmd *cobra.Command) {
	cmd.Flags().String("run-dir", "", "Directory receiving step directories and outputs")
	cmd.Flags().StringSlice("measure-path", nil, "Additional directory searched for measures")
	cmd.Flags().Duration("timeout", 0, "Limit for each measure call (0 means none)")
	cmd.Flags().Bool("no-chdir", false, "Do not run steps inside their step directories")
	cmd.Flags().BoolP("force", "f", false, "Reload the seed model even if it is cached")
}
