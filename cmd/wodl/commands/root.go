// Package commands implements the CLI commands for wodl.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/wodl/internal/app"
	"go.trai.ch/wodl/internal/build"
	"go.trai.ch/wodl/internal/core/domain"
)

// CLI represents the command line interface for wodl.
type CLI struct {
	app     Application
	logs    LogConfigurer
	rootCmd *cobra.Command
}

// Application represents the application logic interface.
type Application interface {
	Export(ctx context.Context, opts app.ExportOptions) error
	CacheStatus(ctx context.Context, configPath string) (domain.CacheFreshness, error)
	CleanCache(ctx context.Context, configPath string) error
}

// LogConfigurer switches the log format and level. The logger adapter implements it.
type LogConfigurer interface {
	SetJSON(enabled bool)
	SetVerbose(enabled bool)
}

// Option configures the CLI.
type Option func(*CLI)

// WithLogConfigurer lets --json-logs and --verbose reach the logger.
func WithLogConfigurer(lc LogConfigurer) Option {
	return func(c *CLI) {
		c.logs = lc
	}
}

// New creates a new CLI instance with the given app.
func New(a Application, opts ...Option) *CLI {
	c := &CLI{app: a}
	for _, opt := range opts {
		opt(c)
	}

	rootCmd := &cobra.Command{
		Use:           "wodl",
		Short:         "Download UpKeep work orders with their assets, locations and users as CSV",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			c.configureLogs(cmd)
		},
		RunE: c.runExport,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	rootCmd.PersistentFlags().StringP("config", "c", "", "Path to the configuration file (default wodl.yaml)")
	rootCmd.PersistentFlags().Bool("json-logs", false, "Write logs as JSON lines")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Log every lookup and other debug details")
	addExportFlags(rootCmd)

	c.rootCmd = rootCmd

	rootCmd.AddCommand(c.newExportCmd())
	rootCmd.AddCommand(c.newCacheCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

func (c *CLI) configureLogs(cmd *cobra.Command) {
	if c.logs == nil {
		return
	}
	jsonLogs, _ := cmd.Flags().GetBool("json-logs")
	verbose, _ := cmd.Flags().GetBool("verbose")
	c.logs.SetJSON(jsonLogs)
	c.logs.SetVerbose(verbose)
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
