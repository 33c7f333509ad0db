// Package cli implements the pkgstat command-line interface.
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/pkgstat/internal/config"
	"github.com/matzehuels/pkgstat/pkg/buildinfo"
	"github.com/matzehuels/pkgstat/pkg/observability"
	"github.com/matzehuels/pkgstat/pkg/terminal"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	out        io.Writer
	configPath string

	// rendererOpts are appended to the options derived from the config.
	rendererOpts []terminal.Option
}

// New creates a new CLI instance writing command output to out and logs to logOut.
func New(out, logOut io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(logOut, level),
		out:    out,
	}
}

// SetLogLevel updates the logger's level. At debug level every registry
// request is logged through the observability hooks.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
	if level <= log.DebugLevel {
		observability.SetHTTPHooks(newLogHooks(c.Logger))
	} else {
		observability.Reset()
	}
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "pkgstat",
		Short:        "pkgstat shows package metadata from a registry",
		Long:         `pkgstat fetches a package's metadata document from an npm-compatible registry and summarizes it, reporting progress in place on the terminal.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.SetOut(c.out)
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/pkgstat/config.toml)")

	root.AddCommand(c.infoCommand())
	root.AddCommand(c.configCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// loadConfig reads the config file selected by --config.
func (c *CLI) loadConfig() (config.Config, error) {
	return config.Load(c.configPath)
}

// newRenderer creates the status renderer for command output.
func (c *CLI) newRenderer(cfg config.Config) *terminal.Renderer {
	opts := []terminal.Option{
		terminal.WithInterval(cfg.Spinner.Interval.Duration),
		terminal.WithFramesAfter(cfg.Spinner.FramesAfter),
	}
	return terminal.New(c.out, append(opts, c.rendererOpts...)...)
}
