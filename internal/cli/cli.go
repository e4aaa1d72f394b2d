// Package cli implements the stackrow command-line interface.
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/stackrow/pkg/buildinfo"
	"github.com/matzehuels/stackrow/pkg/config"
	"github.com/matzehuels/stackrow/pkg/observability"
	"github.com/matzehuels/stackrow/pkg/row"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for display.
const appName = "stackrow"

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

	logOut io.Writer
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level), logOut: w}
}

// SetLogLevel updates the logger's level. At debug level the engine's
// observability hooks are routed to the logger as well.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
	if level <= log.DebugLevel {
		observability.SetEngineHooks(newLogHooks(c.Logger))
	}
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Stackrow rearranges a row of items by dragging them",
		Long:         `Stackrow is a drag-to-reorder row engine. Items can be dragged to swap places with their neighbours, dropped into a free-floating pool, and dragged back into the row.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().String("config", "", "config file (default $XDG_CONFIG_HOME/stackrow/config.toml)")

	// Register all subcommands
	root.AddCommand(c.runCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.exportCommand())
	root.AddCommand(c.configCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Shared Helpers
// =============================================================================

// loadConfig resolves the --config flag. A missing default file falls back
// to the built-in config; a missing explicit file is an error.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	if path != "" {
		return config.LoadOrDefault(path, true)
	}
	path, err := config.Path()
	if err != nil {
		return config.Default(), nil
	}
	return config.LoadOrDefault(path, false)
}

// newEngine builds an engine from cfg and adds the configured items in order.
func newEngine(cfg config.Config, layout row.Layout, logger *log.Logger) (*row.Engine, error) {
	e := row.New(layout,
		row.WithBounds(cfg.Bounds()),
		row.WithLogger(logger),
	)
	for _, item := range cfg.Items {
		if _, err := e.AddItem(item); err != nil {
			return nil, err
		}
	}
	return e, nil
}

// orderLabels returns the labels of the row items in chain order.
func orderLabels(e *row.Engine) []string {
	items := e.Order()
	labels := make([]string, len(items))
	for i, it := range items {
		labels[i] = it.Label
	}
	return labels
}
