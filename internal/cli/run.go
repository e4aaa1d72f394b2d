package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/matzehuels/stackrow/pkg/config"
)

// runOpts holds the command-line flags for the run command.
type runOpts struct {
	logFile string // log destination while the editor owns the terminal
}

// runCommand creates the run command, which opens the interactive row editor.
func (c *CLI) runCommand() *cobra.Command {
	var opts runOpts

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Open the interactive row editor",
		Long: `Open the interactive row editor.

Drag items with the left mouse button to reorder them. Dragging an item off
the row parks it in the free pool; dragging it back appends it to the row.
Press "a" to add an item, "esc" to cancel a drag and "q" to quit. The final
order is printed on exit.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			return c.runEditor(cmd, cfg, opts)
		},
	}

	cmd.Flags().StringVar(&opts.logFile, "log-file", "", "write logs to this file while the editor is open")

	return cmd
}

func (c *CLI) runEditor(cmd *cobra.Command, cfg config.Config, opts runOpts) error {
	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	// The terminal belongs to the editor until it exits.
	var logW io.Writer = io.Discard
	if opts.logFile != "" {
		f, err := os.OpenFile(opts.logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer f.Close()
		logW = f
	}
	c.Logger.SetOutput(logW)
	defer c.Logger.SetOutput(c.logOut)

	layout := newTermLayout()
	engine, err := newEngine(cfg, layout, c.Logger)
	if err != nil {
		return err
	}

	m := newRowModel(engine, layout, cfg.Row.ItemHeight, cfg.Row.DetachDistance)
	p := tea.NewProgram(m,
		tea.WithContext(ctx),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	if _, err := p.Run(); err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return err
	}

	if err := engine.Validate(); err != nil {
		printError(out, "row is inconsistent: %v", err)
		return err
	}
	printSuccess(out, "Final order: %s", strings.Join(orderLabels(engine), " "+iconArrow+" "))
	if n := len(engine.Pool()); n > 0 {
		printInfo(out, "%d item(s) left in the pool", n)
	}
	return nil
}
