package cli

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/stackrow/pkg/config"
	"github.com/matzehuels/stackrow/pkg/errors"
	"github.com/matzehuels/stackrow/pkg/export"
)

const (
	formatJSON = "json"
	formatDOT  = "dot"
	formatSVG  = "svg"
)

// exportOpts holds the command-line flags for the export command.
type exportOpts struct {
	output   string // output file; stdout when empty
	format   string // json, dot or svg
	events   string // replay script applied before exporting
	detailed bool   // geometry in DOT node labels
}

// exportCommand creates the export command. It builds the configured row,
// optionally replays an event script against it, and writes the result.
func (c *CLI) exportCommand() *cobra.Command {
	opts := exportOpts{format: formatJSON}

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the row as JSON, DOT or SVG",
		Long: `Export the row as JSON, DOT or SVG.

With --events, a script of JSON events (one per line) is replayed first:

  {"type":"press","target":"beta","x":13,"y":1}
  {"type":"move","x":5,"y":1}
  {"type":"release"}

Event types are press, move, release, cancel, detach, remove and add.
Targets name items by ID or label.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateFormat(opts.format); err != nil {
				return err
			}
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			return runExport(cmd.Context(), cmd.OutOrStdout(), cmd.ErrOrStderr(), cfg, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default stdout)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", opts.format, "output format: json (default), dot, svg")
	cmd.Flags().StringVar(&opts.events, "events", "", "replay this event script before exporting")
	cmd.Flags().BoolVar(&opts.detailed, "detailed", false, "show item geometry (dot, svg)")

	return cmd
}

func validateFormat(f string) error {
	switch f {
	case formatJSON, formatDOT, formatSVG:
		return nil
	}
	return errors.New(errors.ErrCodeInvalidInput, "unknown format %q (want json, dot or svg)", f)
}

func runExport(ctx context.Context, w, errW io.Writer, cfg config.Config, opts exportOpts) error {
	logger := loggerFromContext(ctx)

	engine, err := newEngine(cfg, nil, logger)
	if err != nil {
		return err
	}

	if opts.events != "" {
		prog := newProgress(logger)
		n, err := replayFile(engine, opts.events)
		if err != nil {
			return err
		}
		prog.done(fmt.Sprintf("Replayed %d events", n))
	}
	if err := engine.Validate(); err != nil {
		return err
	}

	var data []byte
	switch opts.format {
	case formatJSON:
		var buf bytes.Buffer
		if err := export.ToJSON(&buf, engine); err != nil {
			return err
		}
		data = buf.Bytes()
	case formatDOT:
		data = []byte(export.ToDOT(engine, export.Options{Detailed: opts.detailed}))
	case formatSVG:
		spin := newSpinner(ctx, errW, "Rendering SVG...")
		spin.Start()
		data, err = export.RenderSVG(ctx, export.ToDOT(engine, export.Options{Detailed: opts.detailed}))
		spin.Stop()
		if err != nil {
			return err
		}
	}

	if opts.output == "" {
		_, err := w.Write(data)
		return err
	}
	if err := os.WriteFile(opts.output, data, 0o644); err != nil {
		return err
	}
	printSuccess(w, "Exported %s", opts.format)
	printFile(w, opts.output)
	return nil
}
