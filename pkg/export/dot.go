package export

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/stackrow/pkg/row"
)

// Options configures DOT output.
type Options struct {
	// Detailed adds geometry (x0, width) to node labels.
	Detailed bool
}

// ToDOT converts the snapshot of s to Graphviz DOT format.
func ToDOT(s Snapshotter, opts Options) string {
	snap := s.Snapshot()

	var buf bytes.Buffer
	buf.WriteString("digraph row {\n")
	buf.WriteString("  rankdir=LR;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=14];\n")
	buf.WriteString("\n")

	if len(snap.Order) > 0 {
		buf.WriteString("  subgraph cluster_row {\n")
		buf.WriteString("    label=\"row\";\n")
		for _, it := range snap.Order {
			fmt.Fprintf(&buf, "    %q [%s];\n", it.ID, strings.Join(fmtAttrs(it, snap.Dragging, opts), ", "))
		}
		buf.WriteString("  }\n")
	}

	if len(snap.Pool) > 0 {
		buf.WriteString("  subgraph cluster_pool {\n")
		buf.WriteString("    label=\"pool\";\n")
		buf.WriteString("    style=dashed;\n")
		for _, it := range snap.Pool {
			fmt.Fprintf(&buf, "    %q [%s];\n", it.ID, strings.Join(fmtAttrs(it, snap.Dragging, opts), ", "))
		}
		buf.WriteString("  }\n")
	}

	buf.WriteString("\n")
	for _, it := range snap.Order {
		if it.Next != "" {
			fmt.Fprintf(&buf, "  %q -> %q [label=\"next\"];\n", it.ID, it.Next)
		}
		if it.Prev != "" {
			fmt.Fprintf(&buf, "  %q -> %q [label=\"prev\", style=dotted];\n", it.ID, it.Prev)
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

func fmtLabel(it row.ItemState, detailed bool) string {
	if !detailed {
		return it.Label
	}
	return fmt.Sprintf("%s\nx0: %d\nwidth: %d", it.Label, it.X0, it.Width)
}

func fmtAttrs(it row.ItemState, dragging string, opts Options) []string {
	attrs := []string{fmt.Sprintf("label=%q", fmtLabel(it, opts.Detailed))}
	if it.Free {
		attrs = append(attrs, "style=\"rounded,filled,dashed\"", "fillcolor=lightgrey")
	}
	if it.ID == dragging {
		attrs = append(attrs, "penwidth=2", "color=teal")
	}
	return attrs
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}
