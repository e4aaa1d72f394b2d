// Package export renders the state of a row engine for inspection.
//
// [ToJSON] writes the row order and the pool as JSON, for hosts that want to
// persist or post-process the order after a drop. [ToDOT] draws the chain as
// a Graphviz digraph: row items form a left-to-right chain of next/prev
// edges, pool items float unconnected with dashed outlines, and the dragged
// item is highlighted. [RenderSVG] turns DOT into SVG via go-graphviz.
package export
