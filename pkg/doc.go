// Package pkg provides the libraries behind stackrow, a drag-to-reorder row
// engine with a free pool.
//
// # Overview
//
// A row holds items side by side. Dragging an item across a neighbour's
// centre swaps the two; dragging it off the row parks it in a free pool;
// dragging a parked item back over the row appends it at the tail. The pkg
// directory is organized as follows:
//
//  1. [row] - The engine: row, chain, pool, overlap detection and the drag
//     session state machine
//  2. [config] - TOML configuration (geometry, sample items, server address)
//  3. [export] - JSON snapshots, Graphviz DOT and SVG output
//  4. [server] - HTTP host driving an engine with JSON input events
//  5. [errors], [observability], [buildinfo] - Shared infrastructure
//
// # Architecture
//
// The host owns input capture and rendering. It translates pointer events
// into engine calls and receives visual notifications through [row.Layout]:
//
//	pointer input (terminal, HTTP, replay script)
//	         ↓
//	    [row.Engine] Press / Move / Release
//	         ↓
//	    [row.Layout] positions, shadows, drag markers
//	         ↓
//	    host rendering
//
// # Quick Start
//
//	cfg, _ := config.Load("stackrow.toml")
//	eng := row.New(nil, row.WithBounds(cfg.Bounds()))
//	for _, it := range cfg.Items {
//	    eng.AddItem(it)
//	}
//
//	first := eng.Order()[0]
//	eng.Press(first.ID, row.ButtonPrimary, 1, 0)
//	eng.Move(30, 0)
//	eng.Release()
//
//	dot := export.ToDOT(eng, export.Options{})
//	svg, _ := export.RenderSVG(ctx, dot)
//
// # Testing
//
//	go test ./pkg/...          # All tests
//	go test ./pkg/row/...      # Engine only
//	go test -run Example ./... # Examples only
//
// [row]: https://pkg.go.dev/github.com/matzehuels/stackrow/pkg/row
// [config]: https://pkg.go.dev/github.com/matzehuels/stackrow/pkg/config
// [export]: https://pkg.go.dev/github.com/matzehuels/stackrow/pkg/export
// [server]: https://pkg.go.dev/github.com/matzehuels/stackrow/pkg/server
// [errors]: https://pkg.go.dev/github.com/matzehuels/stackrow/pkg/errors
// [observability]: https://pkg.go.dev/github.com/matzehuels/stackrow/pkg/observability
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/stackrow/pkg/buildinfo
package pkg
