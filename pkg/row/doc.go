// Package row implements a drag-to-reorder engine for a single row of items
// with a free-floating pool for items dragged out of the row.
//
// # Overview
//
// A [Row] keeps an ordered sequence of [Item] values together with a
// doubly-linked chain (each item knows its left and right neighbour). The
// chain answers neighbour queries in O(1) while an item is being dragged;
// the sequence gives the host the left-to-right order at any settle point.
// Both always agree: a swap exchanges the two sequence slots as well as the
// links.
//
// Items dragged out of the row's bounds move to the free pool. Pool items
// stay draggable and rejoin the row at its tail once they are brought back
// over it.
//
// # Engine
//
// [Engine] is the drag controller. The host owns input capture and calls the
// three handlers in temporal order:
//
//	eng := row.New(layout, row.WithBounds(row.VerticalBounds(3)))
//	a, _ := eng.AddItem(row.ItemConfig{Label: "a", Width: 10})
//	eng.AddItem(row.ItemConfig{Label: "b", Width: 10})
//
//	eng.Press(a.ID, row.ButtonPrimary, 2, 0)
//	eng.Move(14, 0) // a passes b's centre and the two swap
//	eng.Release()   // a snaps into the slot right of b
//
// The engine owns all geometry. It updates an item's position first and then
// notifies the host's [Layout], which only has to draw (and optionally
// animate) the change.
//
// # Concurrency
//
// An Engine is not safe for concurrent use. Hosts that receive input from
// several goroutines must serialize calls; the HTTP host in pkg/server does
// this with a mutex.
package row
