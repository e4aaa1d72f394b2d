package row

import (
	"slices"

	"github.com/matzehuels/stackrow/pkg/errors"
)

// Row is the ordered sequence of laid-out items plus the free pool.
//
// The sequence and the prev/next chain always hold the same order. Every item
// is in exactly one of the sequence or the pool.
type Row struct {
	items  []*Item
	pool   []*Item
	layout Layout
}

// NewRow creates an empty row that reports visual changes to l.
// A nil layout is replaced by [NopLayout].
func NewRow(l Layout) *Row {
	if l == nil {
		l = NopLayout{}
	}
	return &Row{layout: l}
}

// Len returns the number of items in the row (the pool is not counted).
func (r *Row) Len() int { return len(r.items) }

// Items returns the row items from left to right.
func (r *Row) Items() []*Item { return slices.Clone(r.items) }

// Pool returns the detached items in the order they were detached.
func (r *Row) Pool() []*Item { return slices.Clone(r.pool) }

// Head returns the leftmost item, or nil for an empty row.
func (r *Row) Head() *Item {
	if len(r.items) == 0 {
		return nil
	}
	return r.items[0]
}

// Tail returns the rightmost item, or nil for an empty row.
func (r *Row) Tail() *Item {
	if len(r.items) == 0 {
		return nil
	}
	return r.items[len(r.items)-1]
}

// Contains reports whether it is currently laid out in the row.
func (r *Row) Contains(it *Item) bool {
	return it != nil && it.slot >= 0 && it.slot < len(r.items) && r.items[it.slot] == it
}

// Append links it at the tail of the row and returns it. If the row is not
// empty, it is positioned right of the current tail. An item coming from the
// pool leaves it; appending an item already in the row is a no-op.
func (r *Row) Append(it *Item, animate bool) *Item {
	if r.Contains(it) {
		return it
	}
	r.removeFromPool(it)

	it.prev, it.next = nil, nil
	it.free = false

	if tail := r.Tail(); tail != nil {
		r.positionRightOf(it, tail, animate)
		it.prev = tail
		tail.next = it
	}

	it.slot = len(r.items)
	r.items = append(r.items, it)
	return it
}

// Detach removes it from the row and moves it to the pool. Each item that
// followed it is repositioned once, flush against its new predecessor or at
// the origin if it became the head. It returns the number of repositioned
// items.
//
// Detaching an item that is not in the row changes nothing and returns an
// error with code [errors.ErrCodeNotInRow].
func (r *Row) Detach(it *Item) (int, error) {
	if !r.Contains(it) {
		return 0, errors.New(errors.ErrCodeNotInRow, "detach: %s is not in the row", itemID(it))
	}

	idx := it.slot
	r.items = slices.Delete(r.items, idx, idx+1)
	for i := idx; i < len(r.items); i++ {
		r.items[i].slot = i
	}

	prev, next := it.prev, it.next
	if prev != nil {
		prev.next = next
	}
	if next != nil {
		next.prev = prev
	}
	it.prev, it.next = nil, nil
	it.free = true
	it.slot = -1
	r.pool = append(r.pool, it)

	moved := 0
	for cur := next; cur != nil; cur = cur.next {
		if cur.prev != nil {
			r.positionRightOf(cur, cur.prev, true)
		} else {
			r.animateTo(cur, ToX(0))
		}
		moved++
	}
	return moved, nil
}

// Locate resolves a visual handle to its item, searching the row first and
// then the pool. It returns nil if no item has that ID.
func (r *Row) Locate(id string) *Item {
	for _, it := range r.items {
		if it.ID == id {
			return it
		}
	}
	for _, it := range r.pool {
		if it.ID == id {
			return it
		}
	}
	return nil
}

// Swap exchanges the chain positions (and sequence slots) of two neighbouring
// row items. No other item's links change. Items that are not neighbours are
// rejected with [errors.ErrCodeNotNeighbors] and the row is left untouched.
func (r *Row) Swap(a, b *Item) error {
	if a == nil || b == nil || a == b {
		return errors.New(errors.ErrCodeInvalidInput, "swap: need two distinct items")
	}
	if !r.Contains(a) || !r.Contains(b) {
		return errors.New(errors.ErrCodeNotInRow, "swap: %s and %s must both be in the row", a.ID, b.ID)
	}
	if a.next != b && a.prev != b {
		return errors.New(errors.ErrCodeNotNeighbors, "swap: %s and %s are not neighbours", a.ID, b.ID)
	}

	aNext, aPrev := a.next, a.prev

	a.next = b.next
	if b.next == a {
		a.next = b
	}
	a.prev = b.prev
	if b.prev == a {
		a.prev = b
	}
	b.next = aNext
	if aNext == b {
		b.next = a
	}
	b.prev = aPrev
	if aPrev == b {
		b.prev = a
	}

	if a.next != nil {
		a.next.prev = a
	}
	if a.prev != nil {
		a.prev.next = a
	}
	if b.next != nil {
		b.next.prev = b
	}
	if b.prev != nil {
		b.prev.next = b
	}

	r.items[a.slot], r.items[b.slot] = b, a
	a.slot, b.slot = b.slot, a.slot
	return nil
}

// Validate checks the row invariants and returns an error with code
// [errors.ErrCodeCorruptChain] describing the first violation found.
func (r *Row) Validate() error {
	seen := make(map[*Item]bool, len(r.items)+len(r.pool))
	last := len(r.items) - 1

	for i, it := range r.items {
		if seen[it] {
			return corrupt("%s appears twice in the row", it.ID)
		}
		seen[it] = true

		switch {
		case it.free:
			return corrupt("row item %s is marked free", it.ID)
		case it.slot != i:
			return corrupt("row item %s has slot %d, want %d", it.ID, it.slot, i)
		case i == 0 && it.prev != nil:
			return corrupt("head %s has prev %s", it.ID, it.prev.ID)
		case i > 0 && it.prev != r.items[i-1]:
			return corrupt("%s.prev is %s, want %s", it.ID, itemID(it.prev), r.items[i-1].ID)
		case i == last && it.next != nil:
			return corrupt("tail %s has next %s", it.ID, it.next.ID)
		case i < last && it.next != r.items[i+1]:
			return corrupt("%s.next is %s, want %s", it.ID, itemID(it.next), r.items[i+1].ID)
		}
	}

	for _, it := range r.pool {
		if seen[it] {
			return corrupt("%s is in both the row and the pool", it.ID)
		}
		seen[it] = true

		switch {
		case !it.free:
			return corrupt("pool item %s is not marked free", it.ID)
		case it.prev != nil || it.next != nil:
			return corrupt("pool item %s is still linked", it.ID)
		case it.slot != -1:
			return corrupt("pool item %s still has slot %d", it.ID, it.slot)
		}
	}
	return nil
}

func (r *Row) removeFromPool(it *Item) bool {
	i := slices.Index(r.pool, it)
	if i < 0 {
		return false
	}
	r.pool = slices.Delete(r.pool, i, i+1)
	return true
}

func (r *Row) positionRightOf(it, neighbor *Item, animate bool) {
	it.x0 = neighbor.X1()
	it.y0 = 0
	r.layout.PositionRightOf(it, neighbor, animate)
}

func (r *Row) animateTo(it *Item, t Target) {
	it.moveTo(t)
	r.layout.AnimateTo(it, t)
}

func corrupt(format string, args ...any) error {
	return errors.New(errors.ErrCodeCorruptChain, format, args...)
}

func itemID(it *Item) string {
	if it == nil {
		return "<nil>"
	}
	return it.ID
}
