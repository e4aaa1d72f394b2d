package row

import (
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/stackrow/pkg/errors"
	"github.com/matzehuels/stackrow/pkg/observability"
)

// Button identifies the pointer button of a press.
type Button int

const (
	ButtonPrimary Button = iota
	ButtonMiddle
	ButtonSecondary
)

// ParseButton maps a button name to a [Button]. The empty name is the
// primary button.
func ParseButton(name string) (Button, error) {
	switch name {
	case "", "primary", "left":
		return ButtonPrimary, nil
	case "middle":
		return ButtonMiddle, nil
	case "secondary", "right":
		return ButtonSecondary, nil
	}
	return 0, errors.New(errors.ErrCodeInvalidInput, "unknown button %q", name)
}

// Point is a position in layout units.
type Point struct {
	X, Y int
}

// Session is an in-flight drag. It exists between a primary press on an item
// and the matching release.
type Session struct {
	Item *Item
	// Offset is the pointer position minus the item origin at grab time.
	Offset Point
	Start  time.Time
}

// Engine is the drag controller. It owns the row, the pool and the current
// drag session. See the package documentation for the event protocol.
type Engine struct {
	row     *Row
	layout  Layout
	bounds  Bounds
	logger  *log.Logger
	newID   func() string
	now     func() time.Time
	session *Session
}

// New creates an engine that reports visual changes to layout.
func New(layout Layout, opts ...Option) *Engine {
	if layout == nil {
		layout = NopLayout{}
	}
	e := &Engine{layout: layout, row: NewRow(layout)}
	defaults(e)
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// AddItem creates an item from cfg and appends it to the row. An empty ID is
// replaced with a generated one.
func (e *Engine) AddItem(cfg ItemConfig) (*Item, error) {
	if err := errors.ValidateLabel(cfg.Label); err != nil {
		return nil, err
	}
	if err := errors.ValidateWidth(cfg.Width); err != nil {
		return nil, err
	}
	if err := errors.ValidateItemID(cfg.ID); err != nil {
		return nil, err
	}

	id := cfg.ID
	if id == "" {
		id = e.newID()
	}
	if e.row.Locate(id) != nil {
		return nil, errors.New(errors.ErrCodeDuplicateID, "item %q already exists", id)
	}

	it := e.row.Append(newItem(id, cfg), true)
	e.logger.Debug("item added", "id", it.ID, "label", it.Label, "x0", it.x0)
	return it, nil
}

// Press starts a drag session if button is the primary button, target
// resolves to an item and no session is active. It reports whether a
// session started. Presses that do not start a session are not errors.
func (e *Engine) Press(target string, button Button, x, y int) bool {
	if button != ButtonPrimary {
		return false
	}
	if e.session != nil {
		e.logger.Debug("press ignored, drag in progress", "target", target, "dragging", e.session.Item.ID)
		return false
	}
	it := e.row.Locate(target)
	if it == nil {
		return false
	}

	e.layout.MarkDragging(it, true)
	if !it.free {
		e.layout.CreateShadow(it)
	}
	e.session = &Session{
		Item:   it,
		Offset: Point{X: x - it.x0, Y: y - it.y0},
		Start:  e.now(),
	}

	e.logger.Debug("drag started", "id", it.ID, "free", it.free)
	observability.Engine().OnPress(it.ID, !it.free)
	return true
}

// Move updates the dragged item's position from the pointer, moves it across
// the row/pool boundary when needed and swaps it with a neighbour it has
// crossed. It does nothing without an active session.
func (e *Engine) Move(x, y int) {
	s := e.session
	if s == nil {
		return
	}
	it := s.Item
	it.x0, it.y0 = x-s.Offset.X, y-s.Offset.Y

	inside := e.bounds.Contains(it)
	if it.free && inside {
		it.free = false
	}
	if it.free {
		return
	}
	if !inside {
		e.layout.RemoveShadow(it)
		_ = e.Detach(it)
		return
	}
	if !e.row.Contains(it) {
		e.reenter(it)
	}

	d, ok := Overlap(it)
	if !ok {
		return
	}
	nb := d.Neighbor
	if err := e.row.Swap(it, nb); err != nil {
		e.reject("swap", err)
		return
	}

	switch d.Direction {
	case DirectionRight:
		e.layout.UpdateShadowX(it, nb.x0)
		e.row.animateTo(nb, ToX(nb.x0+it.width))
	case DirectionLeft:
		e.row.animateTo(nb, ToX(nb.x0-it.width))
		e.layout.UpdateShadowX(it, nb.X1())
	}

	e.logger.Debug("swapped", "id", it.ID, "neighbor", nb.ID, "direction", d.Direction)
	observability.Engine().OnSwap(it.ID, nb.ID, d.Direction.String())
}

// Release ends the drag session. An item in the row snaps into its slot:
// the origin if it is the head, otherwise flush right of its predecessor.
// A pool item stays where it was dropped.
func (e *Engine) Release() {
	s := e.session
	if s == nil {
		return
	}
	it := s.Item

	inRow := e.row.Contains(it)
	if inRow {
		if it.prev == nil {
			e.row.animateTo(it, ToXY(0, 0))
		} else {
			e.row.positionRightOf(it, it.prev, true)
		}
	}
	e.layout.RemoveShadow(it)
	e.layout.MarkDragging(it, false)
	e.session = nil

	held := e.now().Sub(s.Start)
	e.logger.Debug("drag finished", "id", it.ID, "in_row", inRow, "held", held)
	observability.Engine().OnRelease(it.ID, inRow, held)
}

// Cancel abandons the drag session, e.g. when the host loses pointer capture.
// The item settles exactly as on [Engine.Release].
func (e *Engine) Cancel() {
	if e.session == nil {
		return
	}
	e.logger.Debug("drag cancelled", "id", e.session.Item.ID)
	e.Release()
}

// Detach moves it from the row into the pool. Items that are not in the row
// are rejected without changing any state.
func (e *Engine) Detach(it *Item) error {
	moved, err := e.row.Detach(it)
	if err != nil {
		e.reject("detach", err)
		return err
	}
	e.logger.Debug("detached", "id", it.ID, "repositioned", moved)
	observability.Engine().OnDetach(it.ID, moved)
	return nil
}

// Remove destroys the item with the given ID on behalf of the host. A row
// item is detached first so the row closes the gap. The item being dragged
// cannot be removed.
func (e *Engine) Remove(id string) error {
	it := e.row.Locate(id)
	if it == nil {
		return errors.New(errors.ErrCodeNotFound, "item %q not found", id)
	}
	if e.session != nil && e.session.Item == it {
		return errors.New(errors.ErrCodeSessionActive, "item %q is being dragged", id)
	}
	if e.row.Contains(it) {
		if err := e.Detach(it); err != nil {
			return err
		}
	}
	e.row.removeFromPool(it)
	e.logger.Debug("item removed", "id", id)
	return nil
}

// Locate resolves a visual handle to its item, or nil.
func (e *Engine) Locate(id string) *Item { return e.row.Locate(id) }

// Order returns the row items from left to right.
func (e *Engine) Order() []*Item { return e.row.Items() }

// Pool returns the detached items.
func (e *Engine) Pool() []*Item { return e.row.Pool() }

// Session returns the active drag session, if any.
func (e *Engine) Session() (Session, bool) {
	if e.session == nil {
		return Session{}, false
	}
	return *e.session, true
}

// Dragging returns the item being dragged, or nil.
func (e *Engine) Dragging() *Item {
	if e.session == nil {
		return nil
	}
	return e.session.Item
}

// Validate checks the row and pool invariants.
func (e *Engine) Validate() error { return e.row.Validate() }

func (e *Engine) reenter(it *Item) {
	pos := Point{X: it.x0, Y: it.y0}
	e.row.Append(it, false)
	e.layout.CreateShadow(it)
	// Overlap checks run against the live pointer position, not the
	// nominal tail slot.
	it.x0, it.y0 = pos.X, pos.Y

	e.logger.Debug("re-entered row", "id", it.ID, "slot", it.slot)
	observability.Engine().OnReenter(it.ID)
}

func (e *Engine) reject(op string, err error) {
	e.logger.Warn("operation rejected", "op", op, "err", err)
	observability.Engine().OnRejected(op, err)
}
