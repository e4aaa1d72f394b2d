package row

import (
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
)

// Bounds decides whether an item is still over the row. A dragged row item
// that leaves the bounds is detached into the pool; a dragged pool item that
// enters them rejoins the row.
type Bounds interface {
	Contains(it *Item) bool
}

// BoundsFunc adapts a function to [Bounds].
type BoundsFunc func(it *Item) bool

// Contains calls f(it).
func (f BoundsFunc) Contains(it *Item) bool { return f(it) }

// VerticalBounds keeps an item in the row while its top edge is at most
// distance units above or below the row baseline.
func VerticalBounds(distance int) BoundsFunc {
	return func(it *Item) bool {
		dy := it.y0
		if dy < 0 {
			dy = -dy
		}
		return dy <= distance
	}
}

// DefaultDetachDistance is the vertical distance used when no [Bounds] is
// configured.
const DefaultDetachDistance = 3

// Option configures an [Engine].
type Option func(*Engine)

// WithBounds sets the row-bounds policy.
func WithBounds(b Bounds) Option {
	return func(e *Engine) {
		if b != nil {
			e.bounds = b
		}
	}
}

// WithLogger sets the engine's logger. Debug level traces every session.
func WithLogger(l *log.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// WithIDFunc overrides how IDs are generated for items added without one.
func WithIDFunc(fn func() string) Option {
	return func(e *Engine) {
		if fn != nil {
			e.newID = fn
		}
	}
}

// WithClock overrides the time source used to measure drag sessions.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		if now != nil {
			e.now = now
		}
	}
}

func defaults(e *Engine) {
	e.bounds = VerticalBounds(DefaultDetachDistance)
	e.logger = log.New(io.Discard)
	e.newID = uuid.NewString
	e.now = time.Now
}
