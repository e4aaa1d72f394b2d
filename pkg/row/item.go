package row

import "fmt"

// Item is a unit that is either laid out in the row or floating in the pool.
//
// Geometry is owned by the engine; hosts read it through the accessor
// methods. Prev and Next are only meaningful while the item is in the row.
type Item struct {
	// ID is the host's handle for the item's visual element. Press targets
	// are resolved against it.
	ID string

	// Label is opaque host content copied from [ItemConfig].
	Label string

	width  int
	x0, y0 int

	prev, next *Item
	free       bool

	// slot is the item's index in the row sequence, -1 while pooled.
	slot int
}

// ItemConfig describes an item to add with [Engine.AddItem].
type ItemConfig struct {
	ID    string `json:"id,omitempty" toml:"id,omitempty"`
	Label string `json:"label" toml:"label"`
	Width int    `json:"width" toml:"width"`
}

func newItem(id string, cfg ItemConfig) *Item {
	return &Item{ID: id, Label: cfg.Label, width: cfg.Width, slot: -1}
}

// Width returns the item's fixed width in layout units.
func (it *Item) Width() int { return it.width }

// X0 returns the left edge.
func (it *Item) X0() int { return it.x0 }

// Y0 returns the top edge.
func (it *Item) Y0() int { return it.y0 }

// X1 returns the right edge, X0 + Width.
func (it *Item) X1() int { return it.x0 + it.width }

// Prev returns the left neighbour in the row, or nil.
func (it *Item) Prev() *Item { return it.prev }

// Next returns the right neighbour in the row, or nil.
func (it *Item) Next() *Item { return it.next }

// Free reports whether the item is detached from the row.
func (it *Item) Free() bool { return it.free }

func (it *Item) String() string {
	return fmt.Sprintf("%s[%d,%d w=%d]", it.ID, it.x0, it.y0, it.width)
}

func (it *Item) moveTo(t Target) {
	if t.SetX {
		it.x0 = t.X
	}
	if t.SetY {
		it.y0 = t.Y
	}
}
