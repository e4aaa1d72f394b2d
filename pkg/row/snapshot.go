package row

// ItemState is a read-only view of an item, suitable for serialization.
type ItemState struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Width int    `json:"width"`
	X0    int    `json:"x0"`
	Y0    int    `json:"y0"`
	Prev  string `json:"prev,omitempty"`
	Next  string `json:"next,omitempty"`
	Free  bool   `json:"free"`
}

// Snapshot is the engine state at a point in time.
type Snapshot struct {
	Order    []ItemState `json:"order"`
	Pool     []ItemState `json:"pool"`
	Dragging string      `json:"dragging,omitempty"`
}

// State returns a view of it.
func (it *Item) State() ItemState {
	return ItemState{
		ID:    it.ID,
		Label: it.Label,
		Width: it.width,
		X0:    it.x0,
		Y0:    it.y0,
		Prev:  idOrEmpty(it.prev),
		Next:  idOrEmpty(it.next),
		Free:  it.free,
	}
}

// Snapshot captures the row order, the pool and the dragged item.
func (e *Engine) Snapshot() Snapshot {
	s := Snapshot{
		Order: states(e.row.items),
		Pool:  states(e.row.pool),
	}
	if it := e.Dragging(); it != nil {
		s.Dragging = it.ID
	}
	return s
}

func states(items []*Item) []ItemState {
	out := make([]ItemState, len(items))
	for i, it := range items {
		out[i] = it.State()
	}
	return out
}

func idOrEmpty(it *Item) string {
	if it == nil {
		return ""
	}
	return it.ID
}
