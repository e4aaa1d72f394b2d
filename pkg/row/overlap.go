package row

// Direction is the way a displaced neighbour moves after a swap.
type Direction int

const (
	// DirectionRight: the left neighbour is pushed right and the dragged
	// item takes its slot.
	DirectionRight Direction = iota + 1
	// DirectionLeft: the right neighbour is pulled left.
	DirectionLeft
)

func (d Direction) String() string {
	switch d {
	case DirectionRight:
		return "right"
	case DirectionLeft:
		return "left"
	default:
		return "none"
	}
}

// Displacement is a swap decided by [Overlap].
type Displacement struct {
	Neighbor  *Item
	Direction Direction
}

// Overlap decides whether the dragged item it has crossed the centre of one
// of its chain neighbours. The left neighbour is checked first and wins when
// both would fire. At most one displacement is reported.
func Overlap(it *Item) (Displacement, bool) {
	if prev := it.prev; prev != nil {
		if it.x0 <= center(prev) {
			return Displacement{Neighbor: prev, Direction: DirectionRight}, true
		}
	}
	if next := it.next; next != nil {
		if it.X1() >= center(next) {
			return Displacement{Neighbor: next, Direction: DirectionLeft}, true
		}
	}
	return Displacement{}, false
}

func center(it *Item) int {
	return it.x0 + it.width>>1
}
