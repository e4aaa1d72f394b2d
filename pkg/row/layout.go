package row

// Layout is the host's visual collaborator. The engine has already updated
// the item's geometry when any of these methods is called; implementations
// only draw the change.
type Layout interface {
	// PositionRightOf places it flush against the right edge of neighbor.
	PositionRightOf(it, neighbor *Item, animate bool)

	// AnimateTo moves it to the coordinates set in to.
	AnimateTo(it *Item, to Target)

	// CreateShadow shows a placeholder at it's current slot.
	CreateShadow(it *Item)

	// RemoveShadow hides it's placeholder. Removing a missing shadow is a no-op.
	RemoveShadow(it *Item)

	// UpdateShadowX moves it's placeholder horizontally.
	UpdateShadowX(it *Item, x int)

	// MarkDragging toggles the "being dragged" appearance.
	MarkDragging(it *Item, dragging bool)
}

// Target is a destination for [Layout.AnimateTo]. Only the coordinates whose
// Set flag is true change.
type Target struct {
	X, Y       int
	SetX, SetY bool
}

// ToX returns a Target that only changes the horizontal position.
func ToX(x int) Target { return Target{X: x, SetX: true} }

// ToXY returns a Target that changes both coordinates.
func ToXY(x, y int) Target { return Target{X: x, Y: y, SetX: true, SetY: true} }

// NopLayout is a Layout that draws nothing. Useful for headless hosts.
type NopLayout struct{}

func (NopLayout) PositionRightOf(*Item, *Item, bool) {}
func (NopLayout) AnimateTo(*Item, Target)            {}
func (NopLayout) CreateShadow(*Item)                 {}
func (NopLayout) RemoveShadow(*Item)                 {}
func (NopLayout) UpdateShadowX(*Item, int)           {}
func (NopLayout) MarkDragging(*Item, bool)           {}
