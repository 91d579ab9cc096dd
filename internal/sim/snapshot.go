package sim

// BallView is a read-only copy of an active ball for rendering and
// tests. Quality is precomputed so callers never redo the color math.
type BallView struct {
	ID      BallID
	X, Y    float64
	VX, VY  float64
	Radius  float64
	Color   Color
	State   BallState
	Quality float64
}

// SlotView is a read-only copy of one inventory entry.
type SlotView struct {
	Index   int
	Color   Color
	Radius  float64
	Quality float64
}

// Balls returns a snapshot of the active set in z-order.
func (w *World) Balls() []BallView {
	out := make([]BallView, 0, len(w.balls))
	for _, b := range w.balls {
		out = append(out, BallView{
			ID:      b.ID,
			X:       b.X,
			Y:       b.Y,
			VX:      b.VX,
			VY:      b.VY,
			Radius:  b.Radius,
			Color:   b.Color,
			State:   b.State,
			Quality: b.Color.Quality(),
		})
	}
	return out
}

// Inventory returns a snapshot of the inventory in collection order.
func (w *World) Inventory() []SlotView {
	out := make([]SlotView, 0, len(w.inventory))
	for i, b := range w.inventory {
		out = append(out, SlotView{
			Index:   i,
			Color:   b.Color,
			Radius:  b.Radius,
			Quality: b.Color.Quality(),
		})
	}
	return out
}

// ActiveCount returns the number of balls in the arena, dragged
// included.
func (w *World) ActiveCount() int { return len(w.balls) }

// InventoryCount returns the number of collected balls.
func (w *World) InventoryCount() int { return len(w.inventory) }

// Dragging returns the dragged ball's id, or false when no drag is
// active.
func (w *World) Dragging() (BallID, bool) {
	if w.dragged == 0 {
		return 0, false
	}
	return w.dragged, true
}
