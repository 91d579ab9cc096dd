package sim

import "math"

// DropResult reports how EndDrag resolved a drag.
type DropResult int

const (
	// DropNone means no drag was in progress.
	DropNone DropResult = iota
	// DropDeleted means the ball was released over the delete zone and
	// removed from the world for good.
	DropDeleted
	// DropStored means the ball landed on the inventory target and was
	// collected.
	DropStored
	// DropReleased means the ball returned to the arena with a flick
	// impulse toward the cursor.
	DropReleased
)

// String returns a human-readable outcome name.
func (d DropResult) String() string {
	switch d {
	case DropNone:
		return "none"
	case DropDeleted:
		return "deleted"
	case DropStored:
		return "stored"
	case DropReleased:
		return "released"
	default:
		return "unknown"
	}
}

// BeginDrag grabs the top-most free ball under the cursor and reports
// whether one was found. It is rejected while another drag is active.
// The grab offset is recorded so the ball does not snap to the cursor.
func (w *World) BeginDrag(x, y float64) bool {
	if w.dragged != 0 {
		return false
	}

	// Scan back to front: the last spawned ball draws on top and wins.
	for i := len(w.balls) - 1; i >= 0; i-- {
		b := w.balls[i]
		if b.State != StateFree {
			continue
		}
		if math.Hypot(b.X-x, b.Y-y) <= b.Radius {
			b.State = StateDragged
			w.dragged = b.ID
			w.dragOffX = b.X - x
			w.dragOffY = b.Y - y
			return true
		}
	}
	return false
}

// UpdateDrag pins the dragged ball to the cursor plus the grab offset.
// No-op when nothing is dragged.
func (w *World) UpdateDrag(x, y float64) {
	b := w.draggedBall()
	if b == nil {
		return
	}
	b.X = x + w.dragOffX
	b.Y = y + w.dragOffY
}

// EndDrag resolves the active drag against the drop zones in priority
// order: delete zone first, then the inventory target, then release
// back into the arena with a flick impulse toward the cursor. The drag
// reference is cleared on every path.
func (w *World) EndDrag(x, y float64) DropResult {
	b := w.draggedBall()
	w.dragged = 0
	if b == nil {
		return DropNone
	}

	if w.DeleteZone().Contains(x, y) {
		w.removeBall(b.ID)
		return DropDeleted
	}

	target, radius := w.InventoryTarget()
	if math.Hypot(x-target.X, y-target.Y) <= radius {
		b.State = StateInventory
		w.removeFromActive(b.ID)
		w.inventory = append(w.inventory, b)
		return DropStored
	}

	b.State = StateFree
	b.VX = (x - b.X) * w.params.FlickFactor
	b.VY = (y - b.Y) * w.params.FlickFactor
	return DropReleased
}

// Eject pops the inventory entry at index back into the arena: the ball
// turns free again inside the eject band with a fresh random velocity.
// Returns false without mutating anything when the index is out of
// range.
func (w *World) Eject(index int) bool {
	if index < 0 || index >= len(w.inventory) {
		return false
	}
	b := w.inventory[index]
	w.inventory = append(w.inventory[:index], w.inventory[index+1:]...)

	b.State = StateFree
	b.X = w.uniform(w.params.EjectMarginX, w.width-w.params.EjectMarginX)
	b.Y = w.uniform(w.params.EjectBandTop, w.params.EjectBandBottom)
	b.VX = w.uniform(-w.params.EjectSpeed, w.params.EjectSpeed)
	b.VY = w.uniform(-w.params.EjectSpeed, w.params.EjectSpeed)

	w.balls = append(w.balls, b)
	return true
}

// Clear removes every ball from the arena and the inventory and cancels
// any drag in progress.
func (w *World) Clear() {
	w.balls = nil
	w.inventory = nil
	w.dragged = 0
}

// DeleteZone returns the full-width band at the arena bottom. Dropping
// a dragged ball there destroys it.
func (w *World) DeleteZone() Rect {
	return Rect{
		X: 0,
		Y: w.height - w.params.DeleteZoneHeight,
		W: w.width,
		H: w.params.DeleteZoneHeight,
	}
}

// InventoryTarget returns the collection target circle near the
// top-right corner.
func (w *World) InventoryTarget() (Vec2, float64) {
	return Vec2{
		X: w.width - w.params.InventoryOffsetX,
		Y: w.params.InventoryOffsetY,
	}, w.params.InventoryRadius
}

// draggedBall resolves the weak drag reference, or nil. The reference
// is an id rather than a pointer so a stale entry can never outlive its
// ball.
func (w *World) draggedBall() *Ball {
	if w.dragged == 0 {
		return nil
	}
	for _, b := range w.balls {
		if b.ID == w.dragged {
			return b
		}
	}
	return nil
}

// removeFromActive deletes a ball from the active slice, preserving the
// z-order of the rest.
func (w *World) removeFromActive(id BallID) {
	for i, b := range w.balls {
		if b.ID == id {
			w.balls = append(w.balls[:i], w.balls[i+1:]...)
			return
		}
	}
}

// removeBall deletes a ball from whichever collection holds it.
func (w *World) removeBall(id BallID) {
	w.removeFromActive(id)
	for i, b := range w.inventory {
		if b.ID == id {
			w.inventory = append(w.inventory[:i], w.inventory[i+1:]...)
			return
		}
	}
}
