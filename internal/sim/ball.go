package sim

// BallState tracks which collection owns a ball and whether physics
// applies to it.
type BallState uint8

const (
	// StateFree balls live in the arena and are advanced by Step.
	StateFree BallState = iota
	// StateDragged marks the single ball pinned to the cursor. Step
	// skips it entirely: no integration, no collisions, no walls.
	StateDragged
	// StateInventory balls are parked in the inventory collection and
	// never touched by the simulation.
	StateInventory
)

// String returns a human-readable state name.
func (s BallState) String() string {
	switch s {
	case StateFree:
		return "free"
	case StateDragged:
		return "dragged"
	case StateInventory:
		return "inventory"
	default:
		return "unknown"
	}
}

// BallID identifies a ball for the lifetime of its World. IDs are
// assigned from a counter starting at 1 and never reused; 0 means
// "no ball".
type BallID uint64

// Ball is a simulated disc. Radius is fixed at creation; position,
// velocity, color, and state mutate as the world runs.
type Ball struct {
	ID     BallID
	X, Y   float64
	VX, VY float64
	Radius float64
	Color  Color
	State  BallState
}
