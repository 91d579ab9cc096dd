// Package sim implements the ball-pit simulation: colored balls under
// simple gravity that collide and blend colors, and that the user can
// drag into a delete zone or collect into an inventory.
//
// The package has no rendering or input dependencies. All randomness is
// drawn from a source seeded at construction, so two worlds created with
// the same seed and fed the same calls evolve identically.
package sim

import (
	"math"
	"math/rand"
)

// World owns every ball and advances the simulation. Methods are not
// safe for concurrent use: a single caller drives the world one Step at
// a time and reads snapshots between steps.
type World struct {
	width  float64
	height float64
	params Params
	rng    *rand.Rand

	balls     []*Ball // active set; slice order is z-order, last on top
	inventory []*Ball

	dragged  BallID // 0 when nothing is dragged
	dragOffX float64
	dragOffY float64

	nextID BallID
}

// New creates an empty world of the given size. The seed fixes every
// random draw: spawn velocities, colors, and eject placement.
func New(width, height float64, params Params, seed int64) *World {
	return &World{
		width:  width,
		height: height,
		params: params,
		rng:    rand.New(rand.NewSource(seed)),
		nextID: 1,
	}
}

// Width returns the arena width in world units.
func (w *World) Width() float64 { return w.width }

// Height returns the arena height in world units.
func (w *World) Height() float64 { return w.height }

// Params returns the world's simulation constants.
func (w *World) Params() Params { return w.params }

// Spawn adds a ball at (x, y) with a random color and velocity and
// returns its id. A radius of zero or less means the configured default.
func (w *World) Spawn(x, y, radius float64) BallID {
	if radius <= 0 {
		radius = w.params.DefaultRadius
	}
	b := &Ball{
		ID:     w.allocID(),
		X:      x,
		Y:      y,
		VX:     w.uniform(-w.params.SpawnSpeed, w.params.SpawnSpeed),
		VY:     w.uniform(-w.params.SpawnSpeed, w.params.SpawnSpeed),
		Radius: radius,
		Color:  w.RandomColor(w.params.MinBrightness, w.params.MaxBrightness),
		State:  StateFree,
	}
	w.balls = append(w.balls, b)
	return b.ID
}

// SpawnRandom adds a ball inside the spawn band with a radius drawn
// from the configured range.
func (w *World) SpawnRandom() BallID {
	x := w.uniform(w.params.SpawnMarginX, w.width-w.params.SpawnMarginX)
	y := w.uniform(w.params.SpawnBandTop, w.params.SpawnBandBottom)
	return w.Spawn(x, y, w.RandomRadius())
}

// RandomRadius draws a radius uniformly from the configured range.
func (w *World) RandomRadius() float64 {
	return w.uniform(w.params.MinRadius, w.params.MaxRadius)
}

// RandomColor draws a color with channels in the configured range. When
// the draw's brightness lands outside [minBright, maxBright], all
// channels are rescaled toward a target brightness picked uniformly from
// that window and reclamped. Clamping can leave the result slightly
// outside the window; spawn colors tolerate that.
func (w *World) RandomColor(minBright, maxBright float64) Color {
	c := NewColor(
		w.intBetween(w.params.MinColorValue, w.params.MaxColorValue),
		w.intBetween(w.params.MinColorValue, w.params.MaxColorValue),
		w.intBetween(w.params.MinColorValue, w.params.MaxColorValue),
	)

	br := c.Brightness()
	if br >= minBright && br <= maxBright {
		return c
	}
	if br <= 0 {
		// All-black draw, nothing to rescale.
		return c
	}

	target := minBright + w.rng.Float64()*(maxBright-minBright)
	scale := target / br
	return NewColor(
		int(float64(c.R)*scale),
		int(float64(c.G)*scale),
		int(float64(c.B)*scale),
	)
}

// Step advances every free ball by dt: integration, then pairwise
// collision resolution, then boundary reflection. The dragged ball is
// skipped entirely and inventory balls are never touched.
func (w *World) Step(dt float64) {
	for _, b := range w.balls {
		if b.State != StateFree {
			continue
		}
		w.integrate(b, dt)
	}

	w.collide()

	for _, b := range w.balls {
		if b.State != StateFree {
			continue
		}
		w.bounce(b)
	}
}

// integrate applies gravity, moves the ball, then damps velocity.
// Friction is per step, not scaled by dt.
func (w *World) integrate(b *Ball, dt float64) {
	b.VY += w.params.Gravity * dt
	b.X += b.VX * dt
	b.Y += b.VY * dt
	b.VX *= w.params.Friction
	b.VY *= w.params.Friction
}

// collide resolves every overlapping pair of free balls: both take the
// mixed color and each is pushed half the overlap along the center axis.
// Each unordered pair is visited once per step; mixing is idempotent and
// the push is symmetric, so revisiting a pair would change nothing.
func (w *World) collide() {
	for i := 0; i < len(w.balls); i++ {
		a := w.balls[i]
		if a.State != StateFree {
			continue
		}
		for j := i + 1; j < len(w.balls); j++ {
			b := w.balls[j]
			if b.State != StateFree {
				continue
			}
			w.resolvePair(a, b)
		}
	}
}

// resolvePair mixes colors and separates one overlapping pair.
// Coincident centers (distance zero) have no push axis; the pair is left
// alone for this step rather than dividing by zero.
func (w *World) resolvePair(a, b *Ball) {
	dx := a.X - b.X
	dy := a.Y - b.Y
	dist := math.Hypot(dx, dy)
	minDist := a.Radius + b.Radius

	if dist >= minDist || dist == 0 {
		return
	}

	mixed := Mix(a.Color, b.Color)
	a.Color = mixed
	b.Color = mixed

	overlap := minDist - dist
	pushX := dx / dist * overlap * 0.5
	pushY := dy / dist * overlap * 0.5
	a.X += pushX
	a.Y += pushY
	b.X -= pushX
	b.Y -= pushY
}

// bounce clamps a ball that crossed an arena edge back onto it and
// reflects the velocity component, damped and with the sign forced
// outward, so a ball embedded past a wall cannot accelerate through it.
func (w *World) bounce(b *Ball) {
	if b.X-b.Radius < 0 {
		b.X = b.Radius
		b.VX = math.Abs(b.VX) * w.params.BounceDamping
	} else if b.X+b.Radius > w.width {
		b.X = w.width - b.Radius
		b.VX = -math.Abs(b.VX) * w.params.BounceDamping
	}

	if b.Y-b.Radius < 0 {
		b.Y = b.Radius
		b.VY = math.Abs(b.VY) * w.params.BounceDamping
	} else if b.Y+b.Radius > w.height {
		b.Y = w.height - b.Radius
		b.VY = -math.Abs(b.VY) * w.params.BounceDamping
	}
}

// allocID hands out the next ball id.
func (w *World) allocID() BallID {
	id := w.nextID
	w.nextID++
	return id
}

// uniform draws from [lo, hi). Collapses to lo when the interval is
// empty, which keeps spawn bands sane on very small arenas.
func (w *World) uniform(lo, hi float64) float64 {
	if hi <= lo {
		return lo
	}
	return lo + w.rng.Float64()*(hi-lo)
}

// intBetween draws an integer from [lo, hi] inclusive.
func (w *World) intBetween(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + w.rng.Intn(hi-lo+1)
}
