package sim

import (
	"fmt"
	"math"
)

// Color is an RGB triple with 8-bit channels. Channels are clamped on
// construction, so a Color in the world is always valid.
type Color struct {
	R, G, B uint8
}

// NewColor builds a Color from integer channels, clamping each to [0, 255].
func NewColor(r, g, b int) Color {
	return Color{
		R: clampChannel(r),
		G: clampChannel(g),
		B: clampChannel(b),
	}
}

// clampChannel clamps an integer to the 8-bit channel range.
func clampChannel(v int) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

// Mix averages two colors per channel with truncating integer division.
// Mixing is commutative and idempotent (Mix(c, c) == c) but not
// associative: truncation can shift a chained mix by one unit.
func Mix(a, b Color) Color {
	return Color{
		R: uint8((int(a.R) + int(b.R)) / 2),
		G: uint8((int(a.G) + int(b.G)) / 2),
		B: uint8((int(a.B) + int(b.B)) / 2),
	}
}

// Brightness returns the average channel intensity in [0, 1].
func (c Color) Brightness() float64 {
	return float64(int(c.R)+int(c.G)+int(c.B)) / (3 * 255)
}

// Saturation returns the channel spread (max-min)/255 in [0, 1].
// All-equal channels, including black, report 0.
func (c Color) Saturation() float64 {
	mn, mx := c.channelRange()
	return float64(mx-mn) / 255
}

// Hue returns the hue angle in degrees [0, 360). Achromatic colors
// report 0.
func (c Color) Hue() float64 {
	r := float64(c.R) / 255
	g := float64(c.G) / 255
	b := float64(c.B) / 255

	mx := math.Max(r, math.Max(g, b))
	mn := math.Min(r, math.Min(g, b))
	d := mx - mn
	if d == 0 {
		return 0
	}

	var h float64
	switch mx {
	case r:
		h = 60 * ((g - b) / d)
	case g:
		h = 60 * (2 + (b-r)/d)
	default:
		h = 60 * (4 + (r-g)/d)
	}
	return math.Mod(h+360, 360)
}

// NearWhite reports whether every channel exceeds 200. Repeated mixing
// of light colors converges here.
func (c Color) NearWhite() bool {
	return c.R > 200 && c.G > 200 && c.B > 200
}

// Quality rates a color's desirability in [0, 1]. Near-white scores 0,
// washed-out colors (saturation below 0.1) score a flat 0.1, everything
// else scales with brightness and saturation plus a small bonus for
// balanced channels.
func (c Color) Quality() float64 {
	if c.NearWhite() {
		return 0
	}
	sat := c.Saturation()
	if sat < 0.1 {
		return 0.1
	}

	mn, mx := c.channelRange()
	balance := 1 - float64(mx-mn)/255
	q := c.Brightness() * math.Sqrt(sat) * (0.7 + 0.3*balance)
	return math.Min(1, q)
}

// Hex renders the color as a #rrggbb string for terminal styling.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// channelRange returns the smallest and largest channel values.
func (c Color) channelRange() (mn, mx int) {
	mn, mx = int(c.R), int(c.R)
	for _, v := range []uint8{c.G, c.B} {
		if int(v) < mn {
			mn = int(v)
		}
		if int(v) > mx {
			mx = int(v)
		}
	}
	return mn, mx
}
