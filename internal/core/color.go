package core

import "fmt"

// Color is a 24-bit RGB foreground color for a screen cell.
// The zero value means "terminal default foreground"; draw helpers that
// take no color leave cells at the default. Ball colors never reach
// pure black (channels are generated well above zero), so the zero
// value is unambiguous in practice.
type Color struct {
	R, G, B uint8
}

// RGB builds a Color from three 8-bit channels.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b}
}

// IsDefault reports whether the color is the terminal default.
func (c Color) IsDefault() bool {
	return c == Color{}
}

// Hex renders the color as #rrggbb for lipgloss and log output.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Named colors for HUD chrome. Ball colors are arbitrary mixes and do
// not come from this set.
var (
	ColorRed    = Color{R: 200, G: 60, B: 60}
	ColorGreen  = Color{R: 70, G: 200, B: 90}
	ColorYellow = Color{R: 220, G: 200, B: 60}
	ColorGray   = Color{R: 130, G: 130, B: 140}
	ColorWhite  = Color{R: 235, G: 235, B: 235}
)
