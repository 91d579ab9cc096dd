package game

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-ballpit/internal/core"
	"github.com/vovakirdan/tui-ballpit/internal/sim"
)

// Drawing runes.
const (
	ballFill  = '█'
	ringDot   = '·'
	zoneFill  = '░'
	swatchDot = '●'
)

// Inventory swatch layout under the target ring.
const (
	swatchesPerRow = 4
	maxSwatches    = 8
	swatchPitch    = 3 // dot + digit + gap
)

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	// Zones first so balls roll over them, chrome last so a dragged
	// ball can never hide the HUD.
	g.renderZones(dst)
	g.renderBalls(dst)
	g.renderInventory(dst)
	g.renderHUD(dst)
	g.renderHelp(dst)

	if g.paused {
		g.drawOverlay(dst, "PAUSED", "Press P to resume")
	}
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	msg := "Window too small"
	x := (g.rtCfg.ScreenW - len(msg)) / 2
	y := g.rtCfg.ScreenH / 2
	dst.DrawText(x, y, msg)

	hint := "Please resize terminal"
	hintX := (g.rtCfg.ScreenW - len(hint)) / 2
	dst.DrawText(hintX, y+1, hint)
}

// renderZones draws the delete band and the inventory target ring.
func (g *Game) renderZones(dst *core.Screen) {
	zone := g.world.DeleteZone()
	rect := core.NewRect(int(zone.X), arenaTop+int(zone.Y), int(zone.W), int(zone.H))
	dst.DrawRectColor(rect, zoneFill, core.ColorRed)

	label := "DELETE ZONE"
	cx, cy := rect.Center()
	dst.DrawTextColor(cx-len(label)/2, cy, label, core.ColorWhite)

	target, radius := g.world.InventoryTarget()
	ty := target.Y + arenaTop
	dst.DrawRing(target.X, ty, radius, ringDot, core.ColorGreen)

	count := fmt.Sprintf("%d", g.world.InventoryCount())
	dst.DrawTextColor(int(target.X)-len(count)/2, int(ty), count, core.ColorGreen)
}

// renderBalls draws every active ball as a filled disc; the dragged
// ball gets a pulsing ring so it reads as picked up.
func (g *Game) renderBalls(dst *core.Screen) {
	for _, b := range g.world.Balls() {
		col := core.RGB(b.Color.R, b.Color.G, b.Color.B)
		cy := b.Y + arenaTop
		dst.FillDisc(b.X, cy, b.Radius, ballFill, col)

		if b.State == sim.StateDragged {
			pulse := b.Radius + 1 + 0.5*math.Sin(float64(g.tick)*0.15)
			dst.DrawRing(b.X, cy, pulse, ringDot, core.ColorWhite)
		}
	}
}

// renderInventory draws the collected balls as swatches under the
// target ring: a colored dot plus its eject digit, the digit graded by
// color quality.
func (g *Game) renderInventory(dst *core.Screen) {
	slots := g.world.Inventory()
	if len(slots) == 0 {
		return
	}

	target, radius := g.world.InventoryTarget()
	startX := int(target.X) - (swatchesPerRow*swatchPitch)/2
	startY := arenaTop + int(target.Y+radius) + 1

	for i, slot := range slots {
		if i >= maxSwatches {
			break
		}
		x := startX + (i%swatchesPerRow)*swatchPitch
		y := startY + i/swatchesPerRow
		dst.SetCell(x, y, swatchDot, core.RGB(slot.Color.R, slot.Color.G, slot.Color.B))
		dst.SetCell(x+1, y, rune('1'+i), qualityColor(slot.Quality))
	}
}

// qualityColor grades a quality score: green for a keeper, yellow for
// decent, red for muddy.
func qualityColor(q float64) core.Color {
	switch {
	case q > 0.7:
		return core.ColorGreen
	case q > 0.4:
		return core.ColorYellow
	default:
		return core.ColorRed
	}
}

// renderHUD draws the top status line.
func (g *Game) renderHUD(dst *core.Screen) {
	dst.DrawHLine(0, hudRow, g.arenaW, ' ')

	left := fmt.Sprintf("%s  Score: %d", g.Title(), g.score)
	dst.DrawText(1, hudRow, left)

	right := fmt.Sprintf("Balls: %d  Stored: %d", g.world.ActiveCount(), g.world.InventoryCount())
	x := core.Max(g.arenaW-len(right)-1, len(left)+3)
	dst.DrawText(x, hudRow, right)
}

// renderHelp draws the bottom key hints.
func (g *Game) renderHelp(dst *core.Screen) {
	helpY := arenaTop + g.arenaH
	dst.DrawHLine(0, helpY, g.arenaW, ' ')

	help := "Drag: Mouse | Space: Add | 1-9: Eject | R: Restart | P: Pause | Q: Quit"
	dst.DrawTextColor(1, helpY, help, core.ColorGray)
}

// drawOverlay draws a centered text overlay in a box.
func (g *Game) drawOverlay(dst *core.Screen, lines ...string) {
	centerX := g.arenaW / 2
	centerY := arenaTop + g.arenaH/2

	// Find max line width
	maxLen := 0
	for _, line := range lines {
		if len(line) > maxLen {
			maxLen = len(line)
		}
	}

	boxW := maxLen + 4
	boxH := len(lines) + 2
	boxX := centerX - boxW/2
	boxY := centerY - boxH/2

	// Clear area behind overlay
	for y := boxY; y < boxY+boxH; y++ {
		for x := boxX; x < boxX+boxW; x++ {
			dst.Set(x, y, ' ')
		}
	}

	dst.DrawBox(core.Rect{X: boxX, Y: boxY, W: boxW, H: boxH})

	for i, line := range lines {
		x := centerX - len(line)/2
		dst.DrawText(x, boxY+1+i, line)
	}
}
