package hotcold

import (
	"fmt"

	"github.com/vovakirdan/tui-hotcold/internal/core"
)

const (
	hudLines     = 2 // Text rows above the field
	minFieldRows = 6

	markerRune = '█'
	echoRune   = '░'
)

// fieldRect returns the bordered box the arena is drawn in.
// Terminal cells are roughly twice as tall as wide, so the square arena
// spans twice as many columns as rows.
func fieldRect(w, h int) (core.Rect, bool) {
	rows := h - hudLines - 2
	cols := w - 2
	if cols > rows*2 {
		cols = rows * 2
	} else {
		rows = cols / 2
	}
	if rows < minFieldRows {
		return core.Rect{}, false
	}

	x := (w - (cols + 2)) / 2
	return core.NewRect(x, hudLines, cols+2, rows+2), true
}

// Render draws the HUD, the field and both markers.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	box, ok := fieldRect(dst.Width(), dst.Height())
	if !ok {
		dst.DrawTextCentered(dst.Height()/2, "Terminal too small", core.ColorYellow)
		return
	}

	g.renderHUD(dst, box)
	dst.DrawBox(box, core.ColorGray)

	inner := core.NewRect(box.X+1, box.Y+1, box.W-2, box.H-2)
	if g.echo != nil {
		g.drawMarker(dst, inner, g.echo.target, g.echo.radius, echoRune, core.ColorYellow)
	}
	if c := g.state.TargetColor(); c != core.ColorDefault {
		g.drawMarker(dst, inner, g.state.Target, g.state.Radius, markerRune, c)
	}
	g.drawMarker(dst, inner, g.state.Player, g.state.Radius, markerRune, g.state.PlayerColor)

	if g.banner != "" {
		color := core.ColorYellow
		if g.complete {
			color = core.ColorGreen
		}
		dst.DrawTextCentered(box.Bottom()-1, " "+g.banner+" ", color)
	}
}

func (g *Game) renderHUD(dst *core.Screen, box core.Rect) {
	dst.DrawTextColored(box.X, 0, fmt.Sprintf("Total moves = %d", g.state.Moves), core.ColorWhite)

	tier := g.TierName()
	if budget := g.Budget(); budget > 0 {
		tier = fmt.Sprintf("%s  budget %d", tier, budget)
	}
	if g.mode == ModeFree {
		tier += "  (free play)"
	}
	dst.DrawTextColored(box.Right()-len([]rune(tier)), 0, tier, core.ColorWhite)

	if g.state.DebugVisible {
		dst.DrawTextColored(box.X, 1, "debug: hidden marker shown", core.ColorGray)
	}
}

// drawMarker fills every cell whose center lies inside the circle, plus the
// cell holding the circle's center so tiny markers never vanish.
func (g *Game) drawMarker(dst *core.Screen, inner core.Rect, center core.Point, radius int, r rune, color core.Color) {
	arena := float64(g.state.ArenaSize)
	scaleX := arena / float64(inner.W)
	scaleY := arena / float64(inner.H)
	rr := float64(radius) * float64(radius)

	for cy := 0; cy < inner.H; cy++ {
		ay := (float64(cy) + 0.5) * scaleY
		dy := ay - float64(center.Y)
		for cx := 0; cx < inner.W; cx++ {
			ax := (float64(cx) + 0.5) * scaleX
			dx := ax - float64(center.X)
			if dx*dx+dy*dy <= rr {
				dst.SetCell(inner.X+cx, inner.Y+cy, r, color)
			}
		}
	}

	if center.X < 0 || center.Y < 0 || center.X > g.state.ArenaSize || center.Y > g.state.ArenaSize {
		return
	}
	x, y := cellIn(inner, center, g.state.ArenaSize)
	dst.SetCell(x, y, r, color)
}

// cellIn maps an arena position inside [0, arena] to a cell of inner.
func cellIn(inner core.Rect, p core.Point, arena int) (x, y int) {
	x = inner.X + core.Min(p.X*inner.W/arena, inner.W-1)
	y = inner.Y + core.Min(p.Y*inner.H/arena, inner.H-1)
	return x, y
}
