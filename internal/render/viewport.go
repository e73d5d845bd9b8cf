package render

import "terrafill/internal/grid"

// Viewport computes the visible world rectangle for a terminal of the given
// size, centered on the cursor and clamped to the map bounds. hudRows
// reserves screen rows at the bottom.
func Viewport(cursor grid.Point, termW, termH int, bounds grid.Rect, hudRows int) grid.Rect {
	viewW := termW / CellWidth
	viewH := termH - hudRows
	if viewW < 1 {
		viewW = 1
	}
	if viewH < 1 {
		viewH = 1
	}
	if viewW > bounds.Width() {
		viewW = bounds.Width()
	}
	if viewH > bounds.Height() {
		viewH = bounds.Height()
	}

	camX := cursor.X - viewW/2
	camY := cursor.Y - viewH/2

	if camX < bounds.MinX {
		camX = bounds.MinX
	}
	if camY < bounds.MinY {
		camY = bounds.MinY
	}
	if camX+viewW-1 > bounds.MaxX {
		camX = bounds.MaxX - viewW + 1
	}
	if camY+viewH-1 > bounds.MaxY {
		camY = bounds.MaxY - viewH + 1
	}

	return grid.NewRect(camX, camY, viewW, viewH)
}
