package render

import (
	"strings"

	"terrafill/internal/grid"
	"terrafill/internal/maps"
	"terrafill/internal/wang"
)

// TileRGB returns the display color for a placed tile: the dominant terrain
// color of its wang id, resolved through the set's color table. ok is false
// for empty cells and refs the set does not know.
func TileRGB(set *wang.Set, ref wang.TileRef) (r, g, b uint8, ok bool) {
	if ref == wang.Empty {
		return 0, 0, 0, false
	}
	id := set.IDOfTile(ref)
	if id == 0 {
		return 0, 0, 0, false
	}

	var counts [256]int
	best := wang.Color(0)
	for d := wang.Direction(0); d < wang.NumDirections; d++ {
		c := id.ColorAt(d)
		if c == 0 {
			continue
		}
		counts[c]++
		if best == 0 || counts[c] > counts[best] || (counts[c] == counts[best] && c < best) {
			best = c
		}
	}

	colors := set.Colors()
	if best == 0 || int(best) > len(colors) {
		return 0, 0, 0, false
	}
	r, g, b = AnsiToRGB(colors[best-1].ANSI)
	return r, g, b, true
}

// Frame renders the world rectangle view of a layer as a full ANSI frame,
// one screen row per world row, CellWidth columns per cell. Empty cells are
// drawn as a dim checker so unfilled holes stand out; the cursor cell, if
// inside the view, is drawn with bracket markers.
func Frame(layer *maps.Layer, set *wang.Set, view grid.Rect, cursor grid.Point, showCursor bool) string {
	var sb strings.Builder

	for y := view.MinY; y <= view.MaxY; y++ {
		sb.WriteString(MoveTo(y-view.MinY+1, 1))
		for x := view.MinX; x <= view.MaxX; x++ {
			p := grid.Point{X: x, Y: y}

			text := strings.Repeat(" ", CellWidth)
			var fr, fg, fb uint8 = 255, 255, 255
			br, bg, bb, ok := TileRGB(set, layer.TileAt(p))
			if !ok {
				br, bg, bb = 20, 20, 28
				fr, fg, fb = 70, 70, 80
				text = "··"
			}
			if showCursor && p == cursor {
				text = "[]"
			}

			writeCellSGR(&sb, text, fr, fg, fb, br, bg, bb)
		}
		sb.WriteString(Reset)
	}

	return sb.String()
}

// Dump renders the full layer as plain lines (no cursor, trailing newline
// per row), for CLI visualization.
func Dump(layer *maps.Layer, set *wang.Set) string {
	bounds := layer.Bounds()
	var sb strings.Builder

	for y := bounds.MinY; y <= bounds.MaxY; y++ {
		for x := bounds.MinX; x <= bounds.MaxX; x++ {
			text := strings.Repeat(" ", CellWidth)
			var fr, fg, fb uint8 = 255, 255, 255
			br, bg, bb, ok := TileRGB(set, layer.TileAt(grid.Point{X: x, Y: y}))
			if !ok {
				br, bg, bb = 20, 20, 28
				fr, fg, fb = 70, 70, 80
				text = "··"
			}
			writeCellSGR(&sb, text, fr, fg, fb, br, bg, bb)
		}
		sb.WriteString(Reset)
		sb.WriteByte('\n')
	}

	return sb.String()
}
