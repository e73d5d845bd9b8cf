package maps

import (
	"terrafill/internal/grid"
	"terrafill/internal/wang"
)

// Layer is a dense rectangular tile surface with a world-space origin.
// Coordinates passed to TileAt/SetTile are absolute; the layer translates
// them against its origin. Reads outside the bounds return wang.Empty and
// writes outside the bounds are dropped.
type Layer struct {
	origin grid.Point
	width  int
	height int
	cells  []wang.TileRef
}

// NewLayer creates an empty layer of the given size with its top-left cell
// at origin.
func NewLayer(origin grid.Point, width, height int) *Layer {
	return &Layer{
		origin: origin,
		width:  width,
		height: height,
		cells:  make([]wang.TileRef, width*height),
	}
}

// Origin returns the world coordinate of the layer's top-left cell.
func (l *Layer) Origin() grid.Point {
	return l.origin
}

// Size returns the layer dimensions in cells.
func (l *Layer) Size() (w, h int) {
	return l.width, l.height
}

// Bounds returns the world-space rectangle the layer covers.
func (l *Layer) Bounds() grid.Rect {
	return grid.NewRect(l.origin.X, l.origin.Y, l.width, l.height)
}

func (l *Layer) index(p grid.Point) (int, bool) {
	local := p.Sub(l.origin)
	if local.X < 0 || local.X >= l.width || local.Y < 0 || local.Y >= l.height {
		return 0, false
	}
	return local.Y*l.width + local.X, true
}

// TileAt returns the tile at the absolute coordinate p.
func (l *Layer) TileAt(p grid.Point) wang.TileRef {
	i, ok := l.index(p)
	if !ok {
		return wang.Empty
	}
	return l.cells[i]
}

// SetTile places t at the absolute coordinate p.
func (l *Layer) SetTile(p grid.Point, t wang.TileRef) {
	if i, ok := l.index(p); ok {
		l.cells[i] = t
	}
}

// Clear resets a world-space rectangle back to empty.
func (l *Layer) Clear(r grid.Rect) {
	for y := r.MinY; y <= r.MaxY; y++ {
		for x := r.MinX; x <= r.MaxX; x++ {
			l.SetTile(grid.Point{X: x, Y: y}, wang.Empty)
		}
	}
}
