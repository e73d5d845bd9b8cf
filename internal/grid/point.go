package grid

import "fmt"

// Point is an integer grid coordinate.
type Point struct {
	X, Y int
}

// Add returns the component-wise sum of p and q.
func (p Point) Add(q Point) Point {
	return Point{p.X + q.X, p.Y + q.Y}
}

// Sub returns the component-wise difference of p and q.
func (p Point) Sub(q Point) Point {
	return Point{p.X - q.X, p.Y - q.Y}
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Rect is an axis-aligned rectangle with inclusive bounds.
type Rect struct {
	MinX, MinY, MaxX, MaxY int
}

// NewRect builds a rect from a top-left corner and a size.
func NewRect(x, y, w, h int) Rect {
	return Rect{MinX: x, MinY: y, MaxX: x + w - 1, MaxY: y + h - 1}
}

// Contains reports whether p lies within the rect.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.MinX && p.X <= r.MaxX && p.Y >= r.MinY && p.Y <= r.MaxY
}

// Width returns the horizontal extent in cells.
func (r Rect) Width() int {
	return r.MaxX - r.MinX + 1
}

// Height returns the vertical extent in cells.
func (r Rect) Height() int {
	return r.MaxY - r.MinY + 1
}

// Region is a set of grid coordinates expressed as a union of rectangles.
// The rectangles are not required to be disjoint.
type Region struct {
	rects []Rect
}

// NewRegion builds a region from the given rectangles.
func NewRegion(rects ...Rect) Region {
	return Region{rects: rects}
}

// Contains reports whether p lies inside any of the region's rectangles.
func (g Region) Contains(p Point) bool {
	for _, r := range g.rects {
		if r.Contains(p) {
			return true
		}
	}
	return false
}

// Rects returns the rectangles making up the region.
func (g Region) Rects() []Rect {
	return g.rects
}

// Empty reports whether the region covers no cells.
func (g Region) Empty() bool {
	for _, r := range g.rects {
		if r.Width() > 0 && r.Height() > 0 {
			return false
		}
	}
	return true
}
