package grid

// Grid is a sparse 2D container. Cells that were never set read back as the
// zero value of T.
type Grid[T any] struct {
	cells map[Point]T
}

// NewGrid creates an empty sparse grid.
func NewGrid[T any]() *Grid[T] {
	return &Grid[T]{cells: make(map[Point]T)}
}

// Get returns the value at p, or the zero value if p was never set.
func (g *Grid[T]) Get(p Point) T {
	return g.cells[p]
}

// Set stores v at p.
func (g *Grid[T]) Set(p Point, v T) {
	g.cells[p] = v
}

// Len returns the number of cells that have been set.
func (g *Grid[T]) Len() int {
	return len(g.cells)
}
