package grid

// StaggerAxis selects which axis of a staggered grid carries the half-cell
// offset.
type StaggerAxis int

const (
	StaggerX StaggerAxis = iota
	StaggerY
)

// StaggerIndex selects whether odd or even rows/columns are the shifted ones.
type StaggerIndex int

const (
	StaggerOdd StaggerIndex = iota
	StaggerEven
)

// Topology describes how grid cells are laid out, which determines who the
// eight neighbors of a cell are. The zero value is the plain orthogonal grid.
type Topology struct {
	Staggered bool
	Axis      StaggerAxis
	Index     StaggerIndex
}

// Orthogonal returns the standard square-grid topology.
func Orthogonal() Topology {
	return Topology{}
}

// Staggered returns a staggered (hex-like) topology with the given axis and
// shifted index.
func Staggered(axis StaggerAxis, index StaggerIndex) Topology {
	return Topology{Staggered: true, Axis: axis, Index: index}
}

// orthoOffsets are the eight neighbor offsets clockwise from north.
var orthoOffsets = [8]Point{
	{0, -1},  // N
	{1, -1},  // NE
	{1, 0},   // E
	{1, 1},   // SE
	{0, 1},   // S
	{-1, 1},  // SW
	{-1, 0},  // W
	{-1, -1}, // NW
}

// Neighbors returns the eight neighbors of p in fixed clockwise order
// starting at north: N, NE, E, SE, S, SW, W, NW.
//
// On a staggered grid the four cells touching p's corners take the cardinal
// slots (they are the visually adjacent cells), while the cardinal-offset
// slots are two cells away along the stagger axis and one cell away along
// the other axis.
func (t Topology) Neighbors(p Point) [8]Point {
	var out [8]Point

	if !t.Staggered {
		for i, d := range orthoOffsets {
			out[i] = p.Add(d)
		}
		return out
	}

	out[0] = t.topRight(p)
	out[2] = t.bottomRight(p)
	out[4] = t.bottomLeft(p)
	out[6] = t.topLeft(p)

	if t.Axis == StaggerX {
		out[1] = p.Add(Point{2, 0})
		out[3] = p.Add(Point{0, 1})
		out[5] = p.Add(Point{-2, 0})
		out[7] = p.Add(Point{0, -1})
	} else {
		out[1] = p.Add(Point{1, 0})
		out[3] = p.Add(Point{0, 2})
		out[5] = p.Add(Point{-1, 0})
		out[7] = p.Add(Point{0, -2})
	}

	return out
}

// shifted reports whether the row (StaggerY) or column (StaggerX) with
// coordinate v is one of the half-cell-offset lines.
func (t Topology) shifted(v int) bool {
	if t.Index == StaggerOdd {
		return v&1 == 1
	}
	return v&1 == 0
}

func (t Topology) topLeft(p Point) Point {
	if t.Axis == StaggerY {
		if t.shifted(p.Y) {
			return Point{p.X, p.Y - 1}
		}
		return Point{p.X - 1, p.Y - 1}
	}
	if t.shifted(p.X) {
		return Point{p.X - 1, p.Y}
	}
	return Point{p.X - 1, p.Y - 1}
}

func (t Topology) topRight(p Point) Point {
	if t.Axis == StaggerY {
		if t.shifted(p.Y) {
			return Point{p.X + 1, p.Y - 1}
		}
		return Point{p.X, p.Y - 1}
	}
	if t.shifted(p.X) {
		return Point{p.X + 1, p.Y}
	}
	return Point{p.X + 1, p.Y - 1}
}

func (t Topology) bottomLeft(p Point) Point {
	if t.Axis == StaggerY {
		if t.shifted(p.Y) {
			return Point{p.X, p.Y + 1}
		}
		return Point{p.X - 1, p.Y + 1}
	}
	if t.shifted(p.X) {
		return Point{p.X - 1, p.Y + 1}
	}
	return Point{p.X - 1, p.Y}
}

func (t Topology) bottomRight(p Point) Point {
	if t.Axis == StaggerY {
		if t.shifted(p.Y) {
			return Point{p.X + 1, p.Y + 1}
		}
		return Point{p.X, p.Y + 1}
	}
	if t.shifted(p.X) {
		return Point{p.X + 1, p.Y + 1}
	}
	return Point{p.X + 1, p.Y}
}
