package grid

import "testing"

// TestOrthogonalNeighbors verifies the fixed clockwise neighbor order on a
// plain square grid.
func TestOrthogonalNeighbors(t *testing.T) {
	got := Orthogonal().Neighbors(Point{10, 20})
	want := [8]Point{
		{10, 19}, // N
		{11, 19}, // NE
		{11, 20}, // E
		{11, 21}, // SE
		{10, 21}, // S
		{9, 21},  // SW
		{9, 20},  // W
		{9, 19},  // NW
	}
	if got != want {
		t.Errorf("Neighbors(10,20) = %v, want %v", got, want)
	}
}

// TestStaggeredNeighbors derives the neighbor set independently for both
// stagger axes and both stagger indices, for a shifted and an unshifted cell
// each. The mapping is not symmetric between the two axes, so every case is
// spelled out.
func TestStaggeredNeighbors(t *testing.T) {
	tests := []struct {
		name  string
		axis  StaggerAxis
		index StaggerIndex
		p     Point
		want  [8]Point
	}{
		{
			// Odd rows are shifted half a cell right; row 3 is shifted.
			name: "staggerY odd, shifted row", axis: StaggerY, index: StaggerOdd, p: Point{4, 3},
			want: [8]Point{
				{5, 2}, // N slot = topRight
				{5, 3}, // NE = +1 x
				{5, 4}, // E slot = bottomRight
				{4, 5}, // SE = +2 y
				{4, 4}, // S slot = bottomLeft
				{3, 3}, // SW = -1 x
				{4, 2}, // W slot = topLeft
				{4, 1}, // NW = -2 y
			},
		},
		{
			name: "staggerY odd, unshifted row", axis: StaggerY, index: StaggerOdd, p: Point{4, 2},
			want: [8]Point{
				{4, 1}, {5, 2}, {4, 3}, {4, 4},
				{3, 3}, {3, 2}, {3, 1}, {4, 0},
			},
		},
		{
			// With StaggerEven the even rows are the shifted ones, so the
			// same even-row cell now gets the shifted-row neighbor set.
			name: "staggerY even, shifted row", axis: StaggerY, index: StaggerEven, p: Point{4, 2},
			want: [8]Point{
				{5, 1}, {5, 2}, {5, 3}, {4, 4},
				{4, 3}, {3, 2}, {4, 1}, {4, 0},
			},
		},
		{
			// Odd columns are shifted half a cell down; column 3 is shifted.
			name: "staggerX odd, shifted column", axis: StaggerX, index: StaggerOdd, p: Point{3, 4},
			want: [8]Point{
				{4, 4}, // N slot = topRight
				{5, 4}, // NE = +2 x
				{4, 5}, // E slot = bottomRight
				{3, 5}, // SE = +1 y
				{2, 5}, // S slot = bottomLeft
				{1, 4}, // SW = -2 x
				{2, 4}, // W slot = topLeft
				{3, 3}, // NW = -1 y
			},
		},
		{
			name: "staggerX odd, unshifted column", axis: StaggerX, index: StaggerOdd, p: Point{2, 4},
			want: [8]Point{
				{3, 3}, {4, 4}, {3, 4}, {2, 5},
				{1, 4}, {0, 4}, {1, 3}, {2, 3},
			},
		},
		{
			name: "staggerX even, shifted column", axis: StaggerX, index: StaggerEven, p: Point{2, 4},
			want: [8]Point{
				{3, 4}, {4, 4}, {3, 5}, {2, 5},
				{1, 5}, {0, 4}, {1, 4}, {2, 3},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Staggered(tt.axis, tt.index).Neighbors(tt.p)
			if got != tt.want {
				t.Errorf("Neighbors(%v) = %v, want %v", tt.p, got, tt.want)
			}
		})
	}
}
