package wang

import "testing"

func TestDirectionOpposite(t *testing.T) {
	pairs := [][2]Direction{
		{North, South},
		{NorthEast, SouthWest},
		{East, West},
		{SouthEast, NorthWest},
	}
	for _, pair := range pairs {
		if got := pair[0].Opposite(); got != pair[1] {
			t.Errorf("%s.Opposite() = %s, want %s", pair[0], got, pair[1])
		}
		if got := pair[1].Opposite(); got != pair[0] {
			t.Errorf("%s.Opposite() = %s, want %s", pair[1], got, pair[0])
		}
	}
}

func TestWangIDSlots(t *testing.T) {
	var id WangID
	id = id.SetColorAt(North, 3)
	id = id.SetColorAt(SouthWest, 7)

	if got := id.ColorAt(North); got != 3 {
		t.Errorf("ColorAt(N) = %d, want 3", got)
	}
	if got := id.ColorAt(SouthWest); got != 7 {
		t.Errorf("ColorAt(SW) = %d, want 7", got)
	}
	if got := id.ColorAt(East); got != 0 {
		t.Errorf("ColorAt(E) = %d, want unconstrained", got)
	}

	// Overwriting a slot replaces it without touching its neighbors.
	id = id.SetColorAt(North, 1)
	if got := id.ColorAt(North); got != 1 {
		t.Errorf("ColorAt(N) after overwrite = %d, want 1", got)
	}
	if got := id.ColorAt(NorthEast); got != 0 {
		t.Errorf("ColorAt(NE) = %d, want unconstrained", got)
	}
}

// TestWangIDMask verifies the invariant that the mask is exactly the set of
// non-zero slots.
func TestWangIDMask(t *testing.T) {
	var id WangID
	id = id.SetColorAt(East, 2)
	id = id.SetColorAt(NorthWest, 5)

	want := WangID(0xff)<<(8*uint(East)) | WangID(0xff)<<(8*uint(NorthWest))
	if got := id.Mask(); got != want {
		t.Errorf("Mask() = %016x, want %016x", uint64(got), uint64(want))
	}

	// Clearing a slot removes it from the mask.
	id = id.SetColorAt(East, 0)
	want = WangID(0xff) << (8 * uint(NorthWest))
	if got := id.Mask(); got != want {
		t.Errorf("Mask() after clear = %016x, want %016x", uint64(got), uint64(want))
	}
}

func TestMergeFromAdjacent(t *testing.T) {
	// The tile north of us shows color 4 on its south slot; merging it in
	// through our north slot must copy exactly that color and nothing else.
	var northTile WangID
	northTile = northTile.SetColorAt(South, 4)
	northTile = northTile.SetColorAt(North, 9) // far side, must not leak

	var id WangID
	id = id.SetColorAt(East, 2)

	merged := id.MergeFromAdjacent(northTile, North)
	if got := merged.ColorAt(North); got != 4 {
		t.Errorf("ColorAt(N) = %d, want 4", got)
	}
	if got := merged.ColorAt(East); got != 2 {
		t.Errorf("ColorAt(E) = %d, want 2 (untouched)", got)
	}
	for _, d := range []Direction{NorthEast, SouthEast, South, SouthWest, West, NorthWest} {
		if got := merged.ColorAt(d); got != 0 {
			t.Errorf("ColorAt(%s) = %d, want unconstrained", d, got)
		}
	}
}

func TestWangIDString(t *testing.T) {
	var id WangID
	id = id.SetColorAt(North, 1)
	id = id.SetColorAt(South, 2)
	if got, want := id.String(), "[1,.,.,.,2,.,.,.]"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
