package wang

import "fmt"

// maxGeneratedTiles caps GenerateCompleteSet; beyond this a complete set is
// not a sensible thing to materialize.
const maxGeneratedTiles = 1 << 16

// GenerateCompleteSet builds a synthetic set containing one unit-weight tile
// for every combination of the given colors across all eight slots. Tile
// refs are assigned 1..n in enumeration order, so the ref alone determines
// the wang id. Useful as a fallback tileset and for exercising the
// complete-set fast path.
func GenerateCompleteSet(name string, colors []ColorDef) (*Set, error) {
	n := len(colors)
	if n == 0 {
		return nil, fmt.Errorf("generate set %q: need at least one color", name)
	}

	count := 1
	for i := 0; i < NumDirections; i++ {
		count *= n
		if count > maxGeneratedTiles {
			return nil, fmt.Errorf("generate set %q: %d colors need more than %d tiles",
				name, n, maxGeneratedTiles)
		}
	}

	tiles := make([]Tile, 0, count)
	for i := 0; i < count; i++ {
		var id WangID
		rem := i
		for d := Direction(0); d < NumDirections; d++ {
			id = id.SetColorAt(d, Color(rem%n+1))
			rem /= n
		}
		tiles = append(tiles, Tile{Ref: TileRef(i + 1), ID: id, Probability: 1})
	}

	return NewSet(name, colors, tiles)
}

// DefaultSet returns a built-in complete two-color set, used when no
// tileset file is available.
func DefaultSet() *Set {
	s, err := GenerateCompleteSet("default", []ColorDef{
		{Name: "grass", ANSI: 32},
		{Name: "water", ANSI: 34},
	})
	if err != nil {
		// Two colors always fit the cap.
		panic(err)
	}
	return s
}
