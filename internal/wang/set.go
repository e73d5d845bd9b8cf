package wang

import "fmt"

// ColorDef describes one terrain color of a set: its display name and the
// ANSI color code used by the preview tooling.
type ColorDef struct {
	Name string
	ANSI int
}

// Set is an immutable catalog of tile candidates for one terrain-transition
// scheme, queryable by exact or partial wang id match.
type Set struct {
	name     string
	colors   []ColorDef // indexed by Color-1
	tiles    []Tile
	byRef    map[TileRef]WangID
	complete bool
}

// NewSet builds a set from its colors and tile candidates. Tile wang ids may
// only reference the given colors, refs must be unique and non-empty, and
// probabilities must be positive.
func NewSet(name string, colors []ColorDef, tiles []Tile) (*Set, error) {
	s := &Set{
		name:   name,
		colors: colors,
		tiles:  tiles,
		byRef:  make(map[TileRef]WangID, len(tiles)),
	}

	for i, t := range tiles {
		if t.Ref == Empty {
			return nil, fmt.Errorf("tile %d: ref 0 is reserved for the empty tile", i)
		}
		if _, dup := s.byRef[t.Ref]; dup {
			return nil, fmt.Errorf("tile %d: duplicate tile ref %d", i, t.Ref)
		}
		if t.Probability <= 0 {
			return nil, fmt.Errorf("tile ref %d: probability %v must be positive", t.Ref, t.Probability)
		}
		for d := Direction(0); d < NumDirections; d++ {
			if c := t.ID.ColorAt(d); int(c) > len(colors) {
				return nil, fmt.Errorf("tile ref %d: slot %s has color %d, set has %d colors",
					t.Ref, d, c, len(colors))
			}
		}
		s.byRef[t.Ref] = t.ID
	}

	s.complete = computeComplete(len(colors), tiles)
	return s, nil
}

// Name returns the set's name.
func (s *Set) Name() string {
	return s.name
}

// Colors returns the set's color table, indexed by Color-1.
func (s *Set) Colors() []ColorDef {
	return s.colors
}

// ColorName returns the display name of a color, or "" for the
// unconstrained color 0.
func (s *Set) ColorName(c Color) string {
	if c == 0 || int(c) > len(s.colors) {
		return ""
	}
	return s.colors[c-1].Name
}

// Tiles returns all tile candidates.
func (s *Set) Tiles() []Tile {
	return s.tiles
}

// IDOfTile returns the wang id of a placed tile, or the fully unconstrained
// id for Empty and unknown refs.
func (s *Set) IDOfTile(t TileRef) WangID {
	return s.byRef[t]
}

// matches reports whether a candidate id satisfies a query id: every slot
// the query constrains must carry the same color in the candidate; slots the
// query leaves free never conflict.
func matches(query, candidate WangID) bool {
	mask := query.Mask()
	return candidate&mask == query&mask
}

// FindMatches returns every candidate satisfying the query id, treating the
// query's unconstrained slots as wildcards.
func (s *Set) FindMatches(query WangID) []Tile {
	var out []Tile
	for _, t := range s.tiles {
		if matches(query, t.ID) {
			out = append(out, t)
		}
	}
	return out
}

// WildIDUsed reports whether some candidate could satisfy the query id,
// with unconstrained slots treated as wildcards.
func (s *Set) WildIDUsed(query WangID) bool {
	for _, t := range s.tiles {
		if matches(query, t.ID) {
			return true
		}
	}
	return false
}

// IsComplete reports whether every combination of the set's colors across
// all eight slots has at least one candidate. A complete set can fill any
// constraint without lookahead.
func (s *Set) IsComplete() bool {
	return s.complete
}

func computeComplete(numColors int, tiles []Tile) bool {
	if numColors == 0 {
		return false
	}

	// Count distinct fully constrained ids; partially constrained tiles
	// never contribute to completeness.
	distinct := make(map[WangID]struct{}, len(tiles))
	for _, t := range tiles {
		full := true
		for d := Direction(0); d < NumDirections; d++ {
			if t.ID.ColorAt(d) == 0 {
				full = false
				break
			}
		}
		if full {
			distinct[t.ID] = struct{}{}
		}
	}

	needed := uint64(1)
	for i := 0; i < NumDirections; i++ {
		needed *= uint64(numColors)
	}
	return uint64(len(distinct)) == needed
}

// IDFromSurrounding combines the wang ids of a cell's eight neighbors
// (ordered N..NW clockwise, unconstrained for empty cells) into the
// constraint the cell itself must satisfy.
//
// Each cardinal slot comes from the facing slot of the cardinal neighbor.
// Each corner slot is shared with three neighbors; the diagonal neighbor is
// preferred, then either adjacent cardinal neighbor.
func IDFromSurrounding(surr [NumDirections]WangID) WangID {
	var id WangID

	for _, d := range []Direction{North, East, South, West} {
		id = id.SetColorAt(d, surr[d].ColorAt(d.Opposite()))
	}

	for _, d := range []Direction{NorthEast, SouthEast, SouthWest, NorthWest} {
		c := surr[d].ColorAt(d.Opposite())
		if c == 0 {
			// The preceding cardinal neighbor's far corner on our side.
			c = surr[(d+7)%NumDirections].ColorAt((d + 2) % NumDirections)
		}
		if c == 0 {
			// The following cardinal neighbor's near corner on our side.
			c = surr[(d+1)%NumDirections].ColorAt((d + 6) % NumDirections)
		}
		id = id.SetColorAt(d, c)
	}

	return id
}
