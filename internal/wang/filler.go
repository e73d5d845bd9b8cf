package wang

import (
	"math/rand"

	"terrafill/internal/grid"
)

// Filler places tiles from a set so that the terrain colors of adjacent
// tiles match. It is a best-effort heuristic: cells it cannot satisfy are
// left empty and reported, never retried.
//
// A Filler is not safe for concurrent use; each fill runs to completion on
// the calling goroutine.
type Filler struct {
	set  *Set
	topo grid.Topology
	rng  *rand.Rand
}

// NewFiller creates a filler over the given set and topology, drawing all
// random choices from rng.
func NewFiller(set *Set, topo grid.Topology, rng *rand.Rand) *Filler {
	return &Filler{set: set, topo: topo, rng: rng}
}

// FillResult reports the outcome of a region fill.
type FillResult struct {
	Placed int

	// Unplaced lists, in visit order, the cells no candidate could be
	// found for. These stay empty in the target.
	Unplaced []grid.Point
}

// resolveTile returns the tile occupying p: cells inside the fill region
// read from the in-progress front surface, everything else from the
// background.
func (f *Filler) resolveTile(back, front Source, region grid.Region, p grid.Point) TileRef {
	if region.Contains(p) {
		return front.TileAt(p)
	}
	return back.TileAt(p)
}

// SurroundingID computes the constraint implied at p by the tiles already
// fixed around it, reading through the region/front/back view.
func (f *Filler) SurroundingID(back, front Source, region grid.Region, p grid.Point) WangID {
	var ids [NumDirections]WangID
	for i, q := range f.topo.Neighbors(p) {
		ids[i] = f.set.IDOfTile(f.resolveTile(back, front, region, q))
	}
	return IDFromSurrounding(ids)
}

// BackgroundID computes the constraint implied at p by background tiles
// alone; neighbors inside the region contribute nothing even if the
// in-progress fill has already placed something there.
func (f *Filler) BackgroundID(back Source, region grid.Region, p grid.Point) WangID {
	var ids [NumDirections]WangID
	for i, q := range f.topo.Neighbors(p) {
		if !region.Contains(q) {
			ids[i] = f.set.IDOfTile(back.TileAt(q))
		}
	}
	return IDFromSurrounding(ids)
}

// FindFittingTile selects a tile for the single cell p so that it matches
// the tiles already surrounding it. It is meant for incremental, one cell
// at a time fills (brush stamping), not batch region fills.
//
// When the set is incomplete, each candidate is vetted with a lookahead:
// for every still-empty neighbor the constraint that would result from this
// placement must remain satisfiable by some tile. Candidates failing the
// check are discarded and redrawn; if the pool runs out, the last drawn
// candidate is returned as a best-effort fallback. The boolean is false
// only when no candidate matched at all.
func (f *Filler) FindFittingTile(back, front Source, region grid.Region, p grid.Point) (Tile, bool) {
	id := f.SurroundingID(back, front, region, p)

	candidates := NewRandomPicker[Tile](f.rng)
	for _, t := range f.set.FindMatches(id) {
		candidates.Add(t, t.Probability)
	}
	if candidates.IsEmpty() {
		return Tile{}, false
	}

	// A complete set has a candidate for every constraint the placement
	// could impose on a neighbor, so any match is safe as-is.
	if f.set.IsComplete() {
		t, _ := candidates.Pick()
		return t, true
	}

	var last Tile
	for !candidates.IsEmpty() {
		t, _ := candidates.Take()
		last = t

		fits := true
		for i, q := range f.topo.Neighbors(p) {
			if f.resolveTile(back, front, region, q) != Empty {
				continue
			}
			adjacent := f.SurroundingID(back, front, region, q)
			adjacent = adjacent.MergeFromAdjacent(t.ID, Direction(i).Opposite())
			if !f.set.WildIDUsed(adjacent) {
				fits = false
				break
			}
		}
		if fits {
			return t, true
		}
	}

	return last, true
}

// FillRegion fills every cell of region in target with best-matching tiles,
// connecting seamlessly to the tiles surrounding the region in back.
//
// Phase A seeds the constraint grid: each region-edge cell whose orthogonal
// outside neighbor is not itself part of the region imports that neighbor's
// facing color. Phase B then visits the region in raster order, placing the
// best match for each cell's accumulated constraint and propagating the
// placed tile's colors into the constraints of its still-empty neighbors.
// Placed cells are never revisited.
//
// seeds may carry caller-provided constraints and is mutated during the
// fill; pass nil to start unconstrained.
func (f *Filler) FillRegion(target Target, back Source, region grid.Region, seeds *grid.Grid[WangID]) FillResult {
	ids := seeds
	if ids == nil {
		ids = grid.NewGrid[WangID]()
	}

	merge := func(inside grid.Point, outside grid.Point, d Direction) {
		if region.Contains(outside) {
			return
		}
		outsideID := f.set.IDOfTile(back.TileAt(outside))
		ids.Set(inside, ids.Get(inside).MergeFromAdjacent(outsideID, d))
	}

	for _, r := range region.Rects() {
		for x := r.MinX; x <= r.MaxX; x++ {
			merge(grid.Point{X: x, Y: r.MinY}, grid.Point{X: x, Y: r.MinY - 1}, North)
			merge(grid.Point{X: x, Y: r.MaxY}, grid.Point{X: x, Y: r.MaxY + 1}, South)
		}
		for y := r.MinY; y <= r.MaxY; y++ {
			merge(grid.Point{X: r.MinX, Y: y}, grid.Point{X: r.MinX - 1, Y: y}, West)
			merge(grid.Point{X: r.MaxX, Y: y}, grid.Point{X: r.MaxX + 1, Y: y}, East)
		}
	}

	var res FillResult
	for _, r := range region.Rects() {
		for y := r.MinY; y <= r.MaxY; y++ {
			for x := r.MinX; x <= r.MaxX; x++ {
				p := grid.Point{X: x, Y: y}

				t, ok := f.bestMatch(ids.Get(p))
				if !ok {
					res.Unplaced = append(res.Unplaced, p)
					continue
				}

				target.SetTile(p, t.Ref)
				res.Placed++

				for i, q := range f.topo.Neighbors(p) {
					if target.TileAt(q) != Empty {
						continue
					}
					ids.Set(q, ids.Get(q).MergeFromAdjacent(t.ID, Direction(i).Opposite()))
				}
			}
		}
	}
	return res
}

// bestMatch finds the tile minimizing mismatch against the constraint id.
// Candidates must carry the exact colors of every constrained slot; among
// those, the penalty is the count of slots (out of all eight) whose colors
// differ, and ties at the lowest penalty are broken by weighted random
// choice.
func (f *Filler) bestMatch(id WangID) (Tile, bool) {
	mask := id.Mask()
	masked := id & mask

	ties := NewRandomPicker[Tile](f.rng)
	lowest := NumDirections + 1

	for _, t := range f.set.Tiles() {
		if t.ID&mask != masked {
			continue
		}

		penalty := 0
		for d := Direction(0); d < NumDirections; d++ {
			if t.ID.ColorAt(d) != id.ColorAt(d) {
				penalty++
			}
		}

		if penalty > lowest {
			continue
		}
		if penalty < lowest {
			ties.Clear()
			lowest = penalty
		}
		ties.Add(t, t.Probability)
	}

	return ties.Pick()
}
