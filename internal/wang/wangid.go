package wang

import (
	"fmt"
	"strings"
)

// Direction indexes the eight compass slots of a WangID, clockwise from
// north. The order matches grid.Topology.Neighbors.
type Direction int

const (
	North Direction = iota
	NorthEast
	East
	SouthEast
	South
	SouthWest
	West
	NorthWest

	// NumDirections is the number of compass slots in a WangID.
	NumDirections = 8
)

var opposites = [NumDirections]Direction{
	South, SouthWest, West, NorthWest,
	North, NorthEast, East, SouthEast,
}

// Opposite returns the geometrically opposite direction (N↔S, NE↔SW, ...).
func (d Direction) Opposite() Direction {
	return opposites[d]
}

var directionNames = [NumDirections]string{"N", "NE", "E", "SE", "S", "SW", "W", "NW"}

func (d Direction) String() string {
	if d < 0 || d >= NumDirections {
		return fmt.Sprintf("Direction(%d)", int(d))
	}
	return directionNames[d]
}

// Color is a terrain color id within a set. 0 means "no color" and marks an
// unconstrained slot.
type Color uint8

// WangID is an 8-slot vector of terrain colors, one slot per Direction,
// packed 8 bits per slot. A slot holding 0 is unconstrained. The set of
// constrained slots (the mask) is implied by the non-zero slots, never
// stored separately.
type WangID uint64

// ColorAt returns the color in the given direction slot.
func (w WangID) ColorAt(d Direction) Color {
	return Color(w >> (8 * uint(d)))
}

// SetColorAt returns a copy of w with the given direction slot replaced.
func (w WangID) SetColorAt(d Direction, c Color) WangID {
	shift := 8 * uint(d)
	return w&^(WangID(0xff)<<shift) | WangID(c)<<shift
}

// Mask returns a WangID-shaped bit mask with 0xff in every constrained slot
// and 0 in every unconstrained one.
func (w WangID) Mask() WangID {
	var m WangID
	for d := Direction(0); d < NumDirections; d++ {
		if w.ColorAt(d) != 0 {
			m |= WangID(0xff) << (8 * uint(d))
		}
	}
	return m
}

// MergeFromAdjacent sets the slot facing direction d to the color the cell
// lying in direction d shows back toward us (its opposite slot). All other
// slots are left untouched. This one primitive covers both border seeding
// and forward propagation after a placement.
func (w WangID) MergeFromAdjacent(adjacent WangID, d Direction) WangID {
	return w.SetColorAt(d, adjacent.ColorAt(d.Opposite()))
}

// String renders the eight slots clockwise from north, with "." for
// unconstrained slots.
func (w WangID) String() string {
	parts := make([]string, NumDirections)
	for d := Direction(0); d < NumDirections; d++ {
		if c := w.ColorAt(d); c != 0 {
			parts[d] = fmt.Sprintf("%d", c)
		} else {
			parts[d] = "."
		}
	}
	return "[" + strings.Join(parts, ",") + "]"
}
