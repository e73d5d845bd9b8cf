package wang

import "terrafill/internal/grid"

// TileRef identifies a placeable tile within a tileset. 0 is the empty tile.
type TileRef int

// Empty is the absent tile: an unfilled cell reads back as Empty.
const Empty TileRef = 0

// Tile is a tile candidate: a placeable tile together with the wang id it
// satisfies when placed and its selection weight.
type Tile struct {
	Ref         TileRef
	ID          WangID
	Probability float64
}

// Source provides read access to placed tiles. Coordinates are absolute;
// reads outside the surface return Empty.
type Source interface {
	TileAt(p grid.Point) TileRef
}

// Target is a Source the filler can also write into. Writes outside the
// surface bounds are dropped.
type Target interface {
	Source
	SetTile(p grid.Point, t TileRef)
}
