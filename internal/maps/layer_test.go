package maps

import (
	"path/filepath"
	"testing"

	"terrafill/internal/grid"
	"terrafill/internal/wang"
)

func TestLayerOffsetAddressing(t *testing.T) {
	l := NewLayer(grid.Point{X: 10, Y: 20}, 3, 2)

	l.SetTile(grid.Point{X: 10, Y: 20}, 5)
	l.SetTile(grid.Point{X: 12, Y: 21}, 7)

	if got := l.TileAt(grid.Point{X: 10, Y: 20}); got != 5 {
		t.Errorf("TileAt(origin) = %d, want 5", got)
	}
	if got := l.TileAt(grid.Point{X: 12, Y: 21}); got != 7 {
		t.Errorf("TileAt(far corner) = %d, want 7", got)
	}

	// Out-of-bounds reads are empty, out-of-bounds writes are dropped.
	if got := l.TileAt(grid.Point{X: 9, Y: 20}); got != wang.Empty {
		t.Errorf("TileAt(outside) = %d, want Empty", got)
	}
	l.SetTile(grid.Point{X: 13, Y: 20}, 9)
	if got := l.TileAt(grid.Point{X: 13, Y: 20}); got != wang.Empty {
		t.Errorf("out-of-bounds write stuck: %d", got)
	}
}

func TestLayerClear(t *testing.T) {
	l := NewLayer(grid.Point{}, 4, 4)
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			l.SetTile(grid.Point{X: x, Y: y}, 1)
		}
	}

	l.Clear(grid.NewRect(1, 1, 2, 2))

	if got := l.TileAt(grid.Point{X: 1, Y: 1}); got != wang.Empty {
		t.Errorf("cleared cell = %d, want Empty", got)
	}
	if got := l.TileAt(grid.Point{X: 0, Y: 0}); got != 1 {
		t.Errorf("cell outside cleared rect = %d, want 1", got)
	}
}

func TestMapRoundTrip(t *testing.T) {
	m := &Map{
		Name:    "test",
		Tileset: "coast",
		Layer:   NewLayer(grid.Point{X: -2, Y: 3}, 3, 2),
	}
	m.Layer.SetTile(grid.Point{X: -2, Y: 3}, 1)
	m.Layer.SetTile(grid.Point{X: 0, Y: 4}, 4)

	path := filepath.Join(t.TempDir(), "test.json")
	if err := SaveMap(m, path); err != nil {
		t.Fatalf("SaveMap: %v", err)
	}

	got, err := LoadMap(path)
	if err != nil {
		t.Fatalf("LoadMap: %v", err)
	}

	if got.Name != m.Name || got.Tileset != m.Tileset {
		t.Errorf("loaded %q/%q, want %q/%q", got.Name, got.Tileset, m.Name, m.Tileset)
	}
	if got.Layer.Origin() != m.Layer.Origin() {
		t.Errorf("origin = %v, want %v", got.Layer.Origin(), m.Layer.Origin())
	}
	for _, p := range []grid.Point{{X: -2, Y: 3}, {X: 0, Y: 4}, {X: -1, Y: 3}} {
		if got.Layer.TileAt(p) != m.Layer.TileAt(p) {
			t.Errorf("cell %v = %d, want %d", p, got.Layer.TileAt(p), m.Layer.TileAt(p))
		}
	}
}
