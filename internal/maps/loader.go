package maps

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"terrafill/internal/grid"
	"terrafill/internal/wang"
)

// Map is a named tile map document: one layer of tile refs plus the name of
// the tileset whose refs it uses.
type Map struct {
	Name    string
	Tileset string
	Layer   *Layer
}

// jsonMap is the on-disk JSON format.
type jsonMap struct {
	Name    string  `json:"name"`
	Tileset string  `json:"tileset"`
	Width   int     `json:"width"`
	Height  int     `json:"height"`
	OriginX int     `json:"origin_x,omitempty"`
	OriginY int     `json:"origin_y,omitempty"`
	Tiles   [][]int `json:"tiles"`
}

// LoadMap reads a JSON map file from disk.
func LoadMap(path string) (*Map, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read map file: %w", err)
	}

	var jm jsonMap
	if err := json.Unmarshal(data, &jm); err != nil {
		return nil, fmt.Errorf("parse map JSON: %w", err)
	}

	if jm.Name == "" {
		return nil, fmt.Errorf("map has no name")
	}
	if jm.Tileset == "" {
		return nil, fmt.Errorf("map %q names no tileset", jm.Name)
	}
	if jm.Width < 1 || jm.Height < 1 {
		return nil, fmt.Errorf("map %q has invalid size %dx%d", jm.Name, jm.Width, jm.Height)
	}
	if len(jm.Tiles) != jm.Height {
		return nil, fmt.Errorf("map %q: %d tile rows, declared height %d", jm.Name, len(jm.Tiles), jm.Height)
	}

	layer := NewLayer(grid.Point{X: jm.OriginX, Y: jm.OriginY}, jm.Width, jm.Height)
	for y, row := range jm.Tiles {
		if len(row) != jm.Width {
			return nil, fmt.Errorf("map %q: row %d has %d tiles, expected %d", jm.Name, y, len(row), jm.Width)
		}
		for x, ref := range row {
			if ref < 0 {
				return nil, fmt.Errorf("map %q: negative tile ref %d at (%d,%d)", jm.Name, ref, x, y)
			}
			layer.SetTile(grid.Point{X: jm.OriginX + x, Y: jm.OriginY + y}, wang.TileRef(ref))
		}
	}

	return &Map{Name: jm.Name, Tileset: jm.Tileset, Layer: layer}, nil
}

// SaveMap writes a map as JSON to the given path, or to stdout when path is
// empty.
func SaveMap(m *Map, path string) error {
	w, h := m.Layer.Size()
	origin := m.Layer.Origin()

	tiles := make([][]int, h)
	for y := 0; y < h; y++ {
		tiles[y] = make([]int, w)
		for x := 0; x < w; x++ {
			tiles[y][x] = int(m.Layer.TileAt(grid.Point{X: origin.X + x, Y: origin.Y + y}))
		}
	}

	jm := jsonMap{
		Name:    m.Name,
		Tileset: m.Tileset,
		Width:   w,
		Height:  h,
		OriginX: origin.X,
		OriginY: origin.Y,
		Tiles:   tiles,
	}

	data, err := json.MarshalIndent(jm, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal map JSON: %w", err)
	}
	data = append(data, '\n')

	if path == "" {
		_, err = os.Stdout.Write(data)
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write map file: %w", err)
	}
	return nil
}

// LoadMaps scans a directory for *.json files, loads each as a Map, and
// returns them indexed by Name. When tilesets is non-nil, each map's
// tileset reference and tile refs are validated against it.
func LoadMaps(dir string, tilesets map[string]*wang.Set) (map[string]*Map, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read maps directory: %w", err)
	}

	allMaps := make(map[string]*Map)
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		m, err := LoadMap(path)
		if err != nil {
			return nil, fmt.Errorf("load %s: %w", entry.Name(), err)
		}
		if _, exists := allMaps[m.Name]; exists {
			return nil, fmt.Errorf("duplicate map name %q in %s", m.Name, entry.Name())
		}
		if tilesets != nil {
			if err := validateRefs(m, tilesets); err != nil {
				return nil, fmt.Errorf("%s: %w", entry.Name(), err)
			}
		}
		allMaps[m.Name] = m
	}
	return allMaps, nil
}

// validateRefs checks that the map's tileset exists and every non-empty
// tile ref is known to it.
func validateRefs(m *Map, tilesets map[string]*wang.Set) error {
	set, ok := tilesets[m.Tileset]
	if !ok {
		return fmt.Errorf("map %q references unknown tileset %q", m.Name, m.Tileset)
	}

	known := make(map[wang.TileRef]bool, len(set.Tiles()))
	for _, t := range set.Tiles() {
		known[t.Ref] = true
	}

	origin := m.Layer.Origin()
	w, h := m.Layer.Size()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			p := grid.Point{X: origin.X + x, Y: origin.Y + y}
			ref := m.Layer.TileAt(p)
			if ref != wang.Empty && !known[ref] {
				return fmt.Errorf("map %q: tile ref %d at %v not in tileset %q", m.Name, ref, p, m.Tileset)
			}
		}
	}
	return nil
}
