package wang

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// colorNames maps color names from tileset JSON to ANSI codes.
var colorNames = map[string]int{
	"black":          30,
	"red":            31,
	"green":          32,
	"yellow":         33,
	"blue":           34,
	"magenta":        35,
	"cyan":           36,
	"white":          37,
	"gray":           90,
	"grey":           90,
	"bright_red":     91,
	"bright_green":   92,
	"bright_yellow":  93,
	"bright_blue":    94,
	"bright_magenta": 95,
	"bright_cyan":    96,
	"bright_white":   97,
}

func resolveColor(name string) int {
	if code, ok := colorNames[name]; ok {
		return code
	}
	return 37
}

// jsonSet is the on-disk tileset format.
type jsonSet struct {
	Name   string      `json:"name"`
	Colors []jsonColor `json:"colors"`
	Tiles  []jsonTile  `json:"tiles"`
}

type jsonColor struct {
	Name  string `json:"name"`
	Color string `json:"color"`
}

type jsonTile struct {
	Tile        int     `json:"tile"`
	WangID      []int   `json:"wangid"`
	Probability float64 `json:"probability,omitempty"`
}

// LoadSet reads a JSON tileset file from disk.
func LoadSet(path string) (*Set, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read tileset file: %w", err)
	}

	var js jsonSet
	if err := json.Unmarshal(data, &js); err != nil {
		return nil, fmt.Errorf("parse tileset JSON: %w", err)
	}

	if js.Name == "" {
		return nil, fmt.Errorf("tileset has no name")
	}
	if len(js.Colors) == 0 {
		return nil, fmt.Errorf("tileset %q has no colors", js.Name)
	}

	colors := make([]ColorDef, len(js.Colors))
	for i, jc := range js.Colors {
		if jc.Name == "" {
			return nil, fmt.Errorf("tileset %q: color %d has no name", js.Name, i+1)
		}
		colors[i] = ColorDef{Name: jc.Name, ANSI: resolveColor(jc.Color)}
	}

	tiles := make([]Tile, len(js.Tiles))
	for i, jt := range js.Tiles {
		if len(jt.WangID) != NumDirections {
			return nil, fmt.Errorf("tileset %q: tile %d has %d wangid slots, expected %d",
				js.Name, jt.Tile, len(jt.WangID), NumDirections)
		}
		var id WangID
		for d, c := range jt.WangID {
			if c < 0 || c > len(js.Colors) {
				return nil, fmt.Errorf("tileset %q: tile %d slot %s has color %d, have %d colors",
					js.Name, jt.Tile, Direction(d), c, len(js.Colors))
			}
			id = id.SetColorAt(Direction(d), Color(c))
		}
		prob := jt.Probability
		if prob == 0 {
			prob = 1
		}
		tiles[i] = Tile{Ref: TileRef(jt.Tile), ID: id, Probability: prob}
	}

	return NewSet(js.Name, colors, tiles)
}

// LoadSets scans a directory for *.json files, loads each as a Set, and
// returns them indexed by name.
func LoadSets(dir string) (map[string]*Set, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read tilesets directory: %w", err)
	}

	sets := make(map[string]*Set)
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		s, err := LoadSet(path)
		if err != nil {
			return nil, fmt.Errorf("load %s: %w", entry.Name(), err)
		}
		if _, exists := sets[s.Name()]; exists {
			return nil, fmt.Errorf("duplicate tileset name %q in %s", s.Name(), entry.Name())
		}
		sets[s.Name()] = s
	}
	return sets, nil
}
