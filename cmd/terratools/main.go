package main

import (
	"fmt"
	"os"
	"strings"

	"terrafill/internal/grid"
	"terrafill/internal/maps"
	"terrafill/internal/render"
	"terrafill/internal/wang"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	cmd := os.Args[1]
	args := os.Args[2:]

	switch cmd {
	case "validate":
		if len(args) != 2 {
			fmt.Fprintln(os.Stderr, "Usage: terratools validate <tilesets-dir> <maps-dir>")
			os.Exit(1)
		}
		os.Exit(runValidate(args[0], args[1]))
	case "viz":
		if len(args) != 2 {
			fmt.Fprintln(os.Stderr, "Usage: terratools viz <tileset-file> <map-file>")
			os.Exit(1)
		}
		runViz(args[0], args[1])
	case "stats":
		if len(args) != 2 {
			fmt.Fprintln(os.Stderr, "Usage: terratools stats <tileset-file> <map-file>")
			os.Exit(1)
		}
		runStats(args[0], args[1])
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", cmd)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Fprintln(os.Stderr, `Usage: terratools <command> <args>

Commands:
  validate <tilesets-dir> <maps-dir>   Validate tilesets and the maps that use them
  viz      <tileset-file> <map-file>   Render a map as colored terminal art
  stats    <tileset-file> <map-file>   Show tile and terrain distribution`)
}

// --- validate ---

func runValidate(tilesetsDir, mapsDir string) int {
	sets, err := wang.LoadSets(tilesetsDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "FAIL: %v\n", err)
		return 1
	}

	for name, set := range sets {
		fmt.Printf("Tileset %q: %d colors, %d tiles", name, len(set.Colors()), len(set.Tiles()))
		if set.IsComplete() {
			fmt.Print(", complete")
		}
		fmt.Println()
	}

	allMaps, err := maps.LoadMaps(mapsDir, sets)
	if err != nil {
		fmt.Fprintf(os.Stderr, "FAIL: %v\n", err)
		return 1
	}

	errors := 0
	for name, m := range allMaps {
		fmt.Printf("Validating %q...\n", name)
		set := sets[m.Tileset]

		mismatches := countSeamMismatches(m.Layer, set)
		if mismatches > 0 {
			fmt.Printf("  ERROR: %d seam mismatches between adjacent tiles\n", mismatches)
			errors += mismatches
			continue
		}

		w, h := m.Layer.Size()
		fmt.Printf("  OK (%dx%d, tileset %q)\n", w, h, m.Tileset)
	}

	if errors > 0 {
		fmt.Printf("\n%d error(s) found\n", errors)
		return 1
	}
	fmt.Printf("\nAll %d maps valid\n", len(allMaps))
	return 0
}

// countSeamMismatches checks every horizontal and vertical seam: the facing
// edge slots of adjacent placed tiles must agree wherever both are constrained.
func countSeamMismatches(layer *maps.Layer, set *wang.Set) int {
	bounds := layer.Bounds()
	mismatches := 0

	for y := bounds.MinY; y <= bounds.MaxY; y++ {
		for x := bounds.MinX; x <= bounds.MaxX; x++ {
			p := grid.Point{X: x, Y: y}
			id := set.IDOfTile(layer.TileAt(p))

			east := set.IDOfTile(layer.TileAt(grid.Point{X: x + 1, Y: y}))
			if conflicts(id.ColorAt(wang.East), east.ColorAt(wang.West)) {
				mismatches++
			}
			south := set.IDOfTile(layer.TileAt(grid.Point{X: x, Y: y + 1}))
			if conflicts(id.ColorAt(wang.South), south.ColorAt(wang.North)) {
				mismatches++
			}
		}
	}
	return mismatches
}

func conflicts(a, b wang.Color) bool {
	return a != 0 && b != 0 && a != b
}

// --- viz ---

func runViz(tilesetPath, mapPath string) {
	set, m := load(tilesetPath, mapPath)
	w, h := m.Layer.Size()

	fmt.Printf("%s (%dx%d, tileset %q)\n", m.Name, w, h, set.Name())
	fmt.Print(render.Dump(m.Layer, set))
}

// --- stats ---

func runStats(tilesetPath, mapPath string) {
	set, m := load(tilesetPath, mapPath)
	w, h := m.Layer.Size()
	bounds := m.Layer.Bounds()
	total := w * h

	fmt.Printf("%s (%dx%d = %d cells)\n\n", m.Name, w, h, total)

	counts := make(map[wang.TileRef]int)
	for y := bounds.MinY; y <= bounds.MaxY; y++ {
		for x := bounds.MinX; x <= bounds.MaxX; x++ {
			counts[m.Layer.TileAt(grid.Point{X: x, Y: y})]++
		}
	}

	// Attribute each cell to terrain colors by its wang id slots.
	colorCells := make(map[wang.Color]float64)
	empty := 0
	for ref, n := range counts {
		if ref == wang.Empty {
			empty += n
			continue
		}
		id := set.IDOfTile(ref)
		for d := wang.Direction(0); d < wang.NumDirections; d++ {
			colorCells[id.ColorAt(d)] += float64(n) / float64(wang.NumDirections)
		}
	}

	type entry struct {
		name  string
		share float64
	}
	var sorted []entry
	for i, c := range set.Colors() {
		sorted = append(sorted, entry{c.Name, colorCells[wang.Color(i+1)] / float64(total) * 100})
	}
	for i := 1; i < len(sorted); i++ {
		for j := i; j > 0 && sorted[j].share > sorted[j-1].share; j-- {
			sorted[j], sorted[j-1] = sorted[j-1], sorted[j]
		}
	}

	for _, e := range sorted {
		bar := strings.Repeat("█", int(e.share/2))
		fmt.Printf("  %-15s %5.1f%% %s\n", e.name, e.share, bar)
	}

	fmt.Printf("\nDistinct tiles: %d of %d in set\n", len(counts)-boolToInt(empty > 0), len(set.Tiles()))
	if empty > 0 {
		fmt.Printf("Empty cells:    %d (%.1f%%)\n", empty, float64(empty)/float64(total)*100)
	}
	if mismatches := countSeamMismatches(m.Layer, set); mismatches > 0 {
		fmt.Printf("Seam mismatches: %d\n", mismatches)
	}
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

func load(tilesetPath, mapPath string) (*wang.Set, *maps.Map) {
	set, err := wang.LoadSet(tilesetPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading tileset: %v\n", err)
		os.Exit(1)
	}
	m, err := maps.LoadMap(mapPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading map: %v\n", err)
		os.Exit(1)
	}
	if m.Tileset != set.Name() {
		fmt.Fprintf(os.Stderr, "Warning: map %q references tileset %q, got %q\n",
			m.Name, m.Tileset, set.Name())
	}
	return set, m
}
