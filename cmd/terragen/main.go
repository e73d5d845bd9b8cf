package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"strconv"
	"strings"
	"time"

	"terrafill/internal/grid"
	"terrafill/internal/maps"
	"terrafill/internal/noise"
	"terrafill/internal/wang"
)

func main() {
	tilesetPath := flag.String("tileset", "", "tileset JSON file (default: built-in grass/water set)")
	seed := flag.Int64("seed", 0, "random seed (0 = random)")
	size := flag.String("size", "60x40", "map size as WxH")
	name := flag.String("name", "Terrain", "map name")
	out := flag.String("out", "", "output file (default: stdout)")
	flag.Parse()

	w, h, err := parseSize(*size)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	set := wang.DefaultSet()
	if *tilesetPath != "" {
		set, err = wang.LoadSet(*tilesetPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading tileset: %v\n", err)
			os.Exit(1)
		}
	}

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}

	fmt.Fprintf(os.Stderr, "Generating %dx%d map %q with tileset %q (seed %d)...\n",
		w, h, *name, set.Name(), *seed)

	layer, unplaced := generate(set, w, h, *seed)
	if unplaced > 0 {
		fmt.Fprintf(os.Stderr, "Warning: %d cells had no fitting tile\n", unplaced)
	}

	m := &maps.Map{Name: *name, Tileset: set.Name(), Layer: layer}
	if err := maps.SaveMap(m, *out); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing map: %v\n", err)
		os.Exit(1)
	}
	if *out != "" {
		fmt.Fprintf(os.Stderr, "Wrote %s\n", *out)
	}

	printDistribution(layer, set, w, h)
}

func parseSize(s string) (int, int, error) {
	parts := strings.SplitN(s, "x", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid size %q (expected WxH)", s)
	}
	w, err := strconv.Atoi(parts[0])
	if err != nil || w < 4 {
		return 0, 0, fmt.Errorf("invalid width %q (minimum 4)", parts[0])
	}
	h, err := strconv.Atoi(parts[1])
	if err != nil || h < 4 {
		return 0, 0, fmt.Errorf("invalid height %q (minimum 4)", parts[1])
	}
	return w, h, nil
}

// generate seeds every cell with a uniform wang id chosen from noise fields,
// then runs the constraint fill. The seeds bias each cell toward its terrain
// color while the penalty search settles the transitions between regions.
func generate(set *wang.Set, w, h int, seed int64) (*maps.Layer, int) {
	elevation := noise.NewSimplex(seed)
	moisture := noise.NewSimplex(seed + 1)

	numColors := len(set.Colors())
	seeds := grid.NewGrid[wang.WangID]()

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			fx, fy := float64(x), float64(y)
			elev := elevation.Fractal(fx, fy, 0.04, 4, 2.0, 0.5)
			moist := moisture.Fractal(fx, fy, 0.06, 3, 2.0, 0.5)

			c := classify(elev, moist, numColors)
			seeds.Set(grid.Point{X: x, Y: y}, uniformID(c))
		}
	}

	layer := maps.NewLayer(grid.Point{}, w, h)
	empty := maps.NewLayer(grid.Point{}, 0, 0)
	filler := wang.NewFiller(set, grid.Orthogonal(), rand.New(rand.NewSource(seed)))

	res := filler.FillRegion(layer, empty, grid.NewRegion(grid.NewRect(0, 0, w, h)), seeds)
	return layer, len(res.Unplaced)
}

// classify buckets the noise fields into a terrain color. The first color is
// the common ground terrain, the second is water, and any further colors are
// reserved for high elevations, split by moisture.
func classify(elev, moist float64, numColors int) wang.Color {
	if numColors < 2 {
		return 1
	}
	if elev < 0.35 {
		return 2 // water
	}
	if numColors > 2 && elev > 0.72 {
		c := 3 + int(moist*float64(numColors-2))
		if c > numColors {
			c = numColors
		}
		return wang.Color(c)
	}
	return 1
}

func uniformID(c wang.Color) wang.WangID {
	var id wang.WangID
	for d := wang.Direction(0); d < wang.NumDirections; d++ {
		id = id.SetColorAt(d, c)
	}
	return id
}

func printDistribution(layer *maps.Layer, set *wang.Set, w, h int) {
	counts := make(map[wang.TileRef]int)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			counts[layer.TileAt(grid.Point{X: x, Y: y})]++
		}
	}

	colorCells := make(map[wang.Color]float64)
	for ref, n := range counts {
		id := set.IDOfTile(ref)
		for d := wang.Direction(0); d < wang.NumDirections; d++ {
			colorCells[id.ColorAt(d)] += float64(n) / float64(wang.NumDirections)
		}
	}

	total := float64(w * h)
	fmt.Fprintf(os.Stderr, "\nTerrain distribution:\n")
	for i, c := range set.Colors() {
		share := colorCells[wang.Color(i+1)] / total * 100
		fmt.Fprintf(os.Stderr, "  %-15s %5.1f%%\n", c.Name, share)
	}
	if n := counts[wang.Empty]; n > 0 {
		fmt.Fprintf(os.Stderr, "  %-15s %5d cells\n", "(empty)", n)
	}
}
