package main

import (
	"crypto/ed25519"
	"crypto/rand"
	"crypto/x509"
	"encoding/pem"
	"log"
	"os"

	mrand "math/rand"

	"terrafill/internal/grid"
	"terrafill/internal/maps"
	"terrafill/internal/server"
	"terrafill/internal/wang"
)

const (
	defaultAddr = ":2222"
	hostKeyPath = "host_key"
	tilesetsDir = "assets/tilesets"
	mapsDir     = "assets/maps"
)

func main() {
	log.SetFlags(log.Ltime | log.Lshortfile)

	if err := ensureHostKey(hostKeyPath); err != nil {
		log.Fatalf("Host key error: %v", err)
	}

	set, baseMap := loadAssets()
	log.Printf("Tileset: %s (%d colors, %d tiles, complete=%v)",
		set.Name(), len(set.Colors()), len(set.Tiles()), set.IsComplete())
	w, h := baseMap.Layer.Size()
	log.Printf("Map: %s (%dx%d)", baseMap.Name, w, h)

	listenAddr := defaultAddr
	if port := os.Getenv("PORT"); port != "" {
		listenAddr = ":" + port
	}

	sshServer := server.NewSSHServer(listenAddr, hostKeyPath, set, baseMap)
	log.Printf("Starting terrafill preview — connect with: ssh -t -p %s localhost", listenAddr[1:])
	if err := sshServer.Start(); err != nil {
		log.Fatalf("SSH server error: %v", err)
	}
}

// loadAssets loads the first tileset and a matching map from the assets
// directories, falling back to a generated default when they are missing.
func loadAssets() (*wang.Set, *maps.Map) {
	sets, err := wang.LoadSets(tilesetsDir)
	if err != nil || len(sets) == 0 {
		log.Printf("Could not load tilesets from %s: %v — using built-in set", tilesetsDir, err)
		return defaultAssets()
	}

	allMaps, err := maps.LoadMaps(mapsDir, sets)
	if err != nil || len(allMaps) == 0 {
		log.Printf("Could not load maps from %s: %v — generating one", mapsDir, err)
		for _, set := range sets {
			return set, generateMap(set)
		}
	}
	for _, m := range allMaps {
		return sets[m.Tileset], m
	}
	return defaultAssets()
}

func defaultAssets() (*wang.Set, *maps.Map) {
	set := wang.DefaultSet()
	return set, generateMap(set)
}

// generateMap fills a fresh map against an empty background.
func generateMap(set *wang.Set) *maps.Map {
	const w, h = 60, 30

	layer := maps.NewLayer(grid.Point{}, w, h)
	filler := wang.NewFiller(set, grid.Orthogonal(), mrand.New(mrand.NewSource(1)))
	empty := maps.NewLayer(grid.Point{}, 0, 0)

	res := filler.FillRegion(layer, empty, grid.NewRegion(grid.NewRect(0, 0, w, h)), nil)
	if len(res.Unplaced) > 0 {
		log.Printf("Generated map has %d unplaced cells", len(res.Unplaced))
	}

	return &maps.Map{Name: "Generated", Tileset: set.Name(), Layer: layer}
}

func ensureHostKey(path string) error {
	if _, err := os.Stat(path); err == nil {
		return nil // key already exists
	}

	log.Println("Generating new host key...")
	_, priv, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return err
	}

	keyBytes, err := x509.MarshalPKCS8PrivateKey(priv)
	if err != nil {
		return err
	}

	pemBlock := &pem.Block{
		Type:  "PRIVATE KEY",
		Bytes: keyBytes,
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return err
	}
	defer f.Close()

	return pem.Encode(f, pemBlock)
}
