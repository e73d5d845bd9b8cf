package wang

import (
	"os"
	"path/filepath"
	"testing"
)

const coastJSON = `{
  "name": "coast",
  "colors": [
    {"name": "grass", "color": "green"},
    {"name": "water", "color": "blue"}
  ],
  "tiles": [
    {"tile": 1, "wangid": [1, 1, 1, 1, 1, 1, 1, 1]},
    {"tile": 2, "wangid": [2, 2, 2, 2, 2, 2, 2, 2], "probability": 0.25},
    {"tile": 3, "wangid": [1, 0, 2, 0, 1, 0, 2, 0]}
  ]
}`

func writeTileset(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write tileset: %v", err)
	}
	return path
}

func TestLoadSet(t *testing.T) {
	set, err := LoadSet(writeTileset(t, "coast.json", coastJSON))
	if err != nil {
		t.Fatalf("LoadSet: %v", err)
	}

	if set.Name() != "coast" {
		t.Errorf("Name = %q, want coast", set.Name())
	}
	if len(set.Colors()) != 2 || set.ColorName(2) != "water" {
		t.Errorf("colors = %v", set.Colors())
	}
	if len(set.Tiles()) != 3 {
		t.Fatalf("loaded %d tiles, want 3", len(set.Tiles()))
	}

	if got := set.IDOfTile(1); got != uniformID(1) {
		t.Errorf("tile 1 id = %s, want %s", got, uniformID(1))
	}

	// Unspecified probability defaults to 1; explicit ones are kept.
	for _, tile := range set.Tiles() {
		want := 1.0
		if tile.Ref == 2 {
			want = 0.25
		}
		if tile.Probability != want {
			t.Errorf("tile %d probability = %v, want %v", tile.Ref, tile.Probability, want)
		}
	}

	// Tile 3 constrains alternating slots only.
	id := set.IDOfTile(3)
	if id.ColorAt(North) != 1 || id.ColorAt(East) != 2 || id.ColorAt(NorthEast) != 0 {
		t.Errorf("tile 3 id = %s", id)
	}
}

func TestLoadSetErrors(t *testing.T) {
	tests := []struct {
		name string
		json string
	}{
		{"missing name", `{"colors": [{"name": "a", "color": "red"}], "tiles": []}`},
		{"no colors", `{"name": "x", "colors": [], "tiles": []}`},
		{"short wangid", `{"name": "x", "colors": [{"name": "a", "color": "red"}],
			"tiles": [{"tile": 1, "wangid": [1, 1, 1]}]}`},
		{"color out of range", `{"name": "x", "colors": [{"name": "a", "color": "red"}],
			"tiles": [{"tile": 1, "wangid": [2, 2, 2, 2, 2, 2, 2, 2]}]}`},
		{"not json", `{{{{`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := LoadSet(writeTileset(t, "bad.json", tt.json)); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestLoadSetsDuplicateName(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"a.json", "b.json"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(coastJSON), 0644); err != nil {
			t.Fatalf("write: %v", err)
		}
	}
	if _, err := LoadSets(dir); err == nil {
		t.Error("expected duplicate-name error, got nil")
	}
}
