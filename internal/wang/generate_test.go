package wang

import "testing"

func TestGenerateCompleteSet(t *testing.T) {
	set, err := GenerateCompleteSet("gen", twoColors)
	if err != nil {
		t.Fatalf("GenerateCompleteSet: %v", err)
	}
	if got := len(set.Tiles()); got != 256 {
		t.Fatalf("tile count = %d, want 256", got)
	}
	if !set.IsComplete() {
		t.Error("generated two-color set should be complete")
	}

	// Any fully constrained query has exactly one matching tile.
	for _, q := range []WangID{uniformID(1), uniformID(2), fullID(1, 2, 1, 2, 1, 2, 1, 2)} {
		if got := len(set.FindMatches(q)); got != 1 {
			t.Errorf("FindMatches(%v) = %d tiles, want 1", q, got)
		}
	}
}

func TestGenerateCompleteSetTooLarge(t *testing.T) {
	colors := make([]ColorDef, 8)
	for i := range colors {
		colors[i] = ColorDef{Name: string(rune('a' + i)), ANSI: 32}
	}
	if _, err := GenerateCompleteSet("huge", colors); err == nil {
		t.Fatal("expected error for 8^8 tiles, got nil")
	}
}

func TestGenerateCompleteSetNoColors(t *testing.T) {
	if _, err := GenerateCompleteSet("empty", nil); err == nil {
		t.Fatal("expected error for zero colors, got nil")
	}
}

func TestDefaultSet(t *testing.T) {
	set := DefaultSet()
	if !set.IsComplete() {
		t.Error("default set should be complete")
	}
	if got := set.ColorName(1); got != "grass" {
		t.Errorf("color 1 = %q, want grass", got)
	}
	if got := set.ColorName(2); got != "water" {
		t.Errorf("color 2 = %q, want water", got)
	}
}
