package wang

import (
	"math/rand"
	"testing"
)

func TestPickerEmpty(t *testing.T) {
	p := NewRandomPicker[int](rand.New(rand.NewSource(1)))
	if !p.IsEmpty() {
		t.Error("new picker not empty")
	}
	if _, ok := p.Pick(); ok {
		t.Error("Pick on empty picker reported ok")
	}
	if _, ok := p.Take(); ok {
		t.Error("Take on empty picker reported ok")
	}
}

func TestPickerTakeExhausts(t *testing.T) {
	p := NewRandomPicker[int](rand.New(rand.NewSource(1)))
	p.Add(1, 1)
	p.Add(2, 3)
	p.Add(3, 0) // non-positive weights are dropped

	seen := map[int]bool{}
	for i := 0; i < 2; i++ {
		v, ok := p.Take()
		if !ok {
			t.Fatalf("Take %d failed", i)
		}
		if seen[v] {
			t.Fatalf("Take returned %d twice", v)
		}
		seen[v] = true
	}
	if !p.IsEmpty() {
		t.Error("picker not empty after taking every entry")
	}
	if seen[3] {
		t.Error("zero-weight value was drawn")
	}
}

// TestPickerWeightBias draws many times from a heavily skewed pool and
// checks the heavy value dominates.
func TestPickerWeightBias(t *testing.T) {
	p := NewRandomPicker[string](rand.New(rand.NewSource(7)))
	p.Add("rare", 1)
	p.Add("common", 99)

	common := 0
	for i := 0; i < 1000; i++ {
		v, _ := p.Pick()
		if v == "common" {
			common++
		}
	}
	if common < 950 {
		t.Errorf("common drawn %d/1000 times, expected ≈990", common)
	}
}

func TestPickerDeterministic(t *testing.T) {
	draw := func(seed int64) []int {
		p := NewRandomPicker[int](rand.New(rand.NewSource(seed)))
		for i := 1; i <= 10; i++ {
			p.Add(i, float64(i))
		}
		var out []int
		for !p.IsEmpty() {
			v, _ := p.Take()
			out = append(out, v)
		}
		return out
	}

	a, b := draw(42), draw(42)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("same seed diverged at draw %d: %v vs %v", i, a, b)
		}
	}
}
