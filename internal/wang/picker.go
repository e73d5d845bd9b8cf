package wang

import "math/rand"

type weighted[T any] struct {
	value  T
	weight float64
}

// RandomPicker selects values at random with probability proportional to
// their weight. All draws come from the injected rand source, so fills are
// reproducible under a fixed seed.
type RandomPicker[T any] struct {
	rng     *rand.Rand
	entries []weighted[T]
	total   float64
}

// NewRandomPicker creates an empty picker drawing from rng.
func NewRandomPicker[T any](rng *rand.Rand) *RandomPicker[T] {
	return &RandomPicker[T]{rng: rng}
}

// Add inserts a value with the given weight. Non-positive weights are
// ignored.
func (p *RandomPicker[T]) Add(value T, weight float64) {
	if weight <= 0 {
		return
	}
	p.entries = append(p.entries, weighted[T]{value, weight})
	p.total += weight
}

// IsEmpty reports whether the picker holds no values.
func (p *RandomPicker[T]) IsEmpty() bool {
	return len(p.entries) == 0
}

// Clear removes all values.
func (p *RandomPicker[T]) Clear() {
	p.entries = p.entries[:0]
	p.total = 0
}

// Pick draws one value, leaving it in the pool. The second return is false
// if the picker is empty.
func (p *RandomPicker[T]) Pick() (T, bool) {
	i, ok := p.draw()
	if !ok {
		var zero T
		return zero, false
	}
	return p.entries[i].value, true
}

// Take draws one value and removes it from the pool.
func (p *RandomPicker[T]) Take() (T, bool) {
	i, ok := p.draw()
	if !ok {
		var zero T
		return zero, false
	}
	v := p.entries[i].value
	p.total -= p.entries[i].weight
	last := len(p.entries) - 1
	p.entries[i] = p.entries[last]
	p.entries = p.entries[:last]
	return v, true
}

func (p *RandomPicker[T]) draw() (int, bool) {
	if len(p.entries) == 0 {
		return 0, false
	}
	roll := p.rng.Float64() * p.total
	for i, e := range p.entries {
		if roll < e.weight {
			return i, true
		}
		roll -= e.weight
	}
	// Floating point drift can walk past the end.
	return len(p.entries) - 1, true
}
