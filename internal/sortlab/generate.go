package sortlab

import (
	"math/rand/v2"
)

// Generator produces the starting array for a run.
type Generator interface {
	Generate(size int) []Item
}

// RandomGenerator shuffles 1..size with Fisher–Yates.
type RandomGenerator struct {
	rng *rand.Rand
}

// NewRandomGenerator returns a generator seeded from the runtime's entropy.
func NewRandomGenerator() *RandomGenerator {
	return &RandomGenerator{rng: rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))}
}

// NewSeededGenerator returns a generator whose sequence of arrays is fully
// determined by seed.
func NewSeededGenerator(seed uint64) *RandomGenerator {
	return &RandomGenerator{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// Generate returns a uniformly random permutation of 1..size.
func (g *RandomGenerator) Generate(size int) []Item {
	if size <= 0 {
		return nil
	}
	values := make([]int, size)
	for i := range values {
		values[i] = i + 1
	}
	for i := size - 1; i > 0; i-- {
		j := g.rng.IntN(i + 1)
		values[i], values[j] = values[j], values[i]
	}
	return FromValues(values...)
}

// FromValues builds items in the given order, recording each item's
// starting slot as its Position.
func FromValues(values ...int) []Item {
	items := make([]Item, len(values))
	for i, v := range values {
		items[i] = Item{Value: v, Position: i}
	}
	return items
}

// Sorted returns 1..size in ascending order.
func Sorted(size int) []Item {
	values := make([]int, size)
	for i := range values {
		values[i] = i + 1
	}
	return FromValues(values...)
}

// ValuesOf extracts the values of items in order.
func ValuesOf(items []Item) []int {
	out := make([]int, len(items))
	for i, it := range items {
		out[i] = it.Value
	}
	return out
}
