package engine

import (
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRandomizerBagsArePermutations(t *testing.T) {
	r := NewRandomizer(rand.NewPCG(7, 11))

	for bag := range 100 {
		draws := make([]Kind, 0, len(Kinds))
		for range len(Kinds) {
			draws = append(draws, r.Next())
		}

		slices.Sort(draws)
		require.Equal(t, Kinds[:], draws, "bag %d", bag)
	}
}

func TestRandomizerRemaining(t *testing.T) {
	r := NewRandomizer(rand.NewPCG(1, 2))
	assert.Equal(t, 0, r.Remaining())

	first := r.Next()
	assert.Equal(t, 6, r.Remaining())

	peek := r.Peek()
	require.Len(t, peek, 6)
	assert.NotContains(t, peek, first)

	for _, want := range peek {
		assert.Equal(t, want, r.Next())
	}
	assert.Equal(t, 0, r.Remaining())

	r.Next()
	assert.Equal(t, 6, r.Remaining())
}

func TestRandomizerIsDeterministicForASource(t *testing.T) {
	a := NewRandomizer(rand.NewPCG(42, 42))
	b := NewRandomizer(rand.NewPCG(42, 42))

	for range 70 {
		assert.Equal(t, a.Next(), b.Next())
	}
}

func TestRandomizerRepeatGap(t *testing.T) {
	r := NewRandomizer(rand.NewPCG(3, 5))
	last := map[Kind]int{}

	// Worst case is first in one bag and last in the next.
	for i := range 700 {
		k := r.Next()
		if prev, ok := last[k]; ok {
			assert.LessOrEqual(t, i-prev, 13)
		}
		last[k] = i
	}
}

func TestRandomizerNilSource(t *testing.T) {
	r := NewRandomizer(nil)
	seen := map[Kind]bool{}
	for range len(Kinds) {
		seen[r.Next()] = true
	}
	assert.Len(t, seen, len(Kinds))
}
