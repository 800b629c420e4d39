package engine

import "math/rand/v2"

// Randomizer deals piece kinds from a shuffled bag holding one of each kind.
// The bag is refilled only once it is empty, so every aligned run of seven
// draws is a permutation of all kinds.
type Randomizer struct {
	bag []Kind
	rng *rand.Rand
}

// NewRandomizer creates a randomizer drawing from src. A nil src uses a
// randomly seeded PCG source.
func NewRandomizer(src rand.Source) *Randomizer {
	if src == nil {
		src = rand.NewPCG(rand.Uint64(), rand.Uint64())
	}
	return &Randomizer{
		bag: make([]Kind, 0, len(Kinds)),
		rng: rand.New(src),
	}
}

func (r *Randomizer) refill() {
	r.bag = append(r.bag[:0], Kinds[:]...)
	r.rng.Shuffle(len(r.bag), func(i, j int) {
		r.bag[i], r.bag[j] = r.bag[j], r.bag[i]
	})
}

// Next removes and returns the front of the bag, refilling it first if empty.
func (r *Randomizer) Next() Kind {
	if len(r.bag) == 0 {
		r.refill()
	}
	kind := r.bag[0]
	r.bag = r.bag[1:]
	return kind
}

// Remaining is the number of kinds left before the next refill.
func (r *Randomizer) Remaining() int {
	return len(r.bag)
}

// Peek returns the kinds left in the current bag in draw order.
func (r *Randomizer) Peek() []Kind {
	out := make([]Kind, len(r.bag))
	copy(out, r.bag)
	return out
}
