package blocks

import "math/rand"

// Bag deals variants in shuffled groups of seven. A new permutation of all
// seven is appended only when the queue is empty at draw time.
type Bag struct {
	rng     *rand.Rand
	queue   []Variant
	refills int
}

// NewBag creates an empty bag. The first Draw fills it.
func NewBag(rng *rand.Rand) *Bag {
	return &Bag{rng: rng}
}

// Draw removes and returns the next variant, refilling first if empty.
func (b *Bag) Draw() Variant {
	if len(b.queue) == 0 {
		b.refill()
	}
	v := b.queue[0]
	b.queue = b.queue[1:]
	return v
}

// Len returns the number of variants left before the next refill.
func (b *Bag) Len() int {
	return len(b.queue)
}

// Refills returns how many permutations have been generated so far.
func (b *Bag) Refills() int {
	return b.refills
}

// Reset discards the queue and immediately deals a fresh permutation.
func (b *Bag) Reset() {
	b.queue = nil
	b.refill()
}

func (b *Bag) refill() {
	perm := AllVariants()
	b.rng.Shuffle(len(perm), func(i, j int) {
		perm[i], perm[j] = perm[j], perm[i]
	})
	b.queue = append(b.queue, perm...)
	b.refills++
}
