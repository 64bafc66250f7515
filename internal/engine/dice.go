package engine

import "math/rand"

// Dice is the engine's injected randomness source. Every draw consumes
// exactly one value from the underlying source, which lets a session
// reloaded from storage fast-forward to the same point in the stream by
// replaying its recorded draw count.
type Dice struct {
	rnd   *rand.Rand
	draws int64
}

// NewDice creates a seeded source and skips the first `skip` draws.
func NewDice(seed, skip int64) *Dice {
	d := &Dice{rnd: rand.New(rand.NewSource(seed))}
	for i := int64(0); i < skip; i++ {
		d.rnd.Int63()
	}
	d.draws = skip
	return d
}

// Roll returns a value in [0, n).
func (d *Dice) Roll(n int) int {
	d.draws++
	return int(d.rnd.Int63() % int64(n))
}

// Percent returns a value in [1, 100].
func (d *Dice) Percent() int {
	return d.Roll(100) + 1
}

// Draws returns the number of values consumed so far.
func (d *Dice) Draws() int64 {
	return d.draws
}
