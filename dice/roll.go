package dice

import (
	"math/rand"
	"time"
)

const Sides = 6

// Roller throws a six sided die. It is not safe for concurrent use, every
// game loop owns its own roller.
type Roller struct {
	rng  *rand.Rand
	Seed int64
}

// New returns a roller that replays the same throws for the same seed.
// Seed 0 picks a time based seed.
func New(seed int64) *Roller {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Roller{
		rng:  rand.New(rand.NewSource(seed)),
		Seed: seed,
	}
}

func (r *Roller) Roll() int {
	return rollDie(r.rng, Sides)
}

func rollDie(rng *rand.Rand, sides int) int {
	return rng.Intn(sides) + 1
}
