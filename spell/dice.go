package spell

import (
	"math/rand"
	"sync"
)

// DefaultSides is the die rolled per rank by Sacred Geometry
const DefaultSides = 6

var randPool = sync.Pool{
	New: func() interface{} {
		return rand.New(rand.NewSource(rand.Int63()))
	},
}

// RollDice rolls n dice with the given number of sides
func RollDice(n, sides int) []uint {
	rng := randPool.Get().(*rand.Rand)
	defer randPool.Put(rng)
	return RollDiceWithRand(n, sides, rng)
}

func RollDiceWithRand(n, sides int, rng *rand.Rand) []uint {
	if n <= 0 || sides <= 0 {
		return nil
	}

	dice := make([]uint, n)
	for i := range dice {
		dice[i] = uint(rng.Intn(sides) + 1)
	}
	return dice
}
