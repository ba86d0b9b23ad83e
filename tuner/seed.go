package tuner

import (
	"math/rand"

	"chess-evolution/engine"
)

// SeedPopulation draws n random strategies.
func SeedPopulation(rng *rand.Rand, n int) []*engine.Strategy {
	pop := make([]*engine.Strategy, n)
	for i := range pop {
		pop[i] = engine.RandomStrategy(rng)
	}
	return pop
}

// ResetScores clears the per generation scores of a population.
func ResetScores(pop []*engine.Strategy) {
	for _, s := range pop {
		s.Score = engine.Score{}
	}
}
