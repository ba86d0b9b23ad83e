// tuner/train.go
package tuner

import (
	"context"
	"fmt"
	"io"
	"log"
	"math/rand"
	"sort"
	"time"

	"chess-evolution/engine"
)

// Trainer evolves one population of strategies per color.
type Trainer struct {
	White      []*engine.Strategy
	Black      []*engine.Strategy
	Generation int

	cfg Config
	rng *rand.Rand
	log *log.Logger
}

// NewTrainer seeds both populations from cfg.Seed. A nil logger discards
// progress output.
func NewTrainer(cfg Config, logger *log.Logger) *Trainer {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	rng := rand.New(rand.NewSource(cfg.Seed))
	return &Trainer{
		White: SeedPopulation(rng, cfg.Population),
		Black: SeedPopulation(rng, cfg.Population),
		cfg:   cfg,
		rng:   rng,
		log:   logger,
	}
}

// Train runs the configured number of generations. With a StatePath the
// populations are saved after every generation.
func (t *Trainer) Train(ctx context.Context) error {
	for gen := 0; gen < t.cfg.Generations; gen++ {
		t0 := time.Now()
		if err := t.Step(ctx); err != nil {
			return fmt.Errorf("generation %d: %w", t.Generation, err)
		}
		t.log.Printf("generation %d done  best white %v  best black %v  time=%s",
			t.Generation, t.White[0], t.Black[0], time.Since(t0))
		if t.cfg.StatePath != "" {
			if err := t.Save(t.cfg.StatePath); err != nil {
				return err
			}
		}
	}
	return nil
}

// Step plays one generation: a scored round robin, then selection and
// reproduction of both populations.
func (t *Trainer) Step(ctx context.Context) error {
	t.Generation++
	t.log.Printf("Generation %d", t.Generation)
	ResetScores(t.White)
	ResetScores(t.Black)
	if err := t.roundRobin(ctx); err != nil {
		return err
	}
	Rank(t.White)
	Rank(t.Black)
	t.White = Breed(t.White, t.rng, t.cfg.MutationScale)
	t.Black = Breed(t.Black, t.rng, t.cfg.MutationScale)
	return nil
}

// Rank orders a population by winning score, then material, best first.
// Equal scores keep their order.
func Rank(pop []*engine.Strategy) {
	sort.SliceStable(pop, func(i, j int) bool {
		a, b := pop[i].Score, pop[j].Score
		if a.Winning != b.Winning {
			return a.Winning > b.Winning
		}
		return a.Material > b.Material
	})
}

// Breed keeps the top half of a ranked population and refills it to its
// original size with mutated clones of the survivors, in rank order.
func Breed(pop []*engine.Strategy, rng *rand.Rand, scale float64) []*engine.Strategy {
	n := len(pop)
	if n == 0 {
		return pop
	}
	keep := n / 2
	if keep == 0 {
		keep = 1
	}
	next := make([]*engine.Strategy, 0, n)
	next = append(next, pop[:keep]...)
	for i := 0; len(next) < n; i++ {
		next = append(next, pop[i%keep].Reproduce(rng, scale))
	}
	return next
}
