// tuner/types.go
package tuner

import (
	"time"

	"chess-evolution/engine"
)

// Config controls an evolutionary training run.
type Config struct {
	Population  int // bots per color
	Generations int
	TurnLimit   int // full turns per game before it ends as OutOfTurns
	Workers     int // concurrent games; 1 keeps the sequential schedule
	BotDelay    time.Duration

	// MutationScale bounds the change applied to each coefficient of a clone.
	MutationScale float64
	Seed          int64
	StatePath     string // per-generation population output (optional)
}

// DefaultConfig returns the settings of the training mode: ten bots per
// color, five generations and a fifty turn limit.
func DefaultConfig() Config {
	return Config{
		Population:    10,
		Generations:   5,
		TurnLimit:     50,
		Workers:       1,
		MutationScale: 1,
		Seed:          1,
	}
}

// pairing is one game of a round robin.
type pairing struct {
	white, black int
	seed         int64
}

// outcome is the result of one pairing.
type outcome struct {
	pairing
	state         engine.State
	whiteMaterial float64
	blackMaterial float64
}
