// cmd/evolve/main.go
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime"

	"chess-evolution/tuner"
)

var config = tuner.DefaultConfig()

var (
	outJSON = flag.String("out", "population.json", "Where to write the final populations as JSON")
	inJSON  = flag.String("init", "", "Optional JSON with populations to resume from")
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	if err := run(); err != nil {
		log.Println(err)
		os.Exit(1)
	}
}

func run() error {
	flag.IntVar(&config.Population, "population", config.Population, "Bots per color")
	flag.IntVar(&config.Generations, "generations", config.Generations, "Generations to train")
	flag.IntVar(&config.TurnLimit, "turns", config.TurnLimit, "Turn limit per game (0 = none)")
	flag.IntVar(&config.Workers, "workers", runtime.NumCPU(), "Games played concurrently")
	flag.DurationVar(&config.BotDelay, "delay", config.BotDelay, "Pause before every bot move")
	flag.Float64Var(&config.MutationScale, "mutation", config.MutationScale, "Largest change of a coefficient per clone")
	flag.Int64Var(&config.Seed, "seed", config.Seed, "Random seed")
	flag.StringVar(&config.StatePath, "state", "", "Optional per-generation state output")
	flag.Parse()

	if config.Population <= 0 {
		return fmt.Errorf("-population must be > 0")
	}

	log.Printf("%+v", config)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	tr := tuner.NewTrainer(config, log.Default())
	if *inJSON != "" {
		if err := tr.Load(*inJSON); err != nil {
			return fmt.Errorf("load %s: %w", *inJSON, err)
		}
		log.Printf("Loaded generation %d from %s", tr.Generation, *inJSON)
	}
	if err := tr.Train(ctx); err != nil {
		return err
	}
	if err := tr.Save(*outJSON); err != nil {
		return fmt.Errorf("save %s: %w", *outJSON, err)
	}
	log.Printf("Saved populations to %s", *outJSON)

	for i, s := range tr.White {
		fmt.Printf("white %2d  %v  promotion %v\n", i, s, s.PromotionKind())
	}
	for i, s := range tr.Black {
		fmt.Printf("black %2d  %v  promotion %v\n", i, s, s.PromotionKind())
	}
	return nil
}
