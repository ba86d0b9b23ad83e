package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"os/signal"
	"time"

	"chess-evolution/chessmg"
	"chess-evolution/engine"
	"chess-evolution/tuner"
)

func main() {
	mode := flag.String("mode", "white", `Game mode: "white" or "black" (human plays that side), "bots" or "train"`)
	delay := flag.Duration("delay", time.Second, "Pause before every bot move")
	seed := flag.Int64("seed", time.Now().UnixNano(), "Random seed")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, *mode, *delay, *seed); err != nil {
		log.Println(err)
		os.Exit(1)
	}
}

func run(ctx context.Context, mode string, delay time.Duration, seed int64) error {
	if mode == "train" {
		cfg := tuner.DefaultConfig()
		cfg.Seed = seed
		cfg.BotDelay = 5 * time.Millisecond
		return tuner.NewTrainer(cfg, log.Default()).Train(ctx)
	}

	rng := rand.New(rand.NewSource(seed))
	con := newConsole(os.Stdout)

	var white, black engine.Player
	switch mode {
	case "white":
		white = con.human(chessmg.White)
		black = engine.NewBot(chessmg.Black, engine.RandomStrategy(rng), delay, rng)
	case "black":
		white = engine.NewBot(chessmg.White, engine.RandomStrategy(rng), delay, rng)
		black = con.human(chessmg.Black)
	case "bots":
		white = engine.NewBot(chessmg.White, engine.RandomStrategy(rng), delay, rng)
		black = engine.NewBot(chessmg.Black, engine.RandomStrategy(rng), delay, rng)
	default:
		return fmt.Errorf("unknown mode %q", mode)
	}

	if mode != "bots" {
		go con.read(os.Stdin)
	}
	game := engine.NewGame(con)
	con.game = game
	fmt.Fprint(con.out, game.Board)
	_, err := game.Run(ctx, white, black, 0)
	return err
}
