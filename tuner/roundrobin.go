package tuner

import (
	"context"
	"math/rand"
	"sync"

	"golang.org/x/sync/errgroup"

	"chess-evolution/chessmg"
	"chess-evolution/engine"
)

// roundRobin plays every white strategy against every black strategy and
// adds the results to their scores. Pairings and their seeds are drawn in a
// fixed order, so the scores do not depend on the number of workers.
func (t *Trainer) roundRobin(ctx context.Context) error {
	var pairings []pairing
	for i := range t.White {
		for j := range t.Black {
			pairings = append(pairings, pairing{white: i, black: j, seed: t.rng.Int63()})
		}
	}

	workers := t.cfg.Workers
	if workers < 1 {
		workers = 1
	}

	g, ctx := errgroup.WithContext(ctx)

	var games = make(chan pairing)
	var results = make(chan outcome)

	g.Go(func() error {
		defer close(games)
		return loadPairings(ctx, pairings, games)
	})

	white := make([]engine.Score, len(t.White))
	black := make([]engine.Score, len(t.Black))
	g.Go(func() error {
		return t.collect(ctx, results, white, black)
	})

	var wg = &sync.WaitGroup{}

	for i := 0; i < workers; i++ {
		wg.Add(1)
		g.Go(func() error {
			defer wg.Done()
			return t.playGames(ctx, games, results)
		})
	}

	g.Go(func() error {
		wg.Wait()
		close(results)
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}
	for i, s := range t.White {
		s.Score.Winning += white[i].Winning
		s.Score.Material += white[i].Material
	}
	for j, s := range t.Black {
		s.Score.Winning += black[j].Winning
		s.Score.Material += black[j].Material
	}
	return nil
}

func loadPairings(ctx context.Context, pairings []pairing, games chan<- pairing) error {
	for _, p := range pairings {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case games <- p:
		}
	}
	return nil
}

func (t *Trainer) playGames(ctx context.Context, games <-chan pairing, results chan<- outcome) error {
	for p := range games {
		res, err := t.playGame(ctx, p)
		if err != nil {
			return err
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case results <- res:
		}
	}
	return nil
}

// playGame runs one pairing on its own board with its own random source.
func (t *Trainer) playGame(ctx context.Context, p pairing) (outcome, error) {
	rng := rand.New(rand.NewSource(p.seed))
	white := engine.NewBot(chessmg.White, t.White[p.white], t.cfg.BotDelay, rng)
	black := engine.NewBot(chessmg.Black, t.Black[p.black], t.cfg.BotDelay, rng)

	game := engine.NewGame(nil)
	state, err := game.Run(ctx, white, black, t.cfg.TurnLimit)
	if err != nil {
		return outcome{}, err
	}
	return outcome{
		pairing:       p,
		state:         state,
		whiteMaterial: game.Board.Material(chessmg.White),
		blackMaterial: game.Board.Material(chessmg.Black),
	}, nil
}

func (t *Trainer) collect(ctx context.Context, results <-chan outcome, white, black []engine.Score) error {
	for res := range results {
		t.log.Printf("White bot %d versus black bot %d: %v", res.white, res.black, res.state)
		white[res.white].Winning += res.state.Points(chessmg.White)
		white[res.white].Material += res.whiteMaterial
		black[res.black].Winning += res.state.Points(chessmg.Black)
		black[res.black].Material += res.blackMaterial
	}
	return nil
}
