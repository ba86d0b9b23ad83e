package engine

import (
	"context"
	"errors"
	"math/rand"
	"time"

	"chess-evolution/chessmg"
)

// ErrInputClosed is returned by a human player whose input channel closed.
var ErrInputClosed = errors.New("input closed")

// Bot plays the best move according to its strategy.
type Bot struct {
	Strategy *Strategy
	// Delay is slept before every move.
	Delay time.Duration

	color chessmg.Color
	rng   *rand.Rand
	last  *chessmg.Move
	moves int
}

func NewBot(color chessmg.Color, s *Strategy, delay time.Duration, rng *rand.Rand) *Bot {
	return &Bot{Strategy: s, Delay: delay, color: color, rng: rng}
}

func (b *Bot) Color() chessmg.Color { return b.color }

// Moves is the number of moves the bot has played.
func (b *Bot) Moves() int { return b.moves }

func (b *Bot) Play(ctx context.Context, g *Game) (State, error) {
	if b.Delay > 0 {
		time.Sleep(b.Delay)
	}
	legal := g.Board.PlayerMoves(b.color)
	m, ok := b.Strategy.BestMove(g.Board, legal, b.color, b.last, b.moves, b.rng)
	if !ok {
		return g.Stalled(b.color), nil
	}
	b.last = &m
	b.moves++
	return g.apply(b.color, m, b.Strategy.PromotionKind()), nil
}

// Human plays moves selected by two clicks: an origin square, then a
// destination among the origin's legal moves. A click that does not fit
// resets the selection.
type Human struct {
	Clicks <-chan chessmg.Square
	// Promote picks the promotion piece. Nil always promotes to a queen.
	Promote func() chessmg.Kind

	color chessmg.Color
}

func NewHuman(color chessmg.Color, clicks <-chan chessmg.Square) *Human {
	return &Human{Clicks: clicks, color: color}
}

func (h *Human) Color() chessmg.Color { return h.color }

func (h *Human) Play(ctx context.Context, g *Game) (State, error) {
	if !g.Board.HasLegalMoves(h.color) {
		return g.Stalled(h.color), nil
	}
	check := g.CheckSquare(h.color)
	var origin *chessmg.Square
	var hints []chessmg.Move
	for {
		g.obs.ShowMoves(hints, check)
		var click chessmg.Square
		select {
		case <-ctx.Done():
			return Play, ctx.Err()
		case sq, ok := <-h.Clicks:
			if !ok {
				return Play, ErrInputClosed
			}
			click = sq
		}

		if origin == nil {
			moves, err := g.Hints(h.color, click)
			if err != nil || len(moves) == 0 {
				continue
			}
			origin, hints = &click, moves
			continue
		}
		m, ok := chessmg.Find(hints, *origin, click)
		origin, hints = nil, nil
		if !ok {
			continue
		}
		promotion := chessmg.Queen
		if h.Promote != nil && promotes(g.Board, m) {
			promotion = h.Promote()
		}
		return g.apply(h.color, m, promotion), nil
	}
}

func promotes(b *chessmg.Board, m chessmg.Move) bool {
	p := b.At(m.From)
	return p != nil && p.Kind == chessmg.Pawn && m.To.Y == chessmg.PromotionRank(p.Color)
}
