package engine

import (
	"context"
	"errors"

	"chess-evolution/chessmg"
)

var (
	ErrNoPiece     = errors.New("no piece of the side to move on that square")
	ErrIllegalMove = errors.New("illegal move")
)

// State is the status of a game after a player acts.
type State uint8

const (
	Play State = iota
	WhiteWin
	BlackWin
	Draw
	OutOfTurns
)

var stateMessages = [...]string{
	Play:       "Play",
	WhiteWin:   "White win",
	BlackWin:   "Black win",
	Draw:       "Draw",
	OutOfTurns: "Draw because of turn limit",
}

func (s State) String() string {
	if int(s) < len(stateMessages) {
		return stateMessages[s]
	}
	return "Unknown"
}

// Over reports whether the state is terminal.
func (s State) Over() bool { return s != Play }

// Points is the winning score of color for a finished game.
func (s State) Points(color chessmg.Color) float64 {
	switch s {
	case WhiteWin:
		if color == chessmg.White {
			return 1
		}
		return 0
	case BlackWin:
		if color == chessmg.Black {
			return 1
		}
		return 0
	}
	return 0.5
}

func winFor(c chessmg.Color) State {
	if c == chessmg.White {
		return WhiteWin
	}
	return BlackWin
}

// Observer receives what a front end draws. check is the square of a king
// in check, or nil.
type Observer interface {
	ShowMoves(moves []chessmg.Move, check *chessmg.Square)
	Log(msg string)
}

type nopObserver struct{}

func (nopObserver) ShowMoves([]chessmg.Move, *chessmg.Square) {}
func (nopObserver) Log(string)                                {}

// Player chooses and plays one move for its side.
type Player interface {
	Color() chessmg.Color
	Play(ctx context.Context, g *Game) (State, error)
}

// Game owns the board for one game and drives the players.
type Game struct {
	Board   *chessmg.Board
	History []chessmg.Move
	obs     Observer
}

// NewGame sets up the initial position. A nil observer discards output.
func NewGame(obs Observer) *Game {
	if obs == nil {
		obs = nopObserver{}
	}
	return &Game{Board: chessmg.NewBoard(), obs: obs}
}

// Reset restores the initial position.
func (g *Game) Reset() {
	g.Board = chessmg.NewBoard()
	g.History = g.History[:0]
}

// Run alternates white and black until the game ends. Each full turn is one
// white move and one black move; after turnLimit turns the game ends as
// OutOfTurns. A turnLimit of 0 plays until the game is decided.
func (g *Game) Run(ctx context.Context, white, black Player, turnLimit int) (State, error) {
	players := [2]Player{white, black}
	for turn := 0; turnLimit <= 0 || turn < turnLimit; turn++ {
		if err := ctx.Err(); err != nil {
			return Play, err
		}
		for _, p := range players {
			state, err := p.Play(ctx, g)
			if err != nil {
				return Play, err
			}
			if state.Over() {
				g.obs.Log(state.String())
				return state, nil
			}
		}
	}
	g.obs.Log(OutOfTurns.String())
	return OutOfTurns, nil
}

// CheckSquare returns the square of color's king if it is in check.
func (g *Game) CheckSquare(color chessmg.Color) *chessmg.Square {
	if sq, check := g.Board.KingInCheck(color); check {
		return &sq
	}
	return nil
}

// Stalled resolves a position where color has no legal move.
func (g *Game) Stalled(color chessmg.Color) State {
	if _, check := g.Board.KingInCheck(color); check {
		return winFor(color.Opposite())
	}
	return Draw
}

// Hints returns the legal moves of color starting on sq.
func (g *Game) Hints(color chessmg.Color, sq chessmg.Square) ([]chessmg.Move, error) {
	p := g.Board.At(sq)
	if p == nil || p.Color != color {
		return nil, ErrNoPiece
	}
	return g.Board.MovesFrom(sq), nil
}

// TryMove plays from→to for color if it is legal.
func (g *Game) TryMove(color chessmg.Color, from, to chessmg.Square, promotion chessmg.Kind) (State, error) {
	if p := g.Board.At(from); p == nil || p.Color != color {
		return Play, ErrNoPiece
	}
	m, ok := chessmg.Find(g.Board.PlayerMoves(color), from, to)
	if !ok {
		return Play, ErrIllegalMove
	}
	return g.apply(color, m, promotion), nil
}

func (g *Game) apply(color chessmg.Color, m chessmg.Move, promotion chessmg.Kind) State {
	captured := g.Board.Apply(m, promotion)
	g.History = append(g.History, m)
	g.obs.ShowMoves([]chessmg.Move{m}, g.CheckSquare(color.Opposite()))
	if captured != nil && captured.Kind == chessmg.King {
		return winFor(color)
	}
	return Play
}
