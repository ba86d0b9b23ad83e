package engine

import (
	"fmt"
	"math/rand"

	"chess-evolution/chessmg"
)

const (
	// ReversalPenalty scores a move that undoes the player's previous move.
	ReversalPenalty = -1000.0
	// OpeningBonus is the base score of a book move during the first
	// OpeningPlies moves of a player.
	OpeningBonus = 5.0
	OpeningPlies = 4
	CheckBonus   = 8.0
)

// Score is the result of one generation of games.
type Score struct {
	Winning  float64
	Material float64
}

func (s Score) Total() float64 { return s.Winning + s.Material }

// Strategy is the parameter vector a bot uses to rank its legal moves.
type Strategy struct {
	Capturing    float64
	RunAway      float64
	RiskAversion float64
	Castling     float64
	// Promotion indexes chessmg.PromotionKinds.
	Promotion int

	Score Score
}

func (s *Strategy) String() string {
	return fmt.Sprintf("%v %v %v %v", s.Capturing, s.RunAway, s.RiskAversion, s.Castling)
}

// PromotionKind is the piece a pawn of this strategy promotes to.
func (s *Strategy) PromotionKind() chessmg.Kind {
	return chessmg.PromotionKind(s.Promotion)
}

// scaled multiplies a coefficient by a piece value. A zero coefficient
// cancels the term even for the king, whose value is infinite.
func scaled(coef, value float64) float64 {
	if coef == 0 {
		return 0
	}
	return coef * value
}

// MoveValue scores m for color. last is the player's previous move, or nil,
// and moveIndex the number of moves the player has made so far.
func (s *Strategy) MoveValue(b *chessmg.Board, m chessmg.Move, color chessmg.Color, last *chessmg.Move, moveIndex int, rng *rand.Rand) float64 {
	if last != nil && m.Reverses(*last) {
		return ReversalPenalty
	}
	if m.IsCastle() {
		return s.Castling
	}
	if moveIndex < OpeningPlies && IsOpeningMove(color, m) {
		return OpeningBonus + rng.Float64()
	}

	mover := b.At(m.From)
	if mover == nil {
		return ReversalPenalty
	}
	value := positionalBase(mover, m)
	if b.UnderThreat(m.From, color) {
		value += scaled(s.RunAway, mover.Value())
	}
	if b.UnderThreat(m.To, color) {
		value -= scaled(s.RiskAversion, mover.Value())
	}
	if givesCheck(b, m, color, s.PromotionKind()) {
		value += CheckBonus
	}
	if victim := capturedBy(b, m); victim != nil {
		value += scaled(s.Capturing, victim.Value())
	}
	return value
}

// positionalBase rewards central pawns and undeveloped minor pieces.
func positionalBase(p *chessmg.Piece, m chessmg.Move) float64 {
	switch p.Kind {
	case chessmg.Pawn:
		if m.From.X >= 2 && m.From.X <= 5 {
			return 3
		}
	case chessmg.Bishop:
		return 2
	case chessmg.Knight:
		if m.From.Y == homeRank(p.Color) {
			return 3
		}
		return 1
	case chessmg.Queen:
		return 1
	}
	return 0
}

func homeRank(c chessmg.Color) int {
	if c == chessmg.White {
		return 7
	}
	return 0
}

func capturedBy(b *chessmg.Board, m chessmg.Move) *chessmg.Piece {
	if m.Type == chessmg.EnPassant {
		return b.At(m.Secondary)
	}
	if victim := b.At(m.To); victim != nil && victim.Color != b.At(m.From).Color {
		return victim
	}
	return nil
}

func givesCheck(b *chessmg.Board, m chessmg.Move, color chessmg.Color, promotion chessmg.Kind) bool {
	next := b.Clone()
	next.Apply(m, promotion)
	_, check := next.KingInCheck(color.Opposite())
	return check
}

// BestMove returns the highest scoring move. Ties keep the earliest
// candidate. ok is false when moves is empty.
func (s *Strategy) BestMove(b *chessmg.Board, moves []chessmg.Move, color chessmg.Color, last *chessmg.Move, moveIndex int, rng *rand.Rand) (best chessmg.Move, ok bool) {
	var bestValue float64
	for i, m := range moves {
		v := s.MoveValue(b, m, color, last, moveIndex, rng)
		if i == 0 || v > bestValue {
			best, bestValue = m, v
		}
	}
	return best, len(moves) > 0
}

func mutate(x, scale float64, rng *rand.Rand) float64 {
	sign := 1.0
	if rng.Intn(2) == 0 {
		sign = -1
	}
	return x + sign*rng.Float64()*scale
}

// Reproduce returns a mutated copy with a zero score. Every coefficient moves
// by up to scale in a random direction; the promotion index is inherited.
func (s *Strategy) Reproduce(rng *rand.Rand, scale float64) *Strategy {
	return &Strategy{
		Capturing:    mutate(s.Capturing, scale, rng),
		RunAway:      mutate(s.RunAway, scale, rng),
		RiskAversion: mutate(s.RiskAversion, scale, rng),
		Castling:     mutate(s.Castling, scale, rng),
		Promotion:    s.Promotion,
	}
}

// RandomStrategy draws a fresh parameter vector.
func RandomStrategy(rng *rand.Rand) *Strategy {
	return &Strategy{
		Capturing:    rng.Float64(),
		RunAway:      1 + rng.Float64(),
		RiskAversion: 1 + rng.Float64(),
		Castling:     10 + rng.Float64(),
	}
}
