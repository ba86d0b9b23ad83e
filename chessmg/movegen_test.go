package chessmg

import (
	"reflect"
	"testing"
)

func TestMoveGenerationInitial(t *testing.T) {
	b := NewBoard()
	moves := b.PlayerMoves(White)
	if len(moves) != 20 {
		t.Fatalf("initial position: expected 20 moves, got %d: %v", len(moves), moveNames(moves))
	}
	if got := len(b.PlayerMoves(Black)); got != 20 {
		t.Fatalf("initial position black: expected 20 moves, got %d", got)
	}
}

func TestKnightDevelopmentIsLegal(t *testing.T) {
	b := NewBoard()
	m := NewMove(6, 7, 5, 5)
	if !Contains(b.PlayerMoves(White), m) {
		t.Fatalf("expected g1f3 among white moves")
	}
	c := b.Clone()
	c.Apply(m, Queen)
	if _, check := c.KingInCheck(White); check {
		t.Fatalf("g1f3 must not leave the white king in check")
	}
}

func TestGenerationIsIdempotent(t *testing.T) {
	fens := []string{
		startFEN,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
	}
	for _, fen := range fens {
		b, side := boardFromFEN(t, fen)
		first := b.PlayerMoves(side)
		second := b.PlayerMoves(side)
		if !reflect.DeepEqual(first, second) {
			t.Errorf("%s: generation differs between calls\n%v\n%v", fen, moveNames(first), moveNames(second))
		}
	}
}

func TestLegalMovesNeverLeaveKingInCheck(t *testing.T) {
	fens := []string{
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1",
		"rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8",
		"4k3/4r3/8/8/8/8/4B3/4K3 w - - 0 1",
	}
	for _, fen := range fens {
		b, side := boardFromFEN(t, fen)
		for _, color := range []Color{side, side.Opposite()} {
			for _, m := range b.PlayerMoves(color) {
				c := b.Clone()
				c.Apply(m, Queen)
				if _, check := c.KingInCheck(color); check {
					t.Errorf("%s: %v leaves %v king in check", fen, m, color)
				}
			}
		}
	}
}

func TestPinnedPieceCannotMove(t *testing.T) {
	b, _ := boardFromFEN(t, "4k3/4r3/8/8/8/8/4B3/4K3 w - - 0 1")
	if moves := b.MovesFrom(sq(t, "e2")); len(moves) != 0 {
		t.Fatalf("pinned bishop should have no moves, got %v", moveNames(moves))
	}
	if moves := b.PieceMoves(b.At(sq(t, "e2"))); len(moves) == 0 {
		t.Fatalf("unfiltered geometry of the bishop should not be empty")
	}
}

func TestCheckByQueenOnOpenFile(t *testing.T) {
	b := EmptyBoard()
	b.Place(King, Black, 4, 0)
	b.Place(Queen, White, 4, 7)
	b.Place(King, White, 7, 6)
	b.Place(Rook, Black, 0, 4)
	b.Place(Bishop, Black, 7, 4)

	king, check := b.KingInCheck(Black)
	if !check || king != (Square{4, 0}) {
		t.Fatalf("expected black king on e8 in check, got %v %v", king, check)
	}

	queen := Square{4, 7}
	moves := b.PlayerMoves(Black)
	for _, m := range moves {
		switch {
		case m.To == queen:
		case m.To.X == 4 && m.To.Y > 0 && m.To.Y < 7:
		case m.From == king && m.To.X != 4:
		default:
			t.Errorf("move %v neither blocks, captures nor flees", m)
		}
	}

	want := []struct{ from, to string }{
		{"e8", "d8"}, {"e8", "f8"}, {"e8", "d7"}, {"e8", "f7"},
		{"a4", "e4"}, {"h4", "e1"}, {"h4", "e7"},
	}
	for _, w := range want {
		if !hasMove(moves, sq(t, w.from), sq(t, w.to)) {
			t.Errorf("expected %s%s in %v", w.from, w.to, moveNames(moves))
		}
	}
	if hasMove(moves, sq(t, "e8"), sq(t, "e7")) {
		t.Errorf("king may not stay on the attacked file")
	}
	if hasMove(moves, sq(t, "a4"), sq(t, "a5")) {
		t.Errorf("a4a5 does not answer the check")
	}
}

func TestCheckmateOnOpenFile(t *testing.T) {
	b := EmptyBoard()
	b.Place(King, Black, 4, 0)
	b.Place(Rook, Black, 3, 0)
	b.Place(Rook, Black, 5, 0)
	b.Place(Pawn, Black, 3, 1)
	b.Place(Pawn, Black, 5, 1)
	b.Place(Queen, White, 4, 7)
	b.Place(King, White, 7, 7)

	if moves := b.PlayerMoves(Black); len(moves) != 0 {
		t.Fatalf("expected no legal moves, got %v", moveNames(moves))
	}
	if !b.InCheckmate(Black) {
		t.Fatalf("expected black to be checkmated")
	}
	if b.InStalemate(Black) {
		t.Fatalf("checkmate is not stalemate")
	}
}

func TestStalemate(t *testing.T) {
	b, _ := boardFromFEN(t, "k7/2Q5/8/8/8/8/8/7K b - - 0 1")
	if b.HasLegalMoves(Black) {
		t.Fatalf("expected no legal moves for black, got %v", moveNames(b.PlayerMoves(Black)))
	}
	if !b.InStalemate(Black) {
		t.Fatalf("expected stalemate")
	}
	if b.InCheckmate(Black) {
		t.Fatalf("stalemate is not checkmate")
	}
}

func castles(moves []Move) (short, long bool) {
	for _, m := range moves {
		switch m.Type {
		case ShortCastle:
			short = true
		case LongCastle:
			long = true
		}
	}
	return short, long
}

func TestCastlingLegality(t *testing.T) {
	tests := []struct {
		name        string
		fen         string
		setup       func(b *Board)
		short, long bool
	}{
		{name: "both", fen: "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1", short: true, long: true},
		{name: "king moved", fen: "r3k2r/8/8/8/8/8/8/R3K2R w kq - 0 1"},
		{name: "in check", fen: "4k3/8/8/8/4r3/8/8/R3K2R w KQ - 0 1"},
		{name: "f1 attacked", fen: "4k3/8/8/8/5r2/8/8/R3K2R w KQ - 0 1", long: true},
		{name: "d1 attacked", fen: "4k3/8/8/8/3r4/8/8/R3K2R w KQ - 0 1", short: true},
		{name: "b1 attacked only", fen: "4k3/8/8/8/1r6/8/8/R3K2R w KQ - 0 1", short: true, long: true},
		{name: "blocked by knight", fen: "4k3/8/8/8/8/8/8/RN2K1NR w KQ - 0 1"},
		{name: "enemy piece in the way", fen: "4k3/8/8/8/8/8/8/Rn2K2R w KQ - 0 1", short: true},
		{
			name: "rook moved",
			fen:  "4k3/8/8/8/8/8/8/R3K2R w KQ - 0 1",
			setup: func(b *Board) {
				b.At(Square{7, 7}).FirstMove = false
			},
			long: true,
		},
		{
			name: "king marked moved",
			fen:  "4k3/8/8/8/8/8/8/R3K2R w KQ - 0 1",
			setup: func(b *Board) {
				b.At(Square{4, 7}).FirstMove = false
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			b, _ := boardFromFEN(t, tt.fen)
			if tt.setup != nil {
				tt.setup(b)
			}
			short, long := castles(b.PlayerMoves(White))
			if short != tt.short || long != tt.long {
				t.Fatalf("castling short=%v long=%v, want short=%v long=%v", short, long, tt.short, tt.long)
			}
		})
	}
}

func TestCastleMoveShape(t *testing.T) {
	b, _ := boardFromFEN(t, "r3k2r/8/8/8/8/8/8/R3K2R b KQkq - 0 1")
	moves := b.PlayerMoves(Black)
	short, ok := Find(moves, Square{4, 0}, Square{6, 0})
	if !ok || short.Type != ShortCastle || short.Secondary != (Square{7, 0}) {
		t.Fatalf("unexpected short castle %+v (found %v)", short, ok)
	}
	long, ok := Find(moves, Square{4, 0}, Square{2, 0})
	if !ok || long.Type != LongCastle || long.Secondary != (Square{0, 0}) {
		t.Fatalf("unexpected long castle %+v (found %v)", long, ok)
	}
}

func TestEnPassantWindow(t *testing.T) {
	b := EmptyBoard()
	b.Place(King, White, 4, 7)
	b.Place(King, Black, 4, 0)
	b.Place(Pawn, White, 0, 3).FirstMove = false
	b.Place(Pawn, Black, 1, 1)

	b.Apply(NewMove(1, 1, 1, 3), Queen)
	black := b.At(Square{1, 3})
	if black == nil || !black.EnPassantTarget {
		t.Fatalf("double step must flag the pawn")
	}

	moves := b.PlayerMoves(White)
	ep, ok := Find(moves, Square{0, 3}, Square{1, 2})
	if !ok || ep.Type != EnPassant || ep.Secondary != (Square{1, 3}) {
		t.Fatalf("expected en passant a5xb6, got %+v in %v", ep, moveNames(moves))
	}

	taken := b.Clone()
	captured := taken.Apply(ep, Queen)
	if captured == nil || captured.Kind != Pawn || captured.Color != Black {
		t.Fatalf("en passant must capture the black pawn, got %+v", captured)
	}
	if taken.At(Square{1, 3}) != nil {
		t.Fatalf("passed pawn still on b5")
	}
	if p := taken.At(Square{1, 2}); p == nil || p.Color != White || p.Kind != Pawn {
		t.Fatalf("white pawn should stand on b6")
	}

	// One ply later the window is closed.
	b.Apply(NewMove(4, 7, 3, 7), Queen)
	if black.EnPassantTarget {
		t.Fatalf("flag must be cleared by any later move")
	}
	b.Apply(NewMove(4, 0, 3, 0), Queen)
	if hasMove(b.PlayerMoves(White), Square{0, 3}, Square{1, 2}) {
		t.Fatalf("en passant must not be available after another move")
	}
}

func TestEnPassantDiscoveredCheck(t *testing.T) {
	b, _ := boardFromFEN(t, "8/8/8/K2pP2q/8/8/8/7k w - d6 0 1")
	if !b.At(sq(t, "d5")).EnPassantTarget {
		t.Fatalf("d5 pawn should be flagged")
	}
	if hasMove(b.PlayerMoves(White), sq(t, "e5"), sq(t, "d6")) {
		t.Fatalf("exd6 e.p. exposes the king on the fifth rank")
	}
	if !hasMove(b.PieceMoves(b.At(sq(t, "e5"))), sq(t, "e5"), sq(t, "d6")) {
		t.Fatalf("the unfiltered geometry should still see exd6")
	}
}

func TestMovesFrom(t *testing.T) {
	b := NewBoard()
	moves := b.MovesFrom(Square{6, 7})
	if got := moveNames(moves); !reflect.DeepEqual(got, []string{"g1f3", "g1h3"}) {
		t.Fatalf("knight hints: %v", got)
	}
	if moves := b.MovesFrom(Square{4, 4}); moves != nil {
		t.Fatalf("empty square should have no hints, got %v", moves)
	}
}
