package chessmg

import (
	"sort"
	"strings"
	"testing"
)

const startFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

var fenKinds = map[byte]Kind{'k': King, 'q': Queen, 'r': Rook, 'b': Bishop, 'n': Knight, 'p': Pawn}

// boardFromFEN builds a board from the placement, side, castling and en
// passant fields of fen. Castling rights become FirstMove flags on kings and
// corner rooks; pawns keep FirstMove only on their starting rank.
func boardFromFEN(t testing.TB, fen string) (*Board, Color) {
	t.Helper()
	fields := strings.Fields(fen)
	if len(fields) < 4 {
		t.Fatalf("short fen %q", fen)
	}
	b := EmptyBoard()
	for y, row := range strings.Split(fields[0], "/") {
		x := 0
		for i := 0; i < len(row); i++ {
			c := row[i]
			if c >= '1' && c <= '8' {
				x += int(c - '0')
				continue
			}
			color := White
			lower := c
			if c >= 'a' && c <= 'z' {
				color = Black
			} else {
				lower = c + ('a' - 'A')
			}
			kind, ok := fenKinds[lower]
			if !ok {
				t.Fatalf("bad piece %q in %q", c, fen)
			}
			p := b.Place(kind, color, x, y)
			switch kind {
			case Pawn:
				p.FirstMove = (color == White && y == 6) || (color == Black && y == 1)
			case King, Rook:
				p.FirstMove = false
			}
			x++
		}
	}

	rights := fields[2]
	setRight := func(flag byte, color Color, rookX int) {
		if !strings.ContainsRune(rights, rune(flag)) {
			return
		}
		y := 7
		if color == Black {
			y = 0
		}
		if k := b.At(Square{4, y}); k != nil && k.Kind == King && k.Color == color {
			k.FirstMove = true
		}
		if r := b.At(Square{rookX, y}); r != nil && r.Kind == Rook && r.Color == color {
			r.FirstMove = true
		}
	}
	setRight('K', White, 7)
	setRight('Q', White, 0)
	setRight('k', Black, 7)
	setRight('q', Black, 0)

	if ep := fields[3]; ep != "-" {
		x := int(ep[0] - 'a')
		// The pawn that double stepped stands one rank past the target square.
		pawnRank := int(ep[1]-'0') - 1
		if ep[1] == '3' {
			pawnRank = 4
		}
		pawnY := 8 - pawnRank
		if p := b.At(Square{x, pawnY}); p != nil && p.Kind == Pawn {
			p.EnPassantTarget = true
		}
	}

	side := White
	if fields[1] == "b" {
		side = Black
	}
	return b, side
}

func sq(t testing.TB, name string) Square {
	t.Helper()
	if len(name) != 2 || name[0] < 'a' || name[0] > 'h' || name[1] < '1' || name[1] > '8' {
		t.Fatalf("bad square %q", name)
	}
	return Square{int(name[0] - 'a'), 7 - int(name[1]-'1')}
}

func moveNames(moves []Move) []string {
	res := make([]string, len(moves))
	for i, m := range moves {
		res[i] = m.From.String() + m.To.String()
	}
	sort.Strings(res)
	return res
}

func hasMove(moves []Move, from, to Square) bool {
	_, ok := Find(moves, from, to)
	return ok
}
