package chessmg

import (
	"math"
	"strings"

	"github.com/notnil/chess"
)

type Color uint8

const (
	White Color = 0
	Black Color = 1
)

// Opposite returns the other side.
func (c Color) Opposite() Color { return c ^ 1 }

func (c Color) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Kind is a colorless piece type.
type Kind uint8

const (
	King Kind = iota
	Queen
	Rook
	Bishop
	Knight
	Pawn
)

var kindNames = [...]string{"King", "Queen", "Rook", "Bishop", "Knight", "Pawn"}
var kindLetters = [...]byte{'k', 'q', 'r', 'b', 'n', 'p'}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Unknown"
}

// Value is the material value of the kind. Kings are worth +Inf: they are
// never counted as material and can never be legally captured.
func (k Kind) Value() float64 {
	switch k {
	case Pawn:
		return 1
	case Knight, Bishop:
		return 3
	case Rook:
		return 5
	case Queen:
		return 9
	}
	return math.Inf(1)
}

// PromotionKinds lists the kinds a pawn may become, indexed by promotion choice.
var PromotionKinds = [...]Kind{Queen, Rook, Bishop, Knight}

// PromotionKind maps a promotion index to a kind. Out of range indexes wrap.
func PromotionKind(index int) Kind {
	n := len(PromotionKinds)
	return PromotionKinds[((index%n)+n)%n]
}

// Square is a board coordinate. y = 0 is black's back rank, y = 7 white's.
type Square struct {
	X, Y int
}

func (s Square) OnBoard() bool {
	return s.X >= 0 && s.X < 8 && s.Y >= 0 && s.Y < 8
}

// Shade is the fixed background color of the square.
func (s Square) Shade() Color {
	if (s.X+s.Y)%2 == 0 {
		return White
	}
	return Black
}

// String returns the algebraic name of the square ("g1" for (6,7)).
func (s Square) String() string {
	if !s.OnBoard() {
		return "-"
	}
	return chess.NewSquare(chess.File(s.X), chess.Rank(7-s.Y)).String()
}

// Piece is a single man on the board. X and Y always match the square that
// holds it.
type Piece struct {
	Kind  Kind
	Color Color
	X, Y  int

	// FirstMove stays true until the piece moves for the first time.
	FirstMove bool
	// EnPassantTarget is set only right after a pawn double step.
	EnPassantTarget bool
}

func (p *Piece) Square() Square { return Square{p.X, p.Y} }

func (p *Piece) Value() float64 { return p.Kind.Value() }

// Letter is the FEN style letter of the piece, upper case for white.
func (p *Piece) Letter() byte {
	l := kindLetters[p.Kind]
	if p.Color == White {
		l -= 'a' - 'A'
	}
	return l
}

// Board is the 8x8 grid, indexed [x][y].
type Board struct {
	cells [8][8]*Piece
}

var backRank = [8]Kind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}

// NewBoard returns the standard 32 piece starting layout.
func NewBoard() *Board {
	b := EmptyBoard()
	for x := 0; x < 8; x++ {
		b.Place(backRank[x], Black, x, 0)
		b.Place(Pawn, Black, x, 1)
		b.Place(Pawn, White, x, 6)
		b.Place(backRank[x], White, x, 7)
	}
	return b
}

func EmptyBoard() *Board {
	return &Board{}
}

// Place puts a fresh, never moved piece on (x, y), replacing any occupant.
func (b *Board) Place(kind Kind, color Color, x, y int) *Piece {
	p := &Piece{Kind: kind, Color: color, X: x, Y: y, FirstMove: true}
	b.cells[x][y] = p
	return p
}

// At returns the piece on sq or nil when it is empty or off the board.
func (b *Board) At(sq Square) *Piece {
	if !sq.OnBoard() {
		return nil
	}
	return b.cells[sq.X][sq.Y]
}

func (b *Board) remove(p *Piece) {
	if b.cells[p.X][p.Y] == p {
		b.cells[p.X][p.Y] = nil
	}
}

// relocate moves p to sq, overwriting whatever stands there.
func (b *Board) relocate(p *Piece, sq Square) {
	b.remove(p)
	p.X, p.Y = sq.X, sq.Y
	b.cells[sq.X][sq.Y] = p
}

// Pieces returns the pieces of color in row-major order from black's back
// rank. Generation order, and therefore tie-breaking, follows this order.
func (b *Board) Pieces(color Color) []*Piece {
	res := make([]*Piece, 0, 16)
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			if p := b.cells[x][y]; p != nil && p.Color == color {
				res = append(res, p)
			}
		}
	}
	return res
}

// King returns the king of color, or nil if there is none.
func (b *Board) King(color Color) *Piece {
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			if p := b.cells[x][y]; p != nil && p.Kind == King && p.Color == color {
				return p
			}
		}
	}
	return nil
}

// Material sums the values of color's pieces, kings excluded.
func (b *Board) Material(color Color) float64 {
	var sum float64
	for _, p := range b.Pieces(color) {
		if p.Kind != King {
			sum += p.Value()
		}
	}
	return sum
}

// Clone returns a deep copy; pieces of the copy are distinct values.
func (b *Board) Clone() *Board {
	c := &Board{}
	for x := 0; x < 8; x++ {
		for y := 0; y < 8; y++ {
			if p := b.cells[x][y]; p != nil {
				cp := *p
				c.cells[x][y] = &cp
			}
		}
	}
	return c
}

// String renders the board from white's point of view, black on top.
func (b *Board) String() string {
	var sb strings.Builder
	for y := 0; y < 8; y++ {
		sb.WriteByte(byte('8' - y))
		sb.WriteByte(' ')
		for x := 0; x < 8; x++ {
			p := b.cells[x][y]
			switch {
			case p != nil:
				sb.WriteByte(p.Letter())
			case (Square{x, y}).Shade() == White:
				sb.WriteByte('.')
			default:
				sb.WriteByte(':')
			}
			sb.WriteByte(' ')
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("  a b c d e f g h\n")
	return sb.String()
}
