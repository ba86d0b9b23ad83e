package chessmg

type MoveType uint8

const (
	Normal MoveType = iota
	ShortCastle
	LongCastle
	EnPassant
)

func (t MoveType) String() string {
	switch t {
	case ShortCastle:
		return "O-O"
	case LongCastle:
		return "O-O-O"
	case EnPassant:
		return "e.p."
	}
	return ""
}

// Move is a plain value so it stays valid against a clone of the board it was
// generated on. Secondary holds the castling rook or the pawn taken en
// passant; it is meaningful only when Type is not Normal.
type Move struct {
	From, To  Square
	Type      MoveType
	Secondary Square
}

// NewMove builds a normal move between two squares.
func NewMove(fromX, fromY, toX, toY int) Move {
	return Move{From: Square{fromX, fromY}, To: Square{toX, toY}}
}

// HasSecondary reports whether the move touches a second piece.
func (m Move) HasSecondary() bool { return m.Type != Normal }

func (m Move) IsCastle() bool { return m.Type == ShortCastle || m.Type == LongCastle }

// SameSquares compares origin and destination only.
func (m Move) SameSquares(o Move) bool { return m.From == o.From && m.To == o.To }

// Reverses reports whether m moves a piece straight back along o.
func (m Move) Reverses(o Move) bool { return m.From == o.To && m.To == o.From }

// String uses coordinate notation ("g1f3"), with the castle or e.p. tag.
func (m Move) String() string {
	s := m.From.String() + m.To.String()
	if m.Type != Normal {
		s += " " + m.Type.String()
	}
	return s
}

// Contains reports whether moves holds a move with the same squares as m.
func Contains(moves []Move, m Move) bool {
	_, ok := Find(moves, m.From, m.To)
	return ok
}

// Find returns the first move going from -> to.
func Find(moves []Move, from, to Square) (Move, bool) {
	for _, m := range moves {
		if m.From == from && m.To == to {
			return m, true
		}
	}
	return Move{}, false
}
