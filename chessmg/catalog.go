package chessmg

// Restriction limits what a seeker may emit on the squares it lands on.
type Restriction uint8

const (
	// NoRestriction emits both quiet moves and captures.
	NoRestriction Restriction = iota
	MustCapture
	CannotCapture
	// MustCaptureEnPassant checks one adjacent square for a flagged pawn.
	MustCaptureEnPassant
	MustCastle
)

// Seeker is one direction of movement of a piece. Limit is the maximum number
// of steps; 0 means the walk only ends at the board edge or a piece.
type Seeker struct {
	DX, DY      int
	Limit       int
	Restriction Restriction
}

var (
	orthogonal = []Seeker{{DX: 0, DY: -1}, {DX: 1, DY: 0}, {DX: 0, DY: 1}, {DX: -1, DY: 0}}
	diagonal   = []Seeker{{DX: 1, DY: -1}, {DX: 1, DY: 1}, {DX: -1, DY: 1}, {DX: -1, DY: -1}}

	queenSeekers  = append(append([]Seeker{}, orthogonal...), diagonal...)
	rookSeekers   = orthogonal
	bishopSeekers = diagonal
	knightSeekers = []Seeker{
		{DX: 1, DY: -2, Limit: 1}, {DX: 2, DY: -1, Limit: 1},
		{DX: 2, DY: 1, Limit: 1}, {DX: 1, DY: 2, Limit: 1},
		{DX: -1, DY: 2, Limit: 1}, {DX: -2, DY: 1, Limit: 1},
		{DX: -2, DY: -1, Limit: 1}, {DX: -1, DY: -2, Limit: 1},
	}
	kingSeekers = withLimit(queenSeekers, 1)

	// Castle seekers walk toward the rook files: short (x+1) first, then long.
	castleSeekers = []Seeker{
		{DX: 1, Restriction: MustCastle},
		{DX: -1, Restriction: MustCastle},
	}
	unmovedKingSeekers = append(append([]Seeker{}, kingSeekers...), castleSeekers...)
)

func withLimit(src []Seeker, limit int) []Seeker {
	res := make([]Seeker, len(src))
	for i, s := range src {
		s.Limit = limit
		res[i] = s
	}
	return res
}

// Forward is the y direction pawns of color advance in.
func Forward(color Color) int {
	if color == White {
		return -1
	}
	return 1
}

// PromotionRank is the far rank for pawns of color.
func PromotionRank(color Color) int {
	if color == White {
		return 0
	}
	return 7
}

// Seekers returns the movement geometry of p in its current state. Pawn push
// range and king castling depend on FirstMove.
func Seekers(p *Piece) []Seeker {
	switch p.Kind {
	case King:
		if p.FirstMove {
			return unmovedKingSeekers
		}
		return kingSeekers
	case Queen:
		return queenSeekers
	case Rook:
		return rookSeekers
	case Bishop:
		return bishopSeekers
	case Knight:
		return knightSeekers
	case Pawn:
		return pawnSeekers(p)
	}
	return nil
}

// pawnTables is indexed [color][firstMove].
var pawnTables [2][2][]Seeker

func init() {
	for _, color := range []Color{White, Black} {
		dy := Forward(color)
		for first, push := range []int{1, 2} {
			pawnTables[color][first] = []Seeker{
				{DX: 0, DY: dy, Limit: push, Restriction: CannotCapture},
				{DX: -1, DY: dy, Limit: 1, Restriction: MustCapture},
				{DX: 1, DY: dy, Limit: 1, Restriction: MustCapture},
				{DX: -1, DY: 0, Limit: 1, Restriction: MustCaptureEnPassant},
				{DX: 1, DY: 0, Limit: 1, Restriction: MustCaptureEnPassant},
			}
		}
	}
}

func pawnSeekers(p *Piece) []Seeker {
	if p.FirstMove {
		return pawnTables[p.Color][1]
	}
	return pawnTables[p.Color][0]
}
