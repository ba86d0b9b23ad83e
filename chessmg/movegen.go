package chessmg

// PieceMoves returns every candidate move of p from its seekers, without the
// king safety filter.
func (b *Board) PieceMoves(p *Piece) []Move {
	return b.pieceMovesInto(p, nil)
}

func (b *Board) pieceMovesInto(p *Piece, moves []Move) []Move {
	for _, s := range Seekers(p) {
		moves = b.seek(p, s, moves)
	}
	return moves
}

// seek walks from p's square along s and appends the moves it finds.
func (b *Board) seek(p *Piece, s Seeker, moves []Move) []Move {
	switch s.Restriction {
	case MustCaptureEnPassant:
		return b.seekEnPassant(p, s, moves)
	case MustCastle:
		return b.seekCastle(p, s, moves)
	}

	from := p.Square()
	x, y := p.X, p.Y
	for step := 1; s.Limit == 0 || step <= s.Limit; step++ {
		x += s.DX
		y += s.DY
		to := Square{x, y}
		if !to.OnBoard() {
			break
		}
		occupant := b.cells[x][y]
		if occupant == nil {
			if s.Restriction != MustCapture {
				moves = append(moves, Move{From: from, To: to})
			}
			continue
		}
		if occupant.Color != p.Color && s.Restriction != CannotCapture {
			moves = append(moves, Move{From: from, To: to})
		}
		break
	}
	return moves
}

// seekEnPassant inspects the single square beside the pawn. A flagged enemy
// pawn there can be taken by moving diagonally behind it.
func (b *Board) seekEnPassant(p *Piece, s Seeker, moves []Move) []Move {
	side := Square{p.X + s.DX, p.Y + s.DY}
	victim := b.At(side)
	if victim == nil || victim.Color == p.Color || victim.Kind != Pawn || !victim.EnPassantTarget {
		return moves
	}
	to := Square{side.X, p.Y + Forward(p.Color)}
	if !to.OnBoard() || b.At(to) != nil {
		return moves
	}
	return append(moves, Move{From: p.Square(), To: to, Type: EnPassant, Secondary: side})
}

// seekCastle walks the back rank toward a rook. Any threatened square within
// two files of the king, the king square included, forbids castling that way.
func (b *Board) seekCastle(p *Piece, s Seeker, moves []Move) []Move {
	if p.Kind != King || !p.FirstMove {
		return moves
	}
	if b.UnderThreat(p.Square(), p.Color) {
		return moves
	}
	for x := p.X + s.DX; x >= 0 && x < 8; x += s.DX {
		sq := Square{x, p.Y}
		if Abs(x-p.X) <= 2 && b.UnderThreat(sq, p.Color) {
			return moves
		}
		occupant := b.cells[x][p.Y]
		if occupant == nil {
			continue
		}
		if occupant.Color != p.Color || occupant.Kind != Rook || !occupant.FirstMove {
			return moves
		}
		m := Move{From: p.Square(), To: Square{6, p.Y}, Type: ShortCastle, Secondary: sq}
		if s.DX < 0 {
			m.To.X, m.Type = 2, LongCastle
		}
		return append(moves, m)
	}
	return moves
}

// PlayerMoves returns the legal moves of color: every candidate of every
// piece, kept only if the mover's king is safe once the move is played on a
// deep copy of the board. Pins and discovered checks need the full replay.
func (b *Board) PlayerMoves(color Color) []Move {
	var legal []Move
	var buf []Move
	for _, p := range b.Pieces(color) {
		buf = b.pieceMovesInto(p, buf[:0])
		for _, m := range buf {
			if b.leavesKingSafe(m, color) {
				legal = append(legal, m)
			}
		}
	}
	return legal
}

// MovesFrom returns the legal moves starting on sq, for move preview. An empty
// square yields nothing.
func (b *Board) MovesFrom(sq Square) []Move {
	p := b.At(sq)
	if p == nil {
		return nil
	}
	var legal []Move
	for _, m := range b.PieceMoves(p) {
		if b.leavesKingSafe(m, p.Color) {
			legal = append(legal, m)
		}
	}
	return legal
}

// HasLegalMoves stops at the first legal move of color.
func (b *Board) HasLegalMoves(color Color) bool {
	var buf []Move
	for _, p := range b.Pieces(color) {
		buf = b.pieceMovesInto(p, buf[:0])
		for _, m := range buf {
			if b.leavesKingSafe(m, color) {
				return true
			}
		}
	}
	return false
}

func (b *Board) leavesKingSafe(m Move, color Color) bool {
	c := b.Clone()
	c.Apply(m, Queen)
	_, check := c.KingInCheck(color)
	return !check
}

// InCheckmate reports whether color has no legal move while in check.
func (b *Board) InCheckmate(color Color) bool {
	_, check := b.KingInCheck(color)
	return check && !b.HasLegalMoves(color)
}

// InStalemate reports whether color has no legal move and is not in check.
func (b *Board) InStalemate(color Color) bool {
	_, check := b.KingInCheck(color)
	return !check && !b.HasLegalMoves(color)
}
