package chessmg

// Apply plays m on the board and returns the piece it captured, if any. The
// caller detects a king capture from the returned piece.
//
// promotion is the kind a pawn reaching its far rank becomes; anything other
// than Queen, Rook, Bishop or Knight falls back to Queen. Apply trusts m: it
// is meant for moves produced by the generator.
func (b *Board) Apply(m Move, promotion Kind) *Piece {
	b.clearEnPassant()

	p := b.At(m.From)
	if p == nil {
		return nil
	}

	var captured *Piece
	switch m.Type {
	case EnPassant:
		if victim := b.At(m.Secondary); victim != nil && victim.Color != p.Color {
			captured = victim
			b.remove(victim)
		}
	case ShortCastle, LongCastle:
		if rook := b.At(m.Secondary); rook != nil {
			file := 5
			if m.Type == LongCastle {
				file = 3
			}
			b.move(rook, Square{file, m.Secondary.Y})
		}
	}

	if occupant := b.At(m.To); occupant != nil && occupant != p {
		captured = occupant
		b.remove(occupant)
	}
	b.move(p, m.To)
	if p.Kind == Pawn && Abs(m.To.Y-m.From.Y) == 2 {
		p.EnPassantTarget = true
	}

	if p.Kind == Pawn && m.To.Y == PromotionRank(p.Color) {
		switch promotion {
		case Queen, Rook, Bishop, Knight:
		default:
			promotion = Queen
		}
		// A promoted rook must not open castling rights.
		b.Place(promotion, p.Color, m.To.X, m.To.Y).FirstMove = false
	}
	return captured
}

// move is the plain relocation shared by the mover and the castling rook.
func (b *Board) move(p *Piece, to Square) {
	b.relocate(p, to)
	p.FirstMove = false
}

func (b *Board) clearEnPassant() {
	for x := 0; x < 8; x++ {
		for y := 0; y < 8; y++ {
			if p := b.cells[x][y]; p != nil {
				p.EnPassantTarget = false
			}
		}
	}
}
