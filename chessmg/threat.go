package chessmg

// UnderThreat reports whether an enemy of ally attacks sq.
//
// Enemy kings are not scanned through their seekers, since their castle
// seekers call back into UnderThreat; their one step ring is tested directly.
// Pawn pushes never threaten, pawn diagonals always do, even onto an empty
// square.
func (b *Board) UnderThreat(sq Square, ally Color) bool {
	enemy := ally.Opposite()
	for x := 0; x < 8; x++ {
		for y := 0; y < 8; y++ {
			p := b.cells[x][y]
			if p == nil || p.Color != enemy {
				continue
			}
			if p.Kind == King {
				if Distance(p.Square(), sq) == 1 {
					return true
				}
				continue
			}
			if b.attacks(p, sq) {
				return true
			}
		}
	}
	return false
}

// attacks walks the capturing seekers of p looking for target.
func (b *Board) attacks(p *Piece, target Square) bool {
	for _, s := range Seekers(p) {
		switch s.Restriction {
		case CannotCapture, MustCaptureEnPassant, MustCastle:
			continue
		}
		x, y := p.X, p.Y
		for step := 1; s.Limit == 0 || step <= s.Limit; step++ {
			x += s.DX
			y += s.DY
			if x < 0 || x > 7 || y < 0 || y > 7 {
				break
			}
			if x == target.X && y == target.Y {
				return true
			}
			if b.cells[x][y] != nil {
				break
			}
		}
	}
	return false
}

// KingInCheck returns the square of color's king and whether it is threatened.
// A board without that king is never in check.
func (b *Board) KingInCheck(color Color) (Square, bool) {
	k := b.King(color)
	if k == nil {
		return Square{-1, -1}, false
	}
	return k.Square(), b.UnderThreat(k.Square(), color)
}
