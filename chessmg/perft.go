package chessmg

// Perft counts the leaf nodes of the legal move tree of the given depth, with
// color to move at the root. Promotions are expanded to a queen only, so
// positions with promotions count one node per promoting pawn move.
func Perft(b *Board, color Color, depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	moves := b.PlayerMoves(color)
	if depth == 1 {
		return uint64(len(moves))
	}
	var nodes uint64
	for _, m := range moves {
		child := b.Clone()
		child.Apply(m, Queen)
		nodes += Perft(child, color.Opposite(), depth-1)
	}
	return nodes
}

// PerftDivide returns the node count below each root move.
func PerftDivide(b *Board, color Color, depth int) map[Move]uint64 {
	res := make(map[Move]uint64)
	for _, m := range b.PlayerMoves(color) {
		child := b.Clone()
		child.Apply(m, Queen)
		res[m] = Perft(child, color.Opposite(), depth-1)
	}
	return res
}
