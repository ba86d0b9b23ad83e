package engine

import "chess-evolution/chessmg"

// openingBook holds the central pawn pushes and knight developments a bot
// favours early in the game.
var openingBook = [2][]chessmg.Move{
	chessmg.White: {
		chessmg.NewMove(3, 6, 3, 4),
		chessmg.NewMove(3, 6, 3, 5),
		chessmg.NewMove(4, 6, 4, 4),
		chessmg.NewMove(4, 6, 4, 5),
		chessmg.NewMove(1, 7, 2, 5),
		chessmg.NewMove(6, 7, 5, 5),
	},
	chessmg.Black: {
		chessmg.NewMove(3, 1, 3, 3),
		chessmg.NewMove(3, 1, 3, 2),
		chessmg.NewMove(4, 1, 4, 3),
		chessmg.NewMove(4, 1, 4, 2),
		chessmg.NewMove(1, 0, 2, 2),
		chessmg.NewMove(6, 0, 5, 2),
	},
}

// IsOpeningMove reports whether m matches a book move of color by squares.
func IsOpeningMove(color chessmg.Color, m chessmg.Move) bool {
	for _, book := range openingBook[color] {
		if book.SameSquares(m) {
			return true
		}
	}
	return false
}

// OpeningMoves returns a copy of the book moves of color.
func OpeningMoves(color chessmg.Color) []chessmg.Move {
	return append([]chessmg.Move(nil), openingBook[color]...)
}
