package board

// promotionRow returns the opponent's back rank for the given color, the row
// on which that color's pawns promote.
func promotionRow(c Color) int {
	if c == White {
		return 0
	}
	return 7
}

// MakeMoveUnchecked applies the move without validation and without touching
// clocks or turn. A pawn arriving on the opponent's back rank is replaced by
// a new queen of its color; there is no underpromotion. Used both for
// speculative legality probes on clones and as the final step of a
// confirmed move.
func (b *Board) MakeMoveUnchecked(m Move) {
	p := b.grid[m.From.Row][m.From.Col]
	b.grid[m.From.Row][m.From.Col] = Piece{}

	if p.Kind == Pawn && m.To.Row == promotionRow(p.Color) {
		b.grid[m.To.Row][m.To.Col] = NewPiece(Queen, p.Color)
	} else {
		b.grid[m.To.Row][m.To.Col] = p
	}
}

// MakeMove applies a confirmed legal move and updates the game clocks and
// the side to move. The pawn-move and capture facts are captured before the
// board changes: a pawn move or a capture resets the half-move clock,
// anything else increments it. The full-move number increments after Black
// moves. Legality is the caller's responsibility.
func (b *Board) MakeMove(m Move) {
	moving := b.grid[m.From.Row][m.From.Col]
	captured := b.grid[m.To.Row][m.To.Col]

	b.MakeMoveUnchecked(m)

	if moving.Kind == Pawn || !captured.IsEmpty() {
		b.HalfMoveClock = 0
	} else {
		b.HalfMoveClock++
	}
	if b.SideToMove == Black {
		b.FullMoveNumber++
	}
	b.SideToMove = b.SideToMove.Other()
}
