package board

import (
	"fmt"
	"strings"
)

// Board holds a complete game state: the piece grid, the side to move, and
// the move clocks. Each square holds at most one piece. The grid owns its
// pieces outright; clones share nothing with their source.
//
// The half-move clock counts moves since the last pawn move or capture and is
// informational only; no draw rule consumes it. The full-move number starts
// at 1 and increments after each Black move.
type Board struct {
	grid [8][8]Piece

	SideToMove     Color
	HalfMoveClock  int
	FullMoveNumber int
}

// backRank is the piece order on each side's back rank, left to right.
var backRank = [8]Kind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}

// New creates a board in the standard starting position, White to move.
func New() *Board {
	b := &Board{FullMoveNumber: 1}
	for col := 0; col < 8; col++ {
		b.grid[1][col] = NewPiece(Pawn, Black)
		b.grid[6][col] = NewPiece(Pawn, White)
		b.grid[0][col] = NewPiece(backRank[col], Black)
		b.grid[7][col] = NewPiece(backRank[col], White)
	}
	return b
}

// Clone returns an independent deep copy of the board. The grid is a fixed
// array of piece values, so a struct copy shares no state with the source.
func (b *Board) Clone() *Board {
	nb := *b
	return &nb
}

// PieceAt returns the piece on the given square, or the empty piece.
// Reads never mutate the board.
func (b *Board) PieceAt(sq Square) Piece {
	return b.grid[sq.Row][sq.Col]
}

// KingSquare returns the square of the given color's king, scanning the grid
// row-major. ok is false when no such king exists; that state is unreachable
// through this engine's own move application, and callers treat it as
// "not in check" rather than failing.
func (b *Board) KingSquare(c Color) (Square, bool) {
	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			p := b.grid[row][col]
			if !p.IsEmpty() && p.Color == c && p.Kind == King {
				return Sq(row, col), true
			}
		}
	}
	return Square{}, false
}

// String returns a printable view of the board from White's perspective,
// with rank and file labels.
func (b *Board) String() string {
	var sb strings.Builder
	sb.WriteByte('\n')
	for row := 0; row < 8; row++ {
		fmt.Fprintf(&sb, "%d  ", 8-row)
		for col := 0; col < 8; col++ {
			sb.WriteString(b.grid[row][col].String())
			sb.WriteByte(' ')
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("\n   a b c d e f g h\n\n")
	fmt.Fprintf(&sb, "Side to move: %s\n", b.SideToMove)
	fmt.Fprintf(&sb, "Half-move clock: %d\n", b.HalfMoveClock)
	fmt.Fprintf(&sb, "Full move: %d\n", b.FullMoveNumber)
	return sb.String()
}
