package board

import "fmt"

// Square identifies a board square by row and column, each 0-7.
// Row 0 is Black's back rank (rank 8), row 7 is White's back rank (rank 1).
// Equality is structural.
type Square struct {
	Row, Col int
}

// Sq is shorthand for constructing a Square.
func Sq(row, col int) Square {
	return Square{Row: row, Col: col}
}

// InBounds reports whether (row, col) lies on the board.
func InBounds(row, col int) bool {
	return row >= 0 && row < 8 && col >= 0 && col < 8
}

// Valid reports whether the square lies on the board.
func (sq Square) Valid() bool {
	return InBounds(sq.Row, sq.Col)
}

// String returns the algebraic notation for the square, e.g. "e4".
// Off-board squares render as "-".
func (sq Square) String() string {
	if !sq.Valid() {
		return "-"
	}
	return fmt.Sprintf("%c%c", 'a'+sq.Col, '8'-sq.Row)
}

// ParseSquare parses algebraic notation ("e4") into a Square.
func ParseSquare(s string) (Square, error) {
	if len(s) != 2 {
		return Square{}, fmt.Errorf("invalid square: %q", s)
	}

	col := int(s[0] - 'a')
	row := int('8' - s[1])

	if !InBounds(row, col) {
		return Square{}, fmt.Errorf("invalid square: %q", s)
	}

	return Sq(row, col), nil
}
