package board

import "fmt"

// Move is an ordered pair of squares. Promotion carries no explicit marker:
// a pawn arriving on the opponent's back rank always becomes a queen.
// Moves are transient values; the engine keeps no move history.
type Move struct {
	From, To Square
}

// NewMove creates a move from source to destination.
func NewMove(from, to Square) Move {
	return Move{From: from, To: to}
}

// String returns the coordinate form of the move, e.g. "e2e4".
func (m Move) String() string {
	return m.From.String() + m.To.String()
}

// ParseMove parses a coordinate move string such as "e2e4".
func ParseMove(s string) (Move, error) {
	if len(s) != 4 {
		return Move{}, fmt.Errorf("invalid move string: %q", s)
	}

	from, err := ParseSquare(s[0:2])
	if err != nil {
		return Move{}, err
	}

	to, err := ParseSquare(s[2:4])
	if err != nil {
		return Move{}, err
	}

	return NewMove(from, to), nil
}
