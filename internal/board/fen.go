package board

import (
	"fmt"
	"strconv"
	"strings"
)

// StartFEN is the FEN string for the starting position.
const StartFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w - - 0 1"

// ParseFEN parses a FEN string into a Board. The castling and en-passant
// fields are accepted but ignored: this rule set tracks neither. At least
// the placement and side-to-move fields must be present; the clock fields
// default to 0 and 1.
func ParseFEN(fen string) (*Board, error) {
	parts := strings.Fields(fen)
	if len(parts) < 2 {
		return nil, fmt.Errorf("invalid FEN: need at least 2 fields, got %d", len(parts))
	}

	b := &Board{FullMoveNumber: 1}

	ranks := strings.Split(parts[0], "/")
	if len(ranks) != 8 {
		return nil, fmt.Errorf("invalid piece placement: need 8 ranks, got %d", len(ranks))
	}

	for row, rankStr := range ranks {
		col := 0
		for i := 0; i < len(rankStr); i++ {
			ch := rankStr[i]
			if col > 7 {
				return nil, fmt.Errorf("too many squares in rank %d", 8-row)
			}
			if ch >= '1' && ch <= '8' {
				col += int(ch - '0')
				continue
			}
			p := PieceFromChar(ch)
			if p.IsEmpty() {
				return nil, fmt.Errorf("invalid piece character: %c", ch)
			}
			b.grid[row][col] = p
			col++
		}
		if col != 8 {
			return nil, fmt.Errorf("invalid number of squares in rank %d: got %d", 8-row, col)
		}
	}

	switch parts[1] {
	case "w":
		b.SideToMove = White
	case "b":
		b.SideToMove = Black
	default:
		return nil, fmt.Errorf("invalid side to move: %s", parts[1])
	}

	if len(parts) > 4 {
		hmc, err := strconv.Atoi(parts[4])
		if err != nil {
			return nil, fmt.Errorf("invalid half-move clock: %s", parts[4])
		}
		b.HalfMoveClock = hmc
	}

	if len(parts) > 5 {
		fmn, err := strconv.Atoi(parts[5])
		if err != nil {
			return nil, fmt.Errorf("invalid full-move number: %s", parts[5])
		}
		b.FullMoveNumber = fmn
	}

	return b, nil
}

// FEN returns the FEN representation of the board. The castling and
// en-passant fields are always "-".
func (b *Board) FEN() string {
	var sb strings.Builder

	for row := 0; row < 8; row++ {
		empty := 0
		for col := 0; col < 8; col++ {
			p := b.grid[row][col]
			if p.IsEmpty() {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			sb.WriteString(p.String())
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
		if row < 7 {
			sb.WriteByte('/')
		}
	}

	side := "w"
	if b.SideToMove == Black {
		side = "b"
	}
	fmt.Fprintf(&sb, " %s - - %d %d", side, b.HalfMoveClock, b.FullMoveNumber)

	return sb.String()
}
