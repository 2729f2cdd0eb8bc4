package board

// PseudoLegalFrom generates the pseudo-legal moves for the piece on the
// given square: movement geometry and occupancy only, without regard to
// whether the mover's king is left attacked. An empty square yields nil.
//
// The per-kind generation order is fixed and observable through
// PseudoLegalFor and LegalMovesFor.
func (b *Board) PseudoLegalFrom(sq Square) []Move {
	p := b.PieceAt(sq)
	if p.IsEmpty() {
		return nil
	}

	switch p.Kind {
	case Pawn:
		return b.pawnMoves(sq, p.Color)
	case Knight:
		return b.leaperMoves(sq, p.Color, knightOffsets[:])
	case Bishop:
		return b.sliderMoves(sq, p.Color, diagonalDirs[:])
	case Rook:
		return b.sliderMoves(sq, p.Color, straightDirs[:])
	case Queen:
		moves := b.sliderMoves(sq, p.Color, diagonalDirs[:])
		return append(moves, b.sliderMoves(sq, p.Color, straightDirs[:])...)
	case King:
		return b.leaperMoves(sq, p.Color, kingOffsets[:])
	default:
		return nil
	}
}

// pawnMoves generates pawn pushes and captures. A single push requires an
// empty square ahead; the double push is available only from the starting
// rank and only when both squares ahead are empty, and is generated right
// after the single push. Captures go diagonally forward onto enemy pieces,
// left then right. No en passant capture exists in this rule set.
func (b *Board) pawnMoves(sq Square, c Color) []Move {
	var moves []Move
	dir := pawnDir(c)

	startRow := 1
	if c == White {
		startRow = 6
	}

	if r := sq.Row + dir; InBounds(r, sq.Col) && b.grid[r][sq.Col].IsEmpty() {
		moves = append(moves, NewMove(sq, Sq(r, sq.Col)))
		if r2 := sq.Row + 2*dir; sq.Row == startRow && b.grid[r2][sq.Col].IsEmpty() {
			moves = append(moves, NewMove(sq, Sq(r2, sq.Col)))
		}
	}

	for _, dc := range [2]int{-1, 1} {
		r, col := sq.Row+dir, sq.Col+dc
		if !InBounds(r, col) {
			continue
		}
		if target := b.grid[r][col]; !target.IsEmpty() && target.Color != c {
			moves = append(moves, NewMove(sq, Sq(r, col)))
		}
	}

	return moves
}

// leaperMoves generates moves for fixed-offset pieces (knight, king):
// each in-bounds offset square that is empty or holds an enemy piece.
// Castling is not part of this rule set, so the king is a plain leaper.
func (b *Board) leaperMoves(sq Square, c Color, offsets [][2]int) []Move {
	var moves []Move
	for _, off := range offsets {
		r, col := sq.Row+off[0], sq.Col+off[1]
		if !InBounds(r, col) {
			continue
		}
		if target := b.grid[r][col]; target.IsEmpty() || target.Color != c {
			moves = append(moves, NewMove(sq, Sq(r, col)))
		}
	}
	return moves
}

// sliderMoves generates ray moves (bishop, rook, and both halves of the
// queen): empty squares along a ray are destinations and the walk continues;
// an enemy piece is a destination and ends the ray; a friendly piece ends
// the ray unadded.
func (b *Board) sliderMoves(sq Square, c Color, dirs [][2]int) []Move {
	var moves []Move
	for _, d := range dirs {
		r, col := sq.Row+d[0], sq.Col+d[1]
		for InBounds(r, col) {
			target := b.grid[r][col]
			if target.IsEmpty() {
				moves = append(moves, NewMove(sq, Sq(r, col)))
			} else {
				if target.Color != c {
					moves = append(moves, NewMove(sq, Sq(r, col)))
				}
				break
			}
			r += d[0]
			col += d[1]
		}
	}
	return moves
}

// PseudoLegalFor aggregates PseudoLegalFrom over every square holding a
// piece of the given color, scanning rows then columns. This scan order
// fixes the enumeration order of the legal move set.
func (b *Board) PseudoLegalFor(c Color) []Move {
	var moves []Move
	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			p := b.grid[row][col]
			if !p.IsEmpty() && p.Color == c {
				moves = append(moves, b.PseudoLegalFrom(Sq(row, col))...)
			}
		}
	}
	return moves
}

// IsLegalMove reports whether applying the move leaves the given color's
// king safe: the source must hold a piece of that color, and the simulated
// position must not have that king attacked. The move is assumed to come
// from PseudoLegalFor; movement geometry is not re-checked here, so callers
// validating arbitrary input must test membership in LegalMovesFor instead.
// Legality is decided by simulating the move on a clone, never by mutating
// the receiver; the clone of a fixed 8x8 grid is cheap and keeps no undo
// bookkeeping around.
func (b *Board) IsLegalMove(m Move, c Color) bool {
	p := b.PieceAt(m.From)
	if p.IsEmpty() || p.Color != c {
		return false
	}

	next := b.Clone()
	next.MakeMoveUnchecked(m)
	return !next.InCheck(c)
}

// LegalMovesFor returns the pseudo-legal moves for the color that survive
// the king-safety filter, in generation order. The result is recomputed on
// every call; any board mutation invalidates previously returned sets.
func (b *Board) LegalMovesFor(c Color) []Move {
	var moves []Move
	for _, m := range b.PseudoLegalFor(c) {
		if b.IsLegalMove(m, c) {
			moves = append(moves, m)
		}
	}
	return moves
}
