package board

// Movement offsets shared by attack detection and move generation.
var (
	knightOffsets = [8][2]int{{2, 1}, {2, -1}, {-2, 1}, {-2, -1}, {1, 2}, {1, -2}, {-1, 2}, {-1, -2}}
	kingOffsets   = [8][2]int{{-1, -1}, {-1, 0}, {-1, 1}, {0, -1}, {0, 1}, {1, -1}, {1, 0}, {1, 1}}
	diagonalDirs  = [4][2]int{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
	straightDirs  = [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
)

// pawnDir returns the row delta a pawn of the given color advances by.
// White advances toward row 0, Black toward row 7.
func pawnDir(c Color) int {
	if c == White {
		return -1
	}
	return 1
}

// IsAttacked reports whether the given color attacks the square. It checks
// five independent patterns, any one of which suffices: knights, pawns,
// the enemy king, diagonal sliders (bishop/queen), and straight sliders
// (rook/queen). Rays stop at the first piece regardless of its color.
//
// This is the single source of truth for attack queries: check detection and
// legality filtering both route through it.
func (b *Board) IsAttacked(sq Square, by Color) bool {
	// Knights.
	for _, off := range knightOffsets {
		r, c := sq.Row+off[0], sq.Col+off[1]
		if !InBounds(r, c) {
			continue
		}
		if p := b.grid[r][c]; !p.IsEmpty() && p.Color == by && p.Kind == Knight {
			return true
		}
	}

	// Pawns attack diagonally forward, so the attacker sits one row behind
	// the target relative to its own advance direction.
	r := sq.Row - pawnDir(by)
	for _, dc := range [2]int{-1, 1} {
		c := sq.Col + dc
		if !InBounds(r, c) {
			continue
		}
		if p := b.grid[r][c]; !p.IsEmpty() && p.Color == by && p.Kind == Pawn {
			return true
		}
	}

	// Enemy king on an adjacent square.
	for _, off := range kingOffsets {
		r, c := sq.Row+off[0], sq.Col+off[1]
		if !InBounds(r, c) {
			continue
		}
		if p := b.grid[r][c]; !p.IsEmpty() && p.Color == by && p.Kind == King {
			return true
		}
	}

	// Sliders: walk each ray outward until the edge or the first piece.
	if b.rayHits(sq, by, diagonalDirs, Bishop) {
		return true
	}
	return b.rayHits(sq, by, straightDirs, Rook)
}

// rayHits walks the given ray directions from sq and reports whether the
// first piece on any ray is an attacker's slider of the given kind or a
// queen. Any other piece blocks the ray.
func (b *Board) rayHits(sq Square, by Color, dirs [4][2]int, slider Kind) bool {
	for _, d := range dirs {
		r, c := sq.Row+d[0], sq.Col+d[1]
		for InBounds(r, c) {
			p := b.grid[r][c]
			if !p.IsEmpty() {
				if p.Color == by && (p.Kind == slider || p.Kind == Queen) {
					return true
				}
				break
			}
			r += d[0]
			c += d[1]
		}
	}
	return false
}

// InCheck reports whether the given color's king is attacked. A board with
// no king of that color is never in check.
func (b *Board) InCheck(c Color) bool {
	ksq, ok := b.KingSquare(c)
	if !ok {
		return false
	}
	return b.IsAttacked(ksq, c.Other())
}
