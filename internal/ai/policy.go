// Package ai implements the move selection policy for the automated side.
package ai

import (
	"math/rand"
	"time"

	"github.com/marloe/chessmate/internal/board"
)

// Policy selects a move for one side from its legal moves.
// ok is false when that side has no legal moves, which the caller must
// treat as a terminal position.
type Policy interface {
	Choose(b *board.Board, c board.Color) (m board.Move, ok bool)
}

// CapturePreferring picks uniformly among the legal moves that capture the
// most valuable piece; when no capture is available it picks uniformly among
// all legal moves. Piece values: queen 9, rook 5, bishop and knight 3,
// pawn 1. It looks exactly one move ahead.
type CapturePreferring struct {
	rng *rand.Rand
}

// NewCapturePreferring creates a policy using the given random source.
// A nil source gets a time-seeded one.
func NewCapturePreferring(rng *rand.Rand) *CapturePreferring {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &CapturePreferring{rng: rng}
}

// NewSeeded creates a deterministic policy from a seed.
func NewSeeded(seed int64) *CapturePreferring {
	return NewCapturePreferring(rand.New(rand.NewSource(seed)))
}

// Choose implements Policy.
func (p *CapturePreferring) Choose(b *board.Board, c board.Color) (board.Move, bool) {
	moves := b.LegalMovesFor(c)
	if len(moves) == 0 {
		return board.Move{}, false
	}

	best := 0
	var captures []board.Move
	for _, m := range moves {
		target := b.PieceAt(m.To)
		if target.IsEmpty() || target.Color == c {
			continue
		}
		// Kings value 0 and cannot be captured anyway; only positive
		// capture values qualify.
		v := target.Kind.Value()
		if v > best {
			best = v
			captures = append(captures[:0], m)
		} else if v == best && v > 0 {
			captures = append(captures, m)
		}
	}

	if len(captures) > 0 {
		return captures[p.rng.Intn(len(captures))], true
	}
	return moves[p.rng.Intn(len(moves))], true
}
