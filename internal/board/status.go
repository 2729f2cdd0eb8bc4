package board

// Status classifies the position for the side to move.
type Status uint8

const (
	// StatusNormal: legal moves exist and the king is not attacked.
	StatusNormal Status = iota
	// StatusCheck: legal moves exist and the king is attacked.
	StatusCheck
	// StatusCheckmate: no legal moves and the king is attacked.
	// The opponent of the side to move has won.
	StatusCheckmate
	// StatusStalemate: no legal moves and the king is not attacked.
	// The game is drawn with no winner.
	StatusStalemate
)

// String returns the status name.
func (s Status) String() string {
	switch s {
	case StatusNormal:
		return "Normal"
	case StatusCheck:
		return "Check"
	case StatusCheckmate:
		return "Checkmate"
	case StatusStalemate:
		return "Stalemate"
	default:
		return "Unknown"
	}
}

// Terminal reports whether the status ends the game. The board itself
// accepts further MakeMove calls; refusing them once a terminal status is
// reached is the caller's job.
func (s Status) Terminal() bool {
	return s == StatusCheckmate || s == StatusStalemate
}

// Status classifies the position for the side to move. The classification is
// computed on demand from the legal move set and the check state; nothing is
// cached, so calling Status repeatedly without an intervening MakeMove
// yields identical results.
func (b *Board) Status() Status {
	inCheck := b.InCheck(b.SideToMove)
	if len(b.LegalMovesFor(b.SideToMove)) > 0 {
		if inCheck {
			return StatusCheck
		}
		return StatusNormal
	}
	if inCheck {
		return StatusCheckmate
	}
	return StatusStalemate
}
