// Package game wires the rules engine, the automated-side policy, and the
// stats store into a single session consumed by a presentation front-end.
package game

import (
	"errors"
	"fmt"
	"time"

	"github.com/marloe/chessmate/internal/ai"
	"github.com/marloe/chessmate/internal/board"
	"github.com/marloe/chessmate/internal/storage"
)

// Move rejection and lifecycle errors. Rejected moves are ordinary errors
// surfaced to the caller; the board is never touched by a rejected move.
var (
	ErrGameOver    = errors.New("game is over")
	ErrNoPiece     = errors.New("no piece at source square")
	ErrWrongTurn   = errors.New("piece belongs to the other side")
	ErrIllegalMove = errors.New("illegal move")
	ErrNoMoves     = errors.New("no legal moves available")
)

// Config configures a session.
type Config struct {
	// HumanColor is the side the human plays; the other side is automated.
	HumanColor board.Color
	// Policy selects automated moves. Nil gets a time-seeded
	// capture-preferring policy.
	Policy ai.Policy
	// Store, when non-nil, records the result of a finished game once.
	Store *storage.Store
}

// Session owns one game from the starting position to a terminal state.
// It is single-threaded: all calls happen from one control flow.
type Session struct {
	board    *board.Board
	human    board.Color
	policy   ai.Policy
	store    *storage.Store
	started  time.Time
	recorded bool
	resigned bool
}

// NewSession starts a game from the standard initial position.
func NewSession(cfg Config) *Session {
	policy := cfg.Policy
	if policy == nil {
		policy = ai.NewCapturePreferring(nil)
	}
	return &Session{
		board:   board.New(),
		human:   cfg.HumanColor,
		policy:  policy,
		store:   cfg.Store,
		started: time.Now(),
	}
}

// Board exposes the board for rendering. Callers must not mutate it
// directly; all mutation goes through MakeMove.
func (s *Session) Board() *board.Board {
	return s.board
}

// HumanColor returns the side the human plays.
func (s *Session) HumanColor() board.Color {
	return s.human
}

// AutomatedColor returns the policy-driven side.
func (s *Session) AutomatedColor() board.Color {
	return s.human.Other()
}

// Status classifies the current position for the side to move.
func (s *Session) Status() board.Status {
	return s.board.Status()
}

// Winner returns the winning color of a decided game. ok is false while the
// game runs or when it ends in stalemate.
func (s *Session) Winner() (board.Color, bool) {
	if s.board.Status() != board.StatusCheckmate {
		return 0, false
	}
	return s.board.SideToMove.Other(), true
}

// LegalDestinations returns the destinations of all legal moves for the
// side to move that start on the given square. Selecting an empty or
// opposing square yields an empty result, not an error.
func (s *Session) LegalDestinations(from board.Square) []board.Square {
	var dests []board.Square
	for _, m := range s.board.LegalMovesFor(s.board.SideToMove) {
		if m.From == from {
			dests = append(dests, m.To)
		}
	}
	return dests
}

// MakeMove validates and applies a move for the side to move. The move must
// appear in the side's legal move set: board.IsLegalMove alone assumes
// pseudo-legal input and would wave through raw coordinate pairs that break
// movement geometry. Terminal positions are absorbing: once the game is
// decided every move is rejected with ErrGameOver. A finished game is
// recorded to the store, once.
func (s *Session) MakeMove(m board.Move) error {
	if s.finished() {
		return ErrGameOver
	}

	p := s.board.PieceAt(m.From)
	switch {
	case p.IsEmpty():
		return fmt.Errorf("%w: %s", ErrNoPiece, m.From)
	case p.Color != s.board.SideToMove:
		return fmt.Errorf("%w: %s", ErrWrongTurn, m.From)
	case !s.inLegalMoveSet(m):
		return fmt.Errorf("%w: %s", ErrIllegalMove, m)
	}

	s.board.MakeMove(m)
	s.maybeRecord()
	return nil
}

// inLegalMoveSet reports whether m is among the side to move's legal moves.
func (s *Session) inLegalMoveSet(m board.Move) bool {
	for _, legal := range s.board.LegalMovesFor(s.board.SideToMove) {
		if legal == m {
			return true
		}
	}
	return false
}

// finished reports whether the session has ended, by a terminal position or
// by resignation. Finished sessions reject all further moves.
func (s *Session) finished() bool {
	return s.resigned || s.board.Status().Terminal()
}

// Resign ends the game as a loss for the human. Resigning a game that is
// already finished does nothing.
func (s *Session) Resign() {
	if s.finished() {
		return
	}
	s.resigned = true
	if s.store == nil || s.recorded {
		return
	}
	s.recorded = true
	_ = s.store.RecordGame(storage.Result{Duration: time.Since(s.started)})
}

// Resigned reports whether the human resigned.
func (s *Session) Resigned() bool {
	return s.resigned
}

// ChooseAutomatedMove asks the policy for the automated side's move without
// applying it. ok is false when that side has no legal moves.
func (s *Session) ChooseAutomatedMove() (board.Move, bool) {
	return s.policy.Choose(s.board, s.AutomatedColor())
}

// PlayAutomatedMove chooses and applies the automated side's move.
func (s *Session) PlayAutomatedMove() (board.Move, error) {
	if s.finished() {
		return board.Move{}, ErrGameOver
	}
	m, ok := s.ChooseAutomatedMove()
	if !ok {
		return board.Move{}, ErrNoMoves
	}
	return m, s.MakeMove(m)
}

// maybeRecord writes the finished game's result to the store exactly once.
// Results are from the human's perspective.
func (s *Session) maybeRecord() {
	if s.store == nil || s.recorded {
		return
	}

	status := s.board.Status()
	if !status.Terminal() {
		return
	}
	s.recorded = true

	result := storage.Result{Duration: time.Since(s.started)}
	if status == board.StatusCheckmate {
		winner, _ := s.Winner()
		result.Won = winner == s.human
	} else {
		result.Draw = true
	}

	// Recording is best-effort; a storage failure never fails the game.
	_ = s.store.RecordGame(result)
}
