package board

import (
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestInitialPositionTwentyMoves(t *testing.T) {
	b := New()

	pseudo := b.PseudoLegalFor(White)
	if len(pseudo) != 20 {
		t.Errorf("pseudo-legal count = %d, want 20", len(pseudo))
	}

	legal := b.LegalMovesFor(White)
	if len(legal) != 20 {
		t.Errorf("legal count = %d, want 20", len(legal))
	}

	// The enumeration order is fixed: sources row-major from Black's side of
	// the board, pawn single push before double push, knights by offset table.
	want := []string{
		"a2a3", "a2a4", "b2b3", "b2b4", "c2c3", "c2c4", "d2d3", "d2d4",
		"e2e3", "e2e4", "f2f3", "f2f4", "g2g3", "g2g4", "h2h3", "h2h4",
		"b1c3", "b1a3", "g1h3", "g1f3",
	}
	if diff := cmp.Diff(want, moveStrings(legal)); diff != "" {
		t.Errorf("legal move order mismatch (-want +got):\n%s", diff)
	}

	// Black mirrors White's 20.
	if got := len(b.LegalMovesFor(Black)); got != 20 {
		t.Errorf("black legal count = %d, want 20", got)
	}
}

func TestLegalMovesNeverExposeKing(t *testing.T) {
	fens := []string{
		StartFEN,
		"4k3/8/8/4r3/8/8/8/4K3 w - - 0 1",    // rook pinning file
		"k7/8/8/8/8/2b5/8/K2R4 w - - 0 1",    // bishop eyeing the king's rook
		"r3k3/8/8/8/8/8/4q3/4K3 w - - 0 1",   // king under fire
		"4k3/8/8/3b4/8/8/3PP3/4K3 w - - 0 1", // pinned pawn
	}

	for _, fen := range fens {
		b := mustFEN(t, fen)
		for _, c := range []Color{White, Black} {
			for _, m := range b.LegalMovesFor(c) {
				next := b.Clone()
				next.MakeMoveUnchecked(m)
				if next.InCheck(c) {
					t.Errorf("%s: legal move %v leaves the %v king attacked", fen, m, c)
				}
			}
		}
	}
}

func TestPinnedPieceCannotMove(t *testing.T) {
	// White rook on e4 is pinned against the king by the e5 rook: every rook
	// move off the e-file is illegal, sliding along it is fine.
	b := mustFEN(t, "4k3/8/8/4r3/4R3/8/8/4K3 w - - 0 1")

	off, _ := ParseMove("e4d4")
	if b.IsLegalMove(off, White) {
		t.Error("moving the pinned rook off the file should be illegal")
	}
	along, _ := ParseMove("e4e3")
	if !b.IsLegalMove(along, White) {
		t.Error("sliding the pinned rook along the file should be legal")
	}
	capture, _ := ParseMove("e4e5")
	if !b.IsLegalMove(capture, White) {
		t.Error("capturing the pinning rook should be legal")
	}
}

func TestKingMustLeaveCheckedFile(t *testing.T) {
	// White king h1 stares up an open h-file at the black queen on h8.
	// Only g1 and g2 escape; h2 stays on the file.
	b := mustFEN(t, "k6q/8/8/8/8/8/8/7K w - - 0 1")

	if b.Status() != StatusCheck {
		t.Fatalf("status = %v, want Check", b.Status())
	}

	want := []string{"h1g2", "h1g1"}
	if diff := cmp.Diff(want, moveStrings(b.LegalMovesFor(White))); diff != "" {
		t.Errorf("legal moves mismatch (-want +got):\n%s", diff)
	}
}

func TestBareKingsThreeMoves(t *testing.T) {
	b := mustFEN(t, "7k/8/8/8/8/8/8/K7 w - - 0 1")

	if b.Status() != StatusNormal {
		t.Errorf("status = %v, want Normal", b.Status())
	}

	want := []string{"a1a2", "a1b2", "a1b1"}
	if diff := cmp.Diff(want, moveStrings(b.LegalMovesFor(White))); diff != "" {
		t.Errorf("legal moves mismatch (-want +got):\n%s", diff)
	}
}

func TestPawnDoublePushRules(t *testing.T) {
	// Both squares ahead must be empty for the double push.
	blocked := mustFEN(t, "4k3/8/8/8/4p3/8/4P3/4K3 w - - 0 1")
	e2 := Sq(6, 4)
	got := moveStrings(blocked.PseudoLegalFrom(e2))
	if diff := cmp.Diff([]string{"e2e3"}, got); diff != "" {
		t.Errorf("e4 occupied: move mismatch (-want +got):\n%s", diff)
	}

	fullyBlocked := mustFEN(t, "4k3/8/8/8/8/4p3/4P3/4K3 w - - 0 1")
	if moves := fullyBlocked.PseudoLegalFrom(e2); len(moves) != 0 {
		t.Errorf("e3 occupied: got %v, want none", moveStrings(moves))
	}

	// The double push exists only from the starting rank.
	advanced := mustFEN(t, "4k3/8/8/8/8/4P3/8/4K3 w - - 0 1")
	got = moveStrings(advanced.PseudoLegalFrom(Sq(5, 4)))
	if diff := cmp.Diff([]string{"e3e4"}, got); diff != "" {
		t.Errorf("advanced pawn: move mismatch (-want +got):\n%s", diff)
	}

	// Captures only onto enemy pieces, left then right.
	captures := mustFEN(t, "4k3/8/8/8/3r1n2/4P3/8/4K3 w - - 0 1")
	got = moveStrings(captures.PseudoLegalFrom(Sq(5, 4)))
	want := []string{"e3e4", "e3d4", "e3f4"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("pawn captures mismatch (-want +got):\n%s", diff)
	}
}

func TestSliderStopsAtFriendly(t *testing.T) {
	// Rook on a1 with a friendly pawn on a3: a2 is reachable, a3 and beyond
	// are not; the enemy piece on d1 is reachable and ends the ray.
	b := mustFEN(t, "4k3/8/8/8/8/P7/8/R2nK3 w - - 0 1")

	got := moveStrings(b.PseudoLegalFrom(Sq(7, 0)))
	want := []string{"a1a2", "a1b1", "a1c1", "a1d1"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("rook moves mismatch (-want +got):\n%s", diff)
	}
}

func TestWrongColorAndEmptySourceRejected(t *testing.T) {
	b := New()

	if b.IsLegalMove(NewMove(Sq(4, 4), Sq(3, 4)), White) {
		t.Error("a move from an empty square is never legal")
	}
	if b.IsLegalMove(NewMove(Sq(1, 4), Sq(2, 4)), White) {
		t.Error("white cannot move a black pawn")
	}
	if !b.IsLegalMove(NewMove(Sq(1, 4), Sq(2, 4)), Black) {
		t.Error("e7e6 should be legal for black")
	}
}

func TestConcurrentReadOnlyGeneration(t *testing.T) {
	// Legal-move generation only reads the receiver; concurrent readers over
	// one board must agree with a serial pass.
	b := mustFEN(t, "r3k3/1b4q1/8/3n4/8/2N2B2/1Q6/R3K3 w - - 0 1")
	want := moveStrings(b.LegalMovesFor(White))

	var wg sync.WaitGroup
	results := make([][]string, 8)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = moveStrings(b.LegalMovesFor(White))
		}(i)
	}
	wg.Wait()

	for i, got := range results {
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("reader %d mismatch (-want +got):\n%s", i, diff)
		}
	}
}
