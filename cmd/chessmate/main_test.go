package main

import (
	"testing"

	"github.com/marloe/chessmate/internal/ai"
	"github.com/marloe/chessmate/internal/board"
	"github.com/marloe/chessmate/internal/game"
	"github.com/marloe/chessmate/internal/storage"
)

func openTestStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(t.TempDir())
	if err != nil {
		t.Fatalf("storage.Open: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestQuitResignsTheGame(t *testing.T) {
	store := openTestStore(t)
	session := game.NewSession(game.Config{
		HumanColor: board.White,
		Policy:     ai.NewSeeded(1),
		Store:      store,
	})

	if cont := handleCommand(session, "quit"); cont {
		t.Error("quit should end the input loop")
	}
	if !session.Resigned() {
		t.Error("quit should resign the game")
	}
	stats, err := store.LoadStats()
	if err != nil {
		t.Fatalf("LoadStats: %v", err)
	}
	if stats.GamesPlayed != 1 || stats.Losses != 1 {
		t.Errorf("stats = %+v, want 1 game, 1 loss", stats)
	}
}

func TestPersistColorSavesOverride(t *testing.T) {
	store := openTestStore(t)

	prefs, err := store.LoadPreferences()
	if err != nil {
		t.Fatalf("LoadPreferences: %v", err)
	}
	if prefs.PlayerColor != board.White {
		t.Fatalf("default color = %v, want White", prefs.PlayerColor)
	}

	persistColor(store, prefs, board.Black)

	reloaded, err := store.LoadPreferences()
	if err != nil {
		t.Fatalf("LoadPreferences: %v", err)
	}
	if reloaded.PlayerColor != board.Black {
		t.Errorf("stored color = %v, want Black", reloaded.PlayerColor)
	}
}

func TestPersistColorNilStoreIsNoOp(t *testing.T) {
	prefs := storage.DefaultPreferences()
	persistColor(nil, prefs, board.Black)
	if prefs.PlayerColor != board.White {
		t.Errorf("prefs color = %v, want White untouched without a store", prefs.PlayerColor)
	}
}
