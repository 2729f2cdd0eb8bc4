// Chessmate - play chess in the terminal against a capture-greedy computer.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/marloe/chessmate/internal/ai"
	"github.com/marloe/chessmate/internal/board"
	"github.com/marloe/chessmate/internal/game"
	"github.com/marloe/chessmate/internal/storage"
)

var (
	dbDir   = flag.String("db", "", "database directory (default: platform data dir)")
	noStore = flag.Bool("no-store", false, "disable preference and stats storage")
	seed    = flag.Int64("seed", 0, "random seed for the computer (0 = time-seeded)")
	color   = flag.String("color", "", "side to play: white or black (default: stored preference)")
)

func main() {
	flag.Parse()

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	prefs := loadPreferences(store)
	humanColor := resolveColor(prefs)
	if *color != "" {
		persistColor(store, prefs, humanColor)
	}
	aiSeed := *seed
	if aiSeed == 0 {
		aiSeed = prefs.AISeed
	}

	var policy ai.Policy
	if aiSeed != 0 {
		policy = ai.NewSeeded(aiSeed)
	} else {
		policy = ai.NewCapturePreferring(nil)
	}

	session := game.NewSession(game.Config{
		HumanColor: humanColor,
		Policy:     policy,
		Store:      store,
	})

	greet(store, prefs, humanColor)
	run(session)
	farewell(session, store)
}

// openStore opens the stats store unless disabled. A storage failure is
// reported and the game continues without persistence.
func openStore() *storage.Store {
	if *noStore {
		return nil
	}

	var (
		store *storage.Store
		err   error
	)
	if *dbDir != "" {
		store, err = storage.Open(*dbDir)
	} else {
		store, err = storage.OpenDefault()
	}
	if err != nil {
		log.Printf("Warning: storage unavailable: %v (stats will not be recorded)", err)
		return nil
	}
	return store
}

func loadPreferences(store *storage.Store) *storage.Preferences {
	if store == nil {
		return storage.DefaultPreferences()
	}
	prefs, err := store.LoadPreferences()
	if err != nil {
		log.Printf("Warning: could not load preferences: %v", err)
		return storage.DefaultPreferences()
	}
	return prefs
}

func resolveColor(prefs *storage.Preferences) board.Color {
	switch strings.ToLower(*color) {
	case "white":
		return board.White
	case "black":
		return board.Black
	case "":
		return prefs.PlayerColor
	default:
		log.Fatalf("invalid -color %q: want white or black", *color)
		return board.White
	}
}

// persistColor stores an explicit color choice so it sticks across runs.
func persistColor(store *storage.Store, prefs *storage.Preferences, c board.Color) {
	if store == nil || prefs.PlayerColor == c {
		return
	}
	prefs.PlayerColor = c
	if err := store.SavePreferences(prefs); err != nil {
		log.Printf("Warning: could not save preferences: %v", err)
	}
}

func greet(store *storage.Store, prefs *storage.Preferences, humanColor board.Color) {
	fmt.Printf("Chessmate: you play %s, the computer plays %s.\n",
		humanColor, humanColor.Other())

	if store == nil {
		return
	}
	first, err := store.IsFirstLaunch()
	if err != nil || !first {
		return
	}
	fmt.Println()
	fmt.Println("How to play:")
	fmt.Println("  - Enter moves in coordinate form, e.g. e2e4.")
	fmt.Println("  - 'moves e2' lists the legal destinations of a piece.")
	fmt.Println("  - 'fen' prints the position, 'quit' resigns the game.")
	fmt.Println("  - No castling, no en passant; pawns promote to queens.")
	if err := store.MarkFirstLaunchComplete(); err != nil {
		log.Printf("Warning: could not record first launch: %v", err)
	}
	if err := store.SavePreferences(prefs); err != nil {
		log.Printf("Warning: could not save preferences: %v", err)
	}
}

// run drives the move loop until the game reaches a terminal state or the
// human quits.
func run(session *game.Session) {
	scanner := bufio.NewScanner(os.Stdin)

	for {
		status := session.Status()
		if status.Terminal() {
			return
		}

		b := session.Board()
		if b.SideToMove == session.AutomatedColor() {
			m, err := session.PlayAutomatedMove()
			if err != nil {
				log.Printf("computer cannot move: %v", err)
				return
			}
			fmt.Printf("Computer plays %s.\n", m)
			continue
		}

		fmt.Println(b)
		if status == board.StatusCheck {
			fmt.Println("Check!")
		}

		fmt.Print("> ")
		if !scanner.Scan() {
			return
		}
		if !handleCommand(session, strings.TrimSpace(scanner.Text())) {
			return
		}
	}
}

// handleCommand executes one line of input. It returns false when the
// session should end.
func handleCommand(session *game.Session, line string) bool {
	switch {
	case line == "":
		return true
	case line == "quit" || line == "exit":
		// Quitting mid-game concedes: the loss is recorded like any other.
		session.Resign()
		return false
	case line == "fen":
		fmt.Println(session.Board().FEN())
		return true
	case strings.HasPrefix(line, "moves "):
		sq, err := board.ParseSquare(strings.TrimSpace(strings.TrimPrefix(line, "moves ")))
		if err != nil {
			fmt.Println(err)
			return true
		}
		dests := session.LegalDestinations(sq)
		if len(dests) == 0 {
			fmt.Printf("No legal moves from %s.\n", sq)
			return true
		}
		parts := make([]string, len(dests))
		for i, d := range dests {
			parts[i] = d.String()
		}
		fmt.Printf("%s: %s\n", sq, strings.Join(parts, " "))
		return true
	default:
		m, err := board.ParseMove(line)
		if err != nil {
			fmt.Println(err)
			return true
		}
		if err := session.MakeMove(m); err != nil {
			fmt.Println(err)
		}
		return true
	}
}

func farewell(session *game.Session, store *storage.Store) {
	fmt.Println(session.Board())

	switch {
	case session.Resigned():
		fmt.Printf("You resign. %s wins.\n", session.AutomatedColor())
	case session.Status() == board.StatusCheckmate:
		winner, _ := session.Winner()
		fmt.Printf("Checkmate! %s wins.\n", winner)
	case session.Status() == board.StatusStalemate:
		fmt.Println("Stalemate!")
	default:
		fmt.Println("Game abandoned.")
	}

	if store == nil {
		return
	}
	stats, err := store.LoadStats()
	if err != nil {
		log.Printf("Warning: could not load stats: %v", err)
		return
	}
	fmt.Printf("Record: %d played, %d won, %d lost, %d drawn (%.0f%% wins).\n",
		stats.GamesPlayed, stats.Wins, stats.Losses, stats.Draws, stats.WinRate())
}
