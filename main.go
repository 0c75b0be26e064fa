package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"capchess/config"
	"capchess/engine"
	"capchess/game"
	"capchess/notation"
	"capchess/searcher"

	"github.com/logrusorgru/aurora"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	selfplay := flag.Bool("selfplay", false, "pit the engine against itself")
	verbose := flag.Bool("verbose", false, "enable debug logging")
	flag.Parse()

	level := zerolog.WarnLevel
	if *verbose {
		level = zerolog.DebugLevel
	}
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level)

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("bad configuration")
	}

	state := game.NewGameState(cfg.GameMarket(), cfg.InitialBalance)
	opts := []searcher.Option{
		searcher.WithDepth(cfg.Search.Depth),
		searcher.WithGoroutines(cfg.Search.Goroutines),
		searcher.WithTurnLength(cfg.Search.TurnLength),
		searcher.WithBranchLimit(cfg.Search.BranchLimit),
	}

	if *selfplay {
		e := engine.NewLocal(state, searcher.NewSearchAgent(opts...), searcher.NewSearchAgent(opts...), cfg.MaxTurns)
		if outcome, ok := e.Run(); ok {
			fmt.Println(outcome)
		} else {
			fmt.Println("no result")
		}
		return
	}

	playInteractive(state, searcher.NewSearchAgent(opts...))
}

// playInteractive runs a stdin loop: the human plays White, the search
// engine answers as Black.
func playInteractive(state *game.GameState, opponent searcher.Agent) {
	reader := bufio.NewReader(os.Stdin)
	for {
		if outcome, over := state.Result(); over {
			render(state)
			fmt.Println(outcome)
			return
		}

		if state.WhoseTurn() == game.Black {
			fmt.Println("engine is thinking...")
			turn, _, err := opponent.FindTurn(state)
			if errors.Is(err, searcher.ErrNoLegalTurns) {
				_ = state.EndTurn()
				continue
			}
			if err != nil {
				fmt.Println("engine error:", err)
				return
			}
			if err := state.ApplyTurn(turn); err != nil {
				fmt.Println("engine played a bad turn:", err)
				return
			}
			fmt.Printf("engine plays: %s\n", notation.FormatTurn(turn))
			continue
		}

		render(state)
		base := state.Market().MovePrice(state.Bank(game.White).MovesThisTurn())
		fmt.Printf("next move costs %s\n", game.FormatPennies(base))
		fmt.Print("> ")
		line, err := reader.ReadString('\n')
		if err != nil {
			return
		}
		input := strings.TrimSpace(line)

		switch input {
		case "exit":
			return
		case "pass":
			if err := state.EndTurn(); err != nil {
				fmt.Println(err)
			}
			continue
		case "resign":
			fmt.Println(game.Outcome{Winner: game.Black, Reason: game.Bankrupt})
			return
		case "moves":
			for _, m := range state.AffordableMoves() {
				fmt.Printf("%s (%s)  ", notation.FormatMove(m), game.FormatPennies(state.MoveCost(m)))
			}
			fmt.Println()
			continue
		}

		turn, err := notation.ParseTurn(input, state)
		if err != nil {
			fmt.Println(err)
			continue
		}
		if err := state.ApplyTurn(turn); err != nil {
			fmt.Println(err)
			continue
		}
	}
}

// render prints both banks and the board, colorizing pieces by owner.
func render(state *game.GameState) {
	fmt.Println(aurora.Gray(12, state.Bank(game.Black).String()))
	for rank := 7; rank >= 0; rank-- {
		fmt.Printf("%d ", rank+1)
		for file := 0; file < 8; file++ {
			t, _ := game.Square(file, rank)
			p := state.Board.PieceAt(t)
			glyph := string(p.Rune())
			switch {
			case p.Empty():
				fmt.Print(aurora.Gray(8, glyph), " ")
			case p.Owner == game.White:
				fmt.Print(aurora.Bold(aurora.White(glyph)), " ")
			default:
				fmt.Print(aurora.Red(glyph), " ")
			}
		}
		fmt.Println()
	}
	fmt.Println("  a b c d e f g h")
	fmt.Println(aurora.Gray(12, state.Bank(game.White).String()))
}
