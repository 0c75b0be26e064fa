package engine

import "capchess/game"

// MaxTurns caps runaway games between agents that keep passing or shuffling.
const MaxTurns = 500

// Engine runs a game until there is an outcome or the turn cap is reached.
type Engine interface {
	Run() (game.Outcome, bool)
}
