package searcher

import (
	"capchess/game"

	"golang.org/x/exp/rand"
)

// Agent picks a full turn for the side to move.
type Agent interface {
	FindTurn(g *game.GameState) (game.Turn, Metrics, error)
}

// SearchAgent plays the minimax searcher's choice.
type SearchAgent struct {
	minimax *Minimax
}

func NewSearchAgent(options ...Option) *SearchAgent {
	return &SearchAgent{minimax: NewMinimax(options...)}
}

func (a *SearchAgent) FindTurn(g *game.GameState) (game.Turn, Metrics, error) {
	return a.minimax.BestTurn(g)
}

// RandomAgent plays a single random affordable action per turn. It is the
// baseline opponent.
type RandomAgent struct {
	rng *rand.Rand
}

func NewRandomAgent(seed uint64) *RandomAgent {
	return &RandomAgent{rng: rand.New(rand.NewSource(seed))}
}

func (a *RandomAgent) FindTurn(g *game.GameState) (game.Turn, Metrics, error) {
	moves := g.AffordableMoves()
	if len(moves) == 0 {
		return nil, Metrics{}, ErrNoLegalTurns
	}
	return game.Turn{moves[a.rng.Intn(len(moves))]}, Metrics{}, nil
}
