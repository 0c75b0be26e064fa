package searcher

import (
	"errors"
	"sync"

	"capchess/game"

	"github.com/rs/zerolog/log"
)

// ErrNoLegalTurns is returned when the side to move cannot pay for any
// legal action. It mirrors the game-over condition; callers are expected to
// have checked for an outcome already.
var ErrNoLegalTurns = errors.New("no legal turns")

type Option func(*Minimax)

// WithDepth sets how many full turns deep the search looks.
func WithDepth(depth int) Option {
	return func(m *Minimax) {
		m.depth = depth
	}
}

// WithGoroutines fans the root candidates out over n goroutines. The chosen
// turn is identical to the sequential search.
func WithGoroutines(n int) Option {
	return func(m *Minimax) {
		m.goroutines = n
	}
}

// WithTurnLength caps how many paid moves a candidate turn may chain.
func WithTurnLength(n int) Option {
	return func(m *Minimax) {
		m.turnLength = n
	}
}

// WithBranchLimit caps how many actions are considered at each step of turn
// construction, keeping the best by greedy gain.
func WithBranchLimit(n int) Option {
	return func(m *Minimax) {
		m.branchLimit = n
	}
}

// WithEvaluator swaps the leaf evaluation function.
func WithEvaluator(e game.Evaluator) Option {
	return func(m *Minimax) {
		m.evaluate = e
	}
}

// Minimax is a fixed-depth adversarial search whose tree edges are whole
// turns, not single moves: pricing and purchase eligibility are turn
// scoped, so the unit of choice has to be the full paid sequence. Turn
// construction is a bounded greedy enumeration; turn selection is plain
// minimax over cloned states.
type Minimax struct {
	depth       int
	goroutines  int
	turnLength  int
	branchLimit int
	evaluate    game.Evaluator
}

// NewMinimax builds a searcher with depth 4, sequential execution, turns of
// up to 3 moves and a branch limit of 8 unless configured otherwise.
func NewMinimax(options ...Option) *Minimax {
	m := &Minimax{
		depth:       4,
		goroutines:  1,
		turnLength:  3,
		branchLimit: 8,
		evaluate:    game.EvaluateCapitalist,
	}
	for _, option := range options {
		option(m)
	}
	return m
}

// BestTurn returns the best full turn for the side to move. Ties break
// toward the first candidate generated, so parallel execution cannot change
// the choice.
func (m *Minimax) BestTurn(g *game.GameState) (game.Turn, Metrics, error) {
	collector := newCollector()

	candidates := m.candidateTurns(g, collector)
	if len(candidates) == 0 {
		return nil, collector.complete(), ErrNoLegalTurns
	}

	scores := make([]float64, len(candidates))
	score := func(i int) {
		child := g.Clone()
		if err := child.ApplyTurn(candidates[i]); err != nil {
			scores[i] = -game.WinScore * 2
			return
		}
		scores[i] = -m.search(child, m.depth-1, collector)
	}

	if m.goroutines > 1 {
		var wg sync.WaitGroup
		work := make(chan int)
		for w := 0; w < m.goroutines; w++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for i := range work {
					score(i)
				}
			}()
		}
		for i := range candidates {
			work <- i
		}
		close(work)
		wg.Wait()
	} else {
		for i := range candidates {
			score(i)
		}
	}

	best := 0
	for i := 1; i < len(scores); i++ {
		if scores[i] > scores[best] {
			best = i
		}
	}

	metrics := collector.complete()
	log.Debug().
		Str("side", g.WhoseTurn().String()).
		Str("turn", candidates[best].String()).
		Float64("score", scores[best]).
		Int64("evaluations", metrics.Evaluations).
		Msg("search complete")
	return candidates[best], metrics, nil
}

// search returns the value of the state from the side to move's point of
// view, exploring one full turn per level.
func (m *Minimax) search(g *game.GameState, depth int, collector *collector) float64 {
	if g.Over() || depth <= 0 {
		collector.addEvaluation()
		return m.evaluate(g, g.WhoseTurn())
	}

	candidates := m.candidateTurns(g, collector)
	if len(candidates) == 0 {
		// No affordable action and yet no recorded outcome: treat as lost.
		return -game.WinScore
	}

	best := -game.WinScore * 2
	for _, candidate := range candidates {
		child := g.Clone()
		if err := child.ApplyTurn(candidate); err != nil {
			continue
		}
		if value := -m.search(child, depth-1, collector); value > best {
			best = value
		}
	}
	return best
}
