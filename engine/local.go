package engine

import (
	"errors"

	"capchess/game"
	"capchess/searcher"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Local pits two agents against each other on a single in-process state.
type Local struct {
	State    *game.GameState
	Agents   [2]searcher.Agent
	MaxTurns int

	id     uuid.UUID
	logger zerolog.Logger
}

// NewLocal builds a local engine over the given state. The white agent
// moves first.
func NewLocal(state *game.GameState, white, black searcher.Agent, maxTurns int) *Local {
	if maxTurns <= 0 {
		maxTurns = MaxTurns
	}
	id := uuid.New()
	return &Local{
		State:    state,
		Agents:   [2]searcher.Agent{white, black},
		MaxTurns: maxTurns,
		id:       id,
		logger:   log.With().Str("game", id.String()).Logger(),
	}
}

// ID returns the engine's game identifier.
func (e *Local) ID() uuid.UUID { return e.id }

// Run executes the game loop until there is an outcome or the turn cap is
// reached. The second return is false when the cap cut the game short.
func (e *Local) Run() (game.Outcome, bool) {
	e.logger.Info().Msgf("%s is starting", e.State.WhoseTurn())

	for turnCount := 1; turnCount <= e.MaxTurns; turnCount++ {
		if outcome, over := e.State.Result(); over {
			e.logger.Info().Msgf("game over: %s", outcome)
			return outcome, true
		}

		side := e.State.WhoseTurn()
		agent := e.Agents[side]

		turn, metrics, err := agent.FindTurn(e.State)
		if errors.Is(err, searcher.ErrNoLegalTurns) {
			// The agent has nothing it can pay for; the pass settles
			// income and lets the termination check rule on the opponent.
			e.logger.Info().Msgf("%s passes", side)
			if err := e.State.EndTurn(); err != nil {
				e.logger.Error().Err(err).Msg("pass rejected")
				break
			}
			continue
		}
		if err != nil {
			e.logger.Error().Err(err).Msgf("%s agent failed", side)
			break
		}

		if err := e.State.ApplyTurn(turn); err != nil {
			e.logger.Error().Err(err).Msgf("%s submitted a bad turn %s", side, turn)
			break
		}

		e.logger.Info().
			Int("turn", turnCount).
			Str("side", side.String()).
			Str("moves", turn.String()).
			Int("balance", e.State.Bank(side).Balance()).
			Dur("thinking", metrics.Duration).
			Msg("turn played")
	}

	if outcome, over := e.State.Result(); over {
		return outcome, true
	}
	e.logger.Info().Msgf("stopped after %d turns with no outcome", e.MaxTurns)
	return game.Outcome{}, false
}
