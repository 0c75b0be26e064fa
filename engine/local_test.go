package engine

import (
	"os"
	"testing"

	"capchess/game"
	"capchess/searcher"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	zerolog.SetGlobalLevel(zerolog.Disabled)
	os.Exit(m.Run())
}

// passingAgent never finds anything affordable.
type passingAgent struct{}

func (passingAgent) FindTurn(*game.GameState) (game.Turn, searcher.Metrics, error) {
	return nil, searcher.Metrics{}, searcher.ErrNoLegalTurns
}

func TestNewLocalDefaults(t *testing.T) {
	state := game.NewGameState(game.DefaultMarket(), 100)
	e := NewLocal(state, passingAgent{}, passingAgent{}, 0)

	assert.Equal(t, MaxTurns, e.MaxTurns)
	assert.NotEqual(t, e.ID(), NewLocal(state, passingAgent{}, passingAgent{}, 0).ID())
}

func TestRunStopsAtTurnCap(t *testing.T) {
	state := game.NewGameState(game.DefaultMarket(), 100)
	e := NewLocal(state, passingAgent{}, passingAgent{}, 6)

	outcome, finished := e.Run()
	assert.False(t, finished, "two passing agents never produce an outcome")
	assert.Equal(t, game.Outcome{}, outcome)

	// Passing still settles income each turn.
	assert.Greater(t, state.Bank(game.White).Balance(), 100)
	assert.Greater(t, state.Bank(game.Black).Balance(), 100)
}

func TestRunReturnsExistingOutcome(t *testing.T) {
	state := game.NewEmptyGameState(game.DefaultMarket(), 100)
	king, err := game.ParseTile("h8")
	require.NoError(t, err)
	state.PutPiece(king, game.Piece{Kind: game.King, Owner: game.Black})
	state.UpdateOutcome()

	e := NewLocal(state, passingAgent{}, passingAgent{}, 10)
	outcome, finished := e.Run()
	require.True(t, finished)
	assert.Equal(t, game.Black, outcome.Winner)
	assert.Equal(t, game.NoPieces, outcome.Reason)
}

func TestRandomAgentsPlayOut(t *testing.T) {
	state := game.NewGameState(game.DefaultMarket(), 100)
	e := NewLocal(state, searcher.NewRandomAgent(1), searcher.NewRandomAgent(2), 40)

	outcome, finished := e.Run()

	assert.GreaterOrEqual(t, state.Bank(game.White).Balance(), 0)
	assert.GreaterOrEqual(t, state.Bank(game.Black).Balance(), 0)
	if finished {
		assert.Contains(t, []game.Reason{game.Checkmate, game.NoPieces, game.Bankrupt}, outcome.Reason)
	}
}
