package config

import (
	"testing"

	"capchess/game"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, 20, cfg.Market.PawnPrice)
	assert.Equal(t, 2000, cfg.Market.KingPrice)
	assert.Equal(t, 10, cfg.Market.BaseMovePrice)
	assert.Equal(t, 2, cfg.Market.EscalationFactor)
	assert.Equal(t, "majority", cfg.Market.ControlPolicy)
	assert.Equal(t, 4, cfg.Search.Depth)
	assert.Equal(t, 100, cfg.InitialBalance)
	assert.Equal(t, 500, cfg.MaxTurns)
}

func TestParseOverlaysDefaults(t *testing.T) {
	cfg, err := Parse([]byte(`{
		"market": {"queen_price": 300, "control_policy": "value"},
		"search": {"depth": 2},
		"initial_balance": 250
	}`))
	require.NoError(t, err)

	assert.Equal(t, 300, cfg.Market.QueenPrice)
	assert.Equal(t, "value", cfg.Market.ControlPolicy)
	assert.Equal(t, 2, cfg.Search.Depth)
	assert.Equal(t, 250, cfg.InitialBalance)

	// Untouched fields keep their defaults.
	assert.Equal(t, 20, cfg.Market.PawnPrice)
	assert.Equal(t, 3, cfg.Search.TurnLength)
	assert.Equal(t, 500, cfg.MaxTurns)
}

func TestParseRejectsMalformedJSON(t *testing.T) {
	_, err := Parse([]byte(`{"market":`))
	assert.Error(t, err)
}

func TestGameMarket(t *testing.T) {
	cfg := Default()
	cfg.Market.QueenPrice = 300

	m := cfg.GameMarket()
	assert.Equal(t, 300, m.PurchasePrice(game.Queen))
	assert.Equal(t, 20, m.PurchasePrice(game.Pawn))
	assert.IsType(t, game.MajorityCount{}, m.Policy)

	cfg.Market.ControlPolicy = "value"
	assert.IsType(t, game.PieceValue{}, cfg.GameMarket().Policy)
}
