// Package config loads runtime tuning for the engine from a JSON file in
// the user's configuration directory, falling back to defaults when no file
// exists. Every market price, the search budget and the opening balances
// are tunable without recompiling.
package config

import (
	"fmt"
	"os"

	"capchess/game"

	"github.com/adrg/xdg"
	"github.com/bytedance/sonic"
)

// configPath is the file looked up under the XDG config directories.
const configPath = "capchess/config.json"

// Market tunes pricing. All amounts are pennies.
type Market struct {
	PawnPrice   int `json:"pawn_price"`
	KnightPrice int `json:"knight_price"`
	BishopPrice int `json:"bishop_price"`
	RookPrice   int `json:"rook_price"`
	QueenPrice  int `json:"queen_price"`
	KingPrice   int `json:"king_price"`

	BaseMovePrice    int `json:"base_move_price"`
	EscalationFactor int `json:"escalation_factor"`
	CentralIncome    int `json:"central_income"`
	PeripheralIncome int `json:"peripheral_income"`

	// ControlPolicy selects the sector control rule: "majority" counts
	// occupying pieces, "value" weighs them by purchase price.
	ControlPolicy string `json:"control_policy"`
}

// Search tunes the turn-level minimax.
type Search struct {
	Depth       int `json:"depth"`
	Goroutines  int `json:"goroutines"`
	TurnLength  int `json:"turn_length"`
	BranchLimit int `json:"branch_limit"`
}

// Config is the full runtime configuration.
type Config struct {
	Market         Market `json:"market"`
	Search         Search `json:"search"`
	InitialBalance int    `json:"initial_balance"`
	MaxTurns       int    `json:"max_turns"`
}

// Default returns the standard configuration.
func Default() Config {
	return Config{
		Market: Market{
			PawnPrice:        game.DefaultPawnPrice,
			KnightPrice:      game.DefaultKnightPrice,
			BishopPrice:      game.DefaultBishopPrice,
			RookPrice:        game.DefaultRookPrice,
			QueenPrice:       game.DefaultQueenPrice,
			KingPrice:        game.DefaultKingPrice,
			BaseMovePrice:    game.DefaultBaseMovePrice,
			EscalationFactor: game.DefaultEscalationFactor,
			CentralIncome:    game.DefaultCentralIncome,
			PeripheralIncome: game.DefaultPeripheralIncome,
			ControlPolicy:    "majority",
		},
		Search: Search{
			Depth:       4,
			Goroutines:  1,
			TurnLength:  3,
			BranchLimit: 8,
		},
		InitialBalance: 100,
		MaxTurns:       500,
	}
}

// Parse overlays JSON onto the defaults.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := sonic.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

// Load reads the user's config file if present, otherwise returns defaults.
func Load() (Config, error) {
	path, err := xdg.SearchConfigFile(configPath)
	if err != nil {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}
	return Parse(data)
}

// GameMarket maps the configuration onto the game's pricing policy.
func (c Config) GameMarket() game.Market {
	m := game.Market{
		PawnPrice:        c.Market.PawnPrice,
		KnightPrice:      c.Market.KnightPrice,
		BishopPrice:      c.Market.BishopPrice,
		RookPrice:        c.Market.RookPrice,
		QueenPrice:       c.Market.QueenPrice,
		KingPrice:        c.Market.KingPrice,
		BaseMovePrice:    c.Market.BaseMovePrice,
		EscalationFactor: c.Market.EscalationFactor,
		CentralIncome:    c.Market.CentralIncome,
		PeripheralIncome: c.Market.PeripheralIncome,
	}
	switch c.Market.ControlPolicy {
	case "value":
		m.Policy = game.PieceValue{Price: m.PurchasePrice}
	default:
		m.Policy = game.MajorityCount{}
	}
	return m
}
