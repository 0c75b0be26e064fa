package searcher

import (
	"sort"

	"capchess/game"
)

// candidateTurns enumerates affordable, legal turns for the side to move:
// every non-empty prefix of every affordable action chain up to the turn
// length cap. At each step the actions are ranked by greedy gain and cut to
// the branch limit. Generation order is deterministic.
func (m *Minimax) candidateTurns(g *game.GameState, collector *collector) []game.Turn {
	var out []game.Turn
	m.extendTurn(g, nil, &out, collector)
	return out
}

func (m *Minimax) extendTurn(g *game.GameState, prefix game.Turn, out *[]game.Turn, collector *collector) {
	for _, mv := range m.rankedActions(g) {
		child := g.Clone()
		if child.Apply(mv) != nil {
			continue
		}
		turn := make(game.Turn, len(prefix)+1)
		copy(turn, prefix)
		turn[len(prefix)] = mv
		*out = append(*out, turn)
		collector.addTurn()
		if len(turn) < m.turnLength {
			m.extendTurn(child, turn, out, collector)
		}
	}
}

// rankedActions orders the affordable actions by how much they immediately
// improve the mover's material plus territory income, best first, and keeps
// at most branchLimit of them. The sort is stable over generation order so
// equal gains keep a fixed ranking.
func (m *Minimax) rankedActions(g *game.GameState) []game.Move {
	moves := g.AffordableMoves()
	if len(moves) == 0 {
		return nil
	}
	side := g.WhoseTurn()
	gains := make([]float64, len(moves))
	for i, mv := range moves {
		gains[i] = greedyGain(g, mv, side)
	}
	order := make([]int, len(moves))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return gains[order[a]] > gains[order[b]]
	})
	if len(order) > m.branchLimit {
		order = order[:m.branchLimit]
	}
	ranked := make([]game.Move, len(order))
	for i, idx := range order {
		ranked[i] = moves[idx]
	}
	return ranked
}

// greedyGain scores a single action by the change in captured material,
// territory income and price paid. It is a cheap ordering heuristic, not
// the search evaluation.
func greedyGain(g *game.GameState, mv game.Move, side game.Color) float64 {
	market := g.Market()
	gain := -float64(g.MoveCost(mv))

	switch mv.Kind {
	case game.Purchase:
		gain += float64(market.PurchasePrice(mv.Piece))
	default:
		if target := g.Board.PieceAt(mv.To); !target.Empty() && target.Owner != side {
			gain += float64(market.PurchasePrice(target.Kind))
		}
	}

	child := g.Clone()
	if child.Apply(mv) != nil {
		return gain
	}
	before := market.TerritoryIncome(&g.Board, side)
	after := market.TerritoryIncome(&child.Board, side)
	gain += 5 * float64(after-before)
	return gain
}
