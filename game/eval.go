package game

// Evaluator scores a state from the given color's point of view. Positive
// favors that color.
type Evaluator func(g *GameState, pov Color) float64

// WinScore is the sentinel magnitude for terminal states. It dominates any
// combination of material, income and cash.
const WinScore = 1e9

// Heuristic weights. Material and cash are both denominated in pennies;
// income is an ongoing stream, so it is worth several turns of itself, and
// mobility is a small nudge per available relocation.
const (
	materialWeight = 1.0
	incomeWeight   = 5.0
	balanceWeight  = 1.0
	mobilityWeight = 2.0
)

// EvaluateCapitalist is the greedy-capitalist heuristic: material valued at
// purchase price, territory income as a discounted ongoing stream, cash on
// hand, and a little mobility. Terminal states collapse to the sentinel.
func EvaluateCapitalist(g *GameState, pov Color) float64 {
	if out, over := g.Result(); over {
		if out.Winner == pov {
			return WinScore
		}
		return -WinScore
	}

	enemy := pov.Enemy()
	score := 0.0
	for t := Tile(0); t < NumTiles; t++ {
		p := g.Board.PieceAt(t)
		if p.Empty() {
			continue
		}
		value := float64(g.market.PurchasePrice(p.Kind)) * materialWeight
		if p.Owner == pov {
			score += value
		} else {
			score -= value
		}
	}

	score += incomeWeight * float64(g.market.TerritoryIncome(&g.Board, pov)-g.market.TerritoryIncome(&g.Board, enemy))
	score += balanceWeight * float64(g.Bank(pov).Balance()-g.Bank(enemy).Balance())
	score += mobilityWeight * float64(len(g.Board.LegalRelocations(pov))-len(g.Board.LegalRelocations(enemy)))
	return score
}
