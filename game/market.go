package game

import "fmt"

// Default pricing, in pennies. A doubloon is 10 pennies.
const (
	DefaultPawnPrice   = 20
	DefaultKnightPrice = 60
	DefaultBishopPrice = 63
	DefaultRookPrice   = 100
	DefaultQueenPrice  = 180
	DefaultKingPrice   = 2000

	DefaultBaseMovePrice    = 10
	DefaultEscalationFactor = 2
	DefaultCentralIncome    = 20
	DefaultPeripheralIncome = 10
)

// DefaultPurchasePrice returns the default purchase price of a kind.
func DefaultPurchasePrice(k PieceKind) int {
	switch k {
	case Pawn:
		return DefaultPawnPrice
	case Knight:
		return DefaultKnightPrice
	case Bishop:
		return DefaultBishopPrice
	case Rook:
		return DefaultRookPrice
	case Queen:
		return DefaultQueenPrice
	case King:
		return DefaultKingPrice
	}
	return 0
}

// Market is the stateless pricing policy of a game. It stores no value
// itself; it reads boards and per-turn move counters to compute prices and
// territory income.
type Market struct {
	PawnPrice   int
	KnightPrice int
	BishopPrice int
	RookPrice   int
	QueenPrice  int
	KingPrice   int

	// BaseMovePrice is the fee for the first move of a turn. Each further
	// move of the same turn multiplies it by EscalationFactor.
	BaseMovePrice    int
	EscalationFactor int

	CentralIncome    int
	PeripheralIncome int

	// Policy decides sector control. Defaults to MajorityCount.
	Policy ControlPolicy
}

// DefaultMarket returns the standard pricing configuration.
func DefaultMarket() Market {
	return Market{
		PawnPrice:        DefaultPawnPrice,
		KnightPrice:      DefaultKnightPrice,
		BishopPrice:      DefaultBishopPrice,
		RookPrice:        DefaultRookPrice,
		QueenPrice:       DefaultQueenPrice,
		KingPrice:        DefaultKingPrice,
		BaseMovePrice:    DefaultBaseMovePrice,
		EscalationFactor: DefaultEscalationFactor,
		CentralIncome:    DefaultCentralIncome,
		PeripheralIncome: DefaultPeripheralIncome,
		Policy:           MajorityCount{},
	}
}

// PurchasePrice returns the price of buying a fresh piece of the kind.
func (m Market) PurchasePrice(k PieceKind) int {
	switch k {
	case Pawn:
		return m.PawnPrice
	case Knight:
		return m.KnightPrice
	case Bishop:
		return m.BishopPrice
	case Rook:
		return m.RookPrice
	case Queen:
		return m.QueenPrice
	case King:
		return m.KingPrice
	}
	return 0
}

// MovePrice returns the base fee for the next move of a turn given how many
// moves the side has already made this turn: base, then base*factor,
// base*factor^2 and so on.
func (m Market) MovePrice(movesMade int) int {
	price := m.BaseMovePrice
	for i := 0; i < movesMade; i++ {
		price *= m.EscalationFactor
	}
	return price
}

// MoveCost prices a single action: the escalating base fee, plus the
// purchase price when the action buys a piece.
func (m Market) MoveCost(mv Move, movesMade int) int {
	cost := m.MovePrice(movesMade)
	if mv.Kind == Purchase {
		cost += m.PurchasePrice(mv.Piece)
	}
	return cost
}

// SectorIncome returns the per-turn income of a controlled sector.
func (m Market) SectorIncome(s Sector) int {
	if s.Central() {
		return m.CentralIncome
	}
	return m.PeripheralIncome
}

// SectorController returns the color controlling the sector under the
// market's control policy, if any.
func (m Market) SectorController(b *Board, s Sector) (Color, bool) {
	policy := m.Policy
	if policy == nil {
		policy = MajorityCount{}
	}
	return policy.Controller(b, s)
}

// TerritoryIncome sums the income of every sector the color controls.
func (m Market) TerritoryIncome(b *Board, c Color) int {
	income := 0
	for s := Sector(0); s < NumSectors; s++ {
		if owner, ok := m.SectorController(b, s); ok && owner == c {
			income += m.SectorIncome(s)
		}
	}
	return income
}

// FormatPennies renders an amount for display, e.g. "¢120".
func FormatPennies(amount int) string {
	if amount < 0 {
		return fmt.Sprintf("-¢%d", -amount)
	}
	return fmt.Sprintf("¢%d", amount)
}
