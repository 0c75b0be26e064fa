package game

// ControlPolicy decides which color, if any, controls a sector. The income
// rules do not pin down the control criterion, so it is swappable without
// touching the market's pricing logic.
type ControlPolicy interface {
	// Controller returns the controlling color, or ok=false when the
	// sector is empty or contested evenly.
	Controller(b *Board, s Sector) (Color, bool)
}

// MajorityCount awards a sector to the color with strictly more pieces
// occupying its cells. Ties, including empty sectors, are uncontrolled.
// This is the default policy.
type MajorityCount struct{}

func (MajorityCount) Controller(b *Board, s Sector) (Color, bool) {
	white, black := 0, 0
	for _, t := range s.Tiles() {
		p := b.PieceAt(t)
		if p.Empty() {
			continue
		}
		if p.Owner == White {
			white++
		} else {
			black++
		}
	}
	return pickController(white, black)
}

// PieceValue awards a sector to the color whose occupying pieces carry the
// strictly greater total purchase value, so a lone queen outweighs two
// pawns. Price defaults to the standard purchase table.
type PieceValue struct {
	Price func(PieceKind) int
}

func (p PieceValue) Controller(b *Board, s Sector) (Color, bool) {
	price := p.Price
	if price == nil {
		price = DefaultPurchasePrice
	}
	white, black := 0, 0
	for _, t := range s.Tiles() {
		piece := b.PieceAt(t)
		if piece.Empty() {
			continue
		}
		if piece.Owner == White {
			white += price(piece.Kind)
		} else {
			black += price(piece.Kind)
		}
	}
	return pickController(white, black)
}

func pickController(white, black int) (Color, bool) {
	switch {
	case white > black:
		return White, true
	case black > white:
		return Black, true
	default:
		return White, false
	}
}
