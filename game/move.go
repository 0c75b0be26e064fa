package game

import "fmt"

// MoveKind discriminates the two priced action variants.
type MoveKind uint8

const (
	// Relocate moves a piece already on the board, capturing whatever it
	// lands on. Castling is a Relocate that slides the king two files.
	Relocate MoveKind = iota
	// Purchase creates a fresh piece on an empty home-row square.
	Purchase
)

// Move is the indivisible priced unit of play.
type Move struct {
	Kind MoveKind
	// From and To locate a relocation. Only To is meaningful for purchases.
	From, To Tile
	// Piece is the kind being bought. Only set for purchases.
	Piece PieceKind
	// Promotion is the kind a pawn promotes to on reaching the last rank,
	// NoPiece otherwise.
	Promotion PieceKind
}

// NewRelocate builds a plain relocation.
func NewRelocate(from, to Tile) Move {
	return Move{Kind: Relocate, From: from, To: to}
}

// NewPromotion builds a relocation that promotes the moved pawn.
func NewPromotion(from, to Tile, promo PieceKind) Move {
	return Move{Kind: Relocate, From: from, To: to, Promotion: promo}
}

// NewPurchase builds a purchase of the given kind onto a home-row square.
func NewPurchase(kind PieceKind, to Tile) Move {
	return Move{Kind: Purchase, To: to, Piece: kind}
}

func (m Move) String() string {
	switch m.Kind {
	case Purchase:
		return fmt.Sprintf("$%c%s", m.Piece.Letter(), m.To)
	default:
		if m.Promotion != NoPiece {
			return fmt.Sprintf("%s%s%c", m.From, m.To, m.Promotion.Letter())
		}
		return fmt.Sprintf("%s%s", m.From, m.To)
	}
}

// Turn is an ordered, non-empty sequence of moves played by one side within
// a single turn. Pricing escalates along the sequence.
type Turn []Move

func (t Turn) String() string {
	s := ""
	for i, m := range t {
		if i > 0 {
			s += " "
		}
		s += m.String()
	}
	return s
}
