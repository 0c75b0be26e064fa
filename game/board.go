package game

import (
	"fmt"
	"strings"
)

// CastlingRights tracks which castling moves are still available. Rights are
// only ever revoked; purchased kings and rooks are fresh pieces and never
// restore them.
type CastlingRights struct {
	WhiteKingside  bool
	WhiteQueenside bool
	BlackKingside  bool
	BlackQueenside bool
}

func allCastlingRights() CastlingRights {
	return CastlingRights{true, true, true, true}
}

// Board is the 8x8 grid plus the auxiliary legality state needed for
// en passant and castling. It is a plain value: copying the struct clones
// the position.
type Board struct {
	squares      [NumTiles]Piece
	enPassant    Tile
	hasEnPassant bool
	castling     CastlingRights
}

// NewBoard returns the standard starting position.
func NewBoard() Board {
	b := Board{castling: allCastlingRights()}
	back := [...]PieceKind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for file := 0; file < 8; file++ {
		b.squares[tileAt(file, 0)] = Piece{back[file], White}
		b.squares[tileAt(file, 1)] = Piece{Pawn, White}
		b.squares[tileAt(file, 6)] = Piece{Pawn, Black}
		b.squares[tileAt(file, 7)] = Piece{back[file], Black}
	}
	return b
}

// PieceAt returns the piece on the tile, which may be empty.
func (b *Board) PieceAt(t Tile) Piece { return b.squares[t] }

// Occupied reports whether a piece sits on the tile.
func (b *Board) Occupied(t Tile) bool { return !b.squares[t].Empty() }

// PieceCount returns the number of pieces the color has on the board.
func (b *Board) PieceCount(c Color) int {
	n := 0
	for _, p := range b.squares {
		if !p.Empty() && p.Owner == c {
			n++
		}
	}
	return n
}

// KingTile locates the color's king. A color may have no king once it has
// been captured; that is a terminal condition, not an illegal state.
func (b *Board) KingTile(c Color) (Tile, bool) {
	for t := Tile(0); t < NumTiles; t++ {
		p := b.squares[t]
		if p.Kind == King && p.Owner == c {
			return t, true
		}
	}
	return 0, false
}

// Attacks returns every square attacked by the color's pieces, ignoring the
// attacker's own king safety.
func (b *Board) Attacks(c Color) TileSet {
	var set TileSet
	for t := Tile(0); t < NumTiles; t++ {
		p := b.squares[t]
		if !p.Empty() && p.Owner == c {
			set |= b.attacksFrom(t)
		}
	}
	return set
}

// InCheck reports whether the color's king is attacked. Without a king on
// the board check is no longer meaningful and this returns false.
func (b *Board) InCheck(c Color) bool {
	kt, ok := b.KingTile(c)
	if !ok {
		return false
	}
	return b.Attacks(c.Enemy()).Has(kt)
}

// ApplyRelocate validates and performs a relocation for the mover.
// A relocation landing on an enemy piece destroys it permanently.
func (b *Board) ApplyRelocate(m Move, mover Color) error {
	if err := b.checkRelocate(m, mover); err != nil {
		return err
	}
	b.doRelocate(m, mover)
	return nil
}

// ApplyPurchase validates and performs a purchase for the buyer, placing a
// fresh piece on an empty square within the buyer's home rows.
func (b *Board) ApplyPurchase(m Move, buyer Color) error {
	if err := b.checkPurchase(m, buyer); err != nil {
		return err
	}
	b.doPurchase(m, buyer)
	return nil
}

// checkRelocate verifies a relocation without mutating the board.
func (b *Board) checkRelocate(m Move, mover Color) error {
	p := b.squares[m.From]
	if p.Empty() {
		return fmt.Errorf("%w: %s", ErrEmptySquare, m.From)
	}
	if p.Owner != mover {
		return fmt.Errorf("%w: %s is not %s's piece", ErrIllegalMove, m.From, mover)
	}
	if !b.canReach(m.From, m.To) {
		return fmt.Errorf("%w: %s cannot reach %s", ErrIllegalMove, p.Kind, m.To)
	}
	promoting := p.Kind == Pawn && m.To.Rank() == promotionRank(mover)
	if promoting && m.Promotion == NoPiece {
		return fmt.Errorf("%w: promotion required on %s", ErrIllegalMove, m.To)
	}
	if !promoting && m.Promotion != NoPiece {
		return fmt.Errorf("%w: %s is not a promotion square", ErrIllegalMove, m.To)
	}
	if promoting {
		valid := false
		for _, k := range Promotions {
			if k == m.Promotion {
				valid = true
			}
		}
		if !valid {
			return fmt.Errorf("%w: cannot promote to %s", ErrIllegalMove, m.Promotion)
		}
	}
	if b.leavesKingInCheck(m, mover) {
		return fmt.Errorf("%w: %s", ErrSelfCheck, m)
	}
	return nil
}

// checkPurchase verifies purchase preconditions without mutating the board.
// Affordability and the in-check ban are turn-engine concerns, not board
// concerns.
func (b *Board) checkPurchase(m Move, buyer Color) error {
	if m.Piece == NoPiece {
		return fmt.Errorf("%w: no piece kind", ErrIllegalMove)
	}
	if b.Occupied(m.To) {
		return fmt.Errorf("%w: %s", ErrOccupiedSquare, m.To)
	}
	if !m.To.Sector().HomeFor(buyer) {
		return fmt.Errorf("%w: %s for %s", ErrWrongHomeRow, m.To, buyer)
	}
	return nil
}

// doRelocate mutates the board for an already-validated relocation.
func (b *Board) doRelocate(m Move, mover Color) {
	p := b.squares[m.From]

	// En passant: a pawn landing diagonally on the vacant target removes
	// the enemy pawn that just double-stepped past it.
	if p.Kind == Pawn && b.hasEnPassant && m.To == b.enPassant && m.From.File() != m.To.File() {
		victim := tileAt(m.To.File(), m.From.Rank())
		if b.squares[victim].Kind == Pawn && b.squares[victim].Owner != mover {
			b.squares[victim] = Piece{}
		}
	}

	// Castling: the king slides two files and the rook hops over.
	if p.Kind == King && abs(m.To.File()-m.From.File()) == 2 {
		rank := m.From.Rank()
		if m.To.File() > m.From.File() {
			b.squares[tileAt(5, rank)] = b.squares[tileAt(7, rank)]
			b.squares[tileAt(7, rank)] = Piece{}
		} else {
			b.squares[tileAt(3, rank)] = b.squares[tileAt(0, rank)]
			b.squares[tileAt(0, rank)] = Piece{}
		}
	}

	b.revokeCastlingRights(m.From)
	b.revokeCastlingRights(m.To)

	if m.Promotion != NoPiece {
		p.Kind = m.Promotion
	}
	b.squares[m.To] = p
	b.squares[m.From] = Piece{}

	// A double pawn push opens en passant for exactly one reply.
	b.hasEnPassant = false
	if p.Kind == Pawn && abs(m.To.Rank()-m.From.Rank()) == 2 {
		b.enPassant = tileAt(m.From.File(), (m.From.Rank()+m.To.Rank())/2)
		b.hasEnPassant = true
	}
}

// doPurchase mutates the board for an already-validated purchase.
func (b *Board) doPurchase(m Move, buyer Color) {
	b.squares[m.To] = Piece{m.Piece, buyer}
	b.hasEnPassant = false
}

// revokeCastlingRights drops rights tied to the square when its original
// occupant moves or is captured.
func (b *Board) revokeCastlingRights(t Tile) {
	switch t {
	case tileAt(4, 0):
		b.castling.WhiteKingside = false
		b.castling.WhiteQueenside = false
	case tileAt(4, 7):
		b.castling.BlackKingside = false
		b.castling.BlackQueenside = false
	case tileAt(7, 0):
		b.castling.WhiteKingside = false
	case tileAt(0, 0):
		b.castling.WhiteQueenside = false
	case tileAt(7, 7):
		b.castling.BlackKingside = false
	case tileAt(0, 7):
		b.castling.BlackQueenside = false
	}
}

// leavesKingInCheck plays the relocation on a scratch copy and reports
// whether the mover's own king ends up attacked.
func (b *Board) leavesKingInCheck(m Move, mover Color) bool {
	scratch := *b
	scratch.doRelocate(m, mover)
	return scratch.InCheck(mover)
}

func promotionRank(c Color) int {
	if c == White {
		return 7
	}
	return 0
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// String renders the board with rank and file labels, white at the bottom.
func (b *Board) String() string {
	var sb strings.Builder
	for rank := 7; rank >= 0; rank-- {
		fmt.Fprintf(&sb, "%d ", rank+1)
		for file := 0; file < 8; file++ {
			sb.WriteRune(b.squares[tileAt(file, rank)].Rune())
			sb.WriteByte(' ')
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("  a b c d e f g h\n")
	return sb.String()
}
