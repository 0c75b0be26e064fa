package game

// PieceKind is the type of a chess piece. The zero value NoPiece marks an
// empty square.
type PieceKind uint8

const (
	NoPiece PieceKind = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

// Kinds lists every purchasable piece kind.
var Kinds = [...]PieceKind{Pawn, Knight, Bishop, Rook, Queen, King}

// Promotions lists the kinds a pawn may promote to.
var Promotions = [...]PieceKind{Knight, Bishop, Rook, Queen}

// Letter returns the algebraic letter for the kind.
func (k PieceKind) Letter() byte {
	switch k {
	case Pawn:
		return 'P'
	case Knight:
		return 'N'
	case Bishop:
		return 'B'
	case Rook:
		return 'R'
	case Queen:
		return 'Q'
	case King:
		return 'K'
	}
	return '?'
}

// KindFromLetter maps an algebraic letter back to a piece kind.
func KindFromLetter(b byte) (PieceKind, bool) {
	switch b {
	case 'P':
		return Pawn, true
	case 'N':
		return Knight, true
	case 'B':
		return Bishop, true
	case 'R':
		return Rook, true
	case 'Q':
		return Queen, true
	case 'K':
		return King, true
	}
	return NoPiece, false
}

func (k PieceKind) String() string {
	switch k {
	case Pawn:
		return "pawn"
	case Knight:
		return "knight"
	case Bishop:
		return "bishop"
	case Rook:
		return "rook"
	case Queen:
		return "queen"
	case King:
		return "king"
	}
	return "none"
}

// Piece is a piece kind owned by a color. Pieces live on exactly one board
// square, are destroyed on capture and created on purchase.
type Piece struct {
	Kind  PieceKind
	Owner Color
}

// Empty reports whether this is the empty-square sentinel.
func (p Piece) Empty() bool { return p.Kind == NoPiece }

var (
	whiteGlyphs = [...]rune{'♙', '♘', '♗', '♖', '♕', '♔'}
	blackGlyphs = [...]rune{'♟', '♞', '♝', '♜', '♛', '♚'}
)

// Rune returns the unicode glyph for the piece, or '.' for an empty square.
func (p Piece) Rune() rune {
	if p.Empty() {
		return '.'
	}
	if p.Owner == White {
		return whiteGlyphs[p.Kind-Pawn]
	}
	return blackGlyphs[p.Kind-Pawn]
}
