// Package notation encodes and decodes the textual move format at the
// boundary of the core: "e2e4" relocations with an optional promotion
// letter, "$Ne1" purchases, castling as O-O / O-O-O, and the piece-letter
// and bare-square shorthands resolved against the current position. A turn
// is a space-separated sequence of such tokens. Parse failures never reach
// the legality or economy logic.
package notation

import (
	"errors"
	"fmt"
	"strings"

	"capchess/game"
)

var ErrInvalidNotation = errors.New("invalid notation")

// FormatMove renders a move in boundary notation.
func FormatMove(m game.Move) string { return m.String() }

// FormatTurn renders a turn as space-separated move tokens.
func FormatTurn(t game.Turn) string { return t.String() }

// ParseTurn decodes a space-separated sequence of move tokens against the
// given state. Shorthand tokens are resolved in submission order, each
// against the position left by the previous token.
func ParseTurn(s string, g *game.GameState) (game.Turn, error) {
	words := strings.Fields(s)
	if len(words) == 0 {
		return nil, fmt.Errorf("%w: empty turn", ErrInvalidNotation)
	}
	scratch := g.Clone()
	var turn game.Turn
	for _, word := range words {
		m, err := ParseMove(word, scratch)
		if err != nil {
			return nil, err
		}
		turn = append(turn, m)
		// Resolution of later shorthands needs the board after this move;
		// an unaffordable or illegal token surfaces when the turn is
		// applied for real.
		_ = scratch.Apply(m)
	}
	return turn, nil
}

// ParseMove decodes one move token against the given state.
func ParseMove(word string, g *game.GameState) (game.Move, error) {
	switch word {
	case "O-O":
		return castlingMove(g, 6)
	case "O-O-O":
		return castlingMove(g, 2)
	}

	if strings.HasPrefix(word, "$") {
		return parsePurchase(word)
	}

	switch len(word) {
	case 2:
		// Bare square: a pawn move to that square.
		return resolveShorthand(g, game.Pawn, word)
	case 3:
		// Piece letter plus square, e.g. "Ne4".
		kind, ok := game.KindFromLetter(word[0])
		if !ok {
			return game.Move{}, fmt.Errorf("%w: %q", ErrInvalidNotation, word)
		}
		return resolveShorthand(g, kind, word[1:])
	case 4, 5:
		return parseFromTo(word)
	}
	return game.Move{}, fmt.Errorf("%w: %q", ErrInvalidNotation, word)
}

// castlingMove maps O-O / O-O-O onto the king's two-file slide for the side
// to move.
func castlingMove(g *game.GameState, targetFile int) (game.Move, error) {
	rank := 0
	if g.WhoseTurn() == game.Black {
		rank = 7
	}
	from, err := game.Square(4, rank)
	if err != nil {
		return game.Move{}, err
	}
	to, err := game.Square(targetFile, rank)
	if err != nil {
		return game.Move{}, err
	}
	return game.NewRelocate(from, to), nil
}

// resolveShorthand finds the piece of the given kind that can legally move
// to the square, taking the first match in generation order.
func resolveShorthand(g *game.GameState, kind game.PieceKind, dest string) (game.Move, error) {
	to, err := game.ParseTile(dest)
	if err != nil {
		return game.Move{}, fmt.Errorf("%w: %q", ErrInvalidNotation, dest)
	}
	for _, m := range g.Board.LegalRelocations(g.WhoseTurn()) {
		if m.To != to || g.Board.PieceAt(m.From).Kind != kind {
			continue
		}
		// Shorthand cannot name a promotion piece; default to queen.
		if m.Promotion != game.NoPiece && m.Promotion != game.Queen {
			continue
		}
		return m, nil
	}
	return game.Move{}, fmt.Errorf("%w: no %s can reach %s", ErrInvalidNotation, kind, dest)
}

func parseFromTo(word string) (game.Move, error) {
	from, err := game.ParseTile(word[:2])
	if err != nil {
		return game.Move{}, fmt.Errorf("%w: %q", ErrInvalidNotation, word)
	}
	to, err := game.ParseTile(word[2:4])
	if err != nil {
		return game.Move{}, fmt.Errorf("%w: %q", ErrInvalidNotation, word)
	}
	if len(word) == 5 {
		promo, ok := game.KindFromLetter(word[4])
		if !ok || promo == game.Pawn || promo == game.King {
			return game.Move{}, fmt.Errorf("%w: bad promotion in %q", ErrInvalidNotation, word)
		}
		return game.NewPromotion(from, to, promo), nil
	}
	return game.NewRelocate(from, to), nil
}

func parsePurchase(word string) (game.Move, error) {
	if len(word) != 4 {
		return game.Move{}, fmt.Errorf("%w: %q", ErrInvalidNotation, word)
	}
	kind, ok := game.KindFromLetter(word[1])
	if !ok {
		return game.Move{}, fmt.Errorf("%w: %q", ErrInvalidNotation, word)
	}
	to, err := game.ParseTile(word[2:])
	if err != nil {
		return game.Move{}, fmt.Errorf("%w: %q", ErrInvalidNotation, word)
	}
	return game.NewPurchase(kind, to), nil
}
