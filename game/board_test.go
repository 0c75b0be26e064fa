package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tile(t *testing.T, s string) Tile {
	t.Helper()
	tl, err := ParseTile(s)
	require.NoError(t, err)
	return tl
}

func sparseBoard(t *testing.T, pieces map[string]Piece) Board {
	t.Helper()
	b := Board{}
	for s, p := range pieces {
		b.squares[tile(t, s)] = p
	}
	return b
}

func targets(moves []Move) map[Tile]bool {
	set := map[Tile]bool{}
	for _, m := range moves {
		set[m.To] = true
	}
	return set
}

func TestSquare(t *testing.T) {
	_, err := Square(8, 0)
	assert.ErrorIs(t, err, ErrIllegalSquare)
	_, err = Square(0, -1)
	assert.ErrorIs(t, err, ErrIllegalSquare)

	sq, err := Square(4, 3)
	require.NoError(t, err)
	assert.Equal(t, "e4", sq.String())
}

func TestNewBoard(t *testing.T) {
	b := NewBoard()

	assert.Equal(t, 16, b.PieceCount(White))
	assert.Equal(t, 16, b.PieceCount(Black))
	assert.Equal(t, Piece{King, White}, b.PieceAt(tile(t, "e1")))
	assert.Equal(t, Piece{Queen, Black}, b.PieceAt(tile(t, "d8")))
	assert.False(t, b.InCheck(White))
	assert.False(t, b.InCheck(Black))
}

func TestPawnMoves(t *testing.T) {
	t.Run("double push from start rank", func(t *testing.T) {
		b := NewBoard()
		got := targets(b.PieceMoves(tile(t, "e2")))
		assert.Len(t, got, 2)
		assert.True(t, got[tile(t, "e3")])
		assert.True(t, got[tile(t, "e4")])
	})

	t.Run("blocked pawn has no moves", func(t *testing.T) {
		b := sparseBoard(t, map[string]Piece{
			"e2": {Pawn, White},
			"e3": {Knight, Black},
		})
		assert.Empty(t, b.PieceMoves(tile(t, "e2")))
	})

	t.Run("diagonal captures only onto enemies", func(t *testing.T) {
		b := sparseBoard(t, map[string]Piece{
			"e4": {Pawn, White},
			"d5": {Pawn, Black},
			"f5": {Pawn, White},
		})
		got := targets(b.PieceMoves(tile(t, "e4")))
		assert.True(t, got[tile(t, "d5")])
		assert.True(t, got[tile(t, "e5")])
		assert.False(t, got[tile(t, "f5")])
	})
}

func TestKnightAndSlidingMoves(t *testing.T) {
	t.Run("knight in the open", func(t *testing.T) {
		b := sparseBoard(t, map[string]Piece{"d4": {Knight, White}})
		assert.Len(t, b.PieceMoves(tile(t, "d4")), 8)
	})

	t.Run("rook stops at blockers", func(t *testing.T) {
		b := sparseBoard(t, map[string]Piece{
			"a1": {Rook, White},
			"a3": {Pawn, White},
			"c1": {Pawn, Black},
		})
		got := targets(b.PieceMoves(tile(t, "a1")))
		assert.True(t, got[tile(t, "a2")])
		assert.False(t, got[tile(t, "a3")], "own piece blocks")
		assert.True(t, got[tile(t, "b1")])
		assert.True(t, got[tile(t, "c1")], "enemy piece is captured")
		assert.False(t, got[tile(t, "d1")], "no sliding past a capture")
	})
}

func TestSelfCheckFilter(t *testing.T) {
	b := sparseBoard(t, map[string]Piece{
		"e1": {King, White},
		"e4": {Rook, White},
		"e8": {Rook, Black},
	})

	for _, m := range b.PieceMoves(tile(t, "e4")) {
		assert.Equal(t, 4, m.To.File(), "pinned rook may only move on the e-file, got %s", m)
	}
	got := targets(b.PieceMoves(tile(t, "e4")))
	assert.True(t, got[tile(t, "e8")], "capturing the pinning rook is legal")
}

func TestCheckDetection(t *testing.T) {
	b := sparseBoard(t, map[string]Piece{
		"e8": {King, Black},
		"e1": {Rook, White},
	})
	assert.True(t, b.InCheck(Black))
	assert.False(t, b.InCheck(White), "a color without a king is never in check")
}

func TestEnPassant(t *testing.T) {
	b := sparseBoard(t, map[string]Piece{
		"e5": {Pawn, White},
		"d7": {Pawn, Black},
	})
	require.NoError(t, b.ApplyRelocate(NewRelocate(tile(t, "d7"), tile(t, "d5")), Black))

	got := targets(b.PieceMoves(tile(t, "e5")))
	require.True(t, got[tile(t, "d6")], "en passant capture should be available")

	require.NoError(t, b.ApplyRelocate(NewRelocate(tile(t, "e5"), tile(t, "d6")), White))
	assert.True(t, b.PieceAt(tile(t, "d5")).Empty(), "captured pawn is removed")
	assert.Equal(t, Piece{Pawn, White}, b.PieceAt(tile(t, "d6")))
}

func TestCastling(t *testing.T) {
	t.Run("kingside available", func(t *testing.T) {
		b := sparseBoard(t, map[string]Piece{
			"e1": {King, White},
			"h1": {Rook, White},
			"a1": {Rook, White},
		})
		b.castling = allCastlingRights()

		got := targets(b.PieceMoves(tile(t, "e1")))
		assert.True(t, got[tile(t, "g1")], "kingside castle")
		assert.True(t, got[tile(t, "c1")], "queenside castle")

		require.NoError(t, b.ApplyRelocate(NewRelocate(tile(t, "e1"), tile(t, "g1")), White))
		assert.Equal(t, Piece{King, White}, b.PieceAt(tile(t, "g1")))
		assert.Equal(t, Piece{Rook, White}, b.PieceAt(tile(t, "f1")))
		assert.True(t, b.PieceAt(tile(t, "h1")).Empty())
	})

	t.Run("blocked by attacked transit square", func(t *testing.T) {
		b := sparseBoard(t, map[string]Piece{
			"e1": {King, White},
			"h1": {Rook, White},
			"f8": {Rook, Black},
		})
		b.castling = allCastlingRights()

		got := targets(b.PieceMoves(tile(t, "e1")))
		assert.False(t, got[tile(t, "g1")], "king may not cross an attacked square")
	})

	t.Run("rights revoked after king moves", func(t *testing.T) {
		b := sparseBoard(t, map[string]Piece{
			"e1": {King, White},
			"h1": {Rook, White},
		})
		b.castling = allCastlingRights()
		require.NoError(t, b.ApplyRelocate(NewRelocate(tile(t, "e1"), tile(t, "e2")), White))
		require.NoError(t, b.ApplyRelocate(NewRelocate(tile(t, "e2"), tile(t, "e1")), White))

		got := targets(b.PieceMoves(tile(t, "e1")))
		assert.False(t, got[tile(t, "g1")])
	})
}

func TestPromotion(t *testing.T) {
	b := sparseBoard(t, map[string]Piece{"e7": {Pawn, White}})

	moves := b.PieceMoves(tile(t, "e7"))
	require.Len(t, moves, 4, "one promotion per kind")
	for _, m := range moves {
		assert.NotEqual(t, NoPiece, m.Promotion)
	}

	err := b.ApplyRelocate(NewRelocate(tile(t, "e7"), tile(t, "e8")), White)
	assert.ErrorIs(t, err, ErrIllegalMove, "promotion kind is required")

	require.NoError(t, b.ApplyRelocate(NewPromotion(tile(t, "e7"), tile(t, "e8"), Queen), White))
	assert.Equal(t, Piece{Queen, White}, b.PieceAt(tile(t, "e8")))
}

func TestApplyRelocateErrors(t *testing.T) {
	b := NewBoard()

	err := b.ApplyRelocate(NewRelocate(tile(t, "e4"), tile(t, "e5")), White)
	assert.ErrorIs(t, err, ErrEmptySquare)

	err = b.ApplyRelocate(NewRelocate(tile(t, "e7"), tile(t, "e5")), White)
	assert.ErrorIs(t, err, ErrIllegalMove, "cannot move the opponent's piece")

	err = b.ApplyRelocate(NewRelocate(tile(t, "e2"), tile(t, "e5")), White)
	assert.ErrorIs(t, err, ErrIllegalMove, "pawn cannot jump three ranks")
}

func TestApplyPurchase(t *testing.T) {
	b := Board{}

	require.NoError(t, b.ApplyPurchase(NewPurchase(Knight, tile(t, "e1")), White))
	assert.Equal(t, Piece{Knight, White}, b.PieceAt(tile(t, "e1")))

	err := b.ApplyPurchase(NewPurchase(Pawn, tile(t, "e1")), White)
	assert.ErrorIs(t, err, ErrOccupiedSquare)

	err = b.ApplyPurchase(NewPurchase(Pawn, tile(t, "d5")), White)
	assert.ErrorIs(t, err, ErrWrongHomeRow)

	err = b.ApplyPurchase(NewPurchase(Pawn, tile(t, "d7")), White)
	assert.ErrorIs(t, err, ErrWrongHomeRow, "black's home rows are not white's")

	require.NoError(t, b.ApplyPurchase(NewPurchase(Queen, tile(t, "d7")), Black))
	assert.Equal(t, Piece{Queen, Black}, b.PieceAt(tile(t, "d7")))
}

func TestAttacks(t *testing.T) {
	b := sparseBoard(t, map[string]Piece{
		"a1": {Rook, White},
		"a4": {Pawn, Black},
	})
	set := b.Attacks(White)
	assert.True(t, set.Has(tile(t, "a2")))
	assert.True(t, set.Has(tile(t, "a4")), "the first blocker is attacked")
	assert.False(t, set.Has(tile(t, "a5")), "no attacks beyond a blocker")
	assert.True(t, set.Has(tile(t, "h1")))
}
