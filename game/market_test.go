package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPurchasePrices(t *testing.T) {
	m := DefaultMarket()

	assert.Equal(t, 20, m.PurchasePrice(Pawn))
	assert.Equal(t, 60, m.PurchasePrice(Knight))
	assert.Equal(t, 63, m.PurchasePrice(Bishop))
	assert.Equal(t, 100, m.PurchasePrice(Rook))
	assert.Equal(t, 180, m.PurchasePrice(Queen))
	assert.Equal(t, 2000, m.PurchasePrice(King))
}

func TestMovePriceEscalation(t *testing.T) {
	m := DefaultMarket()

	assert.Equal(t, []int{10, 20, 40, 80}, []int{
		m.MovePrice(0), m.MovePrice(1), m.MovePrice(2), m.MovePrice(3),
	})
}

func TestMoveCost(t *testing.T) {
	m := DefaultMarket()

	relocate := NewRelocate(0, 8)
	assert.Equal(t, 10, m.MoveCost(relocate, 0))
	assert.Equal(t, 40, m.MoveCost(relocate, 2))

	purchase := NewPurchase(Queen, 0)
	assert.Equal(t, 190, m.MoveCost(purchase, 0), "base fee plus piece price")
	assert.Equal(t, 200, m.MoveCost(purchase, 1))
}

func TestSectorGeometry(t *testing.T) {
	assert.Equal(t, Sector(0), tile(t, "a1").Sector())
	assert.Equal(t, Sector(6), tile(t, "e4").Sector())
	assert.Equal(t, Sector(10), tile(t, "e5").Sector())
	assert.Equal(t, Sector(15), tile(t, "h8").Sector())

	central := 0
	for s := Sector(0); s < NumSectors; s++ {
		if s.Central() {
			central++
		}
	}
	assert.Equal(t, 4, central)

	assert.True(t, Sector(0).HomeFor(White))
	assert.False(t, Sector(4).HomeFor(White))
	assert.True(t, Sector(15).HomeFor(Black))
	assert.False(t, Sector(11).HomeFor(Black))
}

func TestSectorIncome(t *testing.T) {
	m := DefaultMarket()

	assert.Equal(t, 20, m.SectorIncome(Sector(5)))
	assert.Equal(t, 10, m.SectorIncome(Sector(0)))
}

func TestMajorityCountControl(t *testing.T) {
	policy := MajorityCount{}

	t.Run("empty sector is uncontrolled", func(t *testing.T) {
		b := Board{}
		_, ok := policy.Controller(&b, Sector(5))
		assert.False(t, ok)
	})

	t.Run("strict majority controls", func(t *testing.T) {
		b := sparseBoard(t, map[string]Piece{
			"a4": {Pawn, White}, // sector 4
			"b4": {Pawn, White},
			"a3": {Queen, Black},
		})
		owner, ok := policy.Controller(&b, Sector(4))
		require.True(t, ok)
		assert.Equal(t, White, owner, "two pawns outnumber one queen")
	})

	t.Run("tie is uncontrolled", func(t *testing.T) {
		b := sparseBoard(t, map[string]Piece{
			"a4": {Pawn, White},
			"a3": {Pawn, Black},
		})
		_, ok := policy.Controller(&b, Sector(4))
		assert.False(t, ok)
	})
}

func TestPieceValueControl(t *testing.T) {
	policy := PieceValue{}
	b := sparseBoard(t, map[string]Piece{
		"a4": {Pawn, White},
		"b4": {Pawn, White},
		"a3": {Queen, Black},
	})
	owner, ok := policy.Controller(&b, Sector(4))
	require.True(t, ok)
	assert.Equal(t, Black, owner, "a queen outweighs two pawns by value")
}

func TestTerritoryIncome(t *testing.T) {
	m := DefaultMarket()

	t.Run("initial position pays the home sectors", func(t *testing.T) {
		b := NewBoard()
		assert.Equal(t, 40, m.TerritoryIncome(&b, White))
		assert.Equal(t, 40, m.TerritoryIncome(&b, Black))
	})

	t.Run("concentrating into a central sector adds its income", func(t *testing.T) {
		b := sparseBoard(t, map[string]Piece{"e4": {Knight, White}})
		assert.Equal(t, 20, m.TerritoryIncome(&b, White))
		assert.Equal(t, 0, m.TerritoryIncome(&b, Black))
	})

	t.Run("peripheral sector adds ten", func(t *testing.T) {
		b := sparseBoard(t, map[string]Piece{"a5": {Knight, White}})
		assert.Equal(t, 10, m.TerritoryIncome(&b, White))
	})
}

func TestFormatPennies(t *testing.T) {
	assert.Equal(t, "¢120", FormatPennies(120))
	assert.Equal(t, "-¢5", FormatPennies(-5))
}
