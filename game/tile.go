package game

import "fmt"

// Tile indexes a board square, rank*8+file with a1 = 0.
type Tile uint8

// NumTiles is the number of squares on the board.
const NumTiles = 64

// Square builds a tile from file and rank coordinates, failing with
// ErrIllegalSquare when either is out of range.
func Square(file, rank int) (Tile, error) {
	if file < 0 || file > 7 || rank < 0 || rank > 7 {
		return 0, fmt.Errorf("%w: file %d rank %d", ErrIllegalSquare, file, rank)
	}
	return Tile(rank*8 + file), nil
}

// tileAt builds a tile from coordinates known to be in range.
func tileAt(file, rank int) Tile {
	return Tile(rank*8 + file)
}

// File returns the tile's file, 0 to 7 for a to h.
func (t Tile) File() int { return int(t) % 8 }

// Rank returns the tile's rank, 0 to 7 for 1 to 8.
func (t Tile) Rank() int { return int(t) / 8 }

// Sector returns the 2x2 sector containing the tile.
func (t Tile) Sector() Sector {
	return Sector((t.Rank()/2)*4 + t.File()/2)
}

func (t Tile) String() string {
	return fmt.Sprintf("%c%c", byte('a')+byte(t.File()), byte('1')+byte(t.Rank()))
}

// ParseTile parses algebraic coordinates like "e4".
func ParseTile(s string) (Tile, error) {
	if len(s) != 2 || s[0] < 'a' || s[0] > 'h' || s[1] < '1' || s[1] > '8' {
		return 0, fmt.Errorf("%w: %q", ErrIllegalSquare, s)
	}
	return tileAt(int(s[0]-'a'), int(s[1]-'1')), nil
}

// TileSet is a set of tiles backed by a 64-bit mask.
type TileSet uint64

// Add inserts a tile into the set.
func (s *TileSet) Add(t Tile) { *s |= 1 << t }

// Has reports whether the set contains the tile.
func (s TileSet) Has(t Tile) bool { return s&(1<<t) != 0 }

// Count returns the number of tiles in the set.
func (s TileSet) Count() int {
	n := 0
	for s != 0 {
		s &= s - 1
		n++
	}
	return n
}
