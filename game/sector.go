package game

// Sector is one of 16 fixed 2x2 regions tiling the board, indexed 0 to 15
// from the bottom left to the top right. The four sectors touching the board
// center are central, the remaining twelve peripheral. Sectors are derived
// from tile coordinates and never stored.
type Sector uint8

// NumSectors is the number of sectors tiling the board.
const NumSectors = 16

// Central reports whether the sector is one of the four center sectors.
func (s Sector) Central() bool {
	return s == 5 || s == 6 || s == 9 || s == 10
}

// Peripheral reports whether the sector is one of the twelve outer sectors.
func (s Sector) Peripheral() bool { return !s.Central() }

// HomeFor reports whether the sector lies within the given color's two home
// rows. White's home sectors cover ranks 1-2, Black's ranks 7-8. Purchases
// may only place pieces there.
func (s Sector) HomeFor(c Color) bool {
	if c == White {
		return s <= 3
	}
	return s >= 12
}

// Tiles returns the four tiles of the sector.
func (s Sector) Tiles() [4]Tile {
	rank := int(s) / 4 * 2
	file := int(s) % 4 * 2
	return [4]Tile{
		tileAt(file, rank),
		tileAt(file+1, rank),
		tileAt(file, rank+1),
		tileAt(file+1, rank+1),
	}
}
