package game

var (
	knightOffsets = [8][2]int{{1, 2}, {2, 1}, {2, -1}, {1, -2}, {-1, -2}, {-2, -1}, {-2, 1}, {-1, 2}}
	kingOffsets   = [8][2]int{{0, 1}, {1, 1}, {1, 0}, {1, -1}, {0, -1}, {-1, -1}, {-1, 0}, {-1, 1}}
	bishopDirs    = [4][2]int{{1, 1}, {1, -1}, {-1, -1}, {-1, 1}}
	rookDirs      = [4][2]int{{0, 1}, {1, 0}, {0, -1}, {-1, 0}}
)

// PieceMoves returns the legal relocations for the piece on the square,
// already filtered so none leaves the mover's own king attacked. The result
// is empty when the square is empty.
func (b *Board) PieceMoves(from Tile) []Move {
	p := b.squares[from]
	if p.Empty() {
		return nil
	}
	var moves []Move
	for _, m := range b.pseudoMoves(from) {
		if !b.leavesKingInCheck(m, p.Owner) {
			moves = append(moves, m)
		}
	}
	return moves
}

// LegalRelocations returns every legal relocation available to the color.
// Generation order is fixed by tile index so downstream tie-breaking is
// deterministic.
func (b *Board) LegalRelocations(c Color) []Move {
	var moves []Move
	for t := Tile(0); t < NumTiles; t++ {
		p := b.squares[t]
		if !p.Empty() && p.Owner == c {
			moves = append(moves, b.PieceMoves(t)...)
		}
	}
	return moves
}

// HasLegalRelocation reports whether the color has at least one legal
// relocation, without materializing the full move list.
func (b *Board) HasLegalRelocation(c Color) bool {
	for t := Tile(0); t < NumTiles; t++ {
		p := b.squares[t]
		if p.Empty() || p.Owner != c {
			continue
		}
		for _, m := range b.pseudoMoves(t) {
			if !b.leavesKingInCheck(m, c) {
				return true
			}
		}
	}
	return false
}

// pseudoMoves generates candidate relocations for the piece on the square,
// honoring blocking and capture rules but not king safety. Castling is the
// exception: its legality conditions are checked in full here.
func (b *Board) pseudoMoves(from Tile) []Move {
	p := b.squares[from]
	var moves []Move
	switch p.Kind {
	case Pawn:
		moves = b.pawnMoves(from, p.Owner)
	case Knight:
		moves = b.stepMoves(from, p.Owner, knightOffsets[:])
	case Bishop:
		moves = b.slideMoves(from, p.Owner, bishopDirs[:])
	case Rook:
		moves = b.slideMoves(from, p.Owner, rookDirs[:])
	case Queen:
		moves = append(b.slideMoves(from, p.Owner, rookDirs[:]), b.slideMoves(from, p.Owner, bishopDirs[:])...)
	case King:
		moves = append(b.stepMoves(from, p.Owner, kingOffsets[:]), b.castlingMoves(from, p.Owner)...)
	}
	return moves
}

func (b *Board) pawnMoves(from Tile, c Color) []Move {
	var moves []Move
	dir := 1
	startRank := 1
	if c == Black {
		dir = -1
		startRank = 6
	}
	file, rank := from.File(), from.Rank()

	appendTarget := func(to Tile) {
		if to.Rank() == promotionRank(c) {
			for _, k := range Promotions {
				moves = append(moves, NewPromotion(from, to, k))
			}
		} else {
			moves = append(moves, NewRelocate(from, to))
		}
	}

	// Forward pushes.
	if r := rank + dir; r >= 0 && r <= 7 {
		one := tileAt(file, r)
		if !b.Occupied(one) {
			appendTarget(one)
			if rank == startRank {
				two := tileAt(file, rank+2*dir)
				if !b.Occupied(two) {
					moves = append(moves, NewRelocate(from, two))
				}
			}
		}
	}

	// Diagonal captures, including en passant.
	for _, df := range [2]int{-1, 1} {
		f, r := file+df, rank+dir
		if f < 0 || f > 7 || r < 0 || r > 7 {
			continue
		}
		to := tileAt(f, r)
		target := b.squares[to]
		if !target.Empty() && target.Owner != c {
			appendTarget(to)
		} else if target.Empty() && b.hasEnPassant && to == b.enPassant {
			// The pawn being captured sits beside the mover; within a
			// multi-move turn the target may be the mover's own pawn, which
			// is not capturable.
			victim := b.squares[tileAt(f, rank)]
			if victim.Kind == Pawn && victim.Owner != c {
				moves = append(moves, NewRelocate(from, to))
			}
		}
	}
	return moves
}

func (b *Board) stepMoves(from Tile, c Color, offsets [][2]int) []Move {
	var moves []Move
	for _, o := range offsets {
		f, r := from.File()+o[0], from.Rank()+o[1]
		if f < 0 || f > 7 || r < 0 || r > 7 {
			continue
		}
		to := tileAt(f, r)
		if target := b.squares[to]; target.Empty() || target.Owner != c {
			moves = append(moves, NewRelocate(from, to))
		}
	}
	return moves
}

func (b *Board) slideMoves(from Tile, c Color, dirs [][2]int) []Move {
	var moves []Move
	for _, d := range dirs {
		f, r := from.File(), from.Rank()
		for {
			f, r = f+d[0], r+d[1]
			if f < 0 || f > 7 || r < 0 || r > 7 {
				break
			}
			to := tileAt(f, r)
			target := b.squares[to]
			if target.Empty() {
				moves = append(moves, NewRelocate(from, to))
				continue
			}
			if target.Owner != c {
				moves = append(moves, NewRelocate(from, to))
			}
			break
		}
	}
	return moves
}

// castlingMoves emits the king's two-file slides when castling is fully
// legal: rights intact, path clear, and the king neither in check nor
// crossing an attacked square.
func (b *Board) castlingMoves(from Tile, c Color) []Move {
	rank := 0
	kingside, queenside := b.castling.WhiteKingside, b.castling.WhiteQueenside
	if c == Black {
		rank = 7
		kingside, queenside = b.castling.BlackKingside, b.castling.BlackQueenside
	}
	if from != tileAt(4, rank) || b.InCheck(c) {
		return nil
	}

	var moves []Move
	enemy := b.Attacks(c.Enemy())
	if kingside &&
		!b.Occupied(tileAt(5, rank)) && !b.Occupied(tileAt(6, rank)) &&
		!enemy.Has(tileAt(5, rank)) && !enemy.Has(tileAt(6, rank)) {
		moves = append(moves, NewRelocate(from, tileAt(6, rank)))
	}
	if queenside &&
		!b.Occupied(tileAt(3, rank)) && !b.Occupied(tileAt(2, rank)) && !b.Occupied(tileAt(1, rank)) &&
		!enemy.Has(tileAt(3, rank)) && !enemy.Has(tileAt(2, rank)) {
		moves = append(moves, NewRelocate(from, tileAt(2, rank)))
	}
	return moves
}

// canReach reports whether the relocation target appears among the pseudo
// moves of the piece on from.
func (b *Board) canReach(from, to Tile) bool {
	for _, m := range b.pseudoMoves(from) {
		if m.To == to {
			return true
		}
	}
	return false
}

// attacksFrom returns the squares attacked by the piece on the tile. Pawn
// attacks are the diagonals only; sliders stop at the first blocker, which
// is itself attacked.
func (b *Board) attacksFrom(from Tile) TileSet {
	var set TileSet
	p := b.squares[from]
	file, rank := from.File(), from.Rank()

	addStep := func(offsets [][2]int) {
		for _, o := range offsets {
			f, r := file+o[0], rank+o[1]
			if f >= 0 && f <= 7 && r >= 0 && r <= 7 {
				set.Add(tileAt(f, r))
			}
		}
	}
	addSlide := func(dirs [][2]int) {
		for _, d := range dirs {
			f, r := file, rank
			for {
				f, r = f+d[0], r+d[1]
				if f < 0 || f > 7 || r < 0 || r > 7 {
					break
				}
				to := tileAt(f, r)
				set.Add(to)
				if b.Occupied(to) {
					break
				}
			}
		}
	}

	switch p.Kind {
	case Pawn:
		dir := 1
		if p.Owner == Black {
			dir = -1
		}
		addStep([][2]int{{-1, dir}, {1, dir}})
	case Knight:
		addStep(knightOffsets[:])
	case Bishop:
		addSlide(bishopDirs[:])
	case Rook:
		addSlide(rookDirs[:])
	case Queen:
		addSlide(rookDirs[:])
		addSlide(bishopDirs[:])
	case King:
		addStep(kingOffsets[:])
	}
	return set
}
