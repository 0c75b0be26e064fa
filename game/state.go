package game

import "fmt"

// Reason explains why a game ended.
type Reason uint8

const (
	Checkmate Reason = iota
	NoPieces
	Bankrupt
)

func (r Reason) String() string {
	switch r {
	case Checkmate:
		return "checkmate"
	case NoPieces:
		return "no pieces"
	case Bankrupt:
		return "bankrupt"
	}
	return "unknown"
}

// Outcome reports the winner and why. There are no draws in this variant: a
// side with legal, affordable moves is never forced to stop.
type Outcome struct {
	Winner Color
	Reason Reason
}

func (o Outcome) String() string {
	return fmt.Sprintf("%s wins by %s", o.Winner, o.Reason)
}

// GameState bundles the board, both banks, the market and the side to move.
// It is mutated only through Apply, EndTurn and ApplyTurn; once an outcome
// is set it accepts no further actions. Clone is a cheap value copy, which
// the searcher relies on for shared-nothing branch exploration.
type GameState struct {
	Board      Board
	market     Market
	banks      [2]Bank
	sideToMove Color
	outcome    *Outcome
}

// NewGameState starts a game from the standard position with the given
// market and opening balances.
func NewGameState(m Market, initialBalance int) *GameState {
	g := &GameState{
		Board:  NewBoard(),
		market: m,
		banks:  [2]Bank{NewBank(White, initialBalance), NewBank(Black, initialBalance)},
	}
	g.updateOutcome()
	return g
}

// NewEmptyGameState starts from an empty board, for constructing positions.
// Call UpdateOutcome once the position is set up.
func NewEmptyGameState(m Market, initialBalance int) *GameState {
	return &GameState{
		Board:  Board{},
		market: m,
		banks:  [2]Bank{NewBank(White, initialBalance), NewBank(Black, initialBalance)},
	}
}

// Clone returns an independent copy of the state.
func (g *GameState) Clone() *GameState {
	c := *g
	return &c
}

// WhoseTurn returns the side to move.
func (g *GameState) WhoseTurn() Color { return g.sideToMove }

// Bank returns the bank of the given color.
func (g *GameState) Bank(c Color) *Bank { return &g.banks[c] }

// Market returns the game's pricing policy.
func (g *GameState) Market() Market { return g.market }

// Result returns the outcome once the game is over.
func (g *GameState) Result() (Outcome, bool) {
	if g.outcome == nil {
		return Outcome{}, false
	}
	return *g.outcome, true
}

// Over reports whether the game has ended.
func (g *GameState) Over() bool { return g.outcome != nil }

// SetSideToMove overrides the side to move, for constructing positions.
func (g *GameState) SetSideToMove(c Color) { g.sideToMove = c }

// PutPiece places a piece when constructing positions.
func (g *GameState) PutPiece(t Tile, p Piece) { g.Board.squares[t] = p }

// SetBalance overrides a bank balance when constructing positions.
func (g *GameState) SetBalance(c Color, amount int) { g.banks[c].balance = amount }

// MoveCost prices the move if it were submitted now, including the
// escalation for moves already made this turn.
func (g *GameState) MoveCost(m Move) int {
	return g.market.MoveCost(m, g.banks[g.sideToMove].movesThisTurn)
}

// LegalMoves enumerates the chess-legal single actions for the side to
// move: every self-check-safe relocation, plus every purchase of every kind
// onto every empty home-row square unless the side is in check. The set is
// advisory and ignores affordability, which the turn engine enforces at
// application time.
func (g *GameState) LegalMoves() []Move {
	side := g.sideToMove
	moves := g.Board.LegalRelocations(side)
	if !g.Board.InCheck(side) {
		for t := Tile(0); t < NumTiles; t++ {
			if g.Board.Occupied(t) || !t.Sector().HomeFor(side) {
				continue
			}
			for _, k := range Kinds {
				moves = append(moves, NewPurchase(k, t))
			}
		}
	}
	return moves
}

// IsLegalMove reports membership in LegalMoves, ignoring price.
func (g *GameState) IsLegalMove(m Move) bool {
	side := g.sideToMove
	switch m.Kind {
	case Purchase:
		return !g.Board.InCheck(side) && (&g.Board).checkPurchase(m, side) == nil
	default:
		return (&g.Board).checkRelocate(m, side) == nil
	}
}

// AffordableMoves filters LegalMoves down to the actions the side can pay
// for right now, given the escalated price of the next move.
func (g *GameState) AffordableMoves() []Move {
	bank := &g.banks[g.sideToMove]
	var moves []Move
	for _, m := range g.LegalMoves() {
		if bank.CanAfford(g.MoveCost(m)) {
			moves = append(moves, m)
		}
	}
	return moves
}

// Apply validates, charges and executes one action of the current turn.
// Validation precedes the debit and the debit precedes the board mutation,
// so a rejected action leaves the state exactly as it was.
func (g *GameState) Apply(m Move) error {
	if g.outcome != nil {
		return ErrGameOver
	}
	side := g.sideToMove
	bank := &g.banks[side]

	if m.Kind == Purchase {
		if g.Board.InCheck(side) {
			return fmt.Errorf("%w: %s", ErrPurchaseWhileInCheck, m)
		}
		if err := (&g.Board).checkPurchase(m, side); err != nil {
			return err
		}
	} else {
		if err := (&g.Board).checkRelocate(m, side); err != nil {
			return err
		}
	}

	if err := bank.Charge(g.MoveCost(m)); err != nil {
		return err
	}

	if m.Kind == Purchase {
		(&g.Board).doPurchase(m, side)
	} else {
		(&g.Board).doRelocate(m, side)
	}
	bank.recordMove()
	return nil
}

// EndTurn settles the mover's territory income, resets the move counter,
// hands the turn to the opponent and runs the start-of-turn termination
// check for them. Ending with zero moves made is a pass.
func (g *GameState) EndTurn() error {
	if g.outcome != nil {
		return ErrGameOver
	}
	side := g.sideToMove
	bank := &g.banks[side]
	bank.Deposit(g.market.TerritoryIncome(&g.Board, side))
	bank.resetTurn()
	g.sideToMove = side.Enemy()
	g.updateOutcome()
	return nil
}

// ApplyTurn plays a full non-empty turn and settles it. The sequence is
// validated against a clone first, so a turn that fails partway leaves the
// state untouched.
func (g *GameState) ApplyTurn(t Turn) error {
	if len(t) == 0 {
		return fmt.Errorf("%w: empty turn", ErrIllegalMove)
	}
	scratch := g.Clone()
	for _, m := range t {
		if err := scratch.Apply(m); err != nil {
			return err
		}
	}
	if err := scratch.EndTurn(); err != nil {
		return err
	}
	*g = *scratch
	return nil
}

// UpdateOutcome re-runs the start-of-turn termination check for the side to
// move, for use after constructing a position by hand.
func (g *GameState) UpdateOutcome() { g.updateOutcome() }

// updateOutcome decides whether the side to move has already lost. The
// check runs before the side acts: a side with no pieces, a checked side
// with no affordable escape, or a side that cannot pay for any action at
// all loses immediately.
func (g *GameState) updateOutcome() {
	if g.outcome != nil {
		return
	}
	side := g.sideToMove
	enemy := side.Enemy()
	bank := &g.banks[side]

	if g.Board.PieceCount(side) == 0 {
		g.outcome = &Outcome{Winner: enemy, Reason: NoPieces}
		return
	}

	base := g.market.MovePrice(0)
	if g.Board.InCheck(side) {
		// Purchases are forbidden in check, so only an affordable
		// relocation can resolve it. Legal relocations never leave the
		// king attacked.
		if !bank.CanAfford(base) || !g.Board.HasLegalRelocation(side) {
			g.outcome = &Outcome{Winner: enemy, Reason: Checkmate}
		}
		return
	}
	if !g.hasAffordableAction(side) {
		g.outcome = &Outcome{Winner: enemy, Reason: Bankrupt}
	}
}

// hasAffordableAction reports whether the side could pay for at least one
// legal action as the first move of its turn.
func (g *GameState) hasAffordableAction(side Color) bool {
	bank := &g.banks[side]
	base := g.market.MovePrice(0)
	if bank.CanAfford(base) && g.Board.HasLegalRelocation(side) {
		return true
	}
	cheapest := -1
	for _, k := range Kinds {
		if p := g.market.PurchasePrice(k); cheapest < 0 || p < cheapest {
			cheapest = p
		}
	}
	if !bank.CanAfford(base + cheapest) {
		return false
	}
	for t := Tile(0); t < NumTiles; t++ {
		if !g.Board.Occupied(t) && t.Sector().HomeFor(side) {
			return true
		}
	}
	return false
}
