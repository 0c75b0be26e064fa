package game

import "fmt"

// Bank holds one side's funds and its per-turn move counter. A bank belongs
// to exactly one color and is only ever mutated through that side's turn
// engine operations.
type Bank struct {
	color         Color
	balance       int
	movesThisTurn int
}

// NewBank creates a bank with an opening balance in pennies.
func NewBank(c Color, balance int) Bank {
	return Bank{color: c, balance: balance}
}

// Color returns the owning color.
func (b *Bank) Color() Color { return b.color }

// Balance returns the current balance in pennies. It is never negative.
func (b *Bank) Balance() int { return b.balance }

// MovesThisTurn returns how many paid moves the side has made in the
// current turn. It resets to zero when the turn settles.
func (b *Bank) MovesThisTurn() int { return b.movesThisTurn }

// CanAfford reports whether the balance covers the amount.
func (b *Bank) CanAfford(amount int) bool { return b.balance >= amount }

// Deposit credits the bank.
func (b *Bank) Deposit(amount int) { b.balance += amount }

// Charge atomically checks the balance and debits it. A failed charge
// leaves the balance untouched.
func (b *Bank) Charge(amount int) error {
	if b.balance < amount {
		return fmt.Errorf("%w: %s needs %s but has %s",
			ErrInsufficientFunds, b.color, FormatPennies(amount), FormatPennies(b.balance))
	}
	b.balance -= amount
	return nil
}

func (b *Bank) recordMove() { b.movesThisTurn++ }

func (b *Bank) resetTurn() { b.movesThisTurn = 0 }

func (b *Bank) String() string {
	return fmt.Sprintf("%s bank: %s", b.color, FormatPennies(b.balance))
}
