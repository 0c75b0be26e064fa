package game

import "errors"

var (
	ErrIllegalSquare        = errors.New("square out of range")
	ErrOccupiedSquare       = errors.New("square is occupied")
	ErrEmptySquare          = errors.New("square is empty")
	ErrWrongHomeRow         = errors.New("square outside home rows")
	ErrSelfCheck            = errors.New("move leaves own king in check")
	ErrPurchaseWhileInCheck = errors.New("cannot purchase while in check")
	ErrInsufficientFunds    = errors.New("insufficient funds")
	ErrIllegalMove          = errors.New("illegal move")
	ErrGameOver             = errors.New("game is over")
)
