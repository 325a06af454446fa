package domain

import "errors"

var (
	ErrAccountNotFound   = errors.New("account not found")
	ErrAccountExists     = errors.New("account already exists")
	ErrInvalidAmount     = errors.New("amount must be positive")
	ErrInsufficientFunds = errors.New("insufficient available credits")
	ErrInsufficientStake = errors.New("insufficient staked credits")
	ErrInvalidRating     = errors.New("rating must be between 1 and 5")
)
