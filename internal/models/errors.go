package models

import (
	"errors"
	"fmt"
	"time"
)

// The three InvalidBet reasons, distinguishable by the caller.
var (
	ErrBetBelowMinimum   = errors.New("bet below minimum")
	ErrBetAboveMaximum   = errors.New("bet above maximum")
	ErrInsufficientFunds = errors.New("insufficient funds")
)

// ErrInvalidParameter covers game parameters the resolver cannot accept,
// e.g. an unknown roulette bet type or a crash cashout outside [1.01, 100].
// Wrap it with detail: fmt.Errorf("%w: ...", ErrInvalidParameter).
var ErrInvalidParameter = errors.New("invalid parameter")

// CooldownError reports that the daily reward is not yet available.
type CooldownError struct {
	Remaining time.Duration
}

func (e *CooldownError) Error() string {
	return fmt.Sprintf("daily reward on cooldown for %s", e.Remaining.Round(time.Second))
}

func IsInvalidBet(err error) bool {
	return errors.Is(err, ErrBetBelowMinimum) ||
		errors.Is(err, ErrBetAboveMaximum) ||
		errors.Is(err, ErrInsufficientFunds)
}
