package services

import "coin-casino-backend/internal/models"

// BetValidator checks a proposed wager against the configured bounds and
// the account's current balance. Callers must reject before resolving a
// game; the ledger itself never validates bets.
type BetValidator struct {
	MinBet int64
	MaxBet int64
}

// Validate rejects in priority order: below minimum, above maximum,
// exceeds balance.
func (v BetValidator) Validate(balance, bet int64) error {
	if bet < v.MinBet {
		return models.ErrBetBelowMinimum
	}
	if bet > v.MaxBet {
		return models.ErrBetAboveMaximum
	}
	if bet > balance {
		return models.ErrInsufficientFunds
	}
	return nil
}
