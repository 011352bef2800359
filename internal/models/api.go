package models

import "time"

// PlayRequest is the single play endpoint's body. Choice, BetType and
// Cashout are per-game parameters; the resolver for the requested game
// validates the ones it needs.
type PlayRequest struct {
	GameType GameType `json:"game_type" binding:"required"`
	Bet      int64    `json:"bet" binding:"required"`

	Choice  string  `json:"choice,omitempty"`   // coinflip: heads | tails
	BetType string  `json:"bet_type,omitempty"` // roulette: red | black | green | even | odd
	Cashout float64 `json:"cashout,omitempty"`  // crash: 1.01 .. 100
}

// SettlementResult is what one settled play returns to the caller.
// Push is true only for blackjack ties: the stake came back and nothing
// was recorded.
type SettlementResult struct {
	GameType    GameType    `json:"game_type"`
	Won         bool        `json:"won"`
	Push        bool        `json:"push"`
	Multiplier  float64     `json:"multiplier"`
	BetAmount   int64       `json:"bet_amount"`
	Payout      int64       `json:"payout"`
	ResultDelta int64       `json:"result_delta"`
	NewBalance  int64       `json:"new_balance"`
	Narrative   interface{} `json:"narrative"`
}

type RewardResult struct {
	Claimed    bool           `json:"claimed"`
	Amount     int64          `json:"amount"`
	NewBalance int64          `json:"new_balance"`
	RetryAfter *time.Duration `json:"retry_after,omitempty"`
}

type GiveRequest struct {
	ToAccountID int64 `json:"to_account_id" binding:"required"`
	Amount      int64 `json:"amount" binding:"required"`
}

type SetBalanceRequest struct {
	AccountID int64 `json:"account_id" binding:"required"`
	Balance   int64 `json:"balance"`
}

type AdjustBalanceRequest struct {
	AccountID int64 `json:"account_id" binding:"required"`
	Delta     int64 `json:"delta" binding:"required"`
}

type ResetRequest struct {
	AccountID int64 `json:"account_id" binding:"required"`
}

// BotStats are the global aggregates served to administrators.
type BotStats struct {
	TotalAccounts      int64  `json:"total_accounts"`
	CoinsInCirculation int64  `json:"coins_in_circulation"`
	TotalGames         int64  `json:"total_games"`
	TotalWon           int64  `json:"total_won"`
	TotalLost          int64  `json:"total_lost"`
	MostPopularGame    string `json:"most_popular_game"`
}
