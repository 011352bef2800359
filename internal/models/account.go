package models

import "time"

// Account is one row of the accounts table. Balance is only ever mutated
// through a ledger transaction.
type Account struct {
	ID             int64      `json:"id"`
	Balance        int64      `json:"balance"`
	TotalWon       int64      `json:"total_won"`
	TotalLost      int64      `json:"total_lost"`
	GamesPlayed    int64      `json:"games_played"`
	LastDailyClaim *time.Time `json:"last_daily_claim,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
}

// NetProfit can be negative.
func (a *Account) NetProfit() int64 {
	return a.TotalWon - a.TotalLost
}

type AccountStats struct {
	Balance     int64            `json:"balance"`
	TotalWon    int64            `json:"total_won"`
	TotalLost   int64            `json:"total_lost"`
	GamesPlayed int64            `json:"games_played"`
	NetProfit   int64            `json:"net_profit"`
	GameCounts  map[string]int64 `json:"game_counts"`
}

type LeaderboardEntry struct {
	AccountID   int64 `json:"account_id"`
	Balance     int64 `json:"balance"`
	TotalWon    int64 `json:"total_won"`
	TotalLost   int64 `json:"total_lost"`
	GamesPlayed int64 `json:"games_played"`
}
