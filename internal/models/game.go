package models

import "time"

type GameType string

const (
	GameTypeCoinflip  GameType = "coinflip"
	GameTypeDice      GameType = "dice"
	GameTypeSlots     GameType = "slots"
	GameTypeRoulette  GameType = "roulette"
	GameTypeBlackjack GameType = "blackjack"
	GameTypeCrash     GameType = "crash"
)

// AllGameTypes in a stable order, used for dispatch and validation.
var AllGameTypes = []GameType{
	GameTypeCoinflip,
	GameTypeDice,
	GameTypeSlots,
	GameTypeRoulette,
	GameTypeBlackjack,
	GameTypeCrash,
}

func (g GameType) Valid() bool {
	for _, known := range AllGameTypes {
		if g == known {
			return true
		}
	}
	return false
}

// GameRecord is one row of the game_history table, append-only.
// ResultDelta is positive on a net gain, negative on a net loss and is
// never zero: pushes are not recorded.
type GameRecord struct {
	ID          int64     `json:"id"`
	AccountID   int64     `json:"account_id"`
	GameType    GameType  `json:"game_type"`
	BetAmount   int64     `json:"bet_amount"`
	ResultDelta int64     `json:"result_delta"`
	Timestamp   time.Time `json:"timestamp"`
}
