package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"coin-casino-backend/internal/config"
	"coin-casino-backend/internal/games"
	"coin-casino-backend/internal/ledger"
	"coin-casino-backend/internal/models"
)

// GameEngine composes validation, game resolution and settlement into the
// one caller-visible unit. Resolvers are pure; the ledger transaction is
// the only synchronization point, and no locks are held across the random
// draws or the broadcast.
type GameEngine struct {
	store       *ledger.Store
	src         games.RandomSource
	validator   BetValidator
	broadcaster Broadcaster
	redis       *RedisService
}

func NewGameEngine(store *ledger.Store, src games.RandomSource, cfg *config.Config) *GameEngine {
	return &GameEngine{
		store:     store,
		src:       src,
		validator: BetValidator{MinBet: cfg.MinBet, MaxBet: cfg.MaxBet},
	}
}

// SetBroadcaster attaches the live feed. Optional; nil means no feed.
func (ge *GameEngine) SetBroadcaster(b Broadcaster) { ge.broadcaster = b }

// SetRedis attaches the cache layer. Optional; nil degrades gracefully.
func (ge *GameEngine) SetRedis(r *RedisService) { ge.redis = r }

// Play validates the wager, resolves the requested game and settles the
// financial outcome. All validation happens before any mutation; a push
// leaves the ledger untouched.
func (ge *GameEngine) Play(ctx context.Context, accountID int64, req *models.PlayRequest) (*models.SettlementResult, error) {
	if !req.GameType.Valid() {
		return nil, fmt.Errorf("%w: unknown game type %q", models.ErrInvalidParameter, req.GameType)
	}

	balance, err := ge.store.GetBalance(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if err := ge.validator.Validate(balance, req.Bet); err != nil {
		return nil, err
	}

	outcome, err := ge.resolve(req)
	if err != nil {
		return nil, err
	}

	result := &models.SettlementResult{
		GameType:    req.GameType,
		Won:         outcome.Won,
		Push:        outcome.Push,
		Multiplier:  outcome.Multiplier,
		BetAmount:   req.Bet,
		Payout:      outcome.Payout(req.Bet),
		ResultDelta: outcome.Delta(req.Bet),
		Narrative:   outcome.Narrative,
	}

	if outcome.Push {
		// Stake returned: no balance change, no history, no aggregates.
		result.NewBalance = balance
	} else {
		newBalance, err := ge.store.Settle(ctx, accountID, req.GameType, req.Bet, result.ResultDelta)
		if err != nil {
			return nil, err
		}
		result.NewBalance = newBalance
	}

	ge.redis.InvalidateLeaderboard(ctx)
	if ge.broadcaster != nil {
		ge.broadcaster.BroadcastSettlement(accountID, result)
		if !outcome.Push {
			ge.broadcaster.BroadcastBalance(accountID, result.NewBalance)
		}
	}

	zap.L().Info("Play settled",
		zap.Int64("account_id", accountID),
		zap.String("game_type", string(req.GameType)),
		zap.Int64("bet", req.Bet),
		zap.Bool("won", result.Won),
		zap.Bool("push", result.Push),
		zap.Int64("delta", result.ResultDelta))
	return result, nil
}

func (ge *GameEngine) resolve(req *models.PlayRequest) (games.Outcome, error) {
	switch req.GameType {
	case models.GameTypeCoinflip:
		return games.Coinflip(ge.src, req.Choice)
	case models.GameTypeDice:
		return games.Dice(ge.src), nil
	case models.GameTypeSlots:
		return games.Slots(ge.src), nil
	case models.GameTypeRoulette:
		return games.Roulette(ge.src, req.BetType)
	case models.GameTypeBlackjack:
		return games.Blackjack(ge.src), nil
	case models.GameTypeCrash:
		return games.Crash(ge.src, req.Cashout)
	default:
		return games.Outcome{}, fmt.Errorf("%w: unknown game type %q", models.ErrInvalidParameter, req.GameType)
	}
}

// Leaderboard serves rankings through the cache when one is attached.
func (ge *GameEngine) Leaderboard(ctx context.Context, limit int) ([]models.LeaderboardEntry, error) {
	if entries, ok := ge.redis.GetCachedLeaderboard(ctx, limit); ok {
		return entries, nil
	}

	entries, err := ge.store.Leaderboard(ctx, limit)
	if err != nil {
		return nil, err
	}
	ge.redis.CacheLeaderboard(ctx, limit, entries)
	return entries, nil
}
