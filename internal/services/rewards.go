package services

import (
	"context"
	"errors"
	"time"

	"coin-casino-backend/internal/config"
	"coin-casino-backend/internal/ledger"
	"coin-casino-backend/internal/models"
)

// DailyCooldown is the fixed window between reward claims.
const DailyCooldown = 24 * time.Hour

// RewardScheduler layers the cooldown on the ledger's per-account last
// claim timestamp. The claim itself is a single conditional update in
// the store, so two racing claims can never both pay.
type RewardScheduler struct {
	store  *ledger.Store
	reward int64
}

func NewRewardScheduler(store *ledger.Store, cfg *config.Config) *RewardScheduler {
	return &RewardScheduler{store: store, reward: cfg.DailyReward}
}

// CanClaim is advisory; Claim re-checks atomically.
func (rs *RewardScheduler) CanClaim(ctx context.Context, accountID int64) (bool, error) {
	return rs.store.CanClaimDaily(ctx, accountID, DailyCooldown)
}

// Claim pays the daily reward when the window has elapsed. A cooldown is
// reported in the result, not as an error; storage failures are errors.
func (rs *RewardScheduler) Claim(ctx context.Context, accountID int64) (*models.RewardResult, error) {
	newBalance, err := rs.store.ClaimDaily(ctx, accountID, rs.reward, DailyCooldown)
	if err != nil {
		var cooldown *models.CooldownError
		if errors.As(err, &cooldown) {
			remaining := cooldown.Remaining
			return &models.RewardResult{Claimed: false, RetryAfter: &remaining}, nil
		}
		return nil, err
	}

	return &models.RewardResult{
		Claimed:    true,
		Amount:     rs.reward,
		NewBalance: newBalance,
	}, nil
}
