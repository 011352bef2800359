package ledger

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"coin-casino-backend/internal/models"
)

// GetOrCreate returns the account, creating it with the configured
// starting balance the first time an id is seen. Idempotent.
func (s *Store) GetOrCreate(ctx context.Context, accountID int64) (*models.Account, error) {
	if _, err := s.db.ExecContext(ctx, queryInsertAccount, accountID, s.startingBalance, time.Now().UTC()); err != nil {
		return nil, storageErr("create account", err)
	}
	return s.getAccount(ctx, accountID)
}

func (s *Store) getAccount(ctx context.Context, accountID int64) (*models.Account, error) {
	var account models.Account
	var lastClaim sql.NullTime
	err := s.db.QueryRowContext(ctx, queryGetAccount, accountID).Scan(
		&account.ID, &account.Balance, &account.TotalWon, &account.TotalLost,
		&account.GamesPlayed, &lastClaim, &account.CreatedAt)
	if err != nil {
		return nil, storageErr("get account", err)
	}
	if lastClaim.Valid {
		claimedAt := lastClaim.Time
		account.LastDailyClaim = &claimedAt
	}
	return &account, nil
}

// GetBalance implies GetOrCreate: an unseen id is seeded and reported at
// the starting balance.
func (s *Store) GetBalance(ctx context.Context, accountID int64) (int64, error) {
	account, err := s.GetOrCreate(ctx, accountID)
	if err != nil {
		return 0, err
	}
	return account.Balance, nil
}

// ApplyDelta atomically adds delta to the balance and returns the result.
// The read-modify-write happens inside one UPDATE, so concurrent deltas
// against the same account are never lost.
func (s *Store) ApplyDelta(ctx context.Context, accountID, delta int64) (int64, error) {
	if _, err := s.GetOrCreate(ctx, accountID); err != nil {
		return 0, err
	}

	var newBalance int64
	if err := s.db.QueryRowContext(ctx, queryApplyDelta, delta, accountID).Scan(&newBalance); err != nil {
		return 0, storageErr("apply delta", err)
	}
	return newBalance, nil
}

// SetBalance is the administrative absolute set.
func (s *Store) SetBalance(ctx context.Context, accountID, value int64) error {
	if value < 0 {
		return fmt.Errorf("%w: balance cannot be negative", models.ErrInvalidParameter)
	}
	if _, err := s.GetOrCreate(ctx, accountID); err != nil {
		return err
	}
	if _, err := s.db.ExecContext(ctx, querySetBalance, value, accountID); err != nil {
		return storageErr("set balance", err)
	}
	return nil
}

// Settle applies one game's signed delta and records it, as a single
// transaction: either the balance moves and the history row exists, or
// neither does. Pushes never reach this method.
func (s *Store) Settle(ctx context.Context, accountID int64, gameType models.GameType, betAmount, resultDelta int64) (int64, error) {
	if resultDelta == 0 {
		return 0, fmt.Errorf("%w: settlement delta cannot be zero", models.ErrInvalidParameter)
	}
	if _, err := s.GetOrCreate(ctx, accountID); err != nil {
		return 0, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, storageErr("begin settle", err)
	}
	defer tx.Rollback()

	var wonInc, lostInc int64
	if resultDelta > 0 {
		wonInc = resultDelta
	} else {
		lostInc = -resultDelta
	}

	var newBalance int64
	err = tx.QueryRowContext(ctx, querySettleAccount, resultDelta, wonInc, lostInc, accountID).Scan(&newBalance)
	if err != nil {
		return 0, storageErr("settle account", err)
	}

	_, err = tx.ExecContext(ctx, queryInsertGameRecord, accountID, string(gameType), betAmount, resultDelta, time.Now().UTC())
	if err != nil {
		return 0, storageErr("record game", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, storageErr("commit settle", err)
	}

	zap.L().Debug("Game settled",
		zap.Int64("account_id", accountID),
		zap.String("game_type", string(gameType)),
		zap.Int64("bet", betAmount),
		zap.Int64("delta", resultDelta),
		zap.Int64("new_balance", newBalance))
	return newBalance, nil
}

// Transfer moves amount between two accounts in one transaction. The
// debit is guarded, so the sender can never go negative.
func (s *Store) Transfer(ctx context.Context, fromID, toID, amount int64) (int64, error) {
	if amount <= 0 {
		return 0, fmt.Errorf("%w: transfer amount must be positive", models.ErrInvalidParameter)
	}
	if fromID == toID {
		return 0, fmt.Errorf("%w: cannot transfer to the same account", models.ErrInvalidParameter)
	}
	if _, err := s.GetOrCreate(ctx, fromID); err != nil {
		return 0, err
	}
	if _, err := s.GetOrCreate(ctx, toID); err != nil {
		return 0, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, storageErr("begin transfer", err)
	}
	defer tx.Rollback()

	var newBalance int64
	err = tx.QueryRowContext(ctx, queryDebitGuarded, amount, fromID, amount).Scan(&newBalance)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, models.ErrInsufficientFunds
	}
	if err != nil {
		return 0, storageErr("debit sender", err)
	}

	if _, err := tx.ExecContext(ctx, queryCreditAccount, amount, toID); err != nil {
		return 0, storageErr("credit recipient", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, storageErr("commit transfer", err)
	}
	return newBalance, nil
}

// ClaimDaily pays the reward iff the cooldown window has elapsed. The
// eligibility check and the write are one conditional UPDATE, which
// closes the double-claim race.
func (s *Store) ClaimDaily(ctx context.Context, accountID, reward int64, window time.Duration) (int64, error) {
	account, err := s.GetOrCreate(ctx, accountID)
	if err != nil {
		return 0, err
	}

	now := time.Now().UTC()
	cutoff := now.Add(-window)

	var newBalance int64
	err = s.db.QueryRowContext(ctx, queryClaimDaily, reward, now, accountID, cutoff).Scan(&newBalance)
	if errors.Is(err, sql.ErrNoRows) {
		remaining := window
		if account.LastDailyClaim != nil {
			remaining = account.LastDailyClaim.Add(window).Sub(now)
		}
		if remaining < 0 {
			remaining = 0
		}
		return 0, &models.CooldownError{Remaining: remaining}
	}
	if err != nil {
		return 0, storageErr("claim daily", err)
	}

	zap.L().Info("Daily reward claimed",
		zap.Int64("account_id", accountID),
		zap.Int64("reward", reward),
		zap.Int64("new_balance", newBalance))
	return newBalance, nil
}

// CanClaimDaily reports eligibility without claiming. Advisory only: the
// authoritative check lives inside ClaimDaily's conditional update.
func (s *Store) CanClaimDaily(ctx context.Context, accountID int64, window time.Duration) (bool, error) {
	account, err := s.GetOrCreate(ctx, accountID)
	if err != nil {
		return false, err
	}
	if account.LastDailyClaim == nil {
		return true, nil
	}
	return time.Since(*account.LastDailyClaim) >= window, nil
}

// Leaderboard returns the richest accounts, richest first. Ties break by
// account creation order so the ranking is a stable total order.
func (s *Store) Leaderboard(ctx context.Context, limit int) ([]models.LeaderboardEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.QueryContext(ctx, queryLeaderboard, limit)
	if err != nil {
		return nil, storageErr("query leaderboard", err)
	}
	defer rows.Close()

	var entries []models.LeaderboardEntry
	for rows.Next() {
		var entry models.LeaderboardEntry
		if err := rows.Scan(&entry.AccountID, &entry.Balance, &entry.TotalWon, &entry.TotalLost, &entry.GamesPlayed); err != nil {
			return nil, storageErr("scan leaderboard row", err)
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr("iterate leaderboard", err)
	}
	return entries, nil
}

// Stats compiles an account's aggregates plus per-game play counts.
func (s *Store) Stats(ctx context.Context, accountID int64) (*models.AccountStats, error) {
	account, err := s.GetOrCreate(ctx, accountID)
	if err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, queryGameCounts, accountID)
	if err != nil {
		return nil, storageErr("query game counts", err)
	}
	defer rows.Close()

	counts := make(map[string]int64)
	for rows.Next() {
		var gameType string
		var count int64
		if err := rows.Scan(&gameType, &count); err != nil {
			return nil, storageErr("scan game count", err)
		}
		counts[gameType] = count
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr("iterate game counts", err)
	}

	return &models.AccountStats{
		Balance:     account.Balance,
		TotalWon:    account.TotalWon,
		TotalLost:   account.TotalLost,
		GamesPlayed: account.GamesPlayed,
		NetProfit:   account.NetProfit(),
		GameCounts:  counts,
	}, nil
}

// History returns the account's most recent settled games, newest first.
func (s *Store) History(ctx context.Context, accountID int64, limit int) ([]models.GameRecord, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}

	rows, err := s.db.QueryContext(ctx, queryHistory, accountID, limit)
	if err != nil {
		return nil, storageErr("query history", err)
	}
	defer rows.Close()

	var records []models.GameRecord
	for rows.Next() {
		var record models.GameRecord
		if err := rows.Scan(&record.ID, &record.AccountID, &record.GameType,
			&record.BetAmount, &record.ResultDelta, &record.Timestamp); err != nil {
			return nil, storageErr("scan history row", err)
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr("iterate history", err)
	}
	return records, nil
}

// Reset restores the starting balance, zeroes the aggregates and the
// cooldown, and purges the account's history in one transaction.
func (s *Store) Reset(ctx context.Context, accountID int64) error {
	if _, err := s.GetOrCreate(ctx, accountID); err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return storageErr("begin reset", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, queryResetAccount, s.startingBalance, accountID); err != nil {
		return storageErr("reset account", err)
	}
	if _, err := tx.ExecContext(ctx, queryDeleteHistory, accountID); err != nil {
		return storageErr("purge history", err)
	}

	if err := tx.Commit(); err != nil {
		return storageErr("commit reset", err)
	}

	zap.L().Info("Account reset", zap.Int64("account_id", accountID))
	return nil
}

// BotStats compiles the global totals served to administrators.
func (s *Store) BotStats(ctx context.Context) (*models.BotStats, error) {
	var stats models.BotStats

	if err := s.db.QueryRowContext(ctx, queryCountAccounts).Scan(&stats.TotalAccounts, &stats.CoinsInCirculation); err != nil {
		return nil, storageErr("count accounts", err)
	}
	if err := s.db.QueryRowContext(ctx, queryCountGames).Scan(&stats.TotalGames); err != nil {
		return nil, storageErr("count games", err)
	}
	if err := s.db.QueryRowContext(ctx, querySumAggregates).Scan(&stats.TotalWon, &stats.TotalLost); err != nil {
		return nil, storageErr("sum aggregates", err)
	}

	var plays int64
	err := s.db.QueryRowContext(ctx, queryMostPlayedGame).Scan(&stats.MostPopularGame, &plays)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, storageErr("most played game", err)
	}

	return &stats, nil
}
