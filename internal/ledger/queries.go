package ledger

const (
	queryInsertAccount = `
		INSERT INTO accounts (id, balance, created_at) VALUES (?, ?, ?)
		ON CONFLICT(id) DO NOTHING`

	queryGetAccount = `
		SELECT id, balance, total_won, total_lost, games_played, last_daily_claim, created_at
		FROM accounts WHERE id = ?`

	queryApplyDelta = `
		UPDATE accounts SET balance = balance + ? WHERE id = ?
		RETURNING balance`

	querySetBalance = `
		UPDATE accounts SET balance = ? WHERE id = ?`

	// One settled game: balance, aggregates and play count move together.
	querySettleAccount = `
		UPDATE accounts
		SET balance = balance + ?,
		    total_won = total_won + ?,
		    total_lost = total_lost + ?,
		    games_played = games_played + 1
		WHERE id = ?
		RETURNING balance`

	queryInsertGameRecord = `
		INSERT INTO game_history (account_id, game_type, bet_amount, result_delta, timestamp)
		VALUES (?, ?, ?, ?, ?)`

	// Debit only when the funds are there; zero rows affected means the
	// sender cannot cover the transfer.
	queryDebitGuarded = `
		UPDATE accounts SET balance = balance - ?
		WHERE id = ? AND balance >= ?
		RETURNING balance`

	queryCreditAccount = `
		UPDATE accounts SET balance = balance + ? WHERE id = ?`

	// Claim iff the cooldown has elapsed. The condition and the write are
	// one statement, so two racing claims cannot both pay out.
	queryClaimDaily = `
		UPDATE accounts
		SET balance = balance + ?, last_daily_claim = ?
		WHERE id = ? AND (last_daily_claim IS NULL OR last_daily_claim <= ?)
		RETURNING balance`

	queryLeaderboard = `
		SELECT id, balance, total_won, total_lost, games_played
		FROM accounts
		ORDER BY balance DESC, created_at ASC, id ASC
		LIMIT ?`

	queryGameCounts = `
		SELECT game_type, COUNT(*) FROM game_history
		WHERE account_id = ? GROUP BY game_type`

	queryHistory = `
		SELECT id, account_id, game_type, bet_amount, result_delta, timestamp
		FROM game_history WHERE account_id = ?
		ORDER BY id DESC LIMIT ?`

	queryResetAccount = `
		UPDATE accounts
		SET balance = ?, total_won = 0, total_lost = 0, games_played = 0, last_daily_claim = NULL
		WHERE id = ?`

	queryDeleteHistory = `
		DELETE FROM game_history WHERE account_id = ?`

	queryCountAccounts  = `SELECT COUNT(*), COALESCE(SUM(balance), 0) FROM accounts`
	queryCountGames     = `SELECT COUNT(*) FROM game_history`
	querySumAggregates  = `SELECT COALESCE(SUM(total_won), 0), COALESCE(SUM(total_lost), 0) FROM accounts`
	queryMostPlayedGame = `
		SELECT game_type, COUNT(*) AS plays FROM game_history
		GROUP BY game_type ORDER BY plays DESC LIMIT 1`
)
