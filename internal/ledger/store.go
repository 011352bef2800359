package ledger

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
	"go.uber.org/zap"
)

// ErrUnavailable wraps every storage-layer failure. Callers never see
// driver errors directly and must not blindly retry balance-mutating
// operations.
var ErrUnavailable = errors.New("storage unavailable")

// Store owns the accounts and game_history tables. All balance mutations
// go through single-statement atomic updates or explicit transactions, so
// concurrent callers against the same account never lose an update.
type Store struct {
	db              *sql.DB
	startingBalance int64
}

func Open(ctx context.Context, path string, startingBalance int64) (*Store, error) {
	if path == "" {
		return nil, fmt.Errorf("database path cannot be empty")
	}

	zap.L().Info("Opening SQLite database", zap.String("file", path))
	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_synchronous=NORMAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("unable to open database: %w", err)
	}

	if path == ":memory:" {
		// Every pooled connection would otherwise get its own empty database.
		db.SetMaxOpenConns(1)
	} else {
		db.SetMaxOpenConns(4)
		db.SetMaxIdleConns(2)
	}

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("unable to ping database: %w", err)
	}

	store := &Store{db: db, startingBalance: startingBalance}
	if err := store.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("unable to initialize schema: %w", err)
	}

	zap.L().Info("Ledger store initialized", zap.Int64("starting_balance", startingBalance))
	return store, nil
}

func (s *Store) Close() {
	if err := s.db.Close(); err != nil {
		zap.L().Warn("Failed to close database connection", zap.Error(err))
	}
}

func (s *Store) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS accounts (
		id INTEGER PRIMARY KEY,
		balance INTEGER NOT NULL DEFAULT 0,
		total_won INTEGER NOT NULL DEFAULT 0,
		total_lost INTEGER NOT NULL DEFAULT 0,
		games_played INTEGER NOT NULL DEFAULT 0,
		last_daily_claim TIMESTAMP,
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS game_history (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		account_id INTEGER NOT NULL REFERENCES accounts(id),
		game_type TEXT NOT NULL,
		bet_amount INTEGER NOT NULL,
		result_delta INTEGER NOT NULL,
		timestamp TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	);

	CREATE INDEX IF NOT EXISTS idx_accounts_balance ON accounts(balance);
	CREATE INDEX IF NOT EXISTS idx_game_history_account ON game_history(account_id);
	CREATE INDEX IF NOT EXISTS idx_game_history_timestamp ON game_history(timestamp);
	`

	_, err := s.db.Exec(schema)
	return err
}

// storageErr logs and wraps a driver failure as ErrUnavailable.
func storageErr(op string, err error) error {
	zap.L().Error("Ledger operation failed", zap.String("op", op), zap.Error(err))
	return fmt.Errorf("%w: %s: %v", ErrUnavailable, op, err)
}
