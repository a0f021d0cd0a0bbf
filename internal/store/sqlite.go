package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"paper-exchange/internal/models"
)

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore opens (or creates) the snapshot database at dbPath.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	s := &SQLiteStore{db: db}
	if err := s.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}
	return s, nil
}

func (s *SQLiteStore) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS accounts (
		session_key TEXT PRIMARY KEY,
		cash REAL NOT NULL,
		updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS positions (
		session_key TEXT NOT NULL,
		symbol TEXT NOT NULL,
		product TEXT NOT NULL,
		quantity INTEGER NOT NULL,
		average_cost REAL NOT NULL,
		PRIMARY KEY (session_key, symbol, product)
	);

	CREATE TABLE IF NOT EXISTS orders (
		session_key TEXT NOT NULL,
		seq INTEGER NOT NULL,
		id TEXT NOT NULL,
		symbol TEXT NOT NULL,
		side TEXT NOT NULL,
		kind TEXT NOT NULL,
		product TEXT NOT NULL,
		quantity INTEGER NOT NULL,
		limit_price REAL,
		trigger_price REAL,
		status TEXT NOT NULL,
		created_at DATETIME NOT NULL,
		PRIMARY KEY (session_key, id)
	);

	CREATE TABLE IF NOT EXISTS transactions (
		session_key TEXT NOT NULL,
		seq INTEGER NOT NULL,
		id TEXT NOT NULL,
		timestamp DATETIME NOT NULL,
		symbol TEXT NOT NULL,
		side TEXT NOT NULL,
		product TEXT NOT NULL,
		quantity INTEGER NOT NULL,
		price REAL NOT NULL,
		gross_value REAL NOT NULL,
		PRIMARY KEY (session_key, id)
	);

	CREATE INDEX IF NOT EXISTS idx_orders_session ON orders(session_key, seq);
	CREATE INDEX IF NOT EXISTS idx_transactions_session ON transactions(session_key, seq);
	`
	_, err := s.db.Exec(schema)
	return err
}

// Save replaces the full snapshot for a session key in one transaction.
func (s *SQLiteStore) Save(ctx context.Context, key string, state models.AccountState) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin save: %w", err)
	}
	defer tx.Rollback()

	for _, table := range []string{"accounts", "positions", "orders", "transactions"} {
		if _, err := tx.ExecContext(ctx, fmt.Sprintf("DELETE FROM %s WHERE session_key = ?", table), key); err != nil {
			return fmt.Errorf("clearing %s: %w", table, err)
		}
	}

	if _, err := tx.ExecContext(ctx,
		"INSERT INTO accounts (session_key, cash, updated_at) VALUES (?, ?, ?)",
		key, state.Cash, time.Now()); err != nil {
		return fmt.Errorf("saving account: %w", err)
	}

	for _, pos := range state.Positions {
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO positions (session_key, symbol, product, quantity, average_cost) VALUES (?, ?, ?, ?, ?)",
			key, pos.Symbol, string(pos.Product), pos.Quantity, pos.AverageCost); err != nil {
			return fmt.Errorf("saving position %s: %w", pos.Symbol, err)
		}
	}

	for i, o := range state.Orders {
		limit := sql.NullFloat64{}
		if v, ok := o.LimitPrice(); ok {
			limit = sql.NullFloat64{Float64: v, Valid: true}
		}
		trigger := sql.NullFloat64{}
		if v, ok := o.TriggerPrice(); ok {
			trigger = sql.NullFloat64{Float64: v, Valid: true}
		}
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO orders (session_key, seq, id, symbol, side, kind, product, quantity, limit_price, trigger_price, status, created_at)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			key, i, o.ID, o.Symbol, string(o.Side), string(o.Terms.Kind()), string(o.Product),
			o.Quantity, limit, trigger, string(o.Status), o.CreatedAt); err != nil {
			return fmt.Errorf("saving order %s: %w", o.ID, err)
		}
	}

	for i, t := range state.Transactions {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO transactions (session_key, seq, id, timestamp, symbol, side, product, quantity, price, gross_value)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			key, i, t.ID, t.Timestamp, t.Symbol, string(t.Side), string(t.Product),
			t.Quantity, t.Price, t.GrossValue); err != nil {
			return fmt.Errorf("saving transaction %s: %w", t.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit save: %w", err)
	}
	return nil
}

// Load reads the snapshot for a session key, or (nil, nil) when absent.
func (s *SQLiteStore) Load(ctx context.Context, key string) (*models.AccountState, error) {
	state := &models.AccountState{}

	err := s.db.QueryRowContext(ctx,
		"SELECT cash FROM accounts WHERE session_key = ?", key).Scan(&state.Cash)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("loading account: %w", err)
	}

	if state.Positions, err = s.loadPositions(ctx, key); err != nil {
		return nil, err
	}
	if state.Orders, err = s.loadOrders(ctx, key); err != nil {
		return nil, err
	}
	if state.Transactions, err = s.loadTransactions(ctx, key); err != nil {
		return nil, err
	}
	return state, nil
}

func (s *SQLiteStore) loadPositions(ctx context.Context, key string) ([]models.Position, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT symbol, product, quantity, average_cost FROM positions WHERE session_key = ? ORDER BY symbol, product", key)
	if err != nil {
		return nil, fmt.Errorf("loading positions: %w", err)
	}
	defer rows.Close()

	var out []models.Position
	for rows.Next() {
		var pos models.Position
		var product string
		if err := rows.Scan(&pos.Symbol, &product, &pos.Quantity, &pos.AverageCost); err != nil {
			return nil, fmt.Errorf("scanning position: %w", err)
		}
		pos.Product = models.ProductType(product)
		out = append(out, pos)
	}
	return out, rows.Err()
}

func (s *SQLiteStore) loadOrders(ctx context.Context, key string) ([]models.Order, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, symbol, side, kind, product, quantity, limit_price, trigger_price, status, created_at
		 FROM orders WHERE session_key = ? ORDER BY seq`, key)
	if err != nil {
		return nil, fmt.Errorf("loading orders: %w", err)
	}
	defer rows.Close()

	var out []models.Order
	for rows.Next() {
		var o models.Order
		var side, kind, product, status string
		var limit, trigger sql.NullFloat64
		if err := rows.Scan(&o.ID, &o.Symbol, &side, &kind, &product, &o.Quantity, &limit, &trigger, &status, &o.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning order: %w", err)
		}
		o.Side = models.OrderSide(side)
		o.Product = models.ProductType(product)
		o.Status = models.OrderStatus(status)
		terms, err := termsFromRow(models.OrderKind(kind), limit, trigger)
		if err != nil {
			return nil, fmt.Errorf("order %s: %w", o.ID, err)
		}
		o.Terms = terms
		out = append(out, o)
	}
	return out, rows.Err()
}

// termsFromRow rebuilds the order-terms variant from the flat columns.
func termsFromRow(kind models.OrderKind, limit, trigger sql.NullFloat64) (models.OrderTerms, error) {
	switch kind {
	case models.OrderKindMarket:
		return models.MarketTerms{}, nil
	case models.OrderKindLimit:
		if !limit.Valid {
			return nil, fmt.Errorf("limit order without limit price")
		}
		return models.LimitTerms{LimitPrice: limit.Float64}, nil
	case models.OrderKindStopLimit:
		if !limit.Valid || !trigger.Valid {
			return nil, fmt.Errorf("stop-limit order missing prices")
		}
		return models.StopLimitTerms{TriggerPrice: trigger.Float64, LimitPrice: limit.Float64}, nil
	}
	return nil, fmt.Errorf("unknown order kind %q", kind)
}

func (s *SQLiteStore) loadTransactions(ctx context.Context, key string) ([]models.Transaction, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, timestamp, symbol, side, product, quantity, price, gross_value
		 FROM transactions WHERE session_key = ? ORDER BY seq`, key)
	if err != nil {
		return nil, fmt.Errorf("loading transactions: %w", err)
	}
	defer rows.Close()

	var out []models.Transaction
	for rows.Next() {
		var t models.Transaction
		var side, product string
		if err := rows.Scan(&t.ID, &t.Timestamp, &t.Symbol, &side, &product, &t.Quantity, &t.Price, &t.GrossValue); err != nil {
			return nil, fmt.Errorf("scanning transaction: %w", err)
		}
		t.Side = models.OrderSide(side)
		t.Product = models.ProductType(product)
		out = append(out, t)
	}
	return out, rows.Err()
}

// Close closes the database.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// Ensure SQLiteStore implements Store.
var _ Store = (*SQLiteStore)(nil)
