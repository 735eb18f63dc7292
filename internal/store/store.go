package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/iwvelando/paint-bid/internal/bid"
	"github.com/iwvelando/paint-bid/internal/pricing"
)

// ErrNotFound is returned when no bid has the requested id.
var ErrNotFound = errors.New("bid not found")

// Store saves and loads bids.
type Store struct {
	db     *sql.DB
	logger *zap.Logger
}

// Open opens (creating if needed) the bid database at path and brings its
// schema up to date. Use ":memory:" for a throwaway database.
func Open(path string, logger *zap.Logger) (*Store, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	db, err := openDB(path)
	if err != nil {
		return nil, err
	}
	if path == ":memory:" {
		// Every pooled connection would otherwise get its own empty database.
		db.SetMaxOpenConns(1)
	}
	if err := migrateUp(db, logger); err != nil {
		db.Close()
		return nil, err
	}
	logger.Info("bid store opened",
		zap.String("op", "store.Open"),
		zap.String("path", path),
	)
	return &Store{db: db, logger: logger}, nil
}

// Close releases the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Save inserts a new bid.
func (s *Store) Save(ctx context.Context, b bid.Bid) error {
	document, err := json.Marshal(b)
	if err != nil {
		return fmt.Errorf("encoding bid %s: %w", b.ID, err)
	}
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO bids (id, calculator_type, customer_name, total, document, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, b.ID, string(b.CalculatorType), b.Customer.Name, b.Result.Total, string(document),
		b.CreatedAt.UnixNano(), b.UpdatedAt.UnixNano())
	if err != nil {
		return fmt.Errorf("inserting bid %s: %w", b.ID, err)
	}
	s.logger.Debug("bid saved",
		zap.String("op", "store.Save"),
		zap.String("id", b.ID),
	)
	return nil
}

// Load returns the bid with the given id, upgrading records written by
// older versions.
func (s *Store) Load(ctx context.Context, id string) (bid.Bid, error) {
	var document string
	err := s.db.QueryRowContext(ctx, `SELECT document FROM bids WHERE id = ?`, id).Scan(&document)
	if errors.Is(err, sql.ErrNoRows) {
		return bid.Bid{}, fmt.Errorf("bid %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return bid.Bid{}, fmt.Errorf("loading bid %s: %w", id, err)
	}

	b, migrated, err := bid.Decode([]byte(document))
	if err != nil {
		return bid.Bid{}, fmt.Errorf("decoding bid %s: %w", id, err)
	}
	if migrated {
		s.logger.Info("migrated stored bid",
			zap.String("op", "store.Load"),
			zap.String("id", id),
		)
		if err := s.Update(ctx, b); err != nil {
			s.logger.Warn("failed to persist migrated bid",
				zap.String("op", "store.Load"),
				zap.String("id", id),
				zap.Error(err),
			)
		}
	}
	return b, nil
}

// Update replaces a stored bid.
func (s *Store) Update(ctx context.Context, b bid.Bid) error {
	document, err := json.Marshal(b)
	if err != nil {
		return fmt.Errorf("encoding bid %s: %w", b.ID, err)
	}
	result, err := s.db.ExecContext(ctx, `
		UPDATE bids
		SET calculator_type = ?, customer_name = ?, total = ?, document = ?, updated_at = ?
		WHERE id = ?
	`, string(b.CalculatorType), b.Customer.Name, b.Result.Total, string(document), b.UpdatedAt.UnixNano(), b.ID)
	if err != nil {
		return fmt.Errorf("updating bid %s: %w", b.ID, err)
	}
	return expectOneRow(result, b.ID)
}

// Delete removes a bid.
func (s *Store) Delete(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM bids WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting bid %s: %w", id, err)
	}
	return expectOneRow(result, id)
}

// List returns a summary of every bid, newest first.
func (s *Store) List(ctx context.Context) ([]bid.ListItem, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, customer_name, total, created_at, calculator_type
		FROM bids
		ORDER BY created_at DESC, id
	`)
	if err != nil {
		return nil, fmt.Errorf("listing bids: %w", err)
	}
	defer rows.Close()

	items := []bid.ListItem{}
	for rows.Next() {
		var (
			item      bid.ListItem
			createdAt int64
			calcType  string
		)
		if err := rows.Scan(&item.ID, &item.CustomerName, &item.Total, &createdAt, &calcType); err != nil {
			return nil, fmt.Errorf("scanning bid row: %w", err)
		}
		item.CreatedAt = time.Unix(0, createdAt).UTC()
		item.CalculatorType = pricing.CalculatorType(calcType)
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("listing bids: %w", err)
	}
	return items, nil
}

func expectOneRow(result sql.Result, id string) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking bid %s: %w", id, err)
	}
	if affected == 0 {
		return fmt.Errorf("bid %s: %w", id, ErrNotFound)
	}
	return nil
}
