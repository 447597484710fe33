package sqlite

import (
	"context"
	"database/sql"
	"fmt"
)

// kvTx groups key writes so a board is never half-saved
type kvTx struct {
	tx *sql.Tx
}

func (s *Store) beginTx(ctx context.Context) (*kvTx, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	return &kvTx{tx: tx}, nil
}

// put inserts or replaces a key
func (t *kvTx) put(ctx context.Context, key string, value []byte) error {
	if value == nil {
		value = []byte{}
	}
	_, err := t.tx.ExecContext(ctx, `
		INSERT OR REPLACE INTO kv (key, value, updated_at)
		VALUES (?, ?, CURRENT_TIMESTAMP)
	`, key, value)
	return err
}

// commit commits the transaction
func (t *kvTx) commit() error {
	return t.tx.Commit()
}

// rollback aborts the transaction
func (t *kvTx) rollback() error {
	return t.tx.Rollback()
}
