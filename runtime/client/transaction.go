package client

import (
	"context"
	"database/sql"
	"fmt"
)

// TxFunc runs inside a database transaction.
type TxFunc func(tx *sql.Tx) error

// Transaction runs fn inside a transaction on db. The transaction is
// rolled back if fn returns an error or panics, and committed otherwise.
func Transaction(ctx context.Context, db *sql.DB, fn TxFunc) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
	}()

	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("transaction error: %v, rollback error: %w", err, rbErr)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// Transaction runs fn inside a transaction on the client's connection.
func (c *Client) Transaction(ctx context.Context, fn TxFunc) error {
	return Transaction(ctx, c.db, fn)
}
