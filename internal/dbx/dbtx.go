// Package dbx holds the small database/sql plumbing shared by the server
// repositories and the client cache.
package dbx

import (
	"context"
	"database/sql"
)

// DBTX is the querying surface repositories depend on. Both *sql.DB and
// *sql.Tx implement it, so the same repository code runs inside and
// outside a transaction.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// WithTx runs fn inside a transaction: commit when fn returns nil, roll
// back when it returns an error or panics. Panics are rethrown after the
// rollback.
//
//	err := dbx.WithTx(ctx, db, nil, func(ctx context.Context, tx dbx.DBTX) error {
//	    if _, err := tx.ExecContext(ctx, "DELETE FROM bookmarks"); err != nil {
//	        return err
//	    }
//	    return insertAll(ctx, tx, items)
//	})
func WithTx(ctx context.Context, db *sql.DB, opts *sql.TxOptions, fn func(ctx context.Context, tx DBTX) error) (err error) {
	tx, err := db.BeginTx(ctx, opts)
	if err != nil {
		return err
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
		if err != nil {
			_ = tx.Rollback()
			return
		}
		err = tx.Commit()
	}()

	err = fn(ctx, tx)
	return err
}
