package repository

import (
	"context"
	"database/sql"
)

// DBTX abstracts *sqlx.DB and *sqlx.Tx for repository use, so the same
// adapter methods run inside or outside a transaction.
type DBTX interface {
	GetContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
}
