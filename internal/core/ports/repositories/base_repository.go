package repositories

import (
	"context"

	"github.com/jackc/pgx/v5"
)

// TransactionManager defines methods for transaction management
type TransactionManager interface {
	// Begin starts a new database transaction
	Begin(ctx context.Context) (pgx.Tx, error)

	// Commit commits a transaction
	Commit(ctx context.Context, tx pgx.Tx) error

	// Rollback rolls back a transaction
	Rollback(ctx context.Context, tx pgx.Tx) error
}

// TransactionRunner runs a unit of work inside its own transaction.
type TransactionRunner interface {
	// RunInNewTx always starts a new transaction, independent of any transaction already
	// carried by ctx. The transaction commits when fn returns nil and rolls back otherwise.
	// Repositories called with the ctx handed to fn take part in that transaction.
	RunInNewTx(ctx context.Context, fn func(ctx context.Context) error) error
}
