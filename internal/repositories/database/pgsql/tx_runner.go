package pgsql

import (
	"context"
	"log/slog"

	portsrepo "github.com/SscSPs/fx_deal_system/internal/core/ports/repositories"
	"github.com/SscSPs/fx_deal_system/internal/middleware"
)

// PgxTransactionRunner runs units of work in fresh transactions opened by a TransactionManager.
type PgxTransactionRunner struct {
	txManager portsrepo.TransactionManager
}

// newPgxTransactionRunner creates a transaction runner on top of txManager.
func newPgxTransactionRunner(txManager portsrepo.TransactionManager) *PgxTransactionRunner {
	return &PgxTransactionRunner{txManager: txManager}
}

var _ portsrepo.TransactionRunner = (*PgxTransactionRunner)(nil)

// RunInNewTx always begins a new transaction, even when ctx already carries one,
// so the outcome of fn never depends on, or affects, an enclosing transaction.
func (r *PgxTransactionRunner) RunInNewTx(ctx context.Context, fn func(ctx context.Context) error) (err error) {
	tx, err := r.txManager.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		p := recover()
		if p == nil && err == nil {
			return
		}
		// Roll back even when the caller's context is already cancelled.
		if rbErr := r.txManager.Rollback(context.WithoutCancel(ctx), tx); rbErr != nil {
			middleware.GetLoggerFromCtx(ctx).Error("Failed to roll back transaction", slog.String("error", rbErr.Error()))
		}
		if p != nil {
			panic(p)
		}
	}()

	if err = fn(withTx(ctx, tx)); err != nil {
		return err
	}
	return r.txManager.Commit(ctx, tx)
}
