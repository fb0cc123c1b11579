package pgsql

import (
	portsrepo "github.com/SscSPs/fx_deal_system/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider wires every pgx-backed repository onto dbPool.
func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		DealRepo: newPgxDealRepository(dbPool),
		TxRunner: newPgxTransactionRunner(&BaseRepository{Pool: dbPool}),
	}
}
