package repositories

import (
	"context"

	"github.com/SscSPs/fx_deal_system/internal/core/domain"
)

// DealReader defines read operations for deal data
type DealReader interface {
	// ExistsByDealUniqueID reports whether a deal with the given business key is stored.
	ExistsByDealUniqueID(ctx context.Context, dealUniqueID string) (bool, error)

	// FindDealByUniqueID retrieves a deal by its business key.
	// Returns apperrors.ErrNotFound when no deal matches.
	FindDealByUniqueID(ctx context.Context, dealUniqueID string) (*domain.Deal, error)

	// ListDeals retrieves every stored deal ordered by ID.
	ListDeals(ctx context.Context) ([]domain.Deal, error)
}

// DealWriter defines write operations for deal data
type DealWriter interface {
	// SaveDeal inserts a new deal and returns it with the storage-assigned ID and CreatedAt.
	// A unique-key conflict is reported as apperrors.ErrDuplicate.
	SaveDeal(ctx context.Context, deal domain.Deal) (*domain.Deal, error)
}

// DealRepositoryFacade combines all deal-related repository interfaces
type DealRepositoryFacade interface {
	DealReader
	DealWriter
}
