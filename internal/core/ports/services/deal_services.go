package services

import (
	"context"

	"github.com/SscSPs/fx_deal_system/internal/dto"
)

// DealImporterSvc defines the single-deal import workflow
type DealImporterSvc interface {
	// ImportDeal validates, deduplicates and persists one deal.
	// Fails with apperrors.ErrInvalidDeal or apperrors.ErrDuplicateDeal.
	ImportDeal(ctx context.Context, req dto.DealRequest) (*dto.DealResponse, error)
}

// DealBulkImporterSvc defines the batch import workflow
type DealBulkImporterSvc interface {
	// ImportDeals imports every request independently. The result has the same length and
	// order as reqs; failed items are tagged FAILED instead of failing the call.
	ImportDeals(ctx context.Context, reqs []dto.DealRequest) []dto.DealResponse
}

// DealReaderSvc defines read operations for deal data
type DealReaderSvc interface {
	// GetDealByUniqueID retrieves a deal by its business key.
	GetDealByUniqueID(ctx context.Context, dealUniqueID string) (*dto.DealResponse, error)

	// ListDeals retrieves every stored deal.
	ListDeals(ctx context.Context) ([]dto.DealResponse, error)
}

// DealSvcFacade combines all deal-related service interfaces
type DealSvcFacade interface {
	DealImporterSvc
	DealBulkImporterSvc
	DealReaderSvc
}
