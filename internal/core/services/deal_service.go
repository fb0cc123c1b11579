package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/fx_deal_system/internal/apperrors"
	"github.com/SscSPs/fx_deal_system/internal/core/domain"
	portsrepo "github.com/SscSPs/fx_deal_system/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/fx_deal_system/internal/core/ports/services"
	"github.com/SscSPs/fx_deal_system/internal/dto"
	"github.com/SscSPs/fx_deal_system/internal/utils/mapping"
)

const (
	// MessageDealImported is reported on a successful import.
	MessageDealImported = "Deal imported successfully"
	// MessageDealFetched is reported on every deal returned by a query.
	MessageDealFetched = "Deal fetched successfully"
	// MessageDealUnexpectedFailure replaces the reason of a bulk item that failed outside the deal error kinds.
	MessageDealUnexpectedFailure = "Deal could not be imported due to an unexpected error"
)

// dealService implements the DealSvcFacade interface
type dealService struct {
	BaseService
	dealRepo  portsrepo.DealRepositoryFacade
	txRunner  portsrepo.TransactionRunner
	now       func() time.Time
	validator *DealValidator
}

// DealServiceOption is a functional option for configuring the deal service
type DealServiceOption func(*dealService)

// WithTransactionRunner makes every save run in its own new transaction.
// Without it deals are saved directly through the repository.
func WithTransactionRunner(runner portsrepo.TransactionRunner) DealServiceOption {
	return func(s *dealService) {
		s.txRunner = runner
	}
}

// WithClock overrides the clock used for the non-future timestamp check.
func WithClock(now func() time.Time) DealServiceOption {
	return func(s *dealService) {
		s.now = now
	}
}

// NewDealService creates a new deal service with the provided options
func NewDealService(repo portsrepo.DealRepositoryFacade, options ...DealServiceOption) portssvc.DealSvcFacade {
	svc := &dealService{
		dealRepo: repo,
		now:      time.Now,
	}

	for _, option := range options {
		option(svc)
	}
	svc.validator = NewDealValidator(svc.now)

	return svc
}

// Ensure dealService implements the DealSvcFacade interface
var _ portssvc.DealSvcFacade = (*dealService)(nil)

func (s *dealService) ImportDeal(ctx context.Context, req dto.DealRequest) (*dto.DealResponse, error) {
	logAttr := slog.String("deal_unique_id", req.DealUniqueID)
	s.LogInfo(ctx, "Importing deal", logAttr)

	// Validation must finish before the repository is touched.
	if err := s.validator.Validate(req); err != nil {
		s.LogWarn(ctx, "Deal rejected by validation", logAttr, slog.String("reason", err.Error()))
		return nil, err
	}

	exists, err := s.dealRepo.ExistsByDealUniqueID(ctx, req.DealUniqueID)
	if err != nil {
		s.LogError(ctx, err, "Failed to check for an existing deal", logAttr)
		return nil, fmt.Errorf("failed to check deal existence in service: %w", err)
	}
	if exists {
		s.LogWarn(ctx, "Duplicate deal rejected", logAttr)
		return nil, apperrors.NewDuplicateDealError(req.DealUniqueID)
	}

	saved, err := s.persist(ctx, mapping.DealRequestToDomain(req))
	if err != nil {
		return nil, s.classifyPersistError(ctx, req.DealUniqueID, err)
	}
	if saved == nil {
		s.LogError(ctx, errors.New("repository returned no deal"), "Failed to save deal", logAttr)
		return nil, apperrors.NewInvalidDealError("Failed to persist deal to database")
	}

	s.LogInfo(ctx, "Deal imported", logAttr, slog.Int64("deal_id", saved.ID), slog.String("pair", saved.CurrencyPair()))
	resp := dto.ToDealResponse(saved, MessageDealImported)
	return &resp, nil
}

// persist saves deal in a new, independent transaction when a runner is configured.
// A panic raised while saving is turned into an error so one item cannot take down a batch.
func (s *dealService) persist(ctx context.Context, deal domain.Deal) (saved *domain.Deal, err error) {
	defer func() {
		if r := recover(); r != nil {
			saved, err = nil, fmt.Errorf("panic while saving deal: %v", r)
		}
	}()

	if s.txRunner == nil {
		return s.dealRepo.SaveDeal(ctx, deal)
	}

	err = s.txRunner.RunInNewTx(ctx, func(txCtx context.Context) error {
		var saveErr error
		saved, saveErr = s.dealRepo.SaveDeal(txCtx, deal)
		return saveErr
	})
	if err != nil {
		return nil, err
	}
	return saved, nil
}

// classifyPersistError maps storage failures onto the deal error taxonomy so that no
// storage-specific error reaches the caller.
func (s *dealService) classifyPersistError(ctx context.Context, dealUniqueID string, err error) error {
	logAttr := slog.String("deal_unique_id", dealUniqueID)
	switch {
	case errors.Is(err, apperrors.ErrDuplicate), errors.Is(err, apperrors.ErrDuplicateDeal):
		// Lost the race between the existence check and the insert.
		s.LogWarn(ctx, "Unique constraint rejected deal", logAttr, slog.String("error", err.Error()))
		return apperrors.NewDuplicateDealError(dealUniqueID)
	case errors.Is(err, apperrors.ErrIntegrityViolation):
		s.LogWarn(ctx, "Integrity violation while saving deal", logAttr, slog.String("error", err.Error()))
		return apperrors.NewIntegrityViolationError("Deal data violates a storage constraint", err)
	default:
		s.LogError(ctx, err, "Unexpected error while importing deal", logAttr)
		return apperrors.NewInvalidDealErrorf(err, "Invalid deal data: %s", err.Error())
	}
}

func (s *dealService) ImportDeals(ctx context.Context, reqs []dto.DealRequest) []dto.DealResponse {
	responses := make([]dto.DealResponse, 0, len(reqs))
	succeeded := 0

	for _, req := range reqs {
		resp, err := s.ImportDeal(ctx, req)
		if err != nil {
			s.LogDebug(ctx, "Bulk item failed", slog.String("deal_unique_id", req.DealUniqueID))
			responses = append(responses, dto.NewFailedDealResponse(req.DealUniqueID, bulkFailureMessage(err)))
			continue
		}
		succeeded++
		responses = append(responses, *resp)
	}

	s.LogInfo(ctx, "Bulk import finished",
		slog.Int("total", len(reqs)),
		slog.Int("succeeded", succeeded),
		slog.Int("failed", len(reqs)-succeeded))
	return responses
}

// bulkFailureMessage keeps the message of deal errors and hides the text of anything else.
func bulkFailureMessage(err error) string {
	for _, kind := range []error{apperrors.ErrInvalidDeal, apperrors.ErrDuplicateDeal, apperrors.ErrIntegrityViolation} {
		if errors.Is(err, kind) {
			return err.Error()
		}
	}
	return MessageDealUnexpectedFailure
}

func (s *dealService) GetDealByUniqueID(ctx context.Context, dealUniqueID string) (*dto.DealResponse, error) {
	if strings.TrimSpace(dealUniqueID) == "" {
		return nil, apperrors.NewInvalidDealError("Deal unique ID cannot be null or empty")
	}

	deal, err := s.dealRepo.FindDealByUniqueID(ctx, dealUniqueID)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to get deal by unique ID in service: %w", err)
	}
	if deal == nil {
		return nil, apperrors.NewInvalidDealError("Deal not found with ID: " + dealUniqueID)
	}

	resp := dto.ToDealResponse(deal, MessageDealFetched)
	return &resp, nil
}

func (s *dealService) ListDeals(ctx context.Context) ([]dto.DealResponse, error) {
	deals, err := s.dealRepo.ListDeals(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list deals in service: %w", err)
	}
	return dto.ToListDealResponse(deals, MessageDealFetched), nil
}
