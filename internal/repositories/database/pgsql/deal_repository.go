package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/SscSPs/fx_deal_system/internal/apperrors"
	"github.com/SscSPs/fx_deal_system/internal/core/domain"
	portsrepo "github.com/SscSPs/fx_deal_system/internal/core/ports/repositories"
	"github.com/SscSPs/fx_deal_system/internal/dto"
	"github.com/SscSPs/fx_deal_system/internal/models"
	"github.com/SscSPs/fx_deal_system/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	pgUniqueViolation         = "23505"
	pgIntegrityViolationClass = "23"
)

const dealColumns = `id, deal_unique_id, from_currency_iso_code, to_currency_iso_code, deal_timestamp, deal_amount, created_at`

// PgxDealRepository implements the deal repository ports using pgxpool.
type PgxDealRepository struct {
	BaseRepository
	now func() time.Time
}

// newPgxDealRepository creates a new repository for deal data.
func newPgxDealRepository(pool *pgxpool.Pool) portsrepo.DealRepositoryFacade {
	return &PgxDealRepository{
		BaseRepository: BaseRepository{Pool: pool},
		now:            time.Now,
	}
}

// Ensure implementation matches interface
var _ portsrepo.DealRepositoryFacade = (*PgxDealRepository)(nil)

// ExistsByDealUniqueID reports whether a deal with the given business key is stored.
func (r *PgxDealRepository) ExistsByDealUniqueID(ctx context.Context, dealUniqueID string) (bool, error) {
	var exists bool
	err := r.conn(ctx).QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM deals WHERE deal_unique_id = $1);`,
		dealUniqueID,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check deal %s existence: %w", dealUniqueID, err)
	}
	return exists, nil
}

// SaveDeal inserts a new deal; the ID comes from the sequence and CreatedAt is stamped here.
func (r *PgxDealRepository) SaveDeal(ctx context.Context, deal domain.Deal) (*domain.Deal, error) {
	modelDeal := mapping.ToModelDeal(deal)
	if modelDeal.CreatedAt.IsZero() {
		modelDeal.CreatedAt = r.now().In(dto.DealTimeLocation())
	}

	query := `
		INSERT INTO deals (deal_unique_id, from_currency_iso_code, to_currency_iso_code, deal_timestamp, deal_amount, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at;
	`
	err := r.conn(ctx).QueryRow(ctx, query,
		modelDeal.DealUniqueID,
		modelDeal.FromCurrencyISOCode,
		modelDeal.ToCurrencyISOCode,
		modelDeal.DealTimestamp,
		modelDeal.DealAmount,
		modelDeal.CreatedAt,
	).Scan(&modelDeal.ID, &modelDeal.CreatedAt)
	if err != nil {
		return nil, translateWriteError(err, modelDeal.DealUniqueID)
	}

	saved := mapping.ToDomainDeal(modelDeal)
	return &saved, nil
}

// translateWriteError maps PostgreSQL constraint violations onto apperrors sentinels.
func translateWriteError(err error, dealUniqueID string) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == pgUniqueViolation {
			return fmt.Errorf("%w: deal with unique ID %s already exists (%s)", apperrors.ErrDuplicate, dealUniqueID, pgErr.ConstraintName)
		}
		if strings.HasPrefix(pgErr.Code, pgIntegrityViolationClass) {
			return fmt.Errorf("%w: %s", apperrors.ErrIntegrityViolation, pgErr.Message)
		}
	}
	return fmt.Errorf("failed to save deal %s: %w", dealUniqueID, err)
}

// FindDealByUniqueID retrieves a deal by its business key.
func (r *PgxDealRepository) FindDealByUniqueID(ctx context.Context, dealUniqueID string) (*domain.Deal, error) {
	query := `SELECT ` + dealColumns + ` FROM deals WHERE deal_unique_id = $1;`

	var modelDeal models.Deal
	err := r.conn(ctx).QueryRow(ctx, query, dealUniqueID).Scan(
		&modelDeal.ID,
		&modelDeal.DealUniqueID,
		&modelDeal.FromCurrencyISOCode,
		&modelDeal.ToCurrencyISOCode,
		&modelDeal.DealTimestamp,
		&modelDeal.DealAmount,
		&modelDeal.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find deal by unique ID %s: %w", dealUniqueID, err)
	}

	domainDeal := mapping.ToDomainDeal(modelDeal)
	return &domainDeal, nil
}

// ListDeals retrieves all deals ordered by ID.
func (r *PgxDealRepository) ListDeals(ctx context.Context) ([]domain.Deal, error) {
	query := `SELECT ` + dealColumns + ` FROM deals ORDER BY id;`

	rows, err := r.conn(ctx).Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query deals: %w", err)
	}
	defer rows.Close()

	modelDeals, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Deal, error) {
		var deal models.Deal
		err := row.Scan(
			&deal.ID,
			&deal.DealUniqueID,
			&deal.FromCurrencyISOCode,
			&deal.ToCurrencyISOCode,
			&deal.DealTimestamp,
			&deal.DealAmount,
			&deal.CreatedAt,
		)
		return deal, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan deals: %w", err)
	}

	return mapping.ToDomainDealSlice(modelDeals), nil
}
