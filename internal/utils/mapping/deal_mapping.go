package mapping

import (
	"strings"
	"time"

	"github.com/SscSPs/fx_deal_system/internal/core/domain"
	"github.com/SscSPs/fx_deal_system/internal/dto"
	"github.com/SscSPs/fx_deal_system/internal/models"
)

// ToModelDeal converts a domain Deal to a model Deal
func ToModelDeal(d domain.Deal) models.Deal {
	return models.Deal{
		ID:                  d.ID,
		DealUniqueID:        d.DealUniqueID,
		FromCurrencyISOCode: d.FromCurrencyISOCode,
		ToCurrencyISOCode:   d.ToCurrencyISOCode,
		DealTimestamp:       d.DealTimestamp,
		DealAmount:          d.DealAmount,
		CreatedAt:           d.CreatedAt,
	}
}

// ToDomainDeal converts a model Deal to a domain Deal.
// TIMESTAMP columns come back without a zone, so their wall clock is re-read in the deal time location.
func ToDomainDeal(m models.Deal) domain.Deal {
	return domain.Deal{
		ID:                  m.ID,
		DealUniqueID:        m.DealUniqueID,
		FromCurrencyISOCode: strings.TrimSpace(m.FromCurrencyISOCode),
		ToCurrencyISOCode:   strings.TrimSpace(m.ToCurrencyISOCode),
		DealTimestamp:       inDealLocation(m.DealTimestamp),
		DealAmount:          m.DealAmount,
		CreatedAt:           inDealLocation(m.CreatedAt),
	}
}

// ToDomainDealSlice converts a slice of model Deals to a slice of domain Deals
func ToDomainDealSlice(ms []models.Deal) []domain.Deal {
	ds := make([]domain.Deal, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainDeal(m)
	}
	return ds
}

// DealRequestToDomain builds the entity to persist from a validated request.
// Currency codes are normalized to uppercase; ID and CreatedAt are left for storage to assign.
func DealRequestToDomain(req dto.DealRequest) domain.Deal {
	deal := domain.Deal{
		DealUniqueID:        req.DealUniqueID,
		FromCurrencyISOCode: domain.NormalizeCurrencyCode(req.FromCurrencyISOCode),
		ToCurrencyISOCode:   domain.NormalizeCurrencyCode(req.ToCurrencyISOCode),
	}
	if req.DealTimestamp != nil {
		deal.DealTimestamp = req.DealTimestamp.Time
	}
	if req.DealAmount != nil {
		deal.DealAmount = *req.DealAmount
	}
	return deal
}

func inDealLocation(t time.Time) time.Time {
	if t.IsZero() {
		return t
	}
	loc := dto.DealTimeLocation()
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), loc)
}
