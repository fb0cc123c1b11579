package dto

import (
	"github.com/SscSPs/fx_deal_system/internal/core/domain"
	"github.com/shopspring/decimal"
)

// DealRequest defines the data needed to import a deal.
// Binding tags cover the transport shape only; business rules live in the deal validator.
type DealRequest struct {
	DealUniqueID        string           `json:"dealUniqueId" binding:"required,notblank"`
	FromCurrencyISOCode string           `json:"fromCurrencyIsoCode" binding:"required,notblank,len=3"`
	ToCurrencyISOCode   string           `json:"toCurrencyIsoCode" binding:"required,notblank,len=3"`
	DealTimestamp       *DealTime        `json:"dealTimestamp" binding:"required"`
	DealAmount          *decimal.Decimal `json:"dealAmount" binding:"required"`
}

// DealResponse defines the data returned for a deal operation.
// On a failed bulk item only ID (null), DealUniqueID, Status and Message are set.
type DealResponse struct {
	ID                  *int64            `json:"id"`
	DealUniqueID        string            `json:"dealUniqueId"`
	Status              domain.DealStatus `json:"status"`
	Message             string            `json:"message"`
	FromCurrencyISOCode string            `json:"fromCurrencyIsoCode,omitempty"`
	ToCurrencyISOCode   string            `json:"toCurrencyIsoCode,omitempty"`
	DealTimestamp       *DealTime         `json:"dealTimestamp,omitempty"`
	DealAmount          *decimal.Decimal  `json:"dealAmount,omitempty"`
	CreatedAt           *DealTime         `json:"createdAt,omitempty"`
}

// ToDealResponse converts a domain.Deal to a SUCCESS DealResponse carrying message.
func ToDealResponse(deal *domain.Deal, message string) DealResponse {
	id := deal.ID
	amount := deal.DealAmount
	return DealResponse{
		ID:                  &id,
		DealUniqueID:        deal.DealUniqueID,
		Status:              domain.DealStatusSuccess,
		Message:             message,
		FromCurrencyISOCode: deal.FromCurrencyISOCode,
		ToCurrencyISOCode:   deal.ToCurrencyISOCode,
		DealTimestamp:       NewDealTime(deal.DealTimestamp),
		DealAmount:          &amount,
		CreatedAt:           NewDealTime(deal.CreatedAt),
	}
}

// ToListDealResponse converts a slice of domain.Deal to a slice of DealResponse DTOs
func ToListDealResponse(deals []domain.Deal, message string) []DealResponse {
	res := make([]DealResponse, len(deals))
	for i := range deals {
		res[i] = ToDealResponse(&deals[i], message)
	}
	return res
}

// NewFailedDealResponse builds the FAILED entry reported for a rejected bulk item.
func NewFailedDealResponse(dealUniqueID, message string) DealResponse {
	return DealResponse{
		ID:           nil,
		DealUniqueID: dealUniqueID,
		Status:       domain.DealStatusFailed,
		Message:      message,
	}
}
