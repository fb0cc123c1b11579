package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DealStatus tags the outcome of a deal operation in a response.
type DealStatus string

const (
	DealStatusSuccess DealStatus = "SUCCESS"
	DealStatusFailed  DealStatus = "FAILED"
)

// Deal represents a persisted foreign-exchange deal.
type Deal struct {
	ID                  int64           `json:"id"`                  // Primary Key, assigned by storage
	DealUniqueID        string          `json:"dealUniqueId"`        // Business key (Unique, Not Null)
	FromCurrencyISOCode string          `json:"fromCurrencyIsoCode"` // ISO 4217, uppercase
	ToCurrencyISOCode   string          `json:"toCurrencyIsoCode"`   // ISO 4217, uppercase
	DealTimestamp       time.Time       `json:"dealTimestamp"`       // Wall-clock time of the deal
	DealAmount          decimal.Decimal `json:"dealAmount"`          // Strictly positive
	CreatedAt           time.Time       `json:"createdAt"`           // Assigned by storage on insert
}

// CurrencyPair returns the deal's currency pair formatted as FROM/TO.
func (d Deal) CurrencyPair() string {
	return d.FromCurrencyISOCode + "/" + d.ToCurrencyISOCode
}
