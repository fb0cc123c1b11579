package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Deal is the row stored in the deals table.
type Deal struct {
	ID                  int64           `db:"id"`
	DealUniqueID        string          `db:"deal_unique_id"`
	FromCurrencyISOCode string          `db:"from_currency_iso_code"`
	ToCurrencyISOCode   string          `db:"to_currency_iso_code"`
	DealTimestamp       time.Time       `db:"deal_timestamp"`
	DealAmount          decimal.Decimal `db:"deal_amount"`
	CreatedAt           time.Time       `db:"created_at"`
}
