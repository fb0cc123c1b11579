package utils

import (
	"github.com/SscSPs/fx_deal_system/internal/core/domain"
	"github.com/shopspring/decimal"
)

// FormatWithCurrencyPrecision formats an amount with the minor-unit precision of an ISO 4217 code
// Example: amount 12.3456 with USD (precision 2) returns "12.35"
// Example: amount 12.3456 with JPY (precision 0) returns "12"
// Codes outside the ISO table are formatted without rounding.
func FormatWithCurrencyPrecision(amount decimal.Decimal, currencyCode string) string {
	scale, ok := domain.CurrencyScale(currencyCode)
	if !ok {
		return amount.String()
	}
	return amount.StringFixed(int32(scale))
}
