package domain

import (
	"regexp"
	"strings"

	"golang.org/x/text/currency"
)

// NoCurrencyCode is the ISO 4217 placeholder for "no currency involved".
// It is well-formed and present in the ISO table but is never accepted on a deal.
const NoCurrencyCode = "XXX"

var isoCodeShape = regexp.MustCompile(`^[A-Z]{3}$`)

// deniedCurrencyCodes are rejected on top of ISO table membership.
var deniedCurrencyCodes = map[string]struct{}{
	NoCurrencyCode: {},
}

// NormalizeCurrencyCode uppercases a currency code for comparison and storage.
func NormalizeCurrencyCode(code string) string {
	return strings.ToUpper(code)
}

// IsWellFormedCurrencyCode reports whether the uppercased code is exactly three Latin letters.
func IsWellFormedCurrencyCode(code string) bool {
	return isoCodeShape.MatchString(NormalizeCurrencyCode(code))
}

// IsDeniedCurrencyCode reports whether the code is explicitly disallowed (e.g. XXX).
func IsDeniedCurrencyCode(code string) bool {
	_, denied := deniedCurrencyCodes[NormalizeCurrencyCode(code)]
	return denied
}

// IsKnownCurrencyCode reports whether the code is present in the ISO 4217 table.
func IsKnownCurrencyCode(code string) bool {
	normalized := NormalizeCurrencyCode(code)
	if !isoCodeShape.MatchString(normalized) {
		return false
	}
	unit, err := currency.ParseISO(normalized)
	if err != nil {
		return false
	}
	return unit.String() == normalized
}

// IsActiveCurrencyCode combines the shape, deny-list and table membership checks.
func IsActiveCurrencyCode(code string) bool {
	return IsWellFormedCurrencyCode(code) && !IsDeniedCurrencyCode(code) && IsKnownCurrencyCode(code)
}

// CurrencyScale returns the number of minor-unit digits of an ISO 4217 code (2 for USD, 0 for JPY).
func CurrencyScale(code string) (int, bool) {
	unit, err := currency.ParseISO(NormalizeCurrencyCode(code))
	if err != nil {
		return 0, false
	}
	scale, _ := currency.Standard.Rounding(unit)
	return scale, true
}
