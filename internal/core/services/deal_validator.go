package services

import (
	"strings"
	"time"

	"github.com/SscSPs/fx_deal_system/internal/apperrors"
	"github.com/SscSPs/fx_deal_system/internal/core/domain"
	"github.com/SscSPs/fx_deal_system/internal/dto"
)

// DealValidator checks the business validity of a deal request before any storage access.
// Checks run in a fixed order and the first failure wins.
type DealValidator struct {
	now func() time.Time
}

// NewDealValidator creates a DealValidator; now defaults to time.Now.
func NewDealValidator(now func() time.Time) *DealValidator {
	if now == nil {
		now = time.Now
	}
	return &DealValidator{now: now}
}

// Validate returns an apperrors.ErrInvalidDeal error describing the first failed check, or nil.
func (v *DealValidator) Validate(req dto.DealRequest) error {
	if err := validateMandatoryFields(req); err != nil {
		return err
	}
	if err := validateCurrencyCodes(req.FromCurrencyISOCode, req.ToCurrencyISOCode); err != nil {
		return err
	}
	if strings.EqualFold(req.FromCurrencyISOCode, req.ToCurrencyISOCode) {
		return apperrors.NewInvalidDealError("From and To currencies must be different")
	}
	if req.DealAmount == nil || !req.DealAmount.IsPositive() {
		return apperrors.NewInvalidDealError("Deal amount must be positive")
	}
	if req.DealTimestamp != nil && req.DealTimestamp.After(v.now()) {
		return apperrors.NewInvalidDealError("Deal timestamp cannot be in the future")
	}
	return nil
}

func validateMandatoryFields(req dto.DealRequest) error {
	switch {
	case isBlank(req.DealUniqueID):
		return apperrors.NewInvalidDealError("Deal unique ID is required")
	case isBlank(req.FromCurrencyISOCode):
		return apperrors.NewInvalidDealError("From currency ISO code is required")
	case isBlank(req.ToCurrencyISOCode):
		return apperrors.NewInvalidDealError("To currency ISO code is required")
	case req.DealAmount == nil:
		return apperrors.NewInvalidDealError("Deal amount is required")
	case req.DealTimestamp == nil:
		return apperrors.NewInvalidDealError("Deal timestamp is required")
	}
	return nil
}

// validateCurrencyCodes runs each check over both codes before moving to the next check:
// shape, then the deny-list, then ISO table membership. Errors echo the code as submitted.
func validateCurrencyCodes(codes ...string) error {
	checks := []func(string) bool{
		domain.IsWellFormedCurrencyCode,
		func(code string) bool { return !domain.IsDeniedCurrencyCode(code) },
		domain.IsKnownCurrencyCode,
	}
	for _, ok := range checks {
		for _, code := range codes {
			if !ok(code) {
				return apperrors.NewInvalidDealError("Invalid currency ISO code: " + code)
			}
		}
	}
	return nil
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
