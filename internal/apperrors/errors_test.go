package apperrors_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/SscSPs/fx_deal_system/internal/apperrors"
	"github.com/stretchr/testify/assert"
)

func TestAppError_KindsAndCauses(t *testing.T) {
	cause := fmt.Errorf("%w: chk_deals_amount_positive", apperrors.ErrIntegrityViolation)
	err := fmt.Errorf("save: %w", apperrors.NewIntegrityViolationError("Deal data violates a storage constraint", cause))

	assert.True(t, errors.Is(err, apperrors.ErrIntegrityViolation))
	assert.False(t, errors.Is(err, apperrors.ErrInvalidDeal))

	var appErr *apperrors.AppError
	assert.True(t, errors.As(err, &appErr))
	assert.Equal(t, "Deal data violates a storage constraint", appErr.Error())
	assert.Equal(t, cause, errors.Unwrap(appErr))
}

func TestNewDuplicateDealError(t *testing.T) {
	err := apperrors.NewDuplicateDealError("DEAL-1")

	assert.EqualError(t, err, "Deal with ID DEAL-1 already exists")
	assert.True(t, errors.Is(err, apperrors.ErrDuplicateDeal))
	assert.False(t, errors.Is(err, apperrors.ErrDuplicate))
}

func TestNewInvalidDealErrorf(t *testing.T) {
	cause := errors.New("disk full")
	err := apperrors.NewInvalidDealErrorf(cause, "Invalid deal data: %s", cause.Error())

	assert.EqualError(t, err, "Invalid deal data: disk full")
	assert.True(t, errors.Is(err, apperrors.ErrInvalidDeal))
	assert.True(t, errors.Is(err, cause))
}

func TestValidationErrors(t *testing.T) {
	err := apperrors.ValidationErrors{
		"toCurrencyIsoCode":   "toCurrencyIsoCode is required",
		"dealAmount":          "dealAmount is required",
		"fromCurrencyIsoCode": "fromCurrencyIsoCode must be 3 letters",
	}

	assert.Equal(t,
		"validation failed: dealAmount: dealAmount is required; fromCurrencyIsoCode: fromCurrencyIsoCode must be 3 letters; toCurrencyIsoCode: toCurrencyIsoCode is required",
		err.Error())
	assert.True(t, errors.Is(err, apperrors.ErrValidation))

	var fields apperrors.ValidationErrors
	assert.True(t, errors.As(fmt.Errorf("bind: %w", err), &fields))
	assert.Len(t, fields, 3)
}
