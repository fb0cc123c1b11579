package validation_test

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/SscSPs/fx_deal_system/internal/apperrors"
	"github.com/SscSPs/fx_deal_system/internal/dto"
	"github.com/SscSPs/fx_deal_system/internal/platform/validation"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validRequest() dto.DealRequest {
	amount := decimal.RequireFromString("1000.50")
	return dto.DealRequest{
		DealUniqueID:        "DEAL-1",
		FromCurrencyISOCode: "USD",
		ToCurrencyISOCode:   "EUR",
		DealTimestamp:       dto.NewDealTime(time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)),
		DealAmount:          &amount,
	}
}

func TestValidateStruct_Valid(t *testing.T) {
	v, err := validation.New()
	require.NoError(t, err)

	assert.NoError(t, v.ValidateStruct(validRequest()))
}

func TestValidateStruct_FieldMessages(t *testing.T) {
	v, err := validation.New()
	require.NoError(t, err)

	req := validRequest()
	req.DealUniqueID = "   "
	req.FromCurrencyISOCode = "US"
	req.DealAmount = nil

	err = v.ValidateStruct(req)
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrValidation))

	var fields apperrors.ValidationErrors
	require.True(t, errors.As(err, &fields))
	assert.Equal(t, "dealUniqueId is required", fields["dealUniqueId"])
	assert.Equal(t, "fromCurrencyIsoCode must be 3 letters", fields["fromCurrencyIsoCode"])
	assert.Equal(t, "dealAmount is required", fields["dealAmount"])
	assert.NotContains(t, fields, "toCurrencyIsoCode")
}

func TestFieldErrors_JSONTypeMismatch(t *testing.T) {
	var req dto.DealRequest
	err := json.Unmarshal([]byte(`{"dealUniqueId": 42}`), &req)
	require.Error(t, err)

	fields, ok := validation.FieldErrors(err)
	require.True(t, ok)
	assert.Contains(t, fields["dealUniqueId"], "invalid type")
}

func TestFieldErrors_NoFieldInformation(t *testing.T) {
	_, ok := validation.FieldErrors(errors.New("boom"))
	assert.False(t, ok)
}
