package utils_test

import (
	"testing"

	"github.com/SscSPs/fx_deal_system/internal/utils"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormatWithCurrencyPrecision(t *testing.T) {
	amount := decimal.RequireFromString("12.3456")

	assert.Equal(t, "12.35", utils.FormatWithCurrencyPrecision(amount, "USD"))
	assert.Equal(t, "12", utils.FormatWithCurrencyPrecision(amount, "jpy"))
	assert.Equal(t, "12.346", utils.FormatWithCurrencyPrecision(amount, "KWD"))
	assert.Equal(t, "1000.50", utils.FormatWithCurrencyPrecision(decimal.RequireFromString("1000.5"), "EUR"))
	assert.Equal(t, "12.3456", utils.FormatWithCurrencyPrecision(amount, "QQQ"))
}
