package domain_test

import (
	"testing"

	"github.com/SscSPs/fx_deal_system/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestIsWellFormedCurrencyCode(t *testing.T) {
	tests := []struct {
		code string
		want bool
	}{
		{"USD", true},
		{"usd", true},
		{"eUr", true},
		{"US", false},
		{"USDT", false},
		{"U1D", false},
		{"", false},
		{"ÜSD", false},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			assert.Equal(t, tt.want, domain.IsWellFormedCurrencyCode(tt.code))
		})
	}
}

func TestIsActiveCurrencyCode(t *testing.T) {
	tests := []struct {
		name string
		code string
		want bool
	}{
		{name: "us dollar", code: "USD", want: true},
		{name: "euro lowercase", code: "eur", want: true},
		{name: "jordanian dinar", code: "JOD", want: true},
		{name: "japanese yen", code: "JPY", want: true},
		{name: "no currency placeholder", code: "XXX", want: false},
		{name: "no currency placeholder lowercase", code: "xxx", want: false},
		{name: "unknown code", code: "QQQ", want: false},
		{name: "malformed", code: "US", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, domain.IsActiveCurrencyCode(tt.code))
		})
	}
}

func TestIsDeniedCurrencyCode(t *testing.T) {
	assert.True(t, domain.IsDeniedCurrencyCode("XXX"))
	assert.True(t, domain.IsDeniedCurrencyCode("xXx"))
	assert.False(t, domain.IsDeniedCurrencyCode("USD"))
}

func TestDeal_CurrencyPair(t *testing.T) {
	d := domain.Deal{FromCurrencyISOCode: "USD", ToCurrencyISOCode: "EUR"}
	assert.Equal(t, "USD/EUR", d.CurrencyPair())
}

func TestCurrencyScale(t *testing.T) {
	scale, ok := domain.CurrencyScale("USD")
	assert.True(t, ok)
	assert.Equal(t, 2, scale)

	scale, ok = domain.CurrencyScale("jpy")
	assert.True(t, ok)
	assert.Equal(t, 0, scale)

	_, ok = domain.CurrencyScale("QQQ")
	assert.False(t, ok)
}
