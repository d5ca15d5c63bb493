package model

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestHastingsToSC(t *testing.T) {
	sc := HastingsToSC(decimal.RequireFromString("2500000000000000000000000"))
	assert.Equal(t, "2.5", sc.String())
}

func TestConvert(t *testing.T) {
	amount := Convert(decimal.RequireFromString("1000000000000000000000000"), 0.004)
	assert.Equal(t, "0.004", amount.String())
}

func TestStoragePerTBMonth(t *testing.T) {
	price := StoragePerTBMonth(decimal.NewFromInt(100000000))
	assert.Equal(t, "0.432", HastingsToSC(price).String())
}

func TestBandwidthPerTB(t *testing.T) {
	price := BandwidthPerTB(decimal.NewFromInt(25000000000000))
	assert.Equal(t, "25", HastingsToSC(price).String())
}

func TestFormat(t *testing.T) {
	tests := []struct {
		code   string
		amount string
		want   string
	}{
		{"usd", "12.3456", "$12.35"},
		{"eur", "0.5", "€0.50"},
		{"jpy", "1234.5", "¥1235"},
		{"btc", "0.000012345", "0.00001235 BTC"},
		{"sc", "1.5", "1.50 SC"},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			c, ok := LookupCurrency(tt.code)
			assert.True(t, ok)
			assert.Equal(t, tt.want, Format(decimal.RequireFromString(tt.amount), c))
		})
	}
}

func TestLookupCurrency(t *testing.T) {
	c, ok := LookupCurrency("GBP")
	assert.True(t, ok)
	assert.Equal(t, "gbp", c.Code)
	assert.Equal(t, Fiat, c.CurrencyType)

	_, ok = LookupCurrency("doge")
	assert.False(t, ok)
}

func TestCurrencyCodes(t *testing.T) {
	codes := CurrencyCodes()
	assert.Len(t, codes, len(SupportedCurrencies))
	assert.Equal(t, DefaultCurrency, codes[0])
}
