package model

import "strings"

// DefaultCurrency is used when no display currency
// has been persisted yet
const DefaultCurrency = "usd"

// CurrencyKey is the preference key the display
// currency is persisted under
const CurrencyKey = "displayCurrency"

// unexported type to disable any new types
type currency string

const (
	Fiat   currency = currency("FIAT")   // Fiat represents physical currency
	Crypto currency = currency("CRYPTO") // Crypto represents crypto currency
)

// Currency holds information
// on a display currency
type Currency struct {
	Code         string   // Lower case code, as used by the rates API
	Symbol       string   // Symbol used when rendering amounts
	Precision    int32    // Digits after the decimal point
	CurrencyType currency // Currency type
}

// ExchangeRateTable maps a currency code
// to the rate of one base coin in that currency
type ExchangeRateTable map[string]float64

// SupportedCurrencies lists the display currencies
// the views know how to render
var SupportedCurrencies = []Currency{
	{Code: "usd", Symbol: "$", Precision: 2, CurrencyType: Fiat},
	{Code: "eur", Symbol: "€", Precision: 2, CurrencyType: Fiat},
	{Code: "gbp", Symbol: "£", Precision: 2, CurrencyType: Fiat},
	{Code: "jpy", Symbol: "¥", Precision: 0, CurrencyType: Fiat},
	{Code: "cny", Symbol: "¥", Precision: 2, CurrencyType: Fiat},
	{Code: "cad", Symbol: "$", Precision: 2, CurrencyType: Fiat},
	{Code: "aud", Symbol: "$", Precision: 2, CurrencyType: Fiat},
	{Code: "rub", Symbol: "₽", Precision: 2, CurrencyType: Fiat},
	{Code: "btc", Symbol: "BTC", Precision: 8, CurrencyType: Crypto},
	{Code: "eth", Symbol: "ETH", Precision: 6, CurrencyType: Crypto},
	{Code: "sc", Symbol: "SC", Precision: 2, CurrencyType: Crypto},
}

// LookupCurrency returns the supported currency for code.
func LookupCurrency(code string) (Currency, bool) {
	code = strings.ToLower(code)

	for _, c := range SupportedCurrencies {
		if c.Code == code {
			return c, true
		}
	}

	return Currency{}, false
}

// CurrencyCodes returns the codes of all supported currencies
func CurrencyCodes() []string {
	codes := make([]string, 0, len(SupportedCurrencies))
	for _, c := range SupportedCurrencies {
		codes = append(codes, c.Code)
	}

	return codes
}
