package storage

import (
	"context"

	"github.com/kylycht/hoststats/model"
)

// Preferences interface describes a small
// persistent key/value storage for user preferences
type Preferences interface {
	// Get returns the value stored under key,
	// the bool is false when nothing was stored
	Get(ctx context.Context, key string) (string, bool, error)

	// Set stores value under key, replacing
	// any previous value
	Set(ctx context.Context, key, value string) error

	// Close releases any resources (no-op for in-memory).
	Close() error
}

// Store interface describes the shared
// dashboard state: display currency and rate tables
type Store interface {
	// Currency returns the display currency
	Currency() string

	// ExchangeRateSC returns the SC exchange rates
	ExchangeRateSC() model.ExchangeRateTable

	// ExchangeRateSF returns the SF exchange rates
	ExchangeRateSF() model.ExchangeRateTable

	// SetCurrency persists code and then
	// makes it the display currency
	SetCurrency(ctx context.Context, code string) error

	// SetExchangeRateSC replaces the SC rates
	SetExchangeRateSC(rates model.ExchangeRateTable)

	// SetExchangeRateSF replaces the SF rates
	SetExchangeRateSF(rates model.ExchangeRateTable)
}
