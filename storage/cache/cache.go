package cache

import (
	"context"
	"fmt"
	"maps"
	"sync"

	"github.com/kylycht/hoststats/model"
	"github.com/kylycht/hoststats/storage"
)

// State is a consistent copy of the store fields
type State struct {
	Currency       string                  `json:"currency"`
	ExchangeRateSC model.ExchangeRateTable `json:"exchange_rate_sc"`
	ExchangeRateSF model.ExchangeRateTable `json:"exchange_rate_sf"`
}

// MCache holds the shared dashboard state.
// Fields are only written through SetCurrency,
// SetExchangeRateSC and SetExchangeRateSF.
type MCache struct {
	persistLock    sync.Mutex              // serializes SetCurrency writes
	lock           sync.RWMutex            // rw lock guards the fields below
	currency       string                  // display currency, persisted
	exchangeRateSC model.ExchangeRateTable // SC rates, memory only
	exchangeRateSF model.ExchangeRateTable // SF rates, memory only
	preferences    storage.Preferences     // persistence provider for the currency
}

// New creates the store, reading the display currency
// from preferences. "usd" is used when none was stored.
func New(ctx context.Context, preferences storage.Preferences) (*MCache, error) {
	currency, ok, err := preferences.Get(ctx, model.CurrencyKey)
	if err != nil {
		return nil, fmt.Errorf("load display currency: %w", err)
	}

	if !ok || currency == "" {
		currency = model.DefaultCurrency
	}

	return &MCache{
		currency:       currency,
		exchangeRateSC: model.ExchangeRateTable{},
		exchangeRateSF: model.ExchangeRateTable{},
		preferences:    preferences,
	}, nil
}

// Currency implements storage.Store.
func (m *MCache) Currency() string {
	m.lock.RLock()
	defer m.lock.RUnlock()

	return m.currency
}

// ExchangeRateSC implements storage.Store.
func (m *MCache) ExchangeRateSC() model.ExchangeRateTable {
	m.lock.RLock()
	defer m.lock.RUnlock()

	return maps.Clone(m.exchangeRateSC)
}

// ExchangeRateSF implements storage.Store.
func (m *MCache) ExchangeRateSF() model.ExchangeRateTable {
	m.lock.RLock()
	defer m.lock.RUnlock()

	return maps.Clone(m.exchangeRateSF)
}

// Snapshot returns all fields read under a single lock
func (m *MCache) Snapshot() State {
	m.lock.RLock()
	defer m.lock.RUnlock()

	return State{
		Currency:       m.currency,
		ExchangeRateSC: maps.Clone(m.exchangeRateSC),
		ExchangeRateSF: maps.Clone(m.exchangeRateSF),
	}
}

// SetCurrency implements storage.Store.
// The code is written to preferences before the in-memory value
// changes; a failed write leaves the current currency in place.
func (m *MCache) SetCurrency(ctx context.Context, code string) error {
	m.persistLock.Lock()
	defer m.persistLock.Unlock()

	if err := m.preferences.Set(ctx, model.CurrencyKey, code); err != nil {
		return fmt.Errorf("persist display currency: %w", err)
	}

	m.lock.Lock()
	m.currency = code
	m.lock.Unlock()

	return nil
}

// SetExchangeRateSC implements storage.Store.
func (m *MCache) SetExchangeRateSC(rates model.ExchangeRateTable) {
	rates = cloneTable(rates)

	m.lock.Lock()
	m.exchangeRateSC = rates
	m.lock.Unlock()
}

// SetExchangeRateSF implements storage.Store.
func (m *MCache) SetExchangeRateSF(rates model.ExchangeRateTable) {
	rates = cloneTable(rates)

	m.lock.Lock()
	m.exchangeRateSF = rates
	m.lock.Unlock()
}

// cloneTable copies rates so later changes by the
// caller do not leak into the store
func cloneTable(rates model.ExchangeRateTable) model.ExchangeRateTable {
	if rates == nil {
		return model.ExchangeRateTable{}
	}

	return maps.Clone(rates)
}
