package ratesync

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/kylycht/hoststats/model"
	"github.com/kylycht/hoststats/service"
	"github.com/kylycht/hoststats/storage/cache"
	"github.com/kylycht/hoststats/storage/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeStats serves a fixed price response and counts calls
type fakeStats struct {
	service.Stats
	resp  model.ExchangeRateResponse
	err   error
	calls atomic.Int32
}

func (f *fakeStats) GetCoinPrice(context.Context) (model.ExchangeRateResponse, error) {
	f.calls.Add(1)
	return f.resp, f.err
}

func newStore(t *testing.T) *cache.MCache {
	t.Helper()

	store, err := cache.New(context.Background(), memory.New())
	require.NoError(t, err)

	return store
}

func TestNew_InvalidSchedule(t *testing.T) {
	_, err := New(&fakeStats{}, newStore(t), "every now and then")
	assert.ErrorContains(t, err, "invalid rate sync schedule")
}

func TestNew_DefaultSchedule(t *testing.T) {
	s, err := New(&fakeStats{}, newStore(t), "")
	require.NoError(t, err)

	now := time.Now()
	assert.WithinDuration(t, now.Add(5*time.Minute), s.schedule.Next(now), time.Second)
}

func TestSync_CommitsBothTables(t *testing.T) {
	store := newStore(t)
	client := &fakeStats{resp: model.ExchangeRateResponse{
		Rates: map[string]model.ExchangeRateTable{
			"sc": {"usd": 0.003, "eur": 0.0027},
			"sf": {"usd": 140},
		},
	}}

	s, err := New(client, store, DefaultSchedule)
	require.NoError(t, err)
	require.NoError(t, s.Sync(context.Background()))

	assert.Equal(t, model.ExchangeRateTable{"usd": 0.003, "eur": 0.0027}, store.ExchangeRateSC())
	assert.Equal(t, model.ExchangeRateTable{"usd": 140}, store.ExchangeRateSF())
}

func TestSync_MissingTableClearsIt(t *testing.T) {
	store := newStore(t)
	store.SetExchangeRateSF(model.ExchangeRateTable{"usd": 140})

	client := &fakeStats{resp: model.ExchangeRateResponse{
		Rates: map[string]model.ExchangeRateTable{"sc": {"usd": 0.003}},
	}}

	s, err := New(client, store, DefaultSchedule)
	require.NoError(t, err)
	require.NoError(t, s.Sync(context.Background()))

	assert.Empty(t, store.ExchangeRateSF())
}

func TestSync_FailureKeepsPreviousRates(t *testing.T) {
	store := newStore(t)
	store.SetExchangeRateSC(model.ExchangeRateTable{"usd": 0.003})

	client := &fakeStats{err: &service.APIError{StatusCode: 503, Message: "market unavailable"}}

	s, err := New(client, store, DefaultSchedule)
	require.NoError(t, err)

	err = s.Sync(context.Background())
	require.Error(t, err)

	var apiErr *service.APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, "market unavailable", apiErr.Message)
	assert.Equal(t, model.ExchangeRateTable{"usd": 0.003}, store.ExchangeRateSC())
}

func TestRun_SyncsImmediatelyAndStops(t *testing.T) {
	store := newStore(t)
	client := &fakeStats{resp: model.ExchangeRateResponse{
		Rates: map[string]model.ExchangeRateTable{"sc": {"usd": 0.004}},
	}}

	s, err := New(client, store, "@every 1h")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Run(ctx) }()

	require.Eventually(t, func() bool {
		return client.calls.Load() == 1
	}, 2*time.Second, 10*time.Millisecond)
	assert.Equal(t, model.ExchangeRateTable{"usd": 0.004}, store.ExchangeRateSC())

	cancel()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}
