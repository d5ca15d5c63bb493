package service

import (
	"context"
	"errors"
	"time"

	"github.com/kylycht/hoststats/model"
)

// ErrUnsupportedCurrency is returned when a display
// currency outside model.SupportedCurrencies is requested
var ErrUnsupportedCurrency = errors.New("unsupported currency")

// APIError is returned when the stats API answers
// with a non 2xx status. Error returns the server's message verbatim.
type APIError struct {
	StatusCode int    // HTTP status code of the response
	Message    string // message field of the response body
}

func (e *APIError) Error() string {
	return e.Message
}

// Stats interface describes
// methods for obtaining network statistics
type Stats interface {
	// GetAverageSettings returns the network
	// average host settings
	GetAverageSettings(ctx context.Context) (model.HostSettings, error)

	// GetCoinPrice returns the current
	// coin exchange rates
	GetCoinPrice(ctx context.Context) (model.ExchangeRateResponse, error)

	// GetSnapshots returns the historical snapshots
	// up to end, a zero end means now
	GetSnapshots(ctx context.Context, end time.Time) ([]model.Snapshot, error)

	// GetStatus returns the current network status
	GetStatus(ctx context.Context) (model.StatusResponse, error)

	// GetTotals returns the aggregate totals
	// as of end, a zero end means now
	GetTotals(ctx context.Context, end time.Time) (model.TotalsResponse, error)
}
