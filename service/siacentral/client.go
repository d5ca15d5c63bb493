package siacentral

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/kylycht/hoststats/build"
	"github.com/kylycht/hoststats/metrics"
	"github.com/kylycht/hoststats/model"
	"github.com/kylycht/hoststats/service"
	"golang.org/x/time/rate"
)

const (
	MarketURL string = "https://api.siacentral.com" // fixed host of the market and host endpoints
)

// Options configures a stats client
type Options struct {
	BaseURL    string       // base URL of the stats API, usually build.APIBaseURL()
	MarketURL  string       // host of the market endpoints, defaults to MarketURL
	RateLimit  float64      // max requests per second, 0 disables limiting
	HTTPClient *http.Client // optional, a client without timeout is used otherwise
}

// response is the normalized result of sendJSONRequest
type response struct {
	StatusCode int             // 200 for any 2xx, the original code otherwise
	Body       json.RawMessage // parsed JSON body
}

type client struct {
	baseURL     *url.URL      // Base URL of the stats API
	marketURL   *url.URL      // Base URL of the market API
	httpClient  *http.Client  // HTTP client used to communicate with the API.
	rateLimiter *rate.Limiter // Rate limiter for outgoing requests
}

func New(opts Options) (service.Stats, error) {
	base, err := parseBase(opts.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base URL: %w", err)
	}

	if opts.MarketURL == "" {
		opts.MarketURL = MarketURL
	}

	market, err := parseBase(opts.MarketURL)
	if err != nil {
		return nil, fmt.Errorf("invalid market URL: %w", err)
	}

	limiter := rate.NewLimiter(rate.Inf, 0)
	if opts.RateLimit > 0 {
		limiter = rate.NewLimiter(rate.Limit(opts.RateLimit), 10)
	}

	httpClient := opts.HTTPClient
	if httpClient == nil {
		userAgent := "hoststats/" + build.Version()
		httpClient = &http.Client{
			Transport: roundTripperFn(
				func(req *http.Request) (*http.Response, error) {
					req.Header.Set("User-Agent", userAgent)

					return http.DefaultTransport.RoundTrip(req)
				},
			),
		}
	}

	return &client{
		baseURL:     base,
		marketURL:   market,
		httpClient:  httpClient,
		rateLimiter: limiter,
	}, nil
}

func parseBase(raw string) (*url.URL, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return nil, err
	}

	if !u.IsAbs() || u.Host == "" {
		return nil, fmt.Errorf("%q is not an absolute URL", raw)
	}

	return u, nil
}

// sendJSONRequest issues the request and parses the body as JSON
// regardless of the status code. Transport and parse failures are
// returned as errors, everything else is left to the caller.
func (c *client) sendJSONRequest(ctx context.Context, operation string, u *url.URL, method string, data interface{}) (response, error) {
	var body io.Reader
	if data != nil {
		buf, err := json.Marshal(data)
		if err != nil {
			return response{}, fmt.Errorf("%s: encode request: %w", operation, err)
		}
		body = bytes.NewReader(buf)
	}

	if err := c.rateLimiter.Wait(ctx); err != nil {
		return response{}, fmt.Errorf("%s: %w", operation, err)
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), body)
	if err != nil {
		return response{}, fmt.Errorf("%s: create request: %w", operation, err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("Cache-Control", "no-cache")
	req.Header.Set("Pragma", "no-cache")
	if data != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	startedAt := time.Now()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		metrics.ObserveRequest(operation, 0, startedAt)
		return response{}, fmt.Errorf("%s: %w", operation, err)
	}

	defer resp.Body.Close()

	metrics.ObserveRequest(operation, resp.StatusCode, startedAt)

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return response{}, fmt.Errorf("%s: read response: %w", operation, err)
	}

	// the whole body must be a single JSON value
	var raw json.RawMessage
	if err := json.Unmarshal(respBody, &raw); err != nil {
		return response{}, fmt.Errorf("%s: decode response: %w", operation, err)
	}

	statusCode := resp.StatusCode
	if statusCode >= 200 && statusCode < 300 {
		statusCode = http.StatusOK
	}

	return response{StatusCode: statusCode, Body: raw}, nil
}

// get sends a GET request and decodes a successful body into v
func (c *client) get(ctx context.Context, operation string, u *url.URL, v interface{}) error {
	resp, err := c.sendJSONRequest(ctx, operation, u, http.MethodGet, nil)
	if err != nil {
		return err
	}

	if resp.StatusCode != http.StatusOK {
		return newAPIError(resp)
	}

	if v == nil {
		return nil
	}

	if err := json.Unmarshal(resp.Body, v); err != nil {
		return fmt.Errorf("%s: decode body: %w", operation, err)
	}

	return nil
}

func newAPIError(resp response) error {
	var body model.APIResponse
	// a body without a message still yields an APIError
	_ = json.Unmarshal(resp.Body, &body)

	return &service.APIError{
		StatusCode: resp.StatusCode,
		Message:    body.Message,
	}
}

// unixParam formats t as whole unix seconds, a zero t means now
func unixParam(t time.Time) string {
	if t.IsZero() {
		t = time.Now()
	}

	return strconv.FormatInt(t.Round(time.Second).Unix(), 10)
}

// GetAverageSettings implements service.Stats.
// GET /v2/hosts/settings/average
func (c *client) GetAverageSettings(ctx context.Context) (model.HostSettings, error) {
	u := c.marketURL.JoinPath("v2", "hosts", "settings", "average")

	var r model.SettingsResponse
	if err := c.get(ctx, "average_settings", u, &r); err != nil {
		return model.HostSettings{}, err
	}

	return r.Settings, nil
}

// GetCoinPrice implements service.Stats.
// GET /v2/market/exchange-rate
func (c *client) GetCoinPrice(ctx context.Context) (model.ExchangeRateResponse, error) {
	u := c.marketURL.JoinPath("v2", "market", "exchange-rate")

	var r model.ExchangeRateResponse
	if err := c.get(ctx, "coin_price", u, &r); err != nil {
		return model.ExchangeRateResponse{}, err
	}

	return r, nil
}

// GetSnapshots implements service.Stats.
// GET /api/snapshots?end=1600000000
//
// A missing or malformed snapshots field is treated as
// "no snapshots yet" and returns an empty slice.
func (c *client) GetSnapshots(ctx context.Context, end time.Time) ([]model.Snapshot, error) {
	u := c.baseURL.JoinPath("api", "snapshots")

	query := u.Query()
	query.Set("end", unixParam(end))
	u.RawQuery = query.Encode()

	resp, err := c.sendJSONRequest(ctx, "snapshots", u, http.MethodGet, nil)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode != http.StatusOK {
		return nil, newAPIError(resp)
	}

	return parseSnapshots(resp.Body), nil
}

func parseSnapshots(body json.RawMessage) []model.Snapshot {
	var envelope struct {
		Snapshots json.RawMessage `json:"snapshots"`
	}

	snapshots := []model.Snapshot{}

	if err := json.Unmarshal(body, &envelope); err != nil {
		return snapshots
	}

	var items []model.Snapshot
	if err := json.Unmarshal(envelope.Snapshots, &items); err != nil || items == nil {
		return snapshots
	}

	return items
}

// GetStatus implements service.Stats.
// GET /api/status
func (c *client) GetStatus(ctx context.Context) (model.StatusResponse, error) {
	u := c.baseURL.JoinPath("api", "status")

	var r model.StatusResponse
	if err := c.get(ctx, "status", u, &r); err != nil {
		return model.StatusResponse{}, err
	}

	return r, nil
}

// GetTotals implements service.Stats.
// GET /api/totals?date=1600000000
func (c *client) GetTotals(ctx context.Context, end time.Time) (model.TotalsResponse, error) {
	u := c.baseURL.JoinPath("api", "totals")

	query := u.Query()
	query.Set("date", unixParam(end))
	u.RawQuery = query.Encode()

	var r model.TotalsResponse
	if err := c.get(ctx, "totals", u, &r); err != nil {
		return model.TotalsResponse{}, err
	}

	return r, nil
}

// IsAPIError reports whether err came from a non 2xx response
func IsAPIError(err error) bool {
	var apiErr *service.APIError
	return errors.As(err, &apiErr)
}

type roundTripperFn func(*http.Request) (*http.Response, error)

func (fn roundTripperFn) RoundTrip(r *http.Request) (*http.Response, error) {
	return fn(r)
}
