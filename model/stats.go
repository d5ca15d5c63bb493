package model

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// APIResponse is the envelope every
// stats API response carries
type APIResponse struct {
	Message string `json:"message"` // Human readable message, set on errors
	Type    string `json:"type"`    // "success" or "error"
}

// Snapshot is a single historical measurement.
// The record is passed through untouched.
type Snapshot = json.RawMessage

// HostSettings holds network average host pricing.
// Prices are in hastings.
type HostSettings struct {
	BaseRPCPrice           decimal.Decimal `json:"base_rpc_price"`
	SectorAccessPrice      decimal.Decimal `json:"sector_access_price"`
	Collateral             decimal.Decimal `json:"collateral"`
	MaxCollateral          decimal.Decimal `json:"max_collateral"`
	ContractPrice          decimal.Decimal `json:"contract_price"`
	DownloadBandwidthPrice decimal.Decimal `json:"download_price"`
	StoragePrice           decimal.Decimal `json:"storage_price"`
	UploadBandwidthPrice   decimal.Decimal `json:"upload_price"`
	MaxDuration            uint64          `json:"max_duration"`

	Raw json.RawMessage `json:"-"` // body as received, re-emitted by MarshalJSON
}

// SettingsResponse is the body of the average settings endpoint
type SettingsResponse struct {
	APIResponse
	Settings HostSettings `json:"settings"`
}

// ExchangeRateResponse is the body of the exchange rate endpoint
type ExchangeRateResponse struct {
	APIResponse
	Price ExchangeRateTable            `json:"price"` // SC price per currency
	Rates map[string]ExchangeRateTable `json:"rates"` // tables keyed by coin ("sc", "sf")

	Raw json.RawMessage `json:"-"` // body as received, re-emitted by MarshalJSON
}

// HostSnapshot aggregates contract activity over a period
type HostSnapshot struct {
	ActiveContracts     uint64          `json:"active_contracts"`
	NewContracts        uint64          `json:"new_contracts"`
	ExpiredContracts    uint64          `json:"expired_contracts"`
	SuccessfulContracts uint64          `json:"successful_contracts"`
	FailedContracts     uint64          `json:"failed_contracts"`
	Payout              decimal.Decimal `json:"payout"`
	EarnedRevenue       decimal.Decimal `json:"earned_revenue"`
	PotentialRevenue    decimal.Decimal `json:"potential_revenue"`
	BurntCollateral     decimal.Decimal `json:"burnt_collateral"`
	Timestamp           time.Time       `json:"timestamp"`
}

// HostAlert is an alert raised by the stats daemon
type HostAlert struct {
	Type     string `json:"type"`
	Text     string `json:"text"`
	Severity string `json:"severity"`
}

// HostStatus is the current state of the host
type HostStatus struct {
	ActiveContracts     uint64          `json:"active_contracts"`
	SuccessfulContracts uint64          `json:"successful_contracts"`
	FailedContracts     uint64          `json:"failed_contracts"`
	Payout              decimal.Decimal `json:"payout"`
	EarnedRevenue       decimal.Decimal `json:"earned_revenue"`
	PotentialRevenue    decimal.Decimal `json:"potential_revenue"`
	BurntCollateral     decimal.Decimal `json:"burnt_collateral"`
	UsedStorage         decimal.Decimal `json:"used_storage"`
	TotalStorage        decimal.Decimal `json:"total_storage"`
	UploadBandwidth     decimal.Decimal `json:"upload_bandwidth"`
	DownloadBandwidth   decimal.Decimal `json:"download_bandwidth"`
	Settings            HostSettings    `json:"host_settings"`
	Online              bool            `json:"online"`
	AcceptingContracts  bool            `json:"accepting_contracts"`
	WalletUnlocked      bool            `json:"wallet_unlocked"`
	Version             string          `json:"version"`
	FirstSeen           time.Time       `json:"first_seen"`
	StartTime           time.Time       `json:"start_time"`
}

// StatusResponse is the body of the status endpoint
type StatusResponse struct {
	APIResponse
	Status HostStatus  `json:"status"`
	Alerts []HostAlert `json:"alerts"`

	Raw json.RawMessage `json:"-"` // body as received, re-emitted by MarshalJSON
}

// TotalsResponse is the body of the totals endpoint
type TotalsResponse struct {
	APIResponse
	Start time.Time    `json:"start"`
	End   time.Time    `json:"end"`
	Day   HostSnapshot `json:"day"`
	Month HostSnapshot `json:"month"`
	Year  HostSnapshot `json:"year"`
	Total HostSnapshot `json:"total"`

	Raw json.RawMessage `json:"-"` // body as received, re-emitted by MarshalJSON
}
