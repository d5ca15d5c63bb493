package model

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHostSettings_RoundTripKeepsUnknownFields(t *testing.T) {
	body := `{"storage_price":"1000","window_size":144,"accepting_contracts":true}`

	var settings HostSettings
	require.NoError(t, json.Unmarshal([]byte(body), &settings))
	assert.Equal(t, "1000", settings.StoragePrice.String())

	out, err := json.Marshal(settings)
	require.NoError(t, err)
	assert.JSONEq(t, body, string(out))
}

func TestHostSettings_MismatchedFieldIsZero(t *testing.T) {
	var settings HostSettings
	require.NoError(t, json.Unmarshal([]byte(`{"max_duration":"long","contract_price":"5"}`), &settings))

	assert.Zero(t, settings.MaxDuration)
	assert.Equal(t, "5", settings.ContractPrice.String())
}

func TestStatusResponse_NestedSettingsPassThrough(t *testing.T) {
	body := `{"type":"success","status":{"online":true,"host_settings":{"storage_price":"7","sia_mux_port":"9983"}},"alerts":[]}`

	var status StatusResponse
	require.NoError(t, json.Unmarshal([]byte(body), &status))
	assert.True(t, status.Status.Online)
	assert.Equal(t, "7", status.Status.Settings.StoragePrice.String())

	out, err := json.Marshal(status.Status.Settings)
	require.NoError(t, err)
	assert.JSONEq(t, `{"storage_price":"7","sia_mux_port":"9983"}`, string(out))
}

func TestMarshalWithoutRawUsesFields(t *testing.T) {
	out, err := json.Marshal(ExchangeRateResponse{
		APIResponse: APIResponse{Type: "success"},
		Rates:       map[string]ExchangeRateTable{"sc": {"usd": 0.5}},
	})
	require.NoError(t, err)
	assert.JSONEq(t, `{"message":"","type":"success","price":null,"rates":{"sc":{"usd":0.5}}}`, string(out))

	out, err = json.Marshal(HostSettings{StoragePrice: decimal.NewFromInt(3)})
	require.NoError(t, err)

	var fields map[string]interface{}
	require.NoError(t, json.Unmarshal(out, &fields))
	assert.Equal(t, "3", fields["storage_price"])
	assert.NotContains(t, fields, "Raw")
}
