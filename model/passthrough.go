package model

import "encoding/json"

// The API bodies below are passed through as received. Decoding keeps
// a copy of the raw JSON and fills the typed fields as far as their
// types agree; a mismatching field is left at its zero value.

func keepRaw(data []byte, v interface{}) json.RawMessage {
	_ = json.Unmarshal(data, v)
	return append(json.RawMessage(nil), data...)
}

func (s *HostSettings) UnmarshalJSON(data []byte) error {
	type plain HostSettings
	var p plain
	raw := keepRaw(data, &p)
	*s = HostSettings(p)
	s.Raw = raw
	return nil
}

func (s HostSettings) MarshalJSON() ([]byte, error) {
	if len(s.Raw) > 0 {
		return s.Raw, nil
	}
	type plain HostSettings
	return json.Marshal(plain(s))
}

func (r *ExchangeRateResponse) UnmarshalJSON(data []byte) error {
	type plain ExchangeRateResponse
	var p plain
	raw := keepRaw(data, &p)
	*r = ExchangeRateResponse(p)
	r.Raw = raw
	return nil
}

func (r ExchangeRateResponse) MarshalJSON() ([]byte, error) {
	if len(r.Raw) > 0 {
		return r.Raw, nil
	}
	type plain ExchangeRateResponse
	return json.Marshal(plain(r))
}

func (r *StatusResponse) UnmarshalJSON(data []byte) error {
	type plain StatusResponse
	var p plain
	raw := keepRaw(data, &p)
	*r = StatusResponse(p)
	r.Raw = raw
	return nil
}

func (r StatusResponse) MarshalJSON() ([]byte, error) {
	if len(r.Raw) > 0 {
		return r.Raw, nil
	}
	type plain StatusResponse
	return json.Marshal(plain(r))
}

func (r *TotalsResponse) UnmarshalJSON(data []byte) error {
	type plain TotalsResponse
	var p plain
	raw := keepRaw(data, &p)
	*r = TotalsResponse(p)
	r.Raw = raw
	return nil
}

func (r TotalsResponse) MarshalJSON() ([]byte, error) {
	if len(r.Raw) > 0 {
		return r.Raw, nil
	}
	type plain TotalsResponse
	return json.Marshal(plain(r))
}
