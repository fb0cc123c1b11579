package dto_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/SscSPs/fx_deal_system/internal/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDealTime(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    time.Time
		wantErr bool
	}{
		{name: "wire layout", in: "2024-01-15T10:30:00", want: time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)},
		{name: "fractional seconds", in: "2024-01-15T10:30:00.250", want: time.Date(2024, 1, 15, 10, 30, 0, 250_000_000, time.UTC)},
		{name: "rfc3339 offset", in: "2024-01-15T12:30:00+02:00", want: time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)},
		{name: "date only", in: "2024-01-15", wantErr: true},
		{name: "garbage", in: "yesterday", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := dto.ParseDealTime(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "yyyy-MM-ddTHH:mm:ss")
				return
			}
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got.Time), "got %s", got.Time)
		})
	}
}

func TestDealTime_JSON(t *testing.T) {
	var payload struct {
		At *dto.DealTime `json:"at"`
	}

	require.NoError(t, json.Unmarshal([]byte(`{"at":"2024-01-15T10:30:00"}`), &payload))
	require.NotNil(t, payload.At)
	assert.Equal(t, "2024-01-15T10:30:00", payload.At.String())

	out, err := json.Marshal(payload)
	require.NoError(t, err)
	assert.JSONEq(t, `{"at":"2024-01-15T10:30:00"}`, string(out))

	payload.At = nil
	require.NoError(t, json.Unmarshal([]byte(`{"at":null}`), &payload))
	assert.Nil(t, payload.At)

	assert.Error(t, json.Unmarshal([]byte(`{"at":1705314600}`), &payload))
}

func TestDealTime_Location(t *testing.T) {
	loc := time.FixedZone("UTC+3", 3*60*60)
	dto.SetDealTimeLocation(loc)
	t.Cleanup(func() { dto.SetDealTimeLocation(nil) })

	got, err := dto.ParseDealTime("2024-01-15T10:30:00")
	require.NoError(t, err)
	assert.True(t, time.Date(2024, 1, 15, 7, 30, 0, 0, time.UTC).Equal(got.Time))

	// values are rendered as wall clock in the configured location
	assert.Equal(t, "2024-01-15T13:30:00", dto.NewDealTime(time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)).String())

	dto.SetDealTimeLocation(nil)
	assert.Equal(t, time.UTC, dto.DealTimeLocation())
}
