package dto

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sync/atomic"
	"time"
)

// DealTimeLayout is the wire format of deal timestamps (yyyy-MM-ddTHH:mm:ss).
const DealTimeLayout = "2006-01-02T15:04:05"

var dealTimeLocation atomic.Pointer[time.Location]

// SetDealTimeLocation sets the location wall-clock deal timestamps are interpreted in.
// Defaults to UTC.
func SetDealTimeLocation(loc *time.Location) {
	if loc == nil {
		loc = time.UTC
	}
	dealTimeLocation.Store(loc)
}

// DealTimeLocation returns the location wall-clock deal timestamps are interpreted in.
func DealTimeLocation() *time.Location {
	if loc := dealTimeLocation.Load(); loc != nil {
		return loc
	}
	return time.UTC
}

// DealTime is a time.Time that travels as a zone-less yyyy-MM-ddTHH:mm:ss string.
type DealTime struct {
	time.Time
}

// NewDealTime wraps t, converted to the deal time location.
func NewDealTime(t time.Time) *DealTime {
	return &DealTime{Time: t.In(DealTimeLocation())}
}

// ParseDealTime parses s as yyyy-MM-ddTHH:mm:ss (optionally with fractional seconds).
// RFC 3339 values with an explicit offset are accepted too and converted to the deal time location.
func ParseDealTime(s string) (DealTime, error) {
	loc := DealTimeLocation()
	if t, err := time.ParseInLocation(DealTimeLayout, s, loc); err == nil {
		return DealTime{Time: t}, nil
	}
	if t, err := time.ParseInLocation("2006-01-02T15:04:05.999999999", s, loc); err == nil {
		return DealTime{Time: t}, nil
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return DealTime{}, fmt.Errorf("timestamp %q must be formatted as yyyy-MM-ddTHH:mm:ss", s)
	}
	return DealTime{Time: t.In(loc)}, nil
}

func (t DealTime) String() string {
	return t.In(DealTimeLocation()).Format(DealTimeLayout)
}

// MarshalJSON implements json.Marshaler.
func (t DealTime) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

// UnmarshalJSON implements json.Unmarshaler.
func (t *DealTime) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		return nil
	}
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("timestamp must be a string formatted as yyyy-MM-ddTHH:mm:ss: %w", err)
	}
	parsed, err := ParseDealTime(raw)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
