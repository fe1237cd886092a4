package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTimestamp(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    time.Time
		wantErr bool
	}{
		{name: "rfc3339 utc", in: "2024-01-01T00:00:00Z", want: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)},
		{name: "rfc3339 offset", in: "2024-01-01T02:00:00+02:00", want: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)},
		{name: "local date-time", in: "2024-06-30T18:45:00", want: time.Date(2024, 6, 30, 18, 45, 0, 0, time.Local)},
		{name: "local with fraction", in: "2024-06-30T18:45:00.5", want: time.Date(2024, 6, 30, 18, 45, 0, 500000000, time.Local)},
		{name: "garbage", in: "yesterday", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseTimestamp(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, got.Equal(tt.want), "got %v want %v", got, tt.want)
		})
	}
}

func TestTimestamp_JSON(t *testing.T) {
	var ts Timestamp
	require.NoError(t, json.Unmarshal([]byte(`null`), &ts))
	assert.True(t, ts.IsZero())

	require.Error(t, json.Unmarshal([]byte(`42`), &ts))

	require.NoError(t, json.Unmarshal([]byte(`"2024-01-01T00:00:00Z"`), &ts))
	b, err := json.Marshal(ts)
	require.NoError(t, err)
	assert.Equal(t, `"2024-01-01T00:00:00Z"`, string(b))
}

func TestTimestamp_Local(t *testing.T) {
	ts := Timestamp{Time: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	tokyo := time.FixedZone("JST", 9*3600)

	assert.Equal(t, "01 Jan 2024, 09:00:00", ts.Local(tokyo))
	assert.Equal(t, "31 Dec 2023", ts.LocalDate(time.FixedZone("W", -3600)))
	assert.Equal(t, "", Timestamp{}.Local(tokyo))
}
