package timeutil

import (
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		want time.Time
	}{
		{"rfc3339", `"2024-03-05T08:30:00Z"`, time.Date(2024, 3, 5, 8, 30, 0, 0, time.UTC)},
		{"rfc3339 nano", `"2024-03-05T08:30:00.5Z"`, time.Date(2024, 3, 5, 8, 30, 0, 500000000, time.UTC)},
		{"naive datetime", `"2024-03-05 08:30:00"`, time.Date(2024, 3, 5, 8, 30, 0, 0, time.UTC)},
		{"date only", `"2024-03-05"`, time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)},
		{"legacy underscore map", `{"_seconds":1709627400,"_nanoseconds":0}`, time.Unix(1709627400, 0).UTC()},
		{"legacy plain map", `{"seconds":1709627400,"nanoseconds":250}`, time.Unix(1709627400, 250).UTC()},
		{"epoch seconds", `1709627400`, time.Unix(1709627400, 0).UTC()},
		{"epoch milliseconds", `1709627400250`, time.UnixMilli(1709627400250).UTC()},
		{"null", `null`, time.Time{}},
		{"empty string", `""`, time.Time{}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := Decode([]byte(c.raw))
			require.NoError(t, err)
			assert.True(t, c.want.Equal(got), "got %v want %v", got, c.want)
		})
	}
}

func TestDecode_Rejects(t *testing.T) {
	for _, raw := range []string{`"05/03/2024"`, `1709627400.5`, `1e9`, `{"foo":1}`, `true`} {
		_, err := Decode([]byte(raw))
		assert.ErrorIs(t, err, ErrUnsupportedTimeFormat, raw)
	}
}

func TestDate_DropsTimeOfDay(t *testing.T) {
	var payload struct {
		Date Date `json:"date"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"date":"2024-02-29T23:10:00Z"}`), &payload))
	assert.Equal(t, "2024-02-29", payload.Date.String())

	out, err := json.Marshal(payload)
	require.NoError(t, err)
	assert.JSONEq(t, `{"date":"2024-02-29"}`, string(out))
}

func TestTime_MarshalZeroAsNull(t *testing.T) {
	out, err := json.Marshal(struct {
		At Time `json:"at"`
	}{})
	require.NoError(t, err)
	assert.JSONEq(t, `{"at":null}`, string(out))
}

func TestMonth(t *testing.T) {
	m, err := ParseMonth("2024-02")
	require.NoError(t, err)
	assert.Equal(t, 29, m.Days())
	assert.Equal(t, "2024-02", m.String())
	assert.True(t, m.Contains(time.Date(2024, 2, 29, 23, 0, 0, 0, time.UTC)))
	assert.False(t, m.Contains(time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), m.End())

	assert.Equal(t, 31, NewMonth(2023, 12).Days())
	assert.Equal(t, NewMonth(2024, 1), NewMonth(2023, 13))
	assert.Equal(t, 0, Month{}.Days())

	_, err = ParseMonth("2024-13")
	assert.Error(t, err)
}

func TestMonth_JSON(t *testing.T) {
	var payload struct {
		Month Month `json:"month"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"month":"2025-11"}`), &payload))
	assert.Equal(t, NewMonth(2025, time.November), payload.Month)

	out, err := json.Marshal(payload)
	require.NoError(t, err)
	assert.JSONEq(t, `{"month":"2025-11"}`, string(out))
}
