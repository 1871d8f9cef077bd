// Package timeutil decodes the date and timestamp shapes accepted at the
// API and storage boundary. Strings may be RFC3339 or date-only. Objects use
// the legacy {"seconds","nanoseconds"} timestamp shape. Bare integers are
// Unix epochs in seconds or milliseconds.
package timeutil

import (
	"bytes"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-json"
)

const (
	DateLayout  = "2006-01-02"
	MonthLayout = "2006-01"
)

var ErrUnsupportedTimeFormat = errors.New("unsupported time format")

// epochMillisThreshold separates epoch seconds from epoch milliseconds.
// 1e12 seconds is past the year 30000, 1e12 milliseconds is September 2001.
const epochMillisThreshold = 1_000_000_000_000

// layouts are tried in order by Parse.
var layouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	DateLayout,
}

// Parse parses s using the first matching accepted layout.
func Parse(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, nil
	}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrUnsupportedTimeFormat, s)
}

// legacyTimestamp covers both the underscored and plain key spellings.
type legacyTimestamp struct {
	Seconds           *int64 `json:"seconds"`
	Nanoseconds       int64  `json:"nanoseconds"`
	UnderscoreSeconds *int64 `json:"_seconds"`
	UnderscoreNanos   int64  `json:"_nanoseconds"`
}

// Decode turns a raw JSON value into a time. null yields the zero time.
func Decode(raw []byte) (time.Time, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return time.Time{}, nil
	}

	switch raw[0] {
	case '"':
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return time.Time{}, err
		}
		return Parse(s)
	case '{':
		var ts legacyTimestamp
		if err := json.Unmarshal(raw, &ts); err != nil {
			return time.Time{}, err
		}
		switch {
		case ts.Seconds != nil:
			return time.Unix(*ts.Seconds, ts.Nanoseconds).UTC(), nil
		case ts.UnderscoreSeconds != nil:
			return time.Unix(*ts.UnderscoreSeconds, ts.UnderscoreNanos).UTC(), nil
		}
		return time.Time{}, fmt.Errorf("%w: timestamp object without seconds", ErrUnsupportedTimeFormat)
	case '-', '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		return decodeEpoch(raw)
	}

	return time.Time{}, fmt.Errorf("%w: %s", ErrUnsupportedTimeFormat, string(raw))
}

// decodeEpoch reads an integer Unix epoch, in milliseconds when its
// magnitude reaches epochMillisThreshold and in seconds otherwise.
func decodeEpoch(raw []byte) (time.Time, error) {
	n, err := strconv.ParseInt(string(raw), 10, 64)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %s", ErrUnsupportedTimeFormat, string(raw))
	}
	if n >= epochMillisThreshold || n <= -epochMillisThreshold {
		return time.UnixMilli(n).UTC(), nil
	}
	return time.Unix(n, 0).UTC(), nil
}

// Time is a timestamp that decodes every accepted shape and encodes as RFC3339.
type Time struct {
	time.Time
}

func (t *Time) UnmarshalJSON(data []byte) error {
	parsed, err := Decode(data)
	if err != nil {
		return err
	}
	t.Time = parsed
	return nil
}

func (t Time) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(t.Time.Format(time.RFC3339))
}

// Ptr returns nil for a nil or zero Time.
func (t *Time) Ptr() *time.Time {
	if t == nil || t.IsZero() {
		return nil
	}
	v := t.Time
	return &v
}

// Date is a calendar day. Any time-of-day component is dropped on decode.
type Date struct {
	time.Time
}

// NewDate returns the calendar day of t in UTC.
func NewDate(t time.Time) Date {
	return Date{Time: time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)}
}

func (d *Date) UnmarshalJSON(data []byte) error {
	parsed, err := Decode(data)
	if err != nil {
		return err
	}
	if parsed.IsZero() {
		d.Time = time.Time{}
		return nil
	}
	*d = NewDate(parsed)
	return nil
}

func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(d.Format(DateLayout))
}

func (d Date) String() string {
	return d.Format(DateLayout)
}
