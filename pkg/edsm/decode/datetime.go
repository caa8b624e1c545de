package decode

import (
	"encoding/json"
	"time"
)

// DateTimeLayout is the upstream timestamp format: date and time separated by
// a space, second precision, no zone.
const DateTimeLayout = "2006-01-02 15:04:05"

// DateTime is a naive timestamp in DateTimeLayout. The zero value means unset.
// The wrapped time is always in UTC so that equal wall clocks compare equal.
type DateTime struct {
	time.Time
}

// ParseDateTime parses s strictly as YYYY-MM-DD HH:MM:SS
func ParseDateTime(s string) (DateTime, error) {
	// time.Parse accepts a single-digit hour for "15", so pin the shape first.
	if len(s) != len(DateTimeLayout) || s[4] != '-' || s[7] != '-' || s[10] != ' ' || s[13] != ':' || s[16] != ':' {
		return DateTime{}, Invalid("", s, nil)
	}
	t, err := time.ParseInLocation(DateTimeLayout, s, time.UTC)
	if err != nil {
		return DateTime{}, Invalid("", s, err)
	}
	return DateTime{Time: t}, nil
}

// String formats the timestamp back into DateTimeLayout
func (d DateTime) String() string {
	return d.Time.Format(DateTimeLayout)
}

// UnmarshalJSON implements json.Unmarshaler
func (d *DateTime) UnmarshalJSON(data []byte) error {
	if isNull(data) {
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return Invalid("", string(data), err)
	}
	parsed, err := ParseDateTime(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// MarshalJSON implements json.Marshaler
func (d DateTime) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}
