package domain

import (
	"fmt"
	"strings"
	"time"
)

// dateLayout is the wire format for calendar dates ("2006-01-02").
const dateLayout = "2006-01-02"

// Date is a calendar date with date-only JSON encoding. Incoming values may
// be either date-only ("2025-06-01") or full RFC 3339 timestamps, which some
// clients send; the time-of-day part is discarded either way.
type Date struct {
	time.Time
}

// NewDate returns a Date for the given calendar day in UTC.
func NewDate(year int, month time.Month, day int) Date {
	return Date{time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// MarshalJSON encodes the date as a quoted "2006-01-02" string.
func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Format(dateLayout) + `"`), nil
}

// UnmarshalJSON decodes a quoted date-only or RFC 3339 string.
func (d *Date) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		return nil
	}
	if t, err := time.Parse(dateLayout, s); err == nil {
		d.Time = t
		return nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return fmt.Errorf("invalid date %q: expected %s or RFC 3339", s, dateLayout)
	}
	d.Time = time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	return nil
}

// String returns the date in wire format.
func (d Date) String() string {
	return d.Format(dateLayout)
}
