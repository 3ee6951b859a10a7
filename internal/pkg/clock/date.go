package clock

import (
	"errors"
	"strconv"
	"time"
)

// DateLayout is the wire layout of a Date.
const DateLayout = "2006-01-02"

// ErrInvalidDate is returned when a JSON value cannot be read as a Date.
var ErrInvalidDate = errors.New("clock: invalid date")

var dateLayouts = []string{
	DateLayout,
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
}

// Date is a calendar date without time of day, always held at midnight UTC.
//
// It accepts "2006-01-02", RFC 3339 timestamps and zone-less timestamps on
// input and always marshals as "2006-01-02". The zero value is 0001-01-01.
type Date time.Time

// NewDate returns the Date for year, month and day.
func NewDate(year int, month time.Month, day int) Date {
	return Date(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

// Time returns the date as midnight UTC.
func (d Date) Time() time.Time {
	return time.Time(d)
}

// IsZero reports whether d is the zero date.
func (d Date) IsZero() bool {
	return d.Time().IsZero()
}

// String returns d in DateLayout.
func (d Date) String() string {
	return d.Time().Format(DateLayout)
}

// MarshalJSON implements json.Marshaler.
func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(d.String())), nil
}

// UnmarshalJSON implements json.Unmarshaler. A JSON null leaves d untouched.
func (d *Date) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		return nil
	}

	raw, err := strconv.Unquote(string(b))
	if err != nil {
		return ErrInvalidDate
	}

	for _, layout := range dateLayouts {
		t, err := time.Parse(layout, raw)
		if err == nil {
			*d = Date(Today(t))
			return nil
		}
	}

	return ErrInvalidDate
}

// RawDate is a Date that keeps the JSON text it was decoded from and marshals
// that text back unchanged. A RawDate that was never decoded marshals as its
// Date.
type RawDate struct {
	Date
	raw []byte
}

// MarshalJSON implements json.Marshaler.
func (d RawDate) MarshalJSON() ([]byte, error) {
	if len(d.raw) > 0 {
		return d.raw, nil
	}

	return d.Date.MarshalJSON()
}

// UnmarshalJSON implements json.Unmarshaler.
func (d *RawDate) UnmarshalJSON(b []byte) error {
	if err := d.Date.UnmarshalJSON(b); err != nil {
		return err
	}

	if string(b) != "null" {
		d.raw = append([]byte(nil), b...)
	}

	return nil
}

// Today returns the calendar date of t as midnight UTC.
func Today(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// YearsBefore returns the calendar date n years before day.
//
// A 29 February anchor falls back to 28 February when the target year is not
// a leap year, instead of rolling over into March.
func YearsBefore(day time.Time, n int) time.Time {
	y, m, d := day.Date()
	y -= n
	if m == time.February && d == 29 && !isLeap(y) {
		d = 28
	}
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func isLeap(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}
