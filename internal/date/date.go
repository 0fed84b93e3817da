// Package date provides a calendar date with day-level granularity,
// used as the ordering key for ledger transactions. A Date carries no
// time-of-day and no timezone, so two transactions on the same calendar
// day always compare equal regardless of where they were recorded.
package date

import (
	"database/sql/driver"
	"fmt"
	"time"
)

// Format is the ISO-8601 representation used everywhere a Date crosses
// a boundary (JSON, SQL text casts).
const Format = "2006-01-02"

// Date represents a calendar date.
type Date struct {
	y int
	m time.Month
	d int
}

// New returns a normalized Date for the given year, month, and day.
// Out-of-range components roll over the way time.Date rolls them over.
func New(year int, month time.Month, day int) Date {
	d := Date{year, month, day}
	d.y, d.m, d.d = d.time().Date()
	return d
}

// FromTime truncates t to its calendar day.
func FromTime(t time.Time) Date {
	return Date{t.Year(), t.Month(), t.Day()}
}

// Today returns the current calendar date.
func Today() Date { return FromTime(time.Now()) }

// Parse reads an ISO-8601 date (YYYY-MM-DD).
func Parse(s string) (Date, error) {
	t, err := time.Parse(Format, s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return FromTime(t), nil
}

func (d Date) time() time.Time {
	return time.Date(d.y, d.m, d.d, 0, 0, 0, 0, time.UTC)
}

// String formats the date as YYYY-MM-DD.
func (d Date) String() string { return d.time().Format(Format) }

// IsZero reports whether d is the zero value.
func (d Date) IsZero() bool { return d.y == 0 && d.m == 0 && d.d == 0 }

// Before reports whether d is before x.
func (d Date) Before(x Date) bool { return d.time().Before(x.time()) }

// After reports whether d is after x.
func (d Date) After(x Date) bool { return d.time().After(x.time()) }

// Equal reports whether d and x fall on the same calendar day.
func (d Date) Equal(x Date) bool { return d == x }

// MarshalJSON encodes the date as a quoted YYYY-MM-DD string.
func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

// UnmarshalJSON decodes a quoted YYYY-MM-DD string.
func (d *Date) UnmarshalJSON(b []byte) error {
	if len(b) < 2 || b[0] != '"' || b[len(b)-1] != '"' {
		return fmt.Errorf("invalid date literal %s", b)
	}
	parsed, err := Parse(string(b[1 : len(b)-1]))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Value implements driver.Valuer so a Date binds to a SQL date column.
func (d Date) Value() (driver.Value, error) {
	return d.time(), nil
}

// Scan implements sql.Scanner, accepting date columns scanned as
// time.Time or as text.
func (d *Date) Scan(src any) error {
	switch v := src.(type) {
	case time.Time:
		*d = FromTime(v)
		return nil
	case string:
		parsed, err := Parse(v)
		if err != nil {
			return err
		}
		*d = parsed
		return nil
	case []byte:
		parsed, err := Parse(string(v))
		if err != nil {
			return err
		}
		*d = parsed
		return nil
	default:
		return fmt.Errorf("cannot scan %T into date.Date", src)
	}
}
