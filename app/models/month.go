package models

import (
	"database/sql/driver"
	"fmt"
	"regexp"
	"time"
)

// Month is a tuition obligation period in YYYY-MM form.
// It is the identity of a charge together with the student, distinct from
// the calendar date the payment was actually made.
type Month string

var monthRe = regexp.MustCompile(`^\d{4}-(0[1-9]|1[0-2])$`)

// ParseMonth validates raw input as a YYYY-MM period.
func ParseMonth(s string) (Month, error) {
	if !monthRe.MatchString(s) {
		return "", fmt.Errorf("invalid month %q, expected YYYY-MM", s)
	}
	return Month(s), nil
}

// CurrentMonth returns the current period in the application time zone.
func CurrentMonth() Month {
	return Month(time.Now().Format("2006-01"))
}

// Valid reports whether the month is well-formed.
func (m Month) Valid() bool {
	return monthRe.MatchString(string(m))
}

func (m Month) String() string {
	return string(m)
}

// Value implements driver.Valuer so months are stored as plain text.
func (m Month) Value() (driver.Value, error) {
	return string(m), nil
}

// Scan implements sql.Scanner.
func (m *Month) Scan(src interface{}) error {
	switch v := src.(type) {
	case string:
		*m = Month(v)
	case []byte:
		*m = Month(v)
	default:
		return fmt.Errorf("cannot scan %T into Month", src)
	}
	return nil
}
