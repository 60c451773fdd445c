// Package dateformat implements the dd-MMM-yyyy wire format used for every
// date the API sends or receives, e.g. "05-Jan-2024".
package dateformat

import (
	"errors"
	"time"
)

// Layout is dd-MMM-yyyy in Go reference time notation. Month abbreviations
// come from Go's fixed English table, so parsing and formatting do not
// depend on the process locale.
const Layout = "02-Jan-2006"

var ErrMalformedDate = errors.New("invalid date format, expected dd-MMM-yyyy")

// Parse converts a wire date into a time value. The input must match the
// layout exactly: time.Parse alone would accept single-digit days, so the
// result is formatted back and compared against the input.
func Parse(s string) (time.Time, error) {
	t, err := time.Parse(Layout, s)
	if err != nil {
		return time.Time{}, ErrMalformedDate
	}
	if t.Format(Layout) != s {
		return time.Time{}, ErrMalformedDate
	}
	return t, nil
}

// Format renders a time value in the wire layout.
func Format(t time.Time) string {
	return t.Format(Layout)
}

// Valid reports whether s parses under the wire layout.
func Valid(s string) bool {
	_, err := Parse(s)
	return err == nil
}
