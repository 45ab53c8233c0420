// Package format renders monetary and temporal values for display. Stored
// amounts keep full precision; rounding happens here and only here.
package format

import (
	"fmt"
	"strconv"
	"time"
)

// Money formats an amount with the currency symbol, rounded to 2 decimals.
func Money(symbol string, amount float64) string {
	return fmt.Sprintf("%s%.2f", symbol, amount)
}

// Quantity formats a quantity without trailing zeros.
func Quantity(q float64) string {
	return strconv.FormatFloat(q, 'f', -1, 64)
}

// FileTimestamp is the timestamp token used in artifact file names.
func FileTimestamp(t time.Time) string {
	return t.Format("20060102150405")
}

// DisplayDate is the human-readable date shown in history.
func DisplayDate(t time.Time) string {
	return t.Format("2006-01-02 15:04:05")
}
