package common

import "time"

// Now is swapped out in tests that need deterministic timestamps.
var Now = func() time.Time {
	return time.Now().UTC()
}

const DateFormatYYYYMMDD = "2006-01-02"

// BillingDay renders the date part used in billing idempotency keys.
func BillingDay(t time.Time) string {
	return t.UTC().Format(DateFormatYYYYMMDD)
}

// ParseDate reads a YYYY-MM-DD string as a UTC midnight timestamp.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateFormatYYYYMMDD, s)
}
