package dailywords

import (
	"fmt"
	"time"
)

const DateLayout = "2006-01-02"

// DateString renders t as the YYYYMMDD token the article search API and the
// words table use.
func DateString(t time.Time) string {
	return fmt.Sprintf("%04d%02d%02d", t.Year(), int(t.Month()), t.Day())
}

// ParseDate reads a YYYY-MM-DD calendar day.
func ParseDate(s string) (time.Time, error) {
	d, err := time.ParseInLocation(DateLayout, s, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse date %q: %w", s, err)
	}
	return d, nil
}
