package timezone

import (
	"strings"
	"time"
	_ "time/tzdata"
)

const (
	DefaultTimezone = "America/Sao_Paulo"
	DateLayout      = "2006-01-02"
)

func IsValid(tz string) bool {
	if tz == "" {
		return false
	}
	_, err := time.LoadLocation(tz)
	return err == nil
}

func Location(tz string) *time.Location {
	if IsValid(tz) {
		if loc, err := time.LoadLocation(tz); err == nil {
			return loc
		}
	}

	loc, err := time.LoadLocation(DefaultTimezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

func NowIn(tz string) time.Time {
	return time.Now().In(Location(tz))
}

// ======================================================
// Civil dates
// ======================================================
//
// Tour dates are calendar days. They are stored as midnight UTC and compared
// through their YYYY-MM-DD key, never through instants.

func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if len(s) > len(DateLayout) {
		// accepts full ISO timestamps sent by the booking forms
		if t, err := time.Parse(time.RFC3339, s); err == nil {
			return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
		}
		s = s[:len(DateLayout)]
	}
	return time.Parse(DateLayout, s)
}

// DateKey formats the calendar day stored in t.
func DateKey(t time.Time) string {
	return t.UTC().Format(DateLayout)
}

// Today returns the current calendar day in tz as a date key.
func Today(tz string) string {
	return NowIn(tz).Format(DateLayout)
}

// MonthRange returns the first and last day keys of the month containing now.
func MonthRange(now time.Time) (string, string) {
	first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	last := first.AddDate(0, 1, -1)
	return first.Format(DateLayout), last.Format(DateLayout)
}
