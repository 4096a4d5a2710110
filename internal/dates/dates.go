// Package dates handles the DD/MM/YYYY format used everywhere in the
// bot: user input, persisted documents and reminder messages.
package dates

import (
	"errors"
	"regexp"
	"strconv"
	"strings"
	"time"
)

const Layout = "02/01/2006"

var ErrInvalidFormat = errors.New("invalid date format, use DD/MM/YYYY")

var reDate = regexp.MustCompile(`^([0-2][0-9]|3[0-1])/(0[1-9]|1[0-2])/[0-9]{4}$`)

// Valid reports whether s is DD/MM/YYYY and names a real calendar day
// (31/02/2025 matches the pattern but still fails).
func Valid(s string) bool {
	if !reDate.MatchString(s) {
		return false
	}
	day, month, year := split(s)
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.Local)
	return t.Day() == day && int(t.Month()) == month && t.Year() == year
}

// Parse returns the date at local midnight, or ErrInvalidFormat.
func Parse(s string) (time.Time, error) {
	if !Valid(s) {
		return time.Time{}, ErrInvalidFormat
	}
	day, month, year := split(s)
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.Local), nil
}

func Format(t time.Time) string {
	return t.Format(Layout)
}

// RenewalSoonAt reports whether renewal falls exactly daysBefore days
// after now, comparing calendar dates only.
func RenewalSoonAt(now, renewal time.Time, daysBefore int) bool {
	target := midnight(now).AddDate(0, 0, daysBefore)
	return midnight(renewal).Equal(target)
}

func RenewalSoon(renewal time.Time, daysBefore int) bool {
	return RenewalSoonAt(time.Now(), renewal, daysBefore)
}

func split(s string) (day, month, year int) {
	parts := strings.Split(s, "/")
	day, _ = strconv.Atoi(parts[0])
	month, _ = strconv.Atoi(parts[1])
	year, _ = strconv.Atoi(parts[2])
	return
}

func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.Local)
}
