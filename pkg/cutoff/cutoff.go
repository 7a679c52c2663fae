// Package cutoff decides whether ordering from a menu category is currently
// permitted for a target delivery date. It is the single implementation of
// the advance-order rule; every caller delegates here.
//
// Boundary rules: the day difference is computed on calendar dates in now's
// location, the cutoff comparison is inclusive (ordering at exactly the
// cutoff minute is allowed), and the weekday filter applies to the target
// date only.
package cutoff

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// ErrBadCutoffTime is returned when a policy carries a cutoff time that is
// not a valid "HH:MM" clock value.
var ErrBadCutoffTime = errors.New("invalid cutoff time")

// Policy is a menu category's advance-order policy.
type Policy struct {
	// AdvanceDays is 0 for same-day categories and 1 for next-day categories.
	AdvanceDays int
	// CutoffTime is the latest time of day an order may be placed, "HH:MM".
	CutoffTime string
}

// parseClock turns "HH:MM" into minutes since midnight.
func parseClock(s string) (int, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) != 2 {
		return 0, fmt.Errorf("%w: %q", ErrBadCutoffTime, s)
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil || h < 0 || h > 23 {
		return 0, fmt.Errorf("%w: %q", ErrBadCutoffTime, s)
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil || m < 0 || m > 59 {
		return 0, fmt.Errorf("%w: %q", ErrBadCutoffTime, s)
	}
	return h*60 + m, nil
}

// dateOnly truncates t to midnight in its own location.
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// isOrderableWeekday reports whether the date falls on a valid order day.
// Delivery runs Sunday through Thursday; Friday and Saturday are never
// orderable regardless of cutoff.
func isOrderableWeekday(d time.Time) bool {
	wd := d.Weekday()
	return wd != time.Friday && wd != time.Saturday
}

// IsOrderingAllowed reports whether an order for targetDate may be placed at
// the moment now, under the category's policy. A malformed cutoff time
// disallows ordering rather than failing open.
func IsOrderingAllowed(p Policy, now time.Time, targetDate time.Time) bool {
	target := dateOnly(targetDate.In(now.Location()))
	if !isOrderableWeekday(target) {
		return false
	}

	cutoffMins, err := parseClock(p.CutoffTime)
	if err != nil {
		return false
	}

	today := dateOnly(now)
	// Round so a DST-shortened day still counts as one calendar day.
	dayDiff := int(math.Round(target.Sub(today).Hours() / 24))
	nowMins := now.Hour()*60 + now.Minute()

	if p.AdvanceDays >= 1 {
		// Next-day categories: tomorrow until cutoff, anything further always.
		switch {
		case dayDiff >= 2:
			return true
		case dayDiff == 1:
			return nowMins <= cutoffMins
		default:
			return false
		}
	}

	// Same-day categories: today until cutoff, any future date always.
	switch {
	case dayDiff >= 1:
		return true
	case dayDiff == 0:
		return nowMins <= cutoffMins
	default:
		return false
	}
}

// OrderableDates returns the dates within the next horizon days (starting
// today) for which ordering is currently allowed, in ascending order. Used by
// the menu browsing endpoints to offer only placeable delivery dates.
func OrderableDates(p Policy, now time.Time, horizon int) []time.Time {
	var dates []time.Time
	start := dateOnly(now)
	for i := 0; i <= horizon; i++ {
		d := start.AddDate(0, 0, i)
		if IsOrderingAllowed(p, now, d) {
			dates = append(dates, d)
		}
	}
	return dates
}
