package core

import "time"

// dateLayout is the only accepted trip date format.
const dateLayout = "2006-01-02"

// ParseDate parses value as a calendar date in YYYY-MM-DD form. The boolean
// is false when value is not a real calendar date (wrong shape, or an
// impossible day like 2024-02-30). Callers use it to distinguish
// "unparseable" from "missing"; missing values never reach this function.
func ParseDate(value string) (time.Time, bool) {
	d, err := time.Parse(dateLayout, value)
	if err != nil {
		return time.Time{}, false
	}
	return d, true
}

// FormatDate renders d in the canonical YYYY-MM-DD form.
func FormatDate(d time.Time) string {
	return d.Format(dateLayout)
}

// DaysUntil returns the whole-day difference between now's calendar date and
// the trip date. Both sides are truncated to midnight UTC first, so a trip
// five days out counts as 5 regardless of the time of day now.
func DaysUntil(trip time.Time, now time.Time) int {
	y, m, d := now.UTC().Date()
	today := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	ty, tm, td := trip.Date()
	tripDay := time.Date(ty, tm, td, 0, 0, 0, 0, time.UTC)
	return int(tripDay.Sub(today) / (24 * time.Hour))
}
