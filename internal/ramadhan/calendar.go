// Package ramadhan maps Hijri years to their Gregorian Ramadhan window and
// converts between 1-based day numbers and calendar date keys.
package ramadhan

import (
	"fmt"
	"time"
)

// Days is the length of the tracked season.
const Days = 30

// DateKeyLayout is the canonical log key format used everywhere.
const DateKeyLayout = "2006-01-02"

// ramadhanStarts maps a Hijri year to the Gregorian first day of Ramadhan.
// The horizon is maintained by hand; true correspondence depends on lunar
// observation, so years outside the table are reported, not guessed.
var ramadhanStarts = map[int]time.Time{
	1446: time.Date(2025, time.March, 1, 0, 0, 0, 0, time.Local),
	1447: time.Date(2026, time.February, 19, 0, 0, 0, 0, time.Local),
	1448: time.Date(2027, time.February, 8, 0, 0, 0, 0, time.Local),
	1449: time.Date(2028, time.January, 28, 0, 0, 0, 0, time.Local),
	1450: time.Date(2029, time.January, 17, 0, 0, 0, 0, time.Local),
}

// ErrYearOutOfRange is returned when the Hijri year falls outside the
// maintained start-date table.
type ErrYearOutOfRange struct {
	Year int
}

func (e ErrYearOutOfRange) Error() string {
	return fmt.Sprintf("hijri year %d is outside the known ramadhan table", e.Year)
}

// ResolveStart returns the Gregorian start date of Ramadhan for the given
// Hijri year.
func ResolveStart(hijriYear int) (time.Time, error) {
	start, ok := ramadhanStarts[hijriYear]
	if !ok {
		return time.Time{}, ErrYearOutOfRange{Year: hijriYear}
	}
	return start, nil
}

// KnownYears lists the Hijri years present in the table, for reporting.
func KnownYears() []int {
	years := make([]int, 0, len(ramadhanStarts))
	for y := range ramadhanStarts {
		years = append(years, y)
	}
	return years
}

// Season is the resolved 30-day window for one Hijri year.
type Season struct {
	HijriYear int
	Start     time.Time
}

// NewSeason resolves the season for a Hijri year.
func NewSeason(hijriYear int) (Season, error) {
	start, err := ResolveStart(hijriYear)
	if err != nil {
		return Season{}, err
	}
	return Season{HijriYear: hijriYear, Start: start}, nil
}

// CurrentSeason picks the season for "now": the one whose 30-day window
// contains it, otherwise the next upcoming one. Past the last tabled season
// the year can no longer be resolved and the condition is reported.
func CurrentSeason(now time.Time) (Season, error) {
	var best Season
	found := false
	for year, start := range ramadhanStarts {
		if now.Before(start.AddDate(0, 0, Days)) {
			if !found || start.Before(best.Start) {
				best = Season{HijriYear: year, Start: start}
				found = true
			}
		}
	}
	if !found {
		last := 0
		for year := range ramadhanStarts {
			if year > last {
				last = year
			}
		}
		return Season{}, ErrYearOutOfRange{Year: last + 1}
	}
	return best, nil
}

// DayToDate returns the calendar date of the 1-based Ramadhan day.
func (s Season) DayToDate(day int) time.Time {
	return s.Start.AddDate(0, 0, day-1)
}

// DateKey formats a date as its canonical "YYYY-MM-DD" log key.
func DateKey(t time.Time) string {
	return t.Format(DateKeyLayout)
}

// DayFromKey maps a "YYYY-MM-DD" key back to its 1-based day number.
// ok is false when the key is malformed or outside the season.
func (s Season) DayFromKey(key string) (int, bool) {
	t, err := time.ParseInLocation(DateKeyLayout, key, s.Start.Location())
	if err != nil {
		return 0, false
	}
	return s.DayIndex(t)
}

// DayIndex returns the 1-based day number of the given date, or ok=false
// when the date falls outside [start, start+30). The difference is counted
// in calendar days, not hours: a DST transition shortens or stretches a day
// without shifting the numbering.
func (s Season) DayIndex(t time.Time) (int, bool) {
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	start := time.Date(s.Start.Year(), s.Start.Month(), s.Start.Day(), 0, 0, 0, 0, time.UTC)
	diff := int(day.Sub(start).Hours() / 24)
	if diff < 0 || diff >= Days {
		return 0, false
	}
	return diff + 1, true
}

// DayKeys returns the 30 canonical date keys of the season in order.
func (s Season) DayKeys() []string {
	keys := make([]string, 0, Days)
	for d := 1; d <= Days; d++ {
		keys = append(keys, DateKey(s.DayToDate(d)))
	}
	return keys
}
