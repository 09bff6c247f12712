// Package tracker folds the worship log into per-day scores, per-item counts,
// and prayer streaks.
package tracker

import (
	"github.com/alfarizi/ramadhan-companion/internal/model"
	"github.com/alfarizi/ramadhan-companion/internal/ramadhan"
)

// Log is a date-keyed worship log: "YYYY-MM-DD" -> item id -> done.
type Log map[string]map[string]bool

// DayScore counts the completed items for the given 1-based day.
// A missing entry scores zero out of the full item count.
func DayScore(season ramadhan.Season, log Log, day int) model.DayScore {
	entry := log[ramadhan.DateKey(season.DayToDate(day))]
	score := model.DayScore{Total: len(model.WorshipItems)}
	for _, it := range model.WorshipItems {
		if entry[it.ID] {
			score.Done++
		}
	}
	return score
}

// ItemCounts returns, per worship item, the number of days it was marked done
// across the whole season.
func ItemCounts(season ramadhan.Season, log Log) map[string]int {
	counts := make(map[string]int, len(model.WorshipItems))
	for _, it := range model.WorshipItems {
		counts[it.ID] = 0
	}
	for _, key := range season.DayKeys() {
		entry := log[key]
		for _, it := range model.WorshipItems {
			if entry[it.ID] {
				counts[it.ID]++
			}
		}
	}
	return counts
}

// SholatStreak scans days 1..30 in order. A day joins the streak only when
// all five fard prayers are done; any incomplete day resets the run.
// Current is the trailing run ending at day 30, Max the best run anywhere.
func SholatStreak(season ramadhan.Season, log Log) model.Streak {
	sholatIDs := model.SholatItemIDs()

	var current, max int
	for _, key := range season.DayKeys() {
		entry := log[key]
		complete := true
		for _, id := range sholatIDs {
			if !entry[id] {
				complete = false
				break
			}
		}
		if complete {
			current++
			if current > max {
				max = current
			}
		} else {
			current = 0
		}
	}
	return model.Streak{Current: current, Max: max}
}
