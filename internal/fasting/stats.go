package fasting

import (
	"github.com/alfarizi/ramadhan-companion/internal/model"
	"github.com/alfarizi/ramadhan-companion/internal/ramadhan"
)

// Stats folds a date-keyed fasting log into season counts. All 30 canonical
// day keys are visited; days missing from the log count as unset.
func Stats(season ramadhan.Season, log map[string]model.FastingEntry) model.FastingStats {
	stats := model.FastingStats{Total: ramadhan.Days}
	for _, key := range season.DayKeys() {
		entry, ok := log[key]
		if !ok {
			stats.Unset++
			continue
		}
		switch entry.Status {
		case model.StatusFasting:
			stats.Fasting++
		case model.StatusNotFasting:
			stats.NotFasting++
		default:
			stats.Unset++
		}
	}
	return stats
}
