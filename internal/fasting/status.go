// Package fasting classifies the live fasting phase from a day's timings and
// folds the fasting log into season statistics.
package fasting

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/alfarizi/ramadhan-companion/internal/model"
)

// Phases of the fasting day, in order.
const (
	PhaseSahur = "sahur"
	PhaseImsak = "imsak"
	PhasePuasa = "puasa"
	PhaseBuka  = "buka"
)

// Status is the classified phase with its display label and accent color.
type Status struct {
	Phase string `json:"phase"`
	Label string `json:"label"`
	Color string `json:"color"`
}

var statusTable = map[string]Status{
	PhaseSahur: {PhaseSahur, "Waktu Sahur", "#10b981"},
	PhaseImsak: {PhaseImsak, "Waktu Imsak!", "#ef4444"},
	PhasePuasa: {PhasePuasa, "Sedang Berpuasa", "#3b82f6"},
	PhaseBuka:  {PhaseBuka, "Waktu Berbuka!", "#d4a843"},
}

// TimeToMinutes converts an "HH:MM" string to minutes since midnight.
// Malformed input yields 0, matching the lenient upstream handling.
func TimeToMinutes(s string) int {
	// The API may append a timezone suffix like "04:30 (WIB)".
	s = strings.TrimSpace(s)
	if i := strings.Index(s, " "); i != -1 {
		s = s[:i]
	}
	parts := strings.Split(s, ":")
	if len(parts) < 2 {
		return 0
	}
	h, err1 := strconv.Atoi(parts[0])
	m, err2 := strconv.Atoi(parts[1])
	if err1 != nil || err2 != nil {
		return 0
	}
	return h*60 + m
}

// ClassifyPhase places now within the fasting day. Boundaries are inclusive
// on the lower end: before Imsak is sahur, [Imsak, Fajr) is imsak,
// [Fajr, Maghrib) is puasa, and from Maghrib to end of day is buka.
func ClassifyPhase(timings model.Timings, now time.Time) Status {
	nowMins := now.Hour()*60 + now.Minute()

	imsak := TimeToMinutes(timings["Imsak"])
	fajr := TimeToMinutes(timings["Fajr"])
	maghrib := TimeToMinutes(timings["Maghrib"])

	switch {
	case nowMins >= maghrib:
		return statusTable[PhaseBuka]
	case nowMins >= fajr:
		return statusTable[PhasePuasa]
	case nowMins >= imsak:
		return statusTable[PhaseImsak]
	default:
		return statusTable[PhaseSahur]
	}
}

// CountdownTo formats the time remaining until the "HH:MM" target as a
// zero-padded "HH:MM:SS". When the target has already passed today and
// rollToNextDay is set, the target shifts to tomorrow; otherwise the result
// clamps at "00:00:00".
func CountdownTo(target string, now time.Time, rollToNextDay bool) string {
	if target == "" {
		return "--:--:--"
	}

	mins := TimeToMinutes(target)
	targetTime := time.Date(now.Year(), now.Month(), now.Day(), mins/60, mins%60, 0, 0, now.Location())

	if !targetTime.After(now) && rollToNextDay {
		targetTime = targetTime.AddDate(0, 0, 1)
	}

	diff := targetTime.Sub(now)
	if diff <= 0 {
		return "00:00:00"
	}

	h := int(diff.Hours())
	m := int(diff.Minutes()) % 60
	s := int(diff.Seconds()) % 60
	return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
}

// ActivePrayer returns the key of the prayer currently in effect and the one
// coming next. When all of today's prayers have passed, next wraps to the
// first prayer with its minutes pushed past midnight.
func ActivePrayer(timings model.Timings, now time.Time) (active, next string, nextMins int) {
	nowMins := now.Hour()*60 + now.Minute()

	type entry struct {
		key  string
		mins int
	}
	var list []entry
	for _, p := range model.PrayerNames {
		raw, ok := timings[p.Key]
		if !ok || !strings.Contains(raw, ":") {
			continue
		}
		list = append(list, entry{p.Key, TimeToMinutes(raw)})
	}
	if len(list) == 0 {
		return "", "", 0
	}

	for i := len(list) - 1; i >= 0; i-- {
		if nowMins >= list[i].mins {
			active = list[i].key
			break
		}
	}
	for _, e := range list {
		if e.mins > nowMins {
			return active, e.key, e.mins
		}
	}
	return active, list[0].key, list[0].mins + 24*60
}
