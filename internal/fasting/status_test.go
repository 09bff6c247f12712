package fasting

import (
	"testing"
	"time"

	"github.com/alfarizi/ramadhan-companion/internal/model"
	"github.com/alfarizi/ramadhan-companion/internal/ramadhan"
)

func at(hour, min int) time.Time {
	return time.Date(2026, time.February, 20, hour, min, 0, 0, time.UTC)
}

var dayTimings = model.Timings{
	"Imsak":   "04:00",
	"Fajr":    "04:10",
	"Dhuhr":   "12:00",
	"Asr":     "15:15",
	"Maghrib": "18:00",
	"Isha":    "19:15",
}

func TestClassifyPhase(t *testing.T) {
	tests := []struct {
		hour, min int
		want      string
	}{
		{3, 0, PhaseSahur},
		{4, 0, PhaseImsak}, // boundary inclusive on the lower end
		{4, 5, PhaseImsak},
		{4, 10, PhasePuasa},
		{4, 15, PhasePuasa},
		{12, 30, PhasePuasa},
		{18, 0, PhaseBuka}, // maghrib exactly
		{23, 59, PhaseBuka},
		{0, 0, PhaseSahur},
	}
	for _, tt := range tests {
		got := ClassifyPhase(dayTimings, at(tt.hour, tt.min))
		if got.Phase != tt.want {
			t.Errorf("ClassifyPhase at %02d:%02d = %s, want %s", tt.hour, tt.min, got.Phase, tt.want)
		}
	}
}

func TestClassifyPhaseHasLabel(t *testing.T) {
	s := ClassifyPhase(dayTimings, at(5, 0))
	if s.Label == "" || s.Color == "" {
		t.Errorf("phase %s missing label or color: %+v", s.Phase, s)
	}
}

func TestCountdownTo(t *testing.T) {
	tests := []struct {
		name   string
		target string
		now    time.Time
		roll   bool
		want   string
	}{
		{"later today", "18:00", at(15, 30), true, "02:30:00"},
		{"passed rolls to tomorrow", "04:00", at(5, 0), true, "23:00:00"},
		{"passed without rollover clamps", "04:00", at(5, 0), false, "00:00:00"},
		{"empty target", "", at(5, 0), true, "--:--:--"},
		{"exactly now rolls", "15:30", at(15, 30), true, "24:00:00"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CountdownTo(tt.target, tt.now, tt.roll); got != tt.want {
				t.Errorf("CountdownTo(%q) = %q, want %q", tt.target, got, tt.want)
			}
		})
	}
}

func TestCountdownSeconds(t *testing.T) {
	now := time.Date(2026, time.February, 20, 17, 59, 30, 0, time.UTC)
	if got := CountdownTo("18:00", now, false); got != "00:00:30" {
		t.Errorf("got %q, want 00:00:30", got)
	}
}

func TestActivePrayer(t *testing.T) {
	active, next, nextMins := ActivePrayer(dayTimings, at(13, 0))
	if active != "Dhuhr" || next != "Asr" {
		t.Errorf("at 13:00 got active=%s next=%s, want Dhuhr/Asr", active, next)
	}
	if nextMins != 15*60+15 {
		t.Errorf("nextMins = %d, want %d", nextMins, 15*60+15)
	}

	// After Isha the next prayer wraps to tomorrow's Fajr.
	active, next, nextMins = ActivePrayer(dayTimings, at(22, 0))
	if active != "Isha" || next != "Fajr" {
		t.Errorf("at 22:00 got active=%s next=%s, want Isha/Fajr", active, next)
	}
	if nextMins != 4*60+10+24*60 {
		t.Errorf("wrapped nextMins = %d", nextMins)
	}
}

func TestTimeToMinutes(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"04:30", 270},
		{"18:00 (WIB)", 1080},
		{"garbage", 0},
		{"", 0},
		{"7", 0},
	}
	for _, tt := range tests {
		if got := TimeToMinutes(tt.in); got != tt.want {
			t.Errorf("TimeToMinutes(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestStats(t *testing.T) {
	season, err := ramadhan.NewSeason(1446)
	if err != nil {
		t.Fatal(err)
	}

	log := map[string]model.FastingEntry{}
	keys := season.DayKeys()
	for i := 0; i < 12; i++ {
		log[keys[i]] = model.FastingEntry{Date: keys[i], Status: model.StatusFasting}
	}
	reason := "Sakit"
	log[keys[12]] = model.FastingEntry{Date: keys[12], Status: model.StatusNotFasting, Reason: &reason}

	stats := Stats(season, log)
	if stats.Fasting != 12 || stats.NotFasting != 1 || stats.Unset != 17 || stats.Total != 30 {
		t.Errorf("unexpected stats: %+v", stats)
	}
}

func TestStatsEmptyLog(t *testing.T) {
	season, _ := ramadhan.NewSeason(1446)
	stats := Stats(season, nil)
	if stats.Unset != 30 || stats.Total != 30 {
		t.Errorf("empty log stats: %+v", stats)
	}
}
