package ramadhan

import (
	"errors"
	"testing"
	"time"
)

func TestResolveStart(t *testing.T) {
	start, err := ResolveStart(1447)
	if err != nil {
		t.Fatalf("ResolveStart(1447): %v", err)
	}
	if start.Year() != 2026 || start.Month() != time.February || start.Day() != 19 {
		t.Errorf("ResolveStart(1447) = %v, want 2026-02-19", start)
	}
}

func TestResolveStartOutOfRange(t *testing.T) {
	_, err := ResolveStart(1455)
	if err == nil {
		t.Fatal("expected error for year outside the table")
	}
	var oor ErrYearOutOfRange
	if !errors.As(err, &oor) {
		t.Fatalf("expected ErrYearOutOfRange, got %T", err)
	}
	if oor.Year != 1455 {
		t.Errorf("reported year = %d, want 1455", oor.Year)
	}
}

func TestDayDateRoundTrip(t *testing.T) {
	season, err := NewSeason(1446)
	if err != nil {
		t.Fatal(err)
	}
	for d := 1; d <= Days; d++ {
		key := DateKey(season.DayToDate(d))
		got, ok := season.DayFromKey(key)
		if !ok || got != d {
			t.Errorf("round-trip day %d: got (%d, %v)", d, got, ok)
		}
	}
}

func TestDayRoundTripAcrossDSTChange(t *testing.T) {
	// The 2025 window spans the US spring-forward on March 9, which makes
	// that day 23 wall-clock hours long. Day numbering counts calendar days
	// and must not slip.
	ny, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Skipf("tz database unavailable: %v", err)
	}
	season := Season{
		HijriYear: 1446,
		Start:     time.Date(2025, time.March, 1, 0, 0, 0, 0, ny),
	}
	for d := 1; d <= Days; d++ {
		key := DateKey(season.DayToDate(d))
		got, ok := season.DayFromKey(key)
		if !ok || got != d {
			t.Errorf("round-trip day %d via key %s: got (%d, %v)", d, key, got, ok)
		}
	}
	if got, ok := season.DayIndex(time.Date(2025, time.March, 10, 12, 0, 0, 0, ny)); !ok || got != 10 {
		t.Errorf("DayIndex(2025-03-10) = (%d, %v), want (10, true)", got, ok)
	}
}

func TestDayIndexWindow(t *testing.T) {
	season, _ := NewSeason(1446) // starts 2025-03-01

	tests := []struct {
		date    string
		wantDay int
		wantOK  bool
	}{
		{"2025-02-28", 0, false},
		{"2025-03-01", 1, true},
		{"2025-03-15", 15, true},
		{"2025-03-30", 30, true},
		{"2025-03-31", 0, false},
		{"2025-04-10", 0, false},
	}
	for _, tt := range tests {
		d, _ := time.ParseInLocation(DateKeyLayout, tt.date, time.Local)
		got, ok := season.DayIndex(d)
		if got != tt.wantDay || ok != tt.wantOK {
			t.Errorf("DayIndex(%s) = (%d, %v), want (%d, %v)", tt.date, got, ok, tt.wantDay, tt.wantOK)
		}
	}
}

func TestCurrentSeason(t *testing.T) {
	tests := []struct {
		now      string
		wantYear int
	}{
		{"2025-03-15", 1446}, // inside 1446
		{"2025-06-01", 1447}, // between seasons: next upcoming
		{"2026-02-19", 1447}, // first day
		{"2028-12-25", 1450},
	}
	for _, tt := range tests {
		now, _ := time.ParseInLocation(DateKeyLayout, tt.now, time.Local)
		season, err := CurrentSeason(now)
		if err != nil {
			t.Errorf("CurrentSeason(%s): %v", tt.now, err)
			continue
		}
		if season.HijriYear != tt.wantYear {
			t.Errorf("CurrentSeason(%s) = %d, want %d", tt.now, season.HijriYear, tt.wantYear)
		}
	}
}

func TestCurrentSeasonBeyondTable(t *testing.T) {
	now, _ := time.ParseInLocation(DateKeyLayout, "2030-06-01", time.Local)
	_, err := CurrentSeason(now)
	var oor ErrYearOutOfRange
	if !errors.As(err, &oor) {
		t.Fatalf("expected ErrYearOutOfRange past the table, got %v", err)
	}
}

func TestDayKeys(t *testing.T) {
	season, _ := NewSeason(1447)
	keys := season.DayKeys()
	if len(keys) != Days {
		t.Fatalf("got %d keys, want %d", len(keys), Days)
	}
	if keys[0] != "2026-02-19" {
		t.Errorf("first key = %s, want 2026-02-19", keys[0])
	}
	if keys[29] != "2026-03-20" {
		t.Errorf("last key = %s, want 2026-03-20", keys[29])
	}
}
