package packets

import (
	"github.com/alfarizi/ramadhan-companion/internal/fasting"
	"github.com/alfarizi/ramadhan-companion/internal/model"
)

type LocationResponse struct {
	Latitude   float64 `json:"latitude"`
	Longitude  float64 `json:"longitude"`
	City       *string `json:"city"`
	Country    *string `json:"country"`
	CapturedAt string  `json:"captured_at"`
}

type TimingsResponse struct {
	Date      string        `json:"date"`
	Timings   model.Timings `json:"timings"`
	Method    int           `json:"method"`
	FromCache bool          `json:"from_cache"`
}

type FastingStatusResponse struct {
	Status            fasting.Status `json:"status"`
	CountdownToImsak  string         `json:"countdown_to_imsak"`
	CountdownToIftar  string         `json:"countdown_to_iftar"`
	ActivePrayer      string         `json:"active_prayer"`
	NextPrayer        string         `json:"next_prayer"`
	CountdownToPrayer string         `json:"countdown_to_prayer"`
}

type QiblaResponse struct {
	Bearing    float64 `json:"bearing"`
	DistanceKm int     `json:"distance_km"`
}

type RamadhanTodayResponse struct {
	HijriYear  int    `json:"hijri_year"`
	Start      string `json:"start"`
	Day        int    `json:"day"` // 0 when outside the season
	InRamadhan bool   `json:"in_ramadhan"`
	HijriDate  string `json:"hijri_date"`
}

type FastingLogResponse struct {
	Days  []FastingDayResponse `json:"days"`
	Stats model.FastingStats   `json:"stats"`
}

type FastingDayResponse struct {
	Day    int     `json:"day"`
	Date   string  `json:"date"`
	Status string  `json:"status"`
	Reason *string `json:"reason,omitempty"`
}

type TrackerDayResponse struct {
	Day   int             `json:"day"`
	Date  string          `json:"date"`
	Items map[string]bool `json:"items"`
	Score model.DayScore  `json:"score"`
}

type TrackerStatsResponse struct {
	ItemCounts map[string]int `json:"item_counts"`
	Streak     model.Streak   `json:"streak"`
}

type SurahResponse struct {
	Surah     *model.Surah `json:"surah"`
	FromCache bool         `json:"from_cache"`
}
