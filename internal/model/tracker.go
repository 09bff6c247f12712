package model

import "time"

// WorshipItem is one trackable act of worship.
type WorshipItem struct {
	ID       string `json:"id"`
	Label    string `json:"label"`
	Category string `json:"category"`
}

// Worship categories.
const (
	CategorySholat = "sholat"
	CategorySunnah = "sunnah"
)

// WorshipItems lists the eight tracked acts: the five fard prayers plus
// three sunnah acts.
var WorshipItems = []WorshipItem{
	{ID: "subuh", Label: "Sholat Subuh", Category: CategorySholat},
	{ID: "dzuhur", Label: "Sholat Dzuhur", Category: CategorySholat},
	{ID: "ashar", Label: "Sholat Ashar", Category: CategorySholat},
	{ID: "maghrib", Label: "Sholat Maghrib", Category: CategorySholat},
	{ID: "isya", Label: "Sholat Isya", Category: CategorySholat},
	{ID: "tarawih", Label: "Tarawih", Category: CategorySunnah},
	{ID: "tadarus", Label: "Tadarus Qur'an", Category: CategorySunnah},
	{ID: "sedekah", Label: "Sedekah", Category: CategorySunnah},
}

// ValidWorshipItem reports whether id names a tracked act.
func ValidWorshipItem(id string) bool {
	for _, it := range WorshipItems {
		if it.ID == id {
			return true
		}
	}
	return false
}

// SholatItemIDs returns the ids of the five fard prayers.
func SholatItemIDs() []string {
	var ids []string
	for _, it := range WorshipItems {
		if it.Category == CategorySholat {
			ids = append(ids, it.ID)
		}
	}
	return ids
}

// TrackerEntry is one day of the worship tracker: item id -> done.
type TrackerEntry struct {
	Date      string          `json:"date"`
	Items     map[string]bool `json:"items"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// TrackerItemRow is the persisted form, one row per toggled item.
type TrackerItemRow struct {
	AccountID int       `db:"account_id"`
	Date      string    `db:"date"`
	Item      string    `db:"item"`
	Done      bool      `db:"done"`
	UpdatedAt time.Time `db:"updated_at"`
}

// DayScore is how many items were completed on one day.
type DayScore struct {
	Done  int `json:"done"`
	Total int `json:"total"`
}

// Streak reports consecutive days with all five fard prayers complete.
type Streak struct {
	Current int `json:"current"`
	Max     int `json:"max"`
}
