package model

// Timings maps a prayer or event name ("Fajr", "Maghrib", "Imsak", ...) to
// its "HH:MM" time of day as returned by the Al Adhan API.
type Timings map[string]string

// MandatoryPrayers are the five timing keys a usable set must contain.
var MandatoryPrayers = []string{"Fajr", "Dhuhr", "Asr", "Maghrib", "Isha"}

// PrayerNames lists the displayed prayers in chronological order with their
// Indonesian labels.
var PrayerNames = []struct {
	Key   string
	Label string
}{
	{"Fajr", "Subuh"},
	{"Dhuhr", "Dzuhur"},
	{"Asr", "Ashar"},
	{"Maghrib", "Maghrib"},
	{"Isha", "Isya"},
}

// CalculationMethod identifies a published astronomical convention by the
// Al Adhan method id.
type CalculationMethod struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

const DefaultMethodID = 20

var CalculationMethods = []CalculationMethod{
	{ID: 20, Name: "Kemenag Indonesia"},
	{ID: 11, Name: "Muslim World League"},
	{ID: 2, Name: "Islamic Society of NA"},
	{ID: 5, Name: "Umm Al-Qura (Makkah)"},
	{ID: 3, Name: "Egyptian Authority"},
}

// ValidMethodID reports whether id names one of the supported methods.
func ValidMethodID(id int) bool {
	for _, m := range CalculationMethods {
		if m.ID == id {
			return true
		}
	}
	return false
}
