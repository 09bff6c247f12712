package model

import "time"

// Location is the account's saved position. It is overwritten wholesale on
// every save; no history is kept.
type Location struct {
	Latitude   float64   `json:"latitude"`
	Longitude  float64   `json:"longitude"`
	City       *string   `json:"city"`
	Country    *string   `json:"country"`
	CapturedAt time.Time `json:"captured_at"`
}
