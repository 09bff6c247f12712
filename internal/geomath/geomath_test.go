package geomath

import (
	"math"
	"testing"
)

func TestQiblaBearingRange(t *testing.T) {
	coords := []struct{ lat, lng float64 }{
		{-6.2, 106.8},   // Jakarta
		{51.5, -0.12},   // London
		{40.7, -74.0},   // New York
		{-33.9, 151.2},  // Sydney
		{90, 0},         // north pole
		{-90, 0},        // south pole
		{0, 180},        // antimeridian
		{21.4225, -140}, // same latitude, far west
	}
	for _, c := range coords {
		b := QiblaBearing(c.lat, c.lng)
		if b < 0 || b >= 360 {
			t.Errorf("QiblaBearing(%v, %v) = %v, want [0, 360)", c.lat, c.lng, b)
		}
	}
}

func TestQiblaBearingKnownValues(t *testing.T) {
	tests := []struct {
		name     string
		lat, lng float64
		want     float64
	}{
		{"jakarta is roughly northwest", -6.2088, 106.8456, 295.15},
		{"london is roughly southeast", 51.5074, -0.1278, 118.99},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := QiblaBearing(tt.lat, tt.lng)
			if math.Abs(got-tt.want) > 0.5 {
				t.Errorf("QiblaBearing(%v, %v) = %v, want ~%v", tt.lat, tt.lng, got, tt.want)
			}
		})
	}
}

func TestQiblaBearingAtKaaba(t *testing.T) {
	// Degenerate input: atan2(0, 0) is defined as 0 in Go.
	if got := QiblaBearing(KaabaLatitude, KaabaLongitude); got != 0 {
		t.Errorf("bearing at the Ka'bah = %v, want 0", got)
	}
}

func TestDistanceToKaaba(t *testing.T) {
	if got := DistanceToKaaba(KaabaLatitude, KaabaLongitude); got != 0 {
		t.Errorf("distance at the Ka'bah = %d, want 0", got)
	}

	// Jakarta to Makkah is about 7,900 km.
	got := DistanceToKaaba(-6.2088, 106.8456)
	if got < 7800 || got > 8050 {
		t.Errorf("distance from Jakarta = %d, want ~7900", got)
	}
}
