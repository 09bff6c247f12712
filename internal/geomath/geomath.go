// Package geomath holds the great-circle math behind the qibla compass.
package geomath

import "math"

// Ka'bah coordinates, the fixed target for qibla calculations.
const (
	KaabaLatitude  = 21.4225
	KaabaLongitude = 39.8262
)

const earthRadiusKm = 6371

func toRad(deg float64) float64 { return deg * math.Pi / 180 }
func toDeg(rad float64) float64 { return rad * 180 / math.Pi }

// QiblaBearing returns the initial great-circle bearing in degrees [0, 360)
// from the observer to the Ka'bah. At the Ka'bah itself the atan2 input
// degenerates to (0, 0) and the bearing is 0.
func QiblaBearing(lat, lng float64) float64 {
	lat1 := toRad(lat)
	lat2 := toRad(KaabaLatitude)
	dLng := toRad(KaabaLongitude - lng)

	x := math.Sin(dLng) * math.Cos(lat2)
	y := math.Cos(lat1)*math.Sin(lat2) - math.Sin(lat1)*math.Cos(lat2)*math.Cos(dLng)

	bearing := toDeg(math.Atan2(x, y))
	return math.Mod(bearing+360, 360)
}

// DistanceToKaaba returns the haversine distance from the observer to the
// Ka'bah, rounded to the nearest kilometer.
func DistanceToKaaba(lat, lng float64) int {
	dLat := toRad(KaabaLatitude - lat)
	dLng := toRad(KaabaLongitude - lng)

	a := math.Pow(math.Sin(dLat/2), 2) +
		math.Cos(toRad(lat))*math.Cos(toRad(KaabaLatitude))*math.Pow(math.Sin(dLng/2), 2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return int(math.Round(earthRadiusKm * c))
}
