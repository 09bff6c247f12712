package packets

// Coordinates are pointers so that 0 (equator, prime meridian) survives the
// required check.
type SaveLocationRequest struct {
	Latitude  *float64 `json:"latitude" binding:"required,min=-90,max=90"`
	Longitude *float64 `json:"longitude" binding:"required,min=-180,max=180"`
}

type SetMethodRequest struct {
	Method int `json:"method" binding:"required"`
}

type SetFastingDayRequest struct {
	Status string  `json:"status" binding:"required,oneof=puasa tidak belum"`
	Reason *string `json:"reason"`
}

type SetTrackerItemRequest struct {
	Done *bool `json:"done" binding:"required"`
}

type SaveBookmarkRequest struct {
	Surah int `json:"surah" binding:"required,min=1,max=114"`
	Ayah  int `json:"ayah" binding:"required,min=1"`
}
