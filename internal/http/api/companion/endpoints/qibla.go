package endpoints

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/alfarizi/ramadhan-companion/internal/geomath"
	"github.com/alfarizi/ramadhan-companion/internal/http/api"
	"github.com/alfarizi/ramadhan-companion/internal/http/api/companion/packets"
	"github.com/alfarizi/ramadhan-companion/internal/kv"
	"github.com/alfarizi/ramadhan-companion/internal/location"
	"github.com/alfarizi/ramadhan-companion/internal/model"
)

type QiblaController struct {
	locations *location.Service
}

// QiblaModule mounts the qibla-direction endpoint.
func QiblaModule(locations *location.Service) api.Module {
	ctl := &QiblaController{locations: locations}
	return api.ModuleFunc(func(c *api.Controller) {
		c.GET("/qibla", ctl.getQibla)
	})
}

// GET /api/companion/qibla?lat=..&lng=..
// Explicit coordinates win; otherwise the saved location is used.
func (q *QiblaController) getQibla(ctx *gin.Context, account *model.Account) (any, *api.APIError) {
	lat, lng, apiErr := q.coordinates(ctx, account)
	if apiErr != nil {
		return nil, apiErr
	}

	return packets.QiblaResponse{
		Bearing:    geomath.QiblaBearing(lat, lng),
		DistanceKm: geomath.DistanceToKaaba(lat, lng),
	}, nil
}

func (q *QiblaController) coordinates(ctx *gin.Context, account *model.Account) (float64, float64, *api.APIError) {
	latRaw, lngRaw := ctx.Query("lat"), ctx.Query("lng")
	if latRaw != "" || lngRaw != "" {
		lat, err1 := strconv.ParseFloat(latRaw, 64)
		lng, err2 := strconv.ParseFloat(lngRaw, 64)
		if err1 != nil || err2 != nil || lat < -90 || lat > 90 || lng < -180 || lng > 180 {
			return 0, 0, &api.APIError{Code: http.StatusBadRequest, Message: "invalid coordinates"}
		}
		return lat, lng, nil
	}

	loc, err := q.locations.Get(ctx, account.ID)
	if err != nil {
		if errors.Is(err, kv.ErrNotFound) {
			return 0, 0, &api.APIError{Code: http.StatusPreconditionFailed, Message: "no saved location, save one first"}
		}
		return 0, 0, &api.APIError{Code: http.StatusInternalServerError, Message: "could not read location"}
	}
	return loc.Latitude, loc.Longitude, nil
}
