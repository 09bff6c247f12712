package endpoints

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/alfarizi/ramadhan-companion/internal/http/api"
	"github.com/alfarizi/ramadhan-companion/internal/http/api/companion/packets"
	"github.com/alfarizi/ramadhan-companion/internal/kv"
	"github.com/alfarizi/ramadhan-companion/internal/location"
	"github.com/alfarizi/ramadhan-companion/internal/model"
)

type LocationController struct {
	locations *location.Service
}

// LocationModule mounts the saved-location endpoints.
func LocationModule(locations *location.Service) api.Module {
	ctl := &LocationController{locations: locations}
	return api.ModuleFunc(func(c *api.Controller) {
		c.GET("/location", ctl.getLocation)
		c.PUT("/location", ctl.saveLocation)
	})
}

// GET /api/companion/location
func (l *LocationController) getLocation(ctx *gin.Context, account *model.Account) (any, *api.APIError) {
	loc, err := l.locations.Get(ctx, account.ID)
	if err != nil {
		if errors.Is(err, kv.ErrNotFound) {
			return nil, &api.APIError{Code: http.StatusNotFound, Message: "no saved location"}
		}
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not read location"}
	}
	return locationResponse(loc), nil
}

// PUT /api/companion/location
func (l *LocationController) saveLocation(ctx *gin.Context, account *model.Account) (any, *api.APIError) {
	var request packets.SaveLocationRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}

	loc, err := l.locations.Save(ctx, account.ID, *request.Latitude, *request.Longitude)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not save location"}
	}

	log.Info().Int("account", account.ID).
		Float64("lat", loc.Latitude).Float64("lng", loc.Longitude).
		Msg("location saved")
	return locationResponse(loc), nil
}

func locationResponse(loc model.Location) packets.LocationResponse {
	return packets.LocationResponse{
		Latitude:   loc.Latitude,
		Longitude:  loc.Longitude,
		City:       loc.City,
		Country:    loc.Country,
		CapturedAt: loc.CapturedAt.Format(time.RFC3339),
	}
}
