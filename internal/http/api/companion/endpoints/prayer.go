package endpoints

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/alfarizi/ramadhan-companion/internal/fasting"
	"github.com/alfarizi/ramadhan-companion/internal/http/api"
	"github.com/alfarizi/ramadhan-companion/internal/http/api/companion/packets"
	"github.com/alfarizi/ramadhan-companion/internal/kv"
	"github.com/alfarizi/ramadhan-companion/internal/location"
	"github.com/alfarizi/ramadhan-companion/internal/model"
	"github.com/alfarizi/ramadhan-companion/internal/prayer"
	"github.com/alfarizi/ramadhan-companion/internal/ramadhan"
)

type PrayerController struct {
	prayers   *prayer.Service
	locations *location.Service
	now       func() time.Time
}

// PrayerModule mounts the prayer-times endpoints.
func PrayerModule(prayers *prayer.Service, locations *location.Service) api.Module {
	ctl := &PrayerController{prayers: prayers, locations: locations, now: time.Now}
	return api.ModuleFunc(func(c *api.Controller) {
		c.GET("/prayer/timings", ctl.getTimings)
		c.GET("/prayer/status", ctl.getStatus)
		c.GET("/prayer/methods", ctl.listMethods)
		c.PUT("/prayer/method", ctl.setMethod)
	})
}

// resolveTimings serves cached-or-fetched timings for the account's saved
// location.
func (p *PrayerController) resolveTimings(ctx *gin.Context, account *model.Account) (model.Timings, bool, *api.APIError) {
	loc, err := p.locations.Get(ctx, account.ID)
	if err != nil {
		if errors.Is(err, kv.ErrNotFound) {
			return nil, false, &api.APIError{Code: http.StatusPreconditionFailed, Message: "no saved location, save one first"}
		}
		return nil, false, &api.APIError{Code: http.StatusInternalServerError, Message: "could not read location"}
	}

	timings, fromCache, err := p.prayers.Fetch(ctx, account.ID, loc.Latitude, loc.Longitude)
	if err != nil {
		log.Error().Err(err).Int("account", account.ID).Msg("prayer fetch failed")
		return nil, false, &api.APIError{Code: http.StatusBadGateway, Message: "failed to retrieve prayer times"}
	}
	return timings, fromCache, nil
}

// GET /api/companion/prayer/timings
func (p *PrayerController) getTimings(ctx *gin.Context, account *model.Account) (any, *api.APIError) {
	timings, fromCache, apiErr := p.resolveTimings(ctx, account)
	if apiErr != nil {
		return nil, apiErr
	}

	return packets.TimingsResponse{
		Date:      ramadhan.DateKey(p.now()),
		Timings:   timings,
		Method:    p.prayers.Method(ctx, account.ID),
		FromCache: fromCache,
	}, nil
}

// GET /api/companion/prayer/status
func (p *PrayerController) getStatus(ctx *gin.Context, account *model.Account) (any, *api.APIError) {
	timings, _, apiErr := p.resolveTimings(ctx, account)
	if apiErr != nil {
		return nil, apiErr
	}

	now := p.now()
	status := fasting.ClassifyPhase(timings, now)
	active, next, _ := fasting.ActivePrayer(timings, now)

	return packets.FastingStatusResponse{
		Status:            status,
		CountdownToImsak:  fasting.CountdownTo(timings["Imsak"], now, true),
		CountdownToIftar:  fasting.CountdownTo(timings["Maghrib"], now, true),
		ActivePrayer:      active,
		NextPrayer:        next,
		CountdownToPrayer: fasting.CountdownTo(timings[next], now, true),
	}, nil
}

// GET /api/companion/prayer/methods
func (p *PrayerController) listMethods(ctx *gin.Context, account *model.Account) (any, *api.APIError) {
	return gin.H{
		"methods": model.CalculationMethods,
		"active":  p.prayers.Method(ctx, account.ID),
	}, nil
}

// PUT /api/companion/prayer/method
func (p *PrayerController) setMethod(ctx *gin.Context, account *model.Account) (any, *api.APIError) {
	var request packets.SetMethodRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}

	if err := p.prayers.ChangeMethod(ctx, account.ID, request.Method); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}

	log.Info().Int("account", account.ID).Int("method", request.Method).Msg("calculation method changed")
	return gin.H{"method": request.Method}, nil
}
