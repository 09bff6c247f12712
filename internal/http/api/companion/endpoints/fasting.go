package endpoints

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/alfarizi/ramadhan-companion/internal/db"
	"github.com/alfarizi/ramadhan-companion/internal/fasting"
	"github.com/alfarizi/ramadhan-companion/internal/http/api"
	"github.com/alfarizi/ramadhan-companion/internal/http/api/companion/packets"
	"github.com/alfarizi/ramadhan-companion/internal/model"
	"github.com/alfarizi/ramadhan-companion/internal/ramadhan"
)

type FastingController struct {
	store db.Store
	now   func() time.Time
}

// FastingModule mounts the fasting-log endpoints.
func FastingModule(store db.Store) api.Module {
	ctl := &FastingController{store: store, now: time.Now}
	return api.ModuleFunc(func(c *api.Controller) {
		c.GET("/fasting/log", ctl.getLog)
		c.GET("/fasting/stats", ctl.getStats)
		c.GET("/fasting/doa", ctl.getDoas)
		c.PUT("/fasting/log/:day", ctl.setDay)
	})
}

// GET /api/companion/fasting/log
func (f *FastingController) getLog(ctx *gin.Context, account *model.Account) (any, *api.APIError) {
	season, apiErr := currentSeason(f.now())
	if apiErr != nil {
		return nil, apiErr
	}

	logEntries, err := f.store.GetFastingLog(account.ID)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not read fasting log"}
	}

	days := make([]packets.FastingDayResponse, 0, ramadhan.Days)
	for d := 1; d <= ramadhan.Days; d++ {
		key := ramadhan.DateKey(season.DayToDate(d))
		day := packets.FastingDayResponse{Day: d, Date: key, Status: model.StatusUnset}
		if entry, ok := logEntries[key]; ok {
			day.Status = entry.Status
			day.Reason = entry.Reason
		}
		days = append(days, day)
	}

	return packets.FastingLogResponse{
		Days:  days,
		Stats: fasting.Stats(season, logEntries),
	}, nil
}

// GET /api/companion/fasting/stats
func (f *FastingController) getStats(ctx *gin.Context, account *model.Account) (any, *api.APIError) {
	season, apiErr := currentSeason(f.now())
	if apiErr != nil {
		return nil, apiErr
	}

	logEntries, err := f.store.GetFastingLog(account.ID)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not read fasting log"}
	}

	return fasting.Stats(season, logEntries), nil
}

// GET /api/companion/fasting/doa
func (f *FastingController) getDoas(ctx *gin.Context, account *model.Account) (any, *api.APIError) {
	return model.FastingDoas, nil
}

// PUT /api/companion/fasting/log/:day
func (f *FastingController) setDay(ctx *gin.Context, account *model.Account) (any, *api.APIError) {
	day, err := strconv.Atoi(ctx.Param("day"))
	if err != nil || day < 1 || day > ramadhan.Days {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "day must be between 1 and 30"}
	}

	var req packets.SetFastingDayRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "invalid request body"}
	}

	// An exemption reason only makes sense on a not-fasting day.
	reason := req.Reason
	if req.Status != model.StatusNotFasting {
		reason = nil
	}

	season, apiErr := currentSeason(f.now())
	if apiErr != nil {
		return nil, apiErr
	}

	key := ramadhan.DateKey(season.DayToDate(day))
	if err := f.store.UpsertFastingDay(account.ID, key, req.Status, reason); err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not save fasting day"}
	}

	return packets.FastingDayResponse{Day: day, Date: key, Status: req.Status, Reason: reason}, nil
}

// currentSeason resolves the active season or reports why it cannot.
func currentSeason(now time.Time) (ramadhan.Season, *api.APIError) {
	season, err := ramadhan.CurrentSeason(now)
	if err != nil {
		return ramadhan.Season{}, &api.APIError{Code: http.StatusUnprocessableEntity, Message: err.Error()}
	}
	return season, nil
}
