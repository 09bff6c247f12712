package endpoints

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/alfarizi/ramadhan-companion/internal/db"
	"github.com/alfarizi/ramadhan-companion/internal/http/api"
	"github.com/alfarizi/ramadhan-companion/internal/http/api/companion/packets"
	"github.com/alfarizi/ramadhan-companion/internal/model"
	"github.com/alfarizi/ramadhan-companion/internal/ramadhan"
	"github.com/alfarizi/ramadhan-companion/internal/tracker"
)

type TrackerController struct {
	store db.Store
	now   func() time.Time
}

// TrackerModule mounts the worship-tracker endpoints.
func TrackerModule(store db.Store) api.Module {
	ctl := &TrackerController{store: store, now: time.Now}
	return api.ModuleFunc(func(c *api.Controller) {
		c.GET("/tracker/items", ctl.getItems)
		c.GET("/tracker/stats", ctl.getStats)
		c.GET("/tracker/:day", ctl.getDay)
		c.PUT("/tracker/:day/:item", ctl.setItem)
	})
}

// GET /api/companion/tracker/items
func (t *TrackerController) getItems(ctx *gin.Context, account *model.Account) (any, *api.APIError) {
	return model.WorshipItems, nil
}

// GET /api/companion/tracker/:day
func (t *TrackerController) getDay(ctx *gin.Context, account *model.Account) (any, *api.APIError) {
	day, apiErr := t.dayParam(ctx)
	if apiErr != nil {
		return nil, apiErr
	}

	season, apiErr := currentSeason(t.now())
	if apiErr != nil {
		return nil, apiErr
	}

	key := ramadhan.DateKey(season.DayToDate(day))
	items, err := t.store.GetTrackerEntry(account.ID, key)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not read tracker"}
	}

	return t.dayResponse(day, key, items), nil
}

// PUT /api/companion/tracker/:day/:item
func (t *TrackerController) setItem(ctx *gin.Context, account *model.Account) (any, *api.APIError) {
	day, apiErr := t.dayParam(ctx)
	if apiErr != nil {
		return nil, apiErr
	}

	item := ctx.Param("item")
	if !model.ValidWorshipItem(item) {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "unknown worship item"}
	}

	var req packets.SetTrackerItemRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "invalid request body"}
	}

	season, apiErr := currentSeason(t.now())
	if apiErr != nil {
		return nil, apiErr
	}

	key := ramadhan.DateKey(season.DayToDate(day))
	if err := t.store.SetTrackerItem(account.ID, key, item, *req.Done); err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not save tracker item"}
	}

	items, err := t.store.GetTrackerEntry(account.ID, key)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not read tracker"}
	}

	return t.dayResponse(day, key, items), nil
}

// GET /api/companion/tracker/stats
func (t *TrackerController) getStats(ctx *gin.Context, account *model.Account) (any, *api.APIError) {
	season, apiErr := currentSeason(t.now())
	if apiErr != nil {
		return nil, apiErr
	}

	trackerLog, err := t.store.GetTrackerLog(account.ID)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not read tracker"}
	}

	return packets.TrackerStatsResponse{
		ItemCounts: tracker.ItemCounts(season, trackerLog),
		Streak:     tracker.SholatStreak(season, trackerLog),
	}, nil
}

func (t *TrackerController) dayParam(ctx *gin.Context) (int, *api.APIError) {
	day, err := strconv.Atoi(ctx.Param("day"))
	if err != nil || day < 1 || day > ramadhan.Days {
		return 0, &api.APIError{Code: http.StatusBadRequest, Message: "day must be between 1 and 30"}
	}
	return day, nil
}

// dayResponse normalizes a stored entry to the full item set, so untoggled
// items always show up as false.
func (t *TrackerController) dayResponse(day int, key string, stored map[string]bool) packets.TrackerDayResponse {
	items := make(map[string]bool, len(model.WorshipItems))
	done := 0
	for _, it := range model.WorshipItems {
		items[it.ID] = stored[it.ID]
		if stored[it.ID] {
			done++
		}
	}
	return packets.TrackerDayResponse{
		Day:   day,
		Date:  key,
		Items: items,
		Score: model.DayScore{Done: done, Total: len(model.WorshipItems)},
	}
}
