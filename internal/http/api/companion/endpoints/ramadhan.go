package endpoints

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/alfarizi/ramadhan-companion/internal/aladhan"
	"github.com/alfarizi/ramadhan-companion/internal/http/api"
	"github.com/alfarizi/ramadhan-companion/internal/http/api/companion/packets"
	"github.com/alfarizi/ramadhan-companion/internal/model"
	"github.com/alfarizi/ramadhan-companion/internal/ramadhan"
)

type RamadhanController struct {
	client *aladhan.Client
	now    func() time.Time
}

// RamadhanModule mounts the season/calendar endpoint.
func RamadhanModule(client *aladhan.Client) api.Module {
	ctl := &RamadhanController{client: client, now: time.Now}
	return api.ModuleFunc(func(c *api.Controller) {
		c.GET("/ramadhan/today", ctl.getToday)
	})
}

// GET /api/companion/ramadhan/today
func (r *RamadhanController) getToday(ctx *gin.Context, account *model.Account) (any, *api.APIError) {
	now := r.now()

	season, err := ramadhan.CurrentSeason(now)
	if err != nil {
		var oor ramadhan.ErrYearOutOfRange
		if errors.As(err, &oor) {
			// The table ran out; report it instead of guessing a date.
			return nil, &api.APIError{Code: http.StatusUnprocessableEntity, Message: err.Error()}
		}
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not resolve season"}
	}

	day, inRamadhan := season.DayIndex(now)

	hijri := fallbackHijri(season, day)
	if h, err := r.client.GregorianToHijri(ctx, now); err == nil {
		hijri = h.Display()
	} else {
		log.Warn().Err(err).Msg("hijri lookup failed, using fallback")
	}

	return packets.RamadhanTodayResponse{
		HijriYear:  season.HijriYear,
		Start:      ramadhan.DateKey(season.Start),
		Day:        day,
		InRamadhan: inRamadhan,
		HijriDate:  hijri,
	}, nil
}

// fallbackHijri approximates the Hijri display from the resolved season when
// the conversion API is unreachable. Outside the window it shows day 1 of
// the upcoming season.
func fallbackHijri(season ramadhan.Season, day int) string {
	if day < 1 {
		day = 1
	}
	return fmt.Sprintf("%d Ramadan %d H", day, season.HijriYear)
}
