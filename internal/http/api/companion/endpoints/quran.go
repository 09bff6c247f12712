package endpoints

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/alfarizi/ramadhan-companion/internal/http/api"
	"github.com/alfarizi/ramadhan-companion/internal/http/api/companion/packets"
	"github.com/alfarizi/ramadhan-companion/internal/kv"
	"github.com/alfarizi/ramadhan-companion/internal/model"
	"github.com/alfarizi/ramadhan-companion/internal/quran"
)

type QuranController struct {
	service *quran.Service
	kv      kv.Store
}

// QuranModule mounts the reader endpoints.
func QuranModule(service *quran.Service, store kv.Store) api.Module {
	ctl := &QuranController{service: service, kv: store}
	return api.ModuleFunc(func(c *api.Controller) {
		c.GET("/quran/surahs", ctl.listSurahs)
		c.GET("/quran/surah/:number", ctl.getSurah)
		c.GET("/quran/cached", ctl.listCached)
		c.GET("/quran/bookmark", ctl.getBookmark)
		c.PUT("/quran/bookmark", ctl.saveBookmark)
	})
}

func bookmarkKey(accountID int) string { return fmt.Sprintf("quran:bookmark:%d", accountID) }

// GET /api/companion/quran/surahs
func (q *QuranController) listSurahs(ctx *gin.Context, account *model.Account) (any, *api.APIError) {
	return quran.SurahIndex, nil
}

// GET /api/companion/quran/surah/:number
func (q *QuranController) getSurah(ctx *gin.Context, account *model.Account) (any, *api.APIError) {
	number, err := strconv.Atoi(ctx.Param("number"))
	if err != nil || number < 1 || number > 114 {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "surah number must be between 1 and 114"}
	}

	surah, fromCache, err := q.service.GetSurah(ctx, number)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusBadGateway, Message: "failed to retrieve surah"}
	}

	return packets.SurahResponse{Surah: surah, FromCache: fromCache}, nil
}

// GET /api/companion/quran/cached
func (q *QuranController) listCached(ctx *gin.Context, account *model.Account) (any, *api.APIError) {
	numbers, err := q.service.ListCached(ctx)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not list cached surahs"}
	}
	return gin.H{"cached": numbers}, nil
}

// GET /api/companion/quran/bookmark
func (q *QuranController) getBookmark(ctx *gin.Context, account *model.Account) (any, *api.APIError) {
	var bookmark model.Bookmark
	if err := kv.GetJSON(ctx, q.kv, bookmarkKey(account.ID), &bookmark); err != nil {
		if errors.Is(err, kv.ErrNotFound) {
			return nil, &api.APIError{Code: http.StatusNotFound, Message: "no bookmark saved"}
		}
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not read bookmark"}
	}
	return bookmark, nil
}

// PUT /api/companion/quran/bookmark
// The single slot is overwritten on every save.
func (q *QuranController) saveBookmark(ctx *gin.Context, account *model.Account) (any, *api.APIError) {
	var req packets.SaveBookmarkRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "invalid request body"}
	}

	bookmark := model.Bookmark{Surah: req.Surah, Ayah: req.Ayah}
	if err := kv.SetJSON(ctx, q.kv, bookmarkKey(account.ID), bookmark); err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not save bookmark"}
	}
	return bookmark, nil
}
