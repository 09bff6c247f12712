package main

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/alfarizi/ramadhan-companion/internal/aladhan"
	"github.com/alfarizi/ramadhan-companion/internal/db"
	"github.com/alfarizi/ramadhan-companion/internal/geocode"
	"github.com/alfarizi/ramadhan-companion/internal/http/api"
	authapi "github.com/alfarizi/ramadhan-companion/internal/http/api/auth/endpoints"
	companionapi "github.com/alfarizi/ramadhan-companion/internal/http/api/companion/endpoints"
	"github.com/alfarizi/ramadhan-companion/internal/kv"
	"github.com/alfarizi/ramadhan-companion/internal/location"
	"github.com/alfarizi/ramadhan-companion/internal/prayer"
	"github.com/alfarizi/ramadhan-companion/internal/quran"
)

// services bundles the long-lived domain services built once at startup.
type services struct {
	client    *aladhan.Client
	kv        kv.Store
	locations *location.Service
	prayers   *prayer.Service
	quran     *quran.Service
}

func newServices(kvStore kv.Store, store db.Store, surahStore quran.SurahStore) services {
	client := aladhan.NewClient()
	return services{
		client:    client,
		kv:        kvStore,
		locations: location.NewService(kvStore, geocode.NewClient()),
		prayers:   prayer.NewService(kvStore, client),
		quran:     quran.NewService(surahStore, quran.NewClient()),
	}
}

// RegisterRoutes sets up all application routes
func RegisterRoutes(r *gin.Engine, env Environment, store db.Store, svc services) {
	// CORS
	r.Use(cors.New(cors.Config{
		AllowOriginFunc: func(origin string) bool { return true },
		AllowMethods: []string{
			"GET",
			"POST",
			"PUT",
			"PATCH",
			"DELETE",
			"OPTIONS",
			"HEAD",
		},
		AllowHeaders: []string{
			"Origin",
			"Content-Type",
			"Authorization",
			"Accept",
		},
		AllowCredentials: false,
	}))

	api.MountGroup(r, api.GroupConfig{
		Prefix: "/api/auth",
		Auth:   false,
	},
		authapi.AuthPublicModule(env.SecretKey, store),
	)

	api.MountGroup(r, api.GroupConfig{
		Prefix:    "/api/auth",
		Auth:      true,
		SecretKey: env.SecretKey,
		Store:     store,
	},
		authapi.AuthSessionModule(env.SecretKey, store),
	)

	api.MountGroup(r, api.GroupConfig{
		Prefix:    "/api/companion",
		Auth:      true,
		SecretKey: env.SecretKey,
		Store:     store,
	},
		companionapi.LocationModule(svc.locations),
		companionapi.PrayerModule(svc.prayers, svc.locations),
		companionapi.QiblaModule(svc.locations),
		companionapi.RamadhanModule(svc.client),
		companionapi.FastingModule(store),
		companionapi.TrackerModule(store),
		companionapi.QuranModule(svc.quran, svc.kv),
	)
}
