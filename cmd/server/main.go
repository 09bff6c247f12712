package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/alfarizi/ramadhan-companion/internal/db"
	"github.com/alfarizi/ramadhan-companion/internal/kv"
	"github.com/alfarizi/ramadhan-companion/internal/notify"
	"github.com/alfarizi/ramadhan-companion/internal/quran"
)

func main() {
	env := LoadEnvironment()

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if env.Environment == "development" {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	// initialize PostgreSQL
	if err := db.Init(env.DatabaseURL); err != nil {
		log.Fatal().Err(err).Msg("db init")
	}

	// run pending migrations
	if err := db.RunMigrations(env.MigrationsPath); err != nil {
		log.Fatal().Err(err).Msg("db migrate")
	}

	store := db.NewStore(db.DB)

	// Redis backs the prayer cache, saved location, and reading bookmark.
	kvStore, err := kv.NewRedis(env.RedisAddress, env.RedisUsername, env.RedisPassword)
	if err != nil {
		log.Fatal().Err(err).Msg("redis init")
	}

	surahStore, err := newSurahStore(env)
	if err != nil {
		log.Fatal().Err(err).Msg("surah store init")
	}

	services := newServices(kvStore, store, surahStore)

	// Reminder publishing is optional; without a broker the API still serves.
	if env.MQTTBrokerURL != "" {
		publisher, err := notify.NewPublisher(env.MQTTBrokerURL, "ramadhan-companion-server")
		if err != nil {
			log.Fatal().Err(err).Msg("mqtt init")
		}
		defer notify.Close(publisher)

		worker := notify.NewWorker(publisher, store, services.locations, services.prayers)
		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()
		go worker.Run(ctx)
	}

	r := gin.Default()
	RegisterRoutes(r, env, store, services)

	log.Info().Str("address", env.ServerAddress).Msg("listening")
	if err := r.Run(env.ServerAddress); err != nil {
		log.Fatal().Err(err).Msg("server error")
	}
}

// newSurahStore picks the offline cache backend: Spaces when configured,
// local files otherwise.
func newSurahStore(env Environment) (quran.SurahStore, error) {
	if env.UseSpaces {
		return quran.NewSpacesStore(
			env.SpacesEndpoint,
			env.SpacesRegion,
			env.SpacesBucket,
			env.SpacesAccessKey,
			env.SpacesSecretKey,
		)
	}
	return quran.NewLocalStore(env.QuranCacheDir)
}
