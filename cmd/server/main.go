// @title           Wedding RSVP API
// @version         1.0
// @description     Guest accounts, invited persons, RSVP responses and guest messages.
// @BasePath        /
// @securityDefinitions.apikey BearerAuth
// @in              header
// @name            Authorization
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/doramarin/wedding-rsvp/internal/api"
	"github.com/doramarin/wedding-rsvp/internal/api/handler"
	"github.com/doramarin/wedding-rsvp/internal/api/metrics"
	"github.com/doramarin/wedding-rsvp/internal/core/service"
	redisdb "github.com/doramarin/wedding-rsvp/internal/infrastructure/db/redis"
	"github.com/doramarin/wedding-rsvp/internal/infrastructure/queue"
	"github.com/doramarin/wedding-rsvp/internal/pkg/config"
	"github.com/doramarin/wedding-rsvp/pkg/logger"
)

func main() {
	cfg := config.Load()
	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  !cfg.IsProduction(),
		Service: "wedding-rsvp",
	})

	ctx := context.Background()

	st, err := openStore(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Str("driver", cfg.StoreDriver).Msg("store unavailable")
	}
	defer st.close()
	log.Info().Str("driver", cfg.StoreDriver).Msg("store ready")

	rdb, err := redisdb.Connect(ctx, redisdb.Config{Addr: cfg.Redis.Addr, Password: cfg.Redis.Password, DB: cfg.Redis.DB})
	if err != nil {
		log.Fatal().Err(err).Msg("redis unavailable")
	}
	defer rdb.Close()
	sessions := redisdb.NewSessionStore(rdb)

	// --- Activity log ---
	activitySvc := service.NewActivityService(st.activity, logger.Component("activity"))
	dispatcher := queue.NewDispatcher(cfg.ActivityWorkers, activitySvc, metrics.ObserveQueueDepth, logger.Component("dispatcher"))
	workerCtx, stopWorkers := context.WithCancel(ctx)
	dispatcher.Start(workerCtx)

	// --- Services ---
	authSvc := service.NewAuthService(st.accounts, sessions, dispatcher, cfg.JWTSecret, cfg.TokenTTL, logger.Component("auth"))
	accountSvc := service.NewAccountService(st.accounts, dispatcher, logger.Component("accounts"))
	personSvc := service.NewPersonService(st.accounts, st.persons, dispatcher, logger.Component("persons"))
	rsvpSvc := service.NewRSVPService(st.accounts, st.persons, st.responses, st.comments, dispatcher, logger.Component("rsvp"))
	commentSvc := service.NewCommentService(st.comments, st.responses, dispatcher, logger.Component("comments"))

	if err := authSvc.EnsureAdmin(ctx, cfg.Admin.Username, cfg.Admin.Password); err != nil {
		log.Fatal().Err(err).Msg("bootstrap admin")
	}

	e := api.NewRouter(api.Deps{
		Auth:      authSvc,
		Accounts:  accountSvc,
		Persons:   personSvc,
		RSVP:      rsvpSvc,
		Comments:  commentSvc,
		Activity:  activitySvc,
		Sessions:  sessions,
		JWTSecret: cfg.JWTSecret,
		Health: map[string]handler.PingFunc{
			"store": st.ping,
			"redis": func(ctx context.Context) error { return redisdb.Ping(ctx, rdb, 0) },
		},
		RequestTimeout: cfg.RequestTimeout,
		Log:            logger.Component("http"),
	})

	go func() {
		log.Info().Str("port", cfg.Port).Msg("server starting")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("shutdown error")
	}

	// Requests are done; let the workers record what is still queued.
	stopWorkers()
	dispatcher.Wait()
	log.Info().Msg("stopped")
}
