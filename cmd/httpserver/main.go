package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"movielib/genre"
	"movielib/httpserver"
	"movielib/movie"
	"movielib/pkg/config"
	"movielib/pkg/logger"
	"movielib/pkg/metrics"
	"movielib/pkg/sentry"
	"movielib/store"

	sentrygo "github.com/getsentry/sentry-go"
)

const shutdownTimeout = 10 * time.Second

// @title Movies Library API
// @version 1.0
// @description CRUD API for movies and genres.
// @BasePath /
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Must("").Fatalw("cannot load config", "error", err)
	}

	log, err := logger.New(cfg.AppEnv)
	if err != nil {
		logger.Must("").Fatalw("cannot init logger", "error", err)
	}
	defer func() { _ = log.Sync() }()

	err = sentrygo.Init(sentrygo.ClientOptions{
		Dsn:              cfg.SentryDSN,
		Environment:      cfg.AppEnv,
		AttachStacktrace: true,
	})
	if err != nil {
		log.Fatalw("cannot init sentry", "error", err)
	}
	defer sentrygo.Flush(sentry.FlushTime)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	st, err := store.Open(ctx, cfg)
	if err != nil {
		log.Fatalw("cannot open store", "driver", cfg.StoreDriver, "error", err)
	}

	server, err := httpserver.New(
		httpserver.WithConfig(cfg),
		httpserver.WithLogger(log),
		httpserver.WithMetrics(metrics.New()),
		httpserver.WithMovieService(movie.NewUsecase(st.Movies)),
		httpserver.WithGenreService(genre.NewUsecase(st.Genres)),
	)
	if err != nil {
		log.Fatalw("cannot create server", "error", err)
	}

	errCh := make(chan error, 1)
	go func() {
		log.Infow("server started", "addr", server.Addr, "driver", st.Driver)
		errCh <- server.Start()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Errorw("server stopped with error", "error", err)
		}
	case <-ctx.Done():
		log.Info("shutting down")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Errorw("server shutdown", "error", err)
	}
	if err := st.Close(shutdownCtx); err != nil {
		log.Errorw("store close", "error", err)
	}
	log.Info("server stopped")
}
