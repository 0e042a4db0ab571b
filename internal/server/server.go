// Package server boots the HTTP application: config, database, cache,
// storage, middleware stack, and the route table.
package server

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ecofinds/ecofinds/app/routes"
	"github.com/ecofinds/ecofinds/config"
	"github.com/ecofinds/ecofinds/pkg/cache"
	"github.com/ecofinds/ecofinds/pkg/database"
	"github.com/ecofinds/ecofinds/pkg/logger"
	"github.com/ecofinds/ecofinds/pkg/metrics"
	"github.com/ecofinds/ecofinds/pkg/middleware"
	"github.com/ecofinds/ecofinds/pkg/reqid"
	"github.com/ecofinds/ecofinds/pkg/router"
	"github.com/ecofinds/ecofinds/pkg/storage"
	"gorm.io/gorm"
)

const shutdownTimeout = 10 * time.Second

// Start boots the application and serves HTTP until SIGINT/SIGTERM.
func Start() error {
	if err := config.Load(); err != nil {
		return err
	}

	db, err := database.Open()
	if err != nil {
		return err
	}
	defer database.Close(db)

	if err := cache.Connect(); err != nil {
		logger.Warn("cache unavailable, continuing without it", "error", err)
	}
	storage.Connect()

	r := BuildRouter(db)

	srv := &http.Server{
		Addr:              ":" + config.AppPort(),
		Handler:           r.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("listening", "addr", srv.Addr, "env", config.AppEnv())
		errCh <- srv.ListenAndServe()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case sig := <-stop:
		logger.Info("shutting down", "signal", sig.String())
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(ctx)
}

// BuildRouter assembles the middleware stack and the route table.
// Split out of Start so tests can serve the full stack via httptest.
func BuildRouter(db *gorm.DB) *router.Router {
	r := router.New()

	r.Use(
		metrics.Middleware(),
		middleware.Recovery,
		reqid.Middleware(),
		middleware.Logger,
		middleware.CORS(middleware.DefaultCORSOptions()),
	)

	r.HandleFunc("/metrics", metrics.Handler())

	// Locally stored listing images are served straight off the disk root.
	files := http.StripPrefix("/storage/", http.FileServer(http.Dir(config.StorageLocalRoot())))
	r.HandleFunc("/storage/*", files.ServeHTTP)

	routes.Register(r, db)

	return r
}
