package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/swagger"
	"github.com/kylycht/hoststats/build"
	"github.com/kylycht/hoststats/controller/dashboard"
	_ "github.com/kylycht/hoststats/docs"
	"github.com/kylycht/hoststats/service"
	"github.com/kylycht/hoststats/service/ratesync"
	"github.com/kylycht/hoststats/service/siacentral"
	"github.com/kylycht/hoststats/storage"
	"github.com/kylycht/hoststats/storage/cache"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
)

//	@title			Host stats dashboard
//	@version		1.0
//	@description	Storage network statistics rendered in a display currency

// @host		localhost:8885
func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// icons registered for the views at startup
var icons = []string{
	"file", "file-export", "unlock", "lock", "ellipsis-v",
	"chevron-left", "chevron-right", "wifi", "eye", "usb",
	"github", "cogs", "plus", "times", "redo",
}

type Application struct {
	cfg         Config               // application configuration
	fiberApp    *fiber.App           // underlying fiber application
	preferences storage.Preferences  // persistence provider for preferences
	store       *cache.MCache        // shared dashboard state
	client      service.Stats        // stats API client
	syncer      *ratesync.Syncer     // exchange rate refresher
	icons       *dashboard.Icons     // icon registry shared with the views
	dashboard   *dashboard.Dashboard // view handlers
}

// New wires the application. The caller must Close it.
func New(ctx context.Context, cfg Config) (*Application, error) {
	a := &Application{cfg: cfg}
	if err := a.init(ctx); err != nil {
		a.Close()
		return nil, err
	}

	return a, nil
}

func (a *Application) init(ctx context.Context) error {
	if a.cfg.DBDriver == "sqlite" {
		if err := os.MkdirAll(a.cfg.DataPath, 0750); err != nil {
			log.Error().Err(err).Str("path", a.cfg.DataPath).Msg("unable to create data path")
			return err
		}
	}

	preferences, err := storage.Open(ctx, storage.Config{Driver: a.cfg.DBDriver, DSN: a.cfg.DBDSN})
	if err != nil {
		log.Error().Err(err).Msg("unable to open preference storage")
		return err
	}
	a.preferences = preferences

	store, err := cache.New(ctx, a.preferences)
	if err != nil {
		log.Error().Err(err).Msg("unable to create store")
		return err
	}
	a.store = store

	client, err := siacentral.New(siacentral.Options{
		BaseURL:   build.APIBaseURL(),
		RateLimit: a.cfg.RequestRate,
	})
	if err != nil {
		log.Error().Err(err).Msg("unable to create stats client")
		return err
	}
	a.client = client

	syncer, err := ratesync.New(a.client, a.store, a.cfg.RateSyncSchedule)
	if err != nil {
		log.Error().Err(err).Msg("unable to create rate sync")
		return err
	}
	a.syncer = syncer

	a.icons = dashboard.NewIcons()
	a.icons.Add(icons...)
	a.dashboard = dashboard.New(a.client, a.store, a.icons)

	return nil
}

// Serve runs the view shell and the rate sync until ctx is done
func (a *Application) Serve(ctx context.Context) error {
	a.fiberApp = fiber.New(fiber.Config{DisableStartupMessage: true})
	a.buildRoutes()

	go func() {
		if err := a.syncer.Run(ctx); err != nil && ctx.Err() == nil {
			log.Error().Err(err).Msg("rate sync stopped")
		}
	}()

	go a.stop(ctx)

	log.Info().Str("addr", a.cfg.HTTPPort).Str("api", build.APIBaseURL()).Msg("dashboard ready")

	if err := a.fiberApp.Listen(a.cfg.HTTPPort); err != nil {
		log.Error().Err(err).Msg("unable to start http server")
		return err
	}

	return nil
}

func (a *Application) buildRoutes() {
	a.fiberApp.Use(cors.New())
	a.fiberApp.Use(requestLogger)

	a.fiberApp.Get("/swagger/*", swagger.HandlerDefault)
	a.fiberApp.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	api := a.fiberApp.Group("/api", limiter.New(limiter.Config{
		Max:        10,
		Expiration: time.Second,
	}))
	api.Get("/dashboard", a.dashboard.GetDashboard)
	api.Get("/currency", a.dashboard.GetCurrency)
	api.Put("/currency", a.dashboard.SetCurrency)
	api.Get("/rates", a.dashboard.GetRates)
	api.Get("/icons", a.dashboard.GetIcons)
}

func (a *Application) stop(ctx context.Context) {
	<-ctx.Done()

	log.Info().Msg("shutting down")

	if err := a.fiberApp.ShutdownWithTimeout(5 * time.Second); err != nil {
		log.Error().Err(err).Msg("unable to shutdown http server")
	}
}

// Close releases the preference storage
func (a *Application) Close() {
	if a.preferences == nil {
		return
	}

	if err := a.preferences.Close(); err != nil {
		log.Error().Err(err).Msg("unable to close preference storage")
	}
}

func requestLogger(c *fiber.Ctx) error {
	started := time.Now()
	err := c.Next()

	log.Debug().
		Str("method", c.Method()).
		Str("path", c.Path()).
		Int("status", c.Response().StatusCode()).
		Dur("duration", time.Since(started)).
		Msg("request")

	return err
}

func versionString() string {
	return fmt.Sprintf("%s (revision %s, built %s)", build.Version(), build.Revision(), build.Time().Format(time.RFC1123))
}
