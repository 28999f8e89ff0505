package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/toyosu-dev/lunchnavi-backend/api/routes"
	"github.com/toyosu-dev/lunchnavi-backend/internal/auth"
	"github.com/toyosu-dev/lunchnavi-backend/internal/favorites"
	"github.com/toyosu-dev/lunchnavi-backend/internal/mood"
	"github.com/toyosu-dev/lunchnavi-backend/internal/search"
	"github.com/toyosu-dev/lunchnavi-backend/internal/stores"
	"github.com/toyosu-dev/lunchnavi-backend/internal/users"
	"github.com/toyosu-dev/lunchnavi-backend/pkg/auth/session"
	"github.com/toyosu-dev/lunchnavi-backend/pkg/config"
	"github.com/toyosu-dev/lunchnavi-backend/pkg/db"
	"github.com/toyosu-dev/lunchnavi-backend/pkg/logger"
	"github.com/toyosu-dev/lunchnavi-backend/pkg/metrics"
	"github.com/toyosu-dev/lunchnavi-backend/pkg/migrate"
	"github.com/toyosu-dev/lunchnavi-backend/pkg/places"
	"github.com/toyosu-dev/lunchnavi-backend/pkg/redis"
)

const shutdownGrace = 15 * time.Second

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	dbClient, err := db.New(context.Background(), cfg.DB, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap database", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing database", err)
		}
	}()

	if err := migrate.MaybeRunDev(context.Background(), cfg, logg, dbClient); err != nil {
		logg.Error(context.Background(), "failed to run dev migrations", err)
		os.Exit(1)
	}

	redisClient, err := redis.New(context.Background(), cfg.Redis)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap redis", err)
		os.Exit(1)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing redis", err)
		}
	}()

	sessionManager, err := session.NewManager(redisClient, cfg.JWT)
	if err != nil {
		logg.Error(context.Background(), "failed to create session manager", err)
		os.Exit(1)
	}

	placesOpts := []places.Option{places.WithTimeout(cfg.Places.Timeout)}
	if cfg.Places.BaseURL != "" {
		placesOpts = append(placesOpts, places.WithBaseURL(cfg.Places.BaseURL))
	}
	placesClient, err := places.NewClient(cfg.Places.APIKey, placesOpts...)
	if err != nil {
		logg.Error(context.Background(), "failed to create places client", err)
		os.Exit(1)
	}

	placesMetrics := metrics.NewPlacesMetrics(prometheus.DefaultRegisterer)

	authService, err := auth.NewService(auth.ServiceParams{
		UserRepo:       users.NewRepository(dbClient.DB()),
		SessionManager: sessionManager,
		JWTConfig:      cfg.JWT,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create auth service", err)
		os.Exit(1)
	}

	registerService, err := auth.NewRegisterService(auth.RegisterServiceParams{
		DB:             dbClient,
		SessionManager: sessionManager,
		PasswordConfig: cfg.Password,
		JWTConfig:      cfg.JWT,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create register service", err)
		os.Exit(1)
	}

	searchService, err := search.NewService(search.ServiceParams{
		Provider: placesClient,
		Config:   cfg.Search,
		Logger:   logg,
		Metrics:  placesMetrics,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create search service", err)
		os.Exit(1)
	}

	storeService, err := stores.NewService(stores.ServiceParams{
		Provider: placesClient,
		Config:   cfg.Search,
		Logger:   logg,
		Metrics:  placesMetrics,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create store service", err)
		os.Exit(1)
	}

	moodService, err := mood.NewService(mood.ServiceParams{
		Repo:   mood.NewRepository(dbClient.DB()),
		Logger: logg,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create mood service", err)
		os.Exit(1)
	}

	favoriteService, err := favorites.NewService(favorites.ServiceParams{
		Repo:     favorites.NewRepository(dbClient.DB()),
		Resolver: storeService,
		Logger:   logg,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create favorites service", err)
		os.Exit(1)
	}

	router := routes.NewRouter(routes.Deps{
		Config:          cfg,
		Logger:          logg,
		DB:              dbClient,
		Redis:           redisClient,
		SessionChecker:  sessionManager,
		AuthService:     authService,
		RegisterService: registerService,
		SearchService:   searchService,
		StoreService:    storeService,
		MoodService:     moodService,
		FavoriteService: favoriteService,
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port
	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":  cfg.App.Env,
		"addr": addr,
	})
	logg.Info(ctx, "starting api server")

	server := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.ListenAndServe()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil && err != http.ErrServerClosed {
			logg.Error(ctx, "api server stopped unexpectedly", err)
			os.Exit(1)
		}
	case sig := <-stop:
		logg.Info(logg.WithField(ctx, "signal", sig.String()), "shutting down api server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logg.Error(ctx, "graceful shutdown failed", err)
		}
	}
}
