package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/toyosu-dev/lunchnavi-backend/api/controllers"
	"github.com/toyosu-dev/lunchnavi-backend/api/middleware"
	"github.com/toyosu-dev/lunchnavi-backend/internal/auth"
	"github.com/toyosu-dev/lunchnavi-backend/internal/favorites"
	"github.com/toyosu-dev/lunchnavi-backend/internal/mood"
	"github.com/toyosu-dev/lunchnavi-backend/internal/search"
	"github.com/toyosu-dev/lunchnavi-backend/internal/stores"
	"github.com/toyosu-dev/lunchnavi-backend/pkg/auth/session"
	"github.com/toyosu-dev/lunchnavi-backend/pkg/config"
	"github.com/toyosu-dev/lunchnavi-backend/pkg/logger"
	"github.com/toyosu-dev/lunchnavi-backend/pkg/redis"
)

// Deps bundles everything the HTTP surface needs.
type Deps struct {
	Config          *config.Config
	Logger          *logger.Logger
	DB              controllers.Pinger
	Redis           *redis.Client
	SessionChecker  session.AccessSessionChecker
	AuthService     auth.Service
	RegisterService auth.RegisterService
	SearchService   search.Service
	StoreService    stores.Service
	MoodService     mood.Service
	FavoriteService favorites.Service
}

func NewRouter(deps Deps) http.Handler {
	cfg := deps.Config
	logg := deps.Logger

	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.CORS(),
	)

	loginPolicy := middleware.NewAuthRateLimitPolicy(
		"login",
		cfg.AuthRateLimit.LoginWindow,
		cfg.AuthRateLimit.LoginIPLimit,
		cfg.AuthRateLimit.LoginUserLimit,
	)
	registerPolicy := middleware.NewAuthRateLimitPolicy(
		"register",
		cfg.AuthRateLimit.RegisterWindow,
		cfg.AuthRateLimit.RegisterIPLimit,
		cfg.AuthRateLimit.RegisterUserLimit,
	)

	pingers := map[string]controllers.Pinger{"database": deps.DB}
	if deps.Redis != nil {
		pingers["redis"] = deps.Redis
	}

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, pingers))
	})

	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/public", func(r chi.Router) {
		r.Get("/ping", controllers.PublicPing())
	})

	r.Route("/api/v1/auth", func(r chi.Router) {
		r.With(middleware.AuthRateLimit(loginPolicy, deps.Redis, logg)).Post("/login", controllers.AuthLogin(deps.AuthService, logg))
		r.With(middleware.AuthRateLimit(registerPolicy, deps.Redis, logg)).Post("/register", controllers.AuthRegister(deps.RegisterService, logg))
		r.Post("/refresh", controllers.AuthRefresh(deps.AuthService, logg))
	})

	r.Route("/api", func(r chi.Router) {
		r.Use(middleware.Auth(cfg.JWT, deps.SessionChecker, logg))

		r.Get("/ping", controllers.PrivatePing())
		r.Post("/v1/auth/logout", controllers.AuthLogout(deps.AuthService, logg))

		r.Route("/v1", func(r chi.Router) {
			r.Post("/search", controllers.SearchStores(deps.SearchService, logg))
			r.Get("/stores/{storeID}", controllers.StoreDetail(deps.StoreService, logg))
			r.Post("/mood", controllers.MoodRecommend(deps.MoodService, logg))
			r.Route("/favorites", func(r chi.Router) {
				r.Post("/", controllers.FavoriteAction(deps.FavoriteService, logg))
				r.Get("/", controllers.FavoriteList(deps.FavoriteService, logg))
			})
		})
	})

	return r
}
