package routes

import (
	"time"

	"flock/flock/config"
	"flock/flock/controllers"
	"flock/flock/metrics"
	"flock/flock/middlewares"
	"flock/flock/sources/psql/dao"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"golang.org/x/time/rate"
)

// Controllers bundles everything the router mounts.
type Controllers struct {
	Auth          *controllers.AuthController
	Users         *controllers.UserController
	Posts         *controllers.PostController
	Notifications *controllers.NotificationController
	Health        *controllers.HealthController
}

// NewRouter assembles the full API surface. Tests build it the same
// way main does.
func NewRouter(ctrl Controllers, users *dao.UserDAO, collector *metrics.Collector, limiter *middlewares.RateLimiter, cfg config.Config) chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middlewares.RequestLogging)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))
	if collector != nil {
		r.Use(collector.Middleware())
	}

	r.Mount("/api/auth", AuthRoutes(ctrl.Auth, users, limiter, cfg))
	r.Mount("/api/users", UserRoutes(ctrl.Users, users, cfg))
	r.Mount("/api/posts", PostRoutes(ctrl.Posts, users, cfg))
	r.Mount("/api/notifications", NotificationRoutes(ctrl.Notifications, users, cfg))
	r.Mount("/health", HealthRoutes(ctrl.Health))
	if collector != nil {
		r.Handle("/metrics", collector.Handler())
	}

	return r
}

// DefaultAuthLimiter is the per-IP budget for signup/login: about one
// attempt per second with a small burst.
func DefaultAuthLimiter() *middlewares.RateLimiter {
	return middlewares.NewRateLimiter(rate.Limit(1), 10)
}
