package server

import (
	"context"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/hongminglow/devcamper-be/internal/auth"
	"github.com/hongminglow/devcamper-be/internal/config"
	"github.com/hongminglow/devcamper-be/internal/http/handlers"
	"github.com/hongminglow/devcamper-be/internal/middleware"
	"github.com/hongminglow/devcamper-be/internal/models"
	"github.com/hongminglow/devcamper-be/internal/service"
	"github.com/hongminglow/devcamper-be/internal/storage"
)

// Server wraps an http.Server with configured routes.
type Server struct {
	inner *http.Server
	fatal chan error
}

// New wires up services, middleware and routes, and returns a ready server.
func New(cfg config.Config, store storage.Store, log *zap.Logger) *Server {
	s := &Server{fatal: make(chan error, 1)}

	tokens := auth.NewTokenManager(cfg.JWTSecret, cfg.JWTIssuer, cfg.JWTTTL)
	authSvc := service.NewAuthService(store, tokens, cfg.AllowAdminSignup, log)

	protect := handlers.Middleware(middleware.Protect(authSvc, log))
	requireAdmin := middleware.RequireRole(log, models.RoleAdmin)
	adminOnly := func(next http.Handler) http.Handler {
		return protect(requireAdmin(next))
	}

	mux := http.NewServeMux()
	handlers.NewHealthHandler(time.Now(), log).Register(mux)
	handlers.NewAuthHandler(authSvc, cfg.CookieTTL, cfg.IsProduction(), log).Register(mux, protect)
	handlers.NewBootcampHandler(service.NewBootcampService(store, log), log).Register(mux, protect)
	handlers.NewCourseHandler(service.NewCourseService(store, store, log), log).Register(mux, protect)
	handlers.NewUserHandler(service.NewUserService(store, log), log).Register(mux, adminOnly)

	handler := middleware.Logging(log,
		middleware.Recover(log, s.reportFatal,
			middleware.CORS(cfg.CORSOrigins, mux)))

	s.inner = &http.Server{
		Addr:              cfg.HTTPAddress(),
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}
	return s
}

// Handler exposes the root handler, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.inner.Handler
}

// Fatal delivers the first unrecoverable handler failure. The caller is
// expected to shut the process down when it fires.
func (s *Server) Fatal() <-chan error {
	return s.fatal
}

func (s *Server) reportFatal(err error) {
	select {
	case s.fatal <- err:
	default:
	}
}

// Start begins serving HTTP traffic.
func (s *Server) Start() error {
	return s.inner.ListenAndServe()
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.inner.Shutdown(ctx)
}
