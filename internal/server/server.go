package server

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/sdg-portal/portal/config"
	"github.com/sdg-portal/portal/internal/db"
	"github.com/sdg-portal/portal/internal/handlers"
	"github.com/sdg-portal/portal/internal/services"
	"github.com/sdg-portal/portal/internal/session"
	"github.com/sdg-portal/portal/internal/store"
	"github.com/sdg-portal/portal/web"
)

// Server wraps the HTTP server and router.
type Server struct {
	httpServer *http.Server
	router     *chi.Mux
	db         *sql.DB
}

// New constructs a Server with basic middleware and defaults.
func New(ctx context.Context, cfg config.Config) (*Server, error) {
	dbConn, err := db.Open(ctx, cfg)
	if err != nil {
		return nil, err
	}

	if err := db.Migrate(cfg); err != nil {
		_ = dbConn.Close()
		return nil, err
	}

	views, err := handlers.NewRenderer(web.FS)
	if err != nil {
		_ = dbConn.Close()
		return nil, err
	}

	sessions := session.NewManager(cfg.SessionSecret)

	userRepo := store.NewUserRepository(dbConn)
	suggestionRepo := store.NewSuggestionRepository(dbConn)
	activityRepo := store.NewActivityRepository(dbConn)

	activityService := services.NewActivityService(activityRepo)
	userService := services.NewUserService(userRepo, activityService)
	suggestionService := services.NewSuggestionService(suggestionRepo, activityService)
	statsService := services.NewStatsService(userRepo)

	router := chi.NewRouter()
	router.Use(
		middleware.RequestID,
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
		middleware.Timeout(60*time.Second),
	)
	router.Get("/healthz", handlers.Healthz)

	handlers.AuthRouter(router, userService, sessions, views)
	handlers.DashboardRouter(router, activityService, sessions, views)
	handlers.UserAdminRouter(router, userService, sessions, views)
	handlers.SuggestionRouter(router, suggestionService, sessions, views)
	handlers.StatsRouter(router, statsService, sessions, views)

	port := cfg.ServerPort
	if port == 0 {
		port = 8080
	}

	httpServer := &http.Server{
		Addr:         fmt.Sprintf(":%d", port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return &Server{
		httpServer: httpServer,
		router:     router,
		db:         dbConn,
	}, nil
}

// Router exposes the chi router for route registration.
func (s *Server) Router() *chi.Mux {
	return s.router
}

// Start runs the HTTP server.
func (s *Server) Start() error {
	return s.httpServer.ListenAndServe()
}

// Shutdown attempts a graceful shutdown.
func (s *Server) Shutdown() error {
	if s.db != nil {
		_ = s.db.Close()
	}
	return s.httpServer.Close()
}
