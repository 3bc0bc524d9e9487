package server

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"

	"github.com/tacal100/transit"
)

// Server exposes the routing engine over HTTP. The feed is loaded once
// and shared read-only between requests; each query still builds its own
// index and graph.
type Server struct {
	feed   *transit.Feed
	logger *slog.Logger
	router chi.Router
}

func New(feed *transit.Feed, cfg *Config, logger *slog.Logger) *Server {
	s := &Server{feed: feed, logger: logger}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))
	r.Use(s.logRequests)

	c := cors.New(cors.Options{
		AllowedOrigins: cfg.CORSAllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	})
	r.Use(c.Handler)

	r.Get("/", s.handleIndex)
	r.Get("/api/health", s.handleHealth)
	r.Get("/api/stations", s.handleStations)
	r.Get("/api/route", s.handleRoute)
	r.Post("/api/route", s.handleRoutePost)

	s.router = r
	return s
}

// Handler returns the root http.Handler for mounting or serving.
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		s.logger.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"duration", time.Since(start),
			"request_id", middleware.GetReqID(r.Context()),
		)
	})
}
