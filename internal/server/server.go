// Package server provides the HTTP JSON API for the portfolio content.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"slices"
	"syscall"
	"time"

	"github.com/jonathan/portfolio/internal/experience"
	"github.com/jonathan/portfolio/internal/i18n"
	"github.com/jonathan/portfolio/internal/logging"
	"github.com/jonathan/portfolio/internal/profile"
	"github.com/jonathan/portfolio/internal/server/middleware"
	"github.com/jonathan/portfolio/internal/types"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 30 * time.Second

// ProjectStore is the read side of the content repository used by the handlers.
type ProjectStore interface {
	ListAll() ([]types.Project, error)
	ListFeatured(limit int) ([]types.Project, error)
	GetBySlug(slug string, locale i18n.Locale) (*types.ProjectWithBody, error)
}

// Server represents the HTTP server
type Server struct {
	httpServer     *http.Server
	projects       ProjectStore
	timeline       *experience.Timeline
	profile        *profile.Profile
	logger         *slog.Logger
	defaultLocale  i18n.Locale
	featuredLimit  int
	allowedOrigins []string
}

// Config holds server configuration
type Config struct {
	Port     int
	Projects ProjectStore
	// Timeline defaults to the built-in experience timeline.
	Timeline *experience.Timeline
	// Profile defaults to the built-in about-page profile.
	Profile *profile.Profile
	Logger  *slog.Logger
	// DefaultLocale is used for redirects when the client sends no Accept-Language.
	DefaultLocale i18n.Locale
	FeaturedLimit int
	// AllowedOrigins restricts CORS; empty allows any origin.
	AllowedOrigins []string
}

// New creates a new server instance
func New(cfg Config) (*Server, error) {
	if cfg.Projects == nil {
		return nil, fmt.Errorf("server requires a project store")
	}

	timeline := cfg.Timeline
	if timeline == nil {
		var err error
		timeline, err = experience.Default()
		if err != nil {
			return nil, fmt.Errorf("failed to load experience timeline: %w", err)
		}
	}

	prof := cfg.Profile
	if prof == nil {
		var err error
		prof, err = profile.Default()
		if err != nil {
			return nil, fmt.Errorf("failed to load profile: %w", err)
		}
	}

	s := &Server{
		projects:       cfg.Projects,
		timeline:       timeline,
		profile:        prof,
		logger:         logging.Component(cfg.Logger, "server"),
		defaultLocale:  cfg.DefaultLocale,
		featuredLimit:  cfg.FeaturedLimit,
		allowedOrigins: cfg.AllowedOrigins,
	}
	if s.defaultLocale.IsZero() {
		s.defaultLocale = i18n.DefaultLocale
	}
	if s.featuredLimit <= 0 {
		s.featuredLimit = 3
	}

	// Setup router
	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", s.handleHealth)
	mux.HandleFunc("GET /{$}", s.handleRoot)
	mux.HandleFunc("GET /locale/switch", s.handleSwitchLocale)

	// Localized endpoints
	mux.HandleFunc("GET /{locale}", s.handleHome)
	mux.HandleFunc("GET /{locale}/projects", s.handleListProjects)
	mux.HandleFunc("GET /{locale}/projects/featured", s.handleFeaturedProjects)
	mux.HandleFunc("GET /{locale}/projects/{slug}", s.handleGetProject)
	mux.HandleFunc("GET /{locale}/experience", s.handleExperience)
	mux.HandleFunc("GET /{locale}/about", s.handleAbout)

	// Create HTTP server
	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      middleware.RequestID(s.withLogging(s.withCORS(mux))),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s, nil
}

// Handler returns the fully wrapped HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Addr returns the configured listen address.
func (s *Server) Addr() string {
	return s.httpServer.Addr
}

// Start serves requests until ctx is cancelled or the process receives
// SIGINT or SIGTERM, then shuts down gracefully.
func (s *Server) Start(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		s.logger.Info("server starting", "addr", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gCtx.Done()
		s.logger.Info("shutting down server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server shutdown failed: %w", err)
		}
		s.logger.Info("server stopped")
		return nil
	})

	return g.Wait()
}

// withCORS adds CORS headers
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		switch {
		case len(s.allowedOrigins) == 0:
			w.Header().Set("Access-Control-Allow-Origin", "*")
		case origin != "" && slices.Contains(s.allowedOrigins, origin):
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Add("Vary", "Origin")
		}
		w.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Accept-Language")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// statusRecorder captures the status code written by a handler.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// withLogging adds request logging
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rec, r)

		attrs := []any{
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"duration", time.Since(start),
		}
		if id, ok := middleware.GetRequestID(r); ok {
			attrs = append(attrs, "request_id", id.String())
		}
		s.logger.Info("request completed", attrs...)
	})
}
