// SPDX-License-Identifier: MIT

// Package httpapi exposes the puzzle service as a JSON HTTP API.
package httpapi

import (
	"context"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"

	"github.com/katalvlaran/wordladder/internal/puzzle"
	"github.com/katalvlaran/wordladder/internal/store"
	"github.com/katalvlaran/wordladder/ladder"
)

// Puzzle is the subset of puzzle.Service the handlers call.
type Puzzle interface {
	DailyPair(ctx context.Context) (*store.Record, error)
	Solution(ctx context.Context) (ladder.Path, error)
	ValidateGuess(ctx context.Context, guess, current string) puzzle.Verdict
	Hint(ctx context.Context, word string) (puzzle.HintResult, error)
	Distance(word, target string) int
	History(ctx context.Context, limit int) ([]store.Record, error)
}

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the request and error logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *Server) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithCORSOrigins restricts cross-origin requests; the default allows any origin.
func WithCORSOrigins(origins []string) Option {
	return func(s *Server) {
		if len(origins) > 0 {
			s.origins = origins
		}
	}
}

// Server routes API requests to a Puzzle.
type Server struct {
	router  chi.Router
	puzzle  Puzzle
	logger  *slog.Logger
	origins []string
}

// NewServer builds the router with middleware and every route mounted.
func NewServer(p Puzzle, opts ...Option) *Server {
	s := &Server{
		puzzle:  p,
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
		origins: []string{"*"},
	}
	for _, opt := range opts {
		opt(s)
	}
	s.router = s.buildRouter()
	return s
}

func (s *Server) buildRouter() chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger(s.logger))
	r.Use(middleware.Recoverer)
	r.Use(cors.New(cors.Options{
		AllowedOrigins: s.origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type"},
	}).Handler)

	r.Get("/healthz", s.handleHealth)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Get("/daily-pair", s.handleDailyPair)
		r.Get("/daily-solution", s.handleDailySolution)
		r.Post("/validate-guess", s.handleValidateGuess)
		r.Post("/hint", s.handleHint)
		r.Get("/distance", s.handleDistance)
		r.Get("/history", s.handleHistory)
	})

	return r
}

// ServeHTTP implements http.Handler, delegating to the chi router.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}
