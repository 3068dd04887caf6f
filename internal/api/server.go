// Copyright (c) 2026 Lexora. All rights reserved.
// Author: nilupul.jayawardena.lk@gmail.com

/*
Package api wires together the HTTP router, middleware chain, and all
domain handlers into a runnable [http.Server].

Architecture:

  - This package is the topmost Presentation layer boundary.
  - It acts as the central composition root for the HTTP transport framework (chi router).
  - Only this package and cmd/api are allowed to import net/http server primitives.

Route map:

  - Public site reads under /api/v1 (blog, lawyers, practices, profile)
    plus the contact form POST. No authentication.
  - The CMS under /api/v1/admin: login is open, everything else requires
    a bearer token.
*/
package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/nilupul/lexora/internal/admin"
	"github.com/nilupul/lexora/internal/blog"
	"github.com/nilupul/lexora/internal/contact"
	"github.com/nilupul/lexora/internal/lawyer"
	"github.com/nilupul/lexora/internal/platform/config"
	"github.com/nilupul/lexora/internal/platform/constants"
	"github.com/nilupul/lexora/internal/platform/middleware"
	"github.com/nilupul/lexora/internal/practice"
	"github.com/nilupul/lexora/internal/profile"
)

// # Server Definitions

// Server wraps the chi router and the [http.Server].
//
// It is constructed once in main.go with all dependencies injected.
type Server struct {
	httpServer *http.Server
	router     *chi.Mux
	log        *slog.Logger
}

// # Handler Registry

// Handlers groups all domain-specific HTTP handler sets.
//
// # Usage
//
// New domains add a field here; no other change to server.go is required.
type Handlers struct {
	// Liveness is the /health handler, always returns 200 if process is alive.
	Liveness http.HandlerFunc

	// Readiness is the /ready handler, returns 200 when all deps are healthy.
	Readiness http.HandlerFunc

	// Admin handles operator login and account management.
	Admin *admin.Handler

	// Blog handles news and insight articles.
	Blog *blog.Handler

	// Lawyer handles attorney profiles.
	Lawyer *lawyer.Handler

	// Practice handles practice area listings.
	Practice *practice.Handler

	// Profile handles the firm profile singleton.
	Profile *profile.Handler

	// Contact handles visitor enquiries.
	Contact *contact.Handler
}

// # Server Initialization

// NewServer constructs the chi router with the full middleware chain and
// registers all route groups.
func NewServer(context context.Context, cfg *config.Config, log *slog.Logger, verifier middleware.TokenVerifier, h Handlers) *Server {
	r := chi.NewRouter()

	// # Middleware Chain
	// Global middleware applied in order of execution.
	r.Use(middleware.RequestID())
	r.Use(middleware.StructuredLogger(log))
	r.Use(chimw.Timeout(constants.GlobalRequestTimeout))
	r.Use(middleware.RateLimit(context))
	r.Use(middleware.PanicRecovery(log))
	r.Use(middleware.Authenticate(verifier))
	r.Use(middleware.CORS(cfg))
	r.Use(chimw.CleanPath)

	// # Infrastructure Endpoints
	// Unauthenticated health probes for container orchestration.
	r.Get("/health", h.Liveness)
	r.Get("/ready", h.Readiness)

	// # Application API
	r.Route("/api/v1", func(api chi.Router) {
		// ## Public Site
		api.Mount("/blog", h.Blog.Routes())
		api.Mount("/lawyers", h.Lawyer.Routes())
		api.Mount("/practices", h.Practice.Routes())
		api.Mount("/profile", h.Profile.Routes())
		api.Mount("/contact", h.Contact.Routes())

		// ## CMS
		api.Route("/admin", func(cms chi.Router) {
			cms.Mount("/login", h.Admin.LoginRoutes())

			cms.Group(func(protected chi.Router) {
				protected.Use(middleware.RequireAuth)

				protected.Mount("/password", h.Admin.AccountRoutes())
				protected.Mount("/blog", h.Blog.AdminRoutes())
				protected.Mount("/lawyers", h.Lawyer.AdminRoutes())
				protected.Mount("/practices", h.Practice.AdminRoutes())
				protected.Mount("/profile", h.Profile.AdminRoutes())
				protected.Mount("/contact", h.Contact.AdminRoutes())
			})
		})
	})

	return &Server{
		router: r,
		log:    log,
		httpServer: &http.Server{
			Addr:              ":" + cfg.ServerPort,
			Handler:           r,
			ReadTimeout:       constants.DefaultReadTimeout,
			WriteTimeout:      constants.DefaultWriteTimeout,
			IdleTimeout:       constants.DefaultIdleTimeout,
			ReadHeaderTimeout: constants.DefaultReadHeaderTimeout,
		},
	}
}

// # Server Lifecycle

// ListenAndServe starts the HTTP server.
//
// It blocks until the server is closed or an error occurs.
func (s *Server) ListenAndServe() error {
	s.log.Info("server starting", slog.String("addr", s.httpServer.Addr))
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully stops the server, waiting for in-flight requests.
func (s *Server) Shutdown(timeout time.Duration) error {
	context, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return s.httpServer.Shutdown(context)
}
