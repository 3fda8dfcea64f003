// SideQuest - Social Quest Matchmaking and Engagement Analytics
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sidequest-dev/sidequest

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/sidequest-dev/sidequest/internal/auth"
	"github.com/sidequest-dev/sidequest/internal/middleware"
)

// Router assembles the HTTP surface from its handler and middleware parts.
type Router struct {
	handler       *Handler
	chiMiddleware *ChiMiddleware
	authMW        *auth.Middleware
}

// NewRouter creates a router around the given handler, middleware factory,
// and authentication middleware.
func NewRouter(handler *Handler, chiMW *ChiMiddleware, authMW *auth.Middleware) *Router {
	return &Router{
		handler:       handler,
		chiMiddleware: chiMW,
		authMW:        authMW,
	}
}

// Setup configures all HTTP routes.
func (router *Router) Setup() http.Handler {
	r := chi.NewRouter()

	// ========================
	// Global Middleware Stack
	// ========================
	r.Use(middleware.RequestID)
	r.Use(middleware.RequestLogger)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(router.chiMiddleware.CORS())

	// ========================
	// Health Endpoints
	// ========================
	r.Route("/api/v1/health", func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimitHealth())
		r.Get("/", router.handler.Health)
		r.Get("/live", router.handler.HealthLive)
		r.Get("/ready", router.handler.HealthReady)
	})

	// ========================
	// Authentication Endpoints
	// ========================
	r.Route("/api/v1/auth", func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimitAuth())
		r.Use(middleware.PrometheusMetrics)
		r.Post("/login", router.handler.Login)
	})

	// ========================
	// Core API Endpoints
	// ========================
	r.Route("/api/v1", func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimit())
		r.Use(middleware.PrometheusMetrics)
		r.Use(middleware.Compression)
		r.Use(router.authMW.Authenticate)

		r.Post("/users", router.handler.CreateUser)
		r.Post("/users/{id}/checkin", router.handler.Checkin)
		r.Get("/users/{id}/quests", router.handler.UserQuests)
		r.Get("/users/{id}/recommendations", router.handler.Recommendations)

		r.Post("/quests", router.handler.CreateQuest)
		r.Get("/quests", router.handler.ListQuests)
		r.Post("/quests/{id}/join", router.handler.JoinQuest)
		r.Post("/quests/{id}/complete", router.handler.CompleteQuest)

		r.Get("/analytics/dashboard", router.handler.Dashboard)

		// WebSocket upgrade. Compression is skipped by the middleware on
		// Upgrade requests.
		r.Get("/events/ws", router.handler.EventsWebSocket)
	})

	// ========================
	// Observability
	// ========================
	r.Handle("/metrics", promhttp.Handler())

	return r
}
