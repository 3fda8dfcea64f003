// SideQuest - Social Quest Matchmaking and Engagement Analytics
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sidequest-dev/sidequest

// Package main is the entry point for the SideQuest server application.
//
// SideQuest matches people with nearby social activities ("quests") based on
// their energy level, social style, and interests, and tracks how connected
// participants feel afterwards. It exposes a REST API for profiles, quests,
// joins, completions, weighted recommendations, and an engagement analytics
// dashboard, plus a WebSocket feed of activity events.
//
// # Application Architecture
//
// The server initializes components in the following order:
//
//  1. Configuration: Load settings from environment variables and config files (Koanf v2)
//  2. Store: In-memory user/quest/event store with event sink wiring
//  3. WebSocket Hub: Real-time activity event broadcasts to connected clients
//  4. Recommendation Engine: Weighted quest scoring with configurable lookahead
//  5. Analytics Aggregator: Rolling 7-day engagement snapshots per area
//  6. Authentication: JWT bearer tokens or no-auth mode
//  7. HTTP Server: REST API under /api/v1 with Prometheus metrics at /metrics
//
// # Configuration
//
// Configuration is loaded via Koanf v2 with layered sources (highest priority wins):
//   - Environment variables (AUTH_MODE, JWT_SECRET, HTTP_PORT, ...)
//   - Config file (config.yaml)
//   - Built-in defaults
//
// For JWT authentication:
//   - AUTH_MODE=jwt
//   - JWT_SECRET: 32+ character secret for token signing
//
// # Signal Handling
//
// The server handles graceful shutdown on SIGINT and SIGTERM:
//   - Stops accepting new connections
//   - Waits for in-flight requests to complete (10s timeout)
//   - Disconnects WebSocket clients and stops the hub
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/sidequest-dev/sidequest/internal/analytics"
	"github.com/sidequest-dev/sidequest/internal/api"
	"github.com/sidequest-dev/sidequest/internal/auth"
	"github.com/sidequest-dev/sidequest/internal/config"
	"github.com/sidequest-dev/sidequest/internal/logging"
	"github.com/sidequest-dev/sidequest/internal/metrics"
	"github.com/sidequest-dev/sidequest/internal/recommend"
	"github.com/sidequest-dev/sidequest/internal/store"
	"github.com/sidequest-dev/sidequest/internal/supervisor"
	"github.com/sidequest-dev/sidequest/internal/supervisor/services"
	ws "github.com/sidequest-dev/sidequest/internal/websocket"
)

// version is set at build time via -ldflags "-X main.version=...".
var version = "dev"

func main() {
	// Load configuration first to get logging settings
	cfg, err := config.Load()
	if err != nil {
		// Use default logger for config errors (config not yet available)
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	// Initialize zerolog with configuration
	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
	})

	logging.Info().Str("version", version).Msg("Starting SideQuest with supervisor tree")
	metrics.AppInfo.WithLabelValues(version, runtime.Version()).Set(1)

	logging.Info().
		Str("addr", cfg.Server.Addr()).
		Str("auth_mode", cfg.Security.AuthMode).
		Dur("recommend_lookahead", cfg.Recommend.Lookahead).
		Msg("Configuration loaded")

	// Create context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Create structured logger for supervisor using our slog adapter
	// This bridges zerolog to slog for sutureslog compatibility
	slogLogger := logging.NewSlogLogger()

	// Create supervisor tree
	tree := supervisor.NewTree(slogLogger, supervisor.DefaultTreeConfig())

	// Create WebSocket hub for real-time updates (before the store, which
	// publishes activity events through it)
	wsHub := ws.NewHub()

	logger := logging.Logger()

	// Create store with activity events wired to the hub
	st := store.New(logger, store.WithEventSink(wsHub.BroadcastEvent))

	// Create recommendation engine and analytics aggregator
	engine := recommend.NewEngine(logger, recommend.WithLookahead(cfg.Recommend.Lookahead))
	aggregator := analytics.NewAggregator(logger, st)

	var jwtManager *auth.JWTManager

	if cfg.Security.AuthMode == "jwt" {
		jwtManager, err = auth.NewJWTManager(&cfg.Security)
		if err != nil {
			logging.Fatal().Err(err).Msg("Failed to initialize JWT manager")
		}
		logging.Info().Msg("JWT authentication enabled")
	} else if cfg.Security.AuthMode == "none" {
		logging.Warn().Msg("============================================================")
		logging.Warn().Msg("  SECURITY WARNING: Authentication is DISABLED (AUTH_MODE=none)")
		logging.Warn().Msg("  ")
		logging.Warn().Msg("  All endpoints are publicly accessible without authentication!")
		logging.Warn().Msg("  This mode should ONLY be used for:")
		logging.Warn().Msg("    - Local development")
		logging.Warn().Msg("    - Completely isolated private networks")
		logging.Warn().Msg("    - CI/CD testing environments")
		logging.Warn().Msg("  ")
		logging.Warn().Msg("  NEVER use AUTH_MODE=none in production or on public networks!")
		logging.Warn().Msg("============================================================")
	}

	authMW, err := auth.NewMiddleware(jwtManager, auth.AuthMode(cfg.Security.AuthMode))
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to initialize auth middleware")
	}

	if cfg.API.RateLimitDisabled {
		logging.Warn().Msg("Rate limiting is DISABLED (DISABLE_RATE_LIMIT=true)")
		logging.Warn().Msg("This should only be used for local development and tests!")
	}

	chiMW := api.NewChiMiddleware(&api.ChiMiddlewareConfig{
		CORSAllowedOrigins: cfg.API.CORSOrigins,
		RateLimitRequests:  cfg.API.RateLimitReqs,
		RateLimitWindow:    cfg.API.RateLimitWindow,
		RateLimitDisabled:  cfg.API.RateLimitDisabled,
	})

	handler := api.NewHandler(st, engine, aggregator, wsHub, jwtManager)
	router := api.NewRouter(handler, chiMW, authMW)

	server := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      router.Setup(),
		ReadTimeout:  cfg.Server.Timeout,
		WriteTimeout: cfg.Server.Timeout,
		IdleTimeout:  60 * time.Second,
	}

	// === ADD SERVICES TO SUPERVISOR TREE ===

	// Realtime layer services
	tree.AddRealtimeService(services.NewHubService(wsHub))
	logging.Info().Msg("WebSocket hub added to supervisor tree")

	// API layer services
	tree.AddAPIService(services.NewHTTPServerService(server, 10*time.Second))
	logging.Info().Str("addr", server.Addr).Msg("HTTP server service added")

	// === START SUPERVISOR TREE ===

	// Setup signal handling
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logging.Info().Str("signal", sig.String()).Msg("Received shutdown signal")
		cancel()
	}()

	logging.Info().Msg("Starting supervisor tree...")
	errCh := tree.ServeBackground(ctx)

	// Wait for supervisor to finish (either from signal or error)
	select {
	case <-ctx.Done():
		logging.Info().Msg("Context canceled, waiting for supervisor to finish...")
	case err := <-errCh:
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor tree error")
		}
	}

	// Wait for the error channel to close (supervisor finished)
	for err := range errCh {
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor shutdown error")
		}
	}

	// Report any services that failed to stop within timeout
	unstopped, _ := tree.UnstoppedServiceReport()
	if len(unstopped) > 0 {
		logging.Warn().Int("count", len(unstopped)).Msg("Services failed to stop within timeout")
		for _, svc := range unstopped {
			logging.Warn().Str("service", svc.Name).Msg("Service failed to stop")
		}
	}

	logging.Info().Msg("Application stopped gracefully")
}
