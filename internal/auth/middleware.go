// SideQuest - Social Quest Matchmaking and Engagement Analytics
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sidequest-dev/sidequest

package auth

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/sidequest-dev/sidequest/internal/logging"
)

type contextKey string

// ClaimsContextKey holds the validated *Claims for the request.
const ClaimsContextKey contextKey = "claims"

// AuthMode selects how the Authenticate middleware verifies requests.
type AuthMode string

const (
	// AuthModeNone disables authentication. Intended for local development
	// and tests.
	AuthModeNone AuthMode = "none"

	// AuthModeJWT requires a valid bearer token on every protected route.
	AuthModeJWT AuthMode = "jwt"
)

// Middleware provides authentication middleware for protected routes.
type Middleware struct {
	jwtManager *JWTManager
	mode       AuthMode
}

// NewMiddleware creates authentication middleware. jwtManager may be nil
// when mode is AuthModeNone.
func NewMiddleware(jwtManager *JWTManager, mode AuthMode) (*Middleware, error) {
	if mode == AuthModeJWT && jwtManager == nil {
		return nil, fmt.Errorf("jwt auth mode requires a JWT manager")
	}

	return &Middleware{
		jwtManager: jwtManager,
		mode:       mode,
	}, nil
}

// Authenticate enforces authentication according to the configured mode.
func (m *Middleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if m.mode == AuthModeNone {
			next.ServeHTTP(w, r)
			return
		}

		token, err := m.extractToken(r)
		if err != nil {
			http.Error(w, err.Error(), http.StatusUnauthorized)
			return
		}

		claims, err := m.jwtManager.ValidateToken(token)
		if err != nil {
			logging.Ctx(r.Context()).Warn().Err(err).Msg("Token validation failed")
			http.Error(w, "Unauthorized: invalid token", http.StatusUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), ClaimsContextKey, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// extractToken extracts a JWT from the Authorization header or token cookie.
func (m *Middleware) extractToken(r *http.Request) (string, error) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		cookie, err := r.Cookie("token")
		if err != nil {
			return "", fmt.Errorf("unauthorized: missing token")
		}
		return cookie.Value, nil
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		return "", fmt.Errorf("unauthorized: invalid authorization header")
	}

	return parts[1], nil
}

// ClaimsFromContext extracts validated claims set by Authenticate.
func ClaimsFromContext(ctx context.Context) (*Claims, bool) {
	claims, ok := ctx.Value(ClaimsContextKey).(*Claims)
	return claims, ok
}
