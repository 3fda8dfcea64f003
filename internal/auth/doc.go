// SideQuest - Social Quest Matchmaking and Engagement Analytics
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sidequest-dev/sidequest

/*
Package auth provides authentication for the HTTP API.

This package implements JWT-based session tokens (HMAC-SHA256), bcrypt
password hashing for user credentials, and middleware that guards protected
routes.

Key Components:

  - JWTManager: Token generation and validation (golang-jwt/jwt v5)
  - HashPassword / CheckPassword: bcrypt credential handling
  - Middleware.Authenticate: Route guard with configurable mode

Auth Modes:

The middleware supports two modes, selected via configuration:

  - none: All requests pass through. For local development and tests.
  - jwt: Requests need a Bearer token or token cookie carrying a valid JWT.

Login Flow:

 1. POST /api/v1/auth/login with display_name and password
 2. The handler verifies the bcrypt hash stored on the user profile
 3. On success the response carries a signed JWT valid for the configured
    session timeout
 4. Subsequent requests send the token via Authorization: Bearer <token>

Security:

  - Tokens are HS256-signed and validated server-side on every request
  - Non-HMAC signing algorithms are rejected (algorithm confusion defense)
  - bcrypt comparison is timing-safe
  - Tokens are stateless and cannot be revoked before expiry

See Also:

  - internal/api: Login handler and protected routes
  - internal/config: SecurityConfig with JWT secret and timeouts
*/
package auth
