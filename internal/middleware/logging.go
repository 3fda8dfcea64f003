// SideQuest - Social Quest Matchmaking and Engagement Analytics
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sidequest-dev/sidequest

package middleware

import (
	"net/http"
	"time"

	"github.com/sidequest-dev/sidequest/internal/logging"
)

// slowRequestThreshold marks requests worth flagging at warn level.
const slowRequestThreshold = time.Second

// RequestLogger logs one line per request with method, path, status and
// duration. Requests slower than slowRequestThreshold log at warn level.
// Correlation and request IDs come from the context set by RequestID.
func RequestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		wrapper := &metricsResponseWriter{
			ResponseWriter: w,
			statusCode:     http.StatusOK,
		}

		next.ServeHTTP(wrapper, r)

		duration := time.Since(start)
		ev := logging.Ctx(r.Context()).Info()
		if duration > slowRequestThreshold {
			ev = logging.Ctx(r.Context()).Warn()
		}
		ev.
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", wrapper.statusCode).
			Dur("duration", duration).
			Msg("Request completed")
	})
}
