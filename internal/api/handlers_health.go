// SideQuest - Social Quest Matchmaking and Engagement Analytics
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sidequest-dev/sidequest

package api

import (
	"net/http"
	"time"
)

// Health handles GET /api/v1/health. Returns a status summary with uptime
// and realtime subscriber count.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	rw.Success(map[string]interface{}{
		"status":            "healthy",
		"uptime_seconds":    int64(time.Since(h.startTime).Seconds()),
		"websocket_clients": h.hub.GetClientCount(),
	})
}

// HealthLive handles GET /api/v1/health/live. Liveness: the process is up.
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	rw.Success(map[string]string{"status": "alive"})
}

// HealthReady handles GET /api/v1/health/ready. Readiness: state is held in
// process, so a running server is a ready server.
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	rw.Success(map[string]string{"status": "ready"})
}
