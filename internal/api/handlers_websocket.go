// SideQuest - Social Quest Matchmaking and Engagement Analytics
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sidequest-dev/sidequest

package api

import (
	"net/http"

	"github.com/gorilla/websocket"

	"github.com/sidequest-dev/sidequest/internal/logging"
	"github.com/sidequest-dev/sidequest/internal/metrics"
	ws "github.com/sidequest-dev/sidequest/internal/websocket"
)

// upgrader converts HTTP requests to WebSocket connections. Origin checks
// are delegated to the CORS layer; hardening is out of scope here.
var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// EventsWebSocket handles GET /api/v1/events/ws. Upgrades the connection
// and registers the client with the hub, which then streams every appended
// domain event to it.
func (h *Handler) EventsWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		metrics.WSErrors.WithLabelValues("upgrade_failed").Inc()
		logging.Ctx(r.Context()).Error().Err(err).Msg("websocket upgrade failed")
		return
	}

	client := ws.NewClient(h.hub, conn)
	h.hub.Register <- client
	client.Start()

	logging.Ctx(r.Context()).Debug().
		Uint64("client_id", client.ID()).
		Str("remote_addr", r.RemoteAddr).
		Msg("websocket client registered")
}
