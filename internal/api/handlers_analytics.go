// SideQuest - Social Quest Matchmaking and Engagement Analytics
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sidequest-dev/sidequest

package api

import (
	"net/http"
	"time"

	"github.com/sidequest-dev/sidequest/internal/metrics"
)

// Dashboard handles GET /api/v1/analytics/dashboard?area=X. An unknown area
// yields a zero snapshot, never an error. Snapshots are cached per area for
// a few seconds to avoid rescanning the event log under load.
func (h *Handler) Dashboard(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	area := r.URL.Query().Get("area")

	if snapshot, ok := h.dashCache.Get(area); ok {
		rw.Success(snapshot)
		return
	}

	start := time.Now()
	snapshot := h.aggregator.Dashboard(area, h.now())
	metrics.RecordDashboardQuery(area, time.Since(start))
	h.dashCache.Set(area, snapshot)

	rw.Success(snapshot)
}
