// SideQuest - Social Quest Matchmaking and Engagement Analytics
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sidequest-dev/sidequest

package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/sidequest-dev/sidequest/internal/metrics"
	"github.com/sidequest-dev/sidequest/internal/models"
)

// defaultRecommendationCount is used when the k query parameter is absent.
const defaultRecommendationCount = 5

// Recommendations handles GET /api/v1/users/{id}/recommendations?k=N.
// Returns up to k scored quests ranked best-first, then records a
// recommendations_viewed event.
func (h *Handler) Recommendations(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	userID := chi.URLParam(r, "id")

	user, ok := h.store.GetUser(userID)
	if !ok {
		rw.NotFound("user not found")
		return
	}

	k := defaultRecommendationCount
	if raw := r.URL.Query().Get("k"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			rw.BadRequest("k must be an integer")
			return
		}
		k = parsed
	}

	start := time.Now()
	scored := h.engine.Recommend(&user, h.store.ListQuests(), h.now(), k)

	out := make([]models.QuestOut, 0, len(scored))
	for i := range scored {
		q := h.toQuestOut(&scored[i].Quest, userID)
		score := scored[i].Score
		q.Score = &score
		out = append(out, q)
	}

	h.store.RecordRecommendationsViewed(userID, user.Area)
	metrics.RecordRecommendations(len(out), time.Since(start))

	rw.Success(out)
}
