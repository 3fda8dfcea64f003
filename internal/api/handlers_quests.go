// SideQuest - Social Quest Matchmaking and Engagement Analytics
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sidequest-dev/sidequest

package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/sidequest-dev/sidequest/internal/metrics"
	"github.com/sidequest-dev/sidequest/internal/models"
	"github.com/sidequest-dev/sidequest/internal/store"
)

// CreateQuest handles POST /api/v1/quests.
func (h *Handler) CreateQuest(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	var req models.CreateQuestRequest
	if !decodeAndValidate(rw, r, &req) {
		return
	}

	// The rfc3339 validation rule already accepted this string.
	startTime, err := time.Parse(time.RFC3339, req.StartTime)
	if err != nil {
		rw.BadRequest("start_time must be RFC3339")
		return
	}

	socialStyle := models.SocialStyle(req.SocialStyle)
	if socialStyle == "" {
		socialStyle = models.SocialEither
	}
	mode := models.Mode(req.Mode)
	if mode == "" {
		mode = models.ModeEither
	}

	quest, err := h.store.CreateQuest(store.CreateQuestParams{
		OrganizerID:  req.OrganizerID,
		Title:        req.Title,
		Description:  req.Description,
		Area:         req.Area,
		SocialStyle:  socialStyle,
		Mode:         mode,
		Tags:         models.NormalizeTags(req.Tags),
		StartTime:    startTime,
		DurationMins: req.DurationMins,
		Capacity:     req.Capacity,
	})
	if err != nil {
		writeStoreError(rw, err)
		return
	}

	metrics.QuestsCreated.Inc()
	rw.Created(h.toQuestOut(&quest, ""))
}

// ListQuests handles GET /api/v1/quests. Quests are returned in insertion
// order.
func (h *Handler) ListQuests(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	quests := h.store.ListQuests()
	out := make([]models.QuestOut, 0, len(quests))
	for i := range quests {
		out = append(out, h.toQuestOut(&quests[i], ""))
	}
	rw.Success(out)
}

// JoinQuest handles POST /api/v1/quests/{id}/join. The operation is
// idempotent: joining a quest the user already participates in acknowledges
// without changing state.
func (h *Handler) JoinQuest(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	questID := chi.URLParam(r, "id")

	var req models.JoinQuestRequest
	if !decodeAndValidate(rw, r, &req) {
		return
	}

	joined, err := h.store.JoinQuest(questID, req.UserID)
	if err != nil {
		if err == store.ErrQuestFull {
			metrics.RecordJoin("full")
		}
		writeStoreError(rw, err)
		return
	}

	quest, _ := h.store.GetQuest(questID)
	out := h.toQuestOut(&quest, req.UserID)

	if joined {
		metrics.RecordJoin("joined")
		rw.Success(map[string]interface{}{
			"joined": true,
			"quest":  out,
		})
		return
	}

	metrics.RecordJoin("already_joined")
	rw.Success(map[string]interface{}{
		"joined":  false,
		"message": "already joined",
		"quest":   out,
	})
}

// CompleteQuest handles POST /api/v1/quests/{id}/complete. Participants
// submit a 1-5 connectedness rating; re-rating overwrites the stored value.
func (h *Handler) CompleteQuest(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	questID := chi.URLParam(r, "id")

	var req models.CompleteQuestRequest
	if !decodeAndValidate(rw, r, &req) {
		return
	}

	if err := h.store.CompleteQuest(questID, req.UserID, req.ConnectednessRating); err != nil {
		writeStoreError(rw, err)
		return
	}

	metrics.RecordCompletion(req.ConnectednessRating)
	rw.Success(map[string]interface{}{
		"quest_id":             questID,
		"user_id":              req.UserID,
		"connectedness_rating": req.ConnectednessRating,
	})
}
