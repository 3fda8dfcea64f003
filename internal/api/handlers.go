// SideQuest - Social Quest Matchmaking and Engagement Analytics
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sidequest-dev/sidequest

package api

import (
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/goccy/go-json"

	"github.com/sidequest-dev/sidequest/internal/analytics"
	"github.com/sidequest-dev/sidequest/internal/auth"
	"github.com/sidequest-dev/sidequest/internal/cache"
	"github.com/sidequest-dev/sidequest/internal/models"
	"github.com/sidequest-dev/sidequest/internal/recommend"
	"github.com/sidequest-dev/sidequest/internal/store"
	"github.com/sidequest-dev/sidequest/internal/validation"
	ws "github.com/sidequest-dev/sidequest/internal/websocket"
)

// maxRequestBodyBytes caps JSON request bodies. Quest descriptions top out
// at 2000 characters, so 1 MiB leaves ample headroom.
const maxRequestBodyBytes = 1 << 20

// dashboardCacheTTL bounds how stale a dashboard snapshot may be. Rolling
// 7-day aggregates barely move within a few seconds, so recomputing them on
// every request would rescan the event log for no visible gain.
const dashboardCacheTTL = 15 * time.Second

// Handler holds the collaborators every endpoint needs.
type Handler struct {
	store      *store.Store
	engine     *recommend.Engine
	aggregator *analytics.Aggregator
	hub        *ws.Hub
	jwt        *auth.JWTManager
	dashCache  *cache.Cache[models.DashboardOut]
	startTime  time.Time
	now        func() time.Time
}

// NewHandler creates a handler wired to the given collaborators.
// jwtManager may be nil when auth mode is none; the login endpoint then
// reports the token as unavailable.
func NewHandler(st *store.Store, engine *recommend.Engine, aggregator *analytics.Aggregator, hub *ws.Hub, jwtManager *auth.JWTManager) *Handler {
	return &Handler{
		store:      st,
		engine:     engine,
		aggregator: aggregator,
		hub:        hub,
		jwt:        jwtManager,
		dashCache:  cache.New[models.DashboardOut](dashboardCacheTTL),
		startTime:  time.Now(),
		now:        time.Now,
	}
}

// decodeAndValidate decodes a JSON request body into dst and runs struct
// validation. On failure it writes the error response and returns false.
func decodeAndValidate(rw *ResponseWriter, r *http.Request, dst interface{}) bool {
	body := http.MaxBytesReader(rw.w, r.Body, maxRequestBodyBytes)
	defer func() {
		_, _ = io.Copy(io.Discard, body)
	}()

	if err := json.NewDecoder(body).Decode(dst); err != nil {
		rw.BadRequest("invalid JSON body: " + err.Error())
		return false
	}

	if verr := validation.ValidateStruct(dst); verr != nil {
		apiErr := verr.ToAPIError()
		rw.ValidationError(&models.APIError{
			Code:    apiErr.Code,
			Message: apiErr.Message,
			Details: apiErr.Details,
		})
		return false
	}
	return true
}

// writeStoreError maps store sentinel errors onto the API error taxonomy.
func writeStoreError(rw *ResponseWriter, err error) {
	switch {
	case errors.Is(err, store.ErrUserNotFound):
		rw.NotFound("user not found")
	case errors.Is(err, store.ErrQuestNotFound):
		rw.NotFound("quest not found")
	case errors.Is(err, store.ErrNameTaken):
		rw.Conflict("display name already taken")
	case errors.Is(err, store.ErrQuestFull):
		rw.Conflict("quest is full")
	case errors.Is(err, store.ErrNotParticipant):
		rw.Conflict("user is not a participant of this quest")
	default:
		rw.InternalError("unexpected error")
	}
}

// toQuestOut converts a quest snapshot to its presentation shape.
// viewerID controls the has_joined/is_completed flags; pass "" for
// viewer-neutral listings.
func (h *Handler) toQuestOut(q *models.Quest, viewerID string) models.QuestOut {
	organizerName := ""
	if organizer, ok := h.store.GetUser(q.OrganizerID); ok {
		organizerName = organizer.DisplayName
	}

	out := models.QuestOut{
		QuestID:       q.ID,
		OrganizerID:   q.OrganizerID,
		OrganizerName: organizerName,
		Title:         q.Title,
		Description:   q.Description,
		Area:          q.Area,
		SocialStyle:   string(q.SocialStyle),
		Mode:          string(q.Mode),
		Tags:          q.SortedTags(),
		StartTime:     q.StartTime,
		DurationMins:  q.DurationMins,
		Capacity:      q.Capacity,
		Participants:  len(q.Participants),
	}
	if viewerID != "" {
		out.HasJoined = q.HasParticipant(viewerID)
		_, out.IsCompleted = q.Completions[viewerID]
	}
	return out
}
