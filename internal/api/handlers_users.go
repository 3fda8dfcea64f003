// SideQuest - Social Quest Matchmaking and Engagement Analytics
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sidequest-dev/sidequest

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/sidequest-dev/sidequest/internal/auth"
	"github.com/sidequest-dev/sidequest/internal/logging"
	"github.com/sidequest-dev/sidequest/internal/metrics"
	"github.com/sidequest-dev/sidequest/internal/models"
	"github.com/sidequest-dev/sidequest/internal/store"
)

// defaultArea is assigned when a signup omits the area field.
const defaultArea = "NTU"

// CreateUser handles POST /api/v1/users.
func (h *Handler) CreateUser(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	var req models.CreateUserRequest
	if !decodeAndValidate(rw, r, &req) {
		return
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		logging.Ctx(r.Context()).Error().Err(err).Msg("password hashing failed")
		rw.InternalError("could not process password")
		return
	}

	defaultEnergy := models.Energy(req.DefaultEnergy)
	if defaultEnergy == "" {
		defaultEnergy = models.EnergyNeutral
	}
	socialStyle := models.SocialStyle(req.SocialStyle)
	if socialStyle == "" {
		socialStyle = models.SocialEither
	}
	mode := models.Mode(req.Mode)
	if mode == "" {
		mode = models.ModeEither
	}
	area := req.Area
	if area == "" {
		area = defaultArea
	}

	user, err := h.store.CreateUser(store.CreateUserParams{
		DisplayName:   req.DisplayName,
		PasswordHash:  []byte(hash),
		DefaultEnergy: defaultEnergy,
		SocialStyle:   socialStyle,
		Mode:          mode,
		Interests:     models.NormalizeTags(req.Interests),
		Area:          area,
	})
	if err != nil {
		writeStoreError(rw, err)
		return
	}

	metrics.UsersCreated.Inc()
	rw.Created(toUserOut(&user))
}

// Login handles POST /api/v1/auth/login. Issues a JWT identifying the user.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	var req models.LoginRequest
	if !decodeAndValidate(rw, r, &req) {
		return
	}

	user, ok := h.store.FindUserByName(req.DisplayName)
	if !ok || !auth.CheckPassword(string(user.PasswordHash), req.Password) {
		metrics.RecordAuthAttempt("failure")
		rw.Unauthorized("invalid display name or password")
		return
	}

	if h.jwt == nil {
		rw.Error(http.StatusServiceUnavailable, ErrCodeInternal, "token issuance is not configured")
		return
	}

	token, err := h.jwt.GenerateToken(user.ID, user.DisplayName)
	if err != nil {
		logging.Ctx(r.Context()).Error().Err(err).Str("user_id", user.ID).Msg("token generation failed")
		rw.InternalError("could not issue token")
		return
	}

	metrics.RecordAuthAttempt("success")
	rw.Success(map[string]interface{}{
		"token":   token,
		"user_id": user.ID,
	})
}

// Checkin handles POST /api/v1/users/{id}/checkin.
func (h *Handler) Checkin(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	userID := chi.URLParam(r, "id")

	var req models.CheckinRequest
	if !decodeAndValidate(rw, r, &req) {
		return
	}

	user, err := h.store.CheckIn(userID, models.Energy(req.Energy))
	if err != nil {
		writeStoreError(rw, err)
		return
	}

	metrics.UserCheckins.WithLabelValues(req.Energy).Inc()
	rw.Success(toUserOut(&user))
}

// UserQuests handles GET /api/v1/users/{id}/quests. Returns the quests the
// user has joined, sorted by start time, with viewer flags set.
func (h *Handler) UserQuests(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	userID := chi.URLParam(r, "id")

	if _, ok := h.store.GetUser(userID); !ok {
		rw.NotFound("user not found")
		return
	}

	quests := h.store.QuestsJoinedBy(userID)
	out := make([]models.QuestOut, 0, len(quests))
	for i := range quests {
		out = append(out, h.toQuestOut(&quests[i], userID))
	}
	rw.Success(out)
}

func toUserOut(u *models.User) models.UserOut {
	return models.UserOut{
		UserID:        u.ID,
		DisplayName:   u.DisplayName,
		DefaultEnergy: string(u.DefaultEnergy),
		SocialStyle:   string(u.SocialStyle),
		Mode:          string(u.Mode),
		Interests:     u.SortedInterests(),
		Area:          u.Area,
		LastEnergy:    string(u.LastEnergy),
		CheckinAt:     u.CheckinAt,
		CreatedAt:     u.CreatedAt,
	}
}
