// SideQuest - Social Quest Matchmaking and Engagement Analytics
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sidequest-dev/sidequest

package recommend

import (
	"sort"
	"time"

	"github.com/rs/zerolog"

	"github.com/sidequest-dev/sidequest/internal/models"
)

// Limits on the number of returned recommendations.
const (
	MinK = 1
	MaxK = 10

	// DefaultLookahead is how far ahead of "now" a quest may start and still
	// be recommended. The source prototypes disagreed (48h vs 72h); this
	// engine standardizes on 72h so weekend quests surface on Thursday.
	DefaultLookahead = 72 * time.Hour
)

// ScoredQuest pairs a candidate quest with its presentation score.
type ScoredQuest struct {
	Quest models.Quest
	Score float64
}

// Engine ranks open quests for a user. It holds no mutable state beyond its
// configuration and is safe for concurrent use.
type Engine struct {
	logger    zerolog.Logger
	lookahead time.Duration
}

// Option configures an Engine.
type Option func(*Engine)

// WithLookahead overrides the forward-looking start window.
func WithLookahead(d time.Duration) Option {
	return func(e *Engine) {
		if d > 0 {
			e.lookahead = d
		}
	}
}

// NewEngine creates a recommendation engine.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewEngine(logger zerolog.Logger, opts ...Option) *Engine {
	e := &Engine{
		logger:    logger.With().Str("component", "recommend").Logger(),
		lookahead: DefaultLookahead,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Recommend ranks the candidate quests for the user, highest score first,
// truncated to k (clamped to MinK..MaxK). quests must be in the store's
// stable insertion order; ties keep that order.
//
// Filtering, in order: same area, not already joined, start time inside
// [now, now+lookahead], available capacity. The returned scores are rounded
// to 4 decimal places.
func (e *Engine) Recommend(user *models.User, quests []models.Quest, now time.Time, k int) []ScoredQuest {
	if k < MinK {
		k = MinK
	}
	if k > MaxK {
		k = MaxK
	}

	candidates := make([]ScoredQuest, 0, len(quests))
	for i := range quests {
		q := &quests[i]
		if !e.isCandidate(user, q, now) {
			continue
		}
		candidates = append(candidates, ScoredQuest{
			Quest: quests[i],
			Score: scoreQuest(user, q),
		})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Score > candidates[j].Score
	})

	if len(candidates) > k {
		candidates = candidates[:k]
	}
	for i := range candidates {
		candidates[i].Score = roundScore(candidates[i].Score)
	}

	e.logger.Debug().
		Str("user_id", user.ID).
		Int("candidates", len(candidates)).
		Int("k", k).
		Msg("recommendations computed")

	return candidates
}

// isCandidate applies the hard filters ahead of scoring.
func (e *Engine) isCandidate(u *models.User, q *models.Quest, now time.Time) bool {
	if q.Area != u.Area {
		return false
	}
	if q.HasParticipant(u.ID) {
		return false
	}
	if q.StartTime.Before(now) || q.StartTime.After(now.Add(e.lookahead)) {
		return false
	}
	return q.CapacityAvailable()
}
