// SideQuest - Social Quest Matchmaking and Engagement Analytics
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sidequest-dev/sidequest

package analytics

import (
	"sort"
	"time"

	"github.com/rs/zerolog"

	"github.com/sidequest-dev/sidequest/internal/models"
)

// Trailing windows used by the dashboard metrics.
const (
	shortWindow = 7 * 24 * time.Hour
	longWindow  = 30 * 24 * time.Hour

	topTagsLimit = 5
)

// DataSource is the read-only view of the store the aggregator scans.
// Implemented by *store.Store; kept as an interface so tests can inject
// fixtures without a store.
type DataSource interface {
	// Events returns the full event log in insertion order.
	Events() []models.Event

	// Users returns a snapshot of all users.
	Users() []models.User

	// Quest resolves a quest by ID.
	Quest(id string) (models.Quest, bool)
}

// Aggregator computes dashboard snapshots. It holds no mutable state and is
// safe for concurrent use.
type Aggregator struct {
	logger zerolog.Logger
	source DataSource
}

// NewAggregator creates an aggregator over the given data source.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewAggregator(logger zerolog.Logger, source DataSource) *Aggregator {
	return &Aggregator{
		logger: logger.With().Str("component", "analytics").Logger(),
		source: source,
	}
}

// Dashboard produces the engagement snapshot for one area as of now.
// Events whose payload carries no area, or a different area, are excluded.
func (a *Aggregator) Dashboard(area string, now time.Time) models.DashboardOut {
	cutoff7d := now.Add(-shortWindow)
	cutoff30d := now.Add(-longWindow)

	out := models.DashboardOut{
		Area:      area,
		TopTags7d: make([]models.TagCount, 0, topTagsLimit),
	}

	activeUsers := make(map[string]struct{})
	joinsPerUser30d := make(map[string]int)
	ratingSum, ratingCount := 0, 0

	tagCounts := make(map[string]int)
	tagOrder := make([]string, 0)

	for _, ev := range a.source.Events() {
		if ev.Payload.Area != area || ev.Payload.Area == "" {
			continue
		}

		in7d := ev.Timestamp.After(cutoff7d)
		in30d := ev.Timestamp.After(cutoff30d)
		if !in30d {
			continue
		}

		if ev.Kind == models.EventQuestJoined && ev.Payload.UserID != "" {
			joinsPerUser30d[ev.Payload.UserID]++
		}
		if !in7d {
			continue
		}

		if ev.Payload.UserID != "" {
			activeUsers[ev.Payload.UserID] = struct{}{}
		}

		switch ev.Kind {
		case models.EventQuestCreated:
			out.QuestsCreated7d++
		case models.EventQuestJoined:
			out.Joins7d++
			a.countQuestTags(ev.Payload.QuestID, tagCounts, &tagOrder)
		case models.EventQuestCompleted:
			out.Completions7d++
			if ev.Payload.Rating > 0 {
				ratingSum += ev.Payload.Rating
				ratingCount++
			}
		}
	}

	out.ActiveUsers7d = len(activeUsers)
	out.RepeatParticipationRate30d = repeatRate(joinsPerUser30d)
	if ratingCount > 0 {
		avg := float64(ratingSum) / float64(ratingCount)
		out.AvgConnectedness7d = &avg
	}
	out.TimeToFirstConnectionHoursAvg = a.timeToFirstConnection(area)
	out.TopTags7d = topTags(tagCounts, tagOrder, topTagsLimit)

	a.logger.Debug().
		Str("area", area).
		Int("active_users_7d", out.ActiveUsers7d).
		Int("joins_7d", out.Joins7d).
		Msg("dashboard computed")

	return out
}

// countQuestTags resolves a joined quest and bumps its tag counters. Quests
// deleted from the store since the join (not possible today, but cheap to
// tolerate) simply contribute nothing.
func (a *Aggregator) countQuestTags(questID string, counts map[string]int, order *[]string) {
	q, ok := a.source.Quest(questID)
	if !ok {
		return
	}
	for _, tag := range q.SortedTags() {
		if _, seen := counts[tag]; !seen {
			*order = append(*order, tag)
		}
		counts[tag]++
	}
}

// repeatRate returns the fraction of joining users with at least two joins.
// Zero when nobody joined, avoiding a division by zero.
func repeatRate(joinsPerUser map[string]int) float64 {
	if len(joinsPerUser) == 0 {
		return 0.0
	}
	repeat := 0
	for _, n := range joinsPerUser {
		if n >= 2 {
			repeat++
		}
	}
	return float64(repeat) / float64(len(joinsPerUser))
}

// timeToFirstConnection averages hours between account creation and first
// join across the area's users. This scans current user state, so unlike the
// other metrics it is not bounded to a trailing window. Nil when no user in
// the area has joined anything yet.
func (a *Aggregator) timeToFirstConnection(area string) *float64 {
	var totalHours float64
	qualifying := 0

	for _, u := range a.source.Users() {
		if u.Area != area || u.FirstJoinAt == nil {
			continue
		}
		totalHours += u.FirstJoinAt.Sub(u.CreatedAt).Hours()
		qualifying++
	}

	if qualifying == 0 {
		return nil
	}
	avg := totalHours / float64(qualifying)
	return &avg
}

// topTags ranks tags by count descending, ties broken by first-seen order,
// truncated to limit.
func topTags(counts map[string]int, order []string, limit int) []models.TagCount {
	sorted := make([]string, len(order))
	copy(sorted, order)
	sort.SliceStable(sorted, func(i, j int) bool {
		return counts[sorted[i]] > counts[sorted[j]]
	})

	if len(sorted) > limit {
		sorted = sorted[:limit]
	}
	out := make([]models.TagCount, 0, len(sorted))
	for _, tag := range sorted {
		out = append(out, models.TagCount{Tag: tag, Count: counts[tag]})
	}
	return out
}
