// SideQuest - Social Quest Matchmaking and Engagement Analytics
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sidequest-dev/sidequest

package analytics

import (
	"math"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/sidequest-dev/sidequest/internal/models"
)

var testNow = time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)

// fixtureSource is an in-memory DataSource for injecting test state without
// a store.
type fixtureSource struct {
	events []models.Event
	users  []models.User
	quests map[string]models.Quest
}

func (f *fixtureSource) Events() []models.Event { return f.events }
func (f *fixtureSource) Users() []models.User   { return f.users }
func (f *fixtureSource) Quest(id string) (models.Quest, bool) {
	q, ok := f.quests[id]
	return q, ok
}

func newAgg(src DataSource) *Aggregator {
	return NewAggregator(zerolog.Nop(), src)
}

func ev(kind models.EventKind, age time.Duration, payload models.EventPayload) models.Event {
	return models.Event{Kind: kind, Timestamp: testNow.Add(-age), Payload: payload}
}

func tags(ts ...string) map[string]struct{} {
	m := make(map[string]struct{}, len(ts))
	for _, t := range ts {
		m[t] = struct{}{}
	}
	return m
}

func TestDashboardEmptyArea(t *testing.T) {
	agg := newAgg(&fixtureSource{quests: map[string]models.Quest{}})

	got := agg.Dashboard("nowhere", testNow)

	if got.Area != "nowhere" {
		t.Errorf("area = %q", got.Area)
	}
	if got.ActiveUsers7d != 0 || got.QuestsCreated7d != 0 || got.Joins7d != 0 || got.Completions7d != 0 {
		t.Errorf("expected zero counts, got %+v", got)
	}
	if got.RepeatParticipationRate30d != 0.0 {
		t.Errorf("repeat rate = %v, want 0.0", got.RepeatParticipationRate30d)
	}
	if got.AvgConnectedness7d != nil {
		t.Error("avg connectedness should be nil with no completions")
	}
	if got.TimeToFirstConnectionHoursAvg != nil {
		t.Error("time to first connection should be nil with no users")
	}
	if len(got.TopTags7d) != 0 {
		t.Errorf("top tags = %+v, want empty", got.TopTags7d)
	}
}

func TestDashboardCountsAndAreaFiltering(t *testing.T) {
	src := &fixtureSource{
		events: []models.Event{
			ev(models.EventUserCreated, time.Hour, models.EventPayload{Area: "NTU", UserID: "u1"}),
			ev(models.EventQuestCreated, 2*time.Hour, models.EventPayload{Area: "NTU", UserID: "u1", QuestID: "q1"}),
			ev(models.EventQuestJoined, time.Hour, models.EventPayload{Area: "NTU", UserID: "u2", QuestID: "q1"}),
			ev(models.EventQuestCompleted, 30*time.Minute, models.EventPayload{Area: "NTU", UserID: "u2", QuestID: "q1", Rating: 4}),
			// Other area: excluded entirely.
			ev(models.EventQuestJoined, time.Hour, models.EventPayload{Area: "NUS", UserID: "u9", QuestID: "q9"}),
			// No area in payload: excluded.
			ev(models.EventQuestJoined, time.Hour, models.EventPayload{UserID: "u8", QuestID: "q8"}),
			// Older than 7 days: excluded from 7d counts.
			ev(models.EventQuestCreated, 8*24*time.Hour, models.EventPayload{Area: "NTU", UserID: "u1", QuestID: "q0"}),
		},
		quests: map[string]models.Quest{"q1": {ID: "q1", Tags: tags("chess")}},
	}

	got := newAgg(src).Dashboard("NTU", testNow)

	if got.ActiveUsers7d != 2 {
		t.Errorf("active users = %d, want 2 (u1, u2)", got.ActiveUsers7d)
	}
	if got.QuestsCreated7d != 1 {
		t.Errorf("quests created = %d, want 1", got.QuestsCreated7d)
	}
	if got.Joins7d != 1 {
		t.Errorf("joins = %d, want 1", got.Joins7d)
	}
	if got.Completions7d != 1 {
		t.Errorf("completions = %d, want 1", got.Completions7d)
	}
	if got.AvgConnectedness7d == nil || *got.AvgConnectedness7d != 4.0 {
		t.Errorf("avg connectedness = %v, want 4.0", got.AvgConnectedness7d)
	}
}

func TestDashboardAvgConnectedness(t *testing.T) {
	src := &fixtureSource{
		events: []models.Event{
			ev(models.EventQuestCompleted, time.Hour, models.EventPayload{Area: "NTU", UserID: "u1", QuestID: "q1", Rating: 5}),
			ev(models.EventQuestCompleted, time.Hour, models.EventPayload{Area: "NTU", UserID: "u2", QuestID: "q1", Rating: 2}),
		},
		quests: map[string]models.Quest{},
	}

	got := newAgg(src).Dashboard("NTU", testNow)
	if got.AvgConnectedness7d == nil || math.Abs(*got.AvgConnectedness7d-3.5) > 1e-9 {
		t.Errorf("avg connectedness = %v, want 3.5", got.AvgConnectedness7d)
	}
}

func TestDashboardRepeatParticipationRate(t *testing.T) {
	tests := []struct {
		name   string
		events []models.Event
		want   float64
	}{
		{
			name:   "no joins",
			events: nil,
			want:   0.0,
		},
		{
			name: "every joiner repeats",
			events: []models.Event{
				ev(models.EventQuestJoined, time.Hour, models.EventPayload{Area: "NTU", UserID: "u1", QuestID: "q1"}),
				ev(models.EventQuestJoined, 2*time.Hour, models.EventPayload{Area: "NTU", UserID: "u1", QuestID: "q2"}),
			},
			want: 1.0,
		},
		{
			name: "half repeat",
			events: []models.Event{
				ev(models.EventQuestJoined, time.Hour, models.EventPayload{Area: "NTU", UserID: "u1", QuestID: "q1"}),
				ev(models.EventQuestJoined, 2*time.Hour, models.EventPayload{Area: "NTU", UserID: "u1", QuestID: "q2"}),
				ev(models.EventQuestJoined, time.Hour, models.EventPayload{Area: "NTU", UserID: "u2", QuestID: "q1"}),
			},
			want: 0.5,
		},
		{
			name: "thirty day window includes older joins",
			events: []models.Event{
				ev(models.EventQuestJoined, 10*24*time.Hour, models.EventPayload{Area: "NTU", UserID: "u1", QuestID: "q1"}),
				ev(models.EventQuestJoined, 20*24*time.Hour, models.EventPayload{Area: "NTU", UserID: "u1", QuestID: "q2"}),
			},
			want: 1.0,
		},
		{
			name: "joins older than thirty days are ignored",
			events: []models.Event{
				ev(models.EventQuestJoined, 40*24*time.Hour, models.EventPayload{Area: "NTU", UserID: "u1", QuestID: "q1"}),
			},
			want: 0.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := &fixtureSource{events: tt.events, quests: map[string]models.Quest{}}
			got := newAgg(src).Dashboard("NTU", testNow)
			if math.Abs(got.RepeatParticipationRate30d-tt.want) > 1e-9 {
				t.Errorf("repeat rate = %v, want %v", got.RepeatParticipationRate30d, tt.want)
			}
		})
	}
}

func TestDashboardTimeToFirstConnection(t *testing.T) {
	created := testNow.Add(-100 * time.Hour)
	firstA := created.Add(10 * time.Hour)
	firstB := created.Add(30 * time.Hour)

	src := &fixtureSource{
		users: []models.User{
			{ID: "u1", Area: "NTU", CreatedAt: created, FirstJoinAt: &firstA},
			{ID: "u2", Area: "NTU", CreatedAt: created, FirstJoinAt: &firstB},
			{ID: "u3", Area: "NTU", CreatedAt: created}, // never joined
			{ID: "u4", Area: "NUS", CreatedAt: created, FirstJoinAt: &firstA},
		},
		quests: map[string]models.Quest{},
	}

	got := newAgg(src).Dashboard("NTU", testNow)
	if got.TimeToFirstConnectionHoursAvg == nil {
		t.Fatal("expected non-nil time to first connection")
	}
	if math.Abs(*got.TimeToFirstConnectionHoursAvg-20.0) > 1e-9 {
		t.Errorf("ttfc = %v, want 20.0", *got.TimeToFirstConnectionHoursAvg)
	}
}

func TestDashboardTopTags(t *testing.T) {
	join := func(questID string) models.Event {
		return ev(models.EventQuestJoined, time.Hour, models.EventPayload{Area: "NTU", UserID: "u1", QuestID: questID})
	}

	src := &fixtureSource{
		events: []models.Event{
			join("q1"), join("q1"), join("q2"), join("q3"), join("gone"),
		},
		quests: map[string]models.Quest{
			"q1": {ID: "q1", Tags: tags("chess", "tea")},
			"q2": {ID: "q2", Tags: tags("chess", "board-games", "casual", "evening", "indoor", "social")},
			"q3": {ID: "q3", Tags: tags("tea")},
		},
	}

	got := newAgg(src).Dashboard("NTU", testNow)

	if len(got.TopTags7d) != 5 {
		t.Fatalf("top tags length = %d, want 5", len(got.TopTags7d))
	}
	if got.TopTags7d[0].Tag != "chess" || got.TopTags7d[0].Count != 3 {
		t.Errorf("top tag = %+v, want chess:3", got.TopTags7d[0])
	}
	if got.TopTags7d[1].Tag != "tea" || got.TopTags7d[1].Count != 3 {
		t.Errorf("second tag = %+v, want tea:3", got.TopTags7d[1])
	}
	// Remaining tags all count 1; first-seen order breaks the tie.
	for _, tc := range got.TopTags7d[2:] {
		if tc.Count != 1 {
			t.Errorf("tag %q count = %d, want 1", tc.Tag, tc.Count)
		}
	}
}

func TestDashboardTopTagsTieOrderStable(t *testing.T) {
	src := &fixtureSource{
		events: []models.Event{
			ev(models.EventQuestJoined, time.Hour, models.EventPayload{Area: "NTU", UserID: "u1", QuestID: "q1"}),
		},
		quests: map[string]models.Quest{
			"q1": {ID: "q1", Tags: tags("zebra", "alpha", "mango")},
		},
	}

	// A single join yields all-tied counts; SortedTags order (alphabetical)
	// is the first-seen order, so the result must be deterministic.
	for i := 0; i < 10; i++ {
		got := newAgg(src).Dashboard("NTU", testNow)
		want := []string{"alpha", "mango", "zebra"}
		for j, w := range want {
			if got.TopTags7d[j].Tag != w {
				t.Fatalf("run %d: tag[%d] = %q, want %q", i, j, got.TopTags7d[j].Tag, w)
			}
		}
	}
}
