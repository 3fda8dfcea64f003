// SideQuest - Social Quest Matchmaking and Engagement Analytics
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sidequest-dev/sidequest

package models

import "time"

// EventKind identifies the type of a recorded event.
type EventKind string

// Event kinds appended by the CRUD layer. The analytics aggregator scans
// these; adding a kind is backward compatible, renaming one is not.
const (
	EventUserCreated           EventKind = "user_created"
	EventUserCheckin           EventKind = "user_checkin"
	EventQuestCreated          EventKind = "quest_created"
	EventQuestJoined           EventKind = "quest_joined"
	EventQuestCompleted        EventKind = "quest_completed"
	EventRecommendationsViewed EventKind = "recommendations_viewed"
)

// EventPayload carries the correlation fields for an event. Fields that do
// not apply to a given kind are left zero; Rating uses 0 as "absent" since
// valid ratings are 1-5.
type EventPayload struct {
	Area    string `json:"area,omitempty"`
	UserID  string `json:"user_id,omitempty"`
	QuestID string `json:"quest_id,omitempty"`
	Rating  int    `json:"rating,omitempty"`
}

// Event is one immutable entry in the append-only log. Events are never
// mutated or deleted after being appended; the log is the canonical history
// that analytics queries scan.
type Event struct {
	Kind      EventKind    `json:"kind"`
	Timestamp time.Time    `json:"timestamp"`
	Payload   EventPayload `json:"payload"`
}
