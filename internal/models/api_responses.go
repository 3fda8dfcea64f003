// SideQuest - Social Quest Matchmaking and Engagement Analytics
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sidequest-dev/sidequest

package models

import (
	"time"
)

// APIResponse is the standardized response wrapper used by all HTTP endpoints.
//
// Status field values:
//   - "success": request completed, see Data
//   - "error": request failed, see Error
//
// Example successful response:
//
//	{
//	  "status": "success",
//	  "data": {"quest_id": "..."},
//	  "metadata": {"timestamp": "2026-08-31T12:00:00Z", "query_time_ms": 2}
//	}
type APIResponse struct {
	Status   string      `json:"status"`
	Data     interface{} `json:"data"`
	Metadata Metadata    `json:"metadata"`
	Error    *APIError   `json:"error,omitempty"`
}

// Metadata contains response metadata for observability.
type Metadata struct {
	Timestamp   time.Time `json:"timestamp"`
	QueryTimeMS int64     `json:"query_time_ms,omitempty"`
}

// APIError represents an error response with structured details.
//
// Common codes:
//   - VALIDATION_ERROR: invalid input parameters
//   - NOT_FOUND: resource doesn't exist
//   - CONFLICT: quest full, duplicate name, non-member completion
//   - AUTHENTICATION_ERROR: invalid or missing credentials
//   - RATE_LIMIT_EXCEEDED: too many requests
type APIError struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// UserOut is the presentation shape for a user. The password hash never
// leaves the store through this struct.
type UserOut struct {
	UserID        string     `json:"user_id"`
	DisplayName   string     `json:"display_name"`
	DefaultEnergy string     `json:"default_energy"`
	SocialStyle   string     `json:"social_style"`
	Mode          string     `json:"mode"`
	Interests     []string   `json:"interests"`
	Area          string     `json:"area"`
	LastEnergy    string     `json:"last_energy"`
	CheckinAt     *time.Time `json:"checkin_at,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
}

// QuestOut is the presentation shape for a quest, with participant count and
// optional recommendation score. Score is rounded to 4 decimal places before
// it reaches this struct; clients must not depend on any finer precision.
type QuestOut struct {
	QuestID       string    `json:"quest_id"`
	OrganizerID   string    `json:"organizer_id"`
	OrganizerName string    `json:"organizer_name"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	Area          string    `json:"area"`
	SocialStyle   string    `json:"social_style"`
	Mode          string    `json:"mode"`
	Tags          []string  `json:"tags"`
	StartTime     time.Time `json:"start_time"`
	DurationMins  int       `json:"duration_mins"`
	Capacity      int       `json:"capacity"`
	Participants  int       `json:"participants"`
	Score         *float64  `json:"score,omitempty"`
	HasJoined     bool      `json:"has_joined"`
	IsCompleted   bool      `json:"is_completed"`
}

// TagCount is one entry of the top-tags leaderboard.
type TagCount struct {
	Tag   string `json:"tag"`
	Count int    `json:"count"`
}

// DashboardOut is the engagement dashboard snapshot for one area.
//
// AvgConnectedness7d and TimeToFirstConnectionHoursAvg are nil when no data
// qualifies, never zero-valued, so clients can distinguish "no ratings yet"
// from "average rating of zero".
type DashboardOut struct {
	Area                          string     `json:"area"`
	ActiveUsers7d                 int        `json:"active_users_7d"`
	QuestsCreated7d               int        `json:"quests_created_7d"`
	Joins7d                       int        `json:"joins_7d"`
	Completions7d                 int        `json:"completions_7d"`
	RepeatParticipationRate30d    float64    `json:"repeat_participation_rate_30d"`
	AvgConnectedness7d            *float64   `json:"avg_connectedness_7d"`
	TimeToFirstConnectionHoursAvg *float64   `json:"time_to_first_connection_hours_avg"`
	TopTags7d                     []TagCount `json:"top_tags_7d"`
}
