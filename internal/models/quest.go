// SideQuest - Social Quest Matchmaking and Engagement Analytics
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sidequest-dev/sidequest

package models

import (
	"sort"
	"time"
)

// Quest bounds for validation. Mirrored by the validate tags on
// CreateQuestRequest.
const (
	QuestMinDurationMins = 10
	QuestMaxDurationMins = 240
	QuestMinCapacity     = 2
	QuestMaxCapacity     = 50
)

// Quest is a time-boxed group activity.
//
// Participants is bounded by Capacity at join time only; lowering capacity
// retroactively is not a supported operation. Every key in Completions was a
// participant at the time the rating was submitted.
type Quest struct {
	ID           string
	OrganizerID  string
	Title        string
	Description  string
	Area         string
	SocialStyle  SocialStyle
	Mode         Mode
	Tags         map[string]struct{}
	StartTime    time.Time
	DurationMins int
	Capacity     int
	CreatedAt    time.Time
	Participants map[string]struct{}
	Completions  map[string]int
}

// CapacityAvailable reports whether the quest can accept another participant.
func (q *Quest) CapacityAvailable() bool {
	return len(q.Participants) < q.Capacity
}

// HasParticipant reports whether the user has joined the quest.
func (q *Quest) HasParticipant(userID string) bool {
	_, ok := q.Participants[userID]
	return ok
}

// EndTime returns the instant the quest finishes.
func (q *Quest) EndTime() time.Time {
	return q.StartTime.Add(time.Duration(q.DurationMins) * time.Minute)
}

// SortedTags returns the tag set as a sorted slice for stable presentation.
func (q *Quest) SortedTags() []string {
	tags := make([]string, 0, len(q.Tags))
	for t := range q.Tags {
		tags = append(tags, t)
	}
	sort.Strings(tags)
	return tags
}
