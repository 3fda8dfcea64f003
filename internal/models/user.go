// SideQuest - Social Quest Matchmaking and Engagement Analytics
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sidequest-dev/sidequest

package models

import (
	"sort"
	"strings"
	"time"
)

// Energy is a user's self-reported energy level.
type Energy string

// Energy levels.
const (
	EnergyLow     Energy = "low"
	EnergyNeutral Energy = "neutral"
	EnergyHigh    Energy = "high"
)

// SocialStyle describes the social texture of a user or quest.
type SocialStyle string

// Social styles.
const (
	SocialQuiet     SocialStyle = "quiet"
	SocialTalkative SocialStyle = "talkative"
	SocialEither    SocialStyle = "either"
)

// Mode describes whether an activity happens online or offline.
type Mode string

// Modes.
const (
	ModeOnline  Mode = "online"
	ModeOffline Mode = "offline"
	ModeEither  Mode = "either"
)

// User is a registered account.
//
// FirstJoinAt is set exactly once, on the user's first successful quest join,
// and never cleared. LastJoinAt is updated on every successful join.
// LastEnergy holds the most recent check-in and defaults to DefaultEnergy
// until the first check-in arrives.
type User struct {
	ID            string
	DisplayName   string
	PasswordHash  []byte
	DefaultEnergy Energy
	SocialStyle   SocialStyle
	Mode          Mode
	Interests     map[string]struct{}
	Area          string
	LastEnergy    Energy
	CheckinAt     *time.Time
	CreatedAt     time.Time
	FirstJoinAt   *time.Time
	LastJoinAt    *time.Time
}

// CurrentEnergy returns the energy level scoring should use: the most recent
// check-in when present, the account default otherwise.
func (u *User) CurrentEnergy() Energy {
	if u.LastEnergy != "" {
		return u.LastEnergy
	}
	return u.DefaultEnergy
}

// SortedInterests returns the interest set as a sorted slice for stable
// presentation.
func (u *User) SortedInterests() []string {
	interests := make([]string, 0, len(u.Interests))
	for t := range u.Interests {
		interests = append(interests, t)
	}
	sort.Strings(interests)
	return interests
}

// NormalizeTags lowercases and deduplicates a tag list into a set.
// Empty strings are dropped.
func NormalizeTags(tags []string) map[string]struct{} {
	set := make(map[string]struct{}, len(tags))
	for _, t := range tags {
		t = strings.ToLower(strings.TrimSpace(t))
		if t == "" {
			continue
		}
		set[t] = struct{}{}
	}
	return set
}
