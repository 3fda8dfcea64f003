// SideQuest - Social Quest Matchmaking and Engagement Analytics
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sidequest-dev/sidequest

package recommend

import (
	"math"

	"github.com/sidequest-dev/sidequest/internal/models"
)

// Scoring weights. They sum to 1.0; the weighted sum is not clamped again
// since every sub-score lies in [0,1]. Do not rearrange the arithmetic:
// fixtures depend on the exact constants and clamping order.
const (
	weightMode     = 0.35
	weightSocial   = 0.25
	weightEnergy   = 0.25
	weightTags     = 0.15
	neutralOverlap = 0.2
)

// preferenceMatch scores two preference values: 1.0 on exact match, 0.7 when
// either side is "either", 0.0 otherwise. Symmetric by construction.
func preferenceMatch(a, b string) float64 {
	switch {
	case a == b:
		return 1.0
	case a == "either" || b == "either":
		return 0.7
	default:
		return 0.0
	}
}

// energyFit scores how well a quest's duration and social style fit the
// user's current energy. Base 0.5 with additive adjustments, clamped to
// [0,1].
func energyFit(energy models.Energy, durationMins int, style models.SocialStyle) float64 {
	fit := 0.5

	switch energy {
	case models.EnergyLow:
		if durationMins <= 45 {
			fit += 0.2
		} else {
			fit -= 0.1
		}
		if style == models.SocialQuiet || style == models.SocialEither {
			fit += 0.2
		} else {
			fit -= 0.1
		}
	case models.EnergyHigh:
		if durationMins >= 60 {
			fit += 0.2
		}
		if style == models.SocialTalkative || style == models.SocialEither {
			fit += 0.2
		}
	case models.EnergyNeutral:
		if durationMins >= 30 && durationMins <= 90 {
			fit += 0.1
		}
	}

	return clamp01(fit)
}

// tagOverlap scores shared interest between the user and the quest. When
// either side has no tags there is nothing to compare, so the score is a
// fixed neutral 0.2 rather than zero; otherwise each shared tag adds 0.2 on
// top of the 0.2 floor, capped at 1.0.
func tagOverlap(interests, tags map[string]struct{}) float64 {
	if len(interests) == 0 || len(tags) == 0 {
		return neutralOverlap
	}

	shared := 0
	for t := range tags {
		if _, ok := interests[t]; ok {
			shared++
		}
	}
	return math.Min(1.0, neutralOverlap+0.2*float64(shared))
}

// scoreQuest computes the weighted sum for one candidate.
func scoreQuest(u *models.User, q *models.Quest) float64 {
	mode := preferenceMatch(string(u.Mode), string(q.Mode))
	social := preferenceMatch(string(u.SocialStyle), string(q.SocialStyle))
	energy := energyFit(u.CurrentEnergy(), q.DurationMins, q.SocialStyle)
	tags := tagOverlap(u.Interests, q.Tags)

	return weightMode*mode + weightSocial*social + weightEnergy*energy + weightTags*tags
}

// roundScore rounds to 4 decimal places for presentation.
func roundScore(s float64) float64 {
	return math.Round(s*10000) / 10000
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
