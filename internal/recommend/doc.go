// SideQuest - Social Quest Matchmaking and Engagement Analytics
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sidequest-dev/sidequest

// Package recommend implements the quest recommendation engine.
//
// The engine is a pure function over (user, quest collection, now): it never
// mutates state, performs no I/O, and is safe to call concurrently with the
// analytics aggregator. Candidates are filtered to the user's area, to
// quests the user has not joined, to a 72-hour forward-looking start window,
// and to quests with available capacity, then scored by a weighted sum of
// four sub-scores:
//
//	0.35 mode match + 0.25 social-style match + 0.25 energy fit + 0.15 tag overlap
//
// Energy fit is driven by the user's most recent check-in energy, not the
// account default. Results are sorted descending by score with a stable sort
// over the store's insertion order, truncated to the requested limit
// (clamped to 1..10), and rounded to 4 decimal places for presentation.
//
// Callers are responsible for resolving the requesting user; an unknown user
// ID is a Not-Found at the CRUD layer, not here.
package recommend
