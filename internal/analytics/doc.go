// SideQuest - Social Quest Matchmaking and Engagement Analytics
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sidequest-dev/sidequest

// Package analytics computes the per-area engagement dashboard.
//
// The aggregator recomputes every metric from scratch on each call by
// scanning the append-only event log and the current entity state; there is
// no incremental or cached state to invalidate. It is read-only and safe to
// run concurrently with the recommendation engine.
//
// Seven metrics are produced: active users, quests created, joins and
// completions over the trailing 7 days; repeat participation rate over 30
// days; average connectedness rating over 7 days; mean hours from account
// creation to first join (over current user state, not the log); and the
// top 5 tags among joined quests over 7 days.
//
// An unknown area produces a zero-valued snapshot with nil averages; the
// aggregator never fails on well-formed input.
package analytics
