// SideQuest - Social Quest Matchmaking and Engagement Analytics
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sidequest-dev/sidequest

// Package cache provides a generic thread-safe in-memory TTL cache.
//
// It backs the analytics dashboard endpoint, where recomputing a rolling
// engagement snapshot on every request would rescan the event log. Entries
// expire lazily on access rather than via a background goroutine, which keeps
// short-lived caches in tests leak-free.
package cache
