// SideQuest - Social Quest Matchmaking and Engagement Analytics
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sidequest-dev/sidequest

// Package store implements the in-memory entity store and append-only event
// log that back the SideQuest prototype.
//
// A single Store owns three collections: user-id to User, quest-id to Quest,
// and the insertion-ordered event sequence. All mutating operations take the
// write lock, so mutations are serialized; the recommendation engine and the
// analytics aggregator read snapshots under the read lock and may run
// concurrently with each other.
//
// Every state-changing operation appends exactly one event inside the same
// critical section as the mutation, so the log can never disagree with the
// entity state it describes. Events are never mutated or deleted.
//
// State does not survive process restart. Persistence is out of scope for
// this prototype.
package store
