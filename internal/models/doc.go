// SideQuest - Social Quest Matchmaking and Engagement Analytics
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sidequest-dev/sidequest

// Package models defines the shared data structures for SideQuest.
//
// It contains three groups of types:
//
//   - Domain entities: User, Quest, and the append-only Event record that
//     captures every state-changing action.
//   - API request types: validated input shapes for the HTTP handlers
//     (see package validation for the enum rules).
//   - API response types: the standardized APIResponse envelope plus the
//     QuestOut and DashboardOut payloads consumed by the frontend.
//
// Entities use explicit set types (map[string]struct{}) for interests, tags
// and participants. They are never marshaled directly; handlers convert them
// to the *Out response shapes.
package models
