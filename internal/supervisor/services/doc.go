// SideQuest - Social Quest Matchmaking and Engagement Analytics
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sidequest-dev/sidequest

// Package services contains suture.Service adapters for the components the
// supervisor tree runs: the HTTP server and the WebSocket hub. Each adapter
// accepts a small interface rather than the concrete type so the wrappers
// stay testable and dependency-light.
package services
