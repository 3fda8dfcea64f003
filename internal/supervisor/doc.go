// SideQuest - Social Quest Matchmaking and Engagement Analytics
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sidequest-dev/sidequest

// Package supervisor builds the suture v4 supervision tree that runs the
// long-lived components: the HTTP server and the WebSocket hub.
//
// Layout:
//
//	sidequest (root)
//	├── realtime-layer
//	│   └── websocket-hub
//	└── api-layer
//	    └── http-server
//
// Each layer is its own supervisor so a crash-looping hub backs off
// independently of the HTTP server. Supervision events are logged through
// sutureslog into the application's slog-to-zerolog bridge.
package supervisor
