// SideQuest - Social Quest Matchmaking and Engagement Analytics
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sidequest-dev/sidequest

// Package api provides the HTTP surface: chi routing, the standardized
// JSON response envelope, and handlers for users, quests, recommendations,
// analytics, health, and the realtime event feed.
//
// Every endpoint responds with the same envelope:
//
//	{
//	  "status": "success" | "error",
//	  "data": ...,
//	  "metadata": {"timestamp": "...", "query_time_ms": 2},
//	  "error": {"code": "...", "message": "..."}
//	}
//
// The global middleware stack applies, in order: request ID propagation,
// request logging, Prometheus metrics, and gzip compression. CORS and
// per-group rate limits come from go-chi/cors and go-chi/httprate.
package api
