// SideQuest - Social Quest Matchmaking and Engagement Analytics
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sidequest-dev/sidequest

/*
Package metrics provides Prometheus metrics collection and export for observability.

This package implements application instrumentation using the Prometheus client
library, exposing metrics for monitoring performance, errors, and system health.

# Overview

The package provides metrics for:
  - HTTP request latency and throughput
  - User and quest lifecycle operations
  - Recommendation serving latency and result sizes
  - Analytics dashboard query rates
  - WebSocket connection counts

# Metrics Endpoint

Metrics are exposed at the /metrics endpoint in Prometheus text format:

	curl http://localhost:8080/metrics

# Available Metrics

API Metrics:
  - api_requests_total: Total API requests (counter)
    Labels: method, endpoint, status_code
  - api_request_duration_seconds: Request latency (histogram)
    Labels: method, endpoint
  - api_active_requests: Active requests (gauge)
  - api_rate_limit_hits_total: Rate limit rejections (counter)
    Labels: endpoint

Quest Lifecycle Metrics:
  - quests_created_total: Quests created (counter)
  - quest_joins_total: Join attempts (counter)
    Labels: result (joined, already_joined, full, not_found)
  - quest_completions_total: Completions recorded (counter)
  - connectedness_rating: Distribution of 1-5 ratings (histogram)

Recommendation Metrics:
  - recommendations_served_total: Requests served (counter)
  - recommendation_result_size: Quests returned per request (histogram)
  - recommendation_duration_seconds: Scoring latency (histogram)

Analytics Metrics:
  - dashboard_queries_total: Dashboard queries (counter)
    Labels: area
  - dashboard_query_duration_seconds: Aggregation latency (histogram)

WebSocket Metrics:
  - websocket_connections: Active connections (gauge)
  - websocket_messages_sent_total: Messages sent (counter)
  - websocket_errors_total: Errors (counter)
    Labels: error_type

# Usage

Metrics are registered automatically via promauto at package init. Record
helpers wrap the common multi-metric updates:

	metrics.RecordAPIRequest("GET", "/api/v1/quests", "200", elapsed)
	metrics.RecordJoin("joined")
	metrics.RecordRecommendations(len(result), elapsed)

# See Also

  - internal/middleware: HTTP instrumentation middleware
  - github.com/prometheus/client_golang: Underlying library
*/
package metrics
