// SideQuest - Social Quest Matchmaking and Engagement Analytics
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sidequest-dev/sidequest

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Prometheus Metrics Integration for Production Observability
// This package provides instrumentation for:
// - API endpoint latency and throughput
// - Quest lifecycle operations (create, join, complete)
// - Recommendation serving
// - Analytics dashboard queries
// - WebSocket connections

var (
	// API Endpoint Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10}, // Optimized for API latency
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "api_active_requests",
			Help: "Current number of active API requests",
		},
	)

	APIRateLimitHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_rate_limit_hits_total",
			Help: "Total number of rate limit rejections",
		},
		[]string{"endpoint"},
	)

	// User Lifecycle Metrics
	UsersCreated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "users_created_total",
			Help: "Total number of user profiles created",
		},
	)

	UserCheckins = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "user_checkins_total",
			Help: "Total number of energy check-ins",
		},
		[]string{"energy"}, // "low", "neutral", "high"
	)

	AuthAttempts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "auth_attempts_total",
			Help: "Total number of login attempts",
		},
		[]string{"result"}, // "success", "invalid_credentials", "unknown_user"
	)

	// Quest Lifecycle Metrics
	QuestsCreated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "quests_created_total",
			Help: "Total number of quests created",
		},
	)

	QuestJoins = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "quest_joins_total",
			Help: "Total number of quest join attempts",
		},
		[]string{"result"}, // "joined", "already_joined", "full", "not_found"
	)

	QuestCompletions = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "quest_completions_total",
			Help: "Total number of quest completions recorded",
		},
	)

	ConnectednessRatings = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "connectedness_rating",
			Help:    "Distribution of reported connectedness ratings",
			Buckets: []float64{1, 2, 3, 4, 5},
		},
	)

	// Recommendation Metrics
	RecommendationsServed = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "recommendations_served_total",
			Help: "Total number of recommendation requests served",
		},
	)

	RecommendationResultSize = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "recommendation_result_size",
			Help:    "Number of quests returned per recommendation request",
			Buckets: []float64{0, 1, 2, 3, 5, 10},
		},
	)

	RecommendationDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "recommendation_duration_seconds",
			Help:    "Duration of recommendation scoring in seconds",
			Buckets: prometheus.DefBuckets,
		},
	)

	// Analytics Metrics
	DashboardQueries = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dashboard_queries_total",
			Help: "Total number of analytics dashboard queries",
		},
		[]string{"area"},
	)

	DashboardQueryDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "dashboard_query_duration_seconds",
			Help:    "Duration of dashboard aggregation in seconds",
			Buckets: prometheus.DefBuckets,
		},
	)

	// WebSocket Metrics
	WSConnections = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "websocket_connections",
			Help: "Current number of active WebSocket connections",
		},
	)

	WSMessagesSent = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "websocket_messages_sent_total",
			Help: "Total number of WebSocket messages sent",
		},
	)

	WSErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "websocket_errors_total",
			Help: "Total number of WebSocket errors",
		},
		[]string{"error_type"},
	)

	// System Metrics
	AppInfo = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "app_info",
			Help: "Application version and build information",
		},
		[]string{"version", "go_version"},
	)

	AppUptime = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "app_uptime_seconds",
			Help: "Application uptime in seconds",
		},
	)
)

// RecordAPIRequest records an API request metric
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest tracks active API requests
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// RecordJoin records a quest join attempt and its outcome
func RecordJoin(result string) {
	QuestJoins.WithLabelValues(result).Inc()
}

// RecordCompletion records a quest completion with its connectedness rating
func RecordCompletion(rating int) {
	QuestCompletions.Inc()
	ConnectednessRatings.Observe(float64(rating))
}

// RecordRecommendations records a served recommendation request
func RecordRecommendations(resultSize int, duration time.Duration) {
	RecommendationsServed.Inc()
	RecommendationResultSize.Observe(float64(resultSize))
	RecommendationDuration.Observe(duration.Seconds())
}

// RecordDashboardQuery records an analytics dashboard query
func RecordDashboardQuery(area string, duration time.Duration) {
	DashboardQueries.WithLabelValues(area).Inc()
	DashboardQueryDuration.Observe(duration.Seconds())
}

// RecordAuthAttempt records a login attempt and its outcome
func RecordAuthAttempt(result string) {
	AuthAttempts.WithLabelValues(result).Inc()
}
