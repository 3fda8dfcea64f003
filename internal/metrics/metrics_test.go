// SideQuest - Social Quest Matchmaking and Engagement Analytics
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sidequest-dev/sidequest

package metrics

import (
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

// TestRecordAPIRequest tests API request metric recording
func TestRecordAPIRequest(t *testing.T) {
	tests := []struct {
		name       string
		method     string
		endpoint   string
		statusCode string
		duration   time.Duration
	}{
		{
			name:       "successful GET request",
			method:     "GET",
			endpoint:   "/api/v1/quests",
			statusCode: "200",
			duration:   25 * time.Millisecond,
		},
		{
			name:       "created POST request",
			method:     "POST",
			endpoint:   "/api/v1/users",
			statusCode: "201",
			duration:   10 * time.Millisecond,
		},
		{
			name:       "not found",
			method:     "GET",
			endpoint:   "/api/v1/quests/{id}",
			statusCode: "404",
			duration:   2 * time.Millisecond,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := testutil.ToFloat64(APIRequestsTotal.WithLabelValues(tt.method, tt.endpoint, tt.statusCode))

			RecordAPIRequest(tt.method, tt.endpoint, tt.statusCode, tt.duration)

			after := testutil.ToFloat64(APIRequestsTotal.WithLabelValues(tt.method, tt.endpoint, tt.statusCode))
			if after != before+1 {
				t.Errorf("counter went %v -> %v, want +1", before, after)
			}
		})
	}
}

// TestTrackActiveRequest verifies the active request gauge moves both ways
func TestTrackActiveRequest(t *testing.T) {
	before := testutil.ToFloat64(APIActiveRequests)

	TrackActiveRequest(true)
	if got := testutil.ToFloat64(APIActiveRequests); got != before+1 {
		t.Errorf("gauge after inc = %v, want %v", got, before+1)
	}

	TrackActiveRequest(false)
	if got := testutil.ToFloat64(APIActiveRequests); got != before {
		t.Errorf("gauge after dec = %v, want %v", got, before)
	}
}

// TestRecordJoin tests join outcome labels
func TestRecordJoin(t *testing.T) {
	for _, result := range []string{"joined", "already_joined", "full", "not_found"} {
		before := testutil.ToFloat64(QuestJoins.WithLabelValues(result))
		RecordJoin(result)
		if got := testutil.ToFloat64(QuestJoins.WithLabelValues(result)); got != before+1 {
			t.Errorf("QuestJoins[%s] = %v, want %v", result, got, before+1)
		}
	}
}

// TestRecordCompletion tests completion counter and rating histogram
func TestRecordCompletion(t *testing.T) {
	before := testutil.ToFloat64(QuestCompletions)

	RecordCompletion(4)

	if got := testutil.ToFloat64(QuestCompletions); got != before+1 {
		t.Errorf("QuestCompletions = %v, want %v", got, before+1)
	}
}

// TestRecordRecommendations verifies serving metrics do not panic and count up
func TestRecordRecommendations(t *testing.T) {
	before := testutil.ToFloat64(RecommendationsServed)

	RecordRecommendations(3, 2*time.Millisecond)
	RecordRecommendations(0, time.Millisecond)

	if got := testutil.ToFloat64(RecommendationsServed); got != before+2 {
		t.Errorf("RecommendationsServed = %v, want %v", got, before+2)
	}
}

// TestRecordDashboardQuery verifies per-area labeling
func TestRecordDashboardQuery(t *testing.T) {
	before := testutil.ToFloat64(DashboardQueries.WithLabelValues("NTU"))

	RecordDashboardQuery("NTU", 5*time.Millisecond)

	if got := testutil.ToFloat64(DashboardQueries.WithLabelValues("NTU")); got != before+1 {
		t.Errorf("DashboardQueries[NTU] = %v, want %v", got, before+1)
	}
}

// TestRecordAuthAttempt verifies outcome labels
func TestRecordAuthAttempt(t *testing.T) {
	for _, result := range []string{"success", "invalid_credentials", "unknown_user"} {
		before := testutil.ToFloat64(AuthAttempts.WithLabelValues(result))
		RecordAuthAttempt(result)
		if got := testutil.ToFloat64(AuthAttempts.WithLabelValues(result)); got != before+1 {
			t.Errorf("AuthAttempts[%s] = %v, want %v", result, got, before+1)
		}
	}
}

// TestConcurrentRecording verifies metric helpers are safe under concurrency
func TestConcurrentRecording(t *testing.T) {
	const goroutines = 10
	const iterations = 100

	before := testutil.ToFloat64(QuestJoins.WithLabelValues("joined"))

	var wg sync.WaitGroup
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < iterations; j++ {
				RecordJoin("joined")
			}
		}()
	}
	wg.Wait()

	after := testutil.ToFloat64(QuestJoins.WithLabelValues("joined"))
	if after != before+goroutines*iterations {
		t.Errorf("QuestJoins[joined] = %v, want %v", after, before+goroutines*iterations)
	}
}
