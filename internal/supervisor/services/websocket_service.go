// SideQuest - Social Quest Matchmaking and Engagement Analytics
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sidequest-dev/sidequest

package services

import (
	"context"
)

// ContextRunner is satisfied by *websocket.Hub. Keeping the dependency
// behind a one-method interface avoids importing the websocket package.
type ContextRunner interface {
	RunWithContext(ctx context.Context) error
}

// HubService runs the WebSocket hub under supervision. The hub's
// RunWithContext already follows the suture.Service contract, so the
// wrapper only contributes a stable service name.
type HubService struct {
	hub ContextRunner
}

// NewHubService wraps the hub as a supervised service.
func NewHubService(hub ContextRunner) *HubService {
	return &HubService{hub: hub}
}

// Serve implements suture.Service.
func (s *HubService) Serve(ctx context.Context) error {
	return s.hub.RunWithContext(ctx)
}

// String identifies the service in supervision logs.
func (s *HubService) String() string {
	return "websocket-hub"
}
