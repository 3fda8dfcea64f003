// SideQuest - Social Quest Matchmaking and Engagement Analytics
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sidequest-dev/sidequest

package services

import (
	"context"
	"errors"
	"testing"
	"time"
)

// fakeRunner blocks until its context is canceled.
type fakeRunner struct {
	started chan struct{}
	err     error
}

func (f *fakeRunner) RunWithContext(ctx context.Context) error {
	close(f.started)
	<-ctx.Done()
	if f.err != nil {
		return f.err
	}
	return ctx.Err()
}

func TestHubServiceDelegates(t *testing.T) {
	runner := &fakeRunner{started: make(chan struct{})}
	svc := NewHubService(runner)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- svc.Serve(ctx)
	}()

	select {
	case <-runner.started:
	case <-time.After(time.Second):
		t.Fatal("RunWithContext was not called")
	}

	cancel()
	select {
	case err := <-done:
		if !errors.Is(err, context.Canceled) {
			t.Errorf("Serve returned %v, want context.Canceled", err)
		}
	case <-time.After(time.Second):
		t.Fatal("Serve did not return after cancellation")
	}
}

func TestHubServicePropagatesError(t *testing.T) {
	wantErr := errors.New("hub crashed")
	runner := &fakeRunner{started: make(chan struct{}), err: wantErr}
	svc := NewHubService(runner)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- svc.Serve(ctx)
	}()

	<-runner.started
	cancel()

	select {
	case err := <-done:
		if !errors.Is(err, wantErr) {
			t.Errorf("Serve returned %v, want %v", err, wantErr)
		}
	case <-time.After(time.Second):
		t.Fatal("Serve did not return")
	}
}

func TestHubServiceString(t *testing.T) {
	svc := NewHubService(&fakeRunner{started: make(chan struct{})})
	if svc.String() != "websocket-hub" {
		t.Errorf("String() = %q", svc.String())
	}
}
